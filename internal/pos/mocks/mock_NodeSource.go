package mocks

import (
	"context"

	model "github.com/seuhd/campus-coffee/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// MockNodeSource is a mock type for the NodeSource interface.
type MockNodeSource struct {
	mock.Mock
}

// FetchNode provides a mock function with given fields: ctx, nodeID
func (_m *MockNodeSource) FetchNode(ctx context.Context, nodeID int64) (*model.OsmNode, error) {
	ret := _m.Called(ctx, nodeID)

	if len(ret) == 0 {
		panic("no return value specified for FetchNode")
	}

	var r0 *model.OsmNode
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*model.OsmNode, error)); ok {
		return rf(ctx, nodeID)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.OsmNode)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// NewMockNodeSource creates a new instance of MockNodeSource.
func NewMockNodeSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNodeSource {
	mock := &MockNodeSource{}
	mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
