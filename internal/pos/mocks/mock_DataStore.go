// Package mocks provides test doubles for the pos ports.
package mocks

import (
	"context"

	model "github.com/seuhd/campus-coffee/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// MockDataStore is a mock type for the DataStore interface.
type MockDataStore struct {
	mock.Mock
}

// Clear provides a mock function with given fields: ctx
func (_m *MockDataStore) Clear(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Clear")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetAll provides a mock function with given fields: ctx
func (_m *MockDataStore) GetAll(ctx context.Context) ([]model.Pos, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetAll")
	}

	var r0 []model.Pos
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]model.Pos, error)); ok {
		return rf(ctx)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Pos)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockDataStore) GetByID(ctx context.Context, id int64) (*model.Pos, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetByID")
	}

	var r0 *model.Pos
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*model.Pos, error)); ok {
		return rf(ctx, id)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Pos)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// Upsert provides a mock function with given fields: ctx, p
func (_m *MockDataStore) Upsert(ctx context.Context, p model.Pos) (*model.Pos, error) {
	ret := _m.Called(ctx, p)

	if len(ret) == 0 {
		panic("no return value specified for Upsert")
	}

	var r0 *model.Pos
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Pos) (*model.Pos, error)); ok {
		return rf(ctx, p)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Pos)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockDataStore) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockDataStore creates a new instance of MockDataStore.
func NewMockDataStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDataStore {
	mock := &MockDataStore{}
	mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
