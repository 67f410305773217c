// Package pos holds the point-of-sale business logic: CRUD on top of a
// DataStore and the import of POS records from OpenStreetMap.
package pos

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/seuhd/campus-coffee/internal/model"
)

// Service implements the POS use cases. Domain errors from the store and the
// node source are returned unwrapped.
type Service struct {
	store DataStore
	nodes NodeSource
}

// NewService creates a Service.
func NewService(store DataStore, nodes NodeSource) *Service {
	return &Service{store: store, nodes: nodes}
}

// Clear removes every POS.
func (s *Service) Clear(ctx context.Context) error {
	zap.L().Warn("clearing all pos data")
	return s.store.Clear(ctx)
}

// GetAll lists every POS.
func (s *Service) GetAll(ctx context.Context) ([]model.Pos, error) {
	zap.L().Debug("retrieving all pos")
	return s.store.GetAll(ctx)
}

// GetByID returns the POS with the given id.
func (s *Service) GetByID(ctx context.Context, id int64) (*model.Pos, error) {
	zap.L().Debug("retrieving pos", zap.Int64("id", id))
	return s.store.GetByID(ctx, id)
}

// Delete removes the POS with the given id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	zap.L().Info("deleting pos", zap.Int64("id", id))
	return s.store.Delete(ctx, id)
}

// Upsert creates p when it has no id, otherwise updates the existing record.
// Updating an id that does not exist fails with *model.PosNotFoundError
// before anything is written.
func (s *Service) Upsert(ctx context.Context, p model.Pos) (*model.Pos, error) {
	if p.ID == nil {
		zap.L().Info("creating new pos", zap.String("name", p.Name))
		return s.performUpsert(ctx, p)
	}

	zap.L().Info("updating pos", zap.Int64("id", *p.ID))
	if _, err := s.store.GetByID(ctx, *p.ID); err != nil {
		return nil, err
	}
	return s.performUpsert(ctx, p)
}

// ImportFromOsmNode fetches the OSM node, converts it and stores it as a new POS.
func (s *Service) ImportFromOsmNode(ctx context.Context, nodeID int64) (*model.Pos, error) {
	zap.L().Info("importing pos from osm node", zap.Int64("node_id", nodeID))

	node, err := s.nodes.FetchNode(ctx, nodeID)
	if err != nil {
		return nil, err
	}

	p, err := ConvertNode(*node)
	if err != nil {
		return nil, err
	}

	saved, err := s.Upsert(ctx, *p)
	if err != nil {
		return nil, err
	}

	zap.L().Info("imported pos from osm node",
		zap.String("name", saved.Name),
		zap.Int64("node_id", nodeID),
	)
	return saved, nil
}

func (s *Service) performUpsert(ctx context.Context, p model.Pos) (*model.Pos, error) {
	saved, err := s.store.Upsert(ctx, p)
	if err != nil {
		var dup *model.DuplicateNameError
		if errors.As(err, &dup) {
			zap.L().Error("error upserting pos", zap.String("name", p.Name), zap.Error(err))
		}
		return nil, err
	}
	if saved.ID != nil {
		zap.L().Info("upserted pos", zap.Int64("id", *saved.ID))
	}
	return saved, nil
}
