package pos

import (
	"context"

	"github.com/seuhd/campus-coffee/internal/model"
)

// DataStore persists POS records. Implementations enforce unique names and
// report a collision as *model.DuplicateNameError.
type DataStore interface {
	Clear(ctx context.Context) error
	GetAll(ctx context.Context) ([]model.Pos, error)
	// GetByID returns *model.PosNotFoundError when no record has the id.
	GetByID(ctx context.Context, id int64) (*model.Pos, error)
	// Upsert inserts p when p.ID is nil and updates the record with p.ID otherwise.
	Upsert(ctx context.Context, p model.Pos) (*model.Pos, error)
	// Delete returns *model.PosNotFoundError when no record has the id.
	Delete(ctx context.Context, id int64) error
}

// NodeSource loads OSM nodes. Its only error kind is *model.NodeNotFoundError.
type NodeSource interface {
	FetchNode(ctx context.Context, nodeID int64) (*model.OsmNode, error)
}
