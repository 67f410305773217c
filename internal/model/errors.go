package model

import "fmt"

// NodeNotFoundError means an OSM node could not be fetched or read. Missing
// nodes, unexpected statuses, transport failures and unreadable documents all
// end up here; the cause is only logged.
type NodeNotFoundError struct {
	NodeID int64
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("osm node %d not found", e.NodeID)
}

// NodeMissingFieldsError means an OSM node lacks a tag required to build a POS.
type NodeMissingFieldsError struct {
	NodeID int64
}

func (e *NodeMissingFieldsError) Error() string {
	return fmt.Sprintf("osm node %d is missing required fields", e.NodeID)
}

// DuplicateNameError is returned by the store when a POS name is already taken.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("pos with name %q already exists", e.Name)
}

// PosNotFoundError is returned when no POS exists for an id.
type PosNotFoundError struct {
	ID int64
}

func (e *PosNotFoundError) Error() string {
	return fmt.Sprintf("pos with id %d not found", e.ID)
}
