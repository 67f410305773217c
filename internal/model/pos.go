package model

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// PosType classifies a point of sale.
type PosType string

const (
	PosTypeCafe           PosType = "CAFE"
	PosTypeBakery         PosType = "BAKERY"
	PosTypeVendingMachine PosType = "VENDING_MACHINE"
	PosTypeCafeteria      PosType = "CAFETERIA"
)

// Valid reports whether t is one of the known POS types.
func (t PosType) Valid() bool {
	switch t {
	case PosTypeCafe, PosTypeBakery, PosTypeVendingMachine, PosTypeCafeteria:
		return true
	}
	return false
}

// CampusType is the campus zone a POS belongs to.
type CampusType string

const (
	CampusAltstadt CampusType = "ALTSTADT"
	CampusBergheim CampusType = "BERGHEIM"
	CampusINF      CampusType = "INF"
)

// Valid reports whether c is one of the known campuses.
func (c CampusType) Valid() bool {
	switch c {
	case CampusAltstadt, CampusBergheim, CampusINF:
		return true
	}
	return false
}

// Pos is a point of sale. ID is nil until the record has been persisted.
type Pos struct {
	ID          *int64     `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string     `json:"name" yaml:"name"`
	Description *string    `json:"description,omitempty" yaml:"description,omitempty"`
	Type        PosType    `json:"type" yaml:"type"`
	Campus      CampusType `json:"campus" yaml:"campus"`
	Street      *string    `json:"street,omitempty" yaml:"street,omitempty"`
	HouseNumber *string    `json:"house_number,omitempty" yaml:"house_number,omitempty"`
	PostalCode  *int       `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`
	City        string     `json:"city" yaml:"city"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" yaml:"updated_at"`
}

// Validate checks the fields every stored POS must carry.
func (p Pos) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return eris.New("pos: name is required")
	}
	if !p.Type.Valid() {
		return eris.Errorf("pos: invalid type %q", p.Type)
	}
	if !p.Campus.Valid() {
		return eris.Errorf("pos: invalid campus %q", p.Campus)
	}
	if strings.TrimSpace(p.City) == "" {
		return eris.New("pos: city is required")
	}
	return nil
}
