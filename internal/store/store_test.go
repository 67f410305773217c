package store

import (
	"time"

	"github.com/seuhd/campus-coffee/internal/model"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func int64Ptr(i int64) *int64 { return &i }

func cafeCentral() model.Pos {
	return model.Pos{
		Name:        "Café Central",
		Description: strPtr("Coffee shop"),
		Type:        model.PosTypeCafe,
		Campus:      model.CampusAltstadt,
		PostalCode:  intPtr(69117),
		City:        "Heidelberg",
	}
}

var fixedTime = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
