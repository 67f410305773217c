package pos

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/seuhd/campus-coffee/internal/model"
)

func strPtr(s string) *string { return &s }

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	undo := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(undo)
	return logs
}

func completeNode() model.OsmNode {
	return model.OsmNode{
		NodeID:       5589879349,
		Name:         strPtr("Café Central"),
		Amenity:      strPtr("cafe"),
		AddrCity:     strPtr("Heidelberg"),
		AddrPostcode: strPtr("69117"),
	}
}

func TestConvertNode_CafeCentral(t *testing.T) {
	p, err := ConvertNode(completeNode())
	require.NoError(t, err)

	assert.Nil(t, p.ID)
	assert.Equal(t, "Café Central", p.Name)
	assert.Equal(t, model.PosTypeCafe, p.Type)
	assert.Equal(t, model.CampusAltstadt, p.Campus)
	require.NotNil(t, p.Description)
	assert.Equal(t, "Coffee shop", *p.Description)
	require.NotNil(t, p.PostalCode)
	assert.Equal(t, 69117, *p.PostalCode)
	assert.Equal(t, "Heidelberg", p.City)
	assert.Nil(t, p.Street)
	assert.Nil(t, p.HouseNumber)
}

func TestConvertNode_CarriesAddressAndDescription(t *testing.T) {
	node := completeNode()
	node.Description = strPtr("Best espresso in town")
	node.AddrStreet = strPtr("Marstallstraße")
	node.AddrHouseNumber = strPtr("11a")

	p, err := ConvertNode(node)
	require.NoError(t, err)
	assert.Equal(t, "Best espresso in town", *p.Description)
	assert.Equal(t, "Marstallstraße", *p.Street)
	assert.Equal(t, "11a", *p.HouseNumber)
}

func TestConvertNode_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(n *model.OsmNode)
		field  string
	}{
		{"nil name", func(n *model.OsmNode) { n.Name = nil }, "name"},
		{"empty name", func(n *model.OsmNode) { n.Name = strPtr("") }, "name"},
		{"blank name", func(n *model.OsmNode) { n.Name = strPtr("   ") }, "name"},
		{"nil amenity", func(n *model.OsmNode) { n.Amenity = nil }, "amenity"},
		{"blank amenity", func(n *model.OsmNode) { n.Amenity = strPtr("\t") }, "amenity"},
		{"nil city", func(n *model.OsmNode) { n.AddrCity = nil }, "addr:city"},
		{"blank city", func(n *model.OsmNode) { n.AddrCity = strPtr(" ") }, "addr:city"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := observeLogs(t)
			node := completeNode()
			tt.mutate(&node)

			p, err := ConvertNode(node)
			assert.Nil(t, p)
			var mf *model.NodeMissingFieldsError
			require.True(t, errors.As(err, &mf))
			assert.Equal(t, node.NodeID, mf.NodeID)

			entries := logs.FilterMessage("osm node is missing required field").All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.field, entries[0].ContextMap()["field"])
		})
	}
}

func TestConvertNode_EmptyNameWinsOverOtherFailures(t *testing.T) {
	logs := observeLogs(t)
	node := model.OsmNode{NodeID: 3, Name: strPtr("")}

	_, err := ConvertNode(node)
	var mf *model.NodeMissingFieldsError
	require.True(t, errors.As(err, &mf))

	entries := logs.FilterMessage("osm node is missing required field").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "name", entries[0].ContextMap()["field"])
}

func TestConvertNode_AmenityMapping(t *testing.T) {
	tests := []struct {
		amenity     string
		want        model.PosType
		description string
	}{
		{"cafe", model.PosTypeCafe, "Coffee shop"},
		{"CAFE", model.PosTypeCafe, "Coffee shop"},
		{"coffee_shop", model.PosTypeCafe, "Coffee shop"},
		{"bakery", model.PosTypeBakery, "Bakery"},
		{"Bakery", model.PosTypeBakery, "Bakery"},
		{"vending_machine", model.PosTypeVendingMachine, "Vending machine"},
		{"cafeteria", model.PosTypeCafeteria, "Cafeteria"},
		{"restaurant", model.PosTypeCafeteria, "Restaurant"},
		{"fast_food", model.PosTypeCafeteria, "Point of sale"},
		{"bar", model.PosTypeCafeteria, "Point of sale"},
		{"Pub", model.PosTypeCafeteria, "Point of sale"},
		{"florist", model.PosTypeCafe, "Point of sale"},
	}

	for _, tt := range tests {
		t.Run(tt.amenity, func(t *testing.T) {
			node := completeNode()
			node.Amenity = strPtr(tt.amenity)

			p, err := ConvertNode(node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Type)
			assert.Equal(t, tt.description, *p.Description)
		})
	}
}

func TestConvertNode_UnknownAmenityWarns(t *testing.T) {
	logs := observeLogs(t)
	node := completeNode()
	node.Amenity = strPtr("florist")

	p, err := ConvertNode(node)
	require.NoError(t, err)
	assert.Equal(t, model.PosTypeCafe, p.Type)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).FilterMessage("unknown amenity type, defaulting to CAFE").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "florist", warnings[0].ContextMap()["amenity"])
}

func TestConvertNode_KnownAmenityDoesNotWarn(t *testing.T) {
	logs := observeLogs(t)

	_, err := ConvertNode(completeNode())
	require.NoError(t, err)
	assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestConvertNode_PostalCodeAndCampus(t *testing.T) {
	tests := []struct {
		name       string
		postcode   *string
		wantCode   *int
		wantCampus model.CampusType
		wantWarn   string
	}{
		{"altstadt", strPtr("69117"), intPtr(69117), model.CampusAltstadt, ""},
		{"bergheim", strPtr("69115"), intPtr(69115), model.CampusBergheim, ""},
		{"inf 69120", strPtr("69120"), intPtr(69120), model.CampusINF, ""},
		{"inf 69121", strPtr("69121"), intPtr(69121), model.CampusINF, ""},
		{"padded", strPtr(" 69115 "), intPtr(69115), model.CampusBergheim, ""},
		{"unknown code", strPtr("00000"), intPtr(0), model.CampusAltstadt, "unknown postal code, defaulting campus to ALTSTADT"},
		{"other city", strPtr("10115"), intPtr(10115), model.CampusAltstadt, "unknown postal code, defaulting campus to ALTSTADT"},
		{"absent", nil, nil, model.CampusAltstadt, "osm node has no postal code"},
		{"blank", strPtr("  "), nil, model.CampusAltstadt, "osm node has no postal code"},
		{"non numeric", strPtr("abc"), nil, model.CampusAltstadt, "osm node has invalid postal code"},
		{"mixed", strPtr("69117a"), nil, model.CampusAltstadt, "osm node has invalid postal code"},
		{"out of int32 range", strPtr("4294967296"), nil, model.CampusAltstadt, "osm node has invalid postal code"},
		{"signed", strPtr("-69117"), intPtr(-69117), model.CampusAltstadt, "unknown postal code, defaulting campus to ALTSTADT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := observeLogs(t)
			node := completeNode()
			node.AddrPostcode = tt.postcode

			p, err := ConvertNode(node)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, p.PostalCode)
			assert.Equal(t, tt.wantCampus, p.Campus)

			warnings := logs.FilterLevelExact(zapcore.WarnLevel)
			if tt.wantWarn == "" {
				assert.Zero(t, warnings.Len())
				return
			}
			assert.Equal(t, 1, warnings.FilterMessage(tt.wantWarn).Len())
		})
	}
}

func TestConvertNode_MissingPostalCodeAlsoWarnsForCampus(t *testing.T) {
	logs := observeLogs(t)
	node := completeNode()
	node.AddrPostcode = strPtr("abc")

	_, err := ConvertNode(node)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("no postal code, defaulting campus to ALTSTADT").Len())
}

func TestConvertNode_BlankDescriptionIsGenerated(t *testing.T) {
	node := completeNode()
	node.Amenity = strPtr("bakery")
	node.Description = strPtr("   ")

	p, err := ConvertNode(node)
	require.NoError(t, err)
	assert.Equal(t, "Bakery", *p.Description)
}

func TestConvertNode_Idempotent(t *testing.T) {
	a, err := ConvertNode(completeNode())
	require.NoError(t, err)
	b, err := ConvertNode(completeNode())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func intPtr(i int) *int { return &i }
