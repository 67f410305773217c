package pos

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/seuhd/campus-coffee/internal/model"
)

// ConvertNode maps an OSM node onto a new, unsaved POS.
//
// name, amenity and addr:city are required and checked in that order; the
// first one missing yields *model.NodeMissingFieldsError. Everything else
// falls back to a default:
//   - unknown amenities become CAFE
//   - a missing or non-numeric postcode becomes nil
//   - an unknown or nil postcode maps to the ALTSTADT campus
//   - a blank description is generated from the amenity
func ConvertNode(node model.OsmNode) (*model.Pos, error) {
	log := zap.L().With(zap.Int64("node_id", node.NodeID))
	log.Debug("converting osm node to pos")

	if isBlank(node.Name) {
		log.Error("osm node is missing required field", zap.String("field", "name"))
		return nil, &model.NodeMissingFieldsError{NodeID: node.NodeID}
	}
	if isBlank(node.Amenity) {
		log.Error("osm node is missing required field", zap.String("field", "amenity"))
		return nil, &model.NodeMissingFieldsError{NodeID: node.NodeID}
	}
	if isBlank(node.AddrCity) {
		log.Error("osm node is missing required field", zap.String("field", "addr:city"))
		return nil, &model.NodeMissingFieldsError{NodeID: node.NodeID}
	}

	posType := amenityToPosType(*node.Amenity, log)
	log.Debug("mapped amenity", zap.String("amenity", *node.Amenity), zap.String("type", string(posType)))

	postalCode := parsePostalCode(node.AddrPostcode, log)
	campus := campusForPostalCode(postalCode, log)

	description := describeAmenity(*node.Amenity)
	if !isBlank(node.Description) {
		description = *node.Description
	}

	return &model.Pos{
		Name:        *node.Name,
		Description: &description,
		Type:        posType,
		Campus:      campus,
		Street:      node.AddrStreet,
		HouseNumber: node.AddrHouseNumber,
		PostalCode:  postalCode,
		City:        *node.AddrCity,
	}, nil
}

func amenityToPosType(amenity string, log *zap.Logger) model.PosType {
	switch strings.ToLower(amenity) {
	case "cafe", "coffee_shop":
		return model.PosTypeCafe
	case "bakery":
		return model.PosTypeBakery
	case "vending_machine":
		return model.PosTypeVendingMachine
	case "cafeteria", "restaurant", "fast_food", "bar", "pub":
		return model.PosTypeCafeteria
	default:
		log.Warn("unknown amenity type, defaulting to CAFE", zap.String("amenity", amenity))
		return model.PosTypeCafe
	}
}

func parsePostalCode(raw *string, log *zap.Logger) *int {
	if isBlank(raw) {
		log.Warn("osm node has no postal code")
		return nil
	}
	// postal_code is a 32-bit INTEGER column.
	parsed, err := strconv.ParseInt(strings.TrimSpace(*raw), 10, 32)
	if err != nil {
		log.Warn("osm node has invalid postal code", zap.String("postal_code", *raw))
		return nil
	}
	code := int(parsed)
	return &code
}

// campusForPostalCode uses the Heidelberg postal codes around the campuses.
func campusForPostalCode(postalCode *int, log *zap.Logger) model.CampusType {
	if postalCode == nil {
		log.Warn("no postal code, defaulting campus to ALTSTADT")
		return model.CampusAltstadt
	}
	switch *postalCode {
	case 69117:
		return model.CampusAltstadt
	case 69115:
		return model.CampusBergheim
	case 69120, 69121:
		return model.CampusINF
	default:
		log.Warn("unknown postal code, defaulting campus to ALTSTADT", zap.Int("postal_code", *postalCode))
		return model.CampusAltstadt
	}
}

func describeAmenity(amenity string) string {
	switch strings.ToLower(amenity) {
	case "cafe", "coffee_shop":
		return "Coffee shop"
	case "bakery":
		return "Bakery"
	case "vending_machine":
		return "Vending machine"
	case "cafeteria":
		return "Cafeteria"
	case "restaurant":
		return "Restaurant"
	default:
		return "Point of sale"
	}
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
