package osm

import "github.com/seuhd/campus-coffee/internal/model"

// Tag keys read from a node. All other keys are ignored.
const (
	TagName            = "name"
	TagAmenity         = "amenity"
	TagDescription     = "description"
	TagAddrStreet      = "addr:street"
	TagAddrHouseNumber = "addr:housenumber"
	TagAddrPostcode    = "addr:postcode"
	TagAddrCity        = "addr:city"
)

// BuildNode assembles an OsmNode from a tag map. Missing keys stay nil.
func BuildNode(nodeID int64, tags map[string]string) model.OsmNode {
	return model.OsmNode{
		NodeID:          nodeID,
		Name:            lookup(tags, TagName),
		Amenity:         lookup(tags, TagAmenity),
		Description:     lookup(tags, TagDescription),
		AddrStreet:      lookup(tags, TagAddrStreet),
		AddrHouseNumber: lookup(tags, TagAddrHouseNumber),
		AddrPostcode:    lookup(tags, TagAddrPostcode),
		AddrCity:        lookup(tags, TagAddrCity),
	}
}

func lookup(tags map[string]string, key string) *string {
	v, ok := tags[key]
	if !ok {
		return nil
	}
	return &v
}
