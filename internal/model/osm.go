package model

// OsmNode holds the POS-relevant tags of an OpenStreetMap node.
// A nil field means the tag was absent on the node.
type OsmNode struct {
	NodeID          int64   `json:"node_id"`
	Name            *string `json:"name,omitempty"`
	Amenity         *string `json:"amenity,omitempty"`
	Description     *string `json:"description,omitempty"`
	AddrStreet      *string `json:"addr_street,omitempty"`
	AddrHouseNumber *string `json:"addr_housenumber,omitempty"`
	AddrPostcode    *string `json:"addr_postcode,omitempty"`
	AddrCity        *string `json:"addr_city,omitempty"`
}
