// Package osm reads point-of-sale data from OpenStreetMap nodes.
package osm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/seuhd/campus-coffee/internal/fetcher"
	"github.com/seuhd/campus-coffee/internal/model"
)

// DefaultBaseURL is the OSM API endpoint for single nodes.
const DefaultBaseURL = "https://www.openstreetmap.org/api/0.6/node"

// Document is the raw body of a node response.
type Document []byte

// Client fetches OSM nodes by id.
type Client struct {
	baseURL string
	fetcher fetcher.Fetcher
}

// NewClient creates a Client that reads nodes from baseURL using f.
func NewClient(baseURL string, f fetcher.Fetcher) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		fetcher: f,
	}
}

// Fetch downloads the document for nodeID. Every failure, whether a missing
// node, an unexpected status or a transport error, is reported as a
// *model.NodeNotFoundError.
func (c *Client) Fetch(ctx context.Context, nodeID int64) (Document, error) {
	url := fmt.Sprintf("%s/%d", c.baseURL, nodeID)
	zap.L().Info("fetching osm node", zap.Int64("node_id", nodeID), zap.String("url", url))

	resp, err := c.fetcher.Get(ctx, url)
	if err != nil {
		zap.L().Error("error fetching osm node", zap.Int64("node_id", nodeID), zap.Error(err))
		return nil, &model.NodeNotFoundError{NodeID: nodeID}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		zap.L().Warn("osm node not found",
			zap.Int64("node_id", nodeID),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &model.NodeNotFoundError{NodeID: nodeID}
	case resp.StatusCode != http.StatusOK:
		zap.L().Error("osm api returned unexpected status",
			zap.Int64("node_id", nodeID),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &model.NodeNotFoundError{NodeID: nodeID}
	}

	zap.L().Debug("received osm node document",
		zap.Int64("node_id", nodeID),
		zap.ByteString("body", resp.Body),
	)
	return Document(resp.Body), nil
}

// FetchNode fetches, parses and assembles the node with the given id.
func (c *Client) FetchNode(ctx context.Context, nodeID int64) (*model.OsmNode, error) {
	doc, err := c.Fetch(ctx, nodeID)
	if err != nil {
		return nil, err
	}

	tags, err := ExtractTags(ctx, nodeID, doc)
	if err != nil {
		var nf *model.NodeNotFoundError
		if errors.As(err, &nf) {
			return nil, nf
		}
		zap.L().Error("error parsing osm node document", zap.Int64("node_id", nodeID), zap.Error(err))
		return nil, &model.NodeNotFoundError{NodeID: nodeID}
	}

	node := BuildNode(nodeID, tags)
	return &node, nil
}

// ExtractTags returns the tags of the first <node> element in doc. A document
// without a node yields *model.NodeNotFoundError; a malformed document yields
// a wrapped parse error.
func ExtractTags(ctx context.Context, nodeID int64, doc Document) (map[string]string, error) {
	elem, found, err := fetcher.DecodeFirst[nodeElement](ctx, bytes.NewReader(doc), "node")
	if err != nil {
		return nil, err
	}
	if !found {
		zap.L().Error("no <node> element in osm document", zap.Int64("node_id", nodeID))
		return nil, &model.NodeNotFoundError{NodeID: nodeID}
	}

	tags := make(map[string]string, len(elem.Tags))
	for _, t := range elem.Tags {
		tags[t.Key] = t.Value
	}

	zap.L().Info("extracted tags from osm node", zap.Int64("node_id", nodeID), zap.Int("tags", len(tags)))
	zap.L().Debug("osm node tags", zap.Int64("node_id", nodeID), zap.Any("tags", tags))
	return tags, nil
}

type nodeElement struct {
	ID   int64        `xml:"id,attr"`
	Tags []tagElement `xml:"tag"`
}

type tagElement struct {
	Key   string `xml:"k,attr"`
	Value string `xml:"v,attr"`
}
