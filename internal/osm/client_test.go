package osm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/seuhd/campus-coffee/internal/fetcher"
	"github.com/seuhd/campus-coffee/internal/model"
)

const cafeCentralXML = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="openstreetmap-cgimap">
 <node id="5589879349" visible="true" version="4" lat="49.4122362" lon="8.7077640">
  <tag k="addr:city" v="Heidelberg"/>
  <tag k="addr:housenumber" v="12"/>
  <tag k="addr:postcode" v="69117"/>
  <tag k="addr:street" v="Hauptstraße"/>
  <tag k="amenity" v="cafe"/>
  <tag k="name" v="Café Central"/>
  <tag k="opening_hours" v="Mo-Su 09:00-18:00"/>
 </node>
</osm>`

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	undo := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(undo)
	return logs
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{Timeout: 2 * time.Second})
	return NewClient(srv.URL+"/api/0.6/node/", f), srv
}

func requireNotFound(t *testing.T, err error, nodeID int64) {
	t.Helper()
	var nf *model.NodeNotFoundError
	require.True(t, errors.As(err, &nf), "expected NodeNotFoundError, got %v", err)
	assert.Equal(t, nodeID, nf.NodeID)
}

func TestFetch_OK(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/0.6/node/5589879349", r.URL.Path)
		w.Write([]byte(cafeCentralXML))
	})

	doc, err := c.Fetch(context.Background(), 5589879349)
	require.NoError(t, err)
	assert.Equal(t, cafeCentralXML, string(doc))
}

func TestFetch_StatusesCollapseToNotFound(t *testing.T) {
	for _, status := range []int{
		http.StatusNotFound,
		http.StatusGone,
		http.StatusInternalServerError,
		http.StatusTooManyRequests,
		http.StatusForbidden,
		http.StatusNoContent,
	} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			})

			doc, err := c.Fetch(context.Background(), 42)
			assert.Nil(t, doc)
			requireNotFound(t, err, 42)
		})
	}
}

func TestFetch_LogLevels(t *testing.T) {
	logs := observeLogs(t)

	gone, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	})
	_, err := gone.Fetch(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("osm node not found").FilterLevelExact(zapcore.WarnLevel).Len())

	broken, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err = broken.Fetch(context.Background(), 2)
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("osm api returned unexpected status").FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestFetch_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, fetcher.NewHTTPFetcher(fetcher.HTTPOptions{Timeout: time.Second}))
	_, err := c.Fetch(context.Background(), 7)
	requireNotFound(t, err, 7)
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(cafeCentralXML))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, fetcher.NewHTTPFetcher(fetcher.HTTPOptions{Timeout: 50 * time.Millisecond}))
	_, err := c.Fetch(context.Background(), 8)
	requireNotFound(t, err, 8)
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	c := NewClient("", nil)
	assert.Equal(t, DefaultBaseURL, c.baseURL)
}

func TestFetchNode_OK(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(cafeCentralXML))
	})

	node, err := c.FetchNode(context.Background(), 5589879349)
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, int64(5589879349), node.NodeID)
	require.NotNil(t, node.Name)
	assert.Equal(t, "Café Central", *node.Name)
	assert.Equal(t, "cafe", *node.Amenity)
	assert.Equal(t, "Hauptstraße", *node.AddrStreet)
	assert.Equal(t, "12", *node.AddrHouseNumber)
	assert.Equal(t, "69117", *node.AddrPostcode)
	assert.Equal(t, "Heidelberg", *node.AddrCity)
	assert.Nil(t, node.Description)
}

func TestFetchNode_NoNodeElement(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<osm version="0.6"></osm>`))
	})

	_, err := c.FetchNode(context.Background(), 9)
	requireNotFound(t, err, 9)
}

func TestFetchNode_MalformedDocument(t *testing.T) {
	logs := observeLogs(t)
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<osm><node id="1"><tag k="name" v="x"></osm>`))
	})

	_, err := c.FetchNode(context.Background(), 10)
	requireNotFound(t, err, 10)
	assert.Equal(t, 1, logs.FilterMessage("error parsing osm node document").Len())
}

func TestFetchNode_EmptyBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := c.FetchNode(context.Background(), 11)
	requireNotFound(t, err, 11)
}

func TestFetchNode_FetchErrorShortCircuits(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	node, err := c.FetchNode(context.Background(), 12)
	assert.Nil(t, node)
	requireNotFound(t, err, 12)
}
