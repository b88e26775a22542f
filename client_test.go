package jsonapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, MediaType, r.Header.Get("Accept"))
		doc := &Document{
			Links: Links{"self": NewLink(r.URL.Path)},
		}
		data, err := NewData(ResourceObject{Type: "articles", Id: "1"})
		assert.NoError(t, err)
		doc.Data = data
		WriteDocument(w, http.StatusOK, doc)
	}))
	defer server.Close()

	var client Client
	doc, err := client.Get(context.Background(), server.URL+"/articles/1")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.True(t, doc.Data.IsSingle())

	resource, err := DecodeSingle[ResourceObject](doc.Data)
	require.NoError(t, err)
	assert.Equal(t, "1", resource.Id)
}

func TestClient_Get_EmptyBody(t *testing.T) {
	for name, body := range map[string]string{
		"Empty": "",
		"Null":  "null",
	} {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer server.Close()

			var client Client
			doc, err := client.Get(context.Background(), server.URL)
			require.NoError(t, err)
			assert.Nil(t, doc)
		})
	}
}

func TestClient_Get_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	var client Client
	_, err := client.Get(context.Background(), server.URL)
	var transport *TransportError
	require.ErrorAs(t, err, &transport)
}

func TestClient_Get_Cancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	var client Client
	_, err := client.Get(ctx, server.URL)
	var transport *TransportError
	require.ErrorAs(t, err, &transport)
	assert.ErrorIs(t, err, context.Canceled)
}
