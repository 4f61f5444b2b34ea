package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/resilient/executor"
)

const collectionPayload = `{
  "items": [
    {
      "createdOn": "2024-05-01T10:00:00Z",
      "fieldData": {
        "name": "Silent Hill",
        "director": "Christophe Gans",
        "category": "horror",
        "short-description": "Fog.",
        "thumbnail-portrait": {"url": "https://cdn.example.com/sh-portrait.png"},
        "thumbnail-landscape": {"url": "https://cdn.example.com/sh-landscape.png"}
      }
    },
    {"createdOn": "2024-05-02T10:00:00Z", "local": true}
  ]
}`

func TestClient_FetchMovieCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		assert.Equal(t, APIVersion, r.Header.Get("accept-version"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		if r.URL.Path != "/v2/collections/635c3e79/items" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(collectionPayload))
	}))
	defer server.Close()

	exec := executor.New(executor.WithTransport(executor.NewHTTPTransport(
		executor.WithHTTPClient(server.Client()),
		executor.WithRoundTripper(BearerTransport("secret-token", server.Client().Transport)),
	)))
	client := New(exec, WithBaseURL(server.URL+"/v2"))

	collection, err := client.FetchMovieCollection(context.Background(), "635c3e79")
	require.NoError(t, err)
	require.Len(t, collection.Items, 2)
	assert.Equal(t, "Silent Hill", collection.Items[0].FieldData.Name)
	assert.Equal(t, "horror", collection.Items[0].FieldData.CategoryID)
	assert.True(t, *collection.Items[1].Local)
	assert.Equal(t, []string{"https://cdn.example.com/sh-portrait.png", "https://cdn.example.com/sh-landscape.png"}, collection.ImageURLs())

	_, err = client.FetchMovieCollection(context.Background(), "unknown")
	var httpErr *executor.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
}

func TestClient_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()
	client := New(executor.New(executor.WithTransport(executor.NewHTTPTransport(executor.WithHTTPClient(server.Client())))), WithBaseURL(server.URL))
	_, err := client.FetchMovieCollection(context.Background(), "any")
	var httpErr *executor.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)

	_, err = client.FetchMovieCollection(context.Background(), "")
	assert.Error(t, err)
}
