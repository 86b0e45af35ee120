package siteapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/pkg/requestid"
	"github.com/dmitrymomot/sitekit/pkg/siteapi"
)

func ptr[T any](v T) *T { return &v }

func TestNew_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "ftp://x", "not a url", "http://"} {
		_, err := siteapi.New(raw)
		assert.ErrorIs(t, err, siteapi.ErrInvalidBaseURL, raw)
	}
}

func TestUpdateContentBatch(t *testing.T) {
	t.Parallel()

	var got struct {
		method, path, query, auth, contentType, requestID string
		body                                              map[string]any
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.RawQuery
		got.auth = r.Header.Get("Authorization")
		got.contentType = r.Header.Get("Content-Type")
		got.requestID = r.Header.Get(requestid.Header)
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &got.body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"compiled":{"title":"Hi"},"version":8}`))
	}))
	t.Cleanup(srv.Close)

	c, err := siteapi.New(srv.URL+"/", siteapi.WithTokenSource(siteapi.StaticToken("tok")))
	require.NoError(t, err)

	ctx := requestid.WithContext(context.Background(), "req-1")
	resp, err := c.UpdateContentBatch(ctx, siteapi.BatchRequest{
		Version: ptr(int64(7)),
		Updates: []siteapi.Update{{Path: "title", Type: "text", Value: "Hi"}},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/website-state/update-content-batch", got.path)
	assert.Equal(t, "compile=true", got.query)
	assert.Equal(t, "Bearer tok", got.auth)
	assert.Equal(t, "application/json", got.contentType)
	assert.Equal(t, "req-1", got.requestID)
	assert.Equal(t, map[string]any{
		"version": float64(7),
		"updates": []any{map[string]any{"path": "title", "type": "text", "value": "Hi"}},
	}, got.body)

	assert.Equal(t, map[string]any{"title": "Hi"}, resp.Compiled)
	require.NotNil(t, resp.Version)
	assert.Equal(t, int64(8), *resp.Version)
}

func TestUpdateContentBatch_OmitsVersionAndToken(t *testing.T) {
	t.Parallel()

	var body map[string]any
	var auth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Values("Authorization")
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &body)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	c, err := siteapi.New(srv.URL)
	require.NoError(t, err)

	resp, err := c.UpdateContentBatch(context.Background(), siteapi.BatchRequest{})
	require.NoError(t, err)
	assert.Nil(t, resp.Compiled)
	assert.Nil(t, resp.Version)

	assert.Empty(t, auth)
	assert.NotContains(t, body, "version")
	assert.Equal(t, []any{}, body["updates"])
}

func TestUpdateContentBatch_StatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c, err := siteapi.New(srv.URL)
	require.NoError(t, err)

	_, err = c.UpdateContentBatch(context.Background(), siteapi.BatchRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, siteapi.ErrUnexpectedStatus)

	var se *siteapi.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Equal(t, "boom", se.Body)
}

func TestUpdateContentBatch_InvalidBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	t.Cleanup(srv.Close)

	c, err := siteapi.New(srv.URL)
	require.NoError(t, err)

	_, err = c.UpdateContentBatch(context.Background(), siteapi.BatchRequest{})
	assert.ErrorIs(t, err, siteapi.ErrInvalidResponse)
}

func TestUpdateContentBatch_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := siteapi.New(url)
	require.NoError(t, err)

	_, err = c.UpdateContentBatch(context.Background(), siteapi.BatchRequest{})
	assert.ErrorIs(t, err, siteapi.ErrRequestFailed)
}

func TestLookupSite(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/public/site", r.URL.Path)
		switch r.URL.Query().Get("slug") {
		case "maria":
			_, _ = w.Write([]byte(`{"artistId":"abc123"}`))
		case "empty":
			_, _ = w.Write([]byte(`{}`))
		case "broken":
			w.WriteHeader(http.StatusBadGateway)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	c, err := siteapi.New(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	id, err := c.LookupSite(ctx, "maria")
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	_, err = c.LookupSite(ctx, "nobody")
	assert.ErrorIs(t, err, siteapi.ErrSiteNotFound)

	_, err = c.LookupSite(ctx, "empty")
	assert.ErrorIs(t, err, siteapi.ErrSiteNotFound)

	_, err = c.LookupSite(ctx, "broken")
	assert.ErrorIs(t, err, siteapi.ErrUnexpectedStatus)
	assert.NotErrorIs(t, err, siteapi.ErrSiteNotFound)

	_, err = c.LookupSite(ctx, " ")
	assert.ErrorIs(t, err, siteapi.ErrEmptySlug)
}

func TestFileToken(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "token")
	ts := siteapi.FileToken(path)

	tok, err := ts.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, os.WriteFile(path, []byte("first\n"), 0o600))
	tok, err = ts.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", tok)

	require.NoError(t, os.WriteFile(path, []byte("second"), 0o600))
	tok, err = ts.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second", tok)
}

func TestConfig_TokenSource(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tok, err := siteapi.Config{Token: "a", TokenFile: "/nope"}.TokenSource().Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", tok)

	tok, err = siteapi.Config{}.TokenSource().Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestContextToken(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var auth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		auth = append(auth, r.Header.Get("Authorization"))
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	c, err := siteapi.New(srv.URL, siteapi.WithTokenSource(siteapi.ContextToken{}))
	require.NoError(t, err)

	req := siteapi.BatchRequest{Updates: []siteapi.Update{{Path: "title", Type: "text", Value: "Hi"}}}
	_, err = c.UpdateContentBatch(siteapi.WithToken(context.Background(), "alice"), req)
	require.NoError(t, err)
	_, err = c.UpdateContentBatch(siteapi.WithToken(context.Background(), "bob"), req)
	require.NoError(t, err)

	_, err = c.UpdateContentBatch(context.Background(), req)
	assert.ErrorIs(t, err, siteapi.ErrNoToken)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Bearer alice", "Bearer bob"}, auth)
	assert.Equal(t, "alice", siteapi.TokenFromContext(siteapi.WithToken(context.Background(), "alice")))
}
