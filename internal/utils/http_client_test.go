package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_SendsBaseURLAndHeaders(t *testing.T) {
	var gotPath, gotAppID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAppID = r.Header.Get("X-Knack-Application-Id")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL+"/v1", time.Second, map[string]string{"X-Knack-Application-Id": "app-1"})

	resp, err := client.R().Get("/objects/object_1/records")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "/v1/objects/object_1/records", gotPath)
	assert.Equal(t, "app-1", gotAppID)
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	client := NewHTTPClient(srv.URL, 20*time.Millisecond, nil)

	_, err := client.R().Get("/")
	assert.Error(t, err)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	c1 := NewHTTPClient("http://a.example", 0, nil)
	c2 := NewHTTPClient("http://a.example", 0, nil)

	assert.NotSame(t, c1.Client, c2.Client)
}
