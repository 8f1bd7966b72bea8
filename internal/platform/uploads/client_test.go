package uploads

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadReturnsStoredURL(t *testing.T) {
	var gotFilename string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		gotFilename = header.Filename
		gotBody, _ = io.ReadAll(file)

		json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example/avatar.png"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 1024, time.Second)

	url, err := client.Upload(context.Background(), "avatar.png", strings.NewReader("image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/avatar.png", url)
	assert.Equal(t, "avatar.png", gotFilename)
	assert.Equal(t, "image bytes", string(gotBody))
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example/avatar.png"})
	}))
	defer srv.Close()

	// Cap of 8 bytes against a 16-byte file: the upload must fail instead of
	// storing a truncated image.
	client := NewClient(srv.URL, 8, time.Second)

	url, err := client.Upload(context.Background(), "avatar.png", strings.NewReader("0123456789abcdef"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Empty(t, url)
}

func TestUploadAcceptsFileExactlyAtCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		body, _ := io.ReadAll(file)
		assert.Len(t, body, 8)

		json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example/avatar.png"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 8, time.Second)

	url, err := client.Upload(context.Background(), "avatar.png", strings.NewReader("01234567"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/avatar.png", url)
}

func TestUploadFailureStatusSurfacesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 1024, time.Second)

	_, err := client.Upload(context.Background(), "avatar.png", strings.NewReader("image bytes"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
