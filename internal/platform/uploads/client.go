// Package uploads is the HTTP client for the black-box file upload endpoint:
// it accepts bytes and returns a stable URL for the stored object.
package uploads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// ErrTooLarge is returned when the file exceeds the configured size cap.
// The upload is aborted rather than truncated.
var ErrTooLarge = errors.New("upload exceeds size limit")

type Client struct {
	httpClient *http.Client
	uploadURL  string
	maxBytes   int64
}

type uploadResponse struct {
	URL string `json:"url"`
}

func NewClient(uploadURL string, maxBytes int64, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		uploadURL:  uploadURL,
		maxBytes:   maxBytes,
	}
}

// Upload streams a single file as multipart form data and returns the stored
// object URL.
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		// Read one byte past the cap so an oversize file fails instead of
		// being silently truncated to a corrupt image.
		n, err := io.Copy(part, io.LimitReader(file, c.maxBytes+1))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if n > c.maxBytes {
			pw.CloseWithError(ErrTooLarge)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, pr)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The transport may rewrap the pipe error, so match by text as well.
		if errors.Is(err, ErrTooLarge) || strings.Contains(err.Error(), ErrTooLarge.Error()) {
			return "", ErrTooLarge
		}
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upload returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", fmt.Errorf("upload response missing url")
	}
	return out.URL, nil
}
