// Package drive is a read-only Google Drive v3 client. It lists the files
// of one shared folder using an API key; nothing here writes to Drive.
package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// MimePDF is the only media type the library import accepts.
const MimePDF = "application/pdf"

// File is one file-metadata entry from a folder listing. Drive serializes
// size as a decimal string.
type File struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	MimeType       string    `json:"mimeType"`
	Size           int64     `json:"size,string"`
	ModifiedTime   time.Time `json:"modifiedTime"`
	WebViewLink    string    `json:"webViewLink"`
	WebContentLink string    `json:"webContentLink"`
	ThumbnailLink  string    `json:"thumbnailLink,omitempty"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	maxRetries int
}

func NewClient(apiKey string, rps int, maxRetries int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:    "https://www.googleapis.com",
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries: maxRetries,
	}
}

type listResponse struct {
	Files []File `json:"files"`
}

// ListFiles returns the files directly under folderID.
func (c *Client) ListFiles(ctx context.Context, folderID string) ([]File, error) {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("'%s' in parents", folderID))
	q.Set("key", c.apiKey)
	q.Set("fields", "files(id,name,mimeType,size,modifiedTime,webViewLink,webContentLink,thumbnailLink)")

	var res listResponse
	if err := c.get(ctx, c.baseURL+"/drive/v3/files?"+q.Encode(), &res); err != nil {
		return nil, err
	}
	return res.Files, nil
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
				continue
			}
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		err = json.NewDecoder(resp.Body).Decode(target)
		resp.Body.Close()
		return err
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}
