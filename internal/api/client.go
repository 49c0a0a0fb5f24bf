// Package api is the HTTP client for the copyforge companion service:
// schedule previews, batch image upload, and post generation.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client talks to the companion service under its /api base path.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a client for the given base URL, e.g.
// "http://127.0.0.1:8787/api".
func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{},
	}
}

// FileUpload is one in-memory file for a batch upload.
type FileUpload struct {
	Filename string
	Data     []byte
}

type uploadResponse struct {
	Uploaded []Asset `json:"uploaded"`
}

type scheduleResponse struct {
	Schedule []ScheduleSlot `json:"schedule"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// SchedulePreview fetches the derived calendar for nPosts posts.
func (c *Client) SchedulePreview(ctx context.Context, nPosts int) ([]ScheduleSlot, error) {
	u := c.base + "/schedule-preview?n_posts=" + strconv.Itoa(nPosts)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("schedule preview: %s", resp.Status)
	}
	var out scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("schedule preview: %w", err)
	}
	return out.Schedule, nil
}

// UploadMultiple sends all files in one multipart batch and returns the
// stored descriptors in upload order.
func (c *Client) UploadMultiple(ctx context.Context, files []FileUpload) ([]Asset, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, f := range files {
		part, err := writer.CreateFormFile("files", f.Filename)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/upload-multiple", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("upload failed: %s: %s", resp.Status, detailOf(respBody, "bad response"))
	}
	var out uploadResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	return out.Uploaded, nil
}

// Generate submits the merged brand + campaign payload and returns the
// finished week. On a non-2xx status the server-provided detail message is
// surfaced when present.
func (c *Client) Generate(ctx context.Context, reqBody GenerateRequest) (*GenerationResult, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%s", detailOf(respBody, "generation failed"))
	}
	var out GenerationResult
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	return &out, nil
}

// ListUploads returns the assets currently stored on the service.
func (c *Client) ListUploads(ctx context.Context) ([]Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/uploads", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list uploads: %s", resp.Status)
	}
	var out struct {
		Files []Asset `json:"files"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	return out.Files, nil
}

// DeleteUpload removes one stored file by name.
func (c *Client) DeleteUpload(ctx context.Context, filename string) error {
	u := c.base + "/uploads/" + url.PathEscape(filename)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("delete upload: %s", resp.Status)
	}
	return nil
}

// detailOf pulls the "detail" message out of an error body, falling back
// when the body is absent or not JSON.
func detailOf(body []byte, fallback string) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Detail != "" {
		return e.Detail
	}
	return fallback
}
