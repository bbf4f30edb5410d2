package branding

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client is the stateless transport layer for branding assets. Every method
// is a single round trip; caching and aggregation live in the Coordinator.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient validates the backend base URL and returns a ready client. A zero
// timeout selects the default.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("branding: missing base url")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.New("branding: invalid base url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.New("branding: invalid base url scheme")
	}
	if u.Host == "" {
		return nil, errors.New("branding: invalid base url host")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// List fetches every stored asset. Any non-2xx status is a TransportError.
func (c *Client) List(ctx context.Context) ([]Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/assets", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, readTransportError(resp)
	}

	var out struct {
		Assets []Asset `json:"assets"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Assets, nil
}

// GetByType fetches a single asset. A 404 is not an error: it maps to
// (nil, nil), the legitimate "operator never configured this asset" state.
func (c *Client) GetByType(ctx context.Context, t AssetType) (*Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/assets/"+url.PathEscape(string(t)), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return nil, nil
	}
	if resp.StatusCode/100 != 2 {
		return nil, readTransportError(resp)
	}

	var a Asset
	if err := json.NewDecoder(resp.Body).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Upload creates the asset for a type that has none yet.
func (c *Client) Upload(ctx context.Context, t AssetType, p Payload, token string) (*Asset, error) {
	return c.write(ctx, http.MethodPost, c.baseURL+"/assets", t, p, token)
}

// Update replaces the existing asset for a type.
func (c *Client) Update(ctx context.Context, t AssetType, p Payload, token string) (*Asset, error) {
	return c.write(ctx, http.MethodPut, c.baseURL+"/assets/"+url.PathEscape(string(t)), t, p, token)
}

// Remove deletes the asset so subsequent GetByType calls report absent.
func (c *Client) Remove(ctx context.Context, t AssetType, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/assets/"+url.PathEscape(string(t)), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return writeError(resp.StatusCode, readBody(resp))
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) write(ctx context.Context, method, target string, t AssetType, p Payload, token string) (*Asset, error) {
	body, contentType, err := encodePayload(t, p)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, writeError(resp.StatusCode, readBody(resp))
	}

	var a Asset
	if err := json.NewDecoder(resp.Body).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// encodePayload builds the multipart form the backend expects: an AssetType
// field plus a File part (logo) or Text field (footer).
func encodePayload(t AssetType, p Payload) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("AssetType", string(t)); err != nil {
		return nil, "", err
	}
	if p.File != nil {
		name := p.FileName
		if name == "" {
			name = "file"
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="File"; filename=%q`, name))
		if p.ContentType != "" {
			h.Set("Content-Type", p.ContentType)
		}
		fw, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := fw.Write(p.File); err != nil {
			return nil, "", err
		}
	} else {
		if err := w.WriteField("Text", p.Text); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func readTransportError(resp *http.Response) error {
	return &TransportError{
		StatusCode: resp.StatusCode,
		Body:       readBody(resp),
	}
}

func readBody(resp *http.Response) string {
	const maxBody = 4096
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	return string(b)
}
