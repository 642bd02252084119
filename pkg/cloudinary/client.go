// Package cloudinary provides a lightweight Cloudinary API client.
// Uses raw HTTP calls (no SDK) to minimize external dependencies.
package cloudinary

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrNotConfigured is returned when any required configuration value is missing.
var ErrNotConfigured = errors.New("cloudinary: not configured")

// Config holds the four required Cloudinary settings.
type Config struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
}

// Validate fails fast when any required value is missing, naming the gaps.
func (c Config) Validate() error {
	var missing []string
	if c.CloudName == "" {
		missing = append(missing, "CLOUDINARY_CLOUD_NAME")
	}
	if c.APIKey == "" {
		missing = append(missing, "CLOUDINARY_API_KEY")
	}
	if c.APISecret == "" {
		missing = append(missing, "CLOUDINARY_API_SECRET")
	}
	if c.UploadPreset == "" {
		missing = append(missing, "CLOUDINARY_UPLOAD_PRESET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrNotConfigured, strings.Join(missing, ", "))
	}
	return nil
}

// SignParams are the signable upload parameters. Zero values are dropped from
// the signature, mirroring Cloudinary's rule that absent params are not signed.
type SignParams struct {
	Timestamp  int64  // seconds; 0 means "now"
	Folder     string
	PublicID   string
	Invalidate bool
	// UploadPreset overrides the configured preset when set.
	UploadPreset string
}

// Signature is a signed-upload parameter set handed to browser clients.
// The API secret itself is never part of it.
type Signature struct {
	Signature    string `json:"signature"`
	Timestamp    int64  `json:"timestamp"`
	UploadPreset string `json:"uploadPreset"`
	CloudName    string `json:"cloudName"`
	APIKey       string `json:"apiKey"`
}

// UploadResult is the subset of the upload response the application uses.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Client is the Cloudinary operations interface.
type Client interface {
	// SignUpload builds a deterministic signed-upload parameter set.
	// Identical params, timestamp and secret always yield the same signature.
	SignUpload(params SignParams) (Signature, error)
	// Upload sends the file to Cloudinary and returns its URL and public id.
	Upload(ctx context.Context, file io.Reader, params SignParams) (*UploadResult, error)
	// Destroy removes an uploaded asset. Returns the remote result string
	// ("ok", "not found", ...).
	Destroy(ctx context.Context, publicID string, invalidate bool) (string, error)
}

// RealClient talks to the Cloudinary REST API.
type RealClient struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient creates a RealClient for the given config.
func NewClient(cfg Config) *RealClient {
	return &RealClient{
		cfg:        cfg,
		baseURL:    "https://api.cloudinary.com",
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
	}
}

var _ Client = (*RealClient)(nil)

// signedValues returns the filtered parameter set that participates in the
// signature, with defaults applied.
func (c *RealClient) signedValues(params SignParams) (url.Values, int64) {
	ts := params.Timestamp
	if ts == 0 {
		ts = c.now().Unix()
	}
	preset := params.UploadPreset
	if preset == "" {
		preset = c.cfg.UploadPreset
	}

	v := url.Values{}
	v.Set("timestamp", strconv.FormatInt(ts, 10))
	v.Set("upload_preset", preset)
	if params.Folder != "" {
		v.Set("folder", params.Folder)
	}
	if params.PublicID != "" {
		v.Set("public_id", params.PublicID)
	}
	if params.Invalidate {
		v.Set("invalidate", "true")
	}
	return v, ts
}

// sign implements Cloudinary's request signing: parameters sorted by key,
// joined as key=value with '&', the API secret appended, SHA-1 hex digest.
func sign(values url.Values, secret string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+values.Get(k))
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}

// SignUpload builds a signed-upload parameter set for a browser-side upload.
func (c *RealClient) SignUpload(params SignParams) (Signature, error) {
	if err := c.cfg.Validate(); err != nil {
		return Signature{}, err
	}

	values, ts := c.signedValues(params)
	return Signature{
		Signature:    sign(values, c.cfg.APISecret),
		Timestamp:    ts,
		UploadPreset: values.Get("upload_preset"),
		CloudName:    c.cfg.CloudName,
		APIKey:       c.cfg.APIKey,
	}, nil
}

// uploadResponse is the remote upload/destroy payload subset.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Result    string `json:"result"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload signs the parameters server-side and posts the file as multipart
// form data. Single attempt; failures surface to the caller.
func (c *RealClient) Upload(ctx context.Context, file io.Reader, params SignParams) (*UploadResult, error) {
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}

	values, _ := c.signedValues(params)
	signature := sign(values, c.cfg.APISecret)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k := range values {
		if err := mw.WriteField(k, values.Get(k)); err != nil {
			return nil, fmt.Errorf("cloudinary: build form: %w", err)
		}
	}
	if err := mw.WriteField("api_key", c.cfg.APIKey); err != nil {
		return nil, fmt.Errorf("cloudinary: build form: %w", err)
	}
	if err := mw.WriteField("signature", signature); err != nil {
		return nil, fmt.Errorf("cloudinary: build form: %w", err)
	}
	fw, err := mw.CreateFormFile("file", "upload")
	if err != nil {
		return nil, fmt.Errorf("cloudinary: build form: %w", err)
	}
	if _, err := io.Copy(fw, file); err != nil {
		return nil, fmt.Errorf("cloudinary: read file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("cloudinary: build form: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", c.baseURL, c.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return &UploadResult{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

// Destroy deletes an asset by public id. Single attempt, no retry.
func (c *RealClient) Destroy(ctx context.Context, publicID string, invalidate bool) (string, error) {
	if err := c.cfg.Validate(); err != nil {
		return "", err
	}

	ts := c.now().Unix()
	values := url.Values{}
	values.Set("public_id", publicID)
	values.Set("timestamp", strconv.FormatInt(ts, 10))
	if invalidate {
		values.Set("invalidate", "true")
	}
	signature := sign(values, c.cfg.APISecret)
	values.Set("api_key", c.cfg.APIKey)
	values.Set("signature", signature)

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/destroy", c.baseURL, c.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(values.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	return resp.Result, nil
}

func (c *RealClient) do(req *http.Request) (*uploadResponse, error) {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("cloudinary: read response: %w", err)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("cloudinary: parse response (status %d): %w", res.StatusCode, err)
	}
	if res.StatusCode >= 400 {
		msg := "unknown error"
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}
		return nil, fmt.Errorf("cloudinary: status %d: %s", res.StatusCode, msg)
	}
	return &parsed, nil
}
