// Package instagram provides the HTTP client for the Instagram Graph API.
// All network calls to Instagram are isolated here so that services only
// deal with typed responses and the errors.Is/errors.As taxonomy, and tests
// can swap in a fake implementation.
package instagram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client provides access to the Instagram Graph API.
type Client interface {
	// PublishComment publishes a comment on an Instagram media object.
	// Calls POST /{mediaID}/comments on the Graph API.
	// Returns ErrMediaNotFound (wrapped) if the media no longer exists,
	// *APIError for any other failure.
	PublishComment(ctx context.Context, mediaID, message string) (*CommentResponse, error)

	// GetMedia fetches metadata for an Instagram media object.
	// Calls GET /{mediaID} with a fields selection. Same error contract
	// as PublishComment.
	GetMedia(ctx context.Context, mediaID string) (*Media, error)
}

// CommentResponse contains the result of a successful comment publish.
type CommentResponse struct {
	// ID is the Instagram comment ID assigned by the API.
	ID string `json:"id"`
}

// Media contains the descriptive fields of an Instagram media object.
type Media struct {
	ID        string `json:"id"`
	Caption   string `json:"caption,omitempty"`
	MediaType string `json:"media_type,omitempty"`
}

// mediaFields is the field selection requested from the Graph API on reads.
const mediaFields = "id,caption,media_type"

// client implements the Client interface over net/http.
type client struct {
	http *http.Client
	cfg  Config
}

// Ensure client implements Client interface.
var _ Client = (*client)(nil)

// NewClient creates a Graph API client from the given configuration.
// The configured timeout bounds every call; no retries are performed.
func NewClient(cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid instagram config: %w", err)
	}

	return &client{
		http: &http.Client{Timeout: cfg.Timeout},
		cfg:  cfg,
	}, nil
}

// PublishComment publishes a comment on an Instagram media object.
func (c *client) PublishComment(ctx context.Context, mediaID, message string) (*CommentResponse, error) {
	endpoint := fmt.Sprintf("%s/%s/comments", strings.TrimRight(c.cfg.BaseURL, "/"), mediaID)

	payload, err := json.Marshal(map[string]string{
		"message":      message,
		"access_token": c.cfg.AccessToken,
	})
	if err != nil {
		return nil, &APIError{Message: "failed to encode request body", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &APIError{Message: "failed to build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("network error while calling Instagram API: %v", err), Err: err}
	}
	defer resp.Body.Close()

	var result CommentResponse
	if err := c.handleResponse(resp, mediaID, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GetMedia fetches metadata for an Instagram media object.
func (c *client) GetMedia(ctx context.Context, mediaID string) (*Media, error) {
	params := url.Values{}
	params.Set("fields", mediaFields)
	params.Set("access_token", c.cfg.AccessToken)

	endpoint := fmt.Sprintf("%s/%s?%s", strings.TrimRight(c.cfg.BaseURL, "/"), mediaID, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &APIError{Message: "failed to build request", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("network error while calling Instagram API: %v", err), Err: err}
	}
	defer resp.Body.Close()

	var result Media
	if err := c.handleResponse(resp, mediaID, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// apiErrorBody is the error envelope the Graph API embeds in response bodies.
type apiErrorBody struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Subcode int    `json:"error_subcode"`
}

// handleResponse parses a Graph API response and classifies failures.
//
// The Graph API returns HTTP 200 even for business-logic failures and embeds
// the details under an "error" key, so the body is inspected regardless of
// the transport status. On success the body is decoded into out.
func (c *client) handleResponse(resp *http.Response, mediaID string, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Message: "failed to read Instagram API response", Err: err}
	}

	var envelope struct {
		Error *apiErrorBody `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return &APIError{
			Message: fmt.Sprintf("invalid JSON response from Instagram API (status=%d)", resp.StatusCode),
			Err:     err,
		}
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !ok || envelope.Error != nil {
		apiErr := envelope.Error
		if apiErr == nil {
			apiErr = &apiErrorBody{}
		}

		// Instagram returns code 100 / subcode 33 for missing objects
		if apiErr.Code == 100 && apiErr.Subcode == 33 {
			return fmt.Errorf("instagram media %q: %w", mediaID, ErrMediaNotFound)
		}

		message := apiErr.Message
		if message == "" {
			message = strings.TrimSpace(string(data))
		}
		code := apiErr.Code
		if code == 0 {
			code = resp.StatusCode
		}

		return &APIError{Message: message, Code: code}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &APIError{
				Message: fmt.Sprintf("unexpected response shape from Instagram API (status=%d)", resp.StatusCode),
				Err:     err,
			}
		}
	}

	return nil
}
