package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"coldreach/internal/types"
)

// NoResponseText is shown when the API answers successfully without text.
const NoResponseText = "No response from API"

// ErrorKind classifies why a generation request failed.
type ErrorKind int

const (
	ErrorKindTransport ErrorKind = iota + 1
	ErrorKindStatus
	ErrorKindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindTransport:
		return "transport"
	case ErrorKindStatus:
		return "status"
	case ErrorKindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// RequestError is returned by PromptClient.Generate for every failure.
type RequestError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.Kind == ErrorKindStatus {
		return fmt.Sprintf("prompt api: http %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("prompt api: %s: %v", e.Kind, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// PromptClient talks to the generation API.
type PromptClient struct {
	BaseURL string
	Client  *http.Client
}

// NewPromptClient constructs a client. The http.Client has no timeout; a
// request lives until it completes or ctx is cancelled.
func NewPromptClient(baseURL string) *PromptClient {
	return &PromptClient{
		BaseURL: baseURL,
		Client:  &http.Client{},
	}
}

// Generate calls POST /prompt once and returns the generated text, or
// NoResponseText when the response carries none.
func (c *PromptClient) Generate(ctx context.Context, req types.PromptRequest) (string, error) {
	endpoint, err := c.resolve("prompt")
	if err != nil {
		return "", &RequestError{Kind: ErrorKindTransport, Err: err}
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return "", &RequestError{Kind: ErrorKindTransport, Err: err}
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", &RequestError{Kind: ErrorKindTransport, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(httpReq)
	if err != nil {
		return "", &RequestError{Kind: ErrorKindTransport, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &RequestError{Kind: ErrorKindTransport, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &RequestError{
			Kind:       ErrorKindStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", bytes.TrimSpace(body)),
		}
	}

	var out types.PromptResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &RequestError{Kind: ErrorKindDecode, StatusCode: resp.StatusCode, Err: err}
	}
	if out.Data == nil || out.Data.Text == "" {
		return NoResponseText, nil
	}
	return out.Data.Text, nil
}

// resolve joins path onto BaseURL, keeping any path prefix BaseURL has.
func (c *PromptClient) resolve(path string) (string, error) {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", err
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("invalid api base url %q", c.BaseURL)
	}
	return base.JoinPath(path).String(), nil
}
