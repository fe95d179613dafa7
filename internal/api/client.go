package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/pattarapon/hr-console/internal"
)

// TokenSource yields the bearer token at the moment a request starts. A
// request already in flight keeps the token it captured.
type TokenSource interface {
	Token() (string, bool)
}

// Client is the shared transport under every resource client. It attaches
// the bearer token, maps responses onto the failure taxonomy, and never
// retries: the controller decides what a failure means to the user.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
}

func NewClient(baseURL string, tokens TokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
		logger:     logger,
	}
}

// errorEnvelope is the remote API's error body, decoded best effort.
type errorEnvelope struct {
	Message string                `json:"message"`
	Errors  []internal.FieldError `json:"errors"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	// attempted even without a token; the server is the authority on
	// rejecting the call
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return internal.NewNetworkError("request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.errorFromResponse(req, resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return internal.NewServerError("failed to decode response", resp.StatusCode).WithCause(err)
	}
	return nil
}

func (c *Client) errorFromResponse(req *http.Request, resp *http.Response) error {
	var envelope errorEnvelope
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	_ = json.Unmarshal(body, &envelope)

	message := envelope.Message
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	c.logger.Warn("request rejected",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"message", message)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return internal.NewUnauthorizedError(message, resp.StatusCode)
	case resp.StatusCode >= http.StatusInternalServerError:
		return internal.NewServerError(message, resp.StatusCode)
	default:
		appErr := internal.NewValidationRejectedError(message, resp.StatusCode)
		if len(envelope.Errors) > 0 {
			appErr = appErr.WithDetails(internal.FieldErrors{Errors: envelope.Errors})
		}
		return appErr
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewReader(data), "application/json")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) deleteJSON(ctx context.Context, path string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// upload is the binary part of a multipart payload.
type upload struct {
	filename    string
	contentType string
	content     []byte
}

// sendMultipart writes a JSON "request" part plus an optional "file" part,
// the shape the employee endpoints expect.
func (c *Client) sendMultipart(ctx context.Context, method, path string, payload interface{}, file *upload, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="request"`}
	header["Content-Type"] = []string{"application/json"}
	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create request part: %w", err)
	}
	if err := json.NewEncoder(part).Encode(payload); err != nil {
		return fmt.Errorf("failed to encode request part: %w", err)
	}

	if file != nil {
		fileHeader := make(map[string][]string)
		fileHeader["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="file"; filename=%q`, file.filename)}
		if file.contentType != "" {
			fileHeader["Content-Type"] = []string{file.contentType}
		}
		filePart, err := writer.CreatePart(fileHeader)
		if err != nil {
			return fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := filePart.Write(file.content); err != nil {
			return fmt.Errorf("failed to write file part: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, &buf, writer.FormDataContentType())
	if err != nil {
		return err
	}
	return c.do(req, out)
}
