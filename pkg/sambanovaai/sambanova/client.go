package sambanova

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// DefaultEndpoint is the playground completion endpoint.
const DefaultEndpoint = "https://cloud.sambanova.ai/api/completion"

const defaultOrigin = "https://cloud.sambanova.ai"

// maxErrorBodyBytes bounds how much of an error response body is captured.
const maxErrorBodyBytes = 8192

// Client calls the SambaNova Cloud playground completion endpoint with
// cookie-based authentication.
//
// The cookie is an opaque bearer credential: it is sent verbatim in the
// Cookie header and never parsed or validated beyond presence. A Client is
// immutable after construction and safe for concurrent use; each call owns
// its own request and response state.
type Client struct {
	cookie     string
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cookie string) Client {
	// NOTE: http.Client.Timeout covers the whole request lifetime (including reading resp.Body).
	// For streaming requests, we rely on context cancellation instead, so Timeout is left to 0.
	return Client{
		cookie:   cookie,
		endpoint: DefaultEndpoint,
		httpClient: &http.Client{
			Timeout: 0,
		},
		logger: slog.Default(),
	}
}

// WithEndpoint returns a copy targeting a different completion URL.
// Meant for tests and proxies.
func (c Client) WithEndpoint(endpoint string) Client {
	c.endpoint = endpoint
	return c
}

// WithHTTPClient returns a copy using the given HTTP client.
func (c Client) WithHTTPClient(h *http.Client) Client {
	c.httpClient = h
	return c
}

// WithLogger returns a copy logging through l. Only warning-level notes on
// malformed stream frames and debug request traces are emitted.
func (c Client) WithLogger(l *slog.Logger) Client {
	c.logger = l
	return c
}

// Chat sends prompt to a chat model and blocks until the response stream is
// fully drained. Cancellation and timeouts take effect through ctx, aborting
// the stream read promptly.
func (c Client) Chat(ctx context.Context, prompt string, cfg ChatConfig) (Response, error) {
	return c.ChatStream(ctx, prompt, cfg, nil)
}

// ChatStream is Chat with a per-delta callback for incremental rendering.
// The returned Response still carries the full concatenated text.
func (c Client) ChatStream(ctx context.Context, prompt string, cfg ChatConfig, onDelta DeltaFunc) (Response, error) {
	creq, err := newChatRequest(prompt, cfg)
	if err != nil {
		return Response{}, err
	}
	return c.complete(ctx, creq, onDelta)
}

// Vision sends prompt plus the image at imagePath to a vision model and
// blocks until the response stream is fully drained.
func (c Client) Vision(ctx context.Context, prompt, imagePath string, cfg VisionConfig) (Response, error) {
	return c.VisionStream(ctx, prompt, imagePath, cfg, nil)
}

// VisionStream is Vision with a per-delta callback.
func (c Client) VisionStream(ctx context.Context, prompt, imagePath string, cfg VisionConfig, onDelta DeltaFunc) (Response, error) {
	creq, err := newVisionRequest(prompt, imagePath, cfg)
	if err != nil {
		return Response{}, err
	}
	return c.complete(ctx, creq, onDelta)
}

// complete performs the round trip: POST the payload, classify the status,
// drain and decode the event stream.
func (c Client) complete(ctx context.Context, creq completionRequest, onDelta DeltaFunc) (Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := c.post(ctx, creq)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	result, err := decodeEventStream(ctx, resp.Body, c.logger, onDelta)
	if err != nil {
		return Response{}, err
	}

	return Response{
		Content:      result.content,
		Model:        creq.Body.Model,
		FinishReason: result.finishReason,
		Usage:        result.usage,
	}, nil
}

func (c Client) post(ctx context.Context, creq completionRequest) (*http.Response, error) {
	bodyBytes, err := json.Marshal(creq)
	if err != nil {
		return nil, fmt.Errorf("sambanova: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("sambanova: create request: %w", err)
	}
	setHeaders(req, c.cookie)

	if c.logger != nil {
		c.logger.Debug("sambanova: request",
			slog.String("endpoint", c.endpoint),
			slog.String("model", string(creq.Body.Model)))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// No hidden retry loop: remediation is the caller's decision.
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		_ = resp.Body.Close()
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(b)}
	}

	return resp, nil
}

// setHeaders attaches the cookie credential plus the browser-shaped header
// set the playground front end sends. The endpoint sits behind a browser
// check, so the request has to look like one.
func setHeaders(req *http.Request, cookie string) {
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", cookie)
	req.Header.Set("DNT", "1")
	req.Header.Set("Origin", defaultOrigin)
	req.Header.Set("Referer", defaultOrigin+"/")
	req.Header.Set("sec-ch-ua", `"Google Chrome";v="131", "Chromium";v="131", "Not_A Brand";v="24"`)
	req.Header.Set("sec-ch-ua-mobile", "?0")
	req.Header.Set("sec-ch-ua-platform", `"Windows"`)
	req.Header.Set("Sec-Fetch-Dest", "empty")
	req.Header.Set("Sec-Fetch-Mode", "cors")
	req.Header.Set("Sec-Fetch-Site", "same-origin")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36")
}
