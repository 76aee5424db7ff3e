package acquirer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

// Client performs the outbound authorization call against the acquiring
// bank's HTTP API. One request, one attempt; retries are the caller's
// problem and nobody's policy here.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger.With(slog.String("component", "acquirer")),
	}
}

// Authorize sends the authorization request and returns the bank's decision.
// Any failure comes back as an *Error whose Kind reflects how the exchange
// broke down.
func (c *Client) Authorize(ctx context.Context, request Request) (Response, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return Response{}, &Error{Kind: KindUnexpected, Message: fmt.Sprintf("encoding authorization request: %v", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return Response{}, &Error{Kind: KindUnexpected, Message: fmt.Sprintf("building authorization request: %v", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// transport failures, timeouts included, surface here
		c.logger.Error("calling acquirer", slog.Any("err", err))
		return Response{}, &Error{Kind: KindUnexpected, Message: fmt.Sprintf("calling acquirer: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return c.decodeResponse(resp.Body)
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		c.logger.Error("acquirer rejected the request", slog.Int("status", resp.StatusCode))
		return Response{}, &Error{Kind: KindBadRequest, Message: fmt.Sprintf("acquirer call failed with http status code: %d", resp.StatusCode)}
	case http.StatusServiceUnavailable:
		c.logger.Error("acquirer is unavailable", slog.Int("status", resp.StatusCode))
		return Response{}, &Error{Kind: KindServiceUnavailable, Message: fmt.Sprintf("acquirer call failed with http status code: %d", resp.StatusCode)}
	default:
		c.logger.Error("unexpected acquirer status", slog.Int("status", resp.StatusCode))
		return Response{}, &Error{Kind: KindUnexpected, Message: fmt.Sprintf("unexpected error calling acquirer, http status code: %d", resp.StatusCode)}
	}
}

func (c *Client) decodeResponse(body io.Reader) (Response, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return Response{}, &Error{Kind: KindUnexpected, Message: fmt.Sprintf("reading acquirer response: %v", err)}
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		c.logger.Error("acquirer returned an empty response")
		return Response{}, &Error{Kind: KindEmptyResponse, Message: "acquirer returned an empty response"}
	}

	response := Response{}
	if err := json.Unmarshal(raw, &response); err != nil {
		c.logger.Error("acquirer returned an unparseable response", slog.Any("err", err))
		return Response{}, &Error{Kind: KindEmptyResponse, Message: "acquirer returned an unparseable response"}
	}

	return response, nil
}
