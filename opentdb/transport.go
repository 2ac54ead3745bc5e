package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	headerUserAgent   = "User-Agent"
	headerContentType = "Content-Type"

	contentTypeJSON = "application/json"
)

// transport performs GET requests against the service and maps failures
// onto the error taxonomy. It holds no per-call state.
type transport struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// responseEnvelope is the part of every checked response the transport inspects
type responseEnvelope struct {
	ResponseCode *int `json:"response_code"`
}

// fetch issues a GET against endpoint and decodes the JSON body into out.
// When checkCode is set the body's response_code must be 0.
func (t *transport) fetch(ctx context.Context, endpoint string, params url.Values, checkCode bool, out any) error {
	requestURL := t.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(headerUserAgent, t.userAgent)
	req.Header.Set(headerContentType, contentTypeJSON)

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	t.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Open Trivia DB request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newHTTPError(resp.StatusCode, statusReason(resp))
	}

	if checkCode {
		var envelope responseEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return newParseError("Could not parse response.", err)
		}
		if envelope.ResponseCode == nil {
			return newParseError("Response has no response_code.", nil)
		}
		if code := *envelope.ResponseCode; code != 0 {
			return errorForResponseCode(code)
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return newParseError("Could not parse response.", err)
	}

	return nil
}

// statusReason returns the reason phrase of resp.Status ("404 Not Found" -> "Not Found")
func statusReason(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode) + " "
	if reason := strings.TrimPrefix(resp.Status, prefix); reason != "" && reason != resp.Status {
		return reason
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return resp.Status
}
