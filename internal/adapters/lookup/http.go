package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iss-pass-service/internal/domain"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second
	userAgent      = "iss-pass-service/1.0"
	maxBodyBytes   = 1 << 20
)

type httpResponse struct {
	Code int
	Body []byte
}

// httpGetter issues the single GET each resolver is allowed per call.
// It holds no per-request state and is safe for concurrent use.
type httpGetter struct {
	session *http.Client
	baseURL string
}

func newHTTPGetter(session *http.Client, baseURL string) (httpGetter, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return httpGetter{}, errors.New("base url is empty")
	}
	if session == nil {
		session = &http.Client{Timeout: DefaultTimeout}
	}
	return httpGetter{session: session, baseURL: baseURL}, nil
}

func (g httpGetter) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	return req, nil
}

// get performs the round trip and reads the whole body. Any failure to
// complete the exchange is reported as a TransportError; status codes are
// left for the caller to judge.
func (g httpGetter) get(stage domain.Stage, req *http.Request) (*httpResponse, error) {
	resp, err := g.session.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Stage: stage, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, &domain.TransportError{Stage: stage, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(body) > maxBodyBytes {
		return nil, &domain.ParseError{
			Stage: stage,
			Err:   fmt.Errorf("response exceeds %d byte limit", maxBodyBytes),
		}
	}

	return &httpResponse{Code: resp.StatusCode, Body: body}, nil
}

func decodeJSON(stage domain.Stage, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return &domain.ParseError{Stage: stage, Err: err}
	}
	return nil
}
