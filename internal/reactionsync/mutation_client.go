package reactionsync

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mikiasgoitom/reactsync/internal/infrastructure/config"
	applogger "github.com/mikiasgoitom/reactsync/internal/infrastructure/logger"
	usecasecontract "github.com/mikiasgoitom/reactsync/internal/usecase/contract"
)

// maxResponseBytes caps how much of a mutation response is read.
const maxResponseBytes = 64 << 10

// Submitter performs a mutation and classifies its outcome.
type Submitter interface {
	Submit(ctx context.Context, req MutationRequest) Outcome
}

// MutationClient sends reaction toggles to each target's endpoint.
type MutationClient struct {
	httpClient *http.Client
	cfg        config.ClientConfig
	logger     usecasecontract.IAppLogger
}

var _ Submitter = (*MutationClient)(nil)

// NewMutationClient wraps httpClient (which may carry a cookie jar for the
// session). Redirects are not followed: a mutation that redirects is a failure.
func NewMutationClient(httpClient *http.Client, cfg config.ClientConfig, logger usecasecontract.IAppLogger) *MutationClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	hc := *httpClient
	hc.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	logger = applogger.OrNop(logger)
	def := config.DefaultClientConfig()
	cfg.Method = strings.ToUpper(cfg.Method)
	switch cfg.Method {
	case http.MethodPost:
	case http.MethodGet:
	default:
		cfg.Method = def.Method
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.TokenField == "" {
		cfg.TokenField = def.TokenField
	}
	return &MutationClient{httpClient: &hc, cfg: cfg, logger: logger}
}

type countsBody struct {
	Likes    *int `json:"likes"`
	Dislikes *int `json:"dislikes"`
}

// Submit never returns an error: transport, status and decoding problems all
// become a Failure outcome.
func (c *MutationClient) Submit(ctx context.Context, req MutationRequest) Outcome {
	if req.Target() == nil {
		return Failure("mutation request has no target")
	}
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return Failure("build request: %v", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Failure("request timed out after %s", c.cfg.Timeout)
		}
		return Failure("request failed: %v", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return Unauthorized()
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return Failure("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Failure("request timed out after %s", c.cfg.Timeout)
		}
		return Failure("read response: %v", err)
	}
	var body countsBody
	if err := json.Unmarshal(data, &body); err != nil {
		return Failure("malformed response: %v", err)
	}
	if body.Likes == nil || body.Dislikes == nil {
		return Failure("malformed response: likes and dislikes are required")
	}
	if *body.Likes < 0 || *body.Dislikes < 0 {
		return Failure("malformed response: negative counts %d/%d", *body.Likes, *body.Dislikes)
	}
	return Success(*body.Likes, *body.Dislikes)
}

func (c *MutationClient) newRequest(ctx context.Context, req MutationRequest) (*http.Request, error) {
	endpoint := req.Target().Endpoint()
	form := url.Values{}
	form.Set("direction", string(req.Direction()))
	form.Set(c.cfg.TokenField, req.Token())

	var (
		httpReq *http.Request
		err     error
	)
	if c.cfg.Method == http.MethodGet {
		query := endpoint.Query()
		for key, values := range form {
			query[key] = values
		}
		endpoint.RawQuery = query.Encode()
		httpReq, err = http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
		if err != nil {
			return nil, err
		}
		c.logger.Warnf("sending %s on %s with GET; GET is not safe for state changes, prefer POST", req.Direction(), req.Target().ID())
		// Toggles are not idempotent; never serve one from a cache.
		httpReq.Header.Set("Cache-Control", "no-cache")
	} else {
		httpReq, err = http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Requested-With", "XMLHttpRequest")
	if req.Token() != "" {
		httpReq.Header.Set("X-CSRF-Token", req.Token())
	}
	if c.cfg.AccessToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	}
	return httpReq, nil
}
