package proposalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"loanproposal/cmd/internal/domain/entity"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "http://127.0.0.1:8000/api/"
	DefaultTimeout = 10 * time.Second

	proposalsPath = "proposals/"

	// maxResponseBytes bounds how much of a response body is read.
	maxResponseBytes = 1 << 20
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrMissingValue     = errors.New("proposal value is required")
	ErrNullProposal     = errors.New("null proposal in response")
)

type requestIDKey struct{}

// WithRequestID attaches the id forwarded to the API as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the proposals API rooted at baseURL. An
// empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// CreateProposal posts the proposal and returns the proposals the API reports
// as created. Any transport failure, non-2xx status or undecodable body is an
// error.
func (c *Client) CreateProposal(ctx context.Context, in *entity.ProposalInput) ([]*entity.Proposal, error) {
	if in.Value == nil {
		return nil, ErrMissingValue
	}

	payload, err := json.Marshal(&proposalRequest{
		FullName: in.FullName,
		CPF:      in.CPF,
		Address:  in.Address,
		Value:    *in.Value,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+proposalsPath, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("proposals api: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}

	var created []*proposalResponse
	if err = json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("proposals api: malformed response: %w", err)
	}

	proposals := make([]*entity.Proposal, len(created))
	for i, p := range created {
		if p == nil {
			return nil, fmt.Errorf("proposals api: malformed response: %w at index %d", ErrNullProposal, i)
		}
		proposals[i] = p.ToDomain()
	}
	return proposals, nil
}
