package stripe

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

	"github.com/giftora/settlement-service/internal/domain"
)

const defaultBaseURL = "https://api.stripe.com"

// Client drives the Stripe Transfers API. It satisfies domain.TransferClient.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string, timeout time.Duration) *Client {
	c := NewClient(apiKey, timeout)
	c.baseURL = baseURL
	return c
}

type transferResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) CreateTransfer(ctx context.Context, req domain.TransferRequest) (*domain.TransferResult, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.AmountMinor, 10))
	form.Set("currency", req.Currency)
	form.Set("destination", req.Destination)
	form.Set("description", req.Description)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/transfers", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.SetBasicAuth(c.apiKey, "")

	response, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("transfer request failed: %w", err)
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var transfer transferResponse
		if err := json.Unmarshal(responseBodyBytes, &transfer); err != nil {
			return nil, err
		}
		return &domain.TransferResult{TransferID: transfer.ID}, nil
	}

	var stripeErr errorResponse
	if err := json.Unmarshal(responseBodyBytes, &stripeErr); err == nil && stripeErr.Error.Message != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrTransferFailed, stripeErr.Error.Message)
	}

	return nil, fmt.Errorf("%w: status %d", domain.ErrTransferFailed, response.StatusCode)
}
