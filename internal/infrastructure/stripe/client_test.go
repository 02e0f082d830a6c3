package stripe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/giftora/settlement-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransfer_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/transfers", r.URL.Path)

		username, _, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "sk_test_key", username)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "9000", r.PostFormValue("amount"))
		assert.Equal(t, "usd", r.PostFormValue("currency"))
		assert.Equal(t, "acct_1", r.PostFormValue("destination"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "tr_123", "object": "transfer"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("sk_test_key", server.URL, 5*time.Second)
	result, err := client.CreateTransfer(context.Background(), domain.TransferRequest{
		AmountMinor: 9000,
		Currency:    "usd",
		Destination: "acct_1",
		Description: "Payout for order GFT-1001",
	})
	require.NoError(t, err)
	assert.Equal(t, "tr_123", result.TransferID)
}

func TestCreateTransfer_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"type": "invalid_request_error", "code": "balance_insufficient", "message": "Insufficient funds"}}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("sk_test_key", server.URL, 5*time.Second)
	_, err := client.CreateTransfer(context.Background(), domain.TransferRequest{
		AmountMinor: 50,
		Currency:    "usd",
		Destination: "acct_1",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTransferFailed))
	assert.Contains(t, err.Error(), "Insufficient funds")
}

func TestCreateTransfer_NonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("sk_test_key", server.URL, 5*time.Second)
	_, err := client.CreateTransfer(context.Background(), domain.TransferRequest{
		AmountMinor: 50,
		Currency:    "usd",
		Destination: "acct_1",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTransferFailed))
	assert.Contains(t, err.Error(), "status 502")
}
