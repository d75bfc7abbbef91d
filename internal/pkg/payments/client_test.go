package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/classbook/internal/pkg/apperrors"
)

func TestCreateIntent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, intentsPath, r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "2999", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, []string{"card"}, r.PostForm["payment_method_types[]"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret_abc","amount":2999,"currency":"usd","status":"requires_payment_method"}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIURL: server.URL, SecretKey: "sk_test", Currency: "USD", Timeout: time.Second})

	intent, err := client.CreateIntent(context.Background(), 2999)
	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret_abc", intent.ClientSecret)
	assert.Equal(t, "usd", client.Currency())
}

func TestCreateIntent_ProcessorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIURL: server.URL, SecretKey: "sk_test", Currency: "usd", Timeout: time.Second})

	_, err := client.CreateIntent(context.Background(), 500)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrExternalService)
	assert.Contains(t, err.Error(), "declined")
}

func TestCreateIntent_Unreachable(t *testing.T) {
	client := NewClient(Config{APIURL: "http://127.0.0.1:1", SecretKey: "sk_test", Currency: "usd", Timeout: 200 * time.Millisecond})

	_, err := client.CreateIntent(context.Background(), 500)
	assert.ErrorIs(t, err, apperrors.ErrExternalService)
}

func TestCreateIntent_RejectsNonPositive(t *testing.T) {
	client := NewClient(Config{APIURL: "http://127.0.0.1:1", Currency: "usd"})

	_, err := client.CreateIntent(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
