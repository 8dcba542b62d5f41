package payments

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "drportal/pkg/errors"
	"drportal/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Output: io.Discard, Service: "test"})
}

func TestCreateIntent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/payment_intents" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_123" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", got)
		}
		if r.Header.Get("Stripe-Version") == "" {
			t.Error("Stripe-Version header missing")
		}

		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("amount"); got != "8000" {
			t.Errorf("amount = %q, want 8000 cents for an $80 price", got)
		}
		if got := r.PostForm.Get("currency"); got != "usd" {
			t.Errorf("currency = %q, want usd", got)
		}
		if got := r.PostForm.Get("payment_method_types[]"); got != "card" {
			t.Errorf("payment_method_types[] = %q, want card", got)
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret_abc"}`)); err != nil {
			t.Fatalf("write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewStripeClient("sk_test_123", testLogger()).WithBaseURL(server.URL).WithDryRun(false)

	secret, err := client.CreateIntent(context.Background(), 80)
	if err != nil {
		t.Fatalf("CreateIntent() error = %v", err)
	}
	if secret != "pi_1_secret_abc" {
		t.Errorf("client secret = %q, want %q", secret, "pi_1_secret_abc")
	}
}

func TestCreateIntentAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		if _, err := w.Write([]byte(`{"error":{"message":"card declined"}}`)); err != nil {
			t.Fatalf("write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewStripeClient("sk_test_123", testLogger()).WithBaseURL(server.URL).WithDryRun(false)

	_, err := client.CreateIntent(context.Background(), 80)
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.StatusCode() != http.StatusBadGateway {
		t.Fatalf("CreateIntent() error = %v, want upstream failure", err)
	}
}

func TestCreateIntentMissingClientSecret(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(`{"id":"pi_1"}`)); err != nil {
			t.Fatalf("write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewStripeClient("sk_test_123", testLogger()).WithBaseURL(server.URL).WithDryRun(false)

	if _, err := client.CreateIntent(context.Background(), 80); err == nil {
		t.Fatal("CreateIntent() accepted a response without client_secret")
	}
}

func TestCreateIntentRejectsNonPositivePrice(t *testing.T) {
	client := NewStripeClient("sk_test_123", testLogger())

	for _, price := range []int{0, -5} {
		if _, err := client.CreateIntent(context.Background(), price); err == nil {
			t.Errorf("CreateIntent(%d) accepted a non-positive price", price)
		}
	}
}

func TestCreateIntentDryRun(t *testing.T) {
	client := NewStripeClient("", testLogger()).WithDryRun(true)

	secret, err := client.CreateIntent(context.Background(), 80)
	if err != nil {
		t.Fatalf("CreateIntent() error = %v", err)
	}
	if !strings.HasPrefix(secret, "pi_dryrun_") {
		t.Errorf("dry-run secret = %q, want pi_dryrun_ prefix", secret)
	}
}

func TestCreateIntentEmptyKeyIsNotDryRun(t *testing.T) {
	apiCalled := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalled = true
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid API Key provided"}}`))
	}))
	defer server.Close()

	client := NewStripeClient("", testLogger()).WithBaseURL(server.URL)

	secret, err := client.CreateIntent(context.Background(), 80)
	if err == nil {
		t.Fatalf("CreateIntent() = %q, want an error without a key", secret)
	}
	if !apiCalled {
		t.Error("CreateIntent() fabricated a secret instead of calling the API")
	}
}
