package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "drportal/pkg/errors"
	"drportal/pkg/logger"
)

// IntentCreator creates a payment intent for a treatment price and
// returns the client secret the frontend completes the card flow with.
type IntentCreator interface {
	CreateIntent(ctx context.Context, price int) (string, error)
}

// StripeClient talks to the Stripe REST API directly. The surface used
// here is one endpoint with a form-encoded body, so a pinned API
// version over net/http is all that is needed.
type StripeClient struct {
	secretKey  string
	baseURL    string
	apiVersion string
	httpClient *http.Client
	log        *logger.Logger
	dryRun     bool
}

func NewStripeClient(secretKey string, log *logger.Logger) *StripeClient {
	return &StripeClient{
		secretKey:  secretKey,
		baseURL:    "https://api.stripe.com",
		apiVersion: "2024-06-20",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// WithBaseURL overrides the Stripe API base URL (for testing).
func (s *StripeClient) WithBaseURL(baseURL string) *StripeClient {
	if baseURL != "" {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
	return s
}

// WithDryRun returns fabricated client secrets without calling Stripe.
func (s *StripeClient) WithDryRun(enabled bool) *StripeClient {
	s.dryRun = enabled
	return s
}

// CreateIntent creates a card payment intent for the given price in
// whole dollars. Stripe expects the amount in cents.
func (s *StripeClient) CreateIntent(ctx context.Context, price int) (string, error) {
	if price <= 0 {
		return "", apperrors.InvalidInput("price must be positive")
	}

	if s.dryRun {
		secret := "pi_dryrun_" + uuid.New().String()[:8] + "_secret_test"
		s.log.Info("stripe dry run: skipping payment intent creation", "price", price)
		return secret, nil
	}

	form := url.Values{}
	form.Set("amount", fmt.Sprintf("%d", price*100))
	form.Set("currency", "usd")
	form.Set("payment_method_types[]", "card")

	apiURL := s.baseURL + "/v1/payment_intents"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", apperrors.Internal("failed to build stripe request", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Stripe-Version", s.apiVersion)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", apperrors.Upstream("stripe", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		s.log.Error("stripe api error", "status", resp.StatusCode, "body", string(body))
		return "", apperrors.Upstream("stripe", fmt.Errorf("stripe api status %d", resp.StatusCode))
	}

	var parsed stripePaymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", apperrors.Upstream("stripe", fmt.Errorf("decode response: %w", err))
	}
	if parsed.ClientSecret == "" {
		return "", apperrors.Upstream("stripe", fmt.Errorf("response missing client_secret"))
	}

	return parsed.ClientSecret, nil
}

// stripePaymentIntent is the subset of Stripe's PaymentIntent we need.
type stripePaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}
