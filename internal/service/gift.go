package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mtlprog/giftideas/internal/config"
	"github.com/mtlprog/giftideas/internal/model"
	"golang.org/x/sync/semaphore"
)

// maxErrorBody limits how much of a failed response body ends up in the error.
const maxErrorBody = 512

// ErrRequestFailed wraps every failure of the suggestion request: transport
// errors, non-2xx responses and malformed bodies alike.
var ErrRequestFailed = errors.New("gift request failed")

// GiftService calls the remote gift suggestion endpoint.
type GiftService struct {
	endpoint string
	client   *http.Client
	inFlight *semaphore.Weighted
}

// GiftServiceOption is a functional option for configuring a GiftService.
type GiftServiceOption func(*GiftService)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(client *http.Client) GiftServiceOption {
	return func(s *GiftService) {
		s.client = client
	}
}

// WithMaxInFlight bounds the number of concurrent outbound requests.
// Values <= 0 leave requests unbounded.
func WithMaxInFlight(n int) GiftServiceOption {
	return func(s *GiftService) {
		if n > 0 {
			s.inFlight = semaphore.NewWeighted(int64(n))
		} else {
			s.inFlight = nil
		}
	}
}

// NewGiftService creates a client for the service rooted at apiURL.
// The request goes to apiURL + "/generate-gift".
func NewGiftService(apiURL string, opts ...GiftServiceOption) (*GiftService, error) {
	apiURL = strings.TrimRight(strings.TrimSpace(apiURL), "/")
	if apiURL == "" {
		return nil, errors.New("API URL is required")
	}

	s := &GiftService{
		endpoint: apiURL + config.GeneratePath,
		client:   &http.Client{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Endpoint returns the full URL requests are sent to.
func (s *GiftService) Endpoint() string {
	return s.endpoint
}

type generateRequest struct {
	PriceMin int    `json:"priceMin"`
	PriceMax int    `json:"priceMax"`
	Gender   string `json:"gender"`
	Age      int    `json:"age"`
	Hobbies  string `json:"hobbies"`
}

type generateResponse struct {
	Result *string `json:"result"`
}

// Generate posts the form snapshot and returns the suggestion text verbatim.
// Every error it returns wraps ErrRequestFailed.
func (s *GiftService) Generate(ctx context.Context, in model.FormInput) (string, error) {
	if s.inFlight != nil {
		if err := s.inFlight.Acquire(ctx, 1); err != nil {
			return "", fmt.Errorf("%w: acquire slot: %w", ErrRequestFailed, err)
		}
		defer s.inFlight.Release(1)
	}

	payload, err := json.Marshal(generateRequest{
		PriceMin: in.PriceMin,
		PriceMax: in.PriceMax,
		Gender:   string(in.Gender),
		Age:      in.Age,
		Hobbies:  in.Hobbies,
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %w", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ErrRequestFailed, err)
	}
	if out.Result == nil || *out.Result == "" {
		return "", fmt.Errorf("%w: response has no result", ErrRequestFailed)
	}

	return *out.Result, nil
}
