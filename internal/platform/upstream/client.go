package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/ehr/medrecord/internal/platform/fhir"
)

const (
	userAgent      = "medrecord-fhir-client/1.0"
	defaultTimeout = 30 * time.Second
)

// Client is the live Source. Each FetchCategory issues exactly one GET
// against the configured FHIR server; there is no retry. The transport is
// stateless per call, so one Client is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	hc      *http.Client
	log     zerolog.Logger
}

// NewClient builds a live source for the given base server URL. apiKey is
// optional; when present it is sent as a bearer Authorization header.
// A non-positive timeout falls back to the 30 second default.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		hc:      &http.Client{Timeout: timeout},
		log:     logger,
	}
}

func (c *Client) FetchCategory(ctx context.Context, req Request) (*Result, error) {
	u := c.requestURL(req)

	body, err := c.get(ctx, u)
	if err != nil {
		c.log.Error().
			Err(err).
			Str("category", req.Category).
			Str("patient_id", req.PatientID).
			Msg("fhir request failed")
		return nil, err
	}

	if req.ByID {
		return &Result{Resources: []map[string]interface{}{body}}, nil
	}

	entries := fhir.BundleEntries(body)
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return &Result{Resources: entries}, nil
}

func (c *Client) SearchPatients(ctx context.Context, name, identifier string) (*Result, error) {
	params := map[string]string{"_count": "5"}
	if name != "" {
		params["name"] = name
	}
	if identifier != "" {
		params["identifier"] = identifier
	}
	return c.FetchCategory(ctx, Request{
		Category: "patientSearch",
		Path:     "Patient",
		Params:   params,
	})
}

func (c *Client) requestURL(req Request) string {
	if req.ByID {
		return fmt.Sprintf("%s/%s/%s", c.baseURL, req.Path, url.PathEscape(req.PatientID))
	}
	q := url.Values{}
	if req.PatientID != "" {
		q.Set("patient", req.PatientID)
	}
	for k, v := range req.Params {
		q.Set(k, v)
	}
	return fmt.Sprintf("%s/%s?%s", c.baseURL, req.Path, q.Encode())
}

func (c *Client) get(ctx context.Context, u string) (map[string]interface{}, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/fhir+json")
	httpReq.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fhir request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fhir server returned status %d", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return body, nil
}
