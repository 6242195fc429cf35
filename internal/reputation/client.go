// Package reputation queries the remote abuse-report service by fingerprint.
package reputation

import (
	"bytes"
	"callguard/internal/failopen"
	"callguard/internal/fingerprint"
	"callguard/internal/models"
	"callguard/internal/providers"
	"callguard/internal/structures"
	"context"
	"fmt"
	json "github.com/goccy/go-json"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxResponseSize = 1 << 20 // 1 MB

type ClientInterface interface {
	// Lookup returns the records for fp. ok is false when the lookup failed
	// and records is the fail-open default.
	Lookup(ctx context.Context, fp fingerprint.Fingerprint) (records []models.ReputationRecord, ok bool)
}

type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	timeout    time.Duration
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
	policy     failopen.Policy[[]models.ReputationRecord]
}

type lookupRequest struct {
	Hash string `json:"p_hash"`
}

func NewClient(conf *structures.Config, httpClient *http.Client, logger providers.Logger, metrics providers.MetricsProviderInterface, reporter failopen.Reporter) ClientInterface {
	return &Client{
		httpClient: httpClient,
		endpoint:   strings.TrimRight(conf.Reputation.BaseURL, "/") + conf.Reputation.Path,
		apiKey:     conf.Reputation.APIKey,
		timeout:    conf.Reputation.Timeout,
		logger:     logger,
		metrics:    metrics,
		policy:     failopen.Reputation(reporter),
	}
}

func (c *Client) Lookup(ctx context.Context, fp fingerprint.Fingerprint) ([]models.ReputationRecord, bool) {
	start := time.Now()
	records, err := c.fetch(ctx, fp)
	c.metrics.ObserveLookupDuration(failopen.ComponentReputation, time.Since(start))
	if err == nil {
		c.logger.Debugf(providers.TypeLookup, "reputation %s: %d records", fp.Short(), len(records))
	}
	return c.policy.Resolve(records, err), err == nil
}

// fetch sends only the fingerprint. The raw number never leaves the device.
func (c *Client) fetch(ctx context.Context, fp fingerprint.Fingerprint) ([]models.ReputationRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(lookupRequest{Hash: fp.String()})
	if err != nil {
		return nil, failopen.Malformed(failopen.ComponentReputation, "encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, failopen.Transport(failopen.ComponentReputation, "build request", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, failopen.Transport(failopen.ComponentReputation, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return nil, failopen.Transport(failopen.ComponentReputation, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, failopen.Transport(failopen.ComponentReputation, "read body", err)
	}

	return c.decode(data)
}

func (c *Client) decode(data []byte) ([]models.ReputationRecord, error) {
	var raw []models.ReputationRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, failopen.Malformed(failopen.ComponentReputation, "decode records", err)
	}

	records := make([]models.ReputationRecord, 0, len(raw))
	for i, r := range raw {
		if r.Tag == "" || r.Count < 1 {
			c.logger.Warnf(providers.TypeLookup, "dropping reputation entry %d: tag=%q count=%d", i, r.Tag, r.Count)
			continue
		}
		records = append(records, r)
	}
	return records, nil
}
