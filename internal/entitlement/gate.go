// Package entitlement decides whether the configured account may see lookup results.
package entitlement

import (
	"callguard/internal/failopen"
	"callguard/internal/models"
	"callguard/internal/providers"
	"callguard/internal/structures"
	"context"
	"fmt"
	json "github.com/goccy/go-json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	maxResponseSize = 64 << 10
	selectColumns   = "subscription_until,is_active"
)

// timestampLayouts covers what PostgREST emits for timestamptz, timestamp and date columns.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02",
}

type GateInterface interface {
	// IsEntitled reports whether results may be disclosed. An empty
	// accountID means no account is configured.
	IsEntitled(ctx context.Context, accountID string) bool
}

type Gate struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	timeout    time.Duration
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
	policy     failopen.Policy[bool]
	now        func() time.Time
}

type accountRow struct {
	SubscriptionUntil *string `json:"subscription_until"`
	IsActive          *bool   `json:"is_active"`
}

func NewGate(conf *structures.Config, httpClient *http.Client, logger providers.Logger, metrics providers.MetricsProviderInterface, reporter failopen.Reporter) GateInterface {
	return &Gate{
		httpClient: httpClient,
		endpoint:   strings.TrimRight(conf.Entitlement.BaseURL, "/") + "/rest/v1/" + conf.Entitlement.Table,
		apiKey:     conf.Entitlement.APIKey,
		timeout:    conf.Entitlement.Timeout,
		logger:     logger,
		metrics:    metrics,
		policy:     failopen.Entitlement(reporter),
		now:        time.Now,
	}
}

func (g *Gate) IsEntitled(ctx context.Context, accountID string) bool {
	if accountID == "" {
		g.logger.Debugf(providers.TypeLookup, "no account configured, entitlement open")
		return true
	}

	start := time.Now()
	status, found, err := g.fetch(ctx, accountID)
	g.metrics.ObserveLookupDuration(failopen.ComponentEntitlement, time.Since(start))
	if err != nil {
		return g.policy.Resolve(false, err)
	}
	if !found {
		g.logger.Debugf(providers.TypeLookup, "account %s has no record, entitlement open", accountID)
		return true
	}

	entitled := status.ValidAt(g.now())
	if !entitled {
		g.logger.Infof(providers.TypeLookup, "account %s subscription not valid (active=%t)", accountID, status.IsActive)
	}
	return entitled
}

func (g *Gate) fetch(ctx context.Context, accountID string) (models.SubscriptionStatus, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	query := url.Values{}
	query.Set("id", "eq."+accountID)
	query.Set("select", selectColumns)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return models.SubscriptionStatus{}, false, failopen.Transport(failopen.ComponentEntitlement, "build request", err)
	}
	req.Header.Set("apikey", g.apiKey)
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return models.SubscriptionStatus{}, false, failopen.Transport(failopen.ComponentEntitlement, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return models.SubscriptionStatus{}, false, failopen.Transport(failopen.ComponentEntitlement, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return models.SubscriptionStatus{}, false, failopen.Transport(failopen.ComponentEntitlement, "read body", err)
	}

	var rows []accountRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return models.SubscriptionStatus{}, false, failopen.Malformed(failopen.ComponentEntitlement, "decode account", err)
	}
	if len(rows) == 0 {
		return models.SubscriptionStatus{}, false, nil
	}
	if len(rows) > 1 {
		g.logger.Warnf(providers.TypeLookup, "account %s matched %d rows, using the first", accountID, len(rows))
	}

	status, err := rows[0].status()
	if err != nil {
		return models.SubscriptionStatus{}, false, failopen.Malformed(failopen.ComponentEntitlement, "decode subscription_until", err)
	}
	return status, true, nil
}

func (r accountRow) status() (models.SubscriptionStatus, error) {
	status := models.SubscriptionStatus{IsActive: r.IsActive != nil && *r.IsActive}
	if r.SubscriptionUntil == nil {
		return status, nil
	}
	expires, err := parseTimestamp(*r.SubscriptionUntil)
	if err != nil {
		return status, err
	}
	status.ExpiresAt = &expires
	return status, nil
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
