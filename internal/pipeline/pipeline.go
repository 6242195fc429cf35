// Package pipeline turns a raw caller number into exactly one outcome:
// not entitled, clean, or flagged.
package pipeline

import (
	"callguard/internal/entitlement"
	"callguard/internal/fingerprint"
	"callguard/internal/models"
	"callguard/internal/providers"
	"callguard/internal/reputation"
	"context"
)

type PipelineInterface interface {
	Decide(ctx context.Context, rawNumber, accountID string) models.Outcome
}

type Pipeline struct {
	gate       entitlement.GateInterface
	reputation reputation.ClientInterface
	logger     providers.Logger
}

func NewPipeline(gate entitlement.GateInterface, client reputation.ClientInterface, logger providers.Logger) PipelineInterface {
	return &Pipeline{
		gate:       gate,
		reputation: client,
		logger:     logger,
	}
}

// Decide checks entitlement before any lookup so nothing is disclosed to a
// non-entitled account. Failures inside the gate or client are already
// resolved to their fail-open defaults.
func (p *Pipeline) Decide(ctx context.Context, rawNumber, accountID string) models.Outcome {
	fp := fingerprint.Generate(rawNumber)
	if fp.Unknown() {
		p.logger.Debugf(providers.TypeCall, "caller number has no digits, looking up as unknown")
	}

	if !p.gate.IsEntitled(ctx, accountID) {
		return models.NotEntitled{}
	}

	records, ok := p.reputation.Lookup(ctx, fp)
	if len(records) > 0 {
		p.logger.Infof(providers.TypeCall, "caller %s flagged: %d shops", fp.Short(), models.TotalCount(records))
		return models.Flagged{Records: records}
	}
	return models.Clean{Degraded: !ok}
}
