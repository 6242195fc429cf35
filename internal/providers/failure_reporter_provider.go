package providers

import "callguard/internal/failopen"

type failureReporter struct {
	logger  Logger
	metrics MetricsProviderInterface
}

// NewFailureReporter is the observability sink for fail-open fallbacks.
func NewFailureReporter(logger Logger, metrics MetricsProviderInterface) failopen.Reporter {
	return &failureReporter{logger: logger, metrics: metrics}
}

func (r *failureReporter) ReportFailure(component string, category failopen.Category, err error) {
	r.metrics.IncLookupFailure(component, string(category))
	r.logger.Warnf(TypeLookup, "%s lookup failed open (%s): %s", component, category, err)
}
