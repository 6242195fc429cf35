package screening

import "callguard/internal/models"

// Emit returns the call response. It never blocks, rejects or silences a
// call, whatever the pipeline later decides.
func Emit() models.CallDecision {
	return models.PassThrough()
}
