package providers

import (
	"callguard/internal/structures"
	"fmt"
	"github.com/gookit/validate"
	"time"
)

// maxRemoteTimeout bounds every outbound call so a screening task cannot outlive the call it serves.
const maxRemoteTimeout = 10 * time.Second

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %s", v.Errors.One())
	}

	if cv.conf.Reputation.Timeout > maxRemoteTimeout {
		return fmt.Errorf("invalid config: reputation.timeout %s exceeds %s", cv.conf.Reputation.Timeout, maxRemoteTimeout)
	}
	if cv.conf.Entitlement.Timeout > maxRemoteTimeout {
		return fmt.Errorf("invalid config: entitlement.timeout %s exceeds %s", cv.conf.Entitlement.Timeout, maxRemoteTimeout)
	}
	if cv.conf.Screening.TaskTimeout < cv.conf.Reputation.Timeout+cv.conf.Entitlement.Timeout {
		return fmt.Errorf("invalid config: screening.taskTimeout must cover both remote timeouts")
	}
	return nil
}
