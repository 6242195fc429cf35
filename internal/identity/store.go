// Package identity reads the locally configured account id used to key the
// entitlement check.
package identity

import (
	"callguard/internal/providers"
	"callguard/internal/structures"
	json "github.com/goccy/go-json"
	"os"
	"strings"
)

type StoreInterface interface {
	// AccountID returns the configured account id. ok is false when none is set.
	AccountID() (id string, ok bool)
}

// Store prefers a fixed id from config and otherwise reads the identity
// file written by the host app on every call, so a newly configured account
// takes effect without a restart.
type Store struct {
	fixed    string
	filePath string
	logger   providers.Logger
}

type identityFile struct {
	ShopID string `json:"shop_id"`
}

func NewStore(conf *structures.Config, logger providers.Logger) StoreInterface {
	return &Store{
		fixed:    strings.TrimSpace(conf.Identity.AccountID),
		filePath: conf.Identity.FilePath,
		logger:   logger,
	}
}

func (s *Store) AccountID() (string, bool) {
	if s.fixed != "" {
		return s.fixed, true
	}
	if s.filePath == "" {
		return "", false
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warnf(providers.TypeApp, "unable to read identity file %s: %s", s.filePath, err)
		}
		return "", false
	}

	var f identityFile
	if err := json.Unmarshal(data, &f); err != nil {
		s.logger.Warnf(providers.TypeApp, "identity file %s is not valid json: %s", s.filePath, err)
		return "", false
	}

	id := strings.TrimSpace(f.ShopID)
	return id, id != ""
}
