package providers

import (
	"callguard/internal/structures"
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"
	"time"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("reputation.path", "/rest/v1/rpc/lookup_jinsang")
	v.SetDefault("reputation.timeout", 3*time.Second)
	v.SetDefault("reputation.unsetRegion", "unset-sentinel")
	v.SetDefault("entitlement.table", "shops")
	v.SetDefault("entitlement.timeout", 3*time.Second)
	v.SetDefault("overlay.maskChar", "*")
	v.SetDefault("overlay.handoffHistory", 32)
	v.SetDefault("screening.taskTimeout", 8*time.Second)
	v.SetDefault("journal.saveInterval", time.Minute)
	v.SetDefault("journal.retainDays", 30)
	v.SetDefault("cache.ttl", 30)

	v.BindEnv("logger.level", "CALLGUARD_LOG_LEVEL")
	v.BindEnv("reputation.baseUrl", "CALLGUARD_REPUTATION_URL")
	v.BindEnv("reputation.apiKey", "CALLGUARD_API_KEY")
	v.BindEnv("entitlement.baseUrl", "CALLGUARD_REPUTATION_URL")
	v.BindEnv("entitlement.apiKey", "CALLGUARD_API_KEY")
	v.BindEnv("identity.accountId", "CALLGUARD_ACCOUNT_ID")
	v.BindEnv("metrics.enabled", "CALLGUARD_METRICS_ENABLED")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "CallGuard"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
