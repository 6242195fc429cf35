package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type ReputationConfig struct {
	BaseURL string        `yaml:"baseUrl" validate:"required|fullUrl"`
	APIKey  string        `yaml:"apiKey" validate:"required"`
	Path    string        `yaml:"path" validate:"required"`
	Timeout time.Duration `yaml:"timeout" validate:"required|min:1"`
	// UnsetRegion is the region value the backend stores for "no region".
	UnsetRegion string `yaml:"unsetRegion"`
}

type EntitlementConfig struct {
	BaseURL string        `yaml:"baseUrl" validate:"required|fullUrl"`
	APIKey  string        `yaml:"apiKey" validate:"required"`
	Table   string        `yaml:"table" validate:"required"`
	Timeout time.Duration `yaml:"timeout" validate:"required|min:1"`
}

type IdentityConfig struct {
	AccountID string `yaml:"accountId"`
	FilePath  string `yaml:"filePath"`
}

type OverlayConfig struct {
	MaskChar          string `yaml:"maskChar" validate:"maxLen:1"`
	PermissionGranted bool   `yaml:"permissionGranted"`
	HandoffHistory    int    `yaml:"handoffHistory"`
}

type ScreeningConfig struct {
	TaskTimeout time.Duration `yaml:"taskTimeout" validate:"required|min:1"`
}

type JournalConfig struct {
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
	RetainDays   int           `yaml:"retainDays"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
	TTL     int  `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server            `yaml:"webServer"`
	Logger      LoggerConfig      `yaml:"logger"`
	Reputation  ReputationConfig  `yaml:"reputation"`
	Entitlement EntitlementConfig `yaml:"entitlement"`
	Identity    IdentityConfig    `yaml:"identity"`
	Overlay     OverlayConfig     `yaml:"overlay"`
	Screening   ScreeningConfig   `yaml:"screening"`
	Journal     JournalConfig     `yaml:"journal"`
	Cache       CacheConfig       `yaml:"cache"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}
