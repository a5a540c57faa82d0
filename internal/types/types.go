package types

// ConfigManager defines the interface for configuration management
type ConfigManager interface {
	GetServerConfig() ServerConfig
	GetLogConfig() LogConfig
	GetCORSConfig() CORSConfig
	GetEngineConfig() EngineConfig
	GetRuntimeDefaults() RuntimeSettings
	IsProduction() bool
	Validate() error
	DisplayServerConfig()
	ReloadConfig() error
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port                    int    `json:"port"`
	Host                    string `json:"host"`
	ReadTimeout             int    `json:"read_timeout"`
	WriteTimeout            int    `json:"write_timeout"`
	IdleTimeout             int    `json:"idle_timeout"`
	GracefulShutdownTimeout int    `json:"graceful_shutdown_timeout"`
}

// CORSConfig represents CORS configuration
type CORSConfig struct {
	Enabled        bool     `json:"enabled"`
	AllowedOrigins []string `json:"allowed_origins"`
	AllowedMethods []string `json:"allowed_methods"`
	AllowedHeaders []string `json:"allowed_headers"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level      string `json:"level"`
	Format     string `json:"format"`
	EnableFile bool   `json:"enable_file"`
	FilePath   string `json:"file_path"`
}

// EngineConfig represents the upstream translation engine connection settings
type EngineConfig struct {
	URL                 string `json:"url"`
	ConnectTimeout      int    `json:"connect_timeout"`
	RequestTimeout      int    `json:"request_timeout"`
	IdleConnTimeout     int    `json:"idle_conn_timeout"`
	MaxIdleConns        int    `json:"max_idle_conns"`
	MaxIdleConnsPerHost int    `json:"max_idle_conns_per_host"`
}

// RuntimeSettings holds the settings that may change while the server is
// running. Consumers re-read them on every access instead of caching a copy
// at startup.
type RuntimeSettings struct {
	// APIToken is the shared-secret token. Empty disables authentication.
	APIToken string `json:"api_token"`
	// CacheSize bounds the translation result cache. Zero or negative
	// disables caching entirely.
	CacheSize int `json:"cache_size"`
	// LogRequests toggles per-request access logging.
	LogRequests bool `json:"log_requests"`
	// LogLevel is the live logrus level.
	LogLevel string `json:"log_level"`
}
