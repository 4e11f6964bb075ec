package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Data     DataConfig
	Geocoder GeocoderConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DataConfig points at the startup source of shop records
type DataConfig struct {
	SourcePath string
	Sheet      string // only used for .xlsx sources
}

// GeocoderConfig contains the address lookup upstream configuration
type GeocoderConfig struct {
	Enabled    bool
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	// Budget bounds one whole lookup, retries and backoff included
	Budget   time.Duration
	CacheTTL time.Duration
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Enabled bool
	Address string
	Topic   string
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int // megabytes
	MaxAge     int // days
	MaxBackups int
	Compress   bool
}
