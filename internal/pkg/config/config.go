package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/coffeeshop/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig builds the application config. In the local environment the
// given .env file is loaded into the process environment first.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("app.env") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	// APP_ENV -> app.env
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "coffeeshop-service")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.version", "development")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("data.source_path", "locations.csv")
	v.SetDefault("data.sheet", "")

	v.SetDefault("geocoder.enabled", true)
	v.SetDefault("geocoder.base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocoder.user_agent", "coffeeshop-service/1.0")
	v.SetDefault("geocoder.timeout", "5s")
	v.SetDefault("geocoder.max_retries", 2)
	v.SetDefault("geocoder.budget", "8s")
	v.SetDefault("geocoder.cache_ttl", "24h")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.enabled", false)
	v.SetDefault("nsq.address", "localhost:4150")
	v.SetDefault("nsq.topic", "shop.events")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file_path", "")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.compress", true)
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("app.name")
	configs.App.Environment = v.GetString("app.env")
	configs.App.Debug = v.GetBool("app.debug")
	configs.App.Version = v.GetString("app.version")

	// Server config
	configs.Server.Host = v.GetString("server.host")
	configs.Server.Port = v.GetInt("server.port")
	configs.Server.ReadTimeout = v.GetInt("server.read_timeout")
	configs.Server.WriteTimeout = v.GetInt("server.write_timeout")
	configs.Server.ShutdownTimeout = v.GetInt("server.shutdown_timeout")

	// Startup data
	configs.Data.SourcePath = v.GetString("data.source_path")
	configs.Data.Sheet = v.GetString("data.sheet")

	// Geocoder config
	configs.Geocoder.Enabled = v.GetBool("geocoder.enabled")
	configs.Geocoder.BaseURL = strings.TrimRight(v.GetString("geocoder.base_url"), "/")
	configs.Geocoder.UserAgent = v.GetString("geocoder.user_agent")
	configs.Geocoder.Timeout = getDuration(v, "geocoder.timeout", 5*time.Second)
	configs.Geocoder.MaxRetries = v.GetInt("geocoder.max_retries")
	configs.Geocoder.Budget = geocodeBudget(
		getDuration(v, "geocoder.budget", 8*time.Second),
		time.Duration(configs.Server.WriteTimeout)*time.Second)
	configs.Geocoder.CacheTTL = getDuration(v, "geocoder.cache_ttl", 24*time.Hour)

	// Redis config
	configs.Redis.Enabled = v.GetBool("redis.enabled")
	configs.Redis.Host = v.GetString("redis.host")
	configs.Redis.Port = v.GetInt("redis.port")
	configs.Redis.Password = v.GetString("redis.password")
	configs.Redis.DB = v.GetInt("redis.db")
	configs.Redis.PoolSize = v.GetInt("redis.pool_size")

	// NSQ config
	configs.NSQ.Enabled = v.GetBool("nsq.enabled")
	configs.NSQ.Address = v.GetString("nsq.address")
	configs.NSQ.Topic = v.GetString("nsq.topic")

	// Logger config
	configs.Logger.Level = v.GetString("log.level")
	configs.Logger.FilePath = v.GetString("log.file_path")
	configs.Logger.MaxSize = v.GetInt("log.max_size")
	configs.Logger.MaxAge = v.GetInt("log.max_age")
	configs.Logger.MaxBackups = v.GetInt("log.max_backups")
	configs.Logger.Compress = v.GetBool("log.compress")

	return configs
}

// geocodeBudget keeps a lookup inside the server write deadline so a slow
// upstream still ends in an error response the caller can read
func geocodeBudget(budget, writeTimeout time.Duration) time.Duration {
	if writeTimeout <= 0 {
		return budget
	}
	limit := writeTimeout - time.Second
	if limit <= 0 {
		limit = writeTimeout / 2
	}
	if budget <= 0 || budget > limit {
		log.Printf("Warning: geocoder budget %v does not fit the %v write timeout, using %v", budget, writeTimeout, limit)
		return limit
	}
	return budget
}

// getDuration accepts Go duration strings ("5s") and falls back to the
// default with a warning when the value does not parse
func getDuration(v *viper.Viper, key string, defaultValue time.Duration) time.Duration {
	raw := v.GetString(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return d
}
