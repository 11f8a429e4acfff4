package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Client    ClientConfig    `mapstructure:"client"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Prefs     PrefsConfig     `mapstructure:"prefs"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// ClientConfig drives the data layer: where the live backend lives, whether
// the demo simulator answers instead, and how slow it pretends to be.
type ClientConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	DemoMode       bool          `mapstructure:"demo_mode"`
	DemoLatency    time.Duration `mapstructure:"demo_latency_ms"`
	LenientRouting bool          `mapstructure:"lenient_routing"`
}

// CacheConfig holds the per-kind TTLs, configured in minutes.
type CacheConfig struct {
	SubjectsTTL  time.Duration `mapstructure:"subjects_ttl_minutes"`
	ResourcesTTL time.Duration `mapstructure:"resources_ttl_minutes"`
	ExamsTTL     time.Duration `mapstructure:"exams_ttl_minutes"`
	TutorsTTL    time.Duration `mapstructure:"tutors_ttl_minutes"`
	ForumsTTL    time.Duration `mapstructure:"forums_ttl_minutes"`
}

type PrefsConfig struct {
	Path string `mapstructure:"path"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("ESTUDIAPRO")
	viper.AutomaticEnv()

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Client
	viper.BindEnv("client.base_url", "API_BASE_URL")
	viper.BindEnv("client.demo_mode", "DEMO_MODE")

	// JWT
	viper.BindEnv("jwt.secret", "JWT_SECRET")

	// Storage
	viper.BindEnv("storage.type", "STORAGE_TYPE")
	viper.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	viper.SetDefault("server.port", "8000")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("client.base_url", "http://127.0.0.1:8000/api")
	viper.SetDefault("client.demo_mode", true)
	viper.SetDefault("client.demo_latency_ms", 300)
	viper.SetDefault("client.lenient_routing", false)
	viper.SetDefault("cache.subjects_ttl_minutes", 10)
	viper.SetDefault("cache.resources_ttl_minutes", 5)
	viper.SetDefault("cache.exams_ttl_minutes", 5)
	viper.SetDefault("cache.tutors_ttl_minutes", 15)
	viper.SetDefault("cache.forums_ttl_minutes", 2)
	viper.SetDefault("prefs.path", "prefs.yaml")
	viper.SetDefault("jwt.expire_hours", 24)
	viper.SetDefault("storage.type", "local")
	viper.SetDefault("storage.local_path", "uploads")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Client.DemoLatency = cfg.Client.DemoLatency * time.Millisecond
	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour
	cfg.Cache.SubjectsTTL = cfg.Cache.SubjectsTTL * time.Minute
	cfg.Cache.ResourcesTTL = cfg.Cache.ResourcesTTL * time.Minute
	cfg.Cache.ExamsTTL = cfg.Cache.ExamsTTL * time.Minute
	cfg.Cache.TutorsTTL = cfg.Cache.TutorsTTL * time.Minute
	cfg.Cache.ForumsTTL = cfg.Cache.ForumsTTL * time.Minute

	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}
