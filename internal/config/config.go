package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Google   GoogleConfig
	Scoring  ScoringConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	RoutesCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// GoogleConfig - настройки Google Directions API
type GoogleConfig struct {
	BaseURL        string
	APIKey         string
	Mode           string
	RequestTimeout int // seconds
}

// ScoringConfig - параметры движка скоринга. Все константы политики
// передаются движку при создании, чтобы альтернативные политики
// можно было тестировать подстановкой.
type ScoringConfig struct {
	SampleStride     int     // каждая N-я точка полилинии
	QueryRadius      float64 // метры
	MaxParallelism   int     // одновременные запросы к гео-индексу
	RankingBlendBase float64 // константа масштабирования 1/duration в balanced
}

type WorkerConfig struct {
	Enabled          bool
	ConsumerGroup    string
	InvalidateRadius float64 // метры вокруг нового отчета
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			RoutesCacheTTL: time.Duration(viper.GetInt("ROUTES_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Google: GoogleConfig{
			BaseURL:        viper.GetString("GOOGLE_MAPS_BASE_URL"),
			APIKey:         viper.GetString("GOOGLE_MAPS_API_KEY"),
			Mode:           viper.GetString("GOOGLE_MAPS_MODE"),
			RequestTimeout: viper.GetInt("GOOGLE_MAPS_REQUEST_TIMEOUT"),
		},
		Scoring: ScoringConfig{
			SampleStride:     viper.GetInt("SCORING_SAMPLE_STRIDE"),
			QueryRadius:      viper.GetFloat64("SCORING_QUERY_RADIUS"),
			MaxParallelism:   viper.GetInt("SCORING_MAX_PARALLELISM"),
			RankingBlendBase: viper.GetFloat64("SCORING_RANKING_BLEND_BASE"),
		},
		Worker: WorkerConfig{
			Enabled:          viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:    viper.GetString("WORKER_CONSUMER_GROUP"),
			InvalidateRadius: viper.GetFloat64("WORKER_INVALIDATE_RADIUS"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.RoutesCacheTTL == 0 {
		cfg.Cache.RoutesCacheTTL = 300 * time.Second
	}
	if cfg.Google.BaseURL == "" {
		cfg.Google.BaseURL = "https://maps.googleapis.com/maps/api"
	}
	if cfg.Google.Mode == "" {
		cfg.Google.Mode = "walking"
	}
	if cfg.Google.RequestTimeout == 0 {
		cfg.Google.RequestTimeout = 10
	}
	if cfg.Scoring.SampleStride == 0 {
		cfg.Scoring.SampleStride = 10
	}
	if cfg.Scoring.QueryRadius == 0 {
		cfg.Scoring.QueryRadius = 500
	}
	if cfg.Scoring.MaxParallelism == 0 {
		cfg.Scoring.MaxParallelism = 8
	}
	if cfg.Scoring.RankingBlendBase == 0 {
		cfg.Scoring.RankingBlendBase = 10000
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "route-cache-invalidators"
	}
	if cfg.Worker.InvalidateRadius == 0 {
		cfg.Worker.InvalidateRadius = 1000
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
