package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	Auth   AuthConfig
	Cache  CacheConfig
	Engine EngineConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	// Path is the SQLite database file. ":memory:" gives an in-process
	// throwaway database for local runs.
	Path string
	// MigrationsDir holds the golang-migrate SQL files.
	MigrationsDir string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type AuthConfig struct {
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type CacheConfig struct {
	TopicSummaryTTL time.Duration
	CatalogTTL      time.Duration
}

// EngineConfig carries the telemetry signal defaults fed to score computation
// when no per-user telemetry pipeline supplies them.
type EngineConfig struct {
	LearningVelocity  float64
	ReviewRecallRate  float64
	EngagementLevel   float64
	SessionRegularity float64
}

type LoggerConfig struct {
	Level string
	Env   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../configs")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine: defaults plus environment variables carry a
		// local run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		DB: DBConfig{
			Path:          viper.GetString("db.path"),
			MigrationsDir: viper.GetString("db.migrations_dir"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Auth: AuthConfig{
			JWTSecret:       viper.GetString("auth.jwt_secret"),
			AccessTokenTTL:  viper.GetDuration("auth.access_token_ttl") * time.Minute,
			RefreshTokenTTL: viper.GetDuration("auth.refresh_token_ttl") * time.Minute,
		},
		Cache: CacheConfig{
			TopicSummaryTTL: viper.GetDuration("cache.topic_summary_ttl") * time.Second,
			CatalogTTL:      viper.GetDuration("cache.catalog_ttl") * time.Second,
		},
		Engine: EngineConfig{
			LearningVelocity:  viper.GetFloat64("engine.learning_velocity"),
			ReviewRecallRate:  viper.GetFloat64("engine.review_recall_rate"),
			EngagementLevel:   viper.GetFloat64("engine.engagement_level"),
			SessionRegularity: viper.GetFloat64("engine.session_regularity"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Environment variables win over file values.
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		config.DB.Path = dbPath
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.Auth.JWTSecret = secret
	}

	if config.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("db.path", "studytrack.db")
	viper.SetDefault("db.migrations_dir", "database/migrations")
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("auth.access_token_ttl", 15)
	viper.SetDefault("auth.refresh_token_ttl", 60*24*7)
	viper.SetDefault("cache.topic_summary_ttl", 300)
	viper.SetDefault("cache.catalog_ttl", 3600)
	viper.SetDefault("engine.learning_velocity", 0.6)
	viper.SetDefault("engine.review_recall_rate", 0.75)
	viper.SetDefault("engine.engagement_level", 0.7)
	viper.SetDefault("engine.session_regularity", 0.55)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
}

// GetDSN returns the SQLite DSN with foreign keys enforced.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", c.DB.Path)
}
