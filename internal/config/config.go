package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration for the exam generator.
type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Redis  RedisConfig
	Exam   ExamConfig
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LoggerConfig configures the zap logger.
type LoggerConfig struct {
	Level string
	Env   string
}

// RedisConfig configures the optional export staging backend. An empty
// Address selects the in-memory staging store.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// ExamConfig carries exam rendering defaults.
type ExamConfig struct {
	Title     string
	ExportTTL time.Duration
}

// LoadConfig reads config.yaml (if present) and applies environment variable
// overrides. A missing file is not an error; every setting has a default
// suitable for a single interactive session.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("redis.address", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("exam.title", "物理科")
	viper.SetDefault("exam.export_ttl", 30)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
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
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Exam: ExamConfig{
			Title:     viper.GetString("exam.title"),
			ExportTTL: viper.GetDuration("exam.export_ttl") * time.Minute,
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if title := os.Getenv("EXAM_TITLE"); title != "" {
		config.Exam.Title = title
	}

	return config, nil
}
