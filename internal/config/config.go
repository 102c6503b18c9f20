package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"alfredoptarigan/resume-analyzer/internal/logger"
)

type Config struct {
	Server     ServerConfig
	Log        logger.Config
	LLM        LLMConfig
	Extraction ExtractionConfig
	Storage    StorageConfig
	Worker     WorkerConfig
	Redis      RedisConfig
	Database   DatabaseConfig
	Policy     PolicyConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type LLMConfig struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

type ExtractionConfig struct {
	Concurrency int
}

type StorageConfig struct {
	MaxFileSize int64
}

type WorkerConfig struct {
	Concurrency int
	QueueSize   int
	JobTTL      time.Duration
	SweepEvery  time.Duration
}

type RedisConfig struct {
	Enabled   bool
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// PolicyConfig holds the presentation thresholds and skill limits.
type PolicyConfig struct {
	GoodThreshold  float64
	FairThreshold  float64
	HighlightLimit int
	MainLimit      int
	Vocabulary     []string
	SoftSkills     []string
}

func Load() *Config {
	envFileErr := godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Log: logger.Config{
			Level:        getEnv("LOG_LEVEL", "info"),
			Format:       getEnv("LOG_FORMAT", "pretty"),
			TimeFormat:   getEnv("LOG_TIME_FORMAT", ""),
			ReportCaller: getEnvAsBool("LOG_REPORT_CALLER", false),
		},
		LLM: LLMConfig{
			Provider:    strings.ToLower(getEnv("LLM_PROVIDER", "gemini")),
			APIKey:      getEnv("LLM_API_KEY", getEnv("GEMINI_API_KEY", "")),
			Model:       getEnv("LLM_MODEL", ""),
			BaseURL:     getEnv("LLM_BASE_URL", ""),
			Temperature: float32(getEnvAsFloat("LLM_TEMPERATURE", 0.3)),
			Timeout:     getEnvAsDuration("LLM_TIMEOUT", "90s"),
		},
		Extraction: ExtractionConfig{
			Concurrency: getEnvAsInt("EXTRACT_CONCURRENCY", 4),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Worker: WorkerConfig{
			Concurrency: getEnvAsInt("WORKER_CONCURRENCY", 3),
			QueueSize:   getEnvAsInt("WORKER_QUEUE_SIZE", 100),
			JobTTL:      getEnvAsDuration("JOB_TTL", "30m"),
			SweepEvery:  getEnvAsDuration("JOB_SWEEP_INTERVAL", "1m"),
		},
		Redis: RedisConfig{
			Enabled:   getEnvAsBool("REDIS_ENABLED", false),
			Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvAsInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "resume_analyzer:job:"),
		},
		Database: DatabaseConfig{
			Enabled:  getEnvAsBool("DB_ENABLED", false),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "resume_analyzer"),
		},
		Policy: PolicyConfig{
			GoodThreshold:  getEnvAsFloat("SCORE_GOOD_THRESHOLD", 7),
			FairThreshold:  getEnvAsFloat("SCORE_FAIR_THRESHOLD", 5),
			HighlightLimit: getEnvAsInt("SKILLS_HIGHLIGHT_LIMIT", 8),
			MainLimit:      getEnvAsInt("SKILLS_MAIN_LIMIT", 12),
			Vocabulary:     getEnvAsList("SKILLS_VOCABULARY"),
			SoftSkills:     getEnvAsList("SKILLS_SOFT"),
		},
	}

	logger.Init(cfg.Log)
	if envFileErr != nil {
		logger.Info().Msg("No .env file found. Using environment and default values.")
	}

	return cfg
}

// Validate reports configuration that would make the service unusable.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q", c.LLM.Provider)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required")
	}
	if c.Policy.FairThreshold > c.Policy.GoodThreshold {
		return fmt.Errorf("SCORE_FAIR_THRESHOLD (%v) must not exceed SCORE_GOOD_THRESHOLD (%v)",
			c.Policy.FairThreshold, c.Policy.GoodThreshold)
	}
	if c.Extraction.Concurrency < 1 || c.Worker.Concurrency < 1 {
		return fmt.Errorf("concurrency settings must be positive")
	}
	return nil
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

// getEnvAsList splits a comma separated value; nil means "use the built-in default".
func getEnvAsList(key string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(valueStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
