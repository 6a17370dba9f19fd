package config

import (
	"os"
	"strconv"
	"strings"
)

// Defaults for the generation pipeline.
const (
	// DefaultPort is the API listen port.
	DefaultPort = "8080"

	// DefaultSearchMaxResults caps candidates returned per search query.
	DefaultSearchMaxResults = 7

	// DefaultKafkaTopic carries queued generation requests.
	DefaultKafkaTopic = "blog.requests"

	// DefaultKafkaGroupID identifies this service's consumer group.
	DefaultKafkaGroupID = "blogbot"
)

// Config holds the environment-derived service settings. Redis settings are
// read separately by store.NewRedisStoreFromEnv.
type Config struct {
	Port             string
	SearchMaxResults int

	CohereAPIKey string
	CohereModel  string

	RedisAddr string

	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string

	S3Bucket       string
	S3Region       string
	S3Profile      string
	S3Prefix       string
	S3UsePathStyle bool
}

// FromEnv reads settings from the environment, applying defaults. Optional
// integrations (Redis, Kafka, S3) stay disabled when their keys are unset.
func FromEnv() Config {
	cfg := Config{
		Port:             getEnvOrDefault("PORT", DefaultPort),
		SearchMaxResults: DefaultSearchMaxResults,
		CohereAPIKey:     os.Getenv("COHERE_API_KEY"),
		CohereModel:      os.Getenv("COHERE_MODEL"),
		RedisAddr:        strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		KafkaTopic:       getEnvOrDefault("KAFKA_TOPIC", DefaultKafkaTopic),
		KafkaGroupID:     getEnvOrDefault("KAFKA_GROUP_ID", DefaultKafkaGroupID),
		S3Bucket:         strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3Region:         strings.TrimSpace(os.Getenv("S3_REGION")),
		S3Profile:        strings.TrimSpace(os.Getenv("S3_PROFILE")),
		S3Prefix:         strings.TrimSpace(os.Getenv("S3_PREFIX")),
		S3UsePathStyle:   strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
	}

	if n := os.Getenv("SEARCH_MAX_RESULTS"); n != "" {
		if v, err := strconv.Atoi(n); err == nil && v > 0 {
			cfg.SearchMaxResults = v
		}
	}

	if brokers := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
