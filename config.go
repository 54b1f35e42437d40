package main

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all environment variables for the service.
type Config struct {
	Port         string   // HTTP listen port (default: 8080)
	Env          string   // "development" or "production"
	MongoURL     string   // MongoDB connection string
	MongoDB      string   // MongoDB database name
	RedisURL     string   // optional; product cache is disabled when empty
	CORSOrigins  []string // allowed frontend origins (default: http://localhost:3000)
	EventSink    string   // "kafka", "sns", or "none"
	KafkaBrokers []string // Kafka broker addresses
	KafkaTopic   string   // topic for order events
	SNSTopicARN  string   // SNS topic for order events
}

// LoadConfig reads environment variables into a Config and validates the
// combinations that must hold together.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		MongoURL:    os.Getenv("MONGO_URL"),
		MongoDB:     getEnv("MONGO_DB", "storefront"),
		RedisURL:    os.Getenv("REDIS_URL"),
		EventSink:   getEnv("EVENT_SINK", "none"),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "order-events"),
		SNSTopicARN: os.Getenv("SNS_TOPIC_ARN"),
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	for _, origin := range strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if cfg.MongoURL == "" {
		return nil, fmt.Errorf("MONGO_URL is required")
	}
	switch cfg.EventSink {
	case "none":
	case "kafka":
		if len(cfg.KafkaBrokers) == 0 {
			return nil, fmt.Errorf("KAFKA_BROKERS is required when EVENT_SINK=kafka")
		}
	case "sns":
		if cfg.SNSTopicARN == "" {
			return nil, fmt.Errorf("SNS_TOPIC_ARN is required when EVENT_SINK=sns")
		}
	default:
		return nil, fmt.Errorf("EVENT_SINK must be one of kafka, sns, none")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
