package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Sheets SheetsConfig
	Kafka  KafkaConfig
	Observ ObservabilityConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// SheetsConfig points at the spreadsheet backing the catalog and order tables.
// Credentials come either from a service-account key file or from an inline
// email + private key pair.
type SheetsConfig struct {
	SpreadsheetID       string
	CredentialsFile     string
	ServiceAccountEmail string
	PrivateKey          string
	MasterSheet         string
	OrderSheet          string
	OrderIDPrefix       string
}

type KafkaConfig struct {
	Brokers    []string
	TopicOrder string
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

func Load() *Config {
	_ = godotenv.Load()

	var brokers []string
	if v := getEnv("KAFKA_BROKERS", ""); v != "" {
		brokers = strings.Split(v, ",")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:       getEnv("GOOGLE_SPREADSHEET_ID", ""),
			CredentialsFile:     getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
			ServiceAccountEmail: getEnv("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
			PrivateKey:          getEnv("GOOGLE_PRIVATE_KEY", ""),
			MasterSheet:         getEnv("MASTER_SHEET", "master_bazzar"),
			OrderSheet:          getEnv("ORDER_SHEET", "order_list"),
			OrderIDPrefix:       getEnv("ORDER_ID_PREFIX", "BAZ"),
		},
		Kafka: KafkaConfig{
			Brokers:    brokers,
			TopicOrder: getEnv("KAFKA_TOPIC_ORDER_EVENTS", "order-events"),
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
	}

	log.Printf("Config loaded: env=%s, port=%s, master=%s, orders=%s",
		cfg.Server.Env, cfg.Server.Port, cfg.Sheets.MasterSheet, cfg.Sheets.OrderSheet)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
