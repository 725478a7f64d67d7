package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config concentra toda a configuração lida do ambiente.
type Config struct {
	Port string

	DatabaseURL string
	RedisAddr   string
	RabbitURL   string
	MongoURI    string
	MongoDBName string

	AuthorizerURL string
	NotifierURL   string

	// Timeout das chamadas aos serviços externos (autorizador/notificador)
	ExternalTimeout time.Duration
}

// Load lê o .env se existir; em produção (Docker/K8s) usamos variáveis
// reais do sistema, por isso o erro é só um aviso.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("Arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	dbURL := getEnv("DATABASE_URL", "")
	if dbURL == "" {
		dbUser := getEnv("DB_USER", "transferpay")
		dbPass := getEnv("DB_PASSWORD", "secret123")
		dbHost := getEnv("DB_HOST", "localhost")
		dbName := getEnv("DB_NAME", "transferpay")
		dbURL = fmt.Sprintf("postgres://%s:%s@%s:5432/%s?sslmode=disable", dbUser, dbPass, dbHost, dbName)
	}

	rabbitUser := getEnv("RABBITMQ_USER", "guest")
	rabbitPass := getEnv("RABBITMQ_PASS", "guest")
	rabbitHost := getEnv("RABBITMQ_HOST", "localhost")

	mongoUser := getEnv("MONGO_USER", "root")
	mongoPass := getEnv("MONGO_PASS", "secret123")
	mongoHost := getEnv("MONGO_HOST", "localhost")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: dbURL,
		RedisAddr:   getEnv("REDIS_HOST", "localhost") + ":6379",
		RabbitURL:   fmt.Sprintf("amqp://%s:%s@%s:5672/", rabbitUser, rabbitPass, rabbitHost),
		MongoURI:    fmt.Sprintf("mongodb://%s:%s@%s:27017", mongoUser, mongoPass, mongoHost),
		MongoDBName: getEnv("MONGO_DB", "transferpay"),

		AuthorizerURL: getEnv("AUTHORIZER_URL", "https://util.devi.tools/api/v2/authorize"),
		NotifierURL:   getEnv("NOTIFIER_URL", "https://util.devi.tools/api/v1/notify"),

		ExternalTimeout: 5 * time.Second,
	}
}

// getEnv busca a variável com um fallback padrão
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
