package config

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	ListenAddr  string
	MenuFile    string
	UploadsDir  string
	BaseURL     string
	RedisAddr   string
	KafkaBroker string
	KafkaTopic  string
}

// Load reads the environment (plus an optional .env file) into a Config.
// Redis and Kafka are optional collaborators; empty addresses disable them.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ListenAddr:  getenv("LISTEN_ADDR", ":8080"),
		MenuFile:    getenv("MENU_FILE", "data/dishes.json"),
		UploadsDir:  getenv("UPLOADS_DIR", "uploads"),
		BaseURL:     getenv("BASE_URL", "http://localhost:8080"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		KafkaTopic:  getenv("KAFKA_TOPIC", "dish-events"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func MustInitRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(broker, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
