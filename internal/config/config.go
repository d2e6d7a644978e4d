package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/vncsmyrnk/votepage/internal/core/domain"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"

	PayloadHTTPAPI = "v2"
	PayloadRESTAPI = "rest"
)

type Config struct {
	Addr         string
	StoreBackend string
	TableName    string
	ImageHash    string

	TemplatePath   string
	TemplateBucket string
	TemplateKey    string

	DynamoDBEndpoint string
	LambdaPayload    string

	ImageBucket string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	cfg := Read()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read is Load without validation, for tools that only need part of the settings.
func Read() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found")
	}

	return Config{
		Addr:             getenv("ADDR", "0.0.0.0:8080"),
		StoreBackend:     getenv("STORE_BACKEND", BackendDynamoDB),
		TableName:        os.Getenv("TABLE_NAME"),
		ImageHash:        getenv("IMAGE_HASH", domain.DefaultImageHash),
		TemplatePath:     getenv("TEMPLATE_PATH", "index.html"),
		TemplateBucket:   os.Getenv("HTML_BUCKET_NAME"),
		TemplateKey:      getenv("HTML_FILE_NAME", "index.html"),
		DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		LambdaPayload:    getenv("API_PAYLOAD", PayloadHTTPAPI),
		ImageBucket:      os.Getenv("BUCKET_NAME"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
	}
}

func (c Config) Validate() error {
	switch c.StoreBackend {
	case BackendDynamoDB:
		if c.TableName == "" {
			return domain.ErrMissingTable
		}
	case BackendPostgres:
	default:
		return fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}
	if c.LambdaPayload != PayloadHTTPAPI && c.LambdaPayload != PayloadRESTAPI {
		return fmt.Errorf("unknown api payload %q", c.LambdaPayload)
	}
	return nil
}

func (c Config) PostgresConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
