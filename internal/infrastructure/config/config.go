package config

import (
	"net/url"
	"os"
	"strings"
	"time"

	valueobjects "upilinker/internal/domain/value_objects"
)

const (
	defaultPort                     = "8080"
	defaultOpenAPISpec              = "api/openapi.yaml"
	defaultShutdownTimeout          = 10 * time.Second
	defaultDBReadinessTimeout       = 30 * time.Second
	defaultDBReadinessRetryInterval = 2 * time.Second
	defaultMigrationsPath           = "internal/adapters/outbound/persistence/postgresql/migrations"
	defaultQRAPIBaseURL             = "https://api.qrserver.com/v1/create-qr-code/"
	defaultQRImageSize              = "256x256"
)

type ConfigError struct {
	Code     string
	Message  string
	Metadata map[string]string
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}

	return e.Message
}

type Config struct {
	Port                     string
	OpenAPISpecPath          string
	ShutdownTimeout          time.Duration
	DatabaseURL              string
	DatabaseTarget           string
	DBReadinessTimeout       time.Duration
	DBReadinessRetryInterval time.Duration
	MigrationsPath           string
	JWTSecret                string
	QRAPIBaseURL             string
	QRImageSize              string
	PublicBaseURL            string
	DefaultLocale            string
}

func LoadConfig() (Config, *ConfigError) {
	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		return Config{}, &ConfigError{
			Code:    "CONFIG_DATABASE_URL_REQUIRED",
			Message: "DATABASE_URL is required",
		}
	}

	databaseTarget, parseErr := parseDatabaseTarget(databaseURL)
	if parseErr != nil {
		return Config{}, parseErr
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		return Config{}, &ConfigError{
			Code:    "CONFIG_JWT_SECRET_REQUIRED",
			Message: "JWT_SECRET is required",
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	openAPISpecPath := os.Getenv("OPENAPI_SPEC_PATH")
	if openAPISpecPath == "" {
		openAPISpecPath = defaultOpenAPISpec
	}

	qrAPIBaseURL := strings.TrimSpace(os.Getenv("QR_API_BASE_URL"))
	if qrAPIBaseURL == "" {
		qrAPIBaseURL = defaultQRAPIBaseURL
	}

	qrImageSize := strings.TrimSpace(os.Getenv("QR_IMAGE_SIZE"))
	if qrImageSize == "" {
		qrImageSize = defaultQRImageSize
	}

	publicBaseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("PUBLIC_BASE_URL")), "/")

	defaultLocale := strings.TrimSpace(os.Getenv("DEFAULT_LOCALE"))
	if defaultLocale == "" {
		defaultLocale = valueobjects.DefaultLocale
	}
	if !valueobjects.IsSupportedLocale(defaultLocale) {
		return Config{}, &ConfigError{
			Code:    "CONFIG_DEFAULT_LOCALE_UNSUPPORTED",
			Message: "DEFAULT_LOCALE must be one of the supported locales",
			Metadata: map[string]string{
				"default_locale": defaultLocale,
			},
		}
	}

	return Config{
		Port:                     port,
		OpenAPISpecPath:          openAPISpecPath,
		ShutdownTimeout:          defaultShutdownTimeout,
		DatabaseURL:              databaseURL,
		DatabaseTarget:           databaseTarget,
		DBReadinessTimeout:       defaultDBReadinessTimeout,
		DBReadinessRetryInterval: defaultDBReadinessRetryInterval,
		MigrationsPath:           defaultMigrationsPath,
		JWTSecret:                jwtSecret,
		QRAPIBaseURL:             qrAPIBaseURL,
		QRImageSize:              qrImageSize,
		PublicBaseURL:            publicBaseURL,
		DefaultLocale:            valueobjects.NormalizeLocale(defaultLocale),
	}, nil
}

func (c Config) Address() string {
	return ":" + c.Port
}

func parseDatabaseTarget(databaseURL string) (string, *ConfigError) {
	parsed, err := url.Parse(databaseURL)
	if err != nil {
		return "", &ConfigError{
			Code:    "CONFIG_DATABASE_URL_INVALID",
			Message: "DATABASE_URL is invalid",
		}
	}

	switch parsed.Scheme {
	case "postgres", "postgresql":
	default:
		return "", &ConfigError{
			Code:    "CONFIG_DATABASE_URL_SCHEME_INVALID",
			Message: "DATABASE_URL must use postgres or postgresql scheme",
		}
	}

	if parsed.Host == "" {
		return "", &ConfigError{
			Code:    "CONFIG_DATABASE_URL_HOST_MISSING",
			Message: "DATABASE_URL host is required",
		}
	}

	databaseName := strings.TrimPrefix(parsed.Path, "/")
	if databaseName == "" {
		return "", &ConfigError{
			Code:    "CONFIG_DATABASE_NAME_MISSING",
			Message: "DATABASE_URL database name is required",
		}
	}

	return parsed.Host + "/" + databaseName, nil
}
