package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/crypto/bcrypt"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   provider credentials, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Operator OperatorConfig
	Courier  CourierConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure bool   `envconfig:"COOKIE_SECURE" default:"false"`
}

// OperatorConfig is the single operator credential for the admin surface.
// The password is stored as a bcrypt hash, never in the clear.
type OperatorConfig struct {
	Email        string `envconfig:"OPERATOR_EMAIL" required:"true"`
	PasswordHash string `envconfig:"OPERATOR_PASSWORD_HASH" required:"true"`
}

type CourierConfig struct {
	ClientID     string `envconfig:"COURIER_CLIENT_ID" default:""`
	ClientSecret string `envconfig:"COURIER_CLIENT_SECRET" default:""`
	AccountID    string `envconfig:"COURIER_ACCOUNT_ID" default:""`
	BaseURL      string `envconfig:"COURIER_BASE_URL" default:"https://api.courier.example.com/v1"`
	AuthURL      string `envconfig:"COURIER_AUTH_URL" default:"https://auth.courier.example.com/oauth/token"`
	UseMock      bool   `envconfig:"COURIER_USE_MOCK" default:"false"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Operator: OperatorConfig{
			Email:        "ops@example.com",
			PasswordHash: testPasswordHash(),
		},
		Courier: CourierConfig{
			ClientID:     "test-client",
			ClientSecret: "test-secret",
			AccountID:    "test-account",
			UseMock:      true,
		},
	}
}

// TestOperatorPassword is the plaintext counterpart of the operator hash in
// NewTestConfig.
const TestOperatorPassword = "test-password"

func testPasswordHash() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestOperatorPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
