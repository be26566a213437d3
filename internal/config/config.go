package config

import (
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool   `env:"TEST_MODE"`
	Port       uint16 `env:"PORT" envDefault:"9090"`
	Secret     string `env:"SECRET,required"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required"`

	RabbitmqEmailExchange   string `env:"RABBITMQ_EMAIL_EXCHANGE" envDefault:"email"`
	RabbitmqEmailQueue      string `env:"RABBITMQ_EMAIL_QUEUE" envDefault:"email-notifications"`
	RabbitmqEmailRoutingKey string `env:"RABBITMQ_EMAIL_ROUTING_KEY" envDefault:"email-notifications"`

	BcryptHasherCost               int           `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	VerificationTokenValidDuration time.Duration `env:"VERIFICATION_TOKEN_VALID_DURATION" envDefault:"24h"`
	PasswordResetValidDuration     time.Duration `env:"PASSWORD_RESET_VALID_DURATION" envDefault:"1h"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	SentryDsn      string   `env:"SENTRY_DSN"`

	AwsRegion                     string  `env:"AWS_REGION,required"`
	AwsAccessKey                  string  `env:"AWS_ACCESS_KEY,required"`
	AwsSecretKey                  string  `env:"AWS_SECRET_KEY,required"`
	AwsEmailSender                string  `env:"AWS_EMAIL_SENDER,required"`
	AwsEmailVerificationTemplate  string  `env:"AWS_EMAIL_VERIFICATION_TEMPLATE" envDefault:"account-verification"`
	AwsEmailVerificationBaseUrl   url.URL `env:"AWS_EMAIL_VERIFICATION_BASE_URL,required"`
	AwsEmailPasswordResetTemplate string  `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE" envDefault:"password-reset"`
	AwsEmailPasswordResetBaseUrl  url.URL `env:"AWS_EMAIL_PASSWORD_RESET_BASE_URL,required"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
