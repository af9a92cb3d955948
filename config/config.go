package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port     int    `env:"PORT" envDefault:"3000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// NP Atobarai merchant credentials and endpoint.
	NPBaseURL      string `env:"NP_BASE_URL" envDefault:"https://ctcp.np-payment-gateway.com/v1"`
	NPMerchantCode string `env:"NP_MERCHANT_CODE" required:"true"`
	NPSPCode       string `env:"NP_SP_CODE" required:"true"`
	NPTerminalID   string `env:"NP_TERMINAL_ID" required:"true"`

	HTTPProviderClientTimeout time.Duration `env:"HTTP_PROVIDER_CLIENT_TIMEOUT" envDefault:"20s"`
	HealthCheckTimeout        time.Duration `env:"HEALTH_CHECK_TIMEOUT" envDefault:"5s"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
