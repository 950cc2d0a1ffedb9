package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/serialsh/pkg/log"
)

const (
	TransportSerial   = "serial"
	TransportStdio    = "stdio"
	TransportReadline = "readline"
)

type AppConfig struct {
	RuntimePath string `env:"SERIALSH_RUNTIME_PATH" envDefault:".serialsh"`

	// Transport selects how bytes reach the shell
	Transport string `env:"SERIALSH_TRANSPORT" envDefault:"stdio"`
	Device    string `env:"SERIALSH_DEVICE"`
	Baud      int    `env:"SERIALSH_BAUD" envDefault:"115200"`

	// Console behaviour
	Prompt string `env:"SERIALSH_PROMPT" envDefault:"> "`
	Echo   bool   `env:"SERIALSH_ECHO" envDefault:"true"`
	Banner bool   `env:"SERIALSH_BANNER" envDefault:"true"`

	LogFile     string `env:"SERIALSH_LOG_FILE"`
	OpenRetries int    `env:"SERIALSH_OPEN_RETRIES" envDefault:"5"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := ParseAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	if !filepath.IsAbs(c.RuntimePath) {
		c.RuntimePath = GetRuntimePath()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c AppConfig) Validate() error {
	switch c.Transport {
	case TransportSerial:
		if c.Device == "" {
			return errDeviceRequired
		}
		if c.Baud <= 0 {
			return fmt.Errorf("%w: %d", errInvalidBaud, c.Baud)
		}
	case TransportStdio, TransportReadline:
	default:
		return &TransportError{Transport: c.Transport}
	}
	return nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) GetHistoryPath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}

// GetLogPath returns the log destination, or "" for stderr.
func (c AppConfig) GetLogPath() string {
	if c.LogFile == "" || filepath.IsAbs(c.LogFile) {
		return c.LogFile
	}
	return filepath.Join(c.RuntimePath, c.LogFile)
}

func (c AppConfig) GetPrompt() string {
	return c.Prompt
}

func (c AppConfig) IsEchoEnabled() bool {
	return c.Echo
}

func (c AppConfig) IsBannerEnabled() bool {
	return c.Banner
}
