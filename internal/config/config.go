package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the HTTP server, the upstream
// media server and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Jellyfin contains the connection settings of the upstream media server
	Jellyfin struct {
		// BaseURL is the server address including scheme, e.g. https://media.example.com
		BaseURL string `env:"JELLYFIN_BASE_URL" env-default:"http://localhost:8096" yaml:"baseURL"`
		// Token is the access token (or API key) requests are authenticated with
		Token string `env:"JELLYFIN_TOKEN" yaml:"token"`
		// UserID is the user the library queries are issued for
		UserID string `env:"JELLYFIN_USER_ID" yaml:"userID"`
		// Client is the client name reported in the authorization header
		Client string `env:"JELLYFIN_CLIENT" env-default:"jellyfront" yaml:"client"`
		// Device is the device name reported in the authorization header
		Device string `env:"JELLYFIN_DEVICE" env-default:"server" yaml:"device"`
		// DeviceID identifies this installation to the media server
		DeviceID string `env:"JELLYFIN_DEVICE_ID" env-default:"jellyfront" yaml:"deviceID"`
		// Version is the client version reported in the authorization header
		Version string `env:"JELLYFIN_CLIENT_VERSION" env-default:"0.1.0" yaml:"version"`
		// Timeout bounds every single request to the media server
		Timeout time.Duration `env:"JELLYFIN_TIMEOUT" env-default:"15s" yaml:"timeout"`
		// LatestLimit caps the number of items of every "latest" row
		LatestLimit int `env:"JELLYFIN_LATEST_LIMIT" env-default:"24" yaml:"latestLimit"`
	} `yaml:"jellyfin"`

	// Tracing contains the OpenTelemetry trace export settings
	Tracing struct {
		// ServiceName is reported as the service.name resource attribute
		ServiceName string `env:"TRACING_SERVICE_NAME" env-default:"jellyfront" yaml:"serviceName"`
		// Endpoint is the OTLP/HTTP collector URL, e.g. http://localhost:4318. Spans are not exported when empty
		Endpoint string `env:"TRACING_ENDPOINT" yaml:"endpoint"`
		// SampleRatio is the fraction of root traces that are sampled
		SampleRatio float64 `env:"TRACING_SAMPLE_RATIO" env-default:"1" yaml:"sampleRatio"`
	} `yaml:"tracing"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Validate checks the settings that have no usable default.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Jellyfin.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid jellyfin base URL %q", c.Jellyfin.BaseURL)
	}
	if strings.TrimSpace(c.Jellyfin.Token) == "" {
		return fmt.Errorf("jellyfin token is required")
	}
	if strings.TrimSpace(c.Jellyfin.UserID) == "" {
		return fmt.Errorf("jellyfin user ID is required")
	}

	return nil
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
