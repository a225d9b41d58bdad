package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"dario.cat/mergo"
)

// ClientConfig configures the command-line client.
type ClientConfig struct {
	// ServerAddress is the base URL of the API, with or without scheme.
	ServerAddress string `env:"PROMPT_TRACKER_ADDRESS"`

	// RequestTimeout bounds every call the client makes.
	RequestTimeout time.Duration `env:"PROMPT_TRACKER_TIMEOUT"`

	// Token is sent as a bearer token on authenticated calls.
	Token string `env:"PROMPT_TRACKER_TOKEN"`
}

const (
	DefaultClientServerAddress  = "http://localhost:8080"
	DefaultClientRequestTimeout = 15 * time.Second
)

// ErrInvalidClientConfigs is returned when the merged client config has no
// server address or a negative timeout.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// GetClientConfig merges defaults, environment variables and the leading
// flags of args (later sources win). The arguments left after the flags are
// returned for subcommand dispatch.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	flagCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := &ClientConfig{
		ServerAddress:  DefaultClientServerAddress,
		RequestTimeout: DefaultClientRequestTimeout,
	}
	for _, src := range []*ClientConfig{envCfg, flagCfg} {
		if err = mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	if strings.TrimSpace(cfg.ServerAddress) == "" || cfg.RequestTimeout < 0 {
		return nil, nil, ErrInvalidClientConfigs
	}

	return cfg, rest, nil
}

func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{}

	fs := flag.NewFlagSet("prompt-tracker-client", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.StringVar(&cfg.ServerAddress, "s", "", "API base URL")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.Token, "token", "", "Bearer token for authenticated commands")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, fs.Args(), nil
}
