// Package config loads the deployment configuration that does not fit a
// single environment variable: the security policy (YAML) and the public
// site settings.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SecurityConfig represents the security policy for the admin surface.
type SecurityConfig struct {
	Security struct {
		Auth struct {
			// Mode selects the credential check: "static" or "jwt".
			Mode           string   `yaml:"mode"`
			MinTokenLength int      `yaml:"min_token_length"`
			WeakTokens     []string `yaml:"weak_tokens"`
		} `yaml:"auth"`
	} `yaml:"security"`
}

// DefaultSecurityConfig returns the policy used when no YAML file is
// deployed: static token auth with a 32 character minimum and the common
// placeholder values rejected.
func DefaultSecurityConfig() *SecurityConfig {
	var config SecurityConfig
	config.Security.Auth.Mode = "static"
	config.Security.Auth.MinTokenLength = 32
	config.Security.Auth.WeakTokens = []string{"secret", "password", "test", "admin", "default", "changeme"}
	return &config
}

// LoadSecurityConfig loads the security policy from a YAML file.
// The path parameter is expected to come from a trusted source (command-line
// argument or hardcoded default).
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SecurityConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSecurityConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func validateSecurityConfig(config *SecurityConfig) error {
	switch config.Security.Auth.Mode {
	case "static", "jwt":
	case "":
		return fmt.Errorf("auth mode is required")
	default:
		return fmt.Errorf("unknown auth mode: %q", config.Security.Auth.Mode)
	}

	if config.Security.Auth.MinTokenLength < 16 {
		return fmt.Errorf("min_token_length must be at least 16")
	}

	return nil
}

// ValidateAdminToken checks a configured credential against the policy.
// It rejects empty, short and known-weak values so the process refuses to
// start with a guessable admin secret.
func (c *SecurityConfig) ValidateAdminToken(token string) error {
	if token == "" {
		return fmt.Errorf("admin token is empty")
	}
	if len(token) < c.Security.Auth.MinTokenLength {
		return fmt.Errorf("admin token must be at least %d characters", c.Security.Auth.MinTokenLength)
	}

	lowered := strings.ToLower(token)
	for _, weak := range c.Security.Auth.WeakTokens {
		if strings.Contains(lowered, weak) {
			return fmt.Errorf("admin token contains weak value %q", weak)
		}
	}
	return nil
}

// AuthMode returns the configured credential check mode.
func (c *SecurityConfig) AuthMode() string {
	return c.Security.Auth.Mode
}
