package auth

import (
	"fmt"

	"identity-org-backend/internal/config"
	apperrors "identity-org-backend/internal/errors"
)

// AuthConfig holds the token signing configuration
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer    string `yaml:"issuer" json:"issuer"`
}

// NewAuthConfig builds and validates the auth configuration from the application config
func NewAuthConfig(cfg *config.Config) (*AuthConfig, error) {
	authConfig := &AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
	}
	if err := authConfig.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}
	return authConfig, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return apperrors.NewConfigurationError("JWT secret is required")
	}
	if c.Issuer == "" {
		return apperrors.NewConfigurationError("JWT issuer is required")
	}
	return nil
}
