// Package security provides validation and masking of remote API keys.
package security

import (
	"regexp"
	"strings"
)

var (
	keyPattern    = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	unsafePattern = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	hexPattern    = regexp.MustCompile(`^[a-fA-F0-9]+$`)
)

// APIKeyValidator provides validation and handling of API keys
type APIKeyValidator struct {
	minLength int
	maxLength int
}

// NewAPIKeyValidator creates a new API key validator with reasonable defaults
func NewAPIKeyValidator() *APIKeyValidator {
	return &APIKeyValidator{
		minLength: 8,
		maxLength: 128,
	}
}

// ValidateAPIKey validates API key format and length
func (v *APIKeyValidator) ValidateAPIKey(apiKey string) bool {
	if apiKey == "" {
		return false
	}
	if len(apiKey) < v.minLength || len(apiKey) > v.maxLength {
		return false
	}
	return keyPattern.MatchString(apiKey)
}

// SanitizeAPIKey trims whitespace and strips characters that could inject into a URL
func (v *APIKeyValidator) SanitizeAPIKey(apiKey string) string {
	return unsafePattern.ReplaceAllString(strings.TrimSpace(apiKey), "")
}

// MaskAPIKey creates a masked version for logging (shows only first/last few chars)
func (v *APIKeyValidator) MaskAPIKey(apiKey string) string {
	if len(apiKey) == 0 {
		return "[empty]"
	}
	if len(apiKey) <= 8 {
		return "[***]"
	}
	return apiKey[:3] + "..." + apiKey[len(apiKey)-3:]
}

// IsValidTMDBKey validates the v3 TMDB API key format (32 hex characters)
func (v *APIKeyValidator) IsValidTMDBKey(apiKey string) bool {
	if !v.ValidateAPIKey(apiKey) {
		return false
	}
	if len(apiKey) != 32 {
		return false
	}
	return hexPattern.MatchString(apiKey)
}
