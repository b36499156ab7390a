// Package config resolves the model and API key for a run.
package config

import (
	"errors"
	"fmt"
	"strings"

	"gemkey/internal/dotenv"
)

const (
	// DefaultModel is used when neither the flag nor the environment names one.
	DefaultModel = "gemini-1.5-flash-latest"

	// ModelEnvVar overrides the default model.
	ModelEnvVar = "VITE_GEMINI_MODEL"
)

// KeyEnvVars are checked for the API key, in priority order.
var KeyEnvVars = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "VITE_GEMINI_API_KEY"}

var (
	// ErrNoKey indicates the interactive prompt produced no key.
	ErrNoKey = errors.New("no API key provided")

	// ErrKeyMissing indicates no key source was available at all.
	ErrKeyMissing = fmt.Errorf("missing API key: pass --key or set %s", strings.Join(KeyEnvVars, "/"))
)

// Prompter is the interactive capability used as the last-resort key source.
type Prompter interface {
	// Interactive reports whether a prompt can reach a person.
	Interactive() bool
	// ReadSecret displays label and reads one masked line.
	ReadSecret(label string) (string, error)
}

// ResolveModel returns the model to query: the flag value, then the
// environment override, then the built-in default.
func ResolveModel(flagValue string, env dotenv.Environment) string {
	if model := strings.TrimSpace(flagValue); model != "" {
		return model
	}
	if model, ok := env.Lookup(ModelEnvVar); ok && strings.TrimSpace(model) != "" {
		return strings.TrimSpace(model)
	}
	return DefaultModel
}

// ResolveAPIKey picks the key from a strict priority chain: the explicit
// value, the known environment variables in order, then a masked prompt when
// allowed and interactive. The first satisfied source wins outright.
func ResolveAPIKey(explicit string, allowPrompt bool, env dotenv.Environment, prompt Prompter) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, name := range KeyEnvVars {
		if v, ok := env.Lookup(name); ok && v != "" {
			return v, nil
		}
	}
	if allowPrompt && prompt != nil && prompt.Interactive() {
		entered, err := prompt.ReadSecret("Enter Gemini API key: ")
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNoKey, err)
		}
		if entered == "" {
			return "", ErrNoKey
		}
		return entered, nil
	}
	return "", ErrKeyMissing
}
