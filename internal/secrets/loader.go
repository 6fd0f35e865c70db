package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where a secret value comes from. File takes
// precedence over Value when both are set.
type Source struct {
	// Name gives error messages context about which secret failed.
	Name string
	// Value is an inline secret from configuration or flags.
	Value string
	// File points to a file containing the secret.
	File string
}

// Load resolves and trims the secret. An error is returned when neither
// File nor Value yields a usable value.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	value := src.Value
	if file := strings.TrimSpace(src.File); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		value = string(data)
		if strings.TrimSpace(value) == "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s is not configured", name)
	}

	return value, nil
}
