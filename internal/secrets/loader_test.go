package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSecretFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing secret file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("inline value", func(t *testing.T) {
		got, err := Load(Source{Name: "api key", Value: " token-123 \n"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "token-123" {
			t.Fatalf("expected trimmed value, got %q", got)
		}
	})

	t.Run("file value", func(t *testing.T) {
		path := writeSecretFile(t, "file-token\n")
		got, err := Load(Source{Name: "api key", File: path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "file-token" {
			t.Fatalf("expected file contents, got %q", got)
		}
	})

	t.Run("file takes precedence over value", func(t *testing.T) {
		path := writeSecretFile(t, "from-file")
		got, err := Load(Source{Name: "api key", Value: "from-value", File: path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "from-file" {
			t.Fatalf("expected file to win, got %q", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(Source{Name: "api key", File: filepath.Join(t.TempDir(), "absent")})
		if err == nil {
			t.Fatal("expected an error")
		}
		if !strings.Contains(err.Error(), "api key") {
			t.Fatalf("expected error to name the secret, got %q", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeSecretFile(t, "  \n")
		_, err := Load(Source{Name: "api key", File: path})
		if err == nil || !strings.Contains(err.Error(), "empty") {
			t.Fatalf("expected empty file error, got %v", err)
		}
	})

	t.Run("nothing configured", func(t *testing.T) {
		_, err := Load(Source{Name: "api key"})
		if err == nil || !strings.Contains(err.Error(), "not configured") {
			t.Fatalf("expected not configured error, got %v", err)
		}
	})
}
