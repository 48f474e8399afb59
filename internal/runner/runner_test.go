package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pavelanni/quizkit/internal/i18n"
)

func langCtx(t *testing.T, lang string) context.Context {
	t.Helper()
	ctx, err := i18n.WithLang(context.Background(), lang)
	if err != nil {
		t.Fatalf("WithLang(%q): %v", lang, err)
	}
	return ctx
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func intPtr(v int) *int { return &v }
