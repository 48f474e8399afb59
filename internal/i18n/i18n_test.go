package i18n

import (
	"context"
	"testing"
)

func initLang(t *testing.T, lang string) context.Context {
	t.Helper()
	ctx, err := WithLang(context.Background(), lang)
	if err != nil {
		t.Fatalf("WithLang(%q): %v", lang, err)
	}
	return ctx
}

func TestTranslateEnglish(t *testing.T) {
	ctx := initLang(t, "en")

	got := T(ctx, "ResultHeader")
	if got != "Result:" {
		t.Errorf("T(ResultHeader) = %q, want 'Result:'", got)
	}

	got = T(ctx, "VerdictCorrect")
	if got != "Correct!" {
		t.Errorf("T(VerdictCorrect) = %q, want 'Correct!'", got)
	}
}

func TestTranslateRussian(t *testing.T) {
	ctx := initLang(t, "ru")

	got := T(ctx, "ResultHeader")
	if got != "Итог:" {
		t.Errorf("T(ResultHeader) = %q, want 'Итог:'", got)
	}

	got = T(ctx, "NotANumber")
	if got != "Нужно ввести целое число." {
		t.Errorf("T(NotANumber) = %q, want 'Нужно ввести целое число.'", got)
	}
}

func TestPluralTranslation(t *testing.T) {
	ctx := initLang(t, "en")

	if got := Tp(ctx, "QuestionsSampled", 1); got != "1 question drawn at random." {
		t.Errorf("Tp(QuestionsSampled, 1) = %q", got)
	}
	if got := Tp(ctx, "QuestionsSampled", 30); got != "30 questions drawn at random." {
		t.Errorf("Tp(QuestionsSampled, 30) = %q", got)
	}
}

func TestPluralTranslationRussian(t *testing.T) {
	ctx := initLang(t, "ru")

	tests := []struct {
		count int
		want  string
	}{
		{1, "Случайно выбран 1 вопрос."},
		{3, "Случайно выбрано 3 вопроса."},
		{30, "Случайно выбрано 30 вопросов."},
	}
	for _, tt := range tests {
		if got := Tp(ctx, "QuestionsSampled", tt.count); got != tt.want {
			t.Errorf("Tp(QuestionsSampled, %d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestTemplateDataTranslation(t *testing.T) {
	ctx := initLang(t, "en")

	got := Td(ctx, "FinalScore", map[string]any{"Correct": 21, "Total": 30})
	if got != "Score: 21/30" {
		t.Errorf("Td(FinalScore) = %q, want 'Score: 21/30'", got)
	}
}

func TestMissingKey(t *testing.T) {
	ctx := initLang(t, "en")

	got := T(ctx, "NonExistentKey")
	if got != "NonExistentKey" {
		t.Errorf("T(NonExistentKey) = %q, want 'NonExistentKey'", got)
	}
}

func TestInitRejectsBadTag(t *testing.T) {
	if _, err := WithLang(context.Background(), "not a tag!"); err == nil {
		t.Fatal("expected error for invalid language tag")
	}
}

func TestRegionalAndUnknownTagsFallBack(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"en-US", "Result:"},
		{"en-GB", "Result:"},
		{"ru-RU", "Итог:"},
		{"de", "Итог:"},
		{"fr-CA", "Итог:"},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			ctx := initLang(t, tt.lang)
			if got := T(ctx, "ResultHeader"); got != tt.want {
				t.Errorf("T(ResultHeader) under %s = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}
