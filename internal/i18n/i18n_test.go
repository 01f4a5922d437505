package i18n

import (
	"testing"
)

func mustNew(t *testing.T, lang string) *Translator {
	t.Helper()
	tr, err := New(lang)
	if err != nil {
		t.Fatalf("New(%q): %v", lang, err)
	}
	return tr
}

func TestTranslateEnglish(t *testing.T) {
	tr := mustNew(t, "en")

	if got := tr.T("Wrong"); got != "Not quite." {
		t.Errorf("T(Wrong) = %q", got)
	}
	if got := tr.Td("Correct", map[string]any{"Points": 10}); got != "Correct! +10 points" {
		t.Errorf("Td(Correct) = %q", got)
	}
}

func TestTranslateFrench(t *testing.T) {
	tr := mustNew(t, "fr")

	if got := tr.T("SummaryTitle"); got != "Leçon terminée" {
		t.Errorf("T(SummaryTitle) = %q", got)
	}
	if got := tr.Td("Progress", map[string]any{"Current": 2, "Total": 5}); got != "2 / 5" {
		t.Errorf("Td(Progress) = %q", got)
	}
}

func TestPlural(t *testing.T) {
	tr := mustNew(t, "en")
	tests := []struct {
		count int
		want  string
	}{
		{1, "1 correct answer"},
		{0, "0 correct answers"},
		{3, "3 correct answers"},
	}
	for _, tt := range tests {
		if got := tr.Tp("SummaryCorrect", tt.count); got != tt.want {
			t.Errorf("Tp(SummaryCorrect, %d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestFallbacks(t *testing.T) {
	tr := mustNew(t, "de")
	if got := tr.T("Wrong"); got != "Not quite." {
		t.Errorf("unknown language should fall back to English, got %q", got)
	}
	if got := tr.T("NoSuchMessage"); got != "NoSuchMessage" {
		t.Errorf("missing message should yield its ID, got %q", got)
	}

	var nilTr *Translator
	if got := nilTr.T("Wrong"); got != "Wrong" {
		t.Errorf("nil translator T = %q", got)
	}
}

func TestInvalidLanguage(t *testing.T) {
	if _, err := New("not a tag!"); err == nil {
		t.Error("expected error for invalid language tag")
	}
}

func TestLocalesComplete(t *testing.T) {
	en := mustNew(t, "en")
	fr := mustNew(t, "fr")
	ids := []string{"CoursesTitle", "LessonsTitle", "LoadTransport", "LoadUnavailable", "EmptyLesson", "Wrong", "SummaryTitle", "ScoreSaveFailed"}
	for _, id := range ids {
		if got := en.T(id); got == id {
			t.Errorf("en missing %s", id)
		}
		if got := fr.T(id); got == id || got == en.T(id) {
			t.Errorf("fr missing %s", id)
		}
	}
	if len(Languages()) < 2 {
		t.Errorf("Languages() = %v", Languages())
	}
}
