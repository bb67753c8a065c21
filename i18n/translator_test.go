package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_lead_byte", nil); msg == "invalid_lead_byte" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_lead_byte", nil); msg == "invalid lead byte" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBackToCode(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code passthrough, got %q", msg)
	}
}

func TestTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(staticTranslator{})
	if msg := T("overlong_encoding", nil); msg != "boom" {
		t.Fatalf("expected custom translator output, got %q", msg)
	}

	SetTranslator(nil)
	if msg := T("overlong_encoding", nil); msg != "overlong encoding" {
		t.Fatalf("expected builtin en message after reset, got %q", msg)
	}
}

type staticTranslator struct{}

func (staticTranslator) Message(code string, data map[string]string) string { return "boom" }
