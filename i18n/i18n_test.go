package i18n

import (
	"net/http/httptest"
	"testing"
)

func TestCataloguesHaveSameKeys(t *testing.T) {
	pt, en := translations["pt"], translations["en"]
	if len(pt) == 0 || len(en) == 0 {
		t.Fatal("Expected pt and en catalogues to be loaded")
	}
	for key := range pt {
		if _, ok := en[key]; !ok {
			t.Errorf("Key %q missing from en catalogue", key)
		}
	}
	for key := range en {
		if _, ok := pt[key]; !ok {
			t.Errorf("Key %q missing from pt catalogue", key)
		}
	}
}

func TestT(t *testing.T) {
	if got := T("en", "InvalidCredentials"); got != "Invalid credentials." {
		t.Errorf("Unexpected en message: %q", got)
	}
	if got := T("de", "InvalidCredentials"); got != "Credenciais inválidas." {
		t.Errorf("Expected fallback to pt, got %q", got)
	}
	if got := T("pt", "NoSuchKey"); got != "NoSuchKey" {
		t.Errorf("Expected the key for an unknown message, got %q", got)
	}
	if got := Tf("en", "FieldRequired", "title"); got != "The title field is required." {
		t.Errorf("Unexpected formatted message: %q", got)
	}
}

func TestDetectLanguage(t *testing.T) {
	cases := map[string]string{
		"":                          "pt",
		"en-US,en;q=0.9":            "en",
		"fr-CH, fr;q=0.9, en;q=0.8": "en",
		"pt-BR,pt;q=0.9,en;q=0.8":   "pt",
		"de-DE":                     "pt",
	}
	for header, want := range cases {
		r := httptest.NewRequest("GET", "/", nil)
		if header != "" {
			r.Header.Set("Accept-Language", header)
		}
		if got := DetectLanguage(r); got != want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", header, got, want)
		}
	}
}
