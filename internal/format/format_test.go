package format

import "testing"

func TestLanguageName(t *testing.T) {
	cases := map[string]string{
		"dart":       "Dart",
		"python":     "Python",
		"kotlin":     "Kotlin",
		"javascript": "JavaScript",
		"JavaScript": "JavaScript",
		"cobol":      "cobol",
		"":           "",
	}
	for in, want := range cases {
		if got := LanguageName(in); got != want {
			t.Errorf("LanguageName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestShortName(t *testing.T) {
	cases := map[string]string{
		"Singleton (Instancia Única)":     "Singleton",
		"Factory Method (Método Fábrica)": "Factory Method",
		"Observer":                        "Observer",
		"  Strategy  ":                    "Strategy",
		"Adapter (Adaptador) (Wrapper)":   "Adapter",
		"(Sin nombre)":                    "",
	}
	for in, want := range cases {
		if got := ShortName(in); got != want {
			t.Errorf("ShortName(%q) = %q, want %q", in, got, want)
		}
	}
}
