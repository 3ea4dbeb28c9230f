package format

import "strings"

var languageNames = map[string]string{
	"dart":       "Dart",
	"python":     "Python",
	"kotlin":     "Kotlin",
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"go":         "Go",
	"java":       "Java",
	"csharp":     "C#",
	"cpp":        "C++",
	"swift":      "Swift",
	"rust":       "Rust",
	"ruby":       "Ruby",
	"php":        "PHP",
}

// LanguageName returns the tab label for a code example key.
// Example: LanguageName("javascript") => "JavaScript". Unknown keys are returned as-is.
func LanguageName(key string) string {
	if name, ok := languageNames[strings.ToLower(key)]; ok {
		return name
	}
	return key
}

// ShortName truncates a pattern name at its first parenthetical.
// Example: ShortName("Singleton (Instancia Única)") => "Singleton"
func ShortName(name string) string {
	if i := strings.IndexByte(name, '('); i != -1 {
		return strings.TrimSpace(name[:i])
	}
	return strings.TrimSpace(name)
}
