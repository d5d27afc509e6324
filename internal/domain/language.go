package domain

// Language selects the active dictionary and the document direction.
type Language string

const (
	LangEN Language = "en"
	LangAR Language = "ar"
)

// ParseLanguage accepts the two supported codes; anything else is rejected.
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case LangEN:
		return LangEN, true
	case LangAR:
		return LangAR, true
	}
	return "", false
}

// Direction returns the document text direction for the language.
func (l Language) Direction() string {
	if l == LangAR {
		return "rtl"
	}
	return "ltr"
}

// ThemeMode is the site-wide light/dark preference, independent of language.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

func ParseThemeMode(s string) (ThemeMode, bool) {
	switch ThemeMode(s) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	}
	return "", false
}
