package browser

// Theme is the session-wide display preference, resolved once at startup and
// never mutated afterward.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeDark    Theme = "dark"
)

// ResolveTheme inspects request-scoped arguments and returns dark only when
// the flag is present and matches exactly. Absent, malformed, or any other
// value resolves to the default theme.
func ResolveTheme(args map[string]string) Theme {
	if args["theme"] == "dark" {
		return ThemeDark
	}
	return ThemeDefault
}

// Light reports whether the renderer should use the light palette.
func (t Theme) Light() bool { return t != ThemeDark }
