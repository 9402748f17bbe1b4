package enum

// Toggle returns the opposite theme (dark↔light).
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IconClass returns the css class of the icon indicator for the theme.
func (t Theme) IconClass() string {
	if t == ThemeDark {
		return "fas fa-moon"
	}
	return "fas fa-sun"
}

// Label returns the human-readable label for the theme.
func (t Theme) Label() string {
	if t == ThemeDark {
		return "Dark"
	}
	return "Light"
}
