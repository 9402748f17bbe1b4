package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		in       string
		expected string
		wantErr  bool
	}{
		{in: "", expected: ""},
		{in: "/themer", expected: "/themer"},
		{in: "/themer/", expected: "/themer"},
		{in: "/a/b", expected: "/a/b"},
		{in: "/", expected: ""},
		{in: "themer", wantErr: true},
		{in: "/the mer", wantErr: true},
		{in: "//evil.com", wantErr: true},
		{in: "/x?y=1", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			res, err := validateBaseURL(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, res)
		})
	}
}

func TestTerminalScheme(t *testing.T) {
	assert.True(t, terminalScheme("dark").PrefersDark())
	assert.False(t, terminalScheme("light").PrefersDark())
}

func TestTerminalView_Render(t *testing.T) {
	v := newTerminalView()
	v.SetThemeAttr("dark")
	v.SetClass("fas fa-moon")
	v.SetText("Dark")
	assert.Equal(t, "dark", v.ThemeAttr())
	assert.Contains(t, v.Render(), "☾ Dark")

	v.SetThemeAttr("light")
	v.SetClass("fas fa-sun")
	v.SetText("Light")
	assert.Contains(t, v.Render(), "☀ Light")
}

func TestSetupLogs(t *testing.T) {
	setupLogs(false)
	setupLogs(true)
}
