package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRouterConvention(t *testing.T) {
	tests := []struct {
		input    string
		expected RouterConvention
	}{
		{"pages", ConventionPages},
		{"app", ConventionApp},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRouterConvention(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
			require.Equal(t, tt.input, got.String())
		})
	}
}

func TestParseRouterConvention_Invalid(t *testing.T) {
	for _, input := range []string{"", "Pages", "router", "src/pages"} {
		_, err := ParseRouterConvention(input)
		require.Error(t, err, "input %q", input)
		require.Contains(t, err.Error(), "invalid router convention")
	}
}

func TestRouterConvention_DisplayName(t *testing.T) {
	require.Equal(t, "Pages Router", ConventionPages.DisplayName())
	require.Equal(t, "App Router", ConventionApp.DisplayName())
	require.Equal(t, "other", RouterConvention("other").DisplayName())
}

func TestIsReservedRoute(t *testing.T) {
	for _, route := range []string{"/404", "/500", "/_app", "/_document", "/_error"} {
		require.True(t, IsReservedRoute(route), route)
	}

	for _, route := range []string{"/", "/about", "/404/details", "/_app/index", "/blog/_error", "404", "/_documents"} {
		require.False(t, IsReservedRoute(route), route)
	}
}
