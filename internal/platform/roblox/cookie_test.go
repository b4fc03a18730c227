package roblox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCookie(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare token",
			input: "abc123",
			want:  "abc123",
		},
		{
			name:  "bare token with surrounding whitespace",
			input: "  abc123\n",
			want:  "abc123",
		},
		{
			name:  "key=value assignment",
			input: ".ROBLOSECURITY=abc123",
			want:  "abc123",
		},
		{
			name:  "key=value assignment terminated by semicolon",
			input: ".ROBLOSECURITY=abc123; path=/; HttpOnly",
			want:  "abc123",
		},
		{
			name:  "assignment embedded in a cookie header",
			input: "GuestData=x; .ROBLOSECURITY=abc123; RBXSession=y",
			want:  "abc123",
		},
		{
			name:  "bulk-export banner",
			input: "_|WARNING:-DO-NOT-SHARE-THIS_|CAEaAhAB",
			want:  "_|CAEaAhAB",
		},
		{
			name:  "banner without second delimiter falls through",
			input: "_|WARNING:orphan-banner",
			want:  "_|WARNING:orphan-banner",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCookie(tt.input))
		})
	}
}

func TestParseCookieIdempotent(t *testing.T) {
	inputs := []string{
		"abc123",
		".ROBLOSECURITY=abc123; path=/",
		"_|WARNING:-DO-NOT-SHARE-THIS_|CAEaAhAB",
		"",
	}

	for _, input := range inputs {
		once := ParseCookie(input)
		assert.Equal(t, once, ParseCookie(once), "input %q", input)
	}
}

func TestParseCookieEquivalentEncodings(t *testing.T) {
	// The same credential in all three supported encodings normalizes to
	// one canonical value.
	const canonical = "_|CAEaAhAB"

	encodings := []string{
		"_|CAEaAhAB",
		".ROBLOSECURITY=_|CAEaAhAB; HttpOnly",
		"_|WARNING:-DO-NOT-SHARE-THIS_|CAEaAhAB",
	}

	for _, encoding := range encodings {
		assert.Equal(t, canonical, ParseCookie(encoding), "encoding %q", encoding)
	}
}
