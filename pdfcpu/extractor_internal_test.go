package pdfcpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseContentStream(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stream string
		want   string
	}{
		{
			name:   "Tj operator",
			stream: "BT\n/F1 12 Tf\n(Hello) Tj\nET",
			want:   "Hello",
		},
		{
			name:   "TJ array with kerning",
			stream: "[(Hel) -20 (lo)] TJ",
			want:   "Hello",
		},
		{
			name:   "runs separated by positioning",
			stream: "(first) Tj\n10 0 Td\n(second) Tj",
			want:   "first second",
		},
		{
			name:   "quote operator starts new line",
			stream: "(one) Tj\n(two) '",
			want:   "one two",
		},
		{
			name:   "T* separates runs",
			stream: "(alpha) Tj\nT*\n(beta) Tj",
			want:   "alpha beta",
		},
		{
			name:   "escaped parenthesis inside literal",
			stream: `(note \(draft\)) Tj`,
			want:   "note (draft)",
		},
		{
			name:   "octal escape decodes to space",
			stream: `(a\040b) Tj`,
			want:   "a b",
		},
		{
			name:   "no text operators",
			stream: "q\n1 0 0 1 0 0 cm\nQ",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseContentStream([]byte(tt.stream)))
		})
	}
}

func TestDecodeLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain text", "hello", "hello"},
		{"newline escape", `line1\nline2`, "line1\nline2"},
		{"backslash escape", `a\\b`, `a\b`},
		{"octal three digits", `\110\151`, "Hi"},
		{"octal stops at non-digit", `\12x`, "\nx"},
		{"unknown escape passes through", `\z`, "z"},
		{"trailing backslash kept", `a\`, `a\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, decodeLiteral([]byte(tt.raw)))
		})
	}
}

func TestLiteralEnd(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, literalEnd([]byte("abc)")))
	assert.Equal(t, 4, literalEnd([]byte(`a\)b)`)), "escaped paren does not terminate")
	assert.Equal(t, -1, literalEnd([]byte("never closed")))
}
