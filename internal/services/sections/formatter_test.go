package sections

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain paragraph",
			input:    "A single plain sentence.",
			expected: "<p>A single plain sentence.</p>",
		},
		{
			name:     "bullet with dot prefix",
			input:    "• First point",
			expected: "<ul>\n<li>First point</li>\n</ul>",
		},
		{
			name:     "bullet with dash prefix",
			input:    "- Second point",
			expected: "<ul>\n<li>Second point</li>\n</ul>",
		},
		{
			name:     "double dash keeps inner dash",
			input:    "-- nested item",
			expected: "<ul>\n<li>- nested item</li>\n</ul>",
		},
		{
			name:     "consecutive bullets share one list",
			input:    "• first\n• second\n- third",
			expected: "<ul>\n<li>first</li>\n<li>second</li>\n<li>third</li>\n</ul>",
		},
		{
			name:     "numbered subheading",
			input:    "2) Pipeline steps",
			expected: "<h4>2) Pipeline steps</h4>",
		},
		{
			name:     "asterisks stripped",
			input:    "**Bold claim** here",
			expected: "<p>Bold claim here</p>",
		},
		{
			name:     "blank lines dropped",
			input:    "First.\n\n\nSecond.",
			expected: "<p>First.</p>\n<p>Second.</p>",
		},
		{
			name:     "mixed lines classified independently",
			input:    "Intro line.\n• a bullet\n1) a subhead\nClosing line.",
			expected: "<p>Intro line.</p>\n<ul>\n<li>a bullet</li>\n</ul>\n<h4>1) a subhead</h4>\n<p>Closing line.</p>",
		},
		{
			name:     "surrounding whitespace trimmed per line",
			input:    "   padded   ",
			expected: "<p>padded</p>",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.input)
			if result != tt.expected {
				t.Errorf("Format(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestFormatIdempotent verifies that re-formatting already-formatted
// output changes nothing; the report route re-runs content through
// formatting-adjacent code paths and must not double-wrap.
func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		"Plain paragraph one.\nPlain paragraph two.",
		"• bullet\n- another\n3) subhead\ntext",
		"",
	}

	for _, input := range inputs {
		once := Format(input)
		twice := Format(once)
		if once != twice {
			t.Errorf("Format not idempotent:\n once: %q\ntwice: %q", once, twice)
		}
	}
}
