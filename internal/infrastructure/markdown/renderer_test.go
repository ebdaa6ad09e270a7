package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name     string
		source   string
		contains []string
		excludes []string
	}{
		{
			name:     "empty",
			source:   "",
			contains: nil,
		},
		{
			name:     "emphasis and lists",
			source:   "Learn **algebra**\n\n- vectors\n- matrices",
			contains: []string{"<strong>algebra</strong>", "<li>vectors</li>"},
		},
		{
			name:     "gfm table",
			source:   "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:     "script is stripped",
			source:   "hello <script>alert(1)</script>",
			excludes: []string{"<script>", "alert(1)</script>"},
		},
		{
			name:     "javascript links are dropped",
			source:   "[click](javascript:alert(1))",
			excludes: []string{"javascript:"},
		},
		{
			name:     "external links get nofollow",
			source:   "[docs](https://example.com)",
			contains: []string{`rel="nofollow`, `href="https://example.com"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := r.Render(tt.source)
			require.NoError(t, err)
			if tt.source == "" {
				assert.Empty(t, html)
			}
			for _, s := range tt.contains {
				assert.Contains(t, html, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, html, s)
			}
		})
	}
}
