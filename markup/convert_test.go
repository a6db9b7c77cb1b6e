package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "keeps safe markup", in: "<p><b>bold</b> text</p>", want: "<p><b>bold</b> text</p>"},
		{name: "drops handlers", in: `<p onclick="x()">hi</p>`, want: "<p>hi</p>"},
		{name: "drops scripts", in: "a<script>alert(1)</script>b", want: "ab"},
		{name: "keeps class", in: `<span class="more">more</span>`, want: `<span class="more">more</span>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestToMarkdown(t *testing.T) {
	md, err := ToMarkdown("<p><strong>bold</strong> text</p>")
	require.NoError(t, err)
	assert.Equal(t, "**bold** text", strings.TrimSpace(md))

	md, err = ToMarkdown("  ")
	require.NoError(t, err)
	assert.Empty(t, md)
}
