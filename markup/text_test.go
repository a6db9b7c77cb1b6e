package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func root(t *testing.T, s string) *html.Node {
	t.Helper()
	div := NewElement("div")
	require.NoError(t, ParseInto(div, s))
	return div
}

func TestIsBlockLevel(t *testing.T) {
	assert.True(t, IsBlockLevel(NewElement("p")))
	assert.True(t, IsBlockLevel(NewElement("li")))
	assert.False(t, IsBlockLevel(NewElement("span")))
	assert.False(t, IsBlockLevel(NewText("p")))
	assert.False(t, IsBlockLevel(nil))
}

func TestText(t *testing.T) {
	assert.Equal(t, "Hello  world", Text(root(t, "Hello <!-- note --> world")))
	assert.Equal(t, "onetwo", Text(root(t, "<p>one</p><p>two</p>")))
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "inline", in: "Hello <b>big</b> world", want: "Hello big world"},
		{name: "blocks", in: "<p>one</p><p>two</p>", want: "one\ntwo"},
		{name: "br", in: "one<br>two", want: "one\ntwo"},
		{name: "whitespace collapses", in: "a  \n  b", want: "a b"},
		{name: "leading space of inline text", in: "<b>a</b> b", want: "a b"},
		{name: "comments skipped", in: "a<!-- x -->b", want: "ab"},
		{name: "invisible skipped", in: "a<script>var x</script><style>p{}</style>b", want: "ab"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(root(t, tt.in)))
		})
	}
}
