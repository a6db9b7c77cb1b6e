package markup

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/microcosm-cc/bluemonday"
)

// policy is the sanitizer applied to untrusted markup. It is the bluemonday
// UGC policy plus class attributes, which show-more/show-less controls rely
// on for styling.
var policy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	return p
}()

// Sanitize strips scripts, event handlers and other unsafe markup.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}

// ToMarkdown converts markup into CommonMark.
func ToMarkdown(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	md, err := htmltomarkdown.ConvertString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConvert, err)
	}
	return md, nil
}
