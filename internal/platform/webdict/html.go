package webdict

import (
	"strings"

	"golang.org/x/net/html"
)

// stripHTML returns the text content of an HTML fragment with entities
// decoded and whitespace collapsed.
func stripHTML(fragment string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			// Block tags separate words.
			name, _ := z.TagName()
			if isBlock(string(name)) {
				b.WriteByte(' ')
			}
		}
	}
}

func isBlock(tag string) bool {
	switch tag {
	case "br", "p", "div", "li", "ul", "ol", "dd", "dt", "dl", "table", "tr", "td":
		return true
	}
	return false
}
