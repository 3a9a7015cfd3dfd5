package tmdb

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// inlineTagRegex matches an inline tag at the start of the input.
var inlineTagRegex = regexp.MustCompile(`(?i)^</?(?:a|b|i|u|em|strong|span|p|br)(?:\s[^<>]*)?/?>`)

// cleanText turns API text into plain text: entities are decoded, inline
// markup is dropped and whitespace is collapsed. A "<" that does not open an
// inline tag is kept as text.
func cleanText(s string) string {
	return plainText(s, func(rest string) bool {
		return inlineTagRegex.MatchString(rest)
	})
}

// decodeEntities decodes entities and collapses whitespace but keeps every
// "<" as text.
func decodeEntities(s string) string {
	return plainText(s, func(string) bool { return false })
}

func plainText(s string, isTag func(rest string) bool) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '<' && !isTag(s[i:]) {
			sb.WriteString("&lt;")
			continue
		}
		sb.WriteByte(s[i])
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}
