package memory

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func isKeywordSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(`,.!?;:"'()[]`, r)
}

// extractKeywords derives up to maxKeywords tokens from a summary,
// dropping tokens shorter than minKeywordRunes. Order is preserved.
func extractKeywords(summary string) []string {
	var keywords []string
	for _, tok := range strings.FieldsFunc(summary, isKeywordSeparator) {
		if utf8.RuneCountInString(tok) < minKeywordRunes {
			continue
		}
		keywords = append(keywords, tok)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}
