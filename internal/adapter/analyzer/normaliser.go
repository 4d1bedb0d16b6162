package analyzer

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	singleQuoteRun = regexp.MustCompile("[`‘’]+")

	doubleQuotes = strings.NewReplacer(
		"«", `"`, "»", `"`,
		"≪", `"`, "≫", `"`,
		"“", `"`, "”", `"`,
	)
)

// normaliseQuotes applies the language-independent rewrites: NFC composition,
// two single quotes to a double quote, runs of backticks and curly single
// quotes to one apostrophe, guillemets and curly double quotes to '"'.
func normaliseQuotes(sentence string) string {
	sentence = norm.NFC.String(sentence)
	sentence = strings.ReplaceAll(sentence, "''", `"`)
	sentence = singleQuoteRun.ReplaceAllString(sentence, "'")
	return doubleQuotes.Replace(sentence)
}
