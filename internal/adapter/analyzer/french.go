package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"ngram/internal/domain"
)

// Expansion rewrites a whole word into its expanded form.
type Expansion struct {
	Abbrev   string
	Expanded string
}

// DefaultFrenchExpansions returns the chat abbreviations expanded by
// FrenchRules, in application order.
func DefaultFrenchExpansions() []Expansion {
	return []Expansion{
		{Abbrev: "keske", Expanded: "qu' est -ce que"},
		{Abbrev: "estke", Expanded: "est -ce que"},
		{Abbrev: "bcp", Expanded: "beaucoup"},
	}
}

// FrenchAbbreviations extends DefaultAbbreviations with French titles and
// reference abbreviations.
func FrenchAbbreviations() []string {
	return append(DefaultAbbreviations(), "Mme", "Mlle", "MM", "Me", "Dr", "St", "Ste", "cf")
}

// apostrophe words that are not elisions
var frenchApostropheWords = map[string]struct{}{
	"aujourd'hui": {},
	"prud'homme":  {},
	"prud'hommes": {},
}

// FrenchRules expands chat abbreviations and tokenises French text.
type FrenchRules struct {
	guard      *AbbreviationGuard
	expansions []Expansion
}

// NewFrenchRules creates French rules. A nil guard uses FrenchAbbreviations.
func NewFrenchRules(guard *AbbreviationGuard, expansions []Expansion) *FrenchRules {
	if guard == nil {
		guard = NewAbbreviationGuard(FrenchAbbreviations())
	}
	return &FrenchRules{
		guard:      guard,
		expansions: append([]Expansion(nil), expansions...),
	}
}

func (r *FrenchRules) Language() domain.Language {
	return domain.French
}

// Normalise rewrites quotes and expands every space-delimited occurrence of
// the configured abbreviations. Other text is left unchanged.
func (r *FrenchRules) Normalise(sentence string) string {
	sentence = normaliseQuotes(sentence)
	for _, e := range r.expansions {
		if e.Abbrev == "" || !strings.Contains(sentence, e.Abbrev) {
			continue
		}
		words := strings.Split(sentence, " ")
		for i, w := range words {
			if w == e.Abbrev {
				words[i] = e.Expanded
			}
		}
		sentence = strings.Join(words, " ")
	}
	return sentence
}

// Tokenise keeps elided clitics with their apostrophe ("l'", "qu'", "j'"),
// separates punctuation followed by a space or the end of input, detaches
// opening brackets and quotes from the following word, and splits on
// whitespace. Hyphenated inversions such as "-ce" are left as written.
func (r *FrenchRules) Tokenise(sentence string) []string {
	s := splitElisions(sentence)
	s = separatePunctuation(s, isFrenchMark, r.guard)
	s = separateOpeners(s)
	return tokens(s)
}

func isFrenchMark(r rune) bool {
	switch r {
	case '.', ',', ';', ':', ')', '(', '"', '?', '!', '«', '»':
		return true
	}
	return false
}

// splitElisions breaks "l'homme" into "l' homme". An apostrophe that does not
// follow a letter is a quote mark and becomes its own token.
func splitElisions(s string) string {
	if !strings.ContainsRune(s, '\'') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != '\'' {
			b.WriteString(s[i : i+size])
			i += size
			continue
		}

		prev, _ := utf8.DecodeLastRuneInString(s[:i])
		switch {
		case i > 0 && unicode.IsLetter(prev):
			b.WriteByte('\'')
			if !atSpaceOrEnd(s, i+1) && !isApostropheWord(s, i) {
				b.WriteByte(' ')
			}
		default:
			if i > 0 && !unicode.IsSpace(prev) {
				b.WriteByte(' ')
			}
			b.WriteString("' ")
		}
		i += size
	}
	return b.String()
}

// isApostropheWord reports whether the apostrophe at pos sits inside a word
// such as "aujourd'hui" that must not be split.
func isApostropheWord(s string, pos int) bool {
	start := pos - len(trailingLetters(s[:pos]))
	end := pos + 1
	for end < len(s) {
		r, size := utf8.DecodeRuneInString(s[end:])
		if !unicode.IsLetter(r) {
			break
		}
		end += size
	}
	_, ok := frenchApostropheWords[strings.ToLower(s[start:end])]
	return ok
}

// separateOpeners inserts a space after an opening bracket or quote that
// starts a word.
func separateOpeners(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/8)

	prev := rune(-1)
	for i, r := range s {
		b.WriteRune(r)
		opener := r == '(' || r == '"' || r == '«'
		if opener && (i == 0 || unicode.IsSpace(prev)) && !atSpaceOrEnd(s, i+utf8.RuneLen(r)) {
			b.WriteByte(' ')
		}
		prev = r
	}
	return b.String()
}
