package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngram/internal/domain"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name      string
		paragraph string
		want      []string
	}{
		{
			name:      "single sentence is returned unchanged",
			paragraph: "Time flies like an arrow.",
			want:      []string{"Time flies like an arrow."},
		},
		{
			name:      "two sentences",
			paragraph: "Time flies like an arrow. Fruit flies like a banana.",
			want:      []string{"Time flies like an arrow.", "Fruit flies like a banana."},
		},
		{
			name:      "title abbreviation",
			paragraph: "M. Dupont est venu nous voir.",
			want:      []string{"M. Dupont est venu nous voir."},
		},
		{
			name:      "dotted initials",
			paragraph: "Aux U.S.A. il pleut.",
			want:      []string{"Aux U.S.A. il pleut."},
		},
		{
			name:      "typographic closing quotes stay with the sentence",
			paragraph: "Il a dit « non.» Elle a dit “yes.” Fin.",
			want:      []string{"Il a dit « non.»", "Elle a dit “yes.”", "Fin."},
		},
		{
			name:      "undotted acronym ends a sentence",
			paragraph: "I live in the USA. It is big.",
			want:      []string{"I live in the USA.", "It is big."},
		},
		{
			name:      "listed abbreviations",
			paragraph: "Ask Prof. Plum and Sgt. Pepper of Acme Ltd. about it. They know.",
			want:      []string{"Ask Prof. Plum and Sgt. Pepper of Acme Ltd. about it.", "They know."},
		},
		{
			name:      "latin abbreviations",
			paragraph: "Some fruit, i.e. apples, e.g. green ones. Others too.",
			want:      []string{"Some fruit, i.e. apples, e.g. green ones.", "Others too."},
		},
		{
			name:      "mixed terminal run is one boundary",
			paragraph: "Really?! Yes... I think so.",
			want:      []string{"Really?!", "Yes...", "I think so."},
		},
		{
			name:      "closing quote stays with its sentence",
			paragraph: `She said "stop." Then she left.`,
			want:      []string{`She said "stop."`, "Then she left."},
		},
		{
			name:      "closing parenthesis stays with its sentence",
			paragraph: "It rained (a lot!) We stayed in.",
			want:      []string{"It rained (a lot!)", "We stayed in."},
		},
		{
			name:      "no boundary inside a number",
			paragraph: "Pi is 3.14 or so",
			want:      []string{"Pi is 3.14 or so"},
		},
		{
			name:      "surrounding whitespace is trimmed",
			paragraph: "   Hello there.   General Kenobi!  ",
			want:      []string{"Hello there.", "General Kenobi!"},
		},
		{
			name:      "longer word starting like an abbreviation still splits",
			paragraph: "He met the Professor. It went well.",
			want:      []string{"He met the Professor.", "It went well."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Segment(tt.paragraph)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSegment_BlankParagraph(t *testing.T) {
	for _, p := range []string{"", "   ", "\t"} {
		got, err := Segment(p)
		require.NoError(t, err)
		assert.Empty(t, got, "paragraph %q", p)
	}
}

func TestSegment_LineBreakIsMalformed(t *testing.T) {
	for _, p := range []string{"one.\ntwo.", "one.\r\ntwo."} {
		_, err := Segment(p)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	}
}

func TestSegment_CustomGuard(t *testing.T) {
	seg := NewSegmenter(NewAbbreviationGuard([]string{"Dr"}))

	got, err := seg.Segment("Call Dr. Who. Now.")
	require.NoError(t, err)
	assert.Equal(t, []string{"Call Dr. Who.", "Now."}, got)
}

func TestSegment_Reconstruction(t *testing.T) {
	paragraph := "First one.  Second one?! \"Third,\" she said. Fourth"
	got, err := Segment(paragraph)
	require.NoError(t, err)
	assertReconstructs(t, paragraph, got)
}

// assertReconstructs checks that the sentences appear in order in paragraph
// and that only whitespace lies between them.
func assertReconstructs(t *testing.T, paragraph string, sentences []string) {
	t.Helper()
	rest := paragraph
	for _, s := range sentences {
		idx := strings.Index(rest, s)
		require.GreaterOrEqual(t, idx, 0, "sentence %q not found in %q", s, rest)
		assert.Empty(t, strings.TrimSpace(rest[:idx]), "non-whitespace dropped before %q", s)
		rest = rest[idx+len(s):]
	}
	assert.Empty(t, strings.TrimSpace(rest), "non-whitespace dropped at end")
}

func FuzzSegment(f *testing.F) {
	f.Add("Time flies like an arrow. Fruit flies like a banana.")
	f.Add("M. Dupont est venu nous voir.")
	f.Add("Wait... really?! \"Yes.\" (Sure.)")
	f.Add("i.e. e.g. etc. co. Ltd.")
	f.Add("")
	f.Add("\xff\xfe.")

	f.Fuzz(func(t *testing.T, paragraph string) {
		sentences, err := Segment(paragraph)
		if strings.ContainsAny(paragraph, "\n\r") {
			if err == nil {
				t.Fatalf("expected error for %q", paragraph)
			}
			return
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, s := range sentences {
			if s == "" {
				t.Fatalf("empty sentence for %q", paragraph)
			}
		}
		assertReconstructs(t, paragraph, sentences)
	})
}
