package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngram/internal/domain"
)

func TestNormalise_English(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"the color organization", "the colour organisation"},
		{"they organize", "they organise"},
		{"organizing it", "organising it"},
		{"for or nor", "for or nor"},
		{"colour organise", "colour organise"},
		{"Color", "Color"},
		{"he said ''hi''", `he said "hi"`},
		{"it`s ‘quoted’", "it's 'quoted'"},
		{"it’’s", "it's"},
		{"“curly” and «angle» and ≪math≫", `"curly" and "angle" and "math"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Normalise(tt.input, domain.English)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalise_EnglishOverApplies(t *testing.T) {
	// Substring rewrites are not dictionary-checked.
	got, err := Normalise("before", domain.English)
	require.NoError(t, err)
	assert.Equal(t, "befoure", got)
}

func TestNormalise_ComposesNFC(t *testing.T) {
	got, err := Normalise("café", domain.French)
	require.NoError(t, err)
	assert.Equal(t, "café", got)
}

func TestNormalise_French(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"keske tu fais", "qu' est -ce que tu fais"},
		{"estke tu viens", "est -ce que tu viens"},
		{"merci bcp", "merci beaucoup"},
		{"bcp bcp bcp", "beaucoup beaucoup beaucoup"},
		{"bcpx xbcp", "bcpx xbcp"},
		{"la couleur", "la couleur"},
		{"the color", "the color"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Normalise(tt.input, domain.French)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalise_FrenchCustomExpansions(t *testing.T) {
	rules := NewFrenchRules(nil, []Expansion{
		{Abbrev: "stp", Expanded: "s'il te plaît"},
		{Abbrev: "tjrs", Expanded: "toujours"},
	})
	assert.Equal(t, "viens toujours s'il te plaît", rules.Normalise("viens tjrs stp"))
	assert.Equal(t, "bcp", rules.Normalise("bcp"))
}

func TestNormalise_UnsupportedLanguage(t *testing.T) {
	_, err := Normalise("hola", domain.Language("es"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
}

func FuzzNormalise(f *testing.F) {
	f.Add("the color organization")
	f.Add("keske bcp")
	f.Add("''“”«»`‘’")
	f.Add("")

	f.Fuzz(func(t *testing.T, s string) {
		for _, lang := range []domain.Language{domain.English, domain.French} {
			got, err := Normalise(s, lang)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.ContainsAny(got, "`‘’“”«»≪≫") {
				t.Errorf("quote variant survived in %q -> %q", s, got)
			}
		}
	})
}
