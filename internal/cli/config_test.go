package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnomegl/urlsx/internal/core"
)

func TestParseTagValues(t *testing.T) {
	values, err := ParseTagValues([]string{"V=48,49", "G=Skull", "E= winter , spring "})
	require.NoError(t, err)

	assert.Equal(t, []string{"48", "49"}, values["V"])
	assert.Equal(t, []string{"Skull"}, values["G"])
	assert.Equal(t, []string{"winter", "spring"}, values["E"])
}

func TestParseTagValuesAccumulatesRepeatedTags(t *testing.T) {
	values, err := ParseTagValues([]string{"V=48", "V=49,49"})
	require.NoError(t, err)
	// Order preserved, duplicates kept.
	assert.Equal(t, []string{"48", "49", "49"}, values["V"])
}

func TestParseTagValuesErrors(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"no equals", "V48"},
		{"empty tag", "=48"},
		{"empty values", "V="},
		{"only separators", "V= , ,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTagValues([]string{tt.spec})
			assert.Error(t, err)
		})
	}
}

func TestResolveTemplate(t *testing.T) {
	tmpl, err := ResolveTemplate(&Config{Mode: ModeGacha})
	require.NoError(t, err)
	assert.Equal(t, core.TemplateGacha, tmpl)

	tmpl, err = ResolveTemplate(&Config{Mode: ModeBanner})
	require.NoError(t, err)
	assert.Equal(t, core.TemplateBannerOverview, tmpl)

	custom := "https://host/OB[7]/[b]/[Z].png"
	tmpl, err = ResolveTemplate(&Config{Mode: ModeCustom, Template: custom})
	require.NoError(t, err)
	assert.Equal(t, custom, tmpl)

	_, err = ResolveTemplate(&Config{Mode: ModeCustom, Template: "https://host/none.png"})
	assert.Error(t, err)

	_, err = ResolveTemplate(&Config{Mode: "bogus"})
	assert.Error(t, err)
}

func TestMissingTags(t *testing.T) {
	values := core.TagValues{"V": {"48"}}

	missing := MissingTags(core.TemplateGacha, values)
	assert.Equal(t, []string{"G", "E", "T"}, missing)

	full := core.TagValues{"V": {"48"}, "G": {"x"}, "E": {"y"}, "T": {"z"}}
	assert.Empty(t, MissingTags(core.TemplateGacha, full))
}
