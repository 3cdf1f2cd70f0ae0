package cli

import (
	"fmt"
	"strings"

	"github.com/gnomegl/urlsx/internal/core"
	"github.com/gnomegl/urlsx/internal/utils"
)

const (
	ModeGacha  = "gacha"
	ModeBanner = "banner"
	ModeCustom = "custom"
)

type Config struct {
	Mode     string
	Template string
	TagSpecs []string

	NoColor       bool
	NoProgressbar bool
	ListOnly      bool

	Proxy         string
	ProxyFile     string
	Timeout       int
	AllowRedirect bool
	VerifySSL     bool
	Impersonate   string

	Workers         int
	BatchSize       int
	PaceMillis      int
	MaxCombinations int

	ShowDetails bool

	CSVExport  bool
	CSVPath    string
	JSONExport bool
	JSONPath   string
	XLSXPath   string
}

// ParseTagValues decodes repeated --tag flags of the form "V=7,8" into the
// tag value map handed to the expander. Comma-splitting happens here; the
// core receives already-split lists.
func ParseTagValues(specs []string) (core.TagValues, error) {
	values := make(core.TagValues, len(specs))
	for _, spec := range specs {
		tag, raw, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, core.NewValidationError(
				fmt.Sprintf("Invalid tag value %q: expected TAG=value[,value...]", spec),
				nil,
			)
		}
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return nil, core.NewValidationError(
				fmt.Sprintf("Invalid tag value %q: empty tag name", spec),
				nil,
			)
		}
		vals := utils.SplitValues(raw)
		if len(vals) == 0 {
			return nil, core.NewValidationError(
				fmt.Sprintf("No values given for tag [%s]", tag),
				nil,
			)
		}
		values[tag] = append(values[tag], vals...)
	}
	return values, nil
}

// ResolveTemplate picks the template for the selected mode. Banner mode has
// no single template: the expander builds the splash+overview composite, so
// the returned template is only used for tag discovery.
func ResolveTemplate(config *Config) (string, error) {
	switch config.Mode {
	case ModeGacha:
		return core.TemplateGacha, nil
	case ModeBanner:
		return core.TemplateBannerOverview, nil
	case ModeCustom:
		if err := utils.ValidateTemplate(config.Template); err != nil {
			return "", err
		}
		return config.Template, nil
	default:
		return "", core.NewConfigurationError(
			fmt.Sprintf("Unknown mode %q: use %s, %s or %s", config.Mode, ModeGacha, ModeBanner, ModeCustom),
			nil,
		)
	}
}

// MissingTags lists template tags with no supplied values, in template order.
func MissingTags(template string, values core.TagValues) []string {
	var missing []string
	seen := make(map[string]bool)
	for _, tag := range core.ExtractTags(template) {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		if len(values[tag]) == 0 {
			missing = append(missing, tag)
		}
	}
	return missing
}
