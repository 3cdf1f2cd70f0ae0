package core

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	tagPattern       = regexp.MustCompile(`\[([A-Za-z0-9]+)\]`)
	separatorPattern = regexp.MustCompile(`[\s_-]+`)
)

// ExtractTags returns the marker tags of a template in order of appearance,
// one entry per occurrence. Only alphanumeric bracket contents count as tags.
func ExtractTags(template string) []string {
	matches := tagPattern.FindAllStringSubmatch(template, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}

// ExpansionPolicy turns the raw values of one tag into the working list used
// in the cartesian product.
type ExpansionPolicy func(values []string) []string

func IdentityPolicy(values []string) []string {
	return values
}

// GachaNamePolicy expands every raw name into its casing variants, each with
// the unsuffixed form plus "-2" through "-6", deduplicated in first-seen
// order. "Skull" becomes Skull, Skull-2 .. Skull-6, skull, skull-2 .. skull-6.
func GachaNamePolicy(values []string) []string {
	var out []string
	for _, v := range values {
		for _, base := range gachaNameBases(v) {
			out = append(out, base)
			for i := 2; i <= 6; i++ {
				out = append(out, fmt.Sprintf("%s-%d", base, i))
			}
		}
	}
	return dedupe(out)
}

// gachaNameBases produces the casing variants of one name: original, title
// case, lower case, and a concatenated camel form when the lowered text
// contains both "token" and "wheel" (the CDN names token-wheel gachas
// "TokenWheel" regardless of how players spell them).
func gachaNameBases(name string) []string {
	lower := strings.ToLower(name)
	// cases.Caser is stateful, so build one per call. Unicode title casing
	// keeps letters after mid-word punctuation lowered: "skull's" becomes
	// "Skull's", never "Skull'S".
	variants := []string{name, cases.Title(language.Und).String(name), lower}
	if strings.Contains(lower, "token") && strings.Contains(lower, "wheel") {
		variants = append(variants, camelForm(lower))
	}
	return dedupe(variants)
}

// camelForm concatenates the separator-delimited words of a lowered name,
// capitalizing each one. Names spelled without separators ("tokenwheel")
// still get the "token"/"wheel" boundaries recased so the CDN's TokenWheel
// form is always among the variants.
func camelForm(lower string) string {
	var b strings.Builder
	for _, part := range separatorPattern.Split(lower, -1) {
		if part == "" {
			continue
		}
		part = strings.ReplaceAll(part, "token", "Token")
		part = strings.ReplaceAll(part, "wheel", "Wheel")
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return b.String()
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	uniq := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			uniq = append(uniq, v)
		}
	}
	return uniq
}

// escapeValue percent-encodes a substituted value with an empty safe set:
// every reserved character is encoded, including "/".
func escapeValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

// Expander generates candidate URL sets from bracketed templates.
type Expander struct {
	// MaxCombinations caps the cartesian product; crossing it aborts the
	// expansion before any URL is materialized.
	MaxCombinations int

	// Policies maps an upper-cased tag to its expansion policy. Tags
	// without an entry use the raw values unchanged.
	Policies map[string]ExpansionPolicy
}

func NewExpander(maxCombinations int) *Expander {
	return &Expander{
		MaxCombinations: maxCombinations,
		Policies: map[string]ExpansionPolicy{
			GachaTag: GachaNamePolicy,
		},
	}
}

// Expand substitutes every combination of tag values into the template and
// returns the candidate URLs in odometer order (last tag varies fastest).
//
// A template without markers, or a required tag with no values yet, yields an
// empty set and no error: there is nothing to generate. Crossing the
// combination ceiling returns a TooManyCombinationsError.
func (e *Expander) Expand(template string, values TagValues) ([]string, error) {
	tags := dedupe(ExtractTags(template))
	if len(tags) == 0 {
		return nil, nil
	}

	lists := make([][]string, 0, len(tags))
	total := 1
	for _, t := range tags {
		vals := values[t]
		if len(vals) == 0 {
			return nil, nil
		}
		if policy := e.Policies[strings.ToUpper(t)]; policy != nil {
			vals = policy(vals)
		}
		lists = append(lists, vals)
		total *= len(vals)
		if total > e.MaxCombinations {
			return nil, &TooManyCombinationsError{Attempted: total, Limit: e.MaxCombinations}
		}
	}

	urls := make([]string, 0, total)
	idx := make([]int, len(lists))
	for {
		u := template
		for i, t := range tags {
			u = strings.ReplaceAll(u, "["+t+"]", escapeValue(lists[i][idx[i]]))
		}
		urls = append(urls, u)

		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(lists[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			break
		}
	}
	return urls, nil
}

// ExpandBanner builds the banner candidate set: the splash template expansion
// followed by the overview expansion multiplied across the known overview
// spellings. Both templates share the same tags; the ceiling applies to each
// sub-expansion on its own.
func (e *Expander) ExpandBanner(values TagValues) ([]string, error) {
	splash, err := e.Expand(TemplateBannerSplash, values)
	if err != nil {
		return nil, err
	}
	overview, err := e.Expand(TemplateBannerOverview, values)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(splash)+len(overview)*len(OverviewVariants))
	out = append(out, splash...)
	for _, base := range overview {
		for _, variant := range OverviewVariants {
			out = append(out, strings.Replace(base, "/overview.jpg", "/"+variant+".jpg", 1))
		}
	}
	return out, nil
}
