// Package ingredient parses free-form ingredient text into structured lines.
// Parsing is a heuristic: it never fails, and a line it cannot make sense of
// degrades to "the whole line is the name".
package ingredient

import (
	"regexp"
	"strings"
)

// Parsed is one non-blank line of ingredient text.
type Parsed struct {
	Name         string
	Quantity     *string
	OriginalText string
	Position     int
}

// quantityPattern matches a leading amount (digits, unicode vulgar fractions,
// slash fractions, ranges joined by "to" or "-") followed by an optional unit
// token. Matches patterns like "2 cups flour", "1/2 lb butter", "3 large eggs".
var quantityPattern = regexp.MustCompile(`(?i)^([\d½¼¾⅓⅔⅛]+(?:/\d+)?(?:\s*(?:to|-)\s*[\d½¼¾⅓⅔⅛]+(?:/\d+)?)?)\s*(?:cups?|tablespoons?|tbsp?|teaspoons?|tsp?|oz|ounces?|lbs?|pounds?|grams?|g|kg|ml|liters?|l|pinch(?:es)?|dash(?:es)?|small|medium|large|cloves?|inch)?\s*`)

// ParseLine splits a raw ingredient line into a name and an optional quantity
// prefix. The name is never empty for a non-blank line: if stripping the
// quantity would leave nothing, the whole trimmed line becomes the name.
func ParseLine(line string) (name string, quantity *string) {
	trimmed := strings.TrimSpace(line)

	match := quantityPattern.FindString(trimmed)
	if match != "" {
		q := strings.TrimSpace(match)
		name = strings.TrimSpace(trimmed[len(match):])
		if name == "" {
			name = trimmed
		}
		return name, &q
	}

	return trimmed, nil
}

// ParseBatch splits multi-line ingredient text into parsed lines. Blank lines
// are dropped without leaving gaps in position numbering.
func ParseBatch(raw string) []Parsed {
	var parsed []Parsed
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		name, quantity := ParseLine(trimmed)
		parsed = append(parsed, Parsed{
			Name:         name,
			Quantity:     quantity,
			OriginalText: trimmed,
			Position:     len(parsed),
		})
	}
	return parsed
}
