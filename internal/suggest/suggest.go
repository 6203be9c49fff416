// Package suggest scores candidate tags for a recipe draft against a static
// keyword dictionary. Scoring is a pure function of the three text fields;
// looking up which suggestions already exist as tags is the caller's job.
package suggest

import (
	"sort"
	"strings"
)

// Field confidence contributions. A keyword found in all three fields is
// worth exactly 1.0 before any combination step.
const (
	titleWeight        = 0.5
	ingredientsWeight  = 0.3
	instructionsWeight = 0.2
)

const maxSuggestions = 10

// Suggestion is a scored candidate tag name. Sources lists which fields
// ("title", "ingredients", "instructions") the match came from, deduplicated.
type Suggestion struct {
	Name       string
	Confidence float64
	Sources    []string
}

type accumulator struct {
	confidence                       float64
	inTitle, inIngredients, inInstrs bool
}

// Score scans the keyword dictionary against the lowercased fields and
// returns at most 10 candidates ordered by confidence descending.
//
// When several keywords reach the same tag, later contributions are combined
// as min(1, existing + c*0.5), so repeat matches have diminishing effect and
// confidence never exceeds 1. Keywords are scanned in sorted order so that
// combination is deterministic.
func Score(title, ingredientsRaw, instructions string) []Suggestion {
	titleLower := strings.ToLower(title)
	ingredientsLower := strings.ToLower(ingredientsRaw)
	instructionsLower := strings.ToLower(instructions)

	keywords := make([]string, 0, len(tagMappings))
	for keyword := range tagMappings {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)

	candidates := make(map[string]*accumulator)

	for _, keyword := range keywords {
		inTitle := strings.Contains(titleLower, keyword)
		inIngredients := strings.Contains(ingredientsLower, keyword)
		inInstructions := strings.Contains(instructionsLower, keyword)
		if !inTitle && !inIngredients && !inInstructions {
			continue
		}

		var confidence float64
		if inTitle {
			confidence += titleWeight
		}
		if inIngredients {
			confidence += ingredientsWeight
		}
		if inInstructions {
			confidence += instructionsWeight
		}

		for _, tagName := range tagMappings[keyword] {
			acc, ok := candidates[tagName]
			if !ok {
				acc = &accumulator{confidence: confidence}
				candidates[tagName] = acc
			} else {
				acc.confidence = min(1, acc.confidence+confidence*0.5)
			}
			acc.inTitle = acc.inTitle || inTitle
			acc.inIngredients = acc.inIngredients || inIngredients
			acc.inInstrs = acc.inInstrs || inInstructions
		}
	}

	suggestions := make([]Suggestion, 0, len(candidates))
	for name, acc := range candidates {
		var sources []string
		if acc.inTitle {
			sources = append(sources, "title")
		}
		if acc.inIngredients {
			sources = append(sources, "ingredients")
		}
		if acc.inInstrs {
			sources = append(sources, "instructions")
		}
		suggestions = append(suggestions, Suggestion{
			Name:       name,
			Confidence: acc.confidence,
			Sources:    sources,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Confidence != suggestions[j].Confidence {
			return suggestions[i].Confidence > suggestions[j].Confidence
		}
		return suggestions[i].Name < suggestions[j].Name
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
