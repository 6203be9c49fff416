package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findSuggestion(suggestions []Suggestion, name string) *Suggestion {
	for i := range suggestions {
		if suggestions[i].Name == name {
			return &suggestions[i]
		}
	}
	return nil
}

func TestScoreTitleOnly(t *testing.T) {
	suggestions := Score("Beef stroganoff", "", "")

	s := findSuggestion(suggestions, "Beef")
	require.NotNil(t, s)
	assert.InDelta(t, 0.5, s.Confidence, 1e-9)
	assert.Equal(t, []string{"title"}, s.Sources)
}

func TestScoreAllThreeFieldsSumsToOne(t *testing.T) {
	suggestions := Score(
		"Lamb kebabs",
		"1 lb lamb shoulder",
		"thread the lamb onto skewers",
	)

	s := findSuggestion(suggestions, "Lamb")
	require.NotNil(t, s)
	assert.InDelta(t, 0.5+0.3+0.2, s.Confidence, 1e-9)
	assert.Equal(t, []string{"title", "ingredients", "instructions"}, s.Sources)
}

func TestScoreRepeatMatchesNeverExceedOne(t *testing.T) {
	// "Dessert" is reachable through chocolate, cookie, cake and dessert.
	suggestions := Score(
		"chocolate cake cookie dessert",
		"chocolate cake cookie dessert",
		"chocolate cake cookie dessert",
	)

	s := findSuggestion(suggestions, "Dessert")
	require.NotNil(t, s)
	assert.LessOrEqual(t, s.Confidence, 1.0)
	assert.Equal(t, 1.0, s.Confidence)
}

func TestScoreOrderedByConfidenceDesc(t *testing.T) {
	suggestions := Score("Chicken soup", "2 cups rice", "")

	require.NotEmpty(t, suggestions)
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].Confidence, suggestions[i].Confidence)
	}
	// Title matches outrank ingredient-only matches.
	chicken := findSuggestion(suggestions, "Chicken")
	rice := findSuggestion(suggestions, "Rice")
	require.NotNil(t, chicken)
	require.NotNil(t, rice)
	assert.Greater(t, chicken.Confidence, rice.Confidence)
}

func TestScoreCapsAtTen(t *testing.T) {
	suggestions := Score(
		"everything",
		"chicken beef pork salmon shrimp tofu rice pasta taco curry soup salad pizza bread cake",
		"",
	)
	assert.Len(t, suggestions, 10)
}

func TestScoreEmptyInput(t *testing.T) {
	assert.Empty(t, Score("", "", ""))
	assert.Empty(t, Score("zzzz qqqq", "wwww", "vvvv"))
}

func TestScoreDeterministic(t *testing.T) {
	first := Score("Chicken taco salad", "chicken, salsa, cilantro", "grill the chicken")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Score("Chicken taco salad", "chicken, salsa, cilantro", "grill the chicken"))
	}
}
