package suggestions

import (
	"strings"
	"testing"

	"next24/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parisSuggestions(t *testing.T) []models.Activity {
	t.Helper()
	items := DefaultCatalog.Lookup("Paris, France")
	require.NotEmpty(t, items)
	return items
}

func TestLookupNormalizesDestination(t *testing.T) {
	a := DefaultCatalog.Lookup("Paris, France")
	b := DefaultCatalog.Lookup("  PARIS,   france ")
	assert.Equal(t, a, b)

	assert.Empty(t, DefaultCatalog.Lookup("Atlantis"))
}

func TestGetSuggestionsExcludesPlanned(t *testing.T) {
	engine := NewEngine(nil)
	all := engine.GetSuggestions("Paris, France", nil)
	require.NotEmpty(t, all)

	// planner copy keeps the catalog id
	planned := Accept(all[0])
	remaining := engine.GetSuggestions("Paris, France", []models.Activity{planned})

	assert.Len(t, remaining, len(all)-1)
	for _, a := range remaining {
		assert.NotEqual(t, all[0].ID, a.ID)
	}
}

func TestGetSuggestionsExcludesByRawID(t *testing.T) {
	engine := NewEngine(nil)
	all := engine.GetSuggestions("Paris, France", nil)
	require.NotEmpty(t, all)

	remaining := engine.GetSuggestions("Paris, France", []models.Activity{all[0]})
	assert.Len(t, remaining, len(all)-1)
}

func TestGetSuggestionsUnknownDestination(t *testing.T) {
	engine := NewEngine(nil)
	assert.Empty(t, engine.GetSuggestions("Nowhere", nil))
}

func TestFilterByCategory(t *testing.T) {
	items := parisSuggestions(t)

	restaurants := Filter(items, models.CategoryRestaurant, "")
	require.NotEmpty(t, restaurants)
	for _, a := range restaurants {
		assert.Equal(t, models.CategoryRestaurant, a.Category)
	}

	assert.Equal(t, items, Filter(items, "all", ""))
	assert.Equal(t, items, Filter(items, "", ""))
}

func TestFilterByQuery(t *testing.T) {
	items := parisSuggestions(t)

	matched := Filter(items, "", "eiffel")
	require.NotEmpty(t, matched)
	for _, a := range matched {
		hay := strings.ToLower(a.Name + " " + a.Description)
		assert.Contains(t, hay, "eiffel")
	}

	assert.Empty(t, Filter(items, "", "zzzz-no-such-place"))
}

func TestFilterIsIdempotent(t *testing.T) {
	items := parisSuggestions(t)

	once := Filter(items, models.CategoryAttraction, "tower")
	twice := Filter(once, models.CategoryAttraction, "tower")
	assert.Equal(t, once, twice)
}

func TestSmartSuggestionsRespectsBudget(t *testing.T) {
	candidates := []models.Activity{
		{ID: "s1", Duration: 100},
		{ID: "s2", Duration: 400},
		{ID: "s3", Duration: 50},
	}
	day := models.ItineraryDay{Activities: []models.Activity{
		{ID: "planned", Duration: 300}, // 180 left
	}}

	picked := SmartSuggestions(candidates, day)
	require.Len(t, picked, 2)
	assert.Equal(t, "s1", picked[0].ID)
	assert.Equal(t, "s3", picked[1].ID)
}

func TestSmartSuggestionsCap(t *testing.T) {
	candidates := []models.Activity{
		{ID: "s1", Duration: 10},
		{ID: "s2", Duration: 10},
		{ID: "s3", Duration: 10},
		{ID: "s4", Duration: 10},
	}
	day := models.ItineraryDay{}

	picked := SmartSuggestions(candidates, day)
	assert.Len(t, picked, SmartLimit)
}

func TestSmartSuggestionsFullDay(t *testing.T) {
	candidates := []models.Activity{{ID: "s1", Duration: 30}}
	day := models.ItineraryDay{Activities: []models.Activity{
		{ID: "planned", Duration: 480},
	}}

	assert.Empty(t, SmartSuggestions(candidates, day))
}

func TestAcceptClonesWithFreshID(t *testing.T) {
	template := models.Activity{ID: "eiffel-tower", Name: "Eiffel Tower", Duration: 120}

	first := Accept(template)
	second := Accept(template)

	assert.Equal(t, "eiffel-tower", first.CatalogID)
	assert.NotEqual(t, template.ID, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, strings.HasPrefix(first.ID, "eiffel-tower-"))
	assert.Equal(t, template.Name, first.Name)
	assert.Equal(t, template.Duration, first.Duration)

	// template untouched
	assert.Equal(t, "eiffel-tower", template.ID)
	assert.Empty(t, template.CatalogID)
}
