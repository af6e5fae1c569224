package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenRoute_RoundTrip(t *testing.T) {
	screens := []Screen{
		HomeScreen(),
		CategoriesScreen(),
		ListScreen("Museums"),
		ListScreen("Food & Drink"),
		DetailScreen("Parks", 3),
		DetailScreen("Beer Halls/Bars", 12),
	}
	for _, s := range screens {
		t.Run(s.String(), func(t *testing.T) {
			parsed, err := ParseRoute(s.Route())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		})
	}
}

func TestScreenRoute_MatchesAppRoutes(t *testing.T) {
	assert.Equal(t, "home", HomeScreen().Route())
	assert.Equal(t, "categories", CategoriesScreen().Route())
	assert.Equal(t, "list/Museums", ListScreen("Museums").Route())
	assert.Equal(t, "detail/Museums/2", DetailScreen("Museums", 2).Route())
}

func TestParseRoute_Invalid(t *testing.T) {
	for _, route := range []string{"", "nowhere", "home/extra", "list", "list/", "detail/Parks", "detail/Parks/abc", "detail//3"} {
		t.Run(route, func(t *testing.T) {
			_, err := ParseRoute(route)
			assert.ErrorIs(t, err, ErrInvalidRoute)
		})
	}
}

func TestParseRoute_ToleratesSlashes(t *testing.T) {
	s, err := ParseRoute("/list/Parks/")
	require.NoError(t, err)
	assert.Equal(t, ListScreen("Parks"), s)
}
