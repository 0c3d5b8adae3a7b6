package dashboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultViewSpec(t *testing.T) {
	v := DefaultViewSpec()
	assert.Equal(t, SortBySymbol, v.SortField)
	assert.Equal(t, Asc, v.SortDirection)
	assert.Empty(t, v.SearchTerm)
}

func TestToggle_SameHeaderTwiceRestoresDirection(t *testing.T) {
	for _, field := range SortFields {
		for _, dir := range []SortDirection{Asc, Desc} {
			start := ViewSpec{SortField: field, SortDirection: dir}

			once := start.Toggle(field)
			twice := once.Toggle(field)

			assert.Equal(t, dir.Flip(), once.SortDirection)
			assert.Equal(t, start, twice, "field=%s dir=%s", field, dir)
		}
	}
}

func TestToggle_OtherHeaderResetsToAsc(t *testing.T) {
	for _, from := range SortFields {
		for _, to := range SortFields {
			if from == to {
				continue
			}
			start := ViewSpec{SortField: from, SortDirection: Desc, SearchTerm: "a"}

			next := start.Toggle(to)

			assert.Equal(t, to, next.SortField)
			assert.Equal(t, Asc, next.SortDirection)
			assert.Equal(t, "a", next.SearchTerm, "toggle must not touch the search term")
		}
	}
}

func TestToggle_ReachesAllEightStates(t *testing.T) {
	seen := map[ViewSpec]bool{}
	v := DefaultViewSpec()
	seen[v] = true
	for _, field := range SortFields {
		v = v.Toggle(field)
		seen[v] = true
		v = v.Toggle(field)
		seen[v] = true
	}
	assert.Len(t, seen, 8)
}

func TestIndicator(t *testing.T) {
	v := ViewSpec{SortField: SortByPrice, SortDirection: Asc}
	assert.Equal(t, "↑", v.Indicator(SortByPrice))
	assert.Equal(t, "⇅", v.Indicator(SortBySymbol))
	assert.Equal(t, "↓", v.Toggle(SortByPrice).Indicator(SortByPrice))
}

func TestParseViewSpec(t *testing.T) {
	v, err := ParseViewSpec("go", "changePercent", "DESC")
	require.NoError(t, err)
	assert.Equal(t, ViewSpec{SearchTerm: "go", SortField: SortByChangePercent, SortDirection: Desc}, v)

	v, err = ParseViewSpec("", "", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultViewSpec(), v)

	_, err = ParseViewSpec("", "volume", "")
	assert.True(t, errors.Is(err, ErrInvalidSortField))

	_, err = ParseViewSpec("", "price", "up")
	assert.True(t, errors.Is(err, ErrInvalidSortDirection))
}
