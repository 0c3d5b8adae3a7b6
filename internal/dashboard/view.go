package dashboard

import (
	"fmt"
	"strings"
)

// SortField is a sortable table column
type SortField string

const (
	SortBySymbol        SortField = "symbol"
	SortByPrice         SortField = "price"
	SortByChange        SortField = "change"
	SortByChangePercent SortField = "changePercent"
)

// SortFields lists the columns in display order
var SortFields = []SortField{SortBySymbol, SortByPrice, SortByChange, SortByChangePercent}

// IsValid checks if the field has a comparator
func (f SortField) IsValid() bool {
	_, ok := comparators[f]
	return ok
}

// Label returns the column header text
func (f SortField) Label() string {
	switch f {
	case SortBySymbol:
		return "Symbol"
	case SortByPrice:
		return "Current Price"
	case SortByChange:
		return "Change"
	case SortByChangePercent:
		return "Change %"
	default:
		return string(f)
	}
}

// SortDirection is asc or desc
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// IsValid checks if direction is asc or desc
func (d SortDirection) IsValid() bool {
	return d == Asc || d == Desc
}

// Flip returns the opposite direction
func (d SortDirection) Flip() SortDirection {
	if d == Asc {
		return Desc
	}
	return Asc
}

// ViewSpec is the ephemeral table state: search text and sort order
type ViewSpec struct {
	SearchTerm    string        `json:"search_term"`
	SortField     SortField     `json:"sort_field"`
	SortDirection SortDirection `json:"sort_direction"`
}

// DefaultViewSpec returns (symbol, asc) with no filter
func DefaultViewSpec() ViewSpec {
	return ViewSpec{
		SortField:     SortBySymbol,
		SortDirection: Asc,
	}
}

// ParseViewSpec builds a ViewSpec from raw query values.
// Empty sort/dir fall back to the defaults.
func ParseViewSpec(search, sort, dir string) (ViewSpec, error) {
	v := DefaultViewSpec()
	v.SearchTerm = search

	if sort != "" {
		f := SortField(sort)
		if !f.IsValid() {
			return v, fmt.Errorf("%w: %q", ErrInvalidSortField, sort)
		}
		v.SortField = f
	}

	if dir != "" {
		d := SortDirection(strings.ToLower(dir))
		if !d.IsValid() {
			return v, fmt.Errorf("%w: %q", ErrInvalidSortDirection, dir)
		}
		v.SortDirection = d
	}

	return v, nil
}

// Toggle applies a click on a sort header.
// Same field flips the direction; another field switches and resets to asc.
func (v ViewSpec) Toggle(field SortField) ViewSpec {
	if v.SortField == field {
		v.SortDirection = v.SortDirection.Flip()
		return v
	}
	v.SortField = field
	v.SortDirection = Asc
	return v
}

// Indicator returns the header arrow for a column
func (v ViewSpec) Indicator(field SortField) string {
	if v.SortField != field {
		return "⇅"
	}
	if v.SortDirection == Asc {
		return "↑"
	}
	return "↓"
}
