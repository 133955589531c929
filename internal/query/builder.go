package query

import (
	"fmt"
	"math"
	"strings"

	"lightbnb/internal/model"
)

const baseStatement = `SELECT properties.*, avg(property_reviews.rating) AS average_rating
FROM properties
JOIN property_reviews ON properties.id = property_reviews.property_id`

// QuerySpec is a templated statement plus its positional parameters.
// Placeholder $n in Template binds Parameters[n-1].
type QuerySpec struct {
	Template   string
	Parameters []any
}

// accumulator threads the statement under construction through each filter step
type accumulator struct {
	lines       []string
	parameters  []any
	clauseCount int
}

// bind pushes a value and returns its placeholder
func (a *accumulator) bind(value any) string {
	a.parameters = append(a.parameters, value)
	return fmt.Sprintf("$%d", len(a.parameters))
}

// filter appends a row filter, opening with WHERE on the first one
func (a *accumulator) filter(condition string) {
	keyword := "AND"
	if a.clauseCount == 0 {
		keyword = "WHERE"
	}
	a.lines = append(a.lines, keyword+" "+condition)
	a.clauseCount++
}

func (a *accumulator) line(text string) {
	a.lines = append(a.lines, text)
}

// Build assembles the property search statement for the given filters.
// Absent filters contribute nothing; limit is always the final parameter.
func Build(filters model.FilterOptions, limit int) QuerySpec {
	acc := &accumulator{lines: []string{baseStatement}}

	if filters.City != nil {
		if city := strings.TrimSpace(*filters.City); city != "" {
			acc.filter(fmt.Sprintf("LOWER(city) LIKE LOWER(%s)", acc.bind("%"+city+"%")))
		}
	}

	if filters.OwnerID != nil {
		acc.filter(fmt.Sprintf("owner_id = %s", acc.bind(*filters.OwnerID)))
	}

	// Both bounds are required; a zero bound still counts as present.
	if filters.MinimumPricePerNight != nil && filters.MaximumPricePerNight != nil {
		lower := acc.bind(toSubunits(*filters.MinimumPricePerNight))
		upper := acc.bind(toSubunits(*filters.MaximumPricePerNight))
		acc.filter(fmt.Sprintf("cost_per_night BETWEEN %s AND %s", lower, upper))
	}

	acc.line("GROUP BY properties.id")

	if filters.MinimumRating != nil {
		acc.line(fmt.Sprintf("HAVING avg(property_reviews.rating) >= %s", acc.bind(*filters.MinimumRating)))
	}

	acc.line("ORDER BY cost_per_night")
	acc.line(fmt.Sprintf("LIMIT %s", acc.bind(limit)))

	return QuerySpec{
		Template:   strings.Join(acc.lines, "\n"),
		Parameters: acc.parameters,
	}
}

// toSubunits converts whole currency units to cents as stored in cost_per_night
func toSubunits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
