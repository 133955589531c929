package model

import (
	"fmt"
	"strconv"
	"strings"
)

// FilterOptions represents the optional property search criteria
type FilterOptions struct {
	City                 *string  `json:"city,omitempty"`
	OwnerID              *int64   `json:"owner_id,omitempty"`
	MinimumPricePerNight *float64 `json:"minimum_price_per_night,omitempty"` // whole currency units
	MaximumPricePerNight *float64 `json:"maximum_price_per_night,omitempty"` // whole currency units
	MinimumRating        *float64 `json:"minimum_rating,omitempty"`          // 0-5
}

// PropertySearchRequest represents GET /api/v1/properties query parameters.
// The search form submits every field, so blank values mean "no filter".
type PropertySearchRequest struct {
	City                 string `form:"city"`
	OwnerID              string `form:"owner_id"`
	MinimumPricePerNight string `form:"minimum_price_per_night"`
	MaximumPricePerNight string `form:"maximum_price_per_night"`
	MinimumRating        string `form:"minimum_rating"`
	Limit                int    `form:"limit"`
}

// Filters converts the raw form values, leaving blank fields unset
func (r PropertySearchRequest) Filters() (FilterOptions, error) {
	var filters FilterOptions
	var err error

	if city := strings.TrimSpace(r.City); city != "" {
		filters.City = &city
	}
	if filters.OwnerID, err = parseOptionalInt("owner_id", r.OwnerID); err != nil {
		return FilterOptions{}, err
	}
	if filters.MinimumPricePerNight, err = parseOptionalFloat("minimum_price_per_night", r.MinimumPricePerNight); err != nil {
		return FilterOptions{}, err
	}
	if filters.MaximumPricePerNight, err = parseOptionalFloat("maximum_price_per_night", r.MaximumPricePerNight); err != nil {
		return FilterOptions{}, err
	}
	if filters.MinimumRating, err = parseOptionalFloat("minimum_rating", r.MinimumRating); err != nil {
		return FilterOptions{}, err
	}
	return filters, nil
}

func parseOptionalInt(name, raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}

func parseOptionalFloat(name, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}

// PropertySearchResponse represents a property search result
type PropertySearchResponse struct {
	Properties []Property `json:"properties"`
	Count      int        `json:"count"`
	Limit      int        `json:"limit"`
	Took       int64      `json:"took_ms"` // Response time in milliseconds
}

// ReservationListResponse represents a guest's reservations
type ReservationListResponse struct {
	Reservations []Reservation `json:"reservations"`
	Count        int           `json:"count"`
}
