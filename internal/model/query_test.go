package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertySearchRequest_Filters(t *testing.T) {
	tests := []struct {
		name    string
		req     PropertySearchRequest
		want    FilterOptions
		wantErr bool
	}{
		{
			name: "all blank",
			req:  PropertySearchRequest{City: " ", OwnerID: "", MinimumPricePerNight: "", MaximumPricePerNight: "", MinimumRating: ""},
			want: FilterOptions{},
		},
		{
			name: "all set",
			req: PropertySearchRequest{
				City:                 " Vancouver ",
				OwnerID:              "3",
				MinimumPricePerNight: "0",
				MaximumPricePerNight: "150.5",
				MinimumRating:        "4",
			},
			want: FilterOptions{
				City:                 stringPtr("Vancouver"),
				OwnerID:              int64Ptr(3),
				MinimumPricePerNight: float64Ptr(0),
				MaximumPricePerNight: float64Ptr(150.5),
				MinimumRating:        float64Ptr(4),
			},
		},
		{
			name:    "non-numeric owner",
			req:     PropertySearchRequest{OwnerID: "abc"},
			wantErr: true,
		},
		{
			name:    "non-numeric price",
			req:     PropertySearchRequest{MinimumPricePerNight: "cheap"},
			wantErr: true,
		},
		{
			name:    "non-numeric rating",
			req:     PropertySearchRequest{MinimumRating: "high"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.Filters()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func stringPtr(v string) *string {
	return &v
}

func int64Ptr(v int64) *int64 {
	return &v
}

func float64Ptr(v float64) *float64 {
	return &v
}
