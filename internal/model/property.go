package model

import "time"

// Property represents a rental property
type Property struct {
	ID                int64    `json:"id" db:"id"`
	OwnerID           int64    `json:"owner_id" db:"owner_id"`
	Title             string   `json:"title" db:"title"`
	Description       *string  `json:"description,omitempty" db:"description"`
	ThumbnailPhotoURL *string  `json:"thumbnail_photo_url,omitempty" db:"thumbnail_photo_url"`
	CoverPhotoURL     *string  `json:"cover_photo_url,omitempty" db:"cover_photo_url"`
	CostPerNight      int64    `json:"cost_per_night" db:"cost_per_night"` // cents
	ParkingSpaces     int      `json:"parking_spaces" db:"parking_spaces"`
	NumberOfBathrooms int      `json:"number_of_bathrooms" db:"number_of_bathrooms"`
	NumberOfBedrooms  int      `json:"number_of_bedrooms" db:"number_of_bedrooms"`
	Country           string   `json:"country" db:"country"`
	Street            string   `json:"street" db:"street"`
	City              string   `json:"city" db:"city"`
	Province          string   `json:"province" db:"province"`
	PostCode          string   `json:"post_code" db:"post_code"`
	Active            bool     `json:"active" db:"active"`
	AverageRating     *float64 `json:"average_rating,omitempty" db:"average_rating"`
}

// NewProperty holds the fields required to list a property.
// CostPerNight is in cents, matching the stored column.
type NewProperty struct {
	OwnerID           int64  `json:"owner_id" binding:"required,gt=0"`
	Title             string `json:"title" binding:"required"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" binding:"omitempty,url"`
	CoverPhotoURL     string `json:"cover_photo_url" binding:"omitempty,url"`
	CostPerNight      int64  `json:"cost_per_night" binding:"gte=0"`
	ParkingSpaces     int    `json:"parking_spaces" binding:"gte=0"`
	NumberOfBathrooms int    `json:"number_of_bathrooms" binding:"gte=0"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms" binding:"gte=0"`
	Country           string `json:"country" binding:"required"`
	Street            string `json:"street" binding:"required"`
	City              string `json:"city" binding:"required"`
	Province          string `json:"province" binding:"required"`
	PostCode          string `json:"post_code" binding:"required"`
}

// Reservation represents a guest's booking joined with the booked property
type Reservation struct {
	ReservationID int64     `json:"reservation_id" db:"reservation_id"`
	StartDate     time.Time `json:"start_date" db:"start_date"`
	EndDate       time.Time `json:"end_date" db:"end_date"`
	GuestID       int64     `json:"guest_id" db:"guest_id"`
	Property
}
