package service

import (
	"context"
	"strings"

	"lightbnb/internal/model"
)

// Store is the persistence surface RentalService depends on
type Store interface {
	GetUserWithEmail(ctx context.Context, email string) (*model.User, error)
	GetUserWithID(ctx context.Context, id int64) (*model.User, error)
	AddUser(ctx context.Context, user model.NewUser) (*model.User, error)
	GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.Reservation, error)
	GetAllProperties(ctx context.Context, filters model.FilterOptions, limit int) ([]model.Property, error)
	AddProperty(ctx context.Context, property model.NewProperty) (*model.Property, error)
}

// Limits bounds the number of rows a listing call may return
type Limits struct {
	DefaultLimit            int
	MaxLimit                int
	DefaultReservationLimit int
}

// RentalService handles user, reservation and property business logic
type RentalService struct {
	store  Store
	limits Limits
}

// NewRentalService creates a new rental service
func NewRentalService(store Store, limits Limits) *RentalService {
	return &RentalService{
		store:  store,
		limits: limits,
	}
}

// GetUserWithEmail looks a user up by email; nil when not found
func (s *RentalService) GetUserWithEmail(ctx context.Context, email string) (*model.User, error) {
	return s.store.GetUserWithEmail(ctx, normalizeEmail(email))
}

// GetUserWithID looks a user up by id; nil when not found
func (s *RentalService) GetUserWithID(ctx context.Context, id int64) (*model.User, error) {
	return s.store.GetUserWithID(ctx, id)
}

// AddUser stores a user whose password has already been hashed
func (s *RentalService) AddUser(ctx context.Context, user model.NewUser) (*model.User, error) {
	user.Name = strings.TrimSpace(user.Name)
	user.Email = normalizeEmail(user.Email)
	return s.store.AddUser(ctx, user)
}

// GetAllReservations lists a guest's reservations
func (s *RentalService) GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.Reservation, error) {
	if limit <= 0 {
		limit = s.limits.DefaultReservationLimit
	}
	return s.store.GetAllReservations(ctx, guestID, s.capLimit(limit))
}

// SearchProperties runs the filtered property search
func (s *RentalService) SearchProperties(ctx context.Context, filters *model.FilterOptions, limit int) ([]model.Property, int, error) {
	options := model.FilterOptions{}
	if filters != nil {
		options = *filters
	}
	if options.City != nil {
		city := strings.TrimSpace(*options.City)
		options.City = &city
	}

	if limit <= 0 {
		limit = s.limits.DefaultLimit
	}
	limit = s.capLimit(limit)

	properties, err := s.store.GetAllProperties(ctx, options, limit)
	if err != nil {
		return nil, limit, err
	}
	return properties, limit, nil
}

// AddProperty lists a new property
func (s *RentalService) AddProperty(ctx context.Context, property model.NewProperty) (*model.Property, error) {
	property.Title = strings.TrimSpace(property.Title)
	property.City = strings.TrimSpace(property.City)
	return s.store.AddProperty(ctx, property)
}

func (s *RentalService) capLimit(limit int) int {
	if s.limits.MaxLimit > 0 && limit > s.limits.MaxLimit {
		return s.limits.MaxLimit
	}
	return limit
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
