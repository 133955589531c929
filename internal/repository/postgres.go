package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lightbnb/internal/logging"
	"lightbnb/internal/model"
	"lightbnb/internal/query"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Executor runs a templated statement with positional parameters.
// *sqlx.DB and *sqlx.Tx both satisfy it.
type Executor interface {
	sqlx.QueryerContext
}

// Open connects the pooled PostgreSQL handle shared by the process
func Open(dsn string, maxConn, maxIdleConn int) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// PostgresRepository handles database operations
type PostgresRepository struct {
	db Executor
}

// NewPostgresRepository creates a repository over an already opened executor
func NewPostgresRepository(db Executor) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetUserWithEmail returns the user with the given email, or nil if none exists
func (r *PostgresRepository) GetUserWithEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := sqlx.GetContext(ctx, r.db, &user, `
		SELECT *
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get user with email", err)
	}
	return &user, nil
}

// GetUserWithID returns the user with the given id, or nil if none exists
func (r *PostgresRepository) GetUserWithID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := sqlx.GetContext(ctx, r.db, &user, `
		SELECT *
		FROM users
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get user with id", err)
	}
	return &user, nil
}

// AddUser inserts a user and returns the stored row including its id.
// The password must already be hashed.
func (r *PostgresRepository) AddUser(ctx context.Context, user model.NewUser) (*model.User, error) {
	var created model.User
	err := sqlx.GetContext(ctx, r.db, &created, `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING *
	`, user.Name, user.Email, user.Password)
	if err != nil {
		return nil, dbError("add user", err)
	}
	return &created, nil
}

// GetAllReservations lists a guest's reservations with their properties, earliest first.
// The limit is used as given; defaults are the service's concern.
func (r *PostgresRepository) GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.Reservation, error) {
	reservations := []model.Reservation{}
	err := sqlx.SelectContext(ctx, r.db, &reservations, `
		SELECT reservations.id AS reservation_id, reservations.start_date, reservations.end_date,
			reservations.guest_id, properties.*
		FROM reservations
		JOIN properties ON reservations.property_id = properties.id
		WHERE reservations.guest_id = $1
		ORDER BY reservations.start_date
		LIMIT $2
	`, guestID, limit)
	if err != nil {
		return nil, dbError("get all reservations", err)
	}
	return reservations, nil
}

// GetAllProperties runs the filtered property search
func (r *PostgresRepository) GetAllProperties(ctx context.Context, filters model.FilterOptions, limit int) ([]model.Property, error) {
	spec := query.Build(filters, limit)

	logging.Debug().
		Str("template", spec.Template).
		Interface("parameters", spec.Parameters).
		Msg("Property search")

	properties := []model.Property{}
	if err := sqlx.SelectContext(ctx, r.db, &properties, spec.Template, spec.Parameters...); err != nil {
		return nil, dbError("get all properties", err)
	}
	return properties, nil
}

// AddProperty inserts a property and returns the stored row
func (r *PostgresRepository) AddProperty(ctx context.Context, property model.NewProperty) (*model.Property, error) {
	var created model.Property
	err := sqlx.GetContext(ctx, r.db, &created, `
		INSERT INTO properties (owner_id, title, description, thumbnail_photo_url, cover_photo_url,
			cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms,
			country, street, city, province, post_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING *
	`,
		property.OwnerID, property.Title, property.Description, property.ThumbnailPhotoURL, property.CoverPhotoURL,
		property.CostPerNight, property.ParkingSpaces, property.NumberOfBathrooms, property.NumberOfBedrooms,
		property.Country, property.Street, property.City, property.Province, property.PostCode,
	)
	if err != nil {
		return nil, dbError("add property", err)
	}
	return &created, nil
}
