package restaurant

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const restaurantColumns = `
	id::text, name, address, city, state, cuisine_type, phone, lat, lng, created_at
`

func scanRestaurant(row pgx.Row) (*Restaurant, error) {
	r := &Restaurant{}
	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Address,
		&r.City,
		&r.State,
		&r.CuisineType,
		&r.Phone,
		&r.Lat,
		&r.Lng,
		&r.CreatedAt,
	)
	return r, err
}

// --------------------------------------------------
// Create a new restaurant
// --------------------------------------------------
func (p *PostgresRepository) Create(ctx context.Context, r *Restaurant) error {
	err := p.db.QueryRow(ctx, `
		INSERT INTO restaurants (
			name,
			address,
			city,
			state,
			cuisine_type,
			phone,
			lat,
			lng
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id::text, created_at
	`,
		r.Name,
		r.Address,
		r.City,
		r.State,
		r.CuisineType,
		r.Phone,
		r.Lat,
		r.Lng,
	).Scan(&r.ID, &r.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrNameTaken
	}
	return err
}

// --------------------------------------------------
// List all restaurants
// --------------------------------------------------
func (p *PostgresRepository) List(ctx context.Context) ([]*Restaurant, error) {
	rows, err := p.db.Query(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurants
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []*Restaurant{}
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}

func (p *PostgresRepository) FindByName(ctx context.Context, name string) (*Restaurant, error) {
	r, err := scanRestaurant(p.db.QueryRow(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurants
		WHERE name = $1
	`, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}
