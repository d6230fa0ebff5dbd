package food

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
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

const selectFoods = `
	SELECT
		f.id::text, f.name, f.canonical_name, f.description, f.image_url,
		f.price::float8, f.tags, f.avg_rating, f.rating_count, f.is_trending,
		f.created_at, f.updated_at,
		r.id::text, r.name, r.address, r.city, r.state, r.lat, r.lng
	FROM food_items f
	JOIN restaurants r ON r.id = f.restaurant_id
`

func scanFood(row pgx.Row) (Food, error) {
	var f Food
	r := &RestaurantSummary{}

	err := row.Scan(
		&f.ID, &f.Name, &f.CanonicalName, &f.Description, &f.ImageURL,
		&f.Price, &f.Tags, &f.AvgRating, &f.RatingCount, &f.IsTrending,
		&f.CreatedAt, &f.UpdatedAt,
		&r.ID, &r.Name, &r.Address, &r.City, &r.State, &r.Lat, &r.Lng,
	)
	f.Restaurant = r
	if f.Tags == nil {
		f.Tags = []string{}
	}
	return f, err
}

func collectFoods(rows pgx.Rows, err error) ([]Food, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods := []Food{}
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

// isMissingFood reports a foreign key violation on food_item_id.
func isMissingFood(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// --------------------------------------------------
// LISTINGS
// --------------------------------------------------
func (r *PostgresRepository) ListByTrending(ctx context.Context, trending bool, limit int) ([]Food, error) {
	return collectFoods(r.db.Query(ctx, selectFoods+`
		WHERE f.is_trending = $1
		ORDER BY f.avg_rating DESC
		LIMIT $2
	`, trending, limit))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *PostgresRepository) Search(ctx context.Context, query, tag string, limit int) ([]Food, error) {
	pattern := "%" + likeEscaper.Replace(query) + "%"

	return collectFoods(r.db.Query(ctx, selectFoods+`
		WHERE (
			f.name ILIKE $1
			OR f.description ILIKE $1
			OR f.tags @> ARRAY[$2]::text[]
		)
		AND ($3 = '' OR f.tags @> ARRAY[$3]::text[])
		ORDER BY f.avg_rating DESC
		LIMIT $4
	`, pattern, query, tag, limit))
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*Food, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrFoodNotFound
	}

	f, err := scanFood(r.db.QueryRow(ctx, selectFoods+`WHERE f.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PostgresRepository) FindByIDs(ctx context.Context, ids []string) ([]Food, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err == nil {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return []Food{}, nil
	}

	return collectFoods(r.db.Query(ctx, selectFoods+`WHERE f.id = ANY($1::uuid[])`, valid))
}

func (r *PostgresRepository) ListByRestaurantName(ctx context.Context, name string) ([]Food, error) {
	return collectFoods(r.db.Query(ctx, selectFoods+`
		WHERE r.name = $1
		ORDER BY f.avg_rating DESC, f.name
	`, name))
}

// --------------------------------------------------
// REVIEWS
// --------------------------------------------------
func (r *PostgresRepository) ListReviews(ctx context.Context, foodID string) ([]Review, error) {
	if _, err := uuid.Parse(foodID); err != nil {
		return nil, ErrFoodNotFound
	}

	rows, err := r.db.Query(ctx, `
		SELECT id::text, food_item_id::text, user_id, rating, text, created_at
		FROM reviews
		WHERE food_item_id = $1
		ORDER BY created_at DESC
	`, foodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.FoodItemID, &rv.UserID, &rv.Rating, &rv.Text, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *PostgresRepository) AddReview(ctx context.Context, rv *Review) error {
	if _, err := uuid.Parse(rv.FoodItemID); err != nil {
		return ErrFoodNotFound
	}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO reviews (food_item_id, user_id, rating, text)
			VALUES ($1, $2, $3, $4)
			RETURNING id::text, created_at
		`, rv.FoodItemID, rv.UserID, rv.Rating, rv.Text).Scan(&rv.ID, &rv.CreatedAt)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			UPDATE food_items
			SET (avg_rating, rating_count) = (
				SELECT COALESCE(AVG(rating), 0), COUNT(*)
				FROM reviews
				WHERE food_item_id = $1
			),
			updated_at = now()
			WHERE id = $1
		`, rv.FoodItemID)
		if err != nil {
			return err
		}

		// device ids match no profile
		_, err = tx.Exec(ctx, `
			UPDATE profiles
			SET total_reviews = total_reviews + 1,
			    points = points + $2
			WHERE id::text = $1
		`, rv.UserID, PointsPerReview)
		return err
	})

	if isMissingFood(err) {
		return ErrFoodNotFound
	}
	return err
}

// --------------------------------------------------
// SAVED ITEMS
// --------------------------------------------------
func (r *PostgresRepository) Save(ctx context.Context, userID, foodID string) error {
	if _, err := uuid.Parse(foodID); err != nil {
		return ErrFoodNotFound
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO saved_items (user_id, food_item_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, userID, foodID)

	if isMissingFood(err) {
		return ErrFoodNotFound
	}
	return err
}

func (r *PostgresRepository) Unsave(ctx context.Context, userID, foodID string) error {
	if _, err := uuid.Parse(foodID); err != nil {
		return nil
	}

	_, err := r.db.Exec(ctx, `
		DELETE FROM saved_items
		WHERE user_id = $1 AND food_item_id = $2
	`, userID, foodID)
	return err
}

func (r *PostgresRepository) SavedFoods(ctx context.Context, userID string) ([]Food, error) {
	return collectFoods(r.db.Query(ctx, selectFoods+`
		JOIN saved_items s ON s.food_item_id = f.id
		WHERE s.user_id = $1
		ORDER BY s.created_at
	`, userID))
}
