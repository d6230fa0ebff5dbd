package extract

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// RESTAURANT (LOOKUP, THEN CREATE WITH NAME ONLY)
// --------------------------------------------------
func (r *PostgresRepository) FindOrCreateRestaurant(
	ctx context.Context,
	name string,
) (*Restaurant, error) {

	var rest Restaurant

	err := r.db.QueryRow(ctx, `
		SELECT id::text, name
		FROM restaurants
		WHERE name = $1
		LIMIT 1
	`, name).Scan(&rest.ID, &rest.Name)

	if err == nil {
		return &rest, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// a concurrent upload may have created it in between
	err = r.db.QueryRow(ctx, `
		INSERT INTO restaurants (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE
		SET name = EXCLUDED.name
		RETURNING id::text, name
	`, name).Scan(&rest.ID, &rest.Name)
	if err != nil {
		return nil, err
	}

	return &rest, nil
}

// --------------------------------------------------
// FOOD ITEM UPSERT ON (canonical_name, restaurant_id)
// --------------------------------------------------
func (r *PostgresRepository) UpsertFoodItem(
	ctx context.Context,
	item FoodItemUpsert,
) (bool, error) {

	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}

	var inserted bool

	// xmax is zero only for a freshly inserted tuple
	err := r.db.QueryRow(ctx, `
		INSERT INTO food_items (
			name,
			canonical_name,
			restaurant_id,
			description,
			tags,
			price
		)
		VALUES ($1, $2, $3::uuid, $4, $5, $6)
		ON CONFLICT (canonical_name, restaurant_id)
		DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			tags = EXCLUDED.tags,
			price = EXCLUDED.price,
			updated_at = now()
		RETURNING (xmax = 0)
	`,
		item.Name,
		item.CanonicalName,
		item.RestaurantID,
		item.Description,
		tags,
		item.Price,
	).Scan(&inserted)

	return inserted, err
}

// --------------------------------------------------
// MENU UPLOAD AUDIT
// --------------------------------------------------
func (r *PostgresRepository) RecordUpload(
	ctx context.Context,
	rec UploadRecord,
) error {

	var userID, reason *string
	if rec.UserID != "" {
		userID = &rec.UserID
	}
	if rec.Reason != "" {
		reason = &rec.Reason
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO menu_uploads (
				user_id,
				restaurant_name,
				menu_image_url,
				status,
				item_count,
				points_awarded,
				failure_reason,
				processed_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
			userID,
			rec.RestaurantName,
			rec.MenuImageURL,
			rec.Status,
			rec.ItemCount,
			rec.PointsAwarded,
			reason,
			rec.ProcessedAt,
		)
		if err != nil || userID == nil || rec.Status != UploadProcessed {
			return err
		}

		// anonymous device ids match no profile
		_, err = tx.Exec(ctx, `
			UPDATE profiles
			SET total_uploads = total_uploads + 1,
			    points = points + $2
			WHERE id::text = $1
		`, *userID, rec.PointsAwarded)
		return err
	})
}
