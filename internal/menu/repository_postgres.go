package menu

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Upload history of one user or device
// --------------------------------------------------
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]Upload, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			restaurant_name,
			menu_image_url,
			status,
			item_count,
			points_awarded,
			failure_reason,
			processed_at,
			created_at
		FROM menu_uploads
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	uploads := []Upload{}
	for rows.Next() {
		var u Upload
		if err := rows.Scan(
			&u.ID,
			&u.RestaurantName,
			&u.MenuImageURL,
			&u.Status,
			&u.ItemCount,
			&u.PointsAwarded,
			&u.FailureReason,
			&u.ProcessedAt,
			&u.CreatedAt,
		); err != nil {
			return nil, err
		}
		uploads = append(uploads, u)
	}

	return uploads, rows.Err()
}
