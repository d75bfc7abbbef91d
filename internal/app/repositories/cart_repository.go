package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/classbook/internal/app/models"
	"github.com/yigit/classbook/internal/db"
	"github.com/yigit/classbook/internal/pkg/apperrors"
	"github.com/yigit/classbook/internal/pkg/dberrors"
	"github.com/yigit/classbook/internal/pkg/logger"
)

// CartRepository handles cart item database operations
type CartRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewCartRepository creates a new CartRepository
func NewCartRepository(conn db.DBTX) *CartRepository {
	return &CartRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// ListByEmail returns the cart items owned by email, oldest first
func (r *CartRepository) ListByEmail(ctx context.Context, email string) ([]*models.CartItem, error) {
	sql, args, err := r.sb.Select("id", "email", "class_id", "name", "image", "price", "created_at").
		From("carts").
		Where(squirrel.Eq{"email": email}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list cart query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error executing list cart query")
		return nil, fmt.Errorf("error querying cart items: %w", err)
	}
	defer rows.Close()

	items := []*models.CartItem{}
	for rows.Next() {
		item := &models.CartItem{}
		if err := rows.Scan(&item.ID, &item.Email, &item.ClassID, &item.Name, &item.Image, &item.Price, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning cart row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart rows: %w", err)
	}

	return items, nil
}

// Create inserts a cart item and returns its id
func (r *CartRepository) Create(ctx context.Context, item *models.CartItem) (int64, error) {
	sql, args, err := r.sb.Insert("carts").
		Columns("email", "class_id", "name", "image", "price").
		Values(item.Email, item.ClassID, item.Name, item.Image, item.Price).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create cart item query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyError(err) {
			return 0, apperrors.ErrClassNotFound
		}
		logger.Error().Err(err).Str("email", item.Email).Msg("Error executing create cart item query")
		return 0, fmt.Errorf("error creating cart item: %w", err)
	}

	return id, nil
}

// DeleteOwned removes cart item id when it belongs to email. Unknown ids and items owned by
// someone else delete nothing and are not errors.
func (r *CartRepository) DeleteOwned(ctx context.Context, id int64, email string) (int64, error) {
	sql, args, err := r.sb.Delete("carts").
		Where(squirrel.Eq{"id": id, "email": email}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete cart item query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("cartItemID", id).Msg("Error executing delete cart item query")
		return 0, fmt.Errorf("error deleting cart item: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
