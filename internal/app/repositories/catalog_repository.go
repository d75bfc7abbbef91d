package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/classbook/internal/app/models"
	"github.com/yigit/classbook/internal/db"
	"github.com/yigit/classbook/internal/pkg/logger"
)

// CatalogRepository serves instructors and reviews
type CatalogRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(conn db.DBTX) *CatalogRepository {
	return &CatalogRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// ListInstructors returns all instructors ordered by id
func (r *CatalogRepository) ListInstructors(ctx context.Context) ([]*models.Instructor, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "image", "classes_taken", "created_at").
		From("instructors").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list instructors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list instructors query")
		return nil, fmt.Errorf("error querying instructors: %w", err)
	}
	defer rows.Close()

	instructors := []*models.Instructor{}
	for rows.Next() {
		i := &models.Instructor{}
		if err := rows.Scan(&i.ID, &i.Name, &i.Email, &i.Image, &i.ClassesTaken, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning instructor row: %w", err)
		}
		instructors = append(instructors, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating instructor rows: %w", err)
	}

	return instructors, nil
}

// ListReviews returns all reviews ordered by id
func (r *CatalogRepository) ListReviews(ctx context.Context) ([]*models.Review, error) {
	sql, args, err := r.sb.Select("id", "name", "image", "rating", "details", "created_at").
		From("reviews").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list reviews query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list reviews query")
		return nil, fmt.Errorf("error querying reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*models.Review{}
	for rows.Next() {
		rv := &models.Review{}
		if err := rows.Scan(&rv.ID, &rv.Name, &rv.Image, &rv.Rating, &rv.Details, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning review row: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}

	return reviews, nil
}
