package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/classbook/internal/app/models"
	"github.com/yigit/classbook/internal/db"
	"github.com/yigit/classbook/internal/pkg/apperrors"
	"github.com/yigit/classbook/internal/pkg/logger"
)

var classColumns = []string{
	"id", "name", "image", "instructor_name", "instructor_email",
	"seats", "enrolled", "price", "status", "feedback", "created_at",
}

// ClassFilter narrows class listings. Zero values mean "no filter".
type ClassFilter struct {
	Status          models.ClassStatus
	InstructorEmail string
}

// ClassRepository handles class offering database operations
type ClassRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewClassRepository creates a new ClassRepository
func NewClassRepository(conn db.DBTX) *ClassRepository {
	return &ClassRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

func scanClass(row pgx.Row) (*models.ClassOffering, error) {
	class := &models.ClassOffering{}
	err := row.Scan(
		&class.ID, &class.Name, &class.Image, &class.InstructorName, &class.InstructorEmail,
		&class.Seats, &class.Enrolled, &class.Price, &class.Status, &class.Feedback, &class.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return class, nil
}

func (r *ClassRepository) queryClasses(ctx context.Context, query squirrel.SelectBuilder) ([]*models.ClassOffering, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list classes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list classes query")
		return nil, fmt.Errorf("error querying classes: %w", err)
	}
	defer rows.Close()

	classes := []*models.ClassOffering{}
	for rows.Next() {
		class, err := scanClass(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning class row: %w", err)
		}
		classes = append(classes, class)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating class rows: %w", err)
	}

	return classes, nil
}

// List returns classes matching filter ordered by id
func (r *ClassRepository) List(ctx context.Context, filter ClassFilter) ([]*models.ClassOffering, error) {
	query := r.sb.Select(classColumns...).From("classes").OrderBy("id ASC")
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.InstructorEmail != "" {
		query = query.Where(squirrel.Eq{"instructor_email": filter.InstructorEmail})
	}
	return r.queryClasses(ctx, query)
}

// ListPopular returns approved classes with the most paid enrollments first
func (r *ClassRepository) ListPopular(ctx context.Context, limit uint64) ([]*models.ClassOffering, error) {
	query := r.sb.Select(classColumns...).
		From("classes").
		Where(squirrel.Eq{"status": models.ClassApproved}).
		OrderBy("enrolled DESC", "id ASC").
		Limit(limit)
	return r.queryClasses(ctx, query)
}

// GetByID retrieves a class by id
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.ClassOffering, error) {
	sql, args, err := r.sb.Select(classColumns...).
		From("classes").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get class query: %w", err)
	}

	class, err := scanClass(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		logger.Error().Err(err).Int64("classID", id).Msg("Error scanning class row")
		return nil, fmt.Errorf("error getting class by ID: %w", err)
	}

	return class, nil
}

// Create inserts a class and returns its id
func (r *ClassRepository) Create(ctx context.Context, class *models.ClassOffering) (int64, error) {
	sql, args, err := r.sb.Insert("classes").
		Columns("name", "image", "instructor_name", "instructor_email", "seats", "price", "status").
		Values(class.Name, class.Image, class.InstructorName, class.InstructorEmail, class.Seats, class.Price, class.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create class query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("instructor", class.InstructorEmail).Msg("Error executing create class query")
		return 0, fmt.Errorf("error creating class: %w", err)
	}

	return id, nil
}

// UpdateStatus sets status and feedback of class id. A missing id matches zero rows.
func (r *ClassRepository) UpdateStatus(ctx context.Context, id int64, status models.ClassStatus, feedback string) (int64, error) {
	sql, args, err := r.sb.Update("classes").
		SetMap(map[string]interface{}{
			"status":   status,
			"feedback": feedback,
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update class status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("classID", id).Msg("Error executing update class status query")
		return 0, fmt.Errorf("error updating class status: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
