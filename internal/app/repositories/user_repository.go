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

var userColumns = []string{"id", "email", "name", "photo_url", "role_type", "created_at"}

// UserRepository handles user database operations
type UserRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(conn db.DBTX) *UserRepository {
	return &UserRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PhotoURL, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ListAll returns every user ordered by id
func (r *UserRepository) ListAll(ctx context.Context) ([]*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).From("users").OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	return user, nil
}

// CreateIfAbsent inserts user unless a record with the same email exists. The check and the
// insert are one statement, so concurrent signups for one email cannot both succeed.
func (r *UserRepository) CreateIfAbsent(ctx context.Context, user *models.User) (int64, bool, error) {
	role := user.Role
	if role == "" {
		role = models.RoleNone
	}

	sql, args, err := r.sb.Insert("users").
		Columns("email", "name", "photo_url", "role_type").
		Values(user.Email, user.Name, user.PhotoURL, role).
		Suffix("ON CONFLICT (email) DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return 0, false, fmt.Errorf("error creating user: %w", err)
	}

	return id, true, nil
}

// SetRole overwrites the role of user id. A missing id matches zero rows and is not an error.
func (r *UserRepository) SetRole(ctx context.Context, id int64, role models.RoleType) (int64, error) {
	return r.updateRole(ctx, squirrel.Eq{"id": id}, role)
}

// SetRoleByEmail overwrites the role of the user with email
func (r *UserRepository) SetRoleByEmail(ctx context.Context, email string, role models.RoleType) (int64, error) {
	return r.updateRole(ctx, squirrel.Eq{"email": email}, role)
}

func (r *UserRepository) updateRole(ctx context.Context, where squirrel.Eq, role models.RoleType) (int64, error) {
	sql, args, err := r.sb.Update("users").
		Set("role_type", role).
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update role query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Interface("where", where).Msg("Error executing update role query")
		return 0, fmt.Errorf("error updating user role: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
