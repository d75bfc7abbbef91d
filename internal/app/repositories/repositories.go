package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/classbook/internal/app/models"
	"github.com/yigit/classbook/internal/db"
)

// UserStore is the credential store used by services and the role guard
type UserStore interface {
	ListAll(ctx context.Context) ([]*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CreateIfAbsent(ctx context.Context, user *models.User) (id int64, created bool, err error)
	SetRole(ctx context.Context, id int64, role models.RoleType) (matched int64, err error)
	SetRoleByEmail(ctx context.Context, email string, role models.RoleType) (matched int64, err error)
}

// ClassStore persists class offerings
type ClassStore interface {
	List(ctx context.Context, filter ClassFilter) ([]*models.ClassOffering, error)
	ListPopular(ctx context.Context, limit uint64) ([]*models.ClassOffering, error)
	GetByID(ctx context.Context, id int64) (*models.ClassOffering, error)
	Create(ctx context.Context, class *models.ClassOffering) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status models.ClassStatus, feedback string) (matched int64, err error)
}

// CatalogStore serves the read-only instructor and review listings
type CatalogStore interface {
	ListInstructors(ctx context.Context) ([]*models.Instructor, error)
	ListReviews(ctx context.Context) ([]*models.Review, error)
}

// CartStore persists staged cart items
type CartStore interface {
	ListByEmail(ctx context.Context, email string) ([]*models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) (int64, error)
	DeleteOwned(ctx context.Context, id int64, email string) (deleted int64, err error)
}

// PaymentStore records payments and resolves enrollments
type PaymentStore interface {
	Record(ctx context.Context, payment *models.Payment) (cartDeleted int64, err error)
	ListByEmail(ctx context.Context, email string) ([]*models.Payment, error)
	ListEnrollments(ctx context.Context, email string) ([]*models.Enrollment, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	ClassRepository   *ClassRepository
	CatalogRepository *CatalogRepository
	CartRepository    *CartRepository
	PaymentRepository *PaymentRepository
}

// NewRepositories initializes all repositories over one shared pool
func NewRepositories(pool db.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(pool),
		ClassRepository:   NewClassRepository(pool),
		CatalogRepository: NewCatalogRepository(pool),
		CartRepository:    NewCartRepository(pool),
		PaymentRepository: NewPaymentRepository(pool),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
