package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	appAuth "github.com/yigit/classbook/internal/app/auth"
	"github.com/yigit/classbook/internal/app/models"
	"github.com/yigit/classbook/internal/app/repositories"
	"github.com/yigit/classbook/internal/pkg/apperrors"
	"github.com/yigit/classbook/internal/pkg/payments"
)

// memStore is an in-memory stand-in for the Postgres repositories
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	clock    time.Time
	users    []*models.User
	classes  []*models.ClassOffering
	carts    []*models.CartItem
	payments []*models.Payment
}

func newMemStore() *memStore {
	return &memStore{clock: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Minute)
	return m.clock
}

type memUsers struct{ *memStore }

func (s memUsers) ListAll(context.Context) ([]*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*models.User{}, s.users...), nil
}

func (s memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s memUsers) CreateIfAbsent(_ context.Context, user *models.User) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return 0, false, nil
		}
	}
	stored := *user
	stored.ID = s.id()
	stored.CreatedAt = s.tick()
	s.users = append(s.users, &stored)
	return stored.ID, true, nil
}

func (s memUsers) SetRole(_ context.Context, id int64, role models.RoleType) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			u.Role = role
			return 1, nil
		}
	}
	return 0, nil
}

func (s memUsers) SetRoleByEmail(_ context.Context, email string, role models.RoleType) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			u.Role = role
			return 1, nil
		}
	}
	return 0, nil
}

type memClasses struct{ *memStore }

func (s memClasses) List(_ context.Context, filter repositories.ClassFilter) ([]*models.ClassOffering, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*models.ClassOffering{}
	for _, c := range s.classes {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.InstructorEmail != "" && c.InstructorEmail != filter.InstructorEmail {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (s memClasses) ListPopular(_ context.Context, limit uint64) ([]*models.ClassOffering, error) {
	classes, _ := s.List(context.Background(), repositories.ClassFilter{Status: models.ClassApproved})
	sort.SliceStable(classes, func(i, j int) bool { return classes[i].Enrolled > classes[j].Enrolled })
	if uint64(len(classes)) > limit {
		classes = classes[:limit]
	}
	return classes, nil
}

func (s memClasses) GetByID(_ context.Context, id int64) (*models.ClassOffering, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.classes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperrors.ErrClassNotFound
}

func (s memClasses) Create(_ context.Context, class *models.ClassOffering) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *class
	stored.ID = s.id()
	stored.CreatedAt = s.tick()
	s.classes = append(s.classes, &stored)
	return stored.ID, nil
}

func (s memClasses) UpdateStatus(_ context.Context, id int64, status models.ClassStatus, feedback string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.classes {
		if c.ID == id {
			c.Status = status
			c.Feedback = feedback
			return 1, nil
		}
	}
	return 0, nil
}

type memCarts struct{ *memStore }

func (s memCarts) ListByEmail(_ context.Context, email string) ([]*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*models.CartItem{}
	for _, item := range s.carts {
		if item.Email == email {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s memCarts) Create(_ context.Context, item *models.CartItem) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *item
	stored.ID = s.id()
	stored.CreatedAt = s.tick()
	s.carts = append(s.carts, &stored)
	return stored.ID, nil
}

func (s memCarts) DeleteOwned(_ context.Context, id int64, email string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteCartLocked(id, email), nil
}

func (m *memStore) deleteCartLocked(id int64, email string) int64 {
	for i, item := range m.carts {
		if item.ID == id && item.Email == email {
			m.carts = append(m.carts[:i], m.carts[i+1:]...)
			return 1
		}
	}
	return 0
}

type memPayments struct{ *memStore }

func (s memPayments) Record(_ context.Context, payment *models.Payment) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var class *models.ClassOffering
	for _, c := range s.classes {
		if c.ID == payment.ClassID {
			class = c
		}
	}
	if class == nil {
		return 0, apperrors.ErrClassNotFound
	}
	class.Enrolled++

	payment.ID = s.id()
	payment.CreatedAt = s.tick()
	stored := *payment
	s.payments = append(s.payments, &stored)

	if payment.CartItemID == nil {
		return 0, nil
	}
	return s.deleteCartLocked(*payment.CartItemID, payment.Email), nil
}

func (s memPayments) ListByEmail(_ context.Context, email string) ([]*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*models.Payment{}
	for i := len(s.payments) - 1; i >= 0; i-- {
		if s.payments[i].Email == email {
			out = append(out, s.payments[i])
		}
	}
	return out, nil
}

func (s memPayments) ListEnrollments(ctx context.Context, email string) ([]*models.Enrollment, error) {
	paid, _ := s.ListByEmail(ctx, email)
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*models.Enrollment{}
	for _, p := range paid {
		for _, c := range s.classes {
			if c.ID == p.ClassID {
				out = append(out, &models.Enrollment{Payment: *p, Class: *c})
			}
		}
	}
	return out, nil
}

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) CreateIntent(ctx context.Context, amount int64) (*payments.Intent, error) {
	args := m.Called(ctx, amount)
	intent, _ := args.Get(0).(*payments.Intent)
	return intent, args.Error(1)
}

func (m *mockProcessor) Currency() string {
	return "usd"
}

type fixture struct {
	store    *memStore
	users    UserService
	classes  *ClassService
	carts    *CartService
	payments *PaymentService
	proc     *mockProcessor
}

func newFixture() *fixture {
	store := newMemStore()
	authz := appAuth.NewAuthorizationService(memUsers{store})
	proc := &mockProcessor{}
	lgr := zerolog.Nop()

	return &fixture{
		store:    store,
		users:    NewUserService(memUsers{store}, authz, lgr),
		classes:  NewClassService(memClasses{store}, authz, lgr),
		carts:    NewCartService(memCarts{store}, memClasses{store}, authz, lgr),
		payments: NewPaymentService(memPayments{store}, proc, authz, lgr),
		proc:     proc,
	}
}

func (f *fixture) seedClass(name string, price float64, status models.ClassStatus) *models.ClassOffering {
	id, _ := memClasses{f.store}.Create(context.Background(), &models.ClassOffering{
		Name: name, InstructorEmail: "teach@x.io", Seats: 10, Price: price, Status: status,
	})
	class, _ := memClasses{f.store}.GetByID(context.Background(), id)
	return class
}
