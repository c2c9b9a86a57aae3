package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// PaymentGateway шлюз M-Pesa Express.
type PaymentGateway interface {
	STKPush(ctx context.Context, req domain.STKPushRequest) (*domain.STKPushResult, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, args repoargs.CreateCustomer) (*domain.Customer, error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	List(ctx context.Context, filter repoargs.CustomerFilter) ([]domain.CustomerWithStats, error)
	Update(ctx context.Context, id int64, args repoargs.UpdateCustomer) (*domain.Customer, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

type TokenRepository interface {
	Revoke(ctx context.Context, jti uuid.UUID, expiresAt time.Time) (bool, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, filter repoargs.OrderFilter) ([]domain.Order, error)
	Update(ctx context.Context, id int64, args repoargs.UpdateOrder) (*domain.Order, error)
	MarkPaid(ctx context.Context, id int64) (*domain.Order, error)
	CancelUnlessCompleted(ctx context.Context, id int64) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}

type PaymentRepository interface {
	Create(ctx context.Context, args repoargs.CreatePayment) (*domain.Payment, error)
	FindByID(ctx context.Context, id int64) (*domain.Payment, error)
	FindByCheckoutIDForUpdate(ctx context.Context, checkoutID string) (*domain.Payment, error)
	UpdateResult(ctx context.Context, id int64, result repoargs.PaymentResult) (*domain.Payment, error)
	List(ctx context.Context, filter repoargs.PaymentFilter) ([]domain.Payment, error)
}

type ProductRepository interface {
	Create(ctx context.Context, data repoargs.ProductData) (*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Product, error)
	List(ctx context.Context, filter repoargs.ProductFilter) ([]domain.Product, error)
	Update(ctx context.Context, id int64, data repoargs.ProductData) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryRepository interface {
	Create(ctx context.Context, data repoargs.CategoryData) (*domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, id int64, data repoargs.CategoryData) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

type SubcategoryRepository interface {
	Create(ctx context.Context, data repoargs.SubcategoryData) (*domain.Subcategory, error)
	FindByID(ctx context.Context, id int64) (*domain.Subcategory, error)
	List(ctx context.Context, categoryID int64) ([]domain.Subcategory, error)
	Update(ctx context.Context, id int64, data repoargs.SubcategoryData) (*domain.Subcategory, error)
	Delete(ctx context.Context, id int64) error
}

type RepairRepository interface {
	Create(ctx context.Context, args repoargs.CreateRepair) (*domain.RepairRequest, error)
	FindByID(ctx context.Context, id int64) (*domain.RepairRequest, error)
	List(ctx context.Context, filter repoargs.RepairFilter) ([]domain.RepairRequest, error)
	Update(ctx context.Context, id int64, args repoargs.UpdateRepair) (*domain.RepairRequest, error)
	Delete(ctx context.Context, id int64) error
}

type SettingRepository interface {
	List(ctx context.Context) ([]domain.Setting, error)
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Upsert(ctx context.Context, key string, value json.RawMessage) (*domain.Setting, error)
	Delete(ctx context.Context, key string) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, events []repoargs.EnqueueEvent) error
	GetPending(ctx context.Context, limit uint) ([]domain.OutboxEvent, error)
	MarkSent(ctx context.Context, ids []int64) error
	MarkFailed(
		ctx context.Context,
		failures []repoargs.FailedDelivery,
		maxAttempts int32,
		fn repoargs.BatchExecQueryRow,
	)
}

type AnalyticsRepository interface {
	Dashboard(ctx context.Context, days int) (*domain.Dashboard, error)
}
