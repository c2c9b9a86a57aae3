package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"encoding/json"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/internal/service"
	"github.com/fsdevblog/storefront/internal/service/tokens"
)

// CustomerServicer интерфейс исключительно для моков.
type CustomerServicer interface {
	Register(ctx context.Context, args service.RegisterCustomerArgs) (*domain.Customer, *tokens.Pair, error)
	Login(ctx context.Context, email, password string) (*domain.Customer, *tokens.Pair, error)
	Refresh(ctx context.Context, refreshToken string) (*tokens.Pair, error)
	Logout(ctx context.Context, customerID int64, refreshToken string) error
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, filter repoargs.CustomerFilter) ([]domain.CustomerWithStats, error)
	Update(ctx context.Context, id int64, args repoargs.UpdateCustomer) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type OrderServicer interface {
	Create(ctx context.Context, args service.CreateOrderArgs) (*domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, filter repoargs.OrderFilter) ([]domain.Order, error)
	Update(ctx context.Context, id int64, args repoargs.UpdateOrder) (*domain.Order, error)
	Cancel(ctx context.Context, id int64) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}

type PaymentServicer interface {
	InitiateSTKPush(
		ctx context.Context,
		args service.InitiatePaymentArgs,
	) (*domain.Payment, *domain.STKPushResult, error)
	ReconcileCallback(ctx context.Context, callback domain.PaymentCallback) (*service.ReconcileResult, error)
	Get(ctx context.Context, id int64) (*domain.Payment, error)
	List(ctx context.Context, filter repoargs.PaymentFilter) ([]domain.Payment, error)
}

type CatalogServicer interface {
	CreateProduct(ctx context.Context, args service.ProductArgs) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, args service.ProductArgs) (*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	ListProducts(ctx context.Context, filter repoargs.ProductFilter) ([]domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	CreateCategory(ctx context.Context, args service.CategoryArgs) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, args service.CategoryArgs) (*domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateSubcategory(ctx context.Context, args service.SubcategoryArgs) (*domain.Subcategory, error)
	UpdateSubcategory(ctx context.Context, id int64, args service.SubcategoryArgs) (*domain.Subcategory, error)
	GetSubcategory(ctx context.Context, id int64) (*domain.Subcategory, error)
	ListSubcategories(ctx context.Context, categoryID int64) ([]domain.Subcategory, error)
	DeleteSubcategory(ctx context.Context, id int64) error
}

type RepairServicer interface {
	Create(ctx context.Context, args repoargs.CreateRepair) (*domain.RepairRequest, error)
	Get(ctx context.Context, id int64) (*domain.RepairRequest, error)
	List(ctx context.Context, filter repoargs.RepairFilter) ([]domain.RepairRequest, error)
	Update(ctx context.Context, id int64, args repoargs.UpdateRepair) (*domain.RepairRequest, error)
	Delete(ctx context.Context, id int64) error
}

type SettingServicer interface {
	List(ctx context.Context) ([]domain.Setting, error)
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Put(ctx context.Context, key string, value json.RawMessage) (*domain.Setting, error)
	Delete(ctx context.Context, key string) error
}

type AnalyticsServicer interface {
	Dashboard(ctx context.Context, days int) (*domain.Dashboard, error)
}
