package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/storefront/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	HealthRoute = "/health"
	RouteGroup  = "/api"

	RegisterRoute = "/auth/register"
	LoginRoute    = "/auth/login"
	RefreshRoute  = "/auth/refresh"
	LogoutRoute   = "/auth/logout"
	MeRoute       = "/auth/me"

	OrdersRoute      = "/orders"
	OrderRoute       = "/orders/:id"
	OrderCancelRoute = "/orders/:id/cancel"

	STKPushRoute  = "/payments/mpesa/stk-push"
	CallbackRoute = "/payments/mpesa/callback"
	PaymentsRoute = "/payments"
	PaymentRoute  = "/payments/:id"

	ProductsRoute      = "/products"
	ProductRoute       = "/products/:id"
	CategoriesRoute    = "/categories"
	CategoryRoute      = "/categories/:id"
	SubcategoriesRoute = "/subcategories"
	SubcategoryRoute   = "/subcategories/:id"

	CustomersRoute = "/customers"
	CustomerRoute  = "/customers/:id"
	RepairsRoute   = "/repairs"
	RepairRoute    = "/repairs/:id"
	SettingsRoute  = "/settings"
	SettingRoute   = "/settings/:key"
	DashboardRoute = "/analytics/dashboard"
)

const (
	defaultAuthRateLimit = 5
	defaultAuthRateBurst = 10
)

type RouterArgs struct {
	Logger           *logrus.Logger
	CustomerService  CustomerServicer
	OrderService     OrderServicer
	PaymentService   PaymentServicer
	CatalogService   CatalogServicer
	RepairService    RepairServicer
	SettingService   SettingServicer
	AnalyticsService AnalyticsServicer
	JWTSecretKey     []byte
	// AuthRateLimit запросов в секунду с одного IP к эндпоинтам аутентификации. 0 - значение по умолчанию.
	AuthRateLimit float64
	AuthRateBurst int
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}
	if args.Logger == nil {
		args.Logger = logrus.StandardLogger()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.Logger(args.Logger))
	r.Use(middlewares.Errors())

	r.GET(HealthRoute, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := NewAuthHandler(args.CustomerService)
	ordersHandler := NewOrdersHandler(args.OrderService)
	paymentsHandler := NewPaymentsHandler(args.PaymentService, args.OrderService, args.Logger)
	catalogHandler := NewCatalogHandler(args.CatalogService)
	customersHandler := NewCustomersHandler(args.CustomerService)
	repairsHandler := NewRepairsHandler(args.RepairService)
	settingsHandler := NewSettingsHandler(args.SettingService)
	analyticsHandler := NewAnalyticsHandler(args.AnalyticsService)

	authRequired := middlewares.AuthRequired(args.JWTSecretKey)
	optionalAuth := middlewares.OptionalAuth(args.JWTSecretKey)
	adminRequired := middlewares.AdminRequired()
	authRateLimit := middlewares.RateLimit(newAuthRateLimiter(args.AuthRateLimit, args.AuthRateBurst))

	api := r.Group(RouteGroup)

	// публичные роуты
	api.POST(RegisterRoute, authRateLimit, authHandler.Register)
	api.POST(LoginRoute, authRateLimit, authHandler.Login)
	api.POST(RefreshRoute, authRateLimit, authHandler.Refresh)
	api.POST(CallbackRoute, paymentsHandler.Callback)
	api.POST(RepairsRoute, optionalAuth, repairsHandler.Create)

	api.GET(ProductsRoute, optionalAuth, catalogHandler.ListProducts)
	api.GET(ProductRoute, catalogHandler.ShowProduct)
	api.GET(CategoriesRoute, catalogHandler.ListCategories)
	api.GET(CategoryRoute, catalogHandler.ShowCategory)
	api.GET(SubcategoriesRoute, catalogHandler.ListSubcategories)
	api.GET(SubcategoryRoute, catalogHandler.ShowSubcategory)

	// ниже все роуты требуют авторизованного покупателя.
	customer := api.Group("", authRequired)
	customer.POST(LogoutRoute, authHandler.Logout)
	customer.GET(MeRoute, authHandler.Me)

	customer.POST(OrdersRoute, ordersHandler.Create)
	customer.GET(OrdersRoute, ordersHandler.Index)
	customer.GET(OrderRoute, ordersHandler.Show)
	customer.POST(OrderCancelRoute, ordersHandler.Cancel)

	customer.POST(STKPushRoute, paymentsHandler.STKPush)

	// ниже все роуты только для администратора.
	admin := customer.Group("", adminRequired)
	admin.PUT(OrderRoute, ordersHandler.Update)
	admin.DELETE(OrderRoute, ordersHandler.Delete)

	admin.GET(PaymentsRoute, paymentsHandler.Index)
	admin.GET(PaymentRoute, paymentsHandler.Show)

	admin.POST(ProductsRoute, catalogHandler.CreateProduct)
	admin.PUT(ProductRoute, catalogHandler.UpdateProduct)
	admin.DELETE(ProductRoute, catalogHandler.DeleteProduct)
	admin.POST(CategoriesRoute, catalogHandler.CreateCategory)
	admin.PUT(CategoryRoute, catalogHandler.UpdateCategory)
	admin.DELETE(CategoryRoute, catalogHandler.DeleteCategory)
	admin.POST(SubcategoriesRoute, catalogHandler.CreateSubcategory)
	admin.PUT(SubcategoryRoute, catalogHandler.UpdateSubcategory)
	admin.DELETE(SubcategoryRoute, catalogHandler.DeleteSubcategory)

	admin.GET(CustomersRoute, customersHandler.Index)
	admin.GET(CustomerRoute, customersHandler.Show)
	admin.PUT(CustomerRoute, customersHandler.Update)
	admin.DELETE(CustomerRoute, customersHandler.Delete)

	admin.GET(RepairsRoute, repairsHandler.Index)
	admin.GET(RepairRoute, repairsHandler.Show)
	admin.PUT(RepairRoute, repairsHandler.Update)
	admin.DELETE(RepairRoute, repairsHandler.Delete)

	admin.GET(SettingsRoute, settingsHandler.Index)
	admin.GET(SettingRoute, settingsHandler.Show)
	admin.PUT(SettingRoute, settingsHandler.Put)
	admin.DELETE(SettingRoute, settingsHandler.Delete)

	admin.GET(DashboardRoute, analyticsHandler.Dashboard)

	return r, nil
}

func newAuthRateLimiter(limit float64, burst int) *middlewares.IPRateLimiter {
	if limit <= 0 {
		limit = defaultAuthRateLimit
	}
	if burst <= 0 {
		burst = defaultAuthRateBurst
	}
	return middlewares.NewIPRateLimiter(rate.Limit(limit), burst)
}
