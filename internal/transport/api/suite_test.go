package api

import (
	"io"
	"net/http"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/logger"
	"github.com/fsdevblog/storefront/internal/transport/api/mocks"
	"github.com/fsdevblog/storefront/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

const (
	customerID      int64 = 1
	otherCustomerID int64 = 2
	adminID         int64 = 100
)

// handlerSuite общая часть тестов хендлеров: роутер со всеми сервисами, замененными моками.
type handlerSuite struct {
	suite.Suite
	router *gin.Engine

	mockCustomerService  *mocks.MockCustomerServicer
	mockOrderService     *mocks.MockOrderServicer
	mockPaymentService   *mocks.MockPaymentServicer
	mockCatalogService   *mocks.MockCatalogServicer
	mockRepairService    *mocks.MockRepairServicer
	mockSettingService   *mocks.MockSettingServicer
	mockAnalyticsService *mocks.MockAnalyticsServicer

	jwtSecret     []byte
	customerToken string
	adminToken    string
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	mockCtrl := gomock.NewController(s.T())

	s.mockCustomerService = mocks.NewMockCustomerServicer(mockCtrl)
	s.mockOrderService = mocks.NewMockOrderServicer(mockCtrl)
	s.mockPaymentService = mocks.NewMockPaymentServicer(mockCtrl)
	s.mockCatalogService = mocks.NewMockCatalogServicer(mockCtrl)
	s.mockRepairService = mocks.NewMockRepairServicer(mockCtrl)
	s.mockSettingService = mocks.NewMockSettingServicer(mockCtrl)
	s.mockAnalyticsService = mocks.NewMockAnalyticsServicer(mockCtrl)

	s.jwtSecret = []byte("super secret key")
	s.customerToken = testutils.MustAccessToken(customerID, domain.CustomerRoleCustomer, s.jwtSecret)
	s.adminToken = testutils.MustAccessToken(adminID, domain.CustomerRoleAdmin, s.jwtSecret)

	router, err := New(RouterArgs{
		Logger:           logger.New(io.Discard),
		CustomerService:  s.mockCustomerService,
		OrderService:     s.mockOrderService,
		PaymentService:   s.mockPaymentService,
		CatalogService:   s.mockCatalogService,
		RepairService:    s.mockRepairService,
		SettingService:   s.mockSettingService,
		AnalyticsService: s.mockAnalyticsService,
		JWTSecretKey:     s.jwtSecret,
		AuthRateLimit:    1000,
		AuthRateBurst:    1000,
	})
	s.Require().NoError(err)
	s.router = router
}

// request выполняет запрос. token может быть пустым.
func (s *handlerSuite) request(method, url string, body any, token string) *http.Response {
	var opts []func(*testutils.RequestOptions)
	if token != "" {
		opts = append(opts, testutils.WithBearer(token))
	}
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    RouteGroup + url,
		Body:   testutils.JSONBody(body),
	}, opts...)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = res.Body.Close() })
	return res
}

func (s *handlerSuite) decode(res *http.Response, v any) {
	s.Require().NoError(testutils.DecodeJSON(res, v))
}
