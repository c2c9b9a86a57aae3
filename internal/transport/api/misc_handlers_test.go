package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MiscHandlersTestSuite struct {
	handlerSuite
}

func TestMiscHandlersSuite(t *testing.T) {
	suite.Run(t, new(MiscHandlersTestSuite))
}

func (s *MiscHandlersTestSuite) TestHealth() {
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    HealthRoute,
	})
	s.Require().NoError(err)
	s.Equal(http.StatusOK, res.StatusCode)
	var body map[string]string
	s.decode(res, &body)
	s.Equal("ok", body["status"])
}

func (s *MiscHandlersTestSuite) TestCreateRepair() {
	name := gofakeit.Name()
	email := gofakeit.Email()

	s.mockRepairService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateRepair) (*domain.RepairRequest, error) {
			s.Nil(args.CustomerID)
			s.Equal(name, args.Name)
			return &domain.RepairRequest{ID: 1, Name: args.Name, Status: domain.RepairStatusPending}, nil
		})
	s.mockRepairService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateRepair) (*domain.RepairRequest, error) {
			s.Require().NotNil(args.CustomerID)
			s.Equal(customerID, *args.CustomerID)
			return &domain.RepairRequest{ID: 2, CustomerID: args.CustomerID, Status: domain.RepairStatusPending}, nil
		})

	payload := map[string]any{
		"name":   name,
		"phone":  "0712345678",
		"email":  email,
		"device": "Samsung A54",
		"issue":  "Cracked screen",
	}

	// анонимная заявка
	res := s.request(http.MethodPost, RepairsRoute, payload, "")
	s.Require().Equal(http.StatusCreated, res.StatusCode)
	var body struct {
		Repair RepairResponse `json:"repair"`
	}
	s.decode(res, &body)
	s.Equal(domain.RepairStatusPending, body.Repair.Status)

	// заявка авторизованного покупателя
	res = s.request(http.MethodPost, RepairsRoute, payload, s.customerToken)
	s.Equal(http.StatusCreated, res.StatusCode)

	res = s.request(http.MethodPost, RepairsRoute, map[string]any{"name": name}, "")
	s.Equal(http.StatusBadRequest, res.StatusCode)
}

func (s *MiscHandlersTestSuite) TestUpdateRepair() {
	s.mockRepairService.EXPECT().
		Update(gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, args repoargs.UpdateRepair) (*domain.RepairRequest, error) {
			s.Require().NotNil(args.Status)
			s.Equal(domain.RepairStatusInProgress, *args.Status)
			s.Require().NotNil(args.EstimatedCost)
			s.True(decimal.NewFromInt(2500).Equal(*args.EstimatedCost))
			return &domain.RepairRequest{ID: 3, Status: *args.Status, EstimatedCost: args.EstimatedCost}, nil
		})

	res := s.request(http.MethodPut, "/repairs/3",
		map[string]any{"status": "in_progress", "estimated_cost": 2500}, s.adminToken)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	res = s.request(http.MethodPut, "/repairs/3", map[string]any{"status": "lost"}, s.adminToken)
	s.Equal(http.StatusBadRequest, res.StatusCode)

	res = s.request(http.MethodPut, "/repairs/3", map[string]any{"status": "completed"}, s.customerToken)
	s.Equal(http.StatusForbidden, res.StatusCode)
}

func (s *MiscHandlersTestSuite) TestPutSetting() {
	s.mockSettingService.EXPECT().
		Put(gomock.Any(), "shipping", gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, value json.RawMessage) (*domain.Setting, error) {
			s.JSONEq(`{"flat_rate":300}`, string(value))
			return &domain.Setting{Key: key, Value: value, UpdatedAt: time.Now()}, nil
		})

	res := s.request(http.MethodPut, "/settings/shipping",
		map[string]any{"value": map[string]any{"flat_rate": 300}}, s.adminToken)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var body struct {
		Setting SettingResponse `json:"setting"`
	}
	s.decode(res, &body)
	s.Equal("shipping", body.Setting.Key)
	s.JSONEq(`{"flat_rate":300}`, string(body.Setting.Value))

	res = s.request(http.MethodPut, "/settings/shipping", map[string]any{}, s.adminToken)
	s.Equal(http.StatusBadRequest, res.StatusCode)
}

func (s *MiscHandlersTestSuite) TestDashboard() {
	day := time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)
	s.mockAnalyticsService.EXPECT().
		Dashboard(gomock.Any(), 7).
		Return(&domain.Dashboard{
			TotalRevenue: decimal.RequireFromString("1500.50"),
			PaidOrders:   3,
			DailySales:   []domain.DailySales{{Day: day, Orders: 3, Revenue: decimal.RequireFromString("1500.50")}},
		}, nil)

	res := s.request(http.MethodGet, DashboardRoute+"?days=7", nil, s.adminToken)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var body DashboardResponse
	s.decode(res, &body)
	s.InDelta(1500.5, body.TotalRevenue, 0.001)
	s.Require().Len(body.DailySales, 1)
	s.Equal("2024-05-02", body.DailySales[0].Date)
	s.NotNil(body.OrdersByStatus)

	res = s.request(http.MethodGet, DashboardRoute+"?days=1000", nil, s.adminToken)
	s.Equal(http.StatusBadRequest, res.StatusCode)
}
