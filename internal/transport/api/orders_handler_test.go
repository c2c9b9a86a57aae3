package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderHandlerTestSuite struct {
	handlerSuite
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func orderURL(id int64) string {
	return OrdersRoute + "/" + strconv.FormatInt(id, 10)
}

func (s *OrderHandlerTestSuite) TestCreateForcesOwnCustomer() {
	s.mockOrderService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.CreateOrderArgs) (*domain.Order, error) {
			s.Equal(customerID, args.CustomerID)
			s.Require().Len(args.Items, 1)
			s.True(decimal.RequireFromString("250.50").Equal(args.Items[0].Price))
			s.Nil(args.Total)
			return &domain.Order{
				ID:         10,
				CustomerID: customerID,
				Status:     domain.OrderStatusPending,
				Total:      decimal.RequireFromString("501"),
				CreatedAt:  time.Now(),
			}, nil
		})

	res := s.request(http.MethodPost, OrdersRoute, map[string]any{
		"customer_id": otherCustomerID,
		"products":    []map[string]any{{"product_id": 3, "quantity": 2, "price": 250.50}},
	}, s.customerToken)
	s.Require().Equal(http.StatusCreated, res.StatusCode)

	var body struct {
		Order OrderResponse `json:"order"`
	}
	s.decode(res, &body)
	s.Equal(int64(10), body.Order.ID)
	s.InDelta(501.0, body.Order.Total, 0.001)
}

func (s *OrderHandlerTestSuite) TestCreateValidation() {
	s.mockOrderService.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	cases := []struct {
		name string
		body map[string]any
	}{
		{name: "no products", body: map[string]any{"products": []any{}}},
		{name: "zero quantity", body: map[string]any{
			"products": []map[string]any{{"product_id": 3, "quantity": 0, "price": 10}},
		}},
		{name: "unknown payment method", body: map[string]any{
			"products":       []map[string]any{{"product_id": 3, "quantity": 1, "price": 10}},
			"payment_method": "bitcoin",
		}},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.request(http.MethodPost, OrdersRoute, t.body, s.customerToken)
			s.Equal(http.StatusBadRequest, res.StatusCode)
		})
	}

	res := s.request(http.MethodPost, OrdersRoute, map[string]any{}, "")
	s.Equal(http.StatusUnauthorized, res.StatusCode)
}

// TestCreateUnknownProduct нарушение внешнего ключа в хранилище отдается как 400 без подробностей.
func (s *OrderHandlerTestSuite) TestCreateUnknownProduct() {
	s.mockOrderService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf(
			"[repository/creating order items] %w: ERROR: insert or update on table \"order_items\" violates foreign key constraint (SQLSTATE 23503)",
			domain.ErrValidation,
		))

	res := s.request(http.MethodPost, OrdersRoute, map[string]any{
		"products": []map[string]any{{"product_id": 999, "quantity": 1, "price": 10}},
	}, s.customerToken)
	s.Require().Equal(http.StatusBadRequest, res.StatusCode)

	var body map[string]string
	s.decode(res, &body)
	s.Equal("bad request", body["error"])
}

func (s *OrderHandlerTestSuite) TestIndexScopesCustomer() {
	s.mockOrderService.EXPECT().
		List(gomock.Any(), repoargs.OrderFilter{
			Pagination: repoargs.Pagination{Limit: maxPageLimit},
			CustomerID: customerID,
		}).
		Return([]domain.Order{{ID: 1, CustomerID: customerID}}, nil)
	s.mockOrderService.EXPECT().
		List(gomock.Any(), repoargs.OrderFilter{
			Pagination: repoargs.Pagination{Limit: 10, Offset: 20},
			CustomerID: otherCustomerID,
			Status:     domain.OrderStatusPaid,
		}).
		Return([]domain.Order{}, nil)

	res := s.request(http.MethodGet, OrdersRoute+"?customer_id=2", nil, s.customerToken)
	s.Equal(http.StatusOK, res.StatusCode)

	res = s.request(http.MethodGet, OrdersRoute+"?customer_id=2&status=paid&limit=10&offset=20", nil, s.adminToken)
	s.Equal(http.StatusOK, res.StatusCode)

	res = s.request(http.MethodGet, OrdersRoute+"?status=unknown", nil, s.adminToken)
	s.Equal(http.StatusBadRequest, res.StatusCode)

	res = s.request(http.MethodGet, OrdersRoute+"?offset=2147483648", nil, s.adminToken)
	s.Equal(http.StatusBadRequest, res.StatusCode)
}

func (s *OrderHandlerTestSuite) TestShowForeignOrder() {
	s.mockOrderService.EXPECT().
		Get(gomock.Any(), int64(5)).
		Return(&domain.Order{ID: 5, CustomerID: otherCustomerID}, nil).
		Times(2)

	res := s.request(http.MethodGet, orderURL(5), nil, s.customerToken)
	s.Equal(http.StatusNotFound, res.StatusCode)

	res = s.request(http.MethodGet, orderURL(5), nil, s.adminToken)
	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *OrderHandlerTestSuite) TestCancel() {
	const (
		pendingID   int64 = 1
		completedID int64 = 2
		missingID   int64 = 3
	)
	s.mockOrderService.EXPECT().
		Get(gomock.Any(), pendingID).
		Return(&domain.Order{ID: pendingID, CustomerID: customerID, Status: domain.OrderStatusPending}, nil)
	s.mockOrderService.EXPECT().
		Cancel(gomock.Any(), pendingID).
		Return(&domain.Order{ID: pendingID, CustomerID: customerID, Status: domain.OrderStatusCancelled}, nil)

	s.mockOrderService.EXPECT().
		Get(gomock.Any(), completedID).
		Return(&domain.Order{ID: completedID, CustomerID: customerID, Status: domain.OrderStatusCompleted}, nil)
	s.mockOrderService.EXPECT().
		Cancel(gomock.Any(), completedID).
		Return(nil, domain.ErrOrderCompleted)

	s.mockOrderService.EXPECT().
		Get(gomock.Any(), missingID).
		Return(nil, fmt.Errorf("finding order by id 3: %w", domain.ErrRecordNotFound))

	cases := []struct {
		name       string
		id         int64
		wantStatus int
	}{
		{name: "cancelled", id: pendingID, wantStatus: http.StatusOK},
		{name: "completed", id: completedID, wantStatus: http.StatusBadRequest},
		{name: "missing", id: missingID, wantStatus: http.StatusNotFound},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.request(http.MethodPost, orderURL(t.id)+"/cancel", nil, s.customerToken)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *OrderHandlerTestSuite) TestCancelCompletedMessage() {
	s.mockOrderService.EXPECT().
		Get(gomock.Any(), int64(9)).
		Return(&domain.Order{ID: 9, CustomerID: customerID, Status: domain.OrderStatusCompleted}, nil)
	s.mockOrderService.EXPECT().
		Cancel(gomock.Any(), int64(9)).
		Return(nil, domain.ErrOrderCompleted)

	res := s.request(http.MethodPost, orderURL(9)+"/cancel", nil, s.customerToken)
	s.Require().Equal(http.StatusBadRequest, res.StatusCode)

	var body map[string]string
	s.decode(res, &body)
	s.Equal(domain.ErrOrderCompleted.Error(), body["error"])
}

func (s *OrderHandlerTestSuite) TestUpdate() {
	paid := domain.OrderStatusPaid
	s.mockOrderService.EXPECT().
		Update(gomock.Any(), int64(4), repoargs.UpdateOrder{Status: &paid}).
		Return(&domain.Order{ID: 4, Status: domain.OrderStatusPaid}, nil)

	res := s.request(http.MethodPut, orderURL(4), map[string]any{"status": "paid"}, s.adminToken)
	s.Equal(http.StatusOK, res.StatusCode)

	res = s.request(http.MethodPut, orderURL(4), map[string]any{"status": "lost"}, s.adminToken)
	s.Equal(http.StatusBadRequest, res.StatusCode)

	res = s.request(http.MethodPut, orderURL(4), map[string]any{"status": "paid"}, s.customerToken)
	s.Equal(http.StatusForbidden, res.StatusCode)
}

func (s *OrderHandlerTestSuite) TestDelete() {
	s.mockOrderService.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)
	s.mockOrderService.EXPECT().Delete(gomock.Any(), int64(5)).Return(domain.ErrRecordNotFound)

	res := s.request(http.MethodDelete, orderURL(4), nil, s.adminToken)
	s.Equal(http.StatusNoContent, res.StatusCode)

	res = s.request(http.MethodDelete, orderURL(5), nil, s.adminToken)
	s.Equal(http.StatusNotFound, res.StatusCode)

	res = s.request(http.MethodDelete, OrdersRoute+"/abc", nil, s.adminToken)
	s.Equal(http.StatusBadRequest, res.StatusCode)
}
