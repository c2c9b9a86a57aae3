package service

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	uowmocks "github.com/fsdevblog/storefront/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	repos        *mockRepos
	orderService *OrderService
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.repos = newMockRepos(ctrl)

	mockUOW := uowmocks.NewMockUOW(ctrl)
	expectUOW(mockUOW, uowmocks.NewMockTX(ctrl), s.repos)

	orderService, err := NewOrderService(mockUOW)
	s.Require().NoError(err)
	s.orderService = orderService
}

func (s *OrderServiceTestSuite) TestCreate() {
	s.Run("total computed from items", func() {
		s.repos.order.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
				s.True(decimal.RequireFromString("2500").Equal(args.Total), "total %s", args.Total)
				s.Equal(domain.PaymentMethodMpesa, args.PaymentMethod)
				s.Len(args.Items, 2)
				return &domain.Order{ID: 10, CustomerID: args.CustomerID, Total: args.Total}, nil
			})

		order, err := s.orderService.Create(s.T().Context(), CreateOrderArgs{
			CustomerID: 3,
			Items: []OrderItemArgs{
				{ProductID: 1, Quantity: 2, Price: decimal.NewFromInt(1000)},
				{ProductID: 2, Quantity: 1, Price: decimal.NewFromInt(500)},
			},
		})
		s.Require().NoError(err)
		s.Equal(int64(10), order.ID)
	})

	s.Run("explicit total is kept", func() {
		total := decimal.NewFromInt(999)
		s.repos.order.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
				s.True(total.Equal(args.Total))
				s.Equal(domain.PaymentMethodCashOnDelivery, args.PaymentMethod)
				return &domain.Order{ID: 11, Total: args.Total}, nil
			})

		_, err := s.orderService.Create(s.T().Context(), CreateOrderArgs{
			CustomerID:    3,
			Items:         []OrderItemArgs{{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(1000)}},
			Total:         &total,
			PaymentMethod: domain.PaymentMethodCashOnDelivery,
		})
		s.Require().NoError(err)
	})

	invalid := []struct {
		name string
		args CreateOrderArgs
	}{
		{name: "no customer", args: CreateOrderArgs{Items: []OrderItemArgs{{ProductID: 1, Quantity: 1}}}},
		{name: "no items", args: CreateOrderArgs{CustomerID: 1}},
		{name: "zero quantity", args: CreateOrderArgs{CustomerID: 1, Items: []OrderItemArgs{{ProductID: 1}}}},
		{
			name: "unknown payment method",
			args: CreateOrderArgs{
				CustomerID:    1,
				Items:         []OrderItemArgs{{ProductID: 1, Quantity: 1}},
				PaymentMethod: "bitcoin",
			},
		},
	}
	for _, tt := range invalid {
		s.Run(tt.name, func() {
			_, err := s.orderService.Create(s.T().Context(), tt.args)
			s.Require().ErrorIs(err, domain.ErrValidation)
		})
	}
}

func (s *OrderServiceTestSuite) TestCancel() {
	s.Run("pending order is cancelled", func() {
		s.repos.order.EXPECT().CancelUnlessCompleted(gomock.Any(), int64(1)).
			Return(&domain.Order{ID: 1, Status: domain.OrderStatusCancelled}, nil)

		order, err := s.orderService.Cancel(s.T().Context(), 1)
		s.Require().NoError(err)
		s.Equal(domain.OrderStatusCancelled, order.Status)
	})

	s.Run("completed order is rejected", func() {
		s.repos.order.EXPECT().CancelUnlessCompleted(gomock.Any(), int64(2)).
			Return(nil, domain.ErrRecordNotFound)
		s.repos.order.EXPECT().FindByID(gomock.Any(), int64(2)).
			Return(&domain.Order{ID: 2, Status: domain.OrderStatusCompleted, UpdatedAt: time.Now()}, nil)

		_, err := s.orderService.Cancel(s.T().Context(), 2)
		s.Require().ErrorIs(err, domain.ErrOrderCompleted)
	})

	s.Run("missing order", func() {
		s.repos.order.EXPECT().CancelUnlessCompleted(gomock.Any(), int64(3)).
			Return(nil, domain.ErrRecordNotFound)
		s.repos.order.EXPECT().FindByID(gomock.Any(), int64(3)).
			Return(nil, domain.ErrRecordNotFound)

		_, err := s.orderService.Cancel(s.T().Context(), 3)
		s.Require().ErrorIs(err, domain.ErrRecordNotFound)
	})
}

func (s *OrderServiceTestSuite) TestUpdateRejectsUnknownStatus() {
	status := domain.OrderStatusType("lost")
	_, err := s.orderService.Update(s.T().Context(), 1, repoargs.UpdateOrder{Status: &status})
	s.Require().ErrorIs(err, domain.ErrValidation)
}
