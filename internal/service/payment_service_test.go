package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/internal/service/mocks"
	uowmocks "github.com/fsdevblog/storefront/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	repos          *mockRepos
	mockGateway    *mocks.MockPaymentGateway
	paymentService *PaymentService
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (s *PaymentServiceTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.repos = newMockRepos(ctrl)
	s.mockGateway = mocks.NewMockPaymentGateway(ctrl)

	mockUOW := uowmocks.NewMockUOW(ctrl)
	expectUOW(mockUOW, uowmocks.NewMockTX(ctrl), s.repos)

	paymentService, err := NewPaymentService(mockUOW, PaymentServiceArgs{
		Gateway:       s.mockGateway,
		Notifications: Notifications{Email: true, Webhook: true, Kafka: true},
	})
	s.Require().NoError(err)
	s.paymentService = paymentService
}

func (s *PaymentServiceTestSuite) TestInitiateValidatesBeforeGateway() {
	// Шлюз не должен вызываться ни разу: у мока нет ожиданий.
	cases := []InitiatePaymentArgs{
		{Phone: "", Amount: decimal.NewFromInt(100)},
		{Phone: "12345", Amount: decimal.NewFromInt(100)},
		{Phone: "0712345678", Amount: decimal.Zero},
		{Phone: "0712345678", Amount: decimal.NewFromInt(-5)},
	}
	for _, args := range cases {
		_, _, err := s.paymentService.InitiateSTKPush(s.T().Context(), args)
		s.Require().ErrorIs(err, domain.ErrValidation)
	}
}

func (s *PaymentServiceTestSuite) TestInitiate() {
	orderID := int64(7)
	s.repos.order.EXPECT().FindByID(gomock.Any(), orderID).Return(&domain.Order{ID: orderID}, nil)
	s.mockGateway.EXPECT().
		STKPush(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.STKPushRequest) (*domain.STKPushResult, error) {
			s.Equal("254712345678", req.Phone)
			s.Equal("Order-7", req.AccountReference)
			return &domain.STKPushResult{
				MerchantRequestID: "m-1",
				CheckoutRequestID: "ws_CO_1",
				ResponseCode:      "0",
			}, nil
		})
	s.repos.payment.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreatePayment) (*domain.Payment, error) {
			s.Equal("ws_CO_1", args.CheckoutRequestID)
			s.Equal("254712345678", args.Phone)
			s.Equal(&orderID, args.OrderID)
			return &domain.Payment{ID: 1, CheckoutRequestID: args.CheckoutRequestID, Status: domain.PaymentStatusPending}, nil
		})

	payment, result, err := s.paymentService.InitiateSTKPush(s.T().Context(), InitiatePaymentArgs{
		Phone:   "0712345678",
		Amount:  decimal.NewFromInt(1500),
		OrderID: &orderID,
	})
	s.Require().NoError(err)
	s.Equal(int64(1), payment.ID)
	s.Equal("ws_CO_1", result.CheckoutRequestID)
}

func (s *PaymentServiceTestSuite) TestInitiateGatewayFailures() {
	s.Run("transport error", func() {
		s.mockGateway.EXPECT().STKPush(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		_, _, err := s.paymentService.InitiateSTKPush(s.T().Context(), InitiatePaymentArgs{
			Phone: "0712345678", Amount: decimal.NewFromInt(10),
		})
		var gwErr *domain.GatewayError
		s.Require().ErrorAs(err, &gwErr)
	})

	s.Run("missing checkout id is not stored", func() {
		s.mockGateway.EXPECT().STKPush(gomock.Any(), gomock.Any()).
			Return(&domain.STKPushResult{ResponseCode: "0"}, nil)

		_, _, err := s.paymentService.InitiateSTKPush(s.T().Context(), InitiatePaymentArgs{
			Phone: "0712345678", Amount: decimal.NewFromInt(10),
		})
		var gwErr *domain.GatewayError
		s.Require().ErrorAs(err, &gwErr)
	})
}

func (s *PaymentServiceTestSuite) TestReconcileSuccess() {
	orderID := int64(5)
	pending := &domain.Payment{ID: 1, OrderID: &orderID, CheckoutRequestID: "ws_CO_1", Status: domain.PaymentStatusPending}
	code := 0

	s.repos.payment.EXPECT().FindByCheckoutIDForUpdate(gomock.Any(), "ws_CO_1").Return(pending, nil)
	s.repos.payment.EXPECT().
		UpdateResult(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, res repoargs.PaymentResult) (*domain.Payment, error) {
			s.Equal(domain.PaymentStatusSuccess, res.Status)
			s.Equal("QWE123", res.ReceiptNumber)
			return &domain.Payment{
				ID:                1,
				OrderID:           &orderID,
				CheckoutRequestID: "ws_CO_1",
				Status:            domain.PaymentStatusSuccess,
				Amount:            res.Amount,
				ReceiptNumber:     res.ReceiptNumber,
				ResultCode:        &code,
			}, nil
		})
	s.repos.order.EXPECT().MarkPaid(gomock.Any(), orderID).
		Return(&domain.Order{ID: orderID, CustomerID: 9, Status: domain.OrderStatusPaid}, nil)
	s.repos.customer.EXPECT().FindByID(gomock.Any(), int64(9)).
		Return(&domain.Customer{ID: 9, Name: "Jane", Email: "jane@example.com"}, nil)
	s.repos.outbox.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, events []repoargs.EnqueueEvent) error {
			kinds := make([]domain.OutboxKindType, len(events))
			for i, e := range events {
				kinds[i] = e.Kind
			}
			s.ElementsMatch(
				[]domain.OutboxKindType{domain.OutboxKindKafka, domain.OutboxKindWebhook, domain.OutboxKindEmail},
				kinds,
			)
			var event domain.PaymentEvent
			s.Require().NoError(json.Unmarshal(events[0].Payload, &event))
			s.Equal(PaymentEventSuccess, event.Type)
			return nil
		})

	result, err := s.paymentService.ReconcileCallback(s.T().Context(), domain.PaymentCallback{
		CheckoutRequestID: "ws_CO_1",
		ResultCode:        0,
		ResultDesc:        "The service request is processed successfully.",
		Amount:            decimal.NewFromInt(1500),
		ReceiptNumber:     "QWE123",
		Phone:             "254712345678",
	})
	s.Require().NoError(err)
	s.False(result.Duplicate)
	s.Equal(domain.PaymentStatusSuccess, result.Payment.Status)
	s.Require().NotNil(result.Order)
	s.Equal(domain.OrderStatusPaid, result.Order.Status)
}

// TestReconcileKeepsShippedOrder второй успешный платеж по уже отправленному заказу не возвращает его в paid.
func (s *PaymentServiceTestSuite) TestReconcileKeepsShippedOrder() {
	orderID := int64(6)
	pending := &domain.Payment{ID: 3, OrderID: &orderID, CheckoutRequestID: "ws_CO_3", Status: domain.PaymentStatusPending}

	s.repos.payment.EXPECT().FindByCheckoutIDForUpdate(gomock.Any(), "ws_CO_3").Return(pending, nil)
	s.repos.payment.EXPECT().
		UpdateResult(gomock.Any(), int64(3), gomock.Any()).
		Return(&domain.Payment{ID: 3, OrderID: &orderID, Status: domain.PaymentStatusSuccess}, nil)
	s.repos.order.EXPECT().MarkPaid(gomock.Any(), orderID).
		Return(&domain.Order{ID: orderID, CustomerID: 9, Status: domain.OrderStatusShipped}, nil)
	s.repos.customer.EXPECT().FindByID(gomock.Any(), int64(9)).
		Return(&domain.Customer{ID: 9, Name: "Jane", Email: "jane@example.com"}, nil)
	s.repos.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.paymentService.ReconcileCallback(s.T().Context(), domain.PaymentCallback{
		CheckoutRequestID: "ws_CO_3",
		ResultCode:        0,
		Amount:            decimal.NewFromInt(700),
		ReceiptNumber:     "RTY456",
	})
	s.Require().NoError(err)
	s.Require().NotNil(result.Order)
	s.Equal(domain.OrderStatusShipped, result.Order.Status)
}

func (s *PaymentServiceTestSuite) TestReconcileFailureLeavesOrder() {
	orderID := int64(5)
	pending := &domain.Payment{ID: 2, OrderID: &orderID, CheckoutRequestID: "ws_CO_2", Status: domain.PaymentStatusPending}

	s.repos.payment.EXPECT().FindByCheckoutIDForUpdate(gomock.Any(), "ws_CO_2").Return(pending, nil)
	s.repos.payment.EXPECT().
		UpdateResult(gomock.Any(), int64(2), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, res repoargs.PaymentResult) (*domain.Payment, error) {
			s.Equal(domain.PaymentStatusFailed, res.Status)
			return &domain.Payment{ID: 2, OrderID: &orderID, Status: domain.PaymentStatusFailed}, nil
		})
	// Только событие в кафку, заказ не трогается.
	s.repos.outbox.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, events []repoargs.EnqueueEvent) error {
			s.Require().Len(events, 1)
			s.Equal(domain.OutboxKindKafka, events[0].Kind)
			return nil
		})

	result, err := s.paymentService.ReconcileCallback(s.T().Context(), domain.PaymentCallback{
		CheckoutRequestID: "ws_CO_2",
		ResultCode:        1032,
		ResultDesc:        "Request cancelled by user",
	})
	s.Require().NoError(err)
	s.Nil(result.Order)
	s.Equal(domain.PaymentStatusFailed, result.Payment.Status)
}

func (s *PaymentServiceTestSuite) TestReconcileRedeliveryIsNoop() {
	orderID := int64(5)
	processed := &domain.Payment{ID: 1, OrderID: &orderID, CheckoutRequestID: "ws_CO_1", Status: domain.PaymentStatusSuccess}

	// Ни UpdateResult, ни MarkPaid, ни Enqueue не ожидаются.
	s.repos.payment.EXPECT().FindByCheckoutIDForUpdate(gomock.Any(), "ws_CO_1").Return(processed, nil)

	result, err := s.paymentService.ReconcileCallback(s.T().Context(), domain.PaymentCallback{
		CheckoutRequestID: "ws_CO_1",
		ResultCode:        0,
	})
	s.Require().NoError(err)
	s.True(result.Duplicate)
}

func (s *PaymentServiceTestSuite) TestReconcileUnknownCheckout() {
	s.repos.payment.EXPECT().FindByCheckoutIDForUpdate(gomock.Any(), "missing").
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.paymentService.ReconcileCallback(s.T().Context(), domain.PaymentCallback{
		CheckoutRequestID: "missing",
	})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}
