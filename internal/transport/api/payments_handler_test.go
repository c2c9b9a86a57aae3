package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/service"
	"github.com/fsdevblog/storefront/internal/transport/mpesa"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PaymentHandlerTestSuite struct {
	handlerSuite
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func successCallbackBody(checkoutID string) map[string]any {
	return map[string]any{
		"Body": map[string]any{
			"stkCallback": map[string]any{
				"MerchantRequestID": "29115-34620561-1",
				"CheckoutRequestID": checkoutID,
				"ResultCode":        0,
				"ResultDesc":        "The service request is processed successfully.",
				"CallbackMetadata": map[string]any{
					"Item": []map[string]any{
						{"Name": "PhoneNumber", "Value": 254708374149},
						{"Name": "Amount", "Value": 1500},
						{"Name": "TransactionDate", "Value": 20191219102115},
						{"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"},
					},
				},
			},
		},
	}
}

func (s *PaymentHandlerTestSuite) callback(body any) mpesa.CallbackReply {
	res := s.request(http.MethodPost, CallbackRoute, body, "")
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var reply mpesa.CallbackReply
	s.decode(res, &reply)
	return reply
}

func (s *PaymentHandlerTestSuite) TestCallbackSuccess() {
	orderID := int64(12)
	s.mockPaymentService.EXPECT().
		ReconcileCallback(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cb domain.PaymentCallback) (*service.ReconcileResult, error) {
			s.Equal("ws_CO_1", cb.CheckoutRequestID)
			s.Equal(0, cb.ResultCode)
			s.Equal("NLJ7RT61SV", cb.ReceiptNumber)
			s.Equal("254708374149", cb.Phone)
			s.True(decimal.NewFromInt(1500).Equal(cb.Amount))
			return &service.ReconcileResult{
				Payment: &domain.Payment{ID: 3, OrderID: &orderID, Status: domain.PaymentStatusSuccess},
				Order:   &domain.Order{ID: orderID, Status: domain.OrderStatusPaid},
			}, nil
		})

	reply := s.callback(successCallbackBody("ws_CO_1"))
	s.Equal(callbackResultAccepted, reply.ResultCode)
}

func (s *PaymentHandlerTestSuite) TestCallbackRedelivery() {
	s.mockPaymentService.EXPECT().
		ReconcileCallback(gomock.Any(), gomock.Any()).
		Return(&service.ReconcileResult{
			Payment:   &domain.Payment{ID: 3, Status: domain.PaymentStatusSuccess},
			Duplicate: true,
		}, nil)

	reply := s.callback(successCallbackBody("ws_CO_1"))
	s.Equal(callbackResultAccepted, reply.ResultCode)
}

func (s *PaymentHandlerTestSuite) TestCallbackUnknownCheckout() {
	s.mockPaymentService.EXPECT().
		ReconcileCallback(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("reconciling payment: %w", domain.ErrRecordNotFound))

	reply := s.callback(successCallbackBody("ws_CO_unknown"))
	s.Equal(callbackResultRejected, reply.ResultCode)
	s.Equal("Payment not found", reply.ResultDesc)
}

func (s *PaymentHandlerTestSuite) TestCallbackMalformed() {
	s.mockPaymentService.EXPECT().ReconcileCallback(gomock.Any(), gomock.Any()).Times(0)

	reply := s.callback("garbage")
	s.Equal(callbackResultRejected, reply.ResultCode)

	// без CheckoutRequestID
	reply = s.callback(map[string]any{"Body": map[string]any{"stkCallback": map[string]any{"ResultCode": 0}}})
	s.Equal(callbackResultRejected, reply.ResultCode)
}

func (s *PaymentHandlerTestSuite) TestSTKPush() {
	orderID := int64(12)
	s.mockOrderService.EXPECT().
		Get(gomock.Any(), orderID).
		Return(&domain.Order{ID: orderID, CustomerID: customerID}, nil)
	s.mockPaymentService.EXPECT().
		InitiateSTKPush(gomock.Any(), gomock.Any()).
		DoAndReturn(func(
			_ context.Context,
			args service.InitiatePaymentArgs,
		) (*domain.Payment, *domain.STKPushResult, error) {
			s.Equal("0712345678", args.Phone)
			s.True(decimal.NewFromInt(100).Equal(args.Amount))
			s.Require().NotNil(args.OrderID)
			s.Equal(orderID, *args.OrderID)
			return &domain.Payment{ID: 44}, &domain.STKPushResult{
				MerchantRequestID: "m-1",
				CheckoutRequestID: "ws_CO_1",
				ResponseCode:      "0",
			}, nil
		})

	res := s.request(http.MethodPost, STKPushRoute,
		map[string]any{"phone": "0712345678", "amount": 100, "order_id": orderID}, s.customerToken)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body STKPushResponse
	s.decode(res, &body)
	s.Equal(int64(44), body.PaymentID)
	s.Equal("ws_CO_1", body.CheckoutRequestID)
}

func (s *PaymentHandlerTestSuite) TestSTKPushErrors() {
	s.mockPaymentService.EXPECT().
		InitiateSTKPush(gomock.Any(), gomock.Any()).
		Return(nil, nil, domain.NewValidationError("phone", "must be a valid Kenyan mobile number"))
	s.mockPaymentService.EXPECT().
		InitiateSTKPush(gomock.Any(), gomock.Any()).
		Return(nil, nil, domain.NewGatewayError(errors.New("connection refused")))

	res := s.request(http.MethodPost, STKPushRoute, map[string]any{"phone": "123", "amount": 100}, s.customerToken)
	s.Equal(http.StatusBadRequest, res.StatusCode)

	res = s.request(http.MethodPost, STKPushRoute,
		map[string]any{"phone": "0712345678", "amount": 100}, s.customerToken)
	s.Require().Equal(http.StatusBadGateway, res.StatusCode)
	var body map[string]string
	s.decode(res, &body)
	s.NotContains(body["error"], "connection refused")
}

func (s *PaymentHandlerTestSuite) TestSTKPushForeignOrder() {
	s.mockOrderService.EXPECT().
		Get(gomock.Any(), int64(12)).
		Return(&domain.Order{ID: 12, CustomerID: otherCustomerID}, nil)
	s.mockPaymentService.EXPECT().InitiateSTKPush(gomock.Any(), gomock.Any()).Times(0)

	res := s.request(http.MethodPost, STKPushRoute,
		map[string]any{"phone": "0712345678", "amount": 100, "order_id": 12}, s.customerToken)
	s.Equal(http.StatusNotFound, res.StatusCode)
}

func (s *PaymentHandlerTestSuite) TestIndexAdminOnly() {
	s.mockPaymentService.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.Payment{{ID: 1}}, nil)

	res := s.request(http.MethodGet, PaymentsRoute, nil, s.customerToken)
	s.Equal(http.StatusForbidden, res.StatusCode)

	res = s.request(http.MethodGet, PaymentsRoute, nil, s.adminToken)
	s.Equal(http.StatusOK, res.StatusCode)
}
