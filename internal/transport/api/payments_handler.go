package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/internal/service"
	"github.com/fsdevblog/storefront/internal/transport/mpesa"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	callbackResultAccepted = 0
	callbackResultRejected = 1
)

type PaymentsHandler struct {
	paymentSvs PaymentServicer
	orderSvs   OrderServicer
	l          *logrus.Entry
}

func NewPaymentsHandler(paymentSvs PaymentServicer, orderSvs OrderServicer, l *logrus.Logger) *PaymentsHandler {
	return &PaymentsHandler{
		paymentSvs: paymentSvs,
		orderSvs:   orderSvs,
		l: l.WithFields(logrus.Fields{
			"component": "api",
			"module":    "payments",
		}),
	}
}

type STKPushParams struct {
	Phone   string          `binding:"required" json:"phone"`
	Amount  decimal.Decimal `json:"amount"`
	OrderID *int64          `binding:"omitempty,gt=0" json:"order_id"`
}

type STKPushResponse struct {
	domain.STKPushResult
	PaymentID int64 `json:"payment_id"`
}

// STKPush POST RouteGroup + STKPushRoute. Отправляет покупателю запрос на оплату. Покупатель может
// оплатить только свой заказ.
func (p *PaymentsHandler) STKPush(c *gin.Context) {
	var params STKPushParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if params.OrderID != nil && !isAdmin(c) {
		order, orderErr := p.orderSvs.Get(reqCtx, *params.OrderID)
		if orderErr != nil {
			abortWithServiceError(c, orderErr)
			return
		}
		if order.CustomerID != getCustomerIDFromContext(c) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
	}

	payment, result, err := p.paymentSvs.InitiateSTKPush(reqCtx, service.InitiatePaymentArgs{
		Phone:   params.Phone,
		Amount:  params.Amount,
		OrderID: params.OrderID,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, STKPushResponse{STKPushResult: *result, PaymentID: payment.ID})
}

// Callback POST RouteGroup + CallbackRoute. Колбэк шлюза. Всегда отвечает 200: шлюз не повторяет доставку
// по нашим ошибкам, результат сообщается через ResultCode.
func (p *PaymentsHandler) Callback(c *gin.Context) {
	var envelope mpesa.CallbackEnvelope
	if bindErr := c.ShouldBindJSON(&envelope); bindErr != nil {
		p.l.WithError(bindErr).Error("decode callback")
		c.JSON(http.StatusOK, mpesa.CallbackReply{ResultCode: callbackResultRejected, ResultDesc: "Malformed callback"})
		return
	}

	l := p.l.WithFields(logrus.Fields{
		"checkoutRequestID": envelope.Body.StkCallback.CheckoutRequestID,
		"merchantRequestID": envelope.Body.StkCallback.MerchantRequestID,
	})
	if envelope.Body.StkCallback.ResultCode != nil {
		l = l.WithField("resultCode", *envelope.Body.StkCallback.ResultCode)
	}

	callback, convErr := envelope.ToDomain()
	if convErr != nil {
		l.WithError(convErr).Error("invalid callback")
		c.JSON(http.StatusOK, mpesa.CallbackReply{ResultCode: callbackResultRejected, ResultDesc: "Invalid callback"})
		return
	}

	// Обработка колбэка не должна прерываться, если шлюз закрыл соединение.
	reqCtx, cancel := context.WithTimeout(context.WithoutCancel(c), DefaultServiceTimeout)
	defer cancel()

	result, err := p.paymentSvs.ReconcileCallback(reqCtx, callback)
	if err != nil {
		desc := "Processing failed"
		if errors.Is(err, domain.ErrRecordNotFound) {
			desc = "Payment not found"
		}
		l.WithError(err).Error("reconcile callback")
		c.JSON(http.StatusOK, mpesa.CallbackReply{ResultCode: callbackResultRejected, ResultDesc: desc})
		return
	}

	entry := l.WithFields(logrus.Fields{
		"paymentID": result.Payment.ID,
		"status":    result.Payment.Status,
		"duplicate": result.Duplicate,
	})
	if result.Order != nil {
		entry = entry.WithField("orderID", result.Order.ID)
	}
	entry.Info("callback reconciled")

	c.JSON(http.StatusOK, mpesa.CallbackReply{ResultCode: callbackResultAccepted, ResultDesc: "Accepted"})
}

type PaymentListParams struct {
	PaginationParams
	Status  domain.PaymentStatusType `form:"status"`
	OrderID int64                    `form:"order_id"`
}

// Index GET RouteGroup + PaymentsRoute. Только для администратора.
func (p *PaymentsHandler) Index(c *gin.Context) {
	var params PaymentListParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payments, err := p.paymentSvs.List(reqCtx, repoargs.PaymentFilter{
		Pagination: params.toRepo(),
		Status:     params.Status,
		OrderID:    params.OrderID,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": mapSlice(payments, newPaymentResponse)})
}

// Show GET RouteGroup + PaymentRoute. Только для администратора.
func (p *PaymentsHandler) Show(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payment, err := p.paymentSvs.Get(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": newPaymentResponse(payment)})
}
