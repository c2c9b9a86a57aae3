package domain

type OrderStatusType string

const (
	OrderStatusPending   OrderStatusType = "pending"
	OrderStatusPaid      OrderStatusType = "paid"
	OrderStatusShipped   OrderStatusType = "shipped"
	OrderStatusCompleted OrderStatusType = "completed"
	OrderStatusCancelled OrderStatusType = "cancelled"
)

// IsValid проверяет, что статус входит в список известных статусов заказа.
func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// PaidStatuses статусы заказа, которые учитываются в выручке.
var PaidStatuses = []OrderStatusType{OrderStatusPaid, OrderStatusShipped, OrderStatusCompleted}

type PaymentMethodType string

const (
	PaymentMethodMpesa          PaymentMethodType = "mpesa"
	PaymentMethodCard           PaymentMethodType = "card"
	PaymentMethodCashOnDelivery PaymentMethodType = "cash_on_delivery"
)

func (m PaymentMethodType) IsValid() bool {
	switch m {
	case PaymentMethodMpesa, PaymentMethodCard, PaymentMethodCashOnDelivery:
		return true
	default:
		return false
	}
}

type PaymentStatusType string

const (
	PaymentStatusPending PaymentStatusType = "pending"
	PaymentStatusSuccess PaymentStatusType = "success"
	PaymentStatusFailed  PaymentStatusType = "failed"
)

type CustomerRoleType string

const (
	CustomerRoleCustomer CustomerRoleType = "customer"
	CustomerRoleAdmin    CustomerRoleType = "admin"
)

func (r CustomerRoleType) IsValid() bool {
	return r == CustomerRoleCustomer || r == CustomerRoleAdmin
}

type CustomerStatusType string

const (
	CustomerStatusActive    CustomerStatusType = "active"
	CustomerStatusSuspended CustomerStatusType = "suspended"
)

func (s CustomerStatusType) IsValid() bool {
	return s == CustomerStatusActive || s == CustomerStatusSuspended
}

type RepairStatusType string

const (
	RepairStatusPending    RepairStatusType = "pending"
	RepairStatusInProgress RepairStatusType = "in_progress"
	RepairStatusCompleted  RepairStatusType = "completed"
	RepairStatusCancelled  RepairStatusType = "cancelled"
)

func (s RepairStatusType) IsValid() bool {
	switch s {
	case RepairStatusPending, RepairStatusInProgress, RepairStatusCompleted, RepairStatusCancelled:
		return true
	default:
		return false
	}
}

type OutboxKindType string

const (
	OutboxKindEmail   OutboxKindType = "email"
	OutboxKindWebhook OutboxKindType = "webhook"
	OutboxKindKafka   OutboxKindType = "kafka"
)

type OutboxStatusType string

const (
	OutboxStatusPending OutboxStatusType = "pending"
	OutboxStatusSent    OutboxStatusType = "sent"
	OutboxStatusFailed  OutboxStatusType = "failed"
)
