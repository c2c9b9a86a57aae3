package service

import (
	"fmt"

	"github.com/fsdevblog/storefront/pkg/uow"
)

type AppServices struct {
	CustomerService  *CustomerService
	OrderService     *OrderService
	PaymentService   *PaymentService
	CatalogService   *CatalogService
	RepairService    *RepairService
	SettingService   *SettingService
	AnalyticsService *AnalyticsService
	OutboxService    *OutboxService
}

type FactoryArgs struct {
	JWTSecret     []byte
	Hasher        PasswordHasher
	Gateway       PaymentGateway
	Notifications Notifications
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	customerService, customerServiceErr := NewCustomerService(unitOfWork, args.Hasher, args.JWTSecret)
	if customerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", customerServiceErr.Error())
	}

	orderService, orderServiceErr := NewOrderService(unitOfWork)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	paymentService, paymentServiceErr := NewPaymentService(unitOfWork, PaymentServiceArgs{
		Gateway:       args.Gateway,
		Notifications: args.Notifications,
	})
	if paymentServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", paymentServiceErr.Error())
	}

	catalogService, catalogServiceErr := NewCatalogService(unitOfWork)
	if catalogServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", catalogServiceErr.Error())
	}

	repairService, repairServiceErr := NewRepairService(unitOfWork)
	if repairServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", repairServiceErr.Error())
	}

	settingService, settingServiceErr := NewSettingService(unitOfWork)
	if settingServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", settingServiceErr.Error())
	}

	analyticsService, analyticsServiceErr := NewAnalyticsService(unitOfWork)
	if analyticsServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", analyticsServiceErr.Error())
	}

	outboxService, outboxServiceErr := NewOutboxService(unitOfWork)
	if outboxServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", outboxServiceErr.Error())
	}

	return &AppServices{
		CustomerService:  customerService,
		OrderService:     orderService,
		PaymentService:   paymentService,
		CatalogService:   catalogService,
		RepairService:    repairService,
		SettingService:   settingService,
		AnalyticsService: analyticsService,
		OutboxService:    outboxService,
	}, nil
}
