package api

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/service"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	param := fl.Param() // получаем значение из тега
	maxBytes, err := strconv.Atoi(param)
	if err != nil {
		return false
	}

	// нужно убедится что значение поля - строка.
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

// validatePhoneKE принимает кенийские мобильные номера в форматах 07.., 01.., +254.., 254...
func validatePhoneKE(fl validator.FieldLevel) bool {
	_, err := service.NormalizePhone(fl.Field().String())
	return err == nil
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	return domain.OrderStatusType(fl.Field().String()).IsValid()
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return domain.PaymentMethodType(fl.Field().String()).IsValid()
}

func validateRepairStatus(fl validator.FieldLevel) bool {
	return domain.RepairStatusType(fl.Field().String()).IsValid()
}

func validateCustomerStatus(fl validator.FieldLevel) bool {
	return domain.CustomerStatusType(fl.Field().String()).IsValid()
}

func validateCustomerRole(fl validator.FieldLevel) bool {
	return domain.CustomerRoleType(fl.Field().String()).IsValid()
}

var (
	registerOnce sync.Once
	registerErr  error
)

// registerValidators регистрирует теги в валидаторе gin. Валидатор глобальный, поэтому регистрация
// выполняется один раз на процесс.
func registerValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
			return
		}
		validations := map[string]validator.Func{
			"max_bytes":       validateMaxBytes,
			"phone_ke":        validatePhoneKE,
			"order_status":    validateOrderStatus,
			"payment_method":  validatePaymentMethod,
			"repair_status":   validateRepairStatus,
			"customer_status": validateCustomerStatus,
			"customer_role":   validateCustomerRole,
		}
		for tag, fn := range validations {
			if err := v.RegisterValidation(tag, fn); err != nil {
				registerErr = fmt.Errorf("validator registration: %s", err.Error())
				return
			}
		}
	})
	return registerErr
}
