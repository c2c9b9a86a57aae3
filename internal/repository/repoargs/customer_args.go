package repoargs

import "github.com/fsdevblog/storefront/internal/domain"

type CreateCustomer struct {
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         domain.CustomerRoleType
}

// UpdateCustomer nil поля не обновляются.
type UpdateCustomer struct {
	Name   *string
	Phone  *string
	Role   *domain.CustomerRoleType
	Status *domain.CustomerStatusType
}

type CustomerFilter struct {
	Pagination
	Search string
	Status domain.CustomerStatusType
}
