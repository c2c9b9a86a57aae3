package repoargs

import (
	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateRepair struct {
	CustomerID *int64
	Name       string
	Phone      string
	Email      string
	Device     string
	Issue      string
}

type UpdateRepair struct {
	Status        *domain.RepairStatusType
	EstimatedCost *decimal.Decimal
	Notes         *string
}

type RepairFilter struct {
	Pagination
	Status domain.RepairStatusType
}
