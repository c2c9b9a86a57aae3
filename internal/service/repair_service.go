package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/pkg/uow"
)

type RepairService struct {
	repairRepo RepairRepository
}

func NewRepairService(u uow.UOW) (*RepairService, error) {
	repairRepo, err := uow.GetRepositoryAs[RepairRepository](u, uow.RepositoryName(repoargs.RepairRepoName))
	if err != nil {
		return nil, err
	}
	return &RepairService{repairRepo: repairRepo}, nil
}

// Create принимает заявку на ремонт. Заявку может оставить и незарегистрированный посетитель.
func (r *RepairService) Create(ctx context.Context, args repoargs.CreateRepair) (*domain.RepairRequest, error) {
	args.Name = strings.TrimSpace(args.Name)
	args.Device = strings.TrimSpace(args.Device)
	args.Issue = strings.TrimSpace(args.Issue)
	switch {
	case args.Name == "":
		return nil, domain.NewValidationError("name", "is required")
	case args.Device == "":
		return nil, domain.NewValidationError("device", "is required")
	case args.Issue == "":
		return nil, domain.NewValidationError("issue", "is required")
	}
	phone, phoneErr := NormalizePhone(args.Phone)
	if phoneErr != nil {
		return nil, phoneErr
	}
	args.Phone = phone
	args.Email = normalizeEmail(args.Email)

	repair, err := r.repairRepo.Create(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("creating repair request: %w", err)
	}
	return repair, nil
}

func (r *RepairService) Get(ctx context.Context, id int64) (*domain.RepairRequest, error) {
	return r.repairRepo.FindByID(ctx, id) //nolint:wrapcheck
}

func (r *RepairService) List(ctx context.Context, filter repoargs.RepairFilter) ([]domain.RepairRequest, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown repair status")
	}
	return r.repairRepo.List(ctx, filter) //nolint:wrapcheck
}

func (r *RepairService) Update(
	ctx context.Context,
	id int64,
	args repoargs.UpdateRepair,
) (*domain.RepairRequest, error) {
	if args.Status != nil && !args.Status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown repair status")
	}
	if args.EstimatedCost != nil && args.EstimatedCost.IsNegative() {
		return nil, domain.NewValidationError("estimated_cost", "must not be negative")
	}
	return r.repairRepo.Update(ctx, id, args) //nolint:wrapcheck
}

func (r *RepairService) Delete(ctx context.Context, id int64) error {
	return r.repairRepo.Delete(ctx, id) //nolint:wrapcheck
}
