package service

import (
	"context"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/pkg/uow"
)

const (
	DefaultDashboardDays = 30
	maxDashboardDays     = 365
)

type AnalyticsService struct {
	analyticsRepo AnalyticsRepository
}

func NewAnalyticsService(u uow.UOW) (*AnalyticsService, error) {
	analyticsRepo, err :=
		uow.GetRepositoryAs[AnalyticsRepository](u, uow.RepositoryName(repoargs.AnalyticsRepoName))
	if err != nil {
		return nil, err
	}
	return &AnalyticsService{analyticsRepo: analyticsRepo}, nil
}

// Dashboard сводка за последние days дней. Значения вне [1, 365] заменяются на DefaultDashboardDays.
func (a *AnalyticsService) Dashboard(ctx context.Context, days int) (*domain.Dashboard, error) {
	if days <= 0 || days > maxDashboardDays {
		days = DefaultDashboardDays
	}
	return a.analyticsRepo.Dashboard(ctx, days) //nolint:wrapcheck
}
