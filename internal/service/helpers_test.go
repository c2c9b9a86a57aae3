package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/internal/service/mocks"
	"github.com/fsdevblog/storefront/pkg/uow"
	uowmocks "github.com/fsdevblog/storefront/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
)

// mockRepos набор моков репозиториев, отдаваемых как из uow, так и из транзакции.
type mockRepos struct {
	customer    *mocks.MockCustomerRepository
	token       *mocks.MockTokenRepository
	order       *mocks.MockOrderRepository
	payment     *mocks.MockPaymentRepository
	product     *mocks.MockProductRepository
	category    *mocks.MockCategoryRepository
	subcategory *mocks.MockSubcategoryRepository
	repair      *mocks.MockRepairRepository
	setting     *mocks.MockSettingRepository
	outbox      *mocks.MockOutboxRepository
	analytics   *mocks.MockAnalyticsRepository
}

func newMockRepos(ctrl *gomock.Controller) *mockRepos {
	return &mockRepos{
		customer:    mocks.NewMockCustomerRepository(ctrl),
		token:       mocks.NewMockTokenRepository(ctrl),
		order:       mocks.NewMockOrderRepository(ctrl),
		payment:     mocks.NewMockPaymentRepository(ctrl),
		product:     mocks.NewMockProductRepository(ctrl),
		category:    mocks.NewMockCategoryRepository(ctrl),
		subcategory: mocks.NewMockSubcategoryRepository(ctrl),
		repair:      mocks.NewMockRepairRepository(ctrl),
		setting:     mocks.NewMockSettingRepository(ctrl),
		outbox:      mocks.NewMockOutboxRepository(ctrl),
		analytics:   mocks.NewMockAnalyticsRepository(ctrl),
	}
}

func (m *mockRepos) get(name uow.RepositoryName) (uow.Repository, error) {
	switch repoargs.RepositoryName(name) {
	case repoargs.CustomerRepoName:
		return m.customer, nil
	case repoargs.TokenRepoName:
		return m.token, nil
	case repoargs.OrderRepoName:
		return m.order, nil
	case repoargs.PaymentRepoName:
		return m.payment, nil
	case repoargs.ProductRepoName:
		return m.product, nil
	case repoargs.CategoryRepoName:
		return m.category, nil
	case repoargs.SubcategoryRepoName:
		return m.subcategory, nil
	case repoargs.RepairRepoName:
		return m.repair, nil
	case repoargs.SettingRepoName:
		return m.setting, nil
	case repoargs.OutboxRepoName:
		return m.outbox, nil
	case repoargs.AnalyticsRepoName:
		return m.analytics, nil
	default:
		return nil, fmt.Errorf("unknown repository %s", name)
	}
}

// expectUOW настраивает моки uow и транзакции: репозитории отдаются из mockRepos, Do выполняет fn сразу.
func expectUOW(mockUOW *uowmocks.MockUOW, mockTX *uowmocks.MockTX, repos *mockRepos) {
	mockUOW.EXPECT().GetRepository(gomock.Any()).DoAndReturn(repos.get).AnyTimes()
	mockTX.EXPECT().Get(gomock.Any()).DoAndReturn(repos.get).AnyTimes()
	mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, mockTX)
		}).AnyTimes()
}
