package service

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	uowmocks "github.com/fsdevblog/storefront/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	repos          *mockRepos
	catalogService *CatalogService
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (s *CatalogServiceTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.repos = newMockRepos(ctrl)

	mockUOW := uowmocks.NewMockUOW(ctrl)
	expectUOW(mockUOW, uowmocks.NewMockTX(ctrl), s.repos)

	catalogService, err := NewCatalogService(mockUOW)
	s.Require().NoError(err)
	s.catalogService = catalogService
}

func (s *CatalogServiceTestSuite) TestCreateCategorySameNameGetsSuffix() {
	// Эмуляция UNIQUE ограничения на slug.
	taken := make(map[string]bool)
	s.repos.category.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data repoargs.CategoryData) (*domain.Category, error) {
			if taken[data.Slug] {
				return nil, domain.ErrDuplicateKey
			}
			taken[data.Slug] = true
			return &domain.Category{ID: int64(len(taken)), Name: data.Name, Slug: data.Slug}, nil
		}).AnyTimes()

	var slugs []string
	for range 3 {
		category, err := s.catalogService.CreateCategory(s.T().Context(), CategoryArgs{Name: "Smart Phones"})
		s.Require().NoError(err)
		slugs = append(slugs, category.Slug)
	}
	s.Equal([]string{"smart-phones", "smart-phones-1", "smart-phones-2"}, slugs)
}

func (s *CatalogServiceTestSuite) TestCreateCategoryRequiresName() {
	_, err := s.catalogService.CreateCategory(s.T().Context(), CategoryArgs{Name: "  "})
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *CatalogServiceTestSuite) TestCreateProduct() {
	name := gofakeit.ProductName()
	price := decimal.NewFromFloat(gofakeit.Price(10, 1000)).Round(2)

	s.repos.product.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data repoargs.ProductData) (*domain.Product, error) {
			s.Equal(Slugify(name), data.Slug)
			s.True(data.IsActive)
			s.True(price.Equal(data.Price))
			return &domain.Product{ID: 1, Name: data.Name, Slug: data.Slug, Price: data.Price}, nil
		})

	product, err := s.catalogService.CreateProduct(s.T().Context(), ProductArgs{Name: &name, Price: &price})
	s.Require().NoError(err)
	s.Equal(int64(1), product.ID)

	negative := decimal.NewFromInt(-1)
	_, negErr := s.catalogService.CreateProduct(s.T().Context(), ProductArgs{Name: &name, Price: &negative})
	s.Require().ErrorIs(negErr, domain.ErrValidation)
}

func (s *CatalogServiceTestSuite) TestUpdateProductKeepsSlugWhenNameUnchanged() {
	existing := &domain.Product{ID: 3, Name: "Tablet", Slug: "tablet-2", Price: decimal.NewFromInt(10), IsActive: true}
	stock := int32(4)

	s.repos.product.EXPECT().FindByID(gomock.Any(), int64(3)).Return(existing, nil)
	s.repos.product.EXPECT().
		Update(gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, data repoargs.ProductData) (*domain.Product, error) {
			s.Equal("tablet-2", data.Slug)
			s.Equal(stock, data.Stock)
			return &domain.Product{ID: 3, Slug: data.Slug, Stock: data.Stock}, nil
		})

	product, err := s.catalogService.UpdateProduct(s.T().Context(), 3, ProductArgs{Stock: &stock})
	s.Require().NoError(err)
	s.Equal("tablet-2", product.Slug)
}
