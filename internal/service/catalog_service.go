package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/pkg/uow"
	"github.com/shopspring/decimal"
)

// CatalogService товары, категории и подкатегории. Slug генерируется из названия и уникален в пределах сущности.
type CatalogService struct {
	productRepo     ProductRepository
	categoryRepo    CategoryRepository
	subcategoryRepo SubcategoryRepository
}

func NewCatalogService(u uow.UOW) (*CatalogService, error) {
	productRepo, productRepoErr :=
		uow.GetRepositoryAs[ProductRepository](u, uow.RepositoryName(repoargs.ProductRepoName))
	if productRepoErr != nil {
		return nil, productRepoErr
	}
	categoryRepo, categoryRepoErr :=
		uow.GetRepositoryAs[CategoryRepository](u, uow.RepositoryName(repoargs.CategoryRepoName))
	if categoryRepoErr != nil {
		return nil, categoryRepoErr
	}
	subcategoryRepo, subcategoryRepoErr :=
		uow.GetRepositoryAs[SubcategoryRepository](u, uow.RepositoryName(repoargs.SubcategoryRepoName))
	if subcategoryRepoErr != nil {
		return nil, subcategoryRepoErr
	}
	return &CatalogService{
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
	}, nil
}

// ProductArgs nil поля при обновлении не меняются. При создании Name и Price обязательны.
type ProductArgs struct {
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	Stock         *int32
	CategoryID    *int64
	SubcategoryID *int64
	Images        []string
	IsActive      *bool
}

func (c *CatalogService) CreateProduct(ctx context.Context, args ProductArgs) (*domain.Product, error) {
	if args.Name == nil || strings.TrimSpace(*args.Name) == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	if args.Price == nil {
		return nil, domain.NewValidationError("price", "is required")
	}
	data := repoargs.ProductData{IsActive: true}
	if err := applyProductArgs(&data, args); err != nil {
		return nil, err
	}

	product, err := withUniqueSlug(data.Name, func(slug string) (*domain.Product, error) {
		data.Slug = slug
		return c.productRepo.Create(ctx, data)
	})
	if err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}
	return product, nil
}

func (c *CatalogService) UpdateProduct(ctx context.Context, id int64, args ProductArgs) (*domain.Product, error) {
	existing, findErr := c.productRepo.FindByID(ctx, id)
	if findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}
	data := repoargs.ProductData{
		Name:          existing.Name,
		Slug:          existing.Slug,
		Description:   existing.Description,
		Price:         existing.Price,
		Stock:         existing.Stock,
		CategoryID:    existing.CategoryID,
		SubcategoryID: existing.SubcategoryID,
		Images:        existing.Images,
		IsActive:      existing.IsActive,
	}
	if err := applyProductArgs(&data, args); err != nil {
		return nil, err
	}

	if data.Name == existing.Name {
		product, err := c.productRepo.Update(ctx, id, data)
		if err != nil {
			return nil, fmt.Errorf("updating product %d: %w", id, err)
		}
		return product, nil
	}
	product, err := withUniqueSlug(data.Name, func(slug string) (*domain.Product, error) {
		data.Slug = slug
		return c.productRepo.Update(ctx, id, data)
	})
	if err != nil {
		return nil, fmt.Errorf("updating product %d: %w", id, err)
	}
	return product, nil
}

func applyProductArgs(data *repoargs.ProductData, args ProductArgs) error {
	if args.Name != nil {
		if strings.TrimSpace(*args.Name) == "" {
			return domain.NewValidationError("name", "must not be empty")
		}
		data.Name = strings.TrimSpace(*args.Name)
	}
	if args.Description != nil {
		data.Description = *args.Description
	}
	if args.Price != nil {
		if args.Price.IsNegative() {
			return domain.NewValidationError("price", "must not be negative")
		}
		data.Price = *args.Price
	}
	if args.Stock != nil {
		if *args.Stock < 0 {
			return domain.NewValidationError("stock", "must not be negative")
		}
		data.Stock = *args.Stock
	}
	if args.CategoryID != nil {
		data.CategoryID = args.CategoryID
	}
	if args.SubcategoryID != nil {
		data.SubcategoryID = args.SubcategoryID
	}
	if args.Images != nil {
		data.Images = args.Images
	}
	if args.IsActive != nil {
		data.IsActive = *args.IsActive
	}
	return nil
}

func (c *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return c.productRepo.FindByID(ctx, id) //nolint:wrapcheck
}

func (c *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return c.productRepo.FindBySlug(ctx, slug) //nolint:wrapcheck
}

func (c *CatalogService) ListProducts(ctx context.Context, filter repoargs.ProductFilter) ([]domain.Product, error) {
	return c.productRepo.List(ctx, filter) //nolint:wrapcheck
}

func (c *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	return c.productRepo.Delete(ctx, id) //nolint:wrapcheck
}

// CategoryArgs при обновлении пустое Name и nil Description не меняют сохраненных значений.
type CategoryArgs struct {
	Name        string
	Description *string
}

func (c *CatalogService) CreateCategory(ctx context.Context, args CategoryArgs) (*domain.Category, error) {
	name := strings.TrimSpace(args.Name)
	category, err := withUniqueSlug(name, func(slug string) (*domain.Category, error) {
		return c.categoryRepo.Create(ctx, repoargs.CategoryData{
			Name:        name,
			Slug:        slug,
			Description: deref(args.Description),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}
	return category, nil
}

func (c *CatalogService) UpdateCategory(ctx context.Context, id int64, args CategoryArgs) (*domain.Category, error) {
	existing, findErr := c.categoryRepo.FindByID(ctx, id)
	if findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}
	name := strings.TrimSpace(args.Name)
	if name == "" {
		name = existing.Name
	}
	data := repoargs.CategoryData{Name: name, Slug: existing.Slug, Description: existing.Description}
	if args.Description != nil {
		data.Description = *args.Description
	}

	if name == existing.Name {
		category, err := c.categoryRepo.Update(ctx, id, data)
		if err != nil {
			return nil, fmt.Errorf("updating category %d: %w", id, err)
		}
		return category, nil
	}
	category, err := withUniqueSlug(name, func(slug string) (*domain.Category, error) {
		data.Slug = slug
		return c.categoryRepo.Update(ctx, id, data)
	})
	if err != nil {
		return nil, fmt.Errorf("updating category %d: %w", id, err)
	}
	return category, nil
}

func (c *CatalogService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return c.categoryRepo.FindByID(ctx, id) //nolint:wrapcheck
}

func (c *CatalogService) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return c.categoryRepo.FindBySlug(ctx, slug) //nolint:wrapcheck
}

func (c *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return c.categoryRepo.List(ctx) //nolint:wrapcheck
}

func (c *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	return c.categoryRepo.Delete(ctx, id) //nolint:wrapcheck
}

// SubcategoryArgs при обновлении нулевые поля не меняют сохраненных значений.
type SubcategoryArgs struct {
	CategoryID  int64
	Name        string
	Description *string
}

func (c *CatalogService) CreateSubcategory(ctx context.Context, args SubcategoryArgs) (*domain.Subcategory, error) {
	if args.CategoryID <= 0 {
		return nil, domain.NewValidationError("category_id", "is required")
	}
	name := strings.TrimSpace(args.Name)
	subcategory, err := withUniqueSlug(name, func(slug string) (*domain.Subcategory, error) {
		return c.subcategoryRepo.Create(ctx, repoargs.SubcategoryData{
			CategoryID:  args.CategoryID,
			Name:        name,
			Slug:        slug,
			Description: deref(args.Description),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("creating subcategory: %w", err)
	}
	return subcategory, nil
}

func (c *CatalogService) UpdateSubcategory(
	ctx context.Context,
	id int64,
	args SubcategoryArgs,
) (*domain.Subcategory, error) {
	existing, findErr := c.subcategoryRepo.FindByID(ctx, id)
	if findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}
	data := repoargs.SubcategoryData{
		CategoryID:  existing.CategoryID,
		Name:        existing.Name,
		Slug:        existing.Slug,
		Description: existing.Description,
	}
	if args.Description != nil {
		data.Description = *args.Description
	}
	if args.CategoryID > 0 {
		data.CategoryID = args.CategoryID
	}
	if name := strings.TrimSpace(args.Name); name != "" {
		data.Name = name
	}

	if data.Name == existing.Name {
		subcategory, err := c.subcategoryRepo.Update(ctx, id, data)
		if err != nil {
			return nil, fmt.Errorf("updating subcategory %d: %w", id, err)
		}
		return subcategory, nil
	}
	subcategory, err := withUniqueSlug(data.Name, func(slug string) (*domain.Subcategory, error) {
		data.Slug = slug
		return c.subcategoryRepo.Update(ctx, id, data)
	})
	if err != nil {
		return nil, fmt.Errorf("updating subcategory %d: %w", id, err)
	}
	return subcategory, nil
}

func (c *CatalogService) GetSubcategory(ctx context.Context, id int64) (*domain.Subcategory, error) {
	return c.subcategoryRepo.FindByID(ctx, id) //nolint:wrapcheck
}

// ListSubcategories если categoryID == 0, возвращает все подкатегории.
func (c *CatalogService) ListSubcategories(ctx context.Context, categoryID int64) ([]domain.Subcategory, error) {
	return c.subcategoryRepo.List(ctx, categoryID) //nolint:wrapcheck
}

func (c *CatalogService) DeleteSubcategory(ctx context.Context, id int64) error {
	return c.subcategoryRepo.Delete(ctx, id) //nolint:wrapcheck
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
