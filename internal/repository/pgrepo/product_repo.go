package pgrepo

import (
	"context"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, created_at, updated_at, name, slug, description, price, stock,
	category_id, subcategory_id, images, is_active`

type ProductRepository struct {
	conn uow.DBTX
}

func NewProductRepository(conn uow.DBTX) *ProductRepository {
	return &ProductRepository{conn: conn}
}

// Create вставляет товар. Занятый slug вернет domain.ErrDuplicateKey.
func (p *ProductRepository) Create(ctx context.Context, data repoargs.ProductData) (*domain.Product, error) {
	row := p.conn.QueryRow(ctx,
		`INSERT INTO products (name, slug, description, price, stock, category_id, subcategory_id, images, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+productColumns,
		data.Name, data.Slug, data.Description, data.Price, data.Stock,
		data.CategoryID, data.SubcategoryID, imagesOrEmpty(data.Images), data.IsActive,
	)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "creating product with slug `%s`", data.Slug)
	}
	return product, nil
}

func (p *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := p.conn.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "finding product by id %d", id)
	}
	return product, nil
}

func (p *ProductRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	row := p.conn.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE slug = $1`, slug)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "finding product by slug `%s`", slug)
	}
	return product, nil
}

func (p *ProductRepository) List(ctx context.Context, filter repoargs.ProductFilter) ([]domain.Product, error) {
	b := newQueryBuilder()
	if filter.CategoryID != 0 {
		b.where("category_id = $%d", filter.CategoryID)
	}
	if filter.SubcategoryID != 0 {
		b.where("subcategory_id = $%d", filter.SubcategoryID)
	}
	if filter.Search != "" {
		b.where("(name ILIKE $%[1]d OR description ILIKE $%[1]d)", "%"+filter.Search+"%")
	}
	if filter.ActiveOnly {
		b.where("is_active = $%d", true)
	}
	page, pageErr := b.paginateSQL(filter.Pagination)
	if pageErr != nil {
		return nil, convertErr(pageErr, "listing products")
	}

	rows, err := p.conn.Query(ctx,
		`SELECT `+productColumns+` FROM products`+b.whereSQL()+` ORDER BY created_at DESC, id DESC`+page,
		b.args...,
	)
	if err != nil {
		return nil, convertErr(err, "listing products")
	}
	products, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		product, scanErr := scanProduct(row)
		if scanErr != nil {
			return domain.Product{}, scanErr
		}
		return *product, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing products")
	}
	return products, nil
}

// Update полностью перезаписывает изменяемые поля товара.
func (p *ProductRepository) Update(ctx context.Context, id int64, data repoargs.ProductData) (*domain.Product, error) {
	row := p.conn.QueryRow(ctx,
		`UPDATE products SET
			name = $2, slug = $3, description = $4, price = $5, stock = $6,
			category_id = $7, subcategory_id = $8, images = $9, is_active = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING `+productColumns,
		id, data.Name, data.Slug, data.Description, data.Price, data.Stock,
		data.CategoryID, data.SubcategoryID, imagesOrEmpty(data.Images), data.IsActive,
	)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "updating product %d", id)
	}
	return product, nil
}

func (p *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := p.conn.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting product %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting product %d", id)
	}
	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var product domain.Product
	err := row.Scan(
		&product.ID,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.Name,
		&product.Slug,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.CategoryID,
		&product.SubcategoryID,
		&product.Images,
		&product.IsActive,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &product, nil
}

func imagesOrEmpty(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}
