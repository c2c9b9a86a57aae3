package pgrepo

import (
	"context"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const categoryColumns = `id, created_at, updated_at, name, slug, description`

const subcategoryColumns = `id, created_at, updated_at, category_id, name, slug, description`

type CategoryRepository struct {
	conn uow.DBTX
}

func NewCategoryRepository(conn uow.DBTX) *CategoryRepository {
	return &CategoryRepository{conn: conn}
}

// Create вставляет категорию. Занятый slug вернет domain.ErrDuplicateKey.
func (c *CategoryRepository) Create(ctx context.Context, data repoargs.CategoryData) (*domain.Category, error) {
	row := c.conn.QueryRow(ctx,
		`INSERT INTO categories (name, slug, description) VALUES ($1, $2, $3) RETURNING `+categoryColumns,
		data.Name, data.Slug, data.Description,
	)
	category, err := scanCategory(row)
	if err != nil {
		return nil, convertErr(err, "creating category with slug `%s`", data.Slug)
	}
	return category, nil
}

func (c *CategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := scanCategory(c.conn.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding category by id %d", id)
	}
	return category, nil
}

func (c *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	category, err := scanCategory(
		c.conn.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug),
	)
	if err != nil {
		return nil, convertErr(err, "finding category by slug `%s`", slug)
	}
	return category, nil
}

func (c *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := c.conn.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name, id`)
	if err != nil {
		return nil, convertErr(err, "listing categories")
	}
	categories, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Category, error) {
		category, scanErr := scanCategory(row)
		if scanErr != nil {
			return domain.Category{}, scanErr
		}
		return *category, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing categories")
	}
	return categories, nil
}

func (c *CategoryRepository) Update(ctx context.Context, id int64, data repoargs.CategoryData) (*domain.Category, error) {
	row := c.conn.QueryRow(ctx,
		`UPDATE categories SET name = $2, slug = $3, description = $4, updated_at = NOW()
		WHERE id = $1 RETURNING `+categoryColumns,
		id, data.Name, data.Slug, data.Description,
	)
	category, err := scanCategory(row)
	if err != nil {
		return nil, convertErr(err, "updating category %d", id)
	}
	return category, nil
}

func (c *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := c.conn.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting category %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting category %d", id)
	}
	return nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var category domain.Category
	err := row.Scan(
		&category.ID, &category.CreatedAt, &category.UpdatedAt, &category.Name, &category.Slug, &category.Description,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &category, nil
}

type SubcategoryRepository struct {
	conn uow.DBTX
}

func NewSubcategoryRepository(conn uow.DBTX) *SubcategoryRepository {
	return &SubcategoryRepository{conn: conn}
}

// Create вставляет подкатегорию. Занятый slug вернет domain.ErrDuplicateKey, несуществующая категория -
// domain.ErrValidation.
func (s *SubcategoryRepository) Create(
	ctx context.Context,
	data repoargs.SubcategoryData,
) (*domain.Subcategory, error) {
	row := s.conn.QueryRow(ctx,
		`INSERT INTO subcategories (category_id, name, slug, description) VALUES ($1, $2, $3, $4)
		RETURNING `+subcategoryColumns,
		data.CategoryID, data.Name, data.Slug, data.Description,
	)
	subcategory, err := scanSubcategory(row)
	if err != nil {
		return nil, convertErr(err, "creating subcategory with slug `%s`", data.Slug)
	}
	return subcategory, nil
}

func (s *SubcategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Subcategory, error) {
	subcategory, err := scanSubcategory(
		s.conn.QueryRow(ctx, `SELECT `+subcategoryColumns+` FROM subcategories WHERE id = $1`, id),
	)
	if err != nil {
		return nil, convertErr(err, "finding subcategory by id %d", id)
	}
	return subcategory, nil
}

// List возвращает подкатегории. Если categoryID != 0, только подкатегории этой категории.
func (s *SubcategoryRepository) List(ctx context.Context, categoryID int64) ([]domain.Subcategory, error) {
	b := newQueryBuilder()
	if categoryID != 0 {
		b.where("category_id = $%d", categoryID)
	}
	rows, err := s.conn.Query(ctx,
		`SELECT `+subcategoryColumns+` FROM subcategories`+b.whereSQL()+` ORDER BY name, id`, b.args...,
	)
	if err != nil {
		return nil, convertErr(err, "listing subcategories")
	}
	subcategories, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Subcategory, error) {
		subcategory, scanErr := scanSubcategory(row)
		if scanErr != nil {
			return domain.Subcategory{}, scanErr
		}
		return *subcategory, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing subcategories")
	}
	return subcategories, nil
}

func (s *SubcategoryRepository) Update(
	ctx context.Context,
	id int64,
	data repoargs.SubcategoryData,
) (*domain.Subcategory, error) {
	row := s.conn.QueryRow(ctx,
		`UPDATE subcategories SET category_id = $2, name = $3, slug = $4, description = $5, updated_at = NOW()
		WHERE id = $1 RETURNING `+subcategoryColumns,
		id, data.CategoryID, data.Name, data.Slug, data.Description,
	)
	subcategory, err := scanSubcategory(row)
	if err != nil {
		return nil, convertErr(err, "updating subcategory %d", id)
	}
	return subcategory, nil
}

func (s *SubcategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := s.conn.Exec(ctx, `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting subcategory %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting subcategory %d", id)
	}
	return nil
}

func scanSubcategory(row pgx.Row) (*domain.Subcategory, error) {
	var subcategory domain.Subcategory
	err := row.Scan(
		&subcategory.ID,
		&subcategory.CreatedAt,
		&subcategory.UpdatedAt,
		&subcategory.CategoryID,
		&subcategory.Name,
		&subcategory.Slug,
		&subcategory.Description,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &subcategory, nil
}
