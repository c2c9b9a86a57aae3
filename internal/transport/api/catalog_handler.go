package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fsdevblog/storefront/internal/domain"
	"github.com/fsdevblog/storefront/internal/repository/repoargs"
	"github.com/fsdevblog/storefront/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CatalogHandler struct {
	catalogSvs CatalogServicer
}

func NewCatalogHandler(catalogSvs CatalogServicer) *CatalogHandler {
	return &CatalogHandler{
		catalogSvs: catalogSvs,
	}
}

// idOrSlug параметр пути :id может содержать как числовой id, так и slug.
func idOrSlug(c *gin.Context) (int64, string) {
	raw := c.Param("id")
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
		return id, ""
	}
	return 0, raw
}

type ProductListParams struct {
	PaginationParams
	CategoryID    int64  `form:"category_id"`
	SubcategoryID int64  `form:"subcategory_id"`
	Search        string `binding:"omitempty,max=100" form:"q"`
	Active        *bool  `form:"active"`
}

// ListProducts GET RouteGroup + ProductsRoute. Покупателям отдаются только активные товары.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var params ProductListParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	activeOnly := !isAdmin(c)
	if params.Active != nil && *params.Active {
		activeOnly = true
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	products, err := h.catalogSvs.ListProducts(reqCtx, repoargs.ProductFilter{
		Pagination:    params.toRepo(),
		CategoryID:    params.CategoryID,
		SubcategoryID: params.SubcategoryID,
		Search:        params.Search,
		ActiveOnly:    activeOnly,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": mapSlice(products, newProductResponse)})
}

// ShowProduct GET RouteGroup + ProductRoute. Параметр - id или slug.
func (h *CatalogHandler) ShowProduct(c *gin.Context) {
	id, slug := idOrSlug(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	var (
		product *domain.Product
		err     error
	)
	if id > 0 {
		product, err = h.catalogSvs.GetProduct(reqCtx, id)
	} else {
		product, err = h.catalogSvs.GetProductBySlug(reqCtx, slug)
	}
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": newProductResponse(product)})
}

type ProductParams struct {
	Name          *string          `binding:"omitempty,min=1,max=255" json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	Stock         *int32           `binding:"omitempty,gte=0"    json:"stock"`
	CategoryID    *int64           `binding:"omitempty,gt=0"     json:"category_id"`
	SubcategoryID *int64           `binding:"omitempty,gt=0"     json:"subcategory_id"`
	Images        []string         `binding:"omitempty,dive,url" json:"images"`
	IsActive      *bool            `json:"is_active"`
}

func (p ProductParams) toService() service.ProductArgs {
	return service.ProductArgs{
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Stock:         p.Stock,
		CategoryID:    p.CategoryID,
		SubcategoryID: p.SubcategoryID,
		Images:        p.Images,
		IsActive:      p.IsActive,
	}
}

// CreateProduct POST RouteGroup + ProductsRoute.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var params ProductParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.catalogSvs.CreateProduct(reqCtx, params.toService())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": newProductResponse(product)})
}

// UpdateProduct PUT RouteGroup + ProductRoute.
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var params ProductParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.catalogSvs.UpdateProduct(reqCtx, id, params.toService())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": newProductResponse(product)})
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	h.deleteByID(c, h.catalogSvs.DeleteProduct)
}

// ListCategories GET RouteGroup + CategoriesRoute.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	categories, err := h.catalogSvs.ListCategories(reqCtx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": mapSlice(categories, newCategoryResponse)})
}

// ShowCategory GET RouteGroup + CategoryRoute. Параметр - id или slug.
func (h *CatalogHandler) ShowCategory(c *gin.Context) {
	id, slug := idOrSlug(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	var (
		category *domain.Category
		err      error
	)
	if id > 0 {
		category, err = h.catalogSvs.GetCategory(reqCtx, id)
	} else {
		category, err = h.catalogSvs.GetCategoryBySlug(reqCtx, slug)
	}
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": newCategoryResponse(category)})
}

type CategoryParams struct {
	Name        string  `binding:"omitempty,max=255" json:"name"`
	Description *string `json:"description"`
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var params CategoryParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	category, err := h.catalogSvs.CreateCategory(reqCtx, service.CategoryArgs{
		Name:        params.Name,
		Description: params.Description,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": newCategoryResponse(category)})
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var params CategoryParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	category, err := h.catalogSvs.UpdateCategory(reqCtx, id, service.CategoryArgs{
		Name:        params.Name,
		Description: params.Description,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": newCategoryResponse(category)})
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	h.deleteByID(c, h.catalogSvs.DeleteCategory)
}

type SubcategoryListParams struct {
	CategoryID int64 `form:"category_id"`
}

// ListSubcategories GET RouteGroup + SubcategoriesRoute. Фильтр category_id необязателен.
func (h *CatalogHandler) ListSubcategories(c *gin.Context) {
	var params SubcategoryListParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	subcategories, err := h.catalogSvs.ListSubcategories(reqCtx, params.CategoryID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subcategories": mapSlice(subcategories, newSubcategoryResponse)})
}

func (h *CatalogHandler) ShowSubcategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	subcategory, err := h.catalogSvs.GetSubcategory(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subcategory": newSubcategoryResponse(subcategory)})
}

type SubcategoryParams struct {
	CategoryID  int64   `binding:"omitempty,gt=0"    json:"category_id"`
	Name        string  `binding:"omitempty,max=255" json:"name"`
	Description *string `json:"description"`
}

func (p SubcategoryParams) toService() service.SubcategoryArgs {
	return service.SubcategoryArgs{
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
	}
}

func (h *CatalogHandler) CreateSubcategory(c *gin.Context) {
	var params SubcategoryParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	subcategory, err := h.catalogSvs.CreateSubcategory(reqCtx, params.toService())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"subcategory": newSubcategoryResponse(subcategory)})
}

func (h *CatalogHandler) UpdateSubcategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var params SubcategoryParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	subcategory, err := h.catalogSvs.UpdateSubcategory(reqCtx, id, params.toService())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subcategory": newSubcategoryResponse(subcategory)})
}

func (h *CatalogHandler) DeleteSubcategory(c *gin.Context) {
	h.deleteByID(c, h.catalogSvs.DeleteSubcategory)
}

func (h *CatalogHandler) deleteByID(c *gin.Context, del func(ctx context.Context, id int64) error) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := del(reqCtx, id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
