package repoargs

import "github.com/shopspring/decimal"

type ProductData struct {
	Name          string
	Slug          string
	Description   string
	Price         decimal.Decimal
	Stock         int32
	CategoryID    *int64
	SubcategoryID *int64
	Images        []string
	IsActive      bool
}

type ProductFilter struct {
	Pagination
	CategoryID    int64
	SubcategoryID int64
	Search        string
	ActiveOnly    bool
}

type CategoryData struct {
	Name        string
	Slug        string
	Description string
}

type SubcategoryData struct {
	CategoryID  int64
	Name        string
	Slug        string
	Description string
}
