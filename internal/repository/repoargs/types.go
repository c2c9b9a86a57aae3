package repoargs

type RepositoryName string

const (
	CustomerRepoName    RepositoryName = "customer"
	TokenRepoName       RepositoryName = "token"
	OrderRepoName       RepositoryName = "order"
	PaymentRepoName     RepositoryName = "payment"
	ProductRepoName     RepositoryName = "product"
	CategoryRepoName    RepositoryName = "category"
	SubcategoryRepoName RepositoryName = "subcategory"
	RepairRepoName      RepositoryName = "repair"
	SettingRepoName     RepositoryName = "setting"
	OutboxRepoName      RepositoryName = "outbox"
	AnalyticsRepoName   RepositoryName = "analytics"
)

// Pagination ограничение выборки списков.
type Pagination struct {
	Limit  uint
	Offset uint
}

// BatchExecQueryRow вызывается для каждого запроса батча.
type BatchExecQueryRow func(i int, err error)
