package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo      AccountRepositoryFacade
	TransactionRepo  TransactionRepository
	CategoryRepo     CategoryRepository
	RecurringRepo    RecurringRepository
	BudgetRepo       BudgetRepository
	GoalRepo         GoalRepository
	InvoiceRepo      InvoiceRepository
	ClientRepo       ClientRepository
	ExchangeRateRepo ExchangeRateRepository
	ReportingRepo    ReportingRepository
}
