package services

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	Ledger       LedgerSvcFacade
	Account      AccountSvcFacade
	Category     CategorySvcFacade
	Recurring    RecurringSvcFacade
	Invoice      InvoiceSvcFacade
	Budget       BudgetSvcFacade
	Goal         GoalSvcFacade
	Client       ClientSvcFacade
	ExchangeRate ExchangeRateSvcFacade
	Reporting    ReportingSvcFacade
}
