package services

import (
	portsrepo "github.com/pocketledger/pocketledger/internal/core/ports/repositories"
	portssvc "github.com/pocketledger/pocketledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The ledger comes first; recurring and invoices post through it.
	container.Ledger = NewLedgerService(repos.TransactionRepo, repos.AccountRepo)

	container.Account = NewAccountService(repos.AccountRepo, WithCurrencyValidation())
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Recurring = NewRecurringService(repos.RecurringRepo, container.Ledger)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.ClientRepo, repos.AccountRepo, container.Ledger, container.Category)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.TransactionRepo)
	container.Goal = NewGoalService(repos.GoalRepo)
	container.Client = NewClientService(repos.ClientRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
