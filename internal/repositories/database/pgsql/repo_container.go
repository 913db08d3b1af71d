package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/pocketledger/pocketledger/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, accountRepo)
	categoryRepo := newPgxCategoryRepository(dbPool)
	recurringRepo := newPgxRecurringRepository(dbPool)
	budgetRepo := newPgxBudgetRepository(dbPool)
	goalRepo := newPgxGoalRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	clientRepo := newPgxClientRepository(dbPool)
	exchangeRateRepo := newPgxExchangeRateRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:      accountRepo,
		TransactionRepo:  transactionRepo,
		CategoryRepo:     categoryRepo,
		RecurringRepo:    recurringRepo,
		BudgetRepo:       budgetRepo,
		GoalRepo:         goalRepo,
		InvoiceRepo:      invoiceRepo,
		ClientRepo:       clientRepo,
		ExchangeRateRepo: exchangeRateRepo,
		ReportingRepo:    reportingRepo,
	}
}
