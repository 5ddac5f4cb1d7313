package pgsql

import (
	portsrepo "github.com/SscSPs/cashmap/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		UploadRepo:      newPgxUploadRepository(dbPool),
		BankFormatRepo:  newPgxBankFormatRepository(dbPool),
		MappingRuleRepo: newPgxMappingRuleRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		BudgetRepo:      newPgxBudgetRepository(dbPool),
	}
}
