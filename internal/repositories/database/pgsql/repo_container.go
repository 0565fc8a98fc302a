package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/ledgerbooks/books_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		CustomerRepo:     newPgxCustomerRepository(dbPool),
		SupplierRepo:     newPgxSupplierRepository(dbPool),
		ItemRepo:         newPgxItemRepository(dbPool),
		AccountRepo:      newPgxAccountRepository(dbPool),
		TrialBalanceRepo: newPgxTrialBalanceRepository(dbPool),
		ItemTrackRepo:    newPgxItemTrackRepository(dbPool),
		HistoryRepo:      newPgxHistoryRepository(dbPool),
		OrganizationRepo: newPgxOrganizationRepository(dbPool),
		SettingsRepo:     newPgxSettingsRepository(dbPool),
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
		TaxRateRepo:      newPgxTaxRateRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
	}
}
