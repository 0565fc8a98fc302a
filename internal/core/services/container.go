package services

import (
	portsrepo "github.com/ledgerbooks/books_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerbooks/books_backend/internal/core/ports/services"
	"github.com/ledgerbooks/books_backend/internal/platform/cache"
	"github.com/ledgerbooks/books_backend/internal/platform/config"
)

// NewContainer wires the service layer: the shared collaborators (reference
// loader, duplicate checker, ledger synchronizer, history recorder) first,
// then the entity services on top of them.
func NewContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, c cache.Cache) *portssvc.ServiceContainer {
	refs := NewReferenceService(repos.OrganizationRepo, repos.SettingsRepo, repos.CurrencyRepo, repos.TaxRateRepo, c)
	duplicates := NewDuplicateChecker(repos.CustomerRepo, repos.SupplierRepo, repos.ItemRepo)
	ledger := NewLedgerService(repos.AccountRepo, repos.TrialBalanceRepo, repos.ItemTrackRepo)
	recorder := NewHistoryRecorder(repos.HistoryRepo, repos.UserRepo)

	return &portssvc.ServiceContainer{
		Customer:     NewCustomerService(repos.CustomerRepo, repos.TrialBalanceRepo, repos.HistoryRepo, refs, duplicates, ledger, recorder),
		Supplier:     NewSupplierService(repos.SupplierRepo, repos.TrialBalanceRepo, repos.HistoryRepo, refs, duplicates, ledger, recorder),
		Item:         NewItemService(repos.ItemRepo, repos.AccountRepo, refs, duplicates, ledger),
		Organization: NewOrganizationService(repos.OrganizationRepo, repos.SettingsRepo, repos.CurrencyRepo, repos.TaxRateRepo, refs),
		User:         NewUserService(repos.UserRepo),
		Token:        NewTokenService(cfg, repos.UserRepo),
		GoogleOAuth:  NewGoogleOAuthHandlerService(cfg),
	}
}
