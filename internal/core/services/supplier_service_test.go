package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ledgerbooks/books_backend/internal/apperrors"
	"github.com/ledgerbooks/books_backend/internal/core/domain"
	portsrepo "github.com/ledgerbooks/books_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerbooks/books_backend/internal/core/ports/services"
	"github.com/ledgerbooks/books_backend/internal/core/services"
	"github.com/ledgerbooks/books_backend/internal/dto"
	"github.com/ledgerbooks/books_backend/internal/platform/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SupplierServiceTestSuite struct {
	suite.Suite
	ctx context.Context

	suppliers *fakeSupplierRepo
	accounts  *fakeAccountRepo
	tbs       *fakeTrialBalanceRepo
	histories *fakeHistoryRepo
	settings  *domain.Settings

	svc portssvc.SupplierSvcFacade
}

func (s *SupplierServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.suppliers = &fakeSupplierRepo{}
	s.accounts = &fakeAccountRepo{}
	s.tbs = &fakeTrialBalanceRepo{}
	s.histories = &fakeHistoryRepo{}
	s.settings = &domain.Settings{
		SettingsID:                   "set-1",
		OrganizationID:               testOrgID,
		DuplicateSupplierDisplayName: true,
	}

	org := &domain.Organization{
		OrganizationID: testOrgID,
		Country:        "India",
		TaxType:        domain.TaxTypeGST,
		IsActive:       true,
	}
	refs := services.NewReferenceService(
		&fakeOrganizationRepo{org: org},
		&fakeSettingsRepo{settings: s.settings},
		&fakeCurrencyRepo{},
		&fakeTaxRateRepo{},
		cache.NewNoop(),
	)
	duplicates := services.NewDuplicateChecker(&fakeCustomerRepo{}, s.suppliers, &fakeItemRepo{})
	ledger := services.NewLedgerService(s.accounts, s.tbs, &fakeItemTrackRepo{})
	recorder := services.NewHistoryRecorder(s.histories, &fakeUserRepo{users: []domain.User{{UserID: testUserID, Name: "Asha Rao"}}})

	s.svc = services.NewSupplierService(s.suppliers, s.tbs, s.histories, refs, duplicates, ledger, recorder)
}

func (s *SupplierServiceTestSuite) createRequest() dto.CreateSupplierRequest {
	req := dto.CreateSupplierRequest{SupplierDisplayName: "Mehta Metals"}
	req.TaxType = "Non-Tax"
	req.TaxReason = "Exempt"
	req.CreditOpeningBalance = dec("750")
	return req
}

func (s *SupplierServiceTestSuite) TestCreateSupplier_CreatesCreditorAccount() {
	supplier, err := s.svc.CreateSupplier(s.ctx, testOrgID, s.createRequest(), testUserID)

	s.Require().NoError(err)
	s.Require().Len(s.suppliers.savedAccounts, 1)
	account := s.suppliers.savedAccounts[0]
	s.Equal("SU0001", account.AccountCode)
	s.Equal("Sundry Creditors", account.AccountSubhead)
	s.Equal("Liability", account.AccountGroup)
	s.Equal(supplier.SupplierID, account.AccountID)

	s.Require().Len(s.suppliers.savedTrialBalances, 1)
	tb := s.suppliers.savedTrialBalances[0]
	s.Nil(tb.DebitAmount)
	s.Require().NotNil(tb.CreditAmount)
	s.True(tb.CreditAmount.Equal(decimal.RequireFromString("750")))

	s.Require().Len(s.suppliers.savedHistories, 2)
	s.Equal("Supplier Added", s.suppliers.savedHistories[0].Title)
	s.Equal("Supplier Account Created", s.suppliers.savedHistories[1].Title)
}

func (s *SupplierServiceTestSuite) existingSupplier() *domain.Supplier {
	sup := &domain.Supplier{
		SupplierID: "sup-1",
		Party: domain.Party{
			OrganizationID: testOrgID,
			Kind:           domain.PartySupplier,
			DisplayName:    "Mehta Metals",
			TaxType:        domain.TaxTypeNonTax,
			TaxReason:      "Exempt",
			Status:         domain.StatusActive,
		},
	}
	s.suppliers.FindSupplierByIDFn = func(ctx context.Context, id string) (*domain.Supplier, error) {
		if id == sup.SupplierID {
			return sup, nil
		}
		return nil, apperrors.ErrNotFound
	}
	return sup
}

func (s *SupplierServiceTestSuite) TestUpdateSupplier_BulkRenamesAccountsByOldName() {
	s.existingSupplier()
	// Two accounts historically share the old display name; both rename.
	s.accounts.accounts = []domain.Account{
		{ID: "acc-1", OrganizationID: testOrgID, AccountID: "sup-1", AccountName: "Mehta Metals"},
		{ID: "acc-2", OrganizationID: testOrgID, AccountID: "sup-legacy", AccountName: "Mehta Metals"},
		{ID: "acc-3", OrganizationID: testOrgID, AccountID: "sup-2", AccountName: "Other Supplier"},
	}

	newName := "Mehta Metal Works"
	req := dto.UpdateSupplierRequest{SupplierDisplayName: &newName}

	_, err := s.svc.UpdateSupplier(s.ctx, testOrgID, "sup-1", req, testUserID)

	s.Require().NoError(err)
	s.Require().Len(s.accounts.updatedAccounts, 2)
	for _, account := range s.accounts.updatedAccounts {
		s.Equal("Mehta Metal Works", account.AccountName)
	}
	s.Equal("Other Supplier", s.accounts.accounts[2].AccountName)
}

func (s *SupplierServiceTestSuite) TestCreateSupplier_DuplicateDisplayName() {
	s.suppliers.ExistsSupplierWithFieldFn = func(ctx context.Context, q portsrepo.PartyDuplicateQuery) (bool, error) {
		return q.Field == "display_name", nil
	}

	_, err := s.svc.CreateSupplier(s.ctx, testOrgID, s.createRequest(), testUserID)

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrDuplicate))
	s.Empty(s.suppliers.savedSuppliers)
}

func (s *SupplierServiceTestSuite) TestUpdateSupplier_SwitchToNonTaxDropsVATNumber() {
	sup := s.existingSupplier()
	sup.TaxType = domain.TaxTypeVAT
	sup.VATTreatment = "VAT Registered"
	sup.VATNumber = "VAT99887766"
	sup.TaxReason = ""

	req := dto.UpdateSupplierRequest{}
	taxType := "Non-Tax"
	reason := "Out of scope"
	req.TaxType = &taxType
	req.TaxReason = &reason

	updated, err := s.svc.UpdateSupplier(s.ctx, testOrgID, "sup-1", req, testUserID)

	s.Require().NoError(err)
	s.Equal(domain.TaxTypeNonTax, updated.TaxType)
	s.Empty(updated.VATTreatment)
	s.Empty(updated.VATNumber)

	s.Require().Len(s.suppliers.updatedSuppliers, 1)
	s.Empty(s.suppliers.updatedSuppliers[0].VATNumber)
	s.Equal("Out of scope", s.suppliers.updatedSuppliers[0].TaxReason)
}

func TestSupplierServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierServiceTestSuite))
}
