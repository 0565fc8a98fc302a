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
	"github.com/ledgerbooks/books_backend/internal/core/validation"
	"github.com/ledgerbooks/books_backend/internal/dto"
	"github.com/ledgerbooks/books_backend/internal/platform/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const (
	testOrgID  = "org-1"
	testUserID = "user-1"
)

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

type CustomerServiceTestSuite struct {
	suite.Suite
	ctx context.Context

	customers *fakeCustomerRepo
	suppliers *fakeSupplierRepo
	items     *fakeItemRepo
	accounts  *fakeAccountRepo
	tbs       *fakeTrialBalanceRepo
	tracks    *fakeItemTrackRepo
	histories *fakeHistoryRepo
	users     *fakeUserRepo
	settings  *domain.Settings

	svc portssvc.CustomerSvcFacade
}

func (s *CustomerServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.customers = &fakeCustomerRepo{}
	s.suppliers = &fakeSupplierRepo{}
	s.items = &fakeItemRepo{}
	s.accounts = &fakeAccountRepo{}
	s.tbs = &fakeTrialBalanceRepo{}
	s.tracks = &fakeItemTrackRepo{}
	s.histories = &fakeHistoryRepo{}
	s.users = &fakeUserRepo{users: []domain.User{{UserID: testUserID, Name: "Asha Rao"}}}
	s.settings = &domain.Settings{
		SettingsID:                   "set-1",
		OrganizationID:               testOrgID,
		DuplicateCustomerDisplayName: true,
	}

	org := &domain.Organization{
		OrganizationID: testOrgID,
		Name:           "Ledger Books Pvt Ltd",
		Country:        "India",
		TaxType:        domain.TaxTypeGST,
		IsActive:       true,
	}
	refs := services.NewReferenceService(
		&fakeOrganizationRepo{org: org},
		&fakeSettingsRepo{settings: s.settings},
		&fakeCurrencyRepo{currencies: []domain.Currency{{CurrencyID: "cur-inr", OrganizationID: testOrgID, Code: "INR"}}},
		&fakeTaxRateRepo{rates: []domain.TaxRate{{TaxRateID: "tr-1", Name: "GST18", TaxType: domain.TaxTypeGST}}},
		cache.NewNoop(),
	)
	duplicates := services.NewDuplicateChecker(s.customers, s.suppliers, s.items)
	ledger := services.NewLedgerService(s.accounts, s.tbs, s.tracks)
	recorder := services.NewHistoryRecorder(s.histories, s.users)

	s.svc = services.NewCustomerService(s.customers, s.tbs, s.histories, refs, duplicates, ledger, recorder)
}

func (s *CustomerServiceTestSuite) createRequest() dto.CreateCustomerRequest {
	req := dto.CreateCustomerRequest{
		CustomerDisplayName: "Acme Co",
		CustomerType:        "Business",
	}
	req.TaxType = "Non-Tax"
	req.TaxReason = "Exempt"
	req.DebitOpeningBalance = dec("500")
	req.BillingAddress = domain.Address{Country: "India", StateProvince: "Karnataka"}
	return req
}

func (s *CustomerServiceTestSuite) TestCreateCustomer_CreatesLedgerAndHistory() {
	customer, err := s.svc.CreateCustomer(s.ctx, testOrgID, s.createRequest(), testUserID)

	s.Require().NoError(err)
	s.Require().NotNil(customer)
	s.Equal(testOrgID, customer.OrganizationID)
	s.Equal(domain.StatusActive, customer.Status)

	s.Require().Len(s.customers.savedCustomers, 1)
	s.Require().Len(s.customers.savedAccounts, 1)
	account := s.customers.savedAccounts[0]
	s.Equal("CU0001", account.AccountCode)
	s.Equal("Sundry Debtors", account.AccountSubhead)
	s.Equal("Acme Co", account.AccountName)
	s.Equal(customer.CustomerID, account.AccountID)

	s.Require().Len(s.customers.savedTrialBalances, 1)
	tb := s.customers.savedTrialBalances[0]
	s.Equal(customer.CustomerID, tb.OperationID)
	s.Require().NotNil(tb.DebitAmount)
	s.True(tb.DebitAmount.Equal(decimal.RequireFromString("500")))
	s.Nil(tb.CreditAmount)

	s.Require().Len(s.customers.savedHistories, 2)
	s.Equal("Customer Added", s.customers.savedHistories[0].Title)
	s.Equal("Customer Account Created", s.customers.savedHistories[1].Title)
	s.Contains(s.customers.savedHistories[0].Description, "Created by Asha Rao")
}

func (s *CustomerServiceTestSuite) TestCreateCustomer_GSTDescription() {
	req := dto.CreateCustomerRequest{CustomerDisplayName: "Bharat Traders"}
	req.TaxType = "GST"
	req.GSTTreatment = "Registered Business - Regular"
	req.GSTIN = "29ABCDE1234F1Z5"
	req.PlaceOfSupply = "Karnataka"

	_, err := s.svc.CreateCustomer(s.ctx, testOrgID, req, testUserID)

	s.Require().NoError(err)
	s.Require().Len(s.customers.savedHistories, 2)
	desc := s.customers.savedHistories[0].Description
	s.Contains(desc, "GST Treatment: Registered Business - Regular")
	s.Contains(desc, "GSTIN: 29ABCDE1234F1Z5")
	s.Contains(desc, "State: Karnataka")
}

func (s *CustomerServiceTestSuite) TestCreateCustomer_RejectsBothOpeningBalances() {
	req := s.createRequest()
	req.CreditOpeningBalance = dec("200")

	_, err := s.svc.CreateCustomer(s.ctx, testOrgID, req, testUserID)

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrValidation))
	var ve *apperrors.ValidationError
	s.Require().True(errors.As(err, &ve))
	s.Contains(ve.Messages, validation.MsgOpeningBalanceExclusive)
	s.Empty(s.customers.savedCustomers)
	s.Empty(s.customers.savedHistories)
}

func (s *CustomerServiceTestSuite) TestCreateCustomer_DuplicateEmailGating() {
	s.customers.ExistsCustomerWithFieldFn = func(ctx context.Context, q portsrepo.PartyDuplicateQuery) (bool, error) {
		return q.Field == "email", nil
	}

	req := s.createRequest()
	req.Email = "ops@acme.example"

	// Flag off: the matching email is never queried.
	s.settings.DuplicateCustomerEmail = false
	_, err := s.svc.CreateCustomer(s.ctx, testOrgID, req, testUserID)
	s.Require().NoError(err)

	// Flag on: same request conflicts and persists nothing new.
	s.settings.DuplicateCustomerEmail = true
	req.CustomerDisplayName = "Acme Two"
	_, err = s.svc.CreateCustomer(s.ctx, testOrgID, req, testUserID)
	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrDuplicate))
	var ce *apperrors.ConflictError
	s.Require().True(errors.As(err, &ce))
	s.Contains(ce.Messages[0], "Email ops@acme.example")
	s.Len(s.customers.savedCustomers, 1)
}

func (s *CustomerServiceTestSuite) existingCustomer() *domain.Customer {
	c := &domain.Customer{
		CustomerID:   "cust-1",
		CustomerType: "Business",
		Party: domain.Party{
			OrganizationID:      testOrgID,
			Kind:                domain.PartyCustomer,
			DisplayName:         "Acme Co",
			Email:               "ops@acme.example",
			TaxType:             domain.TaxTypeNonTax,
			TaxReason:           "Exempt",
			DebitOpeningBalance: dec("500"),
			Status:              domain.StatusActive,
		},
	}
	s.customers.FindCustomerByIDFn = func(ctx context.Context, id string) (*domain.Customer, error) {
		if id == c.CustomerID {
			return c, nil
		}
		return nil, apperrors.ErrNotFound
	}
	// Every created party owns a TrialBalance row; keep the fixture consistent.
	s.tbs.rows = []domain.TrialBalance{{
		TrialBalanceID: "tb-1",
		OrganizationID: testOrgID,
		OperationID:    c.CustomerID,
		DebitAmount:    dec("500"),
	}}
	return c
}

func (s *CustomerServiceTestSuite) TestUpdateCustomer_ExcludesSelfFromDuplicateCheck() {
	s.existingCustomer()
	s.settings.DuplicateCustomerEmail = true

	var gotExclude string
	s.customers.ExistsCustomerWithFieldFn = func(ctx context.Context, q portsrepo.PartyDuplicateQuery) (bool, error) {
		if q.Field == "email" {
			gotExclude = q.ExcludeID
		}
		return false, nil
	}

	req := dto.UpdateCustomerRequest{}
	email := "ops@acme.example"
	req.Email = &email

	_, err := s.svc.UpdateCustomer(s.ctx, testOrgID, "cust-1", req, testUserID)

	s.Require().NoError(err)
	s.Equal("cust-1", gotExclude)
}

func (s *CustomerServiceTestSuite) TestUpdateCustomer_OpeningBalanceSideSwitch() {
	s.existingCustomer()
	s.tbs.rows = []domain.TrialBalance{{
		TrialBalanceID: "tb-1",
		OrganizationID: testOrgID,
		OperationID:    "cust-1",
		DebitAmount:    dec("500"),
	}}

	req := dto.UpdateCustomerRequest{}
	req.CreditOpeningBalance = dec("200")

	updated, err := s.svc.UpdateCustomer(s.ctx, testOrgID, "cust-1", req, testUserID)

	s.Require().NoError(err)
	s.Nil(updated.DebitOpeningBalance)
	s.Require().NotNil(updated.CreditOpeningBalance)

	s.Require().Len(s.tbs.updatedRows, 1)
	row := s.tbs.updatedRows[0]
	s.Nil(row.DebitAmount)
	s.Require().NotNil(row.CreditAmount)
	s.True(row.CreditAmount.Equal(decimal.RequireFromString("200")))
}

func (s *CustomerServiceTestSuite) TestUpdateCustomer_RenamePropagatesToAccount() {
	s.existingCustomer()
	s.accounts.accounts = []domain.Account{{
		ID:             "acc-1",
		OrganizationID: testOrgID,
		AccountID:      "cust-1",
		AccountName:    "Acme Co",
	}}

	newName := "Acme Corporation"
	req := dto.UpdateCustomerRequest{CustomerDisplayName: &newName}

	_, err := s.svc.UpdateCustomer(s.ctx, testOrgID, "cust-1", req, testUserID)

	s.Require().NoError(err)
	s.Require().Len(s.accounts.updatedAccounts, 1)
	s.Equal("Acme Corporation", s.accounts.updatedAccounts[0].AccountName)
}

func (s *CustomerServiceTestSuite) TestUpdateCustomerStatus_RecordsHistory() {
	s.existingCustomer()

	err := s.svc.UpdateCustomerStatus(s.ctx, testOrgID, "cust-1", domain.StatusInactive, testUserID)

	s.Require().NoError(err)
	s.Require().Len(s.customers.statusUpdates, 1)
	s.Equal(domain.StatusInactive, s.customers.statusUpdates[0])
	s.Require().Len(s.histories.entries, 1)
	s.Equal("Customer Status Modified", s.histories.entries[0].Title)
	s.Contains(s.histories.entries[0].Description, "Status changed to Inactive")
}

func (s *CustomerServiceTestSuite) TestGetCustomerByID_WrongOrganizationIsNotFound() {
	s.existingCustomer()

	_, err := s.svc.GetCustomerByID(s.ctx, "org-other", "cust-1")

	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *CustomerServiceTestSuite) TestCreateCustomer_SequencesAccountCodes() {
	s.customers.CountCustomersFn = func(ctx context.Context, organizationID string) (int64, error) {
		return 6, nil
	}

	_, err := s.svc.CreateCustomer(s.ctx, testOrgID, s.createRequest(), testUserID)

	s.Require().NoError(err)
	s.Require().Len(s.customers.savedAccounts, 1)
	s.Equal("CU0007", s.customers.savedAccounts[0].AccountCode)
}

func (s *CustomerServiceTestSuite) TestCreateCustomer_NonTaxClearsTaxIdentifiers() {
	req := s.createRequest() // Non-Tax with an exemption reason
	req.GSTTreatment = "Registered Business - Regular"
	req.GSTIN = "29ABCDE1234F1Z5"
	req.VATNumber = "VAT1234"

	customer, err := s.svc.CreateCustomer(s.ctx, testOrgID, req, testUserID)

	s.Require().NoError(err)
	s.Empty(customer.GSTTreatment)
	s.Empty(customer.GSTIN)
	s.Empty(customer.VATNumber)
	s.Equal("Exempt", customer.TaxReason)

	s.Require().Len(s.customers.savedCustomers, 1)
	saved := s.customers.savedCustomers[0]
	s.Empty(saved.GSTTreatment)
	s.Empty(saved.GSTIN)
	s.Empty(saved.VATTreatment)
	s.Empty(saved.VATNumber)
}

func (s *CustomerServiceTestSuite) TestUpdateCustomer_FailedEntityUpdateLeavesLedgerUntouched() {
	s.existingCustomer()
	s.tbs.rows = []domain.TrialBalance{{
		TrialBalanceID: "tb-1",
		OrganizationID: testOrgID,
		OperationID:    "cust-1",
		DebitAmount:    dec("500"),
	}}
	s.customers.UpdateCustomerFn = func(ctx context.Context, customer domain.Customer) error {
		return errors.New("connection reset")
	}

	req := dto.UpdateCustomerRequest{}
	req.CreditOpeningBalance = dec("200")

	_, err := s.svc.UpdateCustomer(s.ctx, testOrgID, "cust-1", req, testUserID)

	s.Require().Error(err)
	s.Empty(s.tbs.updatedRows)
}

func (s *CustomerServiceTestSuite) TestUpdateCustomer_SwitchToNonTaxDropsStaleGSTIN() {
	c := s.existingCustomer()
	c.TaxType = domain.TaxTypeGST
	c.GSTTreatment = "Registered Business - Regular"
	c.GSTIN = "29ABCDE1234F1Z5"
	c.TaxReason = ""

	req := dto.UpdateCustomerRequest{}
	taxType := "Non-Tax"
	reason := "Exempt"
	req.TaxType = &taxType
	req.TaxReason = &reason

	updated, err := s.svc.UpdateCustomer(s.ctx, testOrgID, "cust-1", req, testUserID)

	s.Require().NoError(err)
	s.Equal(domain.TaxTypeNonTax, updated.TaxType)
	s.Empty(updated.GSTTreatment)
	s.Empty(updated.GSTIN)

	s.Require().Len(s.customers.updatedCustomers, 1)
	s.Empty(s.customers.updatedCustomers[0].GSTIN)
	s.Equal("Exempt", s.customers.updatedCustomers[0].TaxReason)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
