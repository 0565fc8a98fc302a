package services_test

import (
	"context"
	"time"

	"github.com/ledgerbooks/books_backend/internal/apperrors"
	"github.com/ledgerbooks/books_backend/internal/core/domain"
	portsrepo "github.com/ledgerbooks/books_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// Repository fakes for the service tests. Each method delegates to its Fn
// override when set; the defaults record writes so tests can assert on what
// was (or was not) persisted.

type fakeCustomerRepo struct {
	FindCustomerByIDFn        func(ctx context.Context, customerID string) (*domain.Customer, error)
	CountCustomersFn          func(ctx context.Context, organizationID string) (int64, error)
	ExistsCustomerWithFieldFn func(ctx context.Context, q portsrepo.PartyDuplicateQuery) (bool, error)
	UpdateCustomerFn          func(ctx context.Context, customer domain.Customer) error

	savedCustomers     []domain.Customer
	savedAccounts      []domain.Account
	savedTrialBalances []domain.TrialBalance
	savedHistories     []domain.History
	updatedCustomers   []domain.Customer
	statusUpdates      []domain.Status
}

func (f *fakeCustomerRepo) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	if f.FindCustomerByIDFn != nil {
		return f.FindCustomerByIDFn(ctx, customerID)
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeCustomerRepo) ListCustomers(ctx context.Context, organizationID string, limit, offset int) ([]domain.Customer, error) {
	return f.savedCustomers, nil
}

func (f *fakeCustomerRepo) CountCustomers(ctx context.Context, organizationID string) (int64, error) {
	if f.CountCustomersFn != nil {
		return f.CountCustomersFn(ctx, organizationID)
	}
	return int64(len(f.savedCustomers)), nil
}

func (f *fakeCustomerRepo) ExistsCustomerWithField(ctx context.Context, q portsrepo.PartyDuplicateQuery) (bool, error) {
	if f.ExistsCustomerWithFieldFn != nil {
		return f.ExistsCustomerWithFieldFn(ctx, q)
	}
	return false, nil
}

func (f *fakeCustomerRepo) SaveCustomerWithLedger(ctx context.Context, customer domain.Customer, account domain.Account, tb domain.TrialBalance, histories []domain.History) error {
	f.savedCustomers = append(f.savedCustomers, customer)
	f.savedAccounts = append(f.savedAccounts, account)
	f.savedTrialBalances = append(f.savedTrialBalances, tb)
	f.savedHistories = append(f.savedHistories, histories...)
	return nil
}

func (f *fakeCustomerRepo) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	if f.UpdateCustomerFn != nil {
		return f.UpdateCustomerFn(ctx, customer)
	}
	f.updatedCustomers = append(f.updatedCustomers, customer)
	return nil
}

func (f *fakeCustomerRepo) UpdateCustomerStatus(ctx context.Context, customerID string, status domain.Status, userID string, now time.Time) error {
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

type fakeSupplierRepo struct {
	FindSupplierByIDFn        func(ctx context.Context, supplierID string) (*domain.Supplier, error)
	CountSuppliersFn          func(ctx context.Context, organizationID string) (int64, error)
	ExistsSupplierWithFieldFn func(ctx context.Context, q portsrepo.PartyDuplicateQuery) (bool, error)

	savedSuppliers     []domain.Supplier
	savedAccounts      []domain.Account
	savedTrialBalances []domain.TrialBalance
	savedHistories     []domain.History
	updatedSuppliers   []domain.Supplier
}

func (f *fakeSupplierRepo) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	if f.FindSupplierByIDFn != nil {
		return f.FindSupplierByIDFn(ctx, supplierID)
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeSupplierRepo) ListSuppliers(ctx context.Context, organizationID string, limit, offset int) ([]domain.Supplier, error) {
	return f.savedSuppliers, nil
}

func (f *fakeSupplierRepo) CountSuppliers(ctx context.Context, organizationID string) (int64, error) {
	if f.CountSuppliersFn != nil {
		return f.CountSuppliersFn(ctx, organizationID)
	}
	return int64(len(f.savedSuppliers)), nil
}

func (f *fakeSupplierRepo) ExistsSupplierWithField(ctx context.Context, q portsrepo.PartyDuplicateQuery) (bool, error) {
	if f.ExistsSupplierWithFieldFn != nil {
		return f.ExistsSupplierWithFieldFn(ctx, q)
	}
	return false, nil
}

func (f *fakeSupplierRepo) SaveSupplierWithLedger(ctx context.Context, supplier domain.Supplier, account domain.Account, tb domain.TrialBalance, histories []domain.History) error {
	f.savedSuppliers = append(f.savedSuppliers, supplier)
	f.savedAccounts = append(f.savedAccounts, account)
	f.savedTrialBalances = append(f.savedTrialBalances, tb)
	f.savedHistories = append(f.savedHistories, histories...)
	return nil
}

func (f *fakeSupplierRepo) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	f.updatedSuppliers = append(f.updatedSuppliers, supplier)
	return nil
}

func (f *fakeSupplierRepo) UpdateSupplierStatus(ctx context.Context, supplierID string, status domain.Status, userID string, now time.Time) error {
	return nil
}

type fakeItemRepo struct {
	FindItemByIDFn       func(ctx context.Context, itemID string) (*domain.Item, error)
	ExistsItemWithNameFn func(ctx context.Context, organizationID, name, excludeID string) (bool, error)

	savedItems   []domain.Item
	savedTracks  []domain.ItemTrack
	updatedItems []domain.Item
	deletedItems []string
}

func (f *fakeItemRepo) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	if f.FindItemByIDFn != nil {
		return f.FindItemByIDFn(ctx, itemID)
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeItemRepo) ListItems(ctx context.Context, organizationID string, limit, offset int) ([]domain.Item, error) {
	return f.savedItems, nil
}

func (f *fakeItemRepo) ExistsItemWithName(ctx context.Context, organizationID, name, excludeID string) (bool, error) {
	if f.ExistsItemWithNameFn != nil {
		return f.ExistsItemWithNameFn(ctx, organizationID, name, excludeID)
	}
	return false, nil
}

func (f *fakeItemRepo) SaveItemWithTrack(ctx context.Context, item domain.Item, track *domain.ItemTrack) error {
	f.savedItems = append(f.savedItems, item)
	if track != nil {
		f.savedTracks = append(f.savedTracks, *track)
	}
	return nil
}

func (f *fakeItemRepo) UpdateItem(ctx context.Context, item domain.Item) error {
	f.updatedItems = append(f.updatedItems, item)
	return nil
}

func (f *fakeItemRepo) UpdateItemStatus(ctx context.Context, itemID string, status domain.Status, userID string, now time.Time) error {
	return nil
}

func (f *fakeItemRepo) DeleteItemWithTracks(ctx context.Context, organizationID, itemID string) error {
	f.deletedItems = append(f.deletedItems, itemID)
	return nil
}

type fakeAccountRepo struct {
	accounts []domain.Account

	updatedAccounts []domain.Account
}

func (f *fakeAccountRepo) FindAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	for i := range f.accounts {
		if f.accounts[i].ID == id {
			return &f.accounts[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeAccountRepo) FindAccountByPartyID(ctx context.Context, organizationID, partyID string) (*domain.Account, error) {
	for i := range f.accounts {
		if f.accounts[i].OrganizationID == organizationID && f.accounts[i].AccountID == partyID {
			return &f.accounts[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeAccountRepo) FindAccountsByName(ctx context.Context, organizationID, name string) ([]domain.Account, error) {
	var out []domain.Account
	for _, a := range f.accounts {
		if a.OrganizationID == organizationID && a.AccountName == name {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) SaveAccount(ctx context.Context, account domain.Account) error {
	f.accounts = append(f.accounts, account)
	return nil
}

func (f *fakeAccountRepo) UpdateAccount(ctx context.Context, account domain.Account) error {
	f.updatedAccounts = append(f.updatedAccounts, account)
	for i := range f.accounts {
		if f.accounts[i].ID == account.ID {
			f.accounts[i] = account
		}
	}
	return nil
}

type fakeTrialBalanceRepo struct {
	rows []domain.TrialBalance

	updatedRows []domain.TrialBalance
}

func (f *fakeTrialBalanceRepo) FindTrialBalanceByOperationID(ctx context.Context, organizationID, operationID string) (*domain.TrialBalance, error) {
	for i := range f.rows {
		if f.rows[i].OrganizationID == organizationID && f.rows[i].OperationID == operationID {
			return &f.rows[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeTrialBalanceRepo) ListTrialBalancesByOperationID(ctx context.Context, organizationID, operationID string) ([]domain.TrialBalance, error) {
	var out []domain.TrialBalance
	for _, r := range f.rows {
		if r.OrganizationID == organizationID && r.OperationID == operationID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeTrialBalanceRepo) SaveTrialBalance(ctx context.Context, tb domain.TrialBalance) error {
	f.rows = append(f.rows, tb)
	return nil
}

func (f *fakeTrialBalanceRepo) UpdateTrialBalance(ctx context.Context, tb domain.TrialBalance) error {
	f.updatedRows = append(f.updatedRows, tb)
	for i := range f.rows {
		if f.rows[i].TrialBalanceID == tb.TrialBalanceID {
			f.rows[i] = tb
		}
	}
	return nil
}

type fakeItemTrackRepo struct {
	tracks []domain.ItemTrack

	savedTracks   []domain.ItemTrack
	updatedTracks []domain.ItemTrack
}

func (f *fakeItemTrackRepo) FindTracksByItemAndAction(ctx context.Context, organizationID, itemID, action string) ([]domain.ItemTrack, error) {
	var out []domain.ItemTrack
	for _, t := range f.tracks {
		if t.OrganizationID == organizationID && t.ItemID == itemID && t.Action == action {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeItemTrackRepo) CountTracksByItem(ctx context.Context, organizationID, itemID string) (int64, error) {
	var n int64
	for _, t := range f.tracks {
		if t.OrganizationID == organizationID && t.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

func (f *fakeItemTrackRepo) CurrentStock(ctx context.Context, organizationID, itemID string) (decimal.Decimal, error) {
	stock := decimal.Zero
	for _, t := range f.tracks {
		if t.OrganizationID == organizationID && t.ItemID == itemID {
			stock = stock.Add(t.DebitQuantity).Sub(t.CreditQuantity)
		}
	}
	return stock, nil
}

func (f *fakeItemTrackRepo) SaveItemTrack(ctx context.Context, track domain.ItemTrack) error {
	f.tracks = append(f.tracks, track)
	f.savedTracks = append(f.savedTracks, track)
	return nil
}

func (f *fakeItemTrackRepo) UpdateItemTrack(ctx context.Context, track domain.ItemTrack) error {
	f.updatedTracks = append(f.updatedTracks, track)
	for i := range f.tracks {
		if f.tracks[i].ItemTrackID == track.ItemTrackID {
			f.tracks[i] = track
		}
	}
	return nil
}

type fakeHistoryRepo struct {
	entries []domain.History
}

func (f *fakeHistoryRepo) ListHistoryByParty(ctx context.Context, kind domain.PartyKind, organizationID, partyID string) ([]domain.History, error) {
	var out []domain.History
	for _, e := range f.entries {
		if e.PartyKind == kind && e.OrganizationID == organizationID && e.PartyID == partyID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) SaveHistory(ctx context.Context, entry domain.History) error {
	f.entries = append(f.entries, entry)
	return nil
}

type fakeOrganizationRepo struct {
	org *domain.Organization

	savedOrgs []domain.Organization
}

func (f *fakeOrganizationRepo) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	if f.org == nil || f.org.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return f.org, nil
}

func (f *fakeOrganizationRepo) SaveOrganization(ctx context.Context, org domain.Organization) error {
	f.savedOrgs = append(f.savedOrgs, org)
	return nil
}

func (f *fakeOrganizationRepo) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	return nil
}

type fakeSettingsRepo struct {
	settings *domain.Settings

	savedSettings   []domain.Settings
	updatedSettings []domain.Settings
}

func (f *fakeSettingsRepo) FindSettingsByOrganizationID(ctx context.Context, organizationID string) (*domain.Settings, error) {
	if f.settings == nil || f.settings.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) SaveSettings(ctx context.Context, settings domain.Settings) error {
	f.savedSettings = append(f.savedSettings, settings)
	return nil
}

func (f *fakeSettingsRepo) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	f.updatedSettings = append(f.updatedSettings, settings)
	return nil
}

type fakeCurrencyRepo struct {
	currencies []domain.Currency

	savedCurrencies []domain.Currency
}

func (f *fakeCurrencyRepo) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	for i := range f.currencies {
		if f.currencies[i].CurrencyID == currencyID {
			return &f.currencies[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeCurrencyRepo) ListCurrencies(ctx context.Context, organizationID string) ([]domain.Currency, error) {
	return f.currencies, nil
}

func (f *fakeCurrencyRepo) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	f.savedCurrencies = append(f.savedCurrencies, currency)
	return nil
}

type fakeTaxRateRepo struct {
	rates []domain.TaxRate
}

func (f *fakeTaxRateRepo) ListTaxRates(ctx context.Context, organizationID string) ([]domain.TaxRate, error) {
	return f.rates, nil
}

type fakeUserRepo struct {
	users []domain.User

	refreshHash   string
	refreshExpiry time.Time
}

func (f *fakeUserRepo) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].UserID == userID {
			return &f.users[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) FindRefreshToken(ctx context.Context, userID string) (string, time.Time, error) {
	return f.refreshHash, f.refreshExpiry, nil
}

func (f *fakeUserRepo) SaveUser(ctx context.Context, user domain.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) UpdateRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiry time.Time) error {
	f.refreshHash = refreshTokenHash
	f.refreshExpiry = expiry
	return nil
}

func (f *fakeUserRepo) ClearRefreshToken(ctx context.Context, userID string) error {
	f.refreshHash = ""
	f.refreshExpiry = time.Time{}
	return nil
}
