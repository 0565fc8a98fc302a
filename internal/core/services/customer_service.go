package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ledgerbooks/books_backend/internal/apperrors"
	"github.com/ledgerbooks/books_backend/internal/core/domain"
	portsrepo "github.com/ledgerbooks/books_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerbooks/books_backend/internal/core/ports/services"
	"github.com/ledgerbooks/books_backend/internal/core/validation"
	"github.com/ledgerbooks/books_backend/internal/dto"
	"github.com/google/uuid"
)

// CustomerService orchestrates the customer write path: reference fetch,
// validation, duplicate check, persistence, ledger sync, history.
type CustomerService struct {
	BaseService
	customerRepo     portsrepo.CustomerRepositoryFacade
	trialBalanceRepo portsrepo.TrialBalanceReader
	historyRepo      portsrepo.HistoryReader
	refs             *ReferenceService
	duplicates       *DuplicateChecker
	ledger           *LedgerService
	recorder         *HistoryRecorder
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(
	customerRepo portsrepo.CustomerRepositoryFacade,
	trialBalanceRepo portsrepo.TrialBalanceReader,
	historyRepo portsrepo.HistoryReader,
	refs *ReferenceService,
	duplicates *DuplicateChecker,
	ledger *LedgerService,
	recorder *HistoryRecorder,
) portssvc.CustomerSvcFacade {
	return &CustomerService{
		customerRepo:     customerRepo,
		trialBalanceRepo: trialBalanceRepo,
		historyRepo:      historyRepo,
		refs:             refs,
		duplicates:       duplicates,
		ledger:           ledger,
		recorder:         recorder,
	}
}

var _ portssvc.CustomerSvcFacade = (*CustomerService)(nil)

// CreateCustomer validates, duplicate-checks and persists a new customer with
// its companion account, opening-balance row and history entries in one
// transaction.
func (s *CustomerService) CreateCustomer(ctx context.Context, organizationID string, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	ref, err := s.refs.Load(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	customer := req.ToDomain()
	customer.OrganizationID = organizationID
	customer.Party.OrganizationID = organizationID
	customer.Party.NormalizeTaxFields()

	if msgs := validation.ValidateParty(customer.Party, customer.CustomerType, ref.ValidationData()); len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs)
	}

	conflicts, err := s.duplicates.PartyConflicts(ctx, ref.Settings, customer.Party, "")
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, apperrors.NewConflictError(conflicts)
	}

	count, err := s.customerRepo.CountCustomers(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	now := time.Now()
	customer.CustomerID = uuid.NewString()
	customer.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	account, tb := BuildPartyLedger(customer.Party, customer.CustomerID, count, userID, now)
	userName := s.recorder.ActorName(ctx, userID)
	histories := s.recorder.PartyCreated(customer.Party, customer.CustomerID, account, userID, userName, now)

	if err := s.customerRepo.SaveCustomerWithLedger(ctx, customer, account, tb, histories); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("display_name", customer.DisplayName))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.LogInfo(ctx, "Customer created",
		slog.String("customer_id", customer.CustomerID),
		slog.String("account_code", account.AccountCode))
	return &customer, nil
}

// UpdateCustomer applies a field-level patch and keeps the companion account
// and opening-balance row consistent.
func (s *CustomerService) UpdateCustomer(ctx context.Context, organizationID, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error) {
	customer, err := s.findCustomer(ctx, organizationID, customerID)
	if err != nil {
		return nil, err
	}

	ref, err := s.refs.Load(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	oldName := customer.DisplayName
	if req.CustomerDisplayName != nil {
		customer.DisplayName = *req.CustomerDisplayName
	}
	if req.CustomerType != nil {
		customer.CustomerType = *req.CustomerType
	}
	req.PartyPatch.ApplyTo(&customer.Party)
	customer.Party.NormalizeTaxFields()

	if msgs := validation.ValidateParty(customer.Party, customer.CustomerType, ref.ValidationData()); len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs)
	}

	conflicts, err := s.duplicates.PartyConflicts(ctx, ref.Settings, customer.Party, customerID)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, apperrors.NewConflictError(conflicts)
	}

	// Entity row first; the ledger sync only runs once the record is saved.
	now := time.Now()
	customer.LastUpdatedAt = now
	customer.LastUpdatedBy = userID
	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	if err := s.ledger.SyncOpeningBalance(ctx, &customer.Party, customerID, userID, now); err != nil {
		return nil, err
	}

	if err := s.ledger.SyncPartyRename(ctx, domain.PartyCustomer, organizationID, customerID, oldName, customer.DisplayName, userID, now); err != nil {
		return nil, err
	}

	userName := s.recorder.ActorName(ctx, userID)
	entry := s.recorder.PartyModified(customer.Party, customerID, userID, userName, now)
	if err := s.recorder.Record(ctx, entry); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Customer updated", slog.String("customer_id", customerID))
	return customer, nil
}

// UpdateCustomerStatus flips the lifecycle status and records history.
func (s *CustomerService) UpdateCustomerStatus(ctx context.Context, organizationID, customerID string, status domain.Status, userID string) error {
	customer, err := s.findCustomer(ctx, organizationID, customerID)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := s.customerRepo.UpdateCustomerStatus(ctx, customerID, status, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update customer status", slog.String("customer_id", customerID))
		return fmt.Errorf("failed to update customer status: %w", err)
	}

	userName := s.recorder.ActorName(ctx, userID)
	entry := s.recorder.PartyStatusModified(customer.Party, customerID, status, userID, userName, now)
	if err := s.recorder.Record(ctx, entry); err != nil {
		return err
	}

	s.LogInfo(ctx, "Customer status updated",
		slog.String("customer_id", customerID),
		slog.String("status", string(status)))
	return nil
}

// GetCustomerByID retrieves one customer scoped to the organization.
func (s *CustomerService) GetCustomerByID(ctx context.Context, organizationID, customerID string) (*domain.Customer, error) {
	return s.findCustomer(ctx, organizationID, customerID)
}

// ListCustomers retrieves a paginated customer list.
func (s *CustomerService) ListCustomers(ctx context.Context, organizationID string, limit, offset int) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	return customers, nil
}

// GetCustomerTransactions returns the ledger postings recorded for a customer.
func (s *CustomerService) GetCustomerTransactions(ctx context.Context, organizationID, customerID string) ([]domain.TrialBalance, error) {
	if _, err := s.findCustomer(ctx, organizationID, customerID); err != nil {
		return nil, err
	}
	rows, err := s.trialBalanceRepo.ListTrialBalancesByOperationID(ctx, organizationID, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer transactions: %w", err)
	}
	if rows == nil {
		rows = []domain.TrialBalance{}
	}
	return rows, nil
}

// GetCustomerHistory returns the audit trail for a customer, newest first.
func (s *CustomerService) GetCustomerHistory(ctx context.Context, organizationID, customerID string) ([]domain.History, error) {
	if _, err := s.findCustomer(ctx, organizationID, customerID); err != nil {
		return nil, err
	}
	entries, err := s.historyRepo.ListHistoryByParty(ctx, domain.PartyCustomer, organizationID, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer history: %w", err)
	}
	if entries == nil {
		entries = []domain.History{}
	}
	return entries, nil
}

// findCustomer loads a customer and enforces the organization boundary. A
// customer from another organization is indistinguishable from a missing one.
func (s *CustomerService) findCustomer(ctx context.Context, organizationID, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return customer, nil
}
