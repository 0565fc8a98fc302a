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

// SupplierService mirrors the customer write path on the payables side. The
// notable difference is the rename propagation: supplier account renames
// match by the old display name rather than the party link.
type SupplierService struct {
	BaseService
	supplierRepo     portsrepo.SupplierRepositoryFacade
	trialBalanceRepo portsrepo.TrialBalanceReader
	historyRepo      portsrepo.HistoryReader
	refs             *ReferenceService
	duplicates       *DuplicateChecker
	ledger           *LedgerService
	recorder         *HistoryRecorder
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(
	supplierRepo portsrepo.SupplierRepositoryFacade,
	trialBalanceRepo portsrepo.TrialBalanceReader,
	historyRepo portsrepo.HistoryReader,
	refs *ReferenceService,
	duplicates *DuplicateChecker,
	ledger *LedgerService,
	recorder *HistoryRecorder,
) portssvc.SupplierSvcFacade {
	return &SupplierService{
		supplierRepo:     supplierRepo,
		trialBalanceRepo: trialBalanceRepo,
		historyRepo:      historyRepo,
		refs:             refs,
		duplicates:       duplicates,
		ledger:           ledger,
		recorder:         recorder,
	}
}

var _ portssvc.SupplierSvcFacade = (*SupplierService)(nil)

// CreateSupplier validates, duplicate-checks and persists a new supplier with
// its ledger artifacts in one transaction.
func (s *SupplierService) CreateSupplier(ctx context.Context, organizationID string, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error) {
	ref, err := s.refs.Load(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	supplier := req.ToDomain()
	supplier.OrganizationID = organizationID
	supplier.Party.OrganizationID = organizationID
	supplier.Party.NormalizeTaxFields()

	if msgs := validation.ValidateParty(supplier.Party, "", ref.ValidationData()); len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs)
	}

	conflicts, err := s.duplicates.PartyConflicts(ctx, ref.Settings, supplier.Party, "")
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, apperrors.NewConflictError(conflicts)
	}

	count, err := s.supplierRepo.CountSuppliers(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count suppliers: %w", err)
	}

	now := time.Now()
	supplier.SupplierID = uuid.NewString()
	supplier.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	account, tb := BuildPartyLedger(supplier.Party, supplier.SupplierID, count, userID, now)
	userName := s.recorder.ActorName(ctx, userID)
	histories := s.recorder.PartyCreated(supplier.Party, supplier.SupplierID, account, userID, userName, now)

	if err := s.supplierRepo.SaveSupplierWithLedger(ctx, supplier, account, tb, histories); err != nil {
		s.LogError(ctx, err, "Failed to save supplier", slog.String("display_name", supplier.DisplayName))
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	s.LogInfo(ctx, "Supplier created",
		slog.String("supplier_id", supplier.SupplierID),
		slog.String("account_code", account.AccountCode))
	return &supplier, nil
}

// UpdateSupplier applies a field-level patch and keeps the ledger artifacts
// consistent, including the bulk account rename on display-name change.
func (s *SupplierService) UpdateSupplier(ctx context.Context, organizationID, supplierID string, req dto.UpdateSupplierRequest, userID string) (*domain.Supplier, error) {
	supplier, err := s.findSupplier(ctx, organizationID, supplierID)
	if err != nil {
		return nil, err
	}

	ref, err := s.refs.Load(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	oldName := supplier.DisplayName
	if req.SupplierDisplayName != nil {
		supplier.DisplayName = *req.SupplierDisplayName
	}
	req.PartyPatch.ApplyTo(&supplier.Party)
	supplier.Party.NormalizeTaxFields()

	if msgs := validation.ValidateParty(supplier.Party, "", ref.ValidationData()); len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs)
	}

	conflicts, err := s.duplicates.PartyConflicts(ctx, ref.Settings, supplier.Party, supplierID)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, apperrors.NewConflictError(conflicts)
	}

	// Entity row first; the ledger sync only runs once the record is saved.
	now := time.Now()
	supplier.LastUpdatedAt = now
	supplier.LastUpdatedBy = userID
	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		s.LogError(ctx, err, "Failed to update supplier", slog.String("supplier_id", supplierID))
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	if err := s.ledger.SyncOpeningBalance(ctx, &supplier.Party, supplierID, userID, now); err != nil {
		return nil, err
	}

	if err := s.ledger.SyncPartyRename(ctx, domain.PartySupplier, organizationID, supplierID, oldName, supplier.DisplayName, userID, now); err != nil {
		return nil, err
	}

	userName := s.recorder.ActorName(ctx, userID)
	entry := s.recorder.PartyModified(supplier.Party, supplierID, userID, userName, now)
	if err := s.recorder.Record(ctx, entry); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Supplier updated", slog.String("supplier_id", supplierID))
	return supplier, nil
}

// UpdateSupplierStatus flips the lifecycle status and records history.
func (s *SupplierService) UpdateSupplierStatus(ctx context.Context, organizationID, supplierID string, status domain.Status, userID string) error {
	supplier, err := s.findSupplier(ctx, organizationID, supplierID)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := s.supplierRepo.UpdateSupplierStatus(ctx, supplierID, status, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update supplier status", slog.String("supplier_id", supplierID))
		return fmt.Errorf("failed to update supplier status: %w", err)
	}

	userName := s.recorder.ActorName(ctx, userID)
	entry := s.recorder.PartyStatusModified(supplier.Party, supplierID, status, userID, userName, now)
	if err := s.recorder.Record(ctx, entry); err != nil {
		return err
	}

	s.LogInfo(ctx, "Supplier status updated",
		slog.String("supplier_id", supplierID),
		slog.String("status", string(status)))
	return nil
}

// GetSupplierByID retrieves one supplier scoped to the organization.
func (s *SupplierService) GetSupplierByID(ctx context.Context, organizationID, supplierID string) (*domain.Supplier, error) {
	return s.findSupplier(ctx, organizationID, supplierID)
}

// ListSuppliers retrieves a paginated supplier list.
func (s *SupplierService) ListSuppliers(ctx context.Context, organizationID string, limit, offset int) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	if suppliers == nil {
		suppliers = []domain.Supplier{}
	}
	return suppliers, nil
}

// GetSupplierTransactions returns the ledger postings recorded for a supplier.
func (s *SupplierService) GetSupplierTransactions(ctx context.Context, organizationID, supplierID string) ([]domain.TrialBalance, error) {
	if _, err := s.findSupplier(ctx, organizationID, supplierID); err != nil {
		return nil, err
	}
	rows, err := s.trialBalanceRepo.ListTrialBalancesByOperationID(ctx, organizationID, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to list supplier transactions: %w", err)
	}
	if rows == nil {
		rows = []domain.TrialBalance{}
	}
	return rows, nil
}

// GetSupplierHistory returns the audit trail for a supplier, newest first.
func (s *SupplierService) GetSupplierHistory(ctx context.Context, organizationID, supplierID string) ([]domain.History, error) {
	if _, err := s.findSupplier(ctx, organizationID, supplierID); err != nil {
		return nil, err
	}
	entries, err := s.historyRepo.ListHistoryByParty(ctx, domain.PartySupplier, organizationID, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to list supplier history: %w", err)
	}
	if entries == nil {
		entries = []domain.History{}
	}
	return entries, nil
}

func (s *SupplierService) findSupplier(ctx context.Context, organizationID, supplierID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if supplier.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return supplier, nil
}
