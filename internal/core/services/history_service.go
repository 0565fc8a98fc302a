package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
	portsrepo "github.com/ledgerbooks/books_backend/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// HistoryRecorder builds and appends the human-readable audit trail. Entries
// are immutable; there is no update path on purpose.
type HistoryRecorder struct {
	BaseService
	historyRepo portsrepo.HistoryWriter
	userRepo    portsrepo.UserReader
}

// NewHistoryRecorder creates the recorder.
func NewHistoryRecorder(historyRepo portsrepo.HistoryWriter, userRepo portsrepo.UserReader) *HistoryRecorder {
	return &HistoryRecorder{historyRepo: historyRepo, userRepo: userRepo}
}

// ActorName resolves the display name of the acting user. Falls back to the
// raw id so a missing user row never blocks the write it is auditing.
func (r *HistoryRecorder) ActorName(ctx context.Context, userID string) string {
	user, err := r.userRepo.FindUserByID(ctx, userID)
	if err != nil || user == nil {
		return userID
	}
	return user.Name
}

// Record appends the given entries in order.
func (r *HistoryRecorder) Record(ctx context.Context, entries ...domain.History) error {
	for _, e := range entries {
		if err := r.historyRepo.SaveHistory(ctx, e); err != nil {
			return fmt.Errorf("failed to save history entry %q: %w", e.Title, err)
		}
	}
	return nil
}

// PartyCreated builds the two entries a successful party create produces:
// the "<Kind> Added" entry describing the record, and the "<Kind> Account
// Created" entry for the generated companion account.
func (r *HistoryRecorder) PartyCreated(p domain.Party, partyID string, account domain.Account, userID, userName string, now time.Time) []domain.History {
	added := r.newEntry(p, partyID, userID, userName, now)
	added.Title = partyTitle(p.Kind, "Added")
	added.Description = partyDescription(p, "Created by "+userName)

	accountEntry := r.newEntry(p, partyID, userID, userName, now)
	accountEntry.Title = partyTitle(p.Kind, "Account Created")
	accountEntry.Description = fmt.Sprintf("Account %s (%s) created under %s, Created by %s",
		account.AccountName, account.AccountCode, account.AccountSubhead, userName)

	return []domain.History{added, accountEntry}
}

// PartyModified builds the entry for a data edit.
func (r *HistoryRecorder) PartyModified(p domain.Party, partyID string, userID, userName string, now time.Time) domain.History {
	e := r.newEntry(p, partyID, userID, userName, now)
	e.Title = partyTitle(p.Kind, "Data Modified")
	e.Description = partyDescription(p, "Modified by "+userName)
	return e
}

// PartyStatusModified builds the entry for a status flip.
func (r *HistoryRecorder) PartyStatusModified(p domain.Party, partyID string, status domain.Status, userID, userName string, now time.Time) domain.History {
	e := r.newEntry(p, partyID, userID, userName, now)
	e.Title = partyTitle(p.Kind, "Status Modified")
	e.Description = fmt.Sprintf("Status changed to %s, Modified by %s", status, userName)
	return e
}

func (r *HistoryRecorder) newEntry(p domain.Party, partyID, userID, userName string, now time.Time) domain.History {
	return domain.History{
		HistoryID:        uuid.NewString(),
		OrganizationID:   p.OrganizationID,
		PartyKind:        p.Kind,
		PartyID:          partyID,
		PartyDisplayName: p.DisplayName,
		OperationID:      partyID,
		ActingUserID:     userID,
		ActingUserName:   userName,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}

func partyTitle(kind domain.PartyKind, event string) string {
	return fmt.Sprintf("%s %s", kind, event)
}

// partyDescription renders the record the way the audit trail shows it: the
// tax block for the party's tax type, the opening-balance summary, then the
// actor suffix ("Created by X" / "Modified by X").
func partyDescription(p domain.Party, actorSuffix string) string {
	parts := []string{}
	if tax := partyTaxDescription(p); tax != "" {
		parts = append(parts, tax)
	}
	parts = append(parts, openingBalanceSummary(p), actorSuffix)
	return strings.Join(parts, ", ")
}

func partyTaxDescription(p domain.Party) string {
	switch p.TaxType {
	case domain.TaxTypeGST:
		return fmt.Sprintf("GST Treatment: %s, GSTIN: %s, State: %s", p.GSTTreatment, p.GSTIN, partyState(p))
	case domain.TaxTypeVAT:
		return fmt.Sprintf("VAT Number: %s, State: %s", p.VATNumber, partyState(p))
	case domain.TaxTypeNonTax:
		return fmt.Sprintf("Tax Preference: tax exemption (%s)", p.TaxReason)
	}
	return ""
}

func partyState(p domain.Party) string {
	if p.Kind == domain.PartySupplier && p.SourceOfSupply != "" {
		return p.SourceOfSupply
	}
	if p.PlaceOfSupply != "" {
		return p.PlaceOfSupply
	}
	return p.BillingAddress.StateProvince
}

func openingBalanceSummary(p domain.Party) string {
	debit, credit := p.OpeningBalanceSides()
	switch {
	case debit:
		return fmt.Sprintf("Opening Balance (Debit): %s", p.DebitOpeningBalance.String())
	case credit:
		return fmt.Sprintf("Opening Balance (Credit): %s", p.CreditOpeningBalance.String())
	default:
		return "Opening Balance: 0"
	}
}
