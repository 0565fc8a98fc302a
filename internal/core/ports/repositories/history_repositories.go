package repositories

import (
	"context"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
)

// HistoryReader defines read operations for the audit trail.
type HistoryReader interface {
	// ListHistoryByParty retrieves every entry for one party, newest first.
	ListHistoryByParty(ctx context.Context, kind domain.PartyKind, organizationID, partyID string) ([]domain.History, error)
}

// HistoryWriter appends audit entries. There are deliberately no update or
// delete operations: history is immutable.
type HistoryWriter interface {
	SaveHistory(ctx context.Context, entry domain.History) error
}

// HistoryRepositoryFacade combines the history interfaces.
type HistoryRepositoryFacade interface {
	HistoryReader
	HistoryWriter
}
