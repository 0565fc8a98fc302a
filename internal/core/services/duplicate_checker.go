package services

import (
	"context"
	"fmt"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
	portsrepo "github.com/ledgerbooks/books_backend/internal/core/ports/repositories"
)

// DuplicateChecker enforces the per-organization duplicate policy. Each of
// the three party fields (display name, email, mobile) has its own settings
// flag; a disabled flag skips that field entirely. All enabled checks run,
// and every match contributes its own message.
type DuplicateChecker struct {
	customerRepo portsrepo.CustomerReader
	supplierRepo portsrepo.SupplierReader
	itemRepo     portsrepo.ItemReader
}

// NewDuplicateChecker creates the checker over the entity readers.
func NewDuplicateChecker(
	customerRepo portsrepo.CustomerReader,
	supplierRepo portsrepo.SupplierReader,
	itemRepo portsrepo.ItemReader,
) *DuplicateChecker {
	return &DuplicateChecker{
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
		itemRepo:     itemRepo,
	}
}

// PartyConflicts returns one message per enabled field whose value already
// exists on another record of the same kind in the organization. excludeID
// is the record being edited; pass "" on create.
func (c *DuplicateChecker) PartyConflicts(ctx context.Context, settings *domain.Settings, p domain.Party, excludeID string) ([]string, error) {
	exists := c.customerRepo.ExistsCustomerWithField
	if p.Kind == domain.PartySupplier {
		exists = c.supplierRepo.ExistsSupplierWithField
	}

	nameFlag, emailFlag, mobileFlag := settings.DuplicateFlags(p.Kind)
	checks := []struct {
		enabled bool
		field   string
		label   string
		value   string
	}{
		{nameFlag, "display_name", "Display Name", p.DisplayName},
		{emailFlag, "email", "Email", p.Email},
		{mobileFlag, "mobile", "Mobile", p.Mobile},
	}

	var msgs []string
	for _, chk := range checks {
		if !chk.enabled || chk.value == "" {
			continue
		}
		found, err := exists(ctx, portsrepo.PartyDuplicateQuery{
			OrganizationID: p.OrganizationID,
			Field:          chk.field,
			Value:          chk.value,
			ExcludeID:      excludeID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to check duplicate %s: %w", chk.field, err)
		}
		if found {
			msgs = append(msgs, fmt.Sprintf("%s with %s %s already exists", p.Kind, chk.label, chk.value))
		}
	}
	return msgs, nil
}

// ItemNameConflicts checks the item-name duplicate policy.
func (c *DuplicateChecker) ItemNameConflicts(ctx context.Context, settings *domain.Settings, organizationID, name, excludeID string) ([]string, error) {
	if !settings.ItemDuplicateName || name == "" {
		return nil, nil
	}
	found, err := c.itemRepo.ExistsItemWithName(ctx, organizationID, name, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check duplicate item name: %w", err)
	}
	if found {
		return []string{fmt.Sprintf("Item with Name %s already exists", name)}, nil
	}
	return nil, nil
}
