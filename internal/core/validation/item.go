package validation

import (
	"fmt"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
)

// ValidateItem runs the item rule set, including the account-structure and
// HSN/SAC digit-length rules.
func ValidateItem(item domain.Item, ref ItemReferenceData) []string {
	var errs []string

	errs = checkRequired(errs, "Name", item.Name)
	errs = checkEnum(errs, "Item Type", string(item.Type), []string{
		string(domain.ItemTypeGoods), string(domain.ItemTypeService),
	})
	errs = checkAlphanum(errs, "SKU", item.SKU)

	errs = validateItemTax(errs, item, ref)
	errs = validateHSN(errs, item, ref.Settings)
	errs = validateBMCR(errs, item, ref.Settings)
	errs = validateItemAccounts(errs, item, ref)

	return errs
}

func validateItemTax(errs []string, item domain.Item, ref ItemReferenceData) []string {
	if item.TaxPreference == "" {
		return append(errs, "Tax Preference is required")
	}

	switch item.TaxPreference {
	case domain.TaxPreferenceTaxable:
		if item.TaxRate == "" {
			errs = append(errs, "Tax Rate is required for taxable items")
		} else if !ref.validTaxRate(item.TaxRate) {
			errs = append(errs, fmt.Sprintf("Invalid Tax Rate: %s", item.TaxRate))
		}
	case domain.TaxPreferenceNonTaxable:
		errs = checkRequired(errs, "Exemption Reason", item.ExemptionReason)
		if item.TaxRate != "" {
			errs = append(errs, fmt.Sprintf("Invalid Tax Rate: %s must not be set for non-taxable items", item.TaxRate))
		}
	default:
		errs = append(errs, fmt.Sprintf("Invalid Tax Preference: %s", item.TaxPreference))
	}

	// Non-Tax organizations always need the exemption reason.
	if ref.OrgTaxType == domain.TaxTypeNonTax {
		errs = checkRequired(errs, "Exemption Reason", item.ExemptionReason)
	}

	return errs
}

func validateHSN(errs []string, item domain.Item, settings domain.Settings) []string {
	if item.HSNOrSAC == "" {
		return errs
	}
	errs = checkNumeric(errs, "HSN/SAC", item.HSNOrSAC)
	if settings.HSNSACEnabled && settings.HSNDigits > 0 && len(item.HSNOrSAC) > settings.HSNDigits {
		errs = append(errs, fmt.Sprintf("Invalid HSN/SAC: %s exceeds %d digits", item.HSNOrSAC, settings.HSNDigits))
	}
	return errs
}

func validateBMCR(errs []string, item domain.Item, settings domain.Settings) []string {
	errs = checkEnum(errs, "Brand", item.Brand, settings.Brands)
	errs = checkEnum(errs, "Manufacturer", item.Manufacturer, settings.Manufacturers)
	errs = checkEnum(errs, "Category", item.Category, settings.Categories)
	errs = checkEnum(errs, "Rack", item.Rack, settings.Racks)
	return errs
}

// validateItemAccounts enforces the account-structure rule: a sales account
// must be Asset/Income/Sales, a purchase account Liability/Expenses with
// subhead Expense or Cost of Goods Sold. A mismatch is a single error naming
// the account.
func validateItemAccounts(errs []string, item domain.Item, ref ItemReferenceData) []string {
	if item.SalesAccountID != "" {
		acc := ref.SalesAccount
		if acc == nil ||
			acc.AccountGroup != domain.SalesAccountGroup ||
			acc.AccountHead != domain.SalesAccountHead ||
			acc.AccountSubhead != domain.SalesAccountSubhead {
			errs = append(errs, fmt.Sprintf("Invalid Sales Account: %s", item.SalesAccountID))
		}
	}
	if item.PurchaseAccountID != "" {
		acc := ref.PurchaseAccount
		if acc == nil ||
			acc.AccountGroup != domain.PurchaseAccountGroup ||
			acc.AccountHead != domain.PurchaseAccountHead ||
			!domain.Contains(domain.PurchaseAccountSubheads, acc.AccountSubhead) {
			errs = append(errs, fmt.Sprintf("Invalid Purchase Account: %s", item.PurchaseAccountID))
		}
	}
	return errs
}
