package validation

import (
	"fmt"
	"strconv"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
)

// MsgOpeningBalanceExclusive is the mutual-exclusivity message for the two
// opening-balance sides.
const MsgOpeningBalanceExclusive = "Invalid Opening Balance: debit and credit opening balance cannot both be set"

// ValidateParty runs the full customer/supplier rule set. Customer and
// Supplier share the rule set; kind-specific fields are gated inside.
func ValidateParty(p domain.Party, customerType string, ref ReferenceData) []string {
	var errs []string

	errs = checkRequired(errs, "Display Name", p.DisplayName)

	errs = checkEnum(errs, "Salutation", p.Salutation, domain.Salutations)
	if p.Kind == domain.PartyCustomer {
		errs = checkEnum(errs, "Customer Type", customerType, domain.CustomerTypes)
	}

	errs = checkAlpha(errs, "First Name", p.FirstName)
	errs = checkAlpha(errs, "Last Name", p.LastName)

	errs = checkEmail(errs, "Email", p.Email)
	errs = checkNumeric(errs, "Mobile", p.Mobile)
	errs = checkNumeric(errs, "Work Phone", p.WorkPhone)
	errs = checkURL(errs, "Website", p.Website)
	errs = checkAlphanum(errs, "PAN", p.PAN)

	errs = validateOpeningBalance(errs, p)
	errs = validateInterest(errs, p.InterestPercentage)

	errs = validateTaxFields(errs, p, ref)
	errs = validateGeography(errs, p, ref)

	if p.CurrencyID != "" && !ref.validCurrency(p.CurrencyID) {
		errs = append(errs, fmt.Sprintf("Invalid Currency: %s", p.CurrencyID))
	}

	for i, cp := range p.ContactPersons {
		errs = validateContactPerson(errs, i, cp)
	}
	for i, bd := range p.BankDetails {
		errs = validateBankDetail(errs, i, bd)
	}

	return errs
}

func validateOpeningBalance(errs []string, p domain.Party) []string {
	debit, credit := p.OpeningBalanceSides()
	if debit && credit {
		errs = append(errs, MsgOpeningBalanceExclusive)
	}
	return errs
}

func validateInterest(errs []string, interest string) []string {
	if interest == "" {
		return errs
	}
	v, err := strconv.ParseFloat(interest, 64)
	if err != nil {
		return append(errs, fmt.Sprintf("Invalid Interest Percentage: %s", interest))
	}
	if v > 100 {
		errs = append(errs, fmt.Sprintf("Invalid Interest Percentage: %s exceeds 100", interest))
	}
	return errs
}

// validateTaxFields applies the tax-type-conditional sub-validation.
func validateTaxFields(errs []string, p domain.Party, ref ReferenceData) []string {
	if p.TaxType == "" {
		return append(errs, "Tax Type is required")
	}

	switch p.TaxType {
	case domain.TaxTypeGST:
		errs = checkRequired(errs, "GST Treatment", p.GSTTreatment)
		errs = checkEnum(errs, "GST Treatment", p.GSTTreatment, domain.GSTTreatments)
		if domain.Contains(domain.GSTTreatmentsRequiringGSTIN, p.GSTTreatment) {
			errs = checkRequired(errs, "GSTIN/UIN", p.GSTIN)
		}
		errs = checkAlphanum(errs, "GSTIN/UIN", p.GSTIN)
	case domain.TaxTypeVAT:
		errs = checkEnum(errs, "VAT Treatment", p.VATTreatment, domain.VATTreatments)
		errs = checkAlphanum(errs, "VAT Number", p.VATNumber)
	case domain.TaxTypeNonTax:
		errs = checkRequired(errs, "Tax Reason", p.TaxReason)
	default:
		errs = append(errs, fmt.Sprintf("Invalid Tax Type: %s", p.TaxType))
	}

	return errs
}

func validateGeography(errs []string, p domain.Party, ref ReferenceData) []string {
	if p.BillingAddress.Country != "" && p.BillingAddress.Country != ref.OrgCountry {
		errs = append(errs, fmt.Sprintf("Invalid Billing Country: %s", p.BillingAddress.Country))
	}
	errs = validateAddress(errs, "Billing", p.BillingAddress, ref)
	errs = validateAddress(errs, "Shipping", p.ShippingAddress, ref)

	if p.PlaceOfSupply != "" && !domain.ValidState(ref.OrgCountry, p.PlaceOfSupply) {
		errs = append(errs, fmt.Sprintf("Invalid Place of Supply: %s", p.PlaceOfSupply))
	}
	if p.SourceOfSupply != "" && !domain.ValidState(ref.OrgCountry, p.SourceOfSupply) {
		errs = append(errs, fmt.Sprintf("Invalid Source of Supply: %s", p.SourceOfSupply))
	}
	return errs
}

func validateAddress(errs []string, label string, a domain.Address, ref ReferenceData) []string {
	if a.StateProvince != "" {
		country := a.Country
		if country == "" {
			country = ref.OrgCountry
		}
		if !domain.ValidState(country, a.StateProvince) {
			errs = append(errs, fmt.Sprintf("Invalid %s State: %s", label, a.StateProvince))
		}
	}
	errs = checkNumeric(errs, label+" Phone", a.Phone)
	errs = checkNumeric(errs, label+" Pin Code", a.PinCode)
	errs = checkNumeric(errs, label+" Fax", a.Fax)
	return errs
}

func validateContactPerson(errs []string, i int, cp domain.ContactPerson) []string {
	prefix := fmt.Sprintf("Contact Person %d ", i+1)
	errs = checkEnum(errs, prefix+"Salutation", cp.Salutation, domain.Salutations)
	errs = checkAlpha(errs, prefix+"First Name", cp.FirstName)
	errs = checkAlpha(errs, prefix+"Last Name", cp.LastName)
	errs = checkEmail(errs, prefix+"Email", cp.Email)
	errs = checkNumeric(errs, prefix+"Mobile", cp.Mobile)
	errs = checkNumeric(errs, prefix+"Work Phone", cp.WorkPhone)
	errs = checkAlpha(errs, prefix+"Designation", cp.Designation)
	errs = checkAlpha(errs, prefix+"Department", cp.Department)
	return errs
}

func validateBankDetail(errs []string, i int, bd domain.BankDetail) []string {
	prefix := fmt.Sprintf("Bank Detail %d ", i+1)
	errs = checkAlpha(errs, prefix+"Account Holder Name", bd.AccountHolderName)
	errs = checkAlpha(errs, prefix+"Bank Name", bd.BankName)
	errs = checkNumeric(errs, prefix+"Account Number", bd.AccountNumber)
	errs = checkAlphanum(errs, prefix+"IFSC", bd.IFSC)
	return errs
}
