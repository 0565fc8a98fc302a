package dto

import (
	"time"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PartyPayload carries the customer/supplier fields accepted on create.
// The frontend cleaner strips null/empty keys before sending, so an absent
// key binds to the zero value and validators treat it as "not provided".
type PartyPayload struct {
	Salutation  string `json:"salutation"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	WorkPhone   string `json:"workPhone"`
	Website     string `json:"website"`
	PAN         string `json:"pan"`

	TaxType      string `json:"taxType"`
	GSTTreatment string `json:"gstTreatment"`
	GSTIN        string `json:"gstin"`
	VATTreatment string `json:"vatTreatment"`
	VATNumber    string `json:"vatNumber"`
	TaxReason    string `json:"taxReason"`

	PlaceOfSupply  string `json:"placeOfSupply"`
	SourceOfSupply string `json:"sourceOfSupply"`
	CurrencyID     string `json:"currencyID"`

	DebitOpeningBalance  *decimal.Decimal `json:"debitOpeningBalance"`
	CreditOpeningBalance *decimal.Decimal `json:"creditOpeningBalance"`
	InterestPercentage   string           `json:"interestPercentage"`
	PaymentTerms         string           `json:"paymentTerms"`

	BillingAddress  domain.Address         `json:"billingAddress"`
	ShippingAddress domain.Address         `json:"shippingAddress"`
	ContactPersons  []domain.ContactPerson `json:"contactPersons"`
	BankDetails     []domain.BankDetail    `json:"bankDetails"`

	Remarks string `json:"remarks"`
}

// toDomainParty maps the payload onto a domain.Party of the given kind.
func (p PartyPayload) toDomainParty(kind domain.PartyKind, displayName string) domain.Party {
	return domain.Party{
		Kind:                 kind,
		Salutation:           p.Salutation,
		FirstName:            p.FirstName,
		LastName:             p.LastName,
		CompanyName:          p.CompanyName,
		DisplayName:          displayName,
		Email:                p.Email,
		Mobile:               p.Mobile,
		WorkPhone:            p.WorkPhone,
		Website:              p.Website,
		PAN:                  p.PAN,
		TaxType:              domain.TaxType(p.TaxType),
		GSTTreatment:         p.GSTTreatment,
		GSTIN:                p.GSTIN,
		VATTreatment:         p.VATTreatment,
		VATNumber:            p.VATNumber,
		TaxReason:            p.TaxReason,
		PlaceOfSupply:        p.PlaceOfSupply,
		SourceOfSupply:       p.SourceOfSupply,
		CurrencyID:           p.CurrencyID,
		DebitOpeningBalance:  p.DebitOpeningBalance,
		CreditOpeningBalance: p.CreditOpeningBalance,
		InterestPercentage:   p.InterestPercentage,
		PaymentTerms:         p.PaymentTerms,
		BillingAddress:       p.BillingAddress,
		ShippingAddress:      p.ShippingAddress,
		ContactPersons:       p.ContactPersons,
		BankDetails:          p.BankDetails,
		Remarks:              p.Remarks,
		Status:               domain.StatusActive,
	}
}

// PartyPatch carries the customer/supplier fields accepted on edit. Pointers
// distinguish "overwrite with this value" from "leave untouched".
type PartyPatch struct {
	Salutation  *string `json:"salutation"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	CompanyName *string `json:"companyName"`
	Email       *string `json:"email"`
	Mobile      *string `json:"mobile"`
	WorkPhone   *string `json:"workPhone"`
	Website     *string `json:"website"`
	PAN         *string `json:"pan"`

	TaxType      *string `json:"taxType"`
	GSTTreatment *string `json:"gstTreatment"`
	GSTIN        *string `json:"gstin"`
	VATTreatment *string `json:"vatTreatment"`
	VATNumber    *string `json:"vatNumber"`
	TaxReason    *string `json:"taxReason"`

	PlaceOfSupply  *string `json:"placeOfSupply"`
	SourceOfSupply *string `json:"sourceOfSupply"`
	CurrencyID     *string `json:"currencyID"`

	DebitOpeningBalance  *decimal.Decimal `json:"debitOpeningBalance"`
	CreditOpeningBalance *decimal.Decimal `json:"creditOpeningBalance"`
	InterestPercentage   *string          `json:"interestPercentage"`
	PaymentTerms         *string          `json:"paymentTerms"`

	BillingAddress  *domain.Address         `json:"billingAddress"`
	ShippingAddress *domain.Address         `json:"shippingAddress"`
	ContactPersons  *[]domain.ContactPerson `json:"contactPersons"`
	BankDetails     *[]domain.BankDetail    `json:"bankDetails"`

	Remarks *string `json:"remarks"`
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// ApplyTo overwrites the provided party fields in place. The ledger
// synchronizer mirrors the resulting opening balance onto the TrialBalance row.
func (p PartyPatch) ApplyTo(party *domain.Party) {
	applyString(&party.Salutation, p.Salutation)
	applyString(&party.FirstName, p.FirstName)
	applyString(&party.LastName, p.LastName)
	applyString(&party.CompanyName, p.CompanyName)
	applyString(&party.Email, p.Email)
	applyString(&party.Mobile, p.Mobile)
	applyString(&party.WorkPhone, p.WorkPhone)
	applyString(&party.Website, p.Website)
	applyString(&party.PAN, p.PAN)
	if p.TaxType != nil {
		party.TaxType = domain.TaxType(*p.TaxType)
	}
	applyString(&party.GSTTreatment, p.GSTTreatment)
	applyString(&party.GSTIN, p.GSTIN)
	applyString(&party.VATTreatment, p.VATTreatment)
	applyString(&party.VATNumber, p.VATNumber)
	applyString(&party.TaxReason, p.TaxReason)
	applyString(&party.PlaceOfSupply, p.PlaceOfSupply)
	applyString(&party.SourceOfSupply, p.SourceOfSupply)
	applyString(&party.CurrencyID, p.CurrencyID)
	// Supplying one opening-balance side switches to it, clearing the other.
	// Supplying both keeps both so validation can reject the pair.
	switch {
	case p.DebitOpeningBalance != nil && p.CreditOpeningBalance == nil:
		party.DebitOpeningBalance = p.DebitOpeningBalance
		party.CreditOpeningBalance = nil
	case p.CreditOpeningBalance != nil && p.DebitOpeningBalance == nil:
		party.CreditOpeningBalance = p.CreditOpeningBalance
		party.DebitOpeningBalance = nil
	case p.DebitOpeningBalance != nil:
		party.DebitOpeningBalance = p.DebitOpeningBalance
		party.CreditOpeningBalance = p.CreditOpeningBalance
	}
	applyString(&party.InterestPercentage, p.InterestPercentage)
	applyString(&party.PaymentTerms, p.PaymentTerms)
	if p.BillingAddress != nil {
		party.BillingAddress = *p.BillingAddress
	}
	if p.ShippingAddress != nil {
		party.ShippingAddress = *p.ShippingAddress
	}
	if p.ContactPersons != nil {
		party.ContactPersons = *p.ContactPersons
	}
	if p.BankDetails != nil {
		party.BankDetails = *p.BankDetails
	}
	applyString(&party.Remarks, p.Remarks)
}

// TransactionResponse is one ledger posting in a party transactions listing.
type TransactionResponse struct {
	TrialBalanceID string           `json:"trialBalanceID"`
	OperationID    string           `json:"operationID"`
	AccountID      string           `json:"accountID"`
	DebitAmount    *decimal.Decimal `json:"debitAmount,omitempty"`
	CreditAmount   *decimal.Decimal `json:"creditAmount,omitempty"`
	Date           string           `json:"date"`
}

// ToTransactionResponses converts trial-balance rows for listing, formatting
// dates the way the frontend renders them.
func ToTransactionResponses(rows []domain.TrialBalance) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(rows))
	for _, tb := range rows {
		out = append(out, TransactionResponse{
			TrialBalanceID: tb.TrialBalanceID,
			OperationID:    tb.OperationID,
			AccountID:      tb.AccountID,
			DebitAmount:    tb.DebitAmount,
			CreditAmount:   tb.CreditAmount,
			Date:           tb.Date.Format("02/01/2006"),
		})
	}
	return out
}

// HistoryResponse is one audit entry in a party history listing.
type HistoryResponse struct {
	HistoryID      string `json:"historyID"`
	OperationID    string `json:"operationID"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	ActingUserName string `json:"actingUserName"`
	CreatedAt      string `json:"createdAt"`
}

// ToHistoryResponses converts history rows for listing.
func ToHistoryResponses(rows []domain.History) []HistoryResponse {
	out := make([]HistoryResponse, 0, len(rows))
	for _, h := range rows {
		out = append(out, HistoryResponse{
			HistoryID:      h.HistoryID,
			OperationID:    h.OperationID,
			Title:          h.Title,
			Description:    h.Description,
			ActingUserName: h.ActingUserName,
			CreatedAt:      h.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
