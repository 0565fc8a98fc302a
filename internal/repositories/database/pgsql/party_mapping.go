package pgsql

import (
	"encoding/json"
	"fmt"

	"github.com/ledgerbooks/books_backend/internal/core/domain"
	"github.com/ledgerbooks/books_backend/internal/models"
)

// marshalJSONB serializes a nested party block for a JSONB column. A zero
// value is stored as NULL rather than an empty object.
func marshalJSONB(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal jsonb column: %w", err)
	}
	if string(b) == "{}" || string(b) == "[]" || string(b) == "null" {
		return nil, nil
	}
	return b, nil
}

func unmarshalJSONB(data []byte, dest any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal jsonb column: %w", err)
	}
	return nil
}

// toModelParty flattens the shared party fields onto the table columns.
func toModelParty(d domain.Party) (models.Party, error) {
	billing, err := marshalJSONB(d.BillingAddress)
	if err != nil {
		return models.Party{}, err
	}
	shipping, err := marshalJSONB(d.ShippingAddress)
	if err != nil {
		return models.Party{}, err
	}
	contacts, err := marshalJSONB(d.ContactPersons)
	if err != nil {
		return models.Party{}, err
	}
	banks, err := marshalJSONB(d.BankDetails)
	if err != nil {
		return models.Party{}, err
	}

	return models.Party{
		OrganizationID:       d.OrganizationID,
		Salutation:           d.Salutation,
		FirstName:            d.FirstName,
		LastName:             d.LastName,
		CompanyName:          d.CompanyName,
		DisplayName:          d.DisplayName,
		Email:                d.Email,
		Mobile:               d.Mobile,
		WorkPhone:            d.WorkPhone,
		Website:              d.Website,
		PAN:                  d.PAN,
		TaxType:              string(d.TaxType),
		GSTTreatment:         d.GSTTreatment,
		GSTIN:                d.GSTIN,
		VATTreatment:         d.VATTreatment,
		VATNumber:            d.VATNumber,
		TaxReason:            d.TaxReason,
		PlaceOfSupply:        d.PlaceOfSupply,
		SourceOfSupply:       d.SourceOfSupply,
		CurrencyID:           d.CurrencyID,
		DebitOpeningBalance:  d.DebitOpeningBalance,
		CreditOpeningBalance: d.CreditOpeningBalance,
		InterestPercentage:   d.InterestPercentage,
		PaymentTerms:         d.PaymentTerms,
		BillingAddress:       billing,
		ShippingAddress:      shipping,
		ContactPersons:       contacts,
		BankDetails:          banks,
		Remarks:              d.Remarks,
		Status:               string(d.Status),
	}, nil
}

func toDomainParty(m models.Party, kind domain.PartyKind) (domain.Party, error) {
	d := domain.Party{
		OrganizationID:       m.OrganizationID,
		Kind:                 kind,
		Salutation:           m.Salutation,
		FirstName:            m.FirstName,
		LastName:             m.LastName,
		CompanyName:          m.CompanyName,
		DisplayName:          m.DisplayName,
		Email:                m.Email,
		Mobile:               m.Mobile,
		WorkPhone:            m.WorkPhone,
		Website:              m.Website,
		PAN:                  m.PAN,
		TaxType:              domain.TaxType(m.TaxType),
		GSTTreatment:         m.GSTTreatment,
		GSTIN:                m.GSTIN,
		VATTreatment:         m.VATTreatment,
		VATNumber:            m.VATNumber,
		TaxReason:            m.TaxReason,
		PlaceOfSupply:        m.PlaceOfSupply,
		SourceOfSupply:       m.SourceOfSupply,
		CurrencyID:           m.CurrencyID,
		DebitOpeningBalance:  m.DebitOpeningBalance,
		CreditOpeningBalance: m.CreditOpeningBalance,
		InterestPercentage:   m.InterestPercentage,
		PaymentTerms:         m.PaymentTerms,
		Remarks:              m.Remarks,
		Status:               domain.Status(m.Status),
	}

	if err := unmarshalJSONB(m.BillingAddress, &d.BillingAddress); err != nil {
		return domain.Party{}, err
	}
	if err := unmarshalJSONB(m.ShippingAddress, &d.ShippingAddress); err != nil {
		return domain.Party{}, err
	}
	if err := unmarshalJSONB(m.ContactPersons, &d.ContactPersons); err != nil {
		return domain.Party{}, err
	}
	if err := unmarshalJSONB(m.BankDetails, &d.BankDetails); err != nil {
		return domain.Party{}, err
	}
	return d, nil
}

func toModelAudit(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

func toDomainAudit(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}
