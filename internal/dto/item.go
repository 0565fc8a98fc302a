package dto

import (
	"github.com/ledgerbooks/books_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateItemRequest defines the data needed to create a new item.
type CreateItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type"`
	SKU      string `json:"sku"`
	Unit     string `json:"unit"`
	HSNOrSAC string `json:"hsnOrSac"`

	TaxPreference   string `json:"taxPreference"`
	TaxRate         string `json:"taxRate"`
	ExemptionReason string `json:"exemptionReason"`

	SellingPrice decimal.Decimal `json:"sellingPrice"`
	CostPrice    decimal.Decimal `json:"costPrice"`

	SalesAccountID    string `json:"salesAccountID"`
	PurchaseAccountID string `json:"purchaseAccountID"`

	OpeningStock      *decimal.Decimal `json:"openingStock"`
	OpeningStockValue *decimal.Decimal `json:"openingStockValue"`

	Brand        string `json:"brand"`
	Manufacturer string `json:"manufacturer"`
	Category     string `json:"category"`
	Rack         string `json:"rack"`

	Description string `json:"description"`
}

// ToDomain builds the domain item from the request.
func (r CreateItemRequest) ToDomain() domain.Item {
	return domain.Item{
		Name:              r.Name,
		Type:              domain.ItemType(r.Type),
		SKU:               r.SKU,
		Unit:              r.Unit,
		HSNOrSAC:          r.HSNOrSAC,
		TaxPreference:     domain.TaxPreference(r.TaxPreference),
		TaxRate:           r.TaxRate,
		ExemptionReason:   r.ExemptionReason,
		SellingPrice:      r.SellingPrice,
		CostPrice:         r.CostPrice,
		SalesAccountID:    r.SalesAccountID,
		PurchaseAccountID: r.PurchaseAccountID,
		OpeningStock:      r.OpeningStock,
		OpeningStockValue: r.OpeningStockValue,
		Brand:             r.Brand,
		Manufacturer:      r.Manufacturer,
		Category:          r.Category,
		Rack:              r.Rack,
		Description:       r.Description,
		Status:            domain.StatusActive,
	}
}

// UpdateItemRequest defines the patch accepted on item edit.
type UpdateItemRequest struct {
	Name     *string `json:"name"`
	Type     *string `json:"type"`
	SKU      *string `json:"sku"`
	Unit     *string `json:"unit"`
	HSNOrSAC *string `json:"hsnOrSac"`

	TaxPreference   *string `json:"taxPreference"`
	TaxRate         *string `json:"taxRate"`
	ExemptionReason *string `json:"exemptionReason"`

	SellingPrice *decimal.Decimal `json:"sellingPrice"`
	CostPrice    *decimal.Decimal `json:"costPrice"`

	SalesAccountID    *string `json:"salesAccountID"`
	PurchaseAccountID *string `json:"purchaseAccountID"`

	OpeningStock      *decimal.Decimal `json:"openingStock"`
	OpeningStockValue *decimal.Decimal `json:"openingStockValue"`

	Brand        *string `json:"brand"`
	Manufacturer *string `json:"manufacturer"`
	Category     *string `json:"category"`
	Rack         *string `json:"rack"`

	Description *string `json:"description"`
}

// ApplyTo overwrites the provided item fields in place.
func (r UpdateItemRequest) ApplyTo(item *domain.Item) {
	applyString(&item.Name, r.Name)
	if r.Type != nil {
		item.Type = domain.ItemType(*r.Type)
	}
	applyString(&item.SKU, r.SKU)
	applyString(&item.Unit, r.Unit)
	applyString(&item.HSNOrSAC, r.HSNOrSAC)
	if r.TaxPreference != nil {
		item.TaxPreference = domain.TaxPreference(*r.TaxPreference)
	}
	applyString(&item.TaxRate, r.TaxRate)
	applyString(&item.ExemptionReason, r.ExemptionReason)
	if r.SellingPrice != nil {
		item.SellingPrice = *r.SellingPrice
	}
	if r.CostPrice != nil {
		item.CostPrice = *r.CostPrice
	}
	applyString(&item.SalesAccountID, r.SalesAccountID)
	applyString(&item.PurchaseAccountID, r.PurchaseAccountID)
	if r.OpeningStock != nil {
		item.OpeningStock = r.OpeningStock
	}
	if r.OpeningStockValue != nil {
		item.OpeningStockValue = r.OpeningStockValue
	}
	applyString(&item.Brand, r.Brand)
	applyString(&item.Manufacturer, r.Manufacturer)
	applyString(&item.Category, r.Category)
	applyString(&item.Rack, r.Rack)
	applyString(&item.Description, r.Description)
}

// ItemResponse decorates an item with its recomputed current stock.
type ItemResponse struct {
	domain.Item
	CurrentStock decimal.Decimal `json:"currentStock"`
}

// ItemXSResponse is the minimal listing projection (pickers, dropdowns).
type ItemXSResponse struct {
	ItemID string `json:"itemID"`
	Name   string `json:"name"`
	SKU    string `json:"sku,omitempty"`
}

// ItemMResponse is the medium listing projection.
type ItemMResponse struct {
	ItemID        string          `json:"itemID"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	SKU           string          `json:"sku,omitempty"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	TaxPreference string          `json:"taxPreference,omitempty"`
	TaxRate       string          `json:"taxRate,omitempty"`
	Status        string          `json:"status"`
}

// ToItemXSResponses converts a list to the minimal projection.
func ToItemXSResponses(items []domain.Item) []ItemXSResponse {
	out := make([]ItemXSResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ItemXSResponse{ItemID: it.ItemID, Name: it.Name, SKU: it.SKU})
	}
	return out
}

// ToItemMResponses converts a list to the medium projection.
func ToItemMResponses(items []domain.Item) []ItemMResponse {
	out := make([]ItemMResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ItemMResponse{
			ItemID:        it.ItemID,
			Name:          it.Name,
			Type:          string(it.Type),
			SKU:           it.SKU,
			SellingPrice:  it.SellingPrice,
			CostPrice:     it.CostPrice,
			TaxPreference: string(it.TaxPreference),
			TaxRate:       it.TaxRate,
			Status:        string(it.Status),
		})
	}
	return out
}
