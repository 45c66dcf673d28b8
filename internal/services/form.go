package services

import (
	"github.com/Renal37/order-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

const (
	MsgSelectCustomer = "Please select a customer"
	MsgAddItem        = "Please add at least one item"
	MsgSelectProducts = "Please select products for all items"
	MsgQuantity       = "Quantity must be at least 1 for all items"
)

// ValidateDraft applies the form rules in order and reports the first one
// that fails.
func ValidateDraft(draft models.OrderDraft) error {
	if draft.CustomerID == "" {
		return &ValidationError{Message: MsgSelectCustomer}
	}

	if len(draft.Items) == 0 {
		return &ValidationError{Message: MsgAddItem}
	}

	for _, item := range draft.Items {
		if item.ProductID == "" {
			return &ValidationError{Message: MsgSelectProducts}
		}
	}

	for _, item := range draft.Items {
		if item.Quantity < 1 {
			return &ValidationError{Message: MsgQuantity}
		}
	}

	return nil
}

// QuoteDraft derives the candidate total the form shows before submission.
// It does not validate the draft.
func QuoteDraft(draft models.OrderDraft, catalog models.Catalog) models.Quote {
	items := priceItems(draft.Items, catalog)

	quote := models.Quote{
		Subtotals: make([]decimal.Decimal, len(items)),
		Total:     decimal.Zero,
	}

	for i, item := range items {
		quote.Subtotals[i] = item.Subtotal().Round(2)
		quote.Total = quote.Total.Add(item.Subtotal())
	}

	quote.Total = quote.Total.Round(2)

	return quote
}

// BuildOrder validates the draft and turns it into a create request. Names and
// prices missing from the draft are taken from the catalog.
func BuildOrder(draft models.OrderDraft, catalog models.Catalog) (models.NewOrder, error) {
	if err := ValidateDraft(draft); err != nil {
		return models.NewOrder{}, err
	}

	customerName := draft.CustomerName
	if catalog != nil {
		if customer, ok := catalog.Customer(draft.CustomerID); ok && customerName == "" {
			customerName = customer.Name
		}
	}

	return models.NewOrder{
		CustomerID:   draft.CustomerID,
		CustomerName: customerName,
		Items:        priceItems(draft.Items, catalog),
		TotalAmount:  QuoteDraft(draft, catalog).Total,
	}, nil
}

func priceItems(draftItems []models.DraftItem, catalog models.Catalog) []models.OrderItem {
	items := make([]models.OrderItem, len(draftItems))

	for i, d := range draftItems {
		item := models.OrderItem{
			ProductID: d.ProductID,
			Name:      d.Name,
			Quantity:  d.Quantity,
			Price:     decimal.Zero,
		}

		if d.Price != nil {
			item.Price = *d.Price
		}

		if catalog != nil && d.ProductID != "" {
			if product, ok := catalog.Product(d.ProductID); ok {
				if item.Name == "" {
					item.Name = product.Name
				}
				if d.Price == nil {
					item.Price = product.Price
				}
			}
		}

		items[i] = item
	}

	return items
}
