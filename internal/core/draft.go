package core

import (
	"github.com/shopspring/decimal"
)

// DraftItem is one pending line in a draft order. Subtotal is filled in when
// the item is added and never diverges from Quantity × UnitPrice.
type DraftItem struct {
	ProductID   int
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// DraftOrder accumulates a single order being built: the selected customer and
// the pending line items. It lives only in memory, owned exclusively by one
// order-entry session — it must never be shared between sessions. Nothing is
// validated against the store here; the customer and products are checked at
// finalize time, inside the transaction.
type DraftOrder struct {
	customerID *int
	items      []DraftItem
	total      decimal.Decimal
}

// NewDraftOrder returns an empty draft with no customer selected.
func NewDraftOrder() *DraftOrder {
	return &DraftOrder{}
}

// SelectCustomer sets or overwrites the customer selection.
func (d *DraftOrder) SelectCustomer(customerID int) {
	id := customerID
	d.customerID = &id
}

// CustomerID returns the selected customer id, or nil when none is selected.
func (d *DraftOrder) CustomerID() *int {
	return d.customerID
}

// AddItem appends a line item to the draft. Adding the same product twice
// yields two separate line items; quantities are deliberately not merged.
// The running total is recomputed before returning.
func (d *DraftOrder) AddItem(productID int, productName string, unitPrice decimal.Decimal, quantity int) error {
	if quantity <= 0 {
		return validationf("quantity must be greater than zero")
	}

	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	d.items = append(d.items, DraftItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Subtotal:    subtotal,
	})
	d.recomputeTotal()
	return nil
}

// Items returns the pending line items in insertion order. The returned slice
// is a copy; mutating it does not affect the draft.
func (d *DraftOrder) Items() []DraftItem {
	items := make([]DraftItem, len(d.items))
	copy(items, d.items)
	return items
}

// Total returns the running total: the sum of all item subtotals.
func (d *DraftOrder) Total() decimal.Decimal {
	return d.total
}

// Empty reports whether the draft has no line items.
func (d *DraftOrder) Empty() bool {
	return len(d.items) == 0
}

// Reset clears the items and the customer selection. The total returns to zero.
// Called after a successful finalize, or by the UI to abandon the draft.
func (d *DraftOrder) Reset() {
	d.customerID = nil
	d.items = nil
	d.total = decimal.Zero
}

func (d *DraftOrder) recomputeTotal() {
	total := decimal.Zero
	for _, item := range d.items {
		total = total.Add(item.Subtotal)
	}
	d.total = total
}
