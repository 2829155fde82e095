package cart

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart       = errors.New("cart has no line items")
	ErrInvalidQuantity = errors.New("line item quantity must be positive")
	ErrNegativePrice   = errors.New("line item unit price cannot be negative")
)

// LineItem is one position of the buyer's cart. UnitPrice is the price the
// buyer sees (sale price when present, list price otherwise); resolving it
// is the caller's concern.
type LineItem struct {
	ProductID  uuid.UUID
	CategoryID uuid.UUID
	UnitPrice  decimal.Decimal
	Quantity   int
}

func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Snapshot is the ephemeral, per-request view of a cart used as input to
// discount and shipping computation. It is never persisted as its own entity.
type Snapshot struct {
	items []LineItem
}

func NewSnapshot(items []LineItem) (Snapshot, error) {
	if len(items) == 0 {
		return Snapshot{}, ErrEmptyCart
	}
	for _, li := range items {
		if li.Quantity <= 0 {
			return Snapshot{}, ErrInvalidQuantity
		}
		if li.UnitPrice.IsNegative() {
			return Snapshot{}, ErrNegativePrice
		}
	}
	copied := make([]LineItem, len(items))
	copy(copied, items)
	return Snapshot{items: copied}, nil
}

func (s Snapshot) Items() []LineItem {
	return s.items
}

func (s Snapshot) IsEmpty() bool {
	return len(s.items) == 0
}

func (s Snapshot) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, li := range s.items {
		sum = sum.Add(li.LineTotal())
	}
	return sum
}

// SubtotalForCategories returns the subtotal of line items whose category is
// in the given set.
func (s Snapshot) SubtotalForCategories(categoryIDs []uuid.UUID) decimal.Decimal {
	sum := decimal.Zero
	for _, li := range s.items {
		if containsID(categoryIDs, li.CategoryID) {
			sum = sum.Add(li.LineTotal())
		}
	}
	return sum
}

// SubtotalForProducts returns the subtotal of line items whose product is in
// the given set.
func (s Snapshot) SubtotalForProducts(productIDs []uuid.UUID) decimal.Decimal {
	sum := decimal.Zero
	for _, li := range s.items {
		if containsID(productIDs, li.ProductID) {
			sum = sum.Add(li.LineTotal())
		}
	}
	return sum
}

func (s Snapshot) HasAnyCategory(categoryIDs []uuid.UUID) bool {
	for _, li := range s.items {
		if containsID(categoryIDs, li.CategoryID) {
			return true
		}
	}
	return false
}

func (s Snapshot) HasAnyProduct(productIDs []uuid.UUID) bool {
	for _, li := range s.items {
		if containsID(productIDs, li.ProductID) {
			return true
		}
	}
	return false
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
