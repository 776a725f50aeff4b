package cart

import (
	"github.com/google/uuid"

	"github.com/threadline/storefront-backend/pkg/enums"
)

// Cart is the session-scoped shopping cart. It lives in the session store,
// never in the database.
type Cart struct {
	Items []Line `json:"items"`
}

// Line is one cart entry. Identity is the (product_id, size) pair; the same
// product in two sizes produces two lines. UnitPriceCents and Name are
// snapshots taken when the line was first added.
type Line struct {
	ProductID      uuid.UUID          `json:"product_id"`
	Size           *enums.ProductSize `json:"size,omitempty"`
	Qty            int                `json:"qty"`
	UnitPriceCents int                `json:"unit_price"`
	Name           string             `json:"name"`
	ImageURL       string             `json:"image_url,omitempty"`
	SizeDisplay    string             `json:"size_display,omitempty"`
}

// Matches reports whether the line identifies the same (product, size) pair.
func (l Line) Matches(productID uuid.UUID, size *enums.ProductSize) bool {
	if l.ProductID != productID {
		return false
	}
	if (l.Size == nil) != (size == nil) {
		return false
	}
	return l.Size == nil || *l.Size == *size
}

// Empty reports whether the cart has no lines.
func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

// TotalCents sums the line totals.
func (c Cart) TotalCents() int {
	total := 0
	for _, line := range c.Items {
		total += line.Qty * line.UnitPriceCents
	}
	return total
}

// QtyOf returns the quantity currently held for the (product, size) pair.
func (c Cart) QtyOf(productID uuid.UUID, size *enums.ProductSize) int {
	for _, line := range c.Items {
		if line.Matches(productID, size) {
			return line.Qty
		}
	}
	return 0
}

// withAdded returns a copy of the cart with qty merged into the matching
// line, or a new line appended.
func (c Cart) withAdded(line Line) Cart {
	items := make([]Line, 0, len(c.Items)+1)
	merged := false
	for _, existing := range c.Items {
		if existing.Matches(line.ProductID, line.Size) {
			existing.Qty += line.Qty
			merged = true
		}
		items = append(items, existing)
	}
	if !merged {
		items = append(items, line)
	}
	return Cart{Items: items}
}

// withRemoved returns a copy of the cart with the matching line decremented
// by one; lines that reach zero are dropped. The cart is rebuilt rather than
// mutated in place.
func (c Cart) withRemoved(productID uuid.UUID, size *enums.ProductSize) Cart {
	items := make([]Line, 0, len(c.Items))
	for _, existing := range c.Items {
		if existing.Matches(productID, size) {
			existing.Qty--
			if existing.Qty <= 0 {
				continue
			}
		}
		items = append(items, existing)
	}
	return Cart{Items: items}
}
