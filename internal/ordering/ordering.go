package ordering

import (
	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
)

// Kind names an orderable entity family.
type Kind string

const (
	KindProduct     Kind = "product"
	KindCategory    Kind = "category"
	KindContentItem Kind = "content_item"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindProduct, KindCategory, KindContentItem:
		return k, nil
	}
	return "", apperror.Validation("unknown orderable kind %q", s)
}

// Item is one member of a sibling group.
type Item struct {
	ID    string `db:"id" json:"id"`
	Order int    `db:"sort_order" json:"order"`
}

// Group identifies a sibling set. Products and categories are grouped by
// store; content items by product and parent.
type Group struct {
	Kind      Kind
	StoreID   string
	ProductID string
	ParentID  *string
}

func (g Group) Equal(o Group) bool {
	if g.Kind != o.Kind || g.StoreID != o.StoreID || g.ProductID != o.ProductID {
		return false
	}
	if g.ParentID == nil || o.ParentID == nil {
		return g.ParentID == nil && o.ParentID == nil
	}
	return *g.ParentID == *o.ParentID
}

// Entity is an orderable row with the group it currently belongs to.
type Entity struct {
	ID          string
	Group       Group
	Order       int
	ContentType string
}

// ClampPosition bounds a 1-based position to [1, n+1] where n is the number
// of siblings excluding the entity being placed.
func ClampPosition(position, n int) int {
	if position < 1 {
		return 1
	}
	if position > n+1 {
		return n + 1
	}
	return position
}

// Insert returns a new list with item placed at the 1-based position among
// siblings. The position is clamped first.
func Insert(siblings []Item, item Item, position int) []Item {
	idx := ClampPosition(position, len(siblings)) - 1

	out := make([]Item, 0, len(siblings)+1)
	out = append(out, siblings[:idx]...)
	out = append(out, item)
	out = append(out, siblings[idx:]...)
	return out
}

// Renumber assigns 1..N in list order. It returns the renumbered list and the
// subset whose order actually changed, which is all that needs persisting.
func Renumber(items []Item) (renumbered []Item, changed []Item) {
	renumbered = make([]Item, len(items))
	for i, it := range items {
		next := Item{ID: it.ID, Order: i + 1}
		renumbered[i] = next
		if it.Order != next.Order {
			changed = append(changed, next)
		}
	}
	return renumbered, changed
}

// IsContiguous reports whether the orders, in any sequence, are exactly 1..N.
func IsContiguous(items []Item) bool {
	seen := make([]bool, len(items)+1)
	for _, it := range items {
		if it.Order < 1 || it.Order > len(items) || seen[it.Order] {
			return false
		}
		seen[it.Order] = true
	}
	return true
}

// NextOrder is the order given to a new member appended to items.
func NextOrder(items []Item) int {
	max := 0
	for _, it := range items {
		if it.Order > max {
			max = it.Order
		}
	}
	return max + 1
}
