package domain

// CartItem is a single cart line. It embeds a full product snapshot rather
// than a reference, so later product edits do not alter the line. Lines are
// keyed by the (product id, size, color) triple.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size,omitempty"`
	Color    string  `json:"color,omitempty"`
}

// Variant reports whether the line matches the given product/size/color key.
func (i CartItem) Variant(productID, size, color string) bool {
	return i.Product.ID == productID && i.Size == size && i.Color == color
}
