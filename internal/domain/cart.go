package domain

// Cart is the session-scoped mapping from product id to quantity. Keys are the
// product id rendered as a string because the cart round-trips through the session
// cookie, where numeric key types do not survive encoding.
type Cart map[string]int

// Add merges quantity into the cart entry for productID. Quantities below one are
// coerced to one before merging; repeat adds accumulate.
func (c Cart) Add(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	c[productID] += quantity
}

// Remove deletes the entry for productID. Removing an absent entry is a no-op.
func (c Cart) Remove(productID string) {
	delete(c, productID)
}

// Empty reports whether the cart holds no entries.
func (c Cart) Empty() bool {
	return len(c) == 0
}
