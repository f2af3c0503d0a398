package service

import "sync"

// CartLine is one aggregated product+quantity entry in the pre-checkout cart.
// It holds only a product reference: prices are resolved against the catalog
// at read time, so a price edit mid-session changes the cart total but never
// an already-recorded sale.
type CartLine struct {
	ProductID uint
	Quantity  int
}

// Cart is the transient pre-checkout state of one seller session. It is never
// persisted. Invariants: at most one line per product id, every quantity ≥ 1,
// first-insertion order preserved.
//
// All operations are total functions — there are no error conditions.
type Cart struct {
	lines []CartLine
}

// Add increments the quantity of an existing line by 1, or appends a new line
// with quantity 1. Re-adding never reorders existing lines.
func (c *Cart) Add(productID uint) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{ProductID: productID, Quantity: 1})
}

// UpdateQuantity sets a line's quantity exactly. Zero or negative removes the
// line; updating an absent product id is a no-op.
func (c *Cart) UpdateQuantity(productID uint, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove drops the line if present; no-op if absent.
func (c *Cart) Remove(productID uint) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// Units returns the total unit count across all lines.
func (c *Cart) Units() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// CartStore keeps one Cart per user id. It replaces the original UI's shared
// global state with an explicit, injectable object so every transition is
// unit-testable in isolation.
type CartStore struct {
	mu    sync.Mutex
	carts map[uint]*Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[uint]*Cart)}
}

func (s *CartStore) cart(userID uint) *Cart {
	c, ok := s.carts[userID]
	if !ok {
		c = &Cart{}
		s.carts[userID] = c
	}
	return c
}

func (s *CartStore) Add(userID, productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(userID).Add(productID)
}

func (s *CartStore) UpdateQuantity(userID, productID uint, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(userID).UpdateQuantity(productID, quantity)
}

func (s *CartStore) Remove(userID, productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(userID).Remove(productID)
}

func (s *CartStore) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(userID).Clear()
}

func (s *CartStore) Lines(userID uint) []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(userID).Lines()
}

func (s *CartStore) Units(userID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(userID).Units()
}
