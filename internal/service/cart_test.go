package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartAddIncrementsExistingLine(t *testing.T) {
	c := &Cart{}
	c.Add(1)
	c.Add(2)
	c.Add(1)

	lines := c.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, uint(1), lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, uint(2), lines[1].ProductID)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 3, c.Units())
}

func TestCartPreservesInsertionOrder(t *testing.T) {
	c := &Cart{}
	for _, id := range []uint{5, 3, 9, 1} {
		c.Add(id)
	}
	// Re-adding an existing product must not move its line.
	c.Add(3)

	lines := c.Lines()
	got := make([]uint, 0, len(lines))
	for _, l := range lines {
		got = append(got, l.ProductID)
	}
	assert.Equal(t, []uint{5, 3, 9, 1}, got)
}

func TestCartUpdateQuantitySetsExactValue(t *testing.T) {
	c := &Cart{}
	c.Add(1)
	c.UpdateQuantity(1, 7)

	lines := c.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestCartUpdateQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	c := &Cart{}
	c.Add(1)
	c.Add(2)

	c.UpdateQuantity(1, 0)
	assert.Len(t, c.Lines(), 1)

	c.UpdateQuantity(2, -3)
	assert.True(t, c.Empty())
}

func TestCartUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	c := &Cart{}
	c.Add(1)
	c.UpdateQuantity(99, 5)

	lines := c.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, uint(1), lines[0].ProductID)
}

func TestCartRemoveAndClear(t *testing.T) {
	c := &Cart{}
	c.Add(1)
	c.Add(2)

	c.Remove(1)
	assert.Len(t, c.Lines(), 1)

	c.Clear()
	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Units())
}

func TestCartLinesReturnsCopy(t *testing.T) {
	c := &Cart{}
	c.Add(1)

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestCartStoreIsolatesUsers(t *testing.T) {
	s := NewCartStore()
	s.Add(1, 10)
	s.Add(1, 10)
	s.Add(2, 20)

	assert.Equal(t, 2, s.Units(1))
	assert.Equal(t, 1, s.Units(2))

	s.Clear(1)
	assert.Equal(t, 0, s.Units(1))
	assert.Equal(t, 1, s.Units(2))
}
