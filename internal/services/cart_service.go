package services

import (
	"sort"

	"portfolio/internal/domain"
	"portfolio/internal/format"
)

// Cart maps product id to quantity. A missing key means quantity 0.
// Transitions return a new Cart and never modify their input.
type Cart map[int]int

func (c Cart) clone() Cart {
	out := make(Cart, len(c)+1)
	for k, v := range c {
		out[k] = v
	}
	return out
}

func (c Cart) Quantity(productID int) int { return c[productID] }

// AddToCart increments a product's quantity, creating the line if absent.
func AddToCart(c Cart, productID int) Cart {
	next := c.clone()
	next[productID]++
	return next
}

// RemoveFromCart decrements a quantity, floored at zero. The key is kept.
func RemoveFromCart(c Cart, productID int) Cart {
	next := c.clone()
	next[productID] = max(next[productID]-1, 0)
	return next
}

func TotalItems(c Cart) int {
	n := 0
	for _, q := range c {
		n += q
	}
	return n
}

// TotalPrice sums price*quantity over the cart; ids missing from the
// catalog contribute nothing.
func TotalPrice(c Cart, products []domain.Product) string {
	byID := index(products)
	total := 0.0
	for _, id := range sortedKeys(c) {
		if p, ok := byID[id]; ok {
			total += p.Price * float64(c[id])
		}
	}
	return format.Money(total)
}

type CartLine struct {
	Product  domain.Product
	Quantity int
	Subtotal string
}

// CartLines lists the non-empty lines of known products ordered by id.
func CartLines(c Cart, products []domain.Product) []CartLine {
	byID := index(products)
	var out []CartLine
	for _, id := range sortedKeys(c) {
		q := c[id]
		p, ok := byID[id]
		if q <= 0 || !ok {
			continue
		}
		out = append(out, CartLine{Product: p, Quantity: q, Subtotal: format.Money(p.Price * float64(q))})
	}
	return out
}

func index(products []domain.Product) map[int]domain.Product {
	m := make(map[int]domain.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return m
}

// sortedKeys gives a stable summation order so totals are reproducible.
func sortedKeys(c Cart) []int {
	keys := make([]int, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
