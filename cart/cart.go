package cart

// Cart is a session-scoped mapping from product id to desired quantity.
// Lines keep their insertion order, which a plain map would not.
type Cart struct {
	Lines []Line `json:"lines"`
}

type Line struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

func New() *Cart {
	return &Cart{}
}

// Add puts qty more of a product into the cart. Quantities below one are
// clamped to one, so a negative form value still adds a single unit.
func (c *Cart) Add(productID string, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Qty += qty
			return
		}
	}
	c.Lines = append(c.Lines, Line{ProductID: productID, Qty: qty})
}

// Update sets (not increments) the quantity for a product. Zero or
// negative removes the line entirely; no zero-quantity lines survive.
func (c *Cart) Update(productID string, qty int) {
	if qty < 0 {
		qty = 0
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}
		if qty == 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		} else {
			c.Lines[i].Qty = qty
		}
		return
	}
	if qty > 0 {
		c.Lines = append(c.Lines, Line{ProductID: productID, Qty: qty})
	}
}

// Clear resets the cart to empty.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Qty returns the stored quantity for a product, zero when absent.
func (c *Cart) Qty(productID string) int {
	for _, l := range c.Lines {
		if l.ProductID == productID {
			return l.Qty
		}
	}
	return 0
}

// Count is the total number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Qty
	}
	return n
}

func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}
