package models

// CartLine is a product snapshot plus a quantity. The snapshot is taken when
// the product is added so the line survives later catalog edits.
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Price     float64 `json:"price"`
	Discount  float64 `json:"discount"`
	ImageID   string  `json:"imageId"`
	Quantity  int     `json:"quantity"`
}

// UnitPrice is the discount-adjusted price for one unit of the line.
func (l *CartLine) UnitPrice() float64 {
	return l.Price * (1 - l.Discount/100)
}

// Cart is the ordered set of lines for one browsing session. It is a plain
// value; persistence is the caller's concern.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add increments the quantity when the product is already in the cart,
// otherwise appends a new line with quantity 1.
func (c *Cart) Add(p *Product) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Brand:     p.Brand,
		Price:     p.Price,
		Discount:  p.Discount,
		ImageID:   p.ImageID,
		Quantity:  1,
	})
}

// SetQuantity sets the quantity for a line, clamping values below 1 to 1.
// Returns false when the product is not in the cart.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Remove deletes the line for the given product. Returns false when absent.
func (c *Cart) Remove(productID string) bool {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Subtotal sums discount-adjusted line prices times quantities.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for i := range c.Lines {
		sum += c.Lines[i].UnitPrice() * float64(c.Lines[i].Quantity)
	}
	return sum
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
