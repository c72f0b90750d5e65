package models

import "errors"

// Product is a catalog entry. ImageID references a file stored on the
// external image host.
type Product struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Brand       string   `bson:"brand" json:"brand"`
	Description string   `bson:"description" json:"description"`
	Price       float64  `bson:"price" json:"price"`
	Discount    float64  `bson:"discount" json:"discount"` // percent, 0-100
	Category    []string `bson:"category" json:"category"`
	ImageID     string   `bson:"imageId" json:"imageId"`
}

// EffectivePrice is the discount-adjusted unit price.
func (p *Product) EffectivePrice() float64 {
	return p.Price * (1 - p.Discount/100)
}

func (p *Product) Validate() error {
	if p.Name == "" {
		return errors.New("product name is required")
	}
	if p.Brand == "" {
		return errors.New("product brand is required")
	}
	if p.Price < 0 {
		return errors.New("product price cannot be negative")
	}
	if p.Discount < 0 || p.Discount > 100 {
		return errors.New("product discount must be between 0 and 100")
	}
	return nil
}
