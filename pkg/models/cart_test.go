package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartAddNewProduct(t *testing.T) {
	cart := &Cart{}
	cart.Add(&Product{ID: "p1", Name: "Noir", Brand: "Maison", Price: 100})

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, "p1", cart.Lines[0].ProductID)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCartAddSameProductTwiceMergesLines(t *testing.T) {
	cart := &Cart{}
	p := &Product{ID: "p1", Name: "Noir", Brand: "Maison", Price: 100}
	cart.Add(p)
	cart.Add(p)

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestCartSubtotal(t *testing.T) {
	cart := &Cart{Lines: []CartLine{
		{ProductID: "p1", Price: 100, Discount: 0, Quantity: 2},
	}}
	assert.InDelta(t, 200.0, cart.Subtotal(), 1e-9)

	cart = &Cart{Lines: []CartLine{
		{ProductID: "p2", Price: 50, Discount: 50, Quantity: 3},
	}}
	assert.InDelta(t, 75.0, cart.Subtotal(), 1e-9)
}

func TestCartSubtotalMixedLines(t *testing.T) {
	cart := &Cart{Lines: []CartLine{
		{ProductID: "p1", Price: 100, Discount: 0, Quantity: 2},
		{ProductID: "p2", Price: 50, Discount: 50, Quantity: 3},
		{ProductID: "p3", Price: 80, Discount: 25, Quantity: 1},
	}}
	assert.InDelta(t, 335.0, cart.Subtotal(), 1e-9)
}

func TestCartSetQuantityClampsBelowOne(t *testing.T) {
	cart := &Cart{}
	cart.Add(&Product{ID: "p1", Price: 10})

	assert.True(t, cart.SetQuantity("p1", 0))
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	assert.True(t, cart.SetQuantity("p1", -7))
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	assert.True(t, cart.SetQuantity("p1", 5))
	assert.Equal(t, 5, cart.Lines[0].Quantity)
}

func TestCartSetQuantityUnknownProduct(t *testing.T) {
	cart := &Cart{}
	assert.False(t, cart.SetQuantity("missing", 2))
}

func TestCartRemove(t *testing.T) {
	cart := &Cart{}
	cart.Add(&Product{ID: "p1", Price: 10})
	cart.Add(&Product{ID: "p2", Price: 20})

	assert.True(t, cart.Remove("p1"))
	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, "p2", cart.Lines[0].ProductID)
	assert.False(t, cart.Remove("p1"))
}

func TestCartClear(t *testing.T) {
	cart := &Cart{}
	cart.Add(&Product{ID: "p1", Price: 10})
	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.Subtotal())
}

func TestProductEffectivePrice(t *testing.T) {
	p := &Product{Price: 200, Discount: 25}
	assert.InDelta(t, 150.0, p.EffectivePrice(), 1e-9)
}

func TestProductValidate(t *testing.T) {
	valid := &Product{Name: "Noir", Brand: "Maison", Price: 100, Discount: 10}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&Product{Brand: "Maison", Price: 1}).Validate())
	assert.Error(t, (&Product{Name: "Noir", Price: 1}).Validate())
	assert.Error(t, (&Product{Name: "Noir", Brand: "Maison", Price: -1}).Validate())
	assert.Error(t, (&Product{Name: "Noir", Brand: "Maison", Price: 1, Discount: 101}).Validate())
	assert.Error(t, (&Product{Name: "Noir", Brand: "Maison", Price: 1, Discount: -5}).Validate())
}
