package models

import (
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one line of a user's cart. Name, price and image are copied
// from the product at add-time and are not re-synced if the catalog record
// changes later.
type CartItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"product_id"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// AddToCart merges a product into the cart: if a line for the product already
// exists its quantity goes up by one, otherwise a new line with quantity 1 is
// appended. A cart never holds two lines for the same product.
func AddToCart(cart []CartItem, p *Product) []CartItem {
	for i := range cart {
		if cart[i].ProductID == p.ID {
			cart[i].Quantity++
			return cart
		}
	}
	return append(cart, CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
}

// SetQuantity sets the line for productID to exactly quantity. Returns false
// if the product is not in the cart. Quantity must already be validated >= 1
// by the caller; removal is RemoveFromCart's job.
func SetQuantity(cart []CartItem, productID primitive.ObjectID, quantity int) ([]CartItem, bool) {
	for i := range cart {
		if cart[i].ProductID == productID {
			cart[i].Quantity = quantity
			return cart, true
		}
	}
	return cart, false
}

// RemoveFromCart deletes the line for productID, keeping the remaining
// insertion order. Returns false if the product is not in the cart.
func RemoveFromCart(cart []CartItem, productID primitive.ObjectID) ([]CartItem, bool) {
	for i := range cart {
		if cart[i].ProductID == productID {
			return append(cart[:i:i], cart[i+1:]...), true
		}
	}
	return cart, false
}

// CartTotal recomputes the cart total from the current lines, rounded to two
// decimals and formatted for display. Never cached.
func CartTotal(cart []CartItem) string {
	var sum float64
	for _, item := range cart {
		sum += item.Price * float64(item.Quantity)
	}
	return fmt.Sprintf("%.2f", math.Round(sum*100)/100)
}
