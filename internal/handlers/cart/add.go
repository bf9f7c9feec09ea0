package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sparkle/internal/models"
	"sparkle/internal/store"
	"sparkle/internal/utils"
)

type AddHandler struct {
	Users    store.UserStore
	Products store.ProductStore
	Log      *logrus.Logger
}

type AddRequest struct {
	ProductID string `json:"productId"`
}

// ServeHTTP handles POST /cart/add. Adding a product already in the cart
// bumps its quantity; otherwise a snapshot line (name, price, image as of
// now) is appended with quantity 1.
func (h *AddHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	user, ok := currentUser(w, r, h.Users, h.Log)
	if !ok {
		return
	}

	product, err := h.Products.FindByID(r.Context(), productID)
	if errors.Is(err, store.ErrNotFound) {
		utils.Error(w, http.StatusNotFound, "Product not found")
		return
	} else if err != nil {
		h.Log.WithError(err).Error("cart: load product")
		utils.Error(w, http.StatusInternalServerError, "Server error")
		return
	}

	cart := models.AddToCart(user.Cart, product)
	if !saveCart(w, r, h.Users, h.Log, user.ID, cart) {
		return
	}
	respond(w, cart)
}
