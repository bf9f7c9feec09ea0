package cart

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sparkle/internal/models"
	"sparkle/internal/store"
	"sparkle/internal/utils"
)

type UpdateHandler struct {
	Users store.UserStore
	Log   *logrus.Logger
}

type UpdateRequest struct {
	Quantity int `json:"quantity"`
}

// ServeHTTP handles PUT /cart/update/{productId}. Quantity must be at least
// 1; removal is the remove endpoint's job, not an update to zero.
func (h *UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Quantity < 1 {
		utils.Error(w, http.StatusBadRequest, "Quantity must be at least 1")
		return
	}

	productID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "productId"))
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Item not in cart")
		return
	}

	user, ok := currentUser(w, r, h.Users, h.Log)
	if !ok {
		return
	}

	cart, found := models.SetQuantity(user.Cart, productID, req.Quantity)
	if !found {
		utils.Error(w, http.StatusNotFound, "Item not in cart")
		return
	}
	if !saveCart(w, r, h.Users, h.Log, user.ID, cart) {
		return
	}
	respond(w, cart)
}
