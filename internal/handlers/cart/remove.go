package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sparkle/internal/models"
	"sparkle/internal/store"
	"sparkle/internal/utils"
)

type RemoveHandler struct {
	Users store.UserStore
	Log   *logrus.Logger
}

// ServeHTTP handles DELETE /cart/remove/{productId}
func (h *RemoveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	productID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "productId"))
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Item not in cart")
		return
	}

	user, ok := currentUser(w, r, h.Users, h.Log)
	if !ok {
		return
	}

	cart, found := models.RemoveFromCart(user.Cart, productID)
	if !found {
		utils.Error(w, http.StatusNotFound, "Item not in cart")
		return
	}
	if !saveCart(w, r, h.Users, h.Log, user.ID, cart) {
		return
	}
	respond(w, cart)
}
