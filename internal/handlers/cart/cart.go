// Package cart implements the per-account cart operations. Mutations are
// read-modify-write against the user document with no locking: concurrent
// requests for the same account race and the last write wins.
package cart

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sparkle/internal/middleware"
	"sparkle/internal/models"
	"sparkle/internal/store"
	"sparkle/internal/utils"
)

type Response struct {
	Cart  []models.CartItem `json:"cart"`
	Total string            `json:"total"`
}

func respond(w http.ResponseWriter, cart []models.CartItem) {
	if cart == nil {
		cart = []models.CartItem{}
	}
	utils.JSON(w, http.StatusOK, Response{Cart: cart, Total: models.CartTotal(cart)})
}

// currentUser loads the authenticated account. The token may outlive the
// account, so a missing user is a 404 here rather than a 401.
func currentUser(w http.ResponseWriter, r *http.Request, users store.UserStore, log *logrus.Logger) (*models.User, bool) {
	idHex, ok := middleware.UserID(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "No token, authorization denied")
		return nil, false
	}
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Token is not valid")
		return nil, false
	}

	user, err := users.FindByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.Error(w, http.StatusNotFound, "User not found")
		return nil, false
	} else if err != nil {
		log.WithError(err).Error("cart: load user")
		utils.Error(w, http.StatusInternalServerError, "Server error")
		return nil, false
	}
	return user, true
}

func saveCart(w http.ResponseWriter, r *http.Request, users store.UserStore, log *logrus.Logger, id primitive.ObjectID, cart []models.CartItem) bool {
	if err := users.ReplaceCart(r.Context(), id, cart); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "User not found")
			return false
		}
		log.WithError(err).Error("cart: save")
		utils.Error(w, http.StatusInternalServerError, "Server error")
		return false
	}
	return true
}
