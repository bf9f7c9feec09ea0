package cart

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"sparkle/internal/models"
	"sparkle/internal/store"
)

type ClearHandler struct {
	Users store.UserStore
	Log   *logrus.Logger
}

// ServeHTTP handles DELETE /cart. Always succeeds for an existing account,
// whatever the prior cart state.
func (h *ClearHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.Users, h.Log)
	if !ok {
		return
	}
	if !saveCart(w, r, h.Users, h.Log, user.ID, []models.CartItem{}) {
		return
	}
	respond(w, []models.CartItem{})
}
