package cart

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"sparkle/internal/store"
)

type GetHandler struct {
	Users store.UserStore
	Log   *logrus.Logger
}

// ServeHTTP handles GET /cart
func (h *GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.Users, h.Log)
	if !ok {
		return
	}
	respond(w, user.Cart)
}
