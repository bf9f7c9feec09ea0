package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sparkle/internal/store"
	"sparkle/internal/utils"
)

type VerifyHandler struct {
	Users store.UserStore
	Log   *logrus.Logger
}

// ServeHTTP handles PUT /verify/{id}. Verified is terminal: re-verifying an
// already-verified account succeeds silently.
func (h *VerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid verification link")
		return
	}

	err = h.Users.SetVerified(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.Error(w, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		h.Log.WithError(err).Error("verify: update user")
		utils.Error(w, http.StatusInternalServerError, "Server error during verification")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"msg": "User verified successfully"})
}
