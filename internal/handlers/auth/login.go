package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"sparkle/internal/models"
	"sparkle/internal/store"
	"sparkle/internal/utils"
)

type LoginHandler struct {
	Users     store.UserStore
	JWTSecret string
	JWTTTLMin int
	Log       *logrus.Logger
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUser carries the current cart snapshot alongside the account
// projection.
type LoginUser struct {
	models.PublicUser
	Cart []models.CartItem `json:"cart"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// ServeHTTP handles POST /login
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "Please fill all fields")
		return
	}

	user, err := h.Users.FindByEmail(r.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		utils.Error(w, http.StatusBadRequest, "Invalid credentials")
		return
	} else if err != nil {
		h.Log.WithError(err).Error("login: find user")
		utils.Error(w, http.StatusInternalServerError, "Server error during login")
		return
	}

	if !user.IsVerified {
		utils.Error(w, http.StatusBadRequest, "Please verify your email first")
		return
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		utils.Error(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), h.JWTSecret, h.JWTTTLMin)
	if err != nil {
		h.Log.WithError(err).Error("login: sign token")
		utils.Error(w, http.StatusInternalServerError, "Server error during login")
		return
	}

	if err := h.Users.SetLastLogin(r.Context(), user.ID); err != nil {
		h.Log.WithError(err).Warn("login: last login not stamped")
	}

	cart := user.Cart
	if cart == nil {
		cart = []models.CartItem{}
	}
	utils.JSON(w, http.StatusOK, LoginResponse{
		Token: token,
		User:  LoginUser{PublicUser: user.Public(), Cart: cart},
	})
}
