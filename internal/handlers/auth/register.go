package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"sparkle/internal/mailer"
	"sparkle/internal/models"
	"sparkle/internal/store"
	"sparkle/internal/utils"
)

type RegisterHandler struct {
	Users     store.UserStore
	Mailer    *mailer.Mailer
	JWTSecret string
	JWTTTLMin int
	Log       *logrus.Logger
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// ServeHTTP handles POST /register
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "Please fill all fields")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Server error during registration")
		return
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		IsVerified:   false,
	}
	if err := h.Users.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			utils.Error(w, http.StatusBadRequest, "User already exists")
			return
		}
		h.Log.WithError(err).Error("register: create user")
		utils.Error(w, http.StatusInternalServerError, "Server error during registration")
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), h.JWTSecret, h.JWTTTLMin)
	if err != nil {
		h.Log.WithError(err).Error("register: sign token")
		utils.Error(w, http.StatusInternalServerError, "Server error during registration")
		return
	}

	// best-effort: an unsent email never fails the registration
	h.Mailer.SendVerificationAsync(user.Name, user.Email, user.ID.Hex())

	utils.JSON(w, http.StatusCreated, TokenResponse{
		Token: token,
		User:  user.Public(),
	})
}
