package cart

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"sparkle/internal/models"
	"sparkle/internal/store"
	"sparkle/internal/utils"
)

type CheckoutHandler struct {
	Users store.UserStore
	Log   *logrus.Logger
}

type CheckoutResponse struct {
	Msg   string            `json:"msg"`
	Total string            `json:"total"`
	Cart  []models.CartItem `json:"cart"`
}

// ServeHTTP handles POST /cart/checkout. No payment or inventory semantics:
// the order total is reported from the cart as-is and the cart is cleared.
func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.Users, h.Log)
	if !ok {
		return
	}
	if len(user.Cart) == 0 {
		utils.Error(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	total := models.CartTotal(user.Cart)
	if !saveCart(w, r, h.Users, h.Log, user.ID, []models.CartItem{}) {
		return
	}

	utils.JSON(w, http.StatusOK, CheckoutResponse{
		Msg:   "Order placed",
		Total: total,
		Cart:  []models.CartItem{},
	})
}
