package cart

import (
	"net/http"

	"sparkle/internal/utils"
)

// Disabled answers every cart route when the cart feature is switched off
// (CART_ENABLED=false) and points shoppers at the contact page instead.
func Disabled(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusMovedPermanently, map[string]string{
		"redirect": "/contact",
		"msg":      "Cart feature disabled. Please reach out via the Contact page.",
	})
}
