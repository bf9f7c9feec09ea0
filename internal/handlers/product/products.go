package product

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sparkle/internal/store"
	"sparkle/internal/utils"
)

// featuredLimit caps the featured strip on the home page.
const featuredLimit = 6

type ListHandler struct {
	Products store.ProductStore
	Log      *logrus.Logger
}

// ServeHTTP handles GET /products
func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.All(r.Context())
	if err != nil {
		h.Log.WithError(err).Error("products: list")
		utils.Error(w, http.StatusInternalServerError, "Server error fetching products")
		return
	}
	utils.JSON(w, http.StatusOK, products)
}

type FeaturedHandler struct {
	Products store.ProductStore
	Log      *logrus.Logger
}

// ServeHTTP handles GET /products/featured
func (h *FeaturedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.Featured(r.Context(), featuredLimit)
	if err != nil {
		h.Log.WithError(err).Error("products: featured")
		utils.Error(w, http.StatusInternalServerError, "Server error fetching featured products")
		return
	}
	utils.JSON(w, http.StatusOK, products)
}

type GetHandler struct {
	Products store.ProductStore
	Log      *logrus.Logger
}

// ServeHTTP handles GET /products/{id}
func (h *GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	p, err := h.Products.FindByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.Error(w, http.StatusNotFound, "Product not found")
		return
	} else if err != nil {
		h.Log.WithError(err).Error("products: get")
		utils.Error(w, http.StatusInternalServerError, "Server error fetching product")
		return
	}
	utils.JSON(w, http.StatusOK, p)
}
