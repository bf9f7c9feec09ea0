package server

import (
	"fmt"
	"net/http"

	logger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"sparkle/internal/config"
	"sparkle/internal/handlers"
	"sparkle/internal/handlers/auth"
	"sparkle/internal/handlers/cart"
	"sparkle/internal/handlers/product"
	"sparkle/internal/mailer"
	"sparkle/internal/middleware"
	"sparkle/internal/store"
)

type Server struct {
	Cfg      *config.Config
	Users    store.UserStore
	Products store.ProductStore
	Mailer   *mailer.Mailer
	Log      *logrus.Logger
}

func NewServer(cfg *config.Config, users store.UserStore, products store.ProductStore, m *mailer.Mailer, log *logrus.Logger) *Server {
	return &Server{
		Cfg:      cfg,
		Users:    users,
		Products: products,
		Mailer:   m,
		Log:      log,
	}
}

func HandlerFunc(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}
}

// Router assembles the chi router with all routes mounted.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	// middlewares
	r.Use(logger.Logger("router", s.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.Cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", handlers.HealthCheck)

	// auth routes (public)
	r.Post("/register", HandlerFunc(&auth.RegisterHandler{
		Users:     s.Users,
		Mailer:    s.Mailer,
		JWTSecret: s.Cfg.JWTSecret,
		JWTTTLMin: s.Cfg.JWTTTLMin,
		Log:       s.Log,
	}))
	r.Post("/login", HandlerFunc(&auth.LoginHandler{
		Users:     s.Users,
		JWTSecret: s.Cfg.JWTSecret,
		JWTTTLMin: s.Cfg.JWTTTLMin,
		Log:       s.Log,
	}))
	r.Put("/verify/{id}", HandlerFunc(&auth.VerifyHandler{Users: s.Users, Log: s.Log}))

	// catalog routes (public)
	r.Route("/products", func(r chi.Router) {
		r.Get("/", HandlerFunc(&product.ListHandler{Products: s.Products, Log: s.Log}))
		r.Get("/featured", HandlerFunc(&product.FeaturedHandler{Products: s.Products, Log: s.Log}))
		r.Get("/{id}", HandlerFunc(&product.GetHandler{Products: s.Products, Log: s.Log}))
	})

	// cart routes (authenticated); the whole group collapses to a contact
	// redirect when the cart feature is switched off
	r.Route("/cart", func(r chi.Router) {
		if !s.Cfg.CartEnabled {
			r.HandleFunc("/*", cart.Disabled)
			r.HandleFunc("/", cart.Disabled)
			return
		}
		r.Use(middleware.AuthJWT(s.Cfg.JWTSecret))
		r.Get("/", HandlerFunc(&cart.GetHandler{Users: s.Users, Log: s.Log}))
		r.Post("/add", HandlerFunc(&cart.AddHandler{Users: s.Users, Products: s.Products, Log: s.Log}))
		r.Put("/update/{productId}", HandlerFunc(&cart.UpdateHandler{Users: s.Users, Log: s.Log}))
		r.Delete("/remove/{productId}", HandlerFunc(&cart.RemoveHandler{Users: s.Users, Log: s.Log}))
		r.Delete("/", HandlerFunc(&cart.ClearHandler{Users: s.Users, Log: s.Log}))
		r.Post("/checkout", HandlerFunc(&cart.CheckoutHandler{Users: s.Users, Log: s.Log}))
	})

	return r
}

func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.Cfg.Port)
	s.Log.Infof("Server running on %s", addr)
	return http.ListenAndServe(addr, s.Router())
}
