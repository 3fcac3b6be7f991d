package routes

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rennabyte/strumhaus/app/configs"
	"github.com/rennabyte/strumhaus/app/handlers"
	"github.com/rennabyte/strumhaus/app/middlewares"
	"github.com/rennabyte/strumhaus/app/models"
	"github.com/rennabyte/strumhaus/app/repositories"
	"github.com/rennabyte/strumhaus/app/services"
	"github.com/rennabyte/strumhaus/app/utils/renderer"
	"github.com/rennabyte/strumhaus/app/utils/sessions"
	"github.com/rennabyte/strumhaus/app/utils/storage"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, rdb *redis.Client, env configs.ENV, sessionStore sessions.SessionStore) http.Handler {
	router := mux.NewRouter()
	rnd := renderer.New()

	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	productTypeRepo := repositories.NewProductTypeRepository(db)
	productRepo := repositories.NewProductRepository(db)
	manufacturerRepo := repositories.NewManufacturerRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	ratingRepo := repositories.NewRatingRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	orderRepo := repositories.NewOrderHistoryRepository(db)

	var ratingCache services.RatingCache
	if rdb != nil {
		ratingCache = services.NewRedisRatingCache(rdb)
	}

	cartSvc := services.NewCartService(cartRepo, productRepo)
	favoriteSvc := services.NewFavoriteService(favoriteRepo, productRepo)
	checkoutSvc := services.NewCheckoutService(db, cartRepo, orderRepo)
	commentSvc := services.NewCommentService(commentRepo, productRepo)
	ratingSvc := services.NewRatingService(ratingRepo, productRepo, ratingCache)

	mediaStore := storage.NewDiskStore(env.MediaDir)

	homeHandler := handlers.NewHomeHandler(productRepo, categoryRepo, rnd, env.Pagination)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, productTypeRepo, productRepo, mediaStore, rnd, env.Pagination)
	productTypeHandler := handlers.NewProductTypeHandler(productTypeRepo, productRepo, rnd, env.Pagination)
	productHandler := handlers.NewProductHandler(productRepo, commentSvc, ratingSvc, mediaStore, rnd)
	manufacturerHandler := handlers.NewManufacturerHandler(manufacturerRepo, rnd)
	commentHandler := handlers.NewCommentHandler(commentSvc, rnd)
	ratingHandler := handlers.NewRatingHandler(ratingSvc, rnd)
	cartHandler := handlers.NewCartHandler(cartSvc, rnd)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteSvc, rnd)
	orderHandler := handlers.NewOrderHandler(checkoutSvc, userRepo, rnd)

	router.Use(middlewares.MethodOverrideMiddleware)
	router.Use(middlewares.SessionAuthMiddleware(sessionStore, userRepo))
	router.Use(middlewares.CartCountMiddleware(cartRepo))

	// Public catalog reads.
	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/search", homeHandler.Search).Methods("GET")
	router.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	router.HandleFunc("/categories/{category}", categoryHandler.Detail).Methods("GET")
	router.HandleFunc("/types/{product_type}", productTypeHandler.Detail).Methods("GET")
	router.HandleFunc("/products/{product_id}", productHandler.Detail).Methods("GET")
	router.HandleFunc("/manufacturers", manufacturerHandler.List).Methods("GET")

	// Authenticated storefront actions.
	authed := router.NewRoute().Subrouter()
	authed.Use(middlewares.LoginRequiredMiddleware)
	authed.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	authed.HandleFunc("/cart/items/{product_id}", cartHandler.AddItem).Methods("POST")
	authed.HandleFunc("/cart/items/{product_id}", cartHandler.RemoveItem).Methods("DELETE")
	authed.HandleFunc("/cart/{username}/checkout", orderHandler.Checkout).Methods("POST")
	authed.HandleFunc("/orders", orderHandler.History).Methods("GET")
	authed.HandleFunc("/favorites", favoriteHandler.GetFavorites).Methods("GET")
	authed.HandleFunc("/favorites/items/{product_id}", favoriteHandler.AddItem).Methods("POST")
	authed.HandleFunc("/favorites/items/{product_id}", favoriteHandler.RemoveItem).Methods("DELETE")
	authed.HandleFunc("/products/{product_id}/comments", commentHandler.Create).Methods("POST")
	authed.HandleFunc("/comments/{comment_id}", commentHandler.Update).Methods("PUT")
	authed.HandleFunc("/comments/{comment_id}", commentHandler.Delete).Methods("DELETE")
	authed.HandleFunc("/products/{product_id}/rating", ratingHandler.Rate).Methods("POST")

	// Staff catalog management, permission-gated per resource.
	staffCategory := router.NewRoute().Subrouter()
	staffCategory.Use(middlewares.PermissionRequiredMiddleware(models.PermAddCategory))
	staffCategory.HandleFunc("/categories", categoryHandler.Create).Methods("POST")
	staffCategory.HandleFunc("/categories/{category}", categoryHandler.Update).Methods("PUT")
	staffCategory.HandleFunc("/categories/{category}", categoryHandler.Delete).Methods("DELETE")
	staffCategory.HandleFunc("/types", productTypeHandler.Create).Methods("POST")
	staffCategory.HandleFunc("/types/{product_type}", productTypeHandler.Update).Methods("PUT")
	staffCategory.HandleFunc("/types/{product_type}", productTypeHandler.Delete).Methods("DELETE")

	staffProduct := router.NewRoute().Subrouter()
	staffProduct.Use(middlewares.PermissionRequiredMiddleware(models.PermAddProduct))
	staffProduct.HandleFunc("/products", productHandler.Create).Methods("POST")
	staffProduct.HandleFunc("/products/{product_id}", productHandler.Update).Methods("PUT")
	staffProduct.HandleFunc("/products/{product_id}", productHandler.Delete).Methods("DELETE")
	staffProduct.HandleFunc("/manufacturers", manufacturerHandler.Create).Methods("POST")
	staffProduct.HandleFunc("/manufacturers/{manufacturer_id}", manufacturerHandler.Delete).Methods("DELETE")

	if env.CSRFKey != "" {
		protect := csrf.Protect([]byte(env.CSRFKey), csrf.Secure(env.APP_ENV == "production"))
		return protect(router)
	}

	return router
}
