package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/easyeats/easyeats-server/internal/api/http/handler"
	"github.com/easyeats/easyeats-server/internal/api/http/middleware"
	"github.com/easyeats/easyeats-server/internal/logger"
	"github.com/easyeats/easyeats-server/internal/model"
	"github.com/easyeats/easyeats-server/internal/service"
)

// Router wires REST routes to handlers and middleware.
type Router struct {
	profileService *service.Profile
	recipeService  *service.Recipe
	accountService *service.Account
	reconciler     *service.Reconciler
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	profileService *service.Profile,
	recipeService *service.Recipe,
	accountService *service.Account,
	reconciler *service.Reconciler,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		profileService: profileService,
		recipeService:  recipeService,
		accountService: accountService,
		reconciler:     reconciler,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the route tree. The bootstrap endpoints under /api/users
// stay outside the authentication middleware on purpose: create_profile and
// get_profile serve subjects that cannot authenticate yet.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.reconciler, r.contextManager, r.logger)

	userHandler := handler.NewUser(r.profileService, r.accountService, r.contextManager, r.logger)
	profileHandler := handler.NewProfile(r.profileService, r.contextManager, r.logger)
	recipeHandler := handler.NewRecipe(r.recipeService, r.contextManager, r.logger)

	root := mux.NewRouter()
	root.Use(logging.Handle)

	root.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	api := root.PathPrefix("/api").Subrouter()

	open := api.NewRoute().Subrouter()
	open.HandleFunc("/users/create_profile", userHandler.CreateProfile).Methods(http.MethodPost)
	open.HandleFunc("/users/{subjectID}/get_profile", userHandler.GetProfile).Methods(http.MethodGet)
	open.HandleFunc("/users", userHandler.Signup).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(authenticate.Handle)
	protected.HandleFunc("/users/me", userHandler.Me).Methods(http.MethodGet)
	protected.HandleFunc("/users/me", userHandler.DeleteMe).Methods(http.MethodDelete)
	protected.HandleFunc("/users/{subjectID}/update_profile", userHandler.UpdateProfile).Methods(http.MethodPut)

	protected.HandleFunc("/profiles", profileHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/profiles", profileHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/profiles/{id}", profileHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/profiles/{id}", profileHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/profiles/{id}", profileHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/profiles/{id}/image", profileHandler.UploadImage).Methods(http.MethodPost)

	protected.HandleFunc("/recipes", recipeHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/recipes", recipeHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/recipes/{id}", recipeHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/recipes/{id}", recipeHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/recipes/{id}", recipeHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/recipes/{id}/image", recipeHandler.UploadImage).Methods(http.MethodPost)

	return root
}
