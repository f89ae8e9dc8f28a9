package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dtroode/travelstory-server/internal/api/rest/handler"
	"github.com/dtroode/travelstory-server/internal/api/rest/middleware"
	"github.com/dtroode/travelstory-server/internal/logger"
	"github.com/dtroode/travelstory-server/internal/model"
)

// Options configures the HTTP surface.
type Options struct {
	CORSOrigins   []string
	MaxImageBytes int64
}

// Router wires handlers and middleware into the REST API.
type Router struct {
	authService    handler.AuthService
	storyService   handler.StoryService
	imageService   handler.ImageService
	tokenService   middleware.TokenService
	health         handler.HealthChecker
	contextManager model.ContextManager
	opts           Options
	logger         *logger.Logger
}

// New creates new REST Router instance.
func New(
	authService handler.AuthService,
	storyService handler.StoryService,
	imageService handler.ImageService,
	tokenService middleware.TokenService,
	health handler.HealthChecker,
	contextManager model.ContextManager,
	opts Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		storyService:   storyService,
		imageService:   imageService,
		tokenService:   tokenService,
		health:         health,
		contextManager: contextManager,
		opts:           opts,
		logger:         logger,
	}
}

// Register builds the HTTP handler with request logging, CORS and
// authentication on every route except sign-up, login and health.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimiddleware.RequestID)
	mux.Use(logging.Handle)
	mux.Use(chimiddleware.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.corsOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.registerPublicRoutes(mux)
	mux.Group(func(protected chi.Router) {
		protected.Use(authenticate.Handle)
		r.registerAuthRoutes(protected)
		r.registerImageRoutes(protected)
		r.registerStoryRoutes(protected)
	})

	return mux
}

func (r *Router) registerPublicRoutes(mux chi.Router) {
	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)
	healthHandler := handler.NewHealth(r.health, r.logger)

	mux.Post("/create-account", authHandler.CreateAccount)
	mux.Post("/login", authHandler.Login)
	mux.Get("/healthz", healthHandler.Check)
}

func (r *Router) registerAuthRoutes(mux chi.Router) {
	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)

	mux.Get("/get-user", authHandler.GetUser)
}

func (r *Router) registerImageRoutes(mux chi.Router) {
	imageHandler := handler.NewImage(r.imageService, r.opts.MaxImageBytes, r.logger)

	mux.Post("/image-upload", imageHandler.Upload)
	mux.Delete("/delete-image", imageHandler.Delete)
}

func (r *Router) registerStoryRoutes(mux chi.Router) {
	storyHandler := handler.NewStory(r.storyService, r.contextManager, r.logger)

	mux.Post("/add-travel-story", storyHandler.AddStory)
	mux.Get("/get-all-stories", storyHandler.ListStories)
	mux.Get("/get-story/{id}", storyHandler.GetStory)
	mux.Post("/edit-story/{id}", storyHandler.EditStory)
	mux.Delete("/delete-story/{id}", storyHandler.DeleteStory)
	mux.Put("/update-is-favourite/{id}", storyHandler.UpdateIsFavourite)
	mux.Get("/search", storyHandler.SearchStories)
	mux.Get("/travel-stories/filter", storyHandler.FilterStoriesByDate)
}

func (r *Router) corsOrigins() []string {
	if len(r.opts.CORSOrigins) == 0 {
		return []string{"*"}
	}
	return r.opts.CORSOrigins
}
