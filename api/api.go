package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/chat"
	"github.com/let-the-dreamers-rise/resume-sub000/pkg/knowledge"
)

// ErrorResponse is the JSON error payload all handlers return.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server is the HTTP server for portfolio search and chat.
type Server struct {
	config Config
	store  *knowledge.Store
	chat   *chat.Service
	logger *slog.Logger
	app    *fiber.App
}

// NewServer creates a new API server. The store is injected so it can be
// shared with other components; chatService may be nil, in which case the
// chat endpoint reports unavailable.
func NewServer(config Config, store *knowledge.Store, chatService *chat.Service, logger *slog.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config: config,
		store:  store,
		chat:   chatService,
		logger: logger,
		app:    app,
	}

	app.Get("/ping", s.handlePing)
	app.Get("/v1/search", s.handleSearch)
	app.Get("/v1/knowledge", s.handleKnowledge)

	chatHandlers := []fiber.Handler{}
	if config.RateLimitMax > 0 {
		chatHandlers = append(chatHandlers, limiter.New(limiter.Config{
			Max:               config.RateLimitMax,
			Expiration:        config.RateLimitWindow,
			LimiterMiddleware: limiter.SlidingWindow{},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(ErrorResponse{
					Error: "too many requests, slow down",
				})
			},
		}))
	}
	chatHandlers = append(chatHandlers, s.handleChat)
	app.Post("/v1/chat", chatHandlers...)

	return s
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server", "listen", s.config.ListenAddr)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
