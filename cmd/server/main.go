package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sprintboard/sprintboard/internal/config"
	"github.com/sprintboard/sprintboard/internal/constants"
	"github.com/sprintboard/sprintboard/internal/database"
	"github.com/sprintboard/sprintboard/internal/handlers"
	"github.com/sprintboard/sprintboard/internal/middleware"
	"github.com/sprintboard/sprintboard/internal/services"
	"github.com/sprintboard/sprintboard/internal/storage"
	"github.com/sprintboard/sprintboard/internal/store"
	"github.com/sprintboard/sprintboard/internal/users"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Build the persistence adapter for the configured backend
	var adapter storage.Adapter
	var policy store.IDPolicy
	switch cfg.StorageBackend {
	case config.BackendFile:
		adapter = storage.NewFileStore(cfg.TicketsFile)
		policy = store.SequentialIDs
	case config.BackendLocal:
		if err := database.Connect(cfg); err != nil {
			log.Fatalf("Failed to open local store: %v", err)
		}
		if err := database.Migrate(); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		adapter = storage.NewLocalStore(database.GetDB())
		policy = store.OpaqueIDs
	default:
		log.Fatalf("Unknown storage backend: %q", cfg.StorageBackend)
	}

	// Initialize the domain store and the user directory
	st := store.New(adapter, policy)
	dir, err := users.DefaultDirectory()
	if err != nil {
		log.Fatalf("Failed to build user directory: %v", err)
	}

	boardService := services.NewBoardService(st, dir)

	// Initialize Gin router
	r := gin.Default()

	// Setup cookie session middleware
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionName, sessionStore))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(dir)
	ticketHandler := handlers.NewTicketHandler(st)
	sprintHandler := handlers.NewSprintHandler(st)
	epicHandler := handlers.NewEpicHandler(st)
	boardHandler := handlers.NewBoardHandler(boardService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Sprintboard API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// User directory (protected, read-only)
		api.GET("/users", middleware.RequireAuth(), authHandler.ListUsers)

		// Ticket routes (protected)
		tickets := api.Group("/tickets")
		tickets.Use(middleware.RequireAuth())
		{
			tickets.GET("", ticketHandler.ListTickets)
			tickets.POST("", ticketHandler.CreateTicket)
			tickets.GET("/:id", ticketHandler.GetTicket)
			tickets.PATCH("/:id", ticketHandler.UpdateTicket)
			tickets.DELETE("/:id", ticketHandler.DeleteTicket)
			tickets.POST("/:id/move", ticketHandler.MoveTicket)
		}

		// Sprint routes (protected)
		sprints := api.Group("/sprints")
		sprints.Use(middleware.RequireAuth())
		{
			sprints.GET("", sprintHandler.ListSprints)
			sprints.POST("", sprintHandler.CreateSprint)
			sprints.PATCH("/:id", sprintHandler.UpdateSprint)
			sprints.POST("/:id/activate", sprintHandler.ActivateSprint)
			sprints.DELETE("/:id", sprintHandler.DeleteSprint)
		}

		// Epic routes (protected)
		epics := api.Group("/epics")
		epics.Use(middleware.RequireAuth())
		{
			epics.GET("", epicHandler.ListEpics)
			epics.POST("", epicHandler.CreateEpic)
			epics.PATCH("/:id", epicHandler.UpdateEpic)
			epics.DELETE("/:id", epicHandler.DeleteEpic)
		}

		// Derived views (protected)
		board := api.Group("/board")
		board.Use(middleware.RequireAuth())
		{
			board.GET("/sprint", boardHandler.SprintBoard)
			board.GET("/backlog", boardHandler.Backlog)
		}
	}

	// Start server
	log.Printf("Server starting on %s (storage backend: %s)", cfg.Addr, cfg.StorageBackend)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
