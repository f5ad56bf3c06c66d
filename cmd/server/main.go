package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/mathquest/backend/internal/admin"
	"github.com/mathquest/backend/internal/auth"
	"github.com/mathquest/backend/internal/database"
	"github.com/mathquest/backend/internal/engine"
	"github.com/mathquest/backend/internal/middleware"
	"github.com/mathquest/backend/internal/quiz"
	"github.com/rs/cors"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize the difficulty engine and handlers
	eng := engine.New()
	store := quiz.NewStore(db)
	quizHandler := quiz.NewHandler(quiz.NewService(store, eng))
	authHandler := auth.NewHandler()
	adminHandler := admin.NewHandler(store, eng)

	// Setup router
	r := mux.NewRouter()

	// Game routes
	r.HandleFunc("/register/{player}", quizHandler.Register).Methods("GET")
	r.HandleFunc("/question/{player}", quizHandler.NextQuestion).Methods("GET")
	r.HandleFunc("/answer", quizHandler.SubmitAnswer).Methods("POST")
	r.HandleFunc("/leaderboard", quizHandler.Leaderboard).Methods("GET")

	// Admin routes
	r.HandleFunc("/admin/login", authHandler.Login).Methods("POST")
	protected := r.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/stats", adminHandler.Stats).Methods("GET")
	protected.HandleFunc("/reset", adminHandler.Reset).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Static frontend: index at /, sounds passthrough at /sounds/
	frontendDir := os.Getenv("FRONTEND_DIR")
	if frontendDir == "" {
		frontendDir = "./frontend"
	}
	r.PathPrefix("/sounds/").Handler(http.StripPrefix("/sounds/",
		http.FileServer(http.Dir(filepath.Join(frontendDir, "sounds")))))
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(frontendDir)))

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
