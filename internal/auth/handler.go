package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mathquest/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// JWTSecret is the HMAC signing key for admin tokens.
// This is a server-side secret — it never leaves the backend.
var JWTSecret = []byte(secretFromEnv())

func secretFromEnv() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "mathquest-staging-signing-key-2026"
}

// defaultAdminPassword protects the admin surface in local setups where
// ADMIN_PASSWORD_HASH is not configured.
const defaultAdminPassword = "mathquest-admin"

type Handler struct {
	passwordHash []byte
}

// NewHandler reads the bcrypt hash of the admin password from
// ADMIN_PASSWORD_HASH, hashing a development default when unset.
func NewHandler() *Handler {
	if h := os.Getenv("ADMIN_PASSWORD_HASH"); h != "" {
		return &Handler{passwordHash: []byte(h)}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("[auth] failed to hash default admin password: %v", err)
	}
	log.Println("[auth] ADMIN_PASSWORD_HASH not set — using development default password")
	return &Handler{passwordHash: hash}
}

// Login verifies the admin password and issues a short-lived bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Password == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Password is required"})
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)); err != nil {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid password"})
		return
	}

	token, err := generateToken()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	writeJSON(w, http.StatusOK, models.AuthResponse{Token: token})
}

func generateToken() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(12 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
