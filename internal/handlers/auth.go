package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"recipebox/internal/metrics"
	"recipebox/internal/repo"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// pqUniqueViolation is the Postgres error code for a unique constraint violation.
const pqUniqueViolation = "23505"

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	UserRepo *repo.UserRepo
	Secret   []byte
	// TokenTTL is the token lifetime. Tokens carry an explicit expiry; there
	// is no refresh or revocation.
	TokenTTL time.Duration
}

// ==========================
// Register (password stored as bcrypt hash)
// ==========================
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username" validate:"required,max=80"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, MsgMissingCredentials, http.StatusBadRequest)
		return
	}

	// ===== Validate input =====
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		JSONError(w, MsgMissingCredentials, http.StatusBadRequest)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("register: hash password failed", "error", err)
		JSONError(w, MsgRegisterFailed, http.StatusInternalServerError)
		return
	}

	// The insert itself is the duplicate check: the unique index on username
	// rejects a second registration without a read-then-write race.
	if _, err := h.UserRepo.Create(r.Context(), input.Username, string(hashed)); err != nil {
		if e, ok := err.(*pq.Error); ok && e.Code == pqUniqueViolation {
			JSONError(w, MsgUsernameExists, http.StatusBadRequest)
			return
		}
		slog.Error("register: create user failed", "error", err)
		JSONError(w, MsgRegisterFailed, http.StatusInternalServerError)
		return
	}

	metrics.IncUsersRegistered()
	JSONMsg(w, MsgRegistered, http.StatusOK)
}

// ==========================
// Login (verify bcrypt hash, issue JWT with user id as subject)
// ==========================
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, MsgMissingCredentials, http.StatusBadRequest)
		return
	}

	// Unknown user and wrong password produce the same response.
	user, err := h.UserRepo.GetByUsername(r.Context(), input.Username)
	if err != nil {
		JSONError(w, MsgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		JSONError(w, MsgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(user.ID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.Secret)
	if err != nil {
		slog.Error("login: sign token failed", "error", err)
		JSONError(w, MsgInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": signed})
}
