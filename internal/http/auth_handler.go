package http

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"bookshop/internal/auth"
	"bookshop/internal/entity"
	"bookshop/internal/usecase"
)

const accessTokenTTL = 15 * time.Minute

type AuthHandler struct {
	secret   string
	users    usecase.UserRepository
	sessions usecase.SessionRepository
}

func NewAuthHandler(secret string, users usecase.UserRepository, sessions usecase.SessionRepository) *AuthHandler {
	return &AuthHandler{
		secret:   secret,
		users:    users,
		sessions: sessions,
	}
}

func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

func newRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func refreshTTL(rememberMe bool) time.Duration {
	if rememberMe {
		return 90 * 24 * time.Hour
	}
	return 30 * 24 * time.Hour
}

type loginReq struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// Login checks the admin credentials and opens a session. The refresh token
// is returned once and only its hash is stored.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", toErrorDetails(validationErrors))
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil || !auth.VerifyPassword(user.Password, req.Password) {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password", nil)
		return
	}

	accessToken, _, err := auth.GenerateToken(h.secret, user.ID, user.Role, accessTokenTTL)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	refreshToken, err := newRefreshToken()
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	ipAddress := r.RemoteAddr
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ipAddress = strings.Split(forwarded, ",")[0]
	}

	session := &entity.Session{
		UserID:           user.ID,
		RefreshTokenHash: hashToken(refreshToken),
		UserAgent:        r.Header.Get("User-Agent"),
		IPAddress:        ipAddress,
		RememberMe:       req.RememberMe,
		ExpiresAt:        time.Now().Add(refreshTTL(req.RememberMe)),
	}
	if err := h.sessions.Create(r.Context(), session); err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccess(w, tokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(accessTokenTTL.Seconds()),
	}, nil)
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Refresh rotates the session: the presented refresh token is spent and a new
// one is issued alongside a fresh access token.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", toErrorDetails(validationErrors))
		return
	}

	tokenHash := hashToken(req.RefreshToken)
	session, err := h.sessions.GetByTokenHash(r.Context(), tokenHash)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired refresh token", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	user, err := h.users.GetByID(r.Context(), session.UserID)
	if err != nil {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired refresh token", nil)
		return
	}

	if err := h.sessions.DeleteByTokenHash(r.Context(), tokenHash); err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	accessToken, _, err := auth.GenerateToken(h.secret, user.ID, user.Role, accessTokenTTL)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	refreshToken, err := newRefreshToken()
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	next := session
	next.ID = ""
	next.RefreshTokenHash = hashToken(refreshToken)
	next.ExpiresAt = time.Now().Add(refreshTTL(session.RememberMe))
	if err := h.sessions.Create(r.Context(), &next); err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccess(w, tokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(accessTokenTTL.Seconds()),
	}, nil)
}

type logoutReq struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Logout revokes the session holding the presented refresh token. An unknown
// token still logs out cleanly.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req logoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", toErrorDetails(validationErrors))
		return
	}

	err := h.sessions.DeleteByTokenHash(r.Context(), hashToken(req.RefreshToken))
	if err != nil && !errors.Is(err, usecase.ErrNotFound) {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccessNoContent(w)
}

// Me returns the authenticated admin's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFrom(r)
	if userID == "" {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	JSONSuccess(w, map[string]any{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	}, nil)
}
