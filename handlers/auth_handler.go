package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Dosada05/swiss-tournament/middleware"
	"github.com/Dosada05/swiss-tournament/utils"
)

const tokenTTL = 24 * time.Hour

// AuthHandler exchanges the organizer password for a bearer token.
type AuthHandler struct {
	passwordHash string
	jwtSecret    []byte
	now          func() time.Time
}

func NewAuthHandler(passwordHash string, jwtSecret []byte) *AuthHandler {
	return &AuthHandler{
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		now:          time.Now,
	}
}

type tokenInput struct {
	Password string `json:"password"`
}

func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	if h.passwordHash == "" {
		forbiddenResponse(w, r, "token issuance is disabled")
		return
	}

	var input tokenInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Password == "" {
		badRequestResponse(w, r, errors.New("password is required"))
		return
	}
	if !utils.CheckPasswordHash(input.Password, h.passwordHash) {
		unauthorizedResponse(w, r, "invalid password")
		return
	}

	now := h.now()
	token, err := middleware.IssueToken(h.jwtSecret, "organizer", middleware.RoleOrganizer, tokenTTL, now)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	response := jsonResponse{
		"token":      token,
		"expires_at": now.Add(tokenTTL).UTC(),
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
