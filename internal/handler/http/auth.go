package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/internal/service"
	"github.com/vaantra/vaantra-server/internal/store"
	"github.com/vaantra/vaantra-server/internal/utils"
	"github.com/vaantra/vaantra-server/models"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "token"

type signupRequest struct {
	Language string `json:"language"`
	PhoneNo  string `json:"phoneNo"`
	Password string `json:"password"`
}

type loginRequest struct {
	Number   string `json:"number"`
	Password string `json:"password"`
}

type activateRequest struct {
	AccountNo string `json:"accountNo"`
	IfscCode  string `json:"ifscCode"`
	Branch    string `json:"branch"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, errKindValidation, "Invalid request body")
		return
	}

	registeredUser, err := h.services.Auth.RegisterUser(ctx, models.User{
		Language: req.Language,
		PhoneNo:  req.PhoneNo,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			h.writeError(w, errKindValidation, "Phone number and password are required")
			return
		case errors.Is(err, store.ErrUserAlreadyExists):
			log.Err(err).Msg("user already exists")
			h.writeError(w, errKindConflict, "User already exists")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			h.writeError(w, errKindInternal, "Internal server error")
			return
		}
	}

	token, err := h.services.Auth.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, errKindInternal, "Internal server error")
		return
	}

	h.setSessionCookie(w, token)
	h.writeSuccess(w, models.Envelope{
		Message: "User registered successfully",
		User:    &registeredUser,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, errKindValidation, "Invalid request body")
		return
	}

	foundUser, err := h.services.Auth.Login(ctx, req.Number, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			h.writeError(w, errKindValidation, "Phone number and password are required")
			return
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			h.writeError(w, errKindAuth, "Invalid Credentials")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			h.writeError(w, errKindInternal, "Internal server error")
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.Auth.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, errKindInternal, "Internal server error")
		return
	}

	h.setSessionCookie(w, token)
	h.writeSuccess(w, models.Envelope{
		Message: "Login successful",
		User:    &foundUser,
	})
}

// check returns the authenticated user's profile with its query history.
func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionUser, ok := utils.UserFromContext(ctx)
	if !ok {
		h.writeError(w, errKindAuth, "User not found")
		return
	}

	user, err := h.services.Auth.User(ctx, sessionUser.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			h.writeError(w, errKindNotFound, "User not found")
			return
		}
		log.Err(err).Msg("unexpected error occurred during user lookup")
		h.writeError(w, errKindInternal, "Internal server error")
		return
	}

	h.writeSuccess(w, models.Envelope{User: &user})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	h.writeSuccess(w, models.Envelope{Message: "Logged out successfully"})
}

func (h *Handler) accountActivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionUser, ok := utils.UserFromContext(ctx)
	if !ok {
		h.writeError(w, errKindAuth, "User not found")
		return
	}

	var req activateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, errKindValidation, "Invalid request body")
		return
	}

	user, err := h.services.Auth.ActivateAccount(ctx, sessionUser.UserID, req.AccountNo, req.IfscCode, req.Branch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIncompleteAccountDetails):
			log.Err(err).Msg("incomplete account details")
			h.writeError(w, errKindValidation, "All account details are required")
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			h.writeError(w, errKindNotFound, "User not found")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during account activation")
			h.writeError(w, errKindInternal, "Internal server error")
			return
		}
	}

	h.writeSuccess(w, models.Envelope{
		Message: "Account activated successfully",
		User:    &user,
	})
}

// setSessionCookie attaches the signed session token as an HttpOnly cookie
// valid for the token's configured lifetime.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
