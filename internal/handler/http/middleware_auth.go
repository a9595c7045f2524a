// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, and metrics concerns
// are all handled at this layer before requests are forwarded to the
// service layer.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/internal/store"
	"github.com/vaantra/vaantra-server/internal/utils"
)

// auth is an HTTP middleware that enforces cookie-based authentication.
//
// It reads the "token" session cookie, validates the JWT inside it, resolves
// the owning user from storage and stores the [models.User] in the request
// context under [utils.UserCtxKey] before delegating to the next handler.
//
// Rejections follow the envelope contract:
//   - missing or empty cookie → "No token provided"
//   - expired or unparsable token → "Invalid or expired token"
//   - token owner no longer exists → "User not found"
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromCookie(r)
		if err != nil {
			log.Err(err).Send()
			h.writeError(w, errKindAuth, "No token provided")
			return
		}

		ctx := r.Context()

		token, err := h.services.Auth.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			h.writeError(w, errKindAuth, "Invalid or expired token")
			return
		}

		user, err := h.services.Auth.User(ctx, token.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				log.Err(err).Int64("userId", token.UserID).Msg("token owner not found")
				h.writeError(w, errKindAuth, "User not found")
				return
			}
			log.Err(err).Msg("error occurred during user lookup")
			h.writeError(w, errKindInternal, "Internal server error")
			return
		}

		// Store the resolved user in the context so that downstream handlers
		// can retrieve it without another lookup.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromCookie extracts the session token string from the "token"
// cookie.
//
// It returns the following sentinel errors:
//   - [ErrNoTokenProvided] — the cookie is absent.
//   - [ErrEmptyToken] — the cookie exists but its value is empty.
func getTokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return "", ErrNoTokenProvided
	}

	if cookie.Value == "" {
		return "", ErrEmptyToken
	}

	return cookie.Value, nil
}
