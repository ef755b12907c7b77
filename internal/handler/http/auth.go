package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/oauth"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.SignUp(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrLoginAlreadyExists):
			log.Err(err).Msg("login already exists")
			http.Error(w, "login already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("login", registeredUser.Login).Msg("user successfully registered")

	utils.WriteJSON(w, registeredUser, http.StatusOK)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// the OAuth path calls out to the provider, so it shares the
	// per-client budget with the redirect/callback endpoints
	if req.OauthProvider != "" && !h.limiter.Allow(clientAddr(r)) {
		log.Err(oauth.ErrRateLimited).Str("provider", req.OauthProvider).Send()
		http.Error(w, oauth.ErrRateLimited.Error(), http.StatusTooManyRequests)
		return
	}

	response, err := h.services.AuthService.SignIn(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			http.Error(w, "invalid login/password", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrIdentityConflict):
			log.Err(err).Msg("identity is already linked to another account")
			http.Error(w, "identity is already linked to another account", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user sign-in")
			http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	log.Debug().Str("login", response.User.Login).Msg("user successfully signed in")

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	pair, err := h.services.AuthService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		log.Err(err).Msg("refresh token rejected")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, pair, http.StatusOK)
}

func (h *Handler) signout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.SignOut(ctx, req.RefreshToken); err != nil {
		log.Err(err).Msg("signout failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "signed out"}, http.StatusOK)
}

// verify validates the presented access token and returns the account as it
// exists right now. Roles come from the database, not from the token, so a
// role granted after issuance is visible immediately.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	user, roles, err := h.services.AuthService.VerifyAccess(ctx, tokenString)
	if err != nil {
		log.Err(err).Msg("access token rejected")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, userWithRoles(user, roles), http.StatusOK)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	targetLogin := r.URL.Query().Get("login")
	limit := queryUint(r, "limit")
	offset := queryUint(r, "offset")

	records, err := h.services.AuthService.LoginHistory(ctx, actor, targetLogin, limit, offset)
	if err != nil {
		log.Err(err).Msg("login history request failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	response := make([]models.HistoryResponse, 0, len(records))
	for _, record := range records {
		response = append(response, models.HistoryResponse{
			UserID:    record.UserID,
			LoginTime: record.CreatedAt,
		})
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// queryUint reads a non-negative integer query parameter. Absent or
// malformed values are treated as zero.
func queryUint(r *http.Request, name string) uint64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}

	return value
}

func userWithRoles(user models.User, roles []models.Role) models.UserWithRoles {
	claims := make([]models.RoleClaim, 0, len(roles))
	for _, role := range roles {
		claims = append(claims, models.RoleClaim{Name: role.Name})
	}

	return models.UserWithRoles{
		ID:        user.ID,
		Login:     user.Login,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Roles:     claims,
	}
}
