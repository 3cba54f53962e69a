package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/mvberkel/tripdiary/internal/common"
	"github.com/mvberkel/tripdiary/internal/server/users"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    *users.Profile `json:"user"`
}

type profileResponse struct {
	Message string         `json:"message"`
	User    *users.Profile `json:"user"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, common.ErrValidation)
		return false
	}
	return true
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := a.users.Register(r.Context(), req.Email, req.Password); err != nil {
		a.logger.Warn(r.Context(), "registration rejected", "email", req.Email, "error", err.Error())
		writeError(w, err)
		return
	}

	a.logger.Info(r.Context(), "registered", "email", req.Email)
	writeJSON(w, http.StatusOK, messageResponse{Message: "User registered on server successfully"})
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, token, err := a.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	a.logger.Info(r.Context(), "login", "email", req.Email)
	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login on server successful",
		Token:   token,
		User:    user.Profile(),
	})
}

func (a *API) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	user, err := a.users.GetProfile(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user.Profile())
}

type createProfileRequest struct {
	Email      string    `json:"email"`
	Password   string    `json:"password"`
	Name       *string   `json:"name"`
	Pronouns   *string   `json:"pronouns"`
	Bio        *string   `json:"bio"`
	CoverURL   *string   `json:"coverUrl"`
	AvatarURL  *string   `json:"avatarUrl"`
	Favourites *[]string `json:"favourites"`
}

func (a *API) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := a.users.UpsertProfile(r.Context(), users.ProfileUpdate{
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		Pronouns:   req.Pronouns,
		Bio:        req.Bio,
		CoverURL:   req.CoverURL,
		AvatarURL:  req.AvatarURL,
		Favourites: req.Favourites,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	a.logger.Info(r.Context(), "profile saved", "email", req.Email)
	writeJSON(w, http.StatusOK, profileResponse{Message: "Profile saved", User: user.Profile()})
}

type deleteAccountRequest struct {
	Email string `json:"email"`
}

func (a *API) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	var req deleteAccountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := a.users.DeleteAccount(r.Context(), req.Email); err != nil {
		writeError(w, err)
		return
	}

	a.logger.Info(r.Context(), "account deleted", "email", req.Email)
	writeJSON(w, http.StatusOK, messageResponse{Message: "Account deleted"})
}

type changePasswordRequest struct {
	Email       string `json:"email"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (a *API) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := a.users.ChangePassword(r.Context(), req.Email, req.OldPassword, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}

	a.logger.Info(r.Context(), "password changed", "email", req.Email)
	writeJSON(w, http.StatusOK, messageResponse{Message: "Password changed"})
}
