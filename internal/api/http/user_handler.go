package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"shopbook-backend/internal/logger"
	"shopbook-backend/internal/service"
)

type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.users.GetProfile(r.Context(), userID)
	if errors.Is(err, service.ErrUserNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		logger.Error("Profile fetch failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"user": user})
}

type updateProfileRequest struct {
	Name             string `json:"name"`
	StoreName        string `json:"store_name"`
	StoreAddress     string `json:"store_address"`
	StoreContact     string `json:"store_contact"`
	StoreCountryCode string `json:"store_country_code"`
	ProfilePhoto     string `json:"profile_photo"`
	EmailVerified    bool   `json:"email_verified"`
	PhoneVerified    bool   `json:"phone_verified"`
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), userID, service.UpdateProfileParams{
		Name:             req.Name,
		StoreName:        req.StoreName,
		StoreAddress:     req.StoreAddress,
		StoreContact:     req.StoreContact,
		StoreCountryCode: req.StoreCountryCode,
		ProfilePhoto:     req.ProfilePhoto,
		EmailVerified:    req.EmailVerified,
		PhoneVerified:    req.PhoneVerified,
	})
	if errors.Is(err, service.ErrUserNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		logger.Error("Profile update failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"user": user})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	err := h.users.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword)
	if errors.Is(err, service.ErrWrongPassword) {
		respondError(w, http.StatusUnauthorized, "Current password is incorrect")
		return
	}
	if errors.Is(err, service.ErrUserNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		logger.Error("Password change failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to change password")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
}
