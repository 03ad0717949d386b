// Package api exposes the HTTP surface of the chat server: health check,
// active-user lookup, face authentication and profile image serving. The
// websocket endpoint is mounted here too but implemented by the ws package.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"face-chat/contract"
	cerrors "face-chat/errors"
	"face-chat/observability"
	"face-chat/services"
)

const maxImageBytes = 5 << 20

type Handlers struct {
	auth     services.IAuthService
	profiles contract.ProfileStore
	monitor  *observability.Monitor
	log      *slog.Logger
}

func NewHandlers(log *slog.Logger, auth services.IAuthService,
	profiles contract.ProfileStore, monitor *observability.Monitor) *Handlers {
	return &Handlers{
		auth:     auth,
		profiles: profiles,
		monitor:  monitor,
		log:      log,
	}
}

// Routes mounts every endpoint on a fresh mux. The websocket handler is
// passed in so this package stays free of transport details.
func (h *Handlers) Routes(websocket http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.health)
	mux.HandleFunc("GET /api/check-user/{username}", h.checkUser)
	mux.HandleFunc("POST /auth/face", h.authenticateFace)
	mux.HandleFunc("GET /profile_images/{username}", h.profileImage)
	mux.Handle("GET /ws", websocket)
	return withCORS(mux)
}

// withCORS mirrors the permissive browser policy of the login page, which
// may be served from a different origin than the API.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.monitor.Snapshot())
}

func (h *Handlers) checkUser(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	active := h.auth.CheckUser(username)

	message := "User is not currently active."
	if active {
		message = "User is already logged in on another device."
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"isActive": active,
		"message":  message,
	})
}

func (h *Handlers) authenticateFace(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No image provided"})
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No image provided"})
		return
	}
	defer func() { _ = file.Close() }()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Unreadable image"})
		return
	}

	result, err := h.auth.Authenticate(r.Context(), image)
	switch {
	case errors.Is(err, cerrors.ErrNoImage), errors.Is(err, cerrors.ErrUnsupportedImage):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err != nil:
		h.log.Error("Face authentication failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, services.AuthResult{
			Success: false,
			Error:   services.CodeAuthenticationFailed,
			Message: "Face authentication failed. Please try again.",
		})
	default:
		writeJSON(w, http.StatusOK, result)
	}
}

func (h *Handlers) profileImage(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	data, mime, err := h.profiles.GetImage(username)
	switch {
	case errors.Is(err, cerrors.ErrProfileNotFound):
		http.Error(w, "Profile image not found", http.StatusNotFound)
	case err != nil:
		h.log.Error("Serving profile image failed", "username", username, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	default:
		w.Header().Set("Content-Type", mime)
		_, _ = w.Write(data)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
