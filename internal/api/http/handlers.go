package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"daily-dish/internal/domain"
	"daily-dish/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Menu  service.MenuServiceInterface
	Daily service.DailyServiceInterface
	QR    service.QRGenerator
}

func NewHandler(menu service.MenuServiceInterface, daily service.DailyServiceInterface, qr service.QRGenerator) *Handler {
	return &Handler{
		Menu:  menu,
		Daily: daily,
		QR:    qr,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/dishes", h.listDishes).Methods("GET")
	r.HandleFunc("/api/dishes", h.createDish).Methods("POST")
	r.HandleFunc("/api/dishes/{name}", h.updateDish).Methods("PUT")
	r.HandleFunc("/api/dishes/{name}", h.deleteDish).Methods("DELETE")
	r.HandleFunc("/api/dishes/{name}/rating", h.rateDish).Methods("POST")
	r.HandleFunc("/api/dishes/{name}/stats", h.dishStats).Methods("GET")

	r.HandleFunc("/api/today", h.getToday).Methods("GET")
	r.HandleFunc("/api/today/skip", h.skipToday).Methods("POST")
	r.HandleFunc("/api/today/qrcode", h.getTodayQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "daily-dish",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) listDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Menu.ListAll(requestingUser(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dishes)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	input, err := parseDishForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.Menu.Add(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	input, err := parseDishForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Menu.Edit(r.Context(), mux.Vars(r)["name"], input); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	if err := h.Menu.Delete(r.Context(), mux.Vars(r)["name"]); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) rateDish(w http.ResponseWriter, r *http.Request) {
	var req domain.RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	average, err := h.Menu.Rate(r.Context(), mux.Vars(r)["name"], req.UserID, req.Rating)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]float64{"average": average})
}

func (h *Handler) dishStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Menu.DishStats(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (h *Handler) getToday(w http.ResponseWriter, r *http.Request) {
	dish, err := h.Daily.Today(r.Context(), requestingUser(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dish)
}

func (h *Handler) skipToday(w http.ResponseWriter, r *http.Request) {
	if err := h.Daily.Skip(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dish, err := h.Daily.Today(r.Context(), requestingUser(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dish)
}

func (h *Handler) getTodayQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.QR.Generate()
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(qr)
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func parseDishForm(r *http.Request) (domain.DishInput, error) {
	var input domain.DishInput
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return input, errors.New("invalid multipart payload")
	}

	input.Name = r.FormValue("name")
	if raw := r.FormValue("description"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Description); err != nil {
			return input, errors.New("description must be a JSON array")
		}
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return input, nil
	}
	if err != nil {
		return input, errors.New("error retrieving the file")
	}
	defer file.Close()

	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		return input, errors.New("invalid file type. Only JPEG, PNG, GIF, WebP allowed")
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		return input, errors.New("failed to read file")
	}
	input.ImageBytes = raw
	return input, nil
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Client identity is an opaque string; no auth happens here.
func requestingUser(r *http.Request) string {
	if user := r.Header.Get("X-User-ID"); user != "" {
		return user
	}
	return r.URL.Query().Get("user_id")
}
