package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/astro"
)

type AlmanacHandler struct {
	logger *logrus.Logger
}

func NewAlmanacHandler(logger *logrus.Logger) *AlmanacHandler {
	return &AlmanacHandler{logger: logger}
}

func (h *AlmanacHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/solar-terms", h.GetSolarTerms).Methods("GET")
	router.HandleFunc("/lunar", h.GetLunarData).Methods("GET")
}

// GetSolarTerms возвращает все 24 солнечных терма запрошенного года
func (h *AlmanacHandler) GetSolarTerms(w http.ResponseWriter, r *http.Request) {
	yearStr := r.URL.Query().Get("year")
	year := time.Now().Year()
	if yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			http.Error(w, "Неверный параметр year", http.StatusBadRequest)
			return
		}
		year = parsed
	}

	terms := astro.SolarTerms(year)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(terms)
}

// GetLunarData возвращает лунные показатели на дату (по умолчанию сегодня)
func (h *AlmanacHandler) GetLunarData(w http.ResponseWriter, r *http.Request) {
	date := time.Now().UTC()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			http.Error(w, "Неверный формат даты, ожидается YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	lunar := astro.LunarData(date)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(lunar)
}
