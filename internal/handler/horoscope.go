package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/service"
)

type HoroscopeHandler struct {
	chartService     *service.ChartService
	horoscopeService *service.HoroscopeService
	logger           *logrus.Logger
}

func NewHoroscopeHandler(chartService *service.ChartService, horoscopeService *service.HoroscopeService, logger *logrus.Logger) *HoroscopeHandler {
	return &HoroscopeHandler{
		chartService:     chartService,
		horoscopeService: horoscopeService,
		logger:           logger,
	}
}

func (h *HoroscopeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/{type}", h.GenerateHoroscope).Methods("POST")
}

// GenerateHoroscope строит гороскоп запрошенного таймфрейма; тип "all"
// возвращает все четыре таймфрейма разом
func (h *HoroscopeHandler) GenerateHoroscope(w http.ResponseWriter, r *http.Request) {
	var req model.HoroscopeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Error("Ошибка декодирования запроса гороскопа")
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			http.Error(w, "Неверный формат даты, ожидается YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	chart, err := h.chartService.GenerateBirthChart(r.Context(), req.Birth)
	if err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			http.Error(w, vErr.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithError(err).Error("Ошибка построения карты для гороскопа")
		http.Error(w, "Ошибка построения карты", http.StatusInternalServerError)
		return
	}

	htype := model.HoroscopeType(mux.Vars(r)["type"])
	if htype == "all" {
		periods, err := h.horoscopeService.GenerateAll(&chart.Pillars, date)
		if err != nil {
			h.logger.WithError(err).Error("Ошибка генерации гороскопов")
			http.Error(w, "Ошибка генерации гороскопов", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(periods)
		return
	}

	period, err := h.horoscopeService.Generate(&chart.Pillars, htype, date)
	if err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			http.Error(w, vErr.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithError(err).Error("Ошибка генерации гороскопа")
		http.Error(w, "Ошибка генерации гороскопа", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(period)
}
