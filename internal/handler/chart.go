package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/service"
)

type ChartHandler struct {
	chartService *service.ChartService
	logger       *logrus.Logger
}

func NewChartHandler(chartService *service.ChartService, logger *logrus.Logger) *ChartHandler {
	return &ChartHandler{
		chartService: chartService,
		logger:       logger,
	}
}

func (h *ChartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("", h.CreateChart).Methods("POST")
	router.HandleFunc("/{chartId}", h.GetChart).Methods("GET")
}

func (h *ChartHandler) CreateChart(w http.ResponseWriter, r *http.Request) {
	var birth model.BirthMoment
	if err := json.NewDecoder(r.Body).Decode(&birth); err != nil {
		h.logger.WithError(err).Error("Ошибка декодирования запроса карты рождения")
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	chart, err := h.chartService.GenerateBirthChart(r.Context(), birth)
	if err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			http.Error(w, vErr.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithError(err).Error("Ошибка построения карты рождения")
		http.Error(w, "Ошибка построения карты", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(chart)
}

func (h *ChartHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chartID, err := uuid.Parse(vars["chartId"])
	if err != nil {
		http.Error(w, "Неверный ID карты", http.StatusBadRequest)
		return
	}

	chart, err := h.chartService.GetChart(r.Context(), chartID)
	if err != nil {
		if errors.Is(err, model.ErrChartNotFound) {
			http.Error(w, "Карта не найдена", http.StatusNotFound)
			return
		}
		h.logger.WithError(err).Error("Ошибка получения карты рождения")
		http.Error(w, "Ошибка получения карты", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(chart)
}
