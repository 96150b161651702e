package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/astro"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/service"
)

type CompatibilityHandler struct {
	compatService *service.CompatibilityService
	logger        *logrus.Logger
}

func NewCompatibilityHandler(compatService *service.CompatibilityService, logger *logrus.Logger) *CompatibilityHandler {
	return &CompatibilityHandler{
		compatService: compatService,
		logger:        logger,
	}
}

func (h *CompatibilityHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("", h.GetCompatibility).Methods("GET")
	router.HandleFunc("/{sign}/trends", h.GetTrends).Methods("GET")
}

func (h *CompatibilityHandler) GetCompatibility(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sign1 := model.Animal(query.Get("sign1"))
	sign2 := model.Animal(query.Get("sign2"))
	if sign1 == "" || sign2 == "" {
		http.Error(w, "Требуются параметры sign1 и sign2", http.StatusBadRequest)
		return
	}

	opts := astro.CompatibilityOptions{
		IncludePolarity:  query.Get("polarity") == "true",
		IncludeDirection: query.Get("direction") == "true",
	}

	result, err := h.compatService.Calculate(sign1, sign2, opts)
	if err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			http.Error(w, vErr.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithError(err).Error("Ошибка расчёта совместимости")
		http.Error(w, "Ошибка расчёта совместимости", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

func (h *CompatibilityHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	sign := model.Animal(mux.Vars(r)["sign"])

	trends, err := h.compatService.Trends(sign)
	if err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			http.Error(w, vErr.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithError(err).Error("Ошибка расчёта трендов совместимости")
		http.Error(w, "Ошибка расчёта трендов", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(trends)
}
