package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/krnjsh87/ZodiaCore-sub008/internal/model"
	"github.com/krnjsh87/ZodiaCore-sub008/internal/repository"
)

type SubscriptionHandler struct {
	subRepo *repository.SubscriptionRepository
	logger  *logrus.Logger
}

func NewSubscriptionHandler(subRepo *repository.SubscriptionRepository, logger *logrus.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subRepo: subRepo,
		logger:  logger,
	}
}

func (h *SubscriptionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("", h.CreateSubscription).Methods("POST")
	router.HandleFunc("/{subscriptionId}", h.DeactivateSubscription).Methods("DELETE")
}

func (h *SubscriptionHandler) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	var sub model.Subscription
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		h.logger.WithError(err).Error("Ошибка декодирования запроса подписки")
		http.Error(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := sub.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sub.ID = uuid.New()
	sub.Active = true
	sub.CreatedAt = time.Now().UTC()

	if err := h.subRepo.Create(r.Context(), &sub); err != nil {
		h.logger.WithError(err).Error("Ошибка создания подписки")
		http.Error(w, "Ошибка создания подписки", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sub)
}

func (h *SubscriptionHandler) DeactivateSubscription(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	subID, err := uuid.Parse(vars["subscriptionId"])
	if err != nil {
		http.Error(w, "Неверный ID подписки", http.StatusBadRequest)
		return
	}

	if err := h.subRepo.Deactivate(r.Context(), subID); err != nil {
		if errors.Is(err, model.ErrSubscriptionNotFound) {
			http.Error(w, "Подписка не найдена", http.StatusNotFound)
			return
		}
		h.logger.WithError(err).Error("Ошибка отключения подписки")
		http.Error(w, "Ошибка отключения подписки", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
