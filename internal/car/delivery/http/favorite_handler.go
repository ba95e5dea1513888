package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/electric-cars/internal/car/usecase/command"
	"github.com/tair/electric-cars/internal/car/usecase/query"
	"github.com/tair/electric-cars/pkg/apperror"
	"github.com/tair/electric-cars/pkg/auth"
)

// FavoriteHandler handles HTTP requests for user favorites
type FavoriteHandler struct {
	listHandler   *query.ListFavoritesHandler
	checkHandler  *query.CheckFavoriteHandler
	addHandler    *command.AddFavoriteHandler
	removeHandler *command.RemoveFavoriteHandler

	identity auth.IdentityProvider
	metrics  *Metrics
}

func NewFavoriteHandler(
	listHandler *query.ListFavoritesHandler,
	checkHandler *query.CheckFavoriteHandler,
	addHandler *command.AddFavoriteHandler,
	removeHandler *command.RemoveFavoriteHandler,
	identity auth.IdentityProvider,
	metrics *Metrics,
) *FavoriteHandler {
	return &FavoriteHandler{
		listHandler:   listHandler,
		checkHandler:  checkHandler,
		addHandler:    addHandler,
		removeHandler: removeHandler,
		identity:      identity,
		metrics:       metrics,
	}
}

func (h *FavoriteHandler) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api/favorites").Subrouter()
	api.HandleFunc("", h.ListFavorites).Methods(http.MethodGet)
	api.HandleFunc("/check/{carId}", h.CheckFavorite).Methods(http.MethodGet)
	api.HandleFunc("/{carId}", h.AddFavorite).Methods(http.MethodPost)
	api.HandleFunc("/{carId}", h.RemoveFavorite).Methods(http.MethodDelete)
}

func (h *FavoriteHandler) userID(r *http.Request) (string, error) {
	id, err := h.identity.UserID(r)
	if err != nil {
		return "", apperror.Unauthorized("Invalid credentials", err)
	}
	return id, nil
}

// target resolves the car id path variable and the acting user.
func (h *FavoriteHandler) target(r *http.Request) (uint, string, error) {
	carID, err := parseID(mux.Vars(r)["carId"])
	if err != nil {
		return 0, "", err
	}
	userID, err := h.userID(r)
	if err != nil {
		return 0, "", err
	}
	return carID, userID, nil
}

// ListFavorites godoc
// @Summary List favorite cars
// @Description Cars favorited by the user, newest first, each with favorited_at
// @Tags favorites
// @Produce json
// @Param userId query string false "User id" default(default_user)
// @Success 200 {object} Response{data=[]domain.FavoriteCar}
// @Failure 500 {object} Response
// @Router /api/favorites [get]
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	cars, err := h.listHandler.Handle(r.Context(), query.ListFavoritesQuery{UserID: userID})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Count: intPtr(len(cars)), Data: cars})
}

// AddFavorite godoc
// @Summary Add a car to favorites
// @Tags favorites
// @Produce json
// @Param carId path int true "Car ID"
// @Param userId query string false "User id" default(default_user)
// @Success 201 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Failure 500 {object} Response
// @Router /api/favorites/{carId} [post]
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	carID, userID, err := h.target(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.addHandler.Handle(r.Context(), command.AddFavoriteCommand{CarID: carID, UserID: userID}); err != nil {
		respondError(w, r, err)
		return
	}
	h.metrics.favoriteAdded()

	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Car added to favorites successfully"})
}

// RemoveFavorite godoc
// @Summary Remove a car from favorites
// @Tags favorites
// @Produce json
// @Param carId path int true "Car ID"
// @Param userId query string false "User id" default(default_user)
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /api/favorites/{carId} [delete]
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	carID, userID, err := h.target(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.removeHandler.Handle(r.Context(), command.RemoveFavoriteCommand{CarID: carID, UserID: userID}); err != nil {
		respondError(w, r, err)
		return
	}
	h.metrics.favoriteRemoved()

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Car removed from favorites successfully"})
}

// CheckFavorite godoc
// @Summary Check whether a car is a favorite
// @Tags favorites
// @Produce json
// @Param carId path int true "Car ID"
// @Param userId query string false "User id" default(default_user)
// @Success 200 {object} Response
// @Failure 500 {object} Response
// @Router /api/favorites/check/{carId} [get]
func (h *FavoriteHandler) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	carID, userID, err := h.target(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	ok, err := h.checkHandler.Handle(r.Context(), query.CheckFavoriteQuery{CarID: carID, UserID: userID})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, IsFavorite: boolPtr(ok)})
}
