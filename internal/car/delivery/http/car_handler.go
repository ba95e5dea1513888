package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/electric-cars/internal/car/domain"
	"github.com/tair/electric-cars/internal/car/export"
	"github.com/tair/electric-cars/internal/car/filter"
	"github.com/tair/electric-cars/internal/car/usecase/command"
	"github.com/tair/electric-cars/internal/car/usecase/query"
	"github.com/tair/electric-cars/pkg/apperror"
	"github.com/tair/electric-cars/pkg/logger"
)

// CarHandler handles HTTP requests for the electric cars catalogue
type CarHandler struct {
	listHandler   *query.ListCarsHandler
	getHandler    *query.GetCarHandler
	searchHandler *query.SearchCarsHandler
	filterHandler *query.FilterCarsHandler
	exportHandler *query.ExportCarsHandler
	deleteHandler *command.DeleteCarHandler

	metrics *Metrics
}

func NewCarHandler(
	listHandler *query.ListCarsHandler,
	getHandler *query.GetCarHandler,
	searchHandler *query.SearchCarsHandler,
	filterHandler *query.FilterCarsHandler,
	exportHandler *query.ExportCarsHandler,
	deleteHandler *command.DeleteCarHandler,
	metrics *Metrics,
) *CarHandler {
	return &CarHandler{
		listHandler:   listHandler,
		getHandler:    getHandler,
		searchHandler: searchHandler,
		filterHandler: filterHandler,
		exportHandler: exportHandler,
		deleteHandler: deleteHandler,
		metrics:       metrics,
	}
}

// RegisterRoutes binds the catalogue endpoints. Literal paths are
// registered before /{id} so they take precedence.
func (h *CarHandler) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api/electric-cars").Subrouter()
	api.HandleFunc("", h.ListCars).Methods(http.MethodGet)
	api.HandleFunc("/", h.ListCars).Methods(http.MethodGet)
	api.HandleFunc("/search/query", h.SearchCars).Methods(http.MethodGet)
	api.HandleFunc("/filter", h.FilterCars).Methods(http.MethodPost)
	api.HandleFunc("/export/csv", h.ExportCSV).Methods(http.MethodGet)
	api.HandleFunc("/export/excel", h.ExportExcel).Methods(http.MethodGet)
	api.HandleFunc("/{id}", h.GetCar).Methods(http.MethodGet)
	api.HandleFunc("/{id}", h.DeleteCar).Methods(http.MethodDelete)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperror.InvalidInput("Invalid car ID", err)
	}
	return uint(id), nil
}

// ListCars godoc
// @Summary List electric cars
// @Description Returns one page of the catalogue ordered by id
// @Tags electric-cars
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} Response{data=[]domain.ElectricCar,pagination=query.Pagination}
// @Failure 500 {object} Response
// @Router /api/electric-cars [get]
func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.listHandler.Handle(r.Context(), query.ListCarsQuery{Page: page, Limit: limit})
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.metrics.setTotalCars(result.Pagination.Total)

	respondJSON(w, http.StatusOK, Response{
		Success:    true,
		Data:       result.Cars,
		Pagination: &result.Pagination,
	})
}

// GetCar godoc
// @Summary Get an electric car
// @Tags electric-cars
// @Produce json
// @Param id path int true "Car ID"
// @Success 200 {object} Response{data=domain.ElectricCar}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /api/electric-cars/{id} [get]
func (h *CarHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}

	car, err := h.getHandler.Handle(r.Context(), query.GetCarQuery{ID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: car})
}

// DeleteCar godoc
// @Summary Delete an electric car
// @Description Deletes the car and every favorite referencing it
// @Tags electric-cars
// @Produce json
// @Param id path int true "Car ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /api/electric-cars/{id} [delete]
func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteCarCommand{ID: id}); err != nil {
		respondError(w, r, err)
		return
	}

	logger.Info(r.Context()).Uint("car_id", id).Msg("Electric car deleted")
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Electric car deleted successfully"})
}

// SearchCars godoc
// @Summary Search electric cars
// @Description Substring match over brand, model, body style, segment and power train
// @Tags electric-cars
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} Response{data=[]domain.ElectricCar}
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /api/electric-cars/search/query [get]
func (h *CarHandler) SearchCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.searchHandler.Handle(r.Context(), query.SearchCarsQuery{Term: r.URL.Query().Get("q")})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Count: intPtr(len(cars)), Data: cars})
}

// FilterRequest is the body of POST /api/electric-cars/filter
type FilterRequest struct {
	Filters []filter.Descriptor `json:"filters"`
}

// FilterCars godoc
// @Summary Filter electric cars
// @Description Applies every filter with AND. Operators: contains, equals, startsWith, endsWith, isEmpty, greaterThan, lessThan, greaterThanOrEqual, lessThanOrEqual
// @Tags electric-cars
// @Accept json
// @Produce json
// @Param request body FilterRequest true "Filter descriptors"
// @Success 200 {object} Response{data=[]domain.ElectricCar}
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /api/electric-cars/filter [post]
func (h *CarHandler) FilterCars(w http.ResponseWriter, r *http.Request) {
	var req FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "filters" {
			respondError(w, r, apperror.InvalidInput("Filters array is required", err))
			return
		}
		respondError(w, r, apperror.InvalidInput("Invalid request body", err))
		return
	}

	cars, err := h.filterHandler.Handle(r.Context(), query.FilterCarsQuery{Filters: req.Filters})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Count: intPtr(len(cars)), Data: cars})
}

// ExportCSV godoc
// @Summary Export the catalogue as CSV
// @Tags electric-cars
// @Produce text/csv
// @Success 200 {file} file
// @Failure 500 {object} Response
// @Router /api/electric-cars/export/csv [get]
func (h *CarHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	h.exportAll(w, r, export.CSVMediaType, export.CSVFilename, export.WriteCSV)
}

// ExportExcel godoc
// @Summary Export the catalogue as an Excel workbook
// @Tags electric-cars
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} Response
// @Router /api/electric-cars/export/excel [get]
func (h *CarHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	h.exportAll(w, r, export.XLSXMediaType, export.XLSXFilename, export.WriteXLSX)
}

// exportAll renders the document into memory first so a serialization
// failure can still be reported as JSON.
func (h *CarHandler) exportAll(w http.ResponseWriter, r *http.Request, mediaType, filename string, write func(w io.Writer, cars []domain.ElectricCar) error) {
	cars, err := h.exportHandler.Handle(r.Context(), query.ExportCarsQuery{})
	if err != nil {
		respondError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := write(&buf, cars); err != nil {
		respondError(w, r, apperror.Store("Error exporting data", err))
		return
	}

	w.Header().Set("Content-Type", mediaType)
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn(r.Context()).Err(err).Str("file", filename).Msg("Export download interrupted")
	}
}
