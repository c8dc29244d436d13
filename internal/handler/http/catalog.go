package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/catalog"
	"github.com/nexus-ceredi/nexus-backend-go/internal/handler/http/response"
)

type CatalogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type catalogHandlerImpl struct {
	catalogService catalog.CatalogService
}

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandlerImpl{
		catalogService: catalogService,
	}
}

// Create implements CatalogHandler.
func (h *catalogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.CreateService(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Service created", result)
}

// Update implements CatalogHandler.
func (h *catalogHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req catalog.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.catalogService.UpdateService(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Service updated", result)
}

// Delete implements CatalogHandler.
func (h *catalogHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteService(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Service deleted", nil)
}

// List implements CatalogHandler.
func (h *catalogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.ListServices(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
