package transport

import (
	"errors"
	"net/http"

	"sofa-stock/internal/domain"
	"sofa-stock/internal/inventory"
	"sofa-stock/internal/middleware"
	"sofa-stock/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateCategoryRequest represents the category creation payload
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Label string `json:"label" validate:"required"`
	Icon  string `json:"icon"`
}

// UpdateCategoryRequest represents a partial category update payload
type UpdateCategoryRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Label *string `json:"label" validate:"omitempty,min=1"`
	Icon  *string `json:"icon"`
}

// CategoryHandler handles HTTP requests for category operations
type CategoryHandler struct {
	service inventory.Service
	logger  *zap.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(service inventory.Service, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers all category routes
func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List returns all registered categories in creation order
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, categories)
}

// Create handles category creation. The slug id is derived from the name;
// a name normalizing to an existing slug is rejected with 409.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Category validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.service.AddCategory(r.Context(), inventory.NewCategory{
		Name:  req.Name,
		Label: req.Label,
		Icon:  req.Icon,
	})
	if err != nil {
		if errors.Is(err, store.ErrCategoryExists) {
			middleware.RespondWithError(w, http.StatusConflict, "category with this slug already exists")
			return
		}
		h.logger.Error("Failed to create category", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create category")
		return
	}

	h.logger.Info("Category created", zap.String("category_id", category.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, category)
}

// Update handles partial category updates. The slug id stays fixed even
// when the name changes.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateCategoryRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Category patch validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), id, domain.CategoryPatch{
		Name:  req.Name,
		Label: req.Label,
		Icon:  req.Icon,
	})
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "category not found")
			return
		}
		h.logger.Error("Failed to update category", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update category")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, category)
}

// Delete handles category deletion. Products referencing the deleted slug
// keep it; the stats path treats them as uncategorized. Returns 204 even
// for an unknown id.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete category", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
