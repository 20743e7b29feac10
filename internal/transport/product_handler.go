package transport

import (
	"errors"
	"net/http"

	"sofa-stock/internal/domain"
	"sofa-stock/internal/inventory"
	"sofa-stock/internal/middleware"
	"sofa-stock/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DimensionsPayload carries product dimensions in requests
type DimensionsPayload struct {
	Width  float64 `json:"width" validate:"gte=0"`
	Height float64 `json:"height" validate:"gte=0"`
	Depth  float64 `json:"depth" validate:"gte=0"`
}

// CreateProductRequest represents the product creation payload
type CreateProductRequest struct {
	Name          string            `json:"name" validate:"required"`
	SKU           string            `json:"sku" validate:"required"`
	Category      string            `json:"category" validate:"required"`
	Description   string            `json:"description"`
	Price         float64           `json:"price" validate:"gte=0"`
	CostPrice     float64           `json:"cost_price" validate:"gte=0"`
	StockQuantity int               `json:"stock_quantity" validate:"gte=0"`
	MinStockLevel int               `json:"min_stock_level" validate:"gte=0"`
	ImageURL      string            `json:"image_url"`
	Dimensions    DimensionsPayload `json:"dimensions"`
	Material      string            `json:"material"`
	Color         string            `json:"color"`
}

// UpdateProductRequest represents a partial product update payload.
// Absent fields are left untouched.
type UpdateProductRequest struct {
	Name          *string            `json:"name" validate:"omitempty,min=1"`
	SKU           *string            `json:"sku" validate:"omitempty,min=1"`
	Category      *string            `json:"category" validate:"omitempty,min=1"`
	Description   *string            `json:"description"`
	Price         *float64           `json:"price" validate:"omitempty,gte=0"`
	CostPrice     *float64           `json:"cost_price" validate:"omitempty,gte=0"`
	StockQuantity *int               `json:"stock_quantity"`
	MinStockLevel *int               `json:"min_stock_level" validate:"omitempty,gte=0"`
	ImageURL      *string            `json:"image_url"`
	Dimensions    *DimensionsPayload `json:"dimensions"`
	Material      *string            `json:"material"`
	Color         *string            `json:"color"`
}

// AdjustStockRequest sets a product's stock level. Negative quantities are
// accepted and clamped to zero by the service.
type AdjustStockRequest struct {
	Quantity int `json:"quantity"`
}

// ProductListResponse wraps the filtered product list
type ProductListResponse struct {
	Total    int               `json:"total"`
	Products []*domain.Product `json:"products"`
}

// ProductHandler handles HTTP requests for products and the derived
// dashboard read models (stats, alerts).
type ProductHandler struct {
	service inventory.Service
	logger  *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(service inventory.Service, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers all product and dashboard routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/stock", h.AdjustStock)
	})
	r.Get("/api/stats", h.Stats)
	r.Get("/api/alerts", h.Alerts)
}

// List returns products filtered by the search and category query params.
// With no params it returns the whole collection in insertion order.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")

	products, err := h.service.FilteredProducts(r.Context(), query, category)
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{
		Total:    len(products),
		Products: products,
	})
}

// Create handles product creation
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.service.AddProduct(r.Context(), inventory.NewProduct{
		Name:          req.Name,
		SKU:           req.SKU,
		Category:      req.Category,
		Description:   req.Description,
		Price:         decimal.NewFromFloat(req.Price),
		CostPrice:     decimal.NewFromFloat(req.CostPrice),
		StockQuantity: req.StockQuantity,
		MinStockLevel: req.MinStockLevel,
		ImageURL:      req.ImageURL,
		Dimensions:    domain.Dimensions(req.Dimensions),
		Material:      req.Material,
		Color:         req.Color,
	})
	if err != nil {
		h.logger.Error("Failed to create product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	h.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("sku", product.SKU),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

// Update handles partial product updates
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req UpdateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Product patch validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := domain.ProductPatch{
		Name:          req.Name,
		SKU:           req.SKU,
		Category:      req.Category,
		Description:   req.Description,
		StockQuantity: req.StockQuantity,
		MinStockLevel: req.MinStockLevel,
		ImageURL:      req.ImageURL,
		Material:      req.Material,
		Color:         req.Color,
	}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		patch.Price = &price
	}
	if req.CostPrice != nil {
		costPrice := decimal.NewFromFloat(*req.CostPrice)
		patch.CostPrice = &costPrice
	}
	if req.Dimensions != nil {
		dims := domain.Dimensions(*req.Dimensions)
		patch.Dimensions = &dims
	}

	product, err := h.service.UpdateProduct(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to update product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Delete handles product deletion. Deleting an unknown id still returns
// 204, matching the idempotent store semantics.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AdjustStock sets a product's stock quantity, clamped at zero
func (h *ProductHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req AdjustStockRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.service.AdjustStock(r.Context(), id, req.Quantity)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to adjust stock", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to adjust stock")
		return
	}

	h.logger.Info("Stock adjusted",
		zap.String("product_id", product.ID.String()),
		zap.Int("stock_quantity", product.StockQuantity),
	)
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Stats returns the aggregate inventory statistics
func (h *ProductHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute stats", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, stats)
}

// Alerts returns the stock alert list, most urgent first
func (h *ProductHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.service.Alerts(r.Context())
	if err != nil {
		h.logger.Error("Failed to derive alerts", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to derive alerts")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, alerts)
}
