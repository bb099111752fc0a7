package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/skinlens/backend/internal/domain"
	"github.com/skinlens/backend/internal/infrastructure/cache"
	"github.com/skinlens/backend/internal/metrics"
	"github.com/skinlens/backend/internal/usecase"
)

const (
	serviceName    = "skinlens-backend"
	serviceVersion = "1.0.0"

	// reportCacheNamespace prefixes cache keys for analysis reports
	reportCacheNamespace = "report"

	defaultMaxBodyBytes int64 = 1 << 20
)

// HandlerOptions tunes request handling
type HandlerOptions struct {
	Cache    domain.CacheRepository // nil disables response caching
	CacheTTL time.Duration
	MaxLimit int // requested limits above this are clamped

	// MaxBodyBytes caps request bodies; larger bodies are rejected with 400
	MaxBodyBytes int64
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	service *usecase.RecommendationService
	catalog domain.CatalogRepository
	logger  *zap.Logger
	opts    HandlerOptions
}

// NewHandler creates a new HTTP handler. A nil service makes every engine
// endpoint answer 503.
func NewHandler(
	service *usecase.RecommendationService,
	catalog domain.CatalogRepository,
	logger *zap.Logger,
	opts HandlerOptions,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 50
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	return &Handler{
		service: service,
		catalog: catalog,
		logger:  logger,
		opts:    opts,
	}
}

// RecommendationRequest is the JSON body of the recommendation endpoints
type RecommendationRequest struct {
	ProductType string   `json:"productType" binding:"required"`
	Concerns    []string `json:"concerns"`
	SkinType    string   `json:"skinType"`
	Limit       int      `json:"limit" binding:"gte=0"`
	Locale      string   `json:"locale"`
}

// RecommendationResponse is returned by POST /api/v1/recommendations
type RecommendationResponse struct {
	ProductType string           `json:"productType"`
	Categories  []string         `json:"categories"`
	Count       int              `json:"count"`
	Products    []domain.Product `json:"products"`
	Message     string           `json:"message,omitempty"`
}

// AnalysisReportResponse is returned by POST /api/v1/analysis/recommendations
type AnalysisReportResponse struct {
	SkinType        string                        `json:"skinType"`
	Recommendations []domain.ReportRecommendation `json:"recommendations"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	catalogSize := 0
	if h.catalog != nil {
		catalogSize = h.catalog.Len()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"service":     serviceName,
		"version":     serviceVersion,
		"catalogSize": catalogSize,
	})
}

// GetRecommendations handles single product-type recommendation requests
func (h *Handler) GetRecommendations(c *gin.Context) {
	if !h.serviceReady(c) {
		return
	}

	req, ok := h.bindRecommendationRequest(c)
	if !ok {
		return
	}

	rec := h.service.Recommend(req)
	resp := RecommendationResponse{
		ProductType: rec.ProductType,
		Categories:  rec.Categories,
		Count:       len(rec.Products),
		Products:    rec.Products,
	}
	if resp.Count == 0 {
		resp.Message = h.service.EmptyMessage(req.Locale)
	}

	c.JSON(http.StatusOK, resp)
}

// ExplainRecommendations returns the per-stage candidate trace for a request
func (h *Handler) ExplainRecommendations(c *gin.Context) {
	if !h.serviceReady(c) {
		return
	}

	req, ok := h.bindRecommendationRequest(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.service.Explain(req))
}

// AnalysisRecommendations matches every product suggestion in a raw AI
// analysis document against the catalog
func (h *Handler) AnalysisRecommendations(c *gin.Context) {
	if !h.serviceReady(c) {
		return
	}

	limit, err := h.queryLimit(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.limitBody(c)
	body, err := c.GetRawData()
	if err != nil {
		h.respondError(c, fmt.Errorf("%w: %w", domain.ErrInvalidAnalysis, err))
		return
	}

	analysis, err := usecase.ParseAnalysis(body)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// Key on the decoded document so fences and whitespace do not fragment the cache
	locale := c.GetHeader("Accept-Language")
	key, cacheable := h.reportCacheKey(analysis, locale, limit)
	if cacheable {
		if cached, ok := h.cachedResponse(c, key); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}
	}

	recs, err := h.service.RecommendForAnalysis(c.Request.Context(), analysis, usecase.ReportOptions{
		Locale: locale,
		Limit:  limit,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	encoded, err := json.Marshal(AnalysisReportResponse{
		SkinType:        usecase.NormalizeSkinType(analysis.SkinType),
		Recommendations: recs,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	if cacheable {
		h.storeResponse(c, key, encoded)
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", encoded)
}

// ListProducts lists catalog products, optionally narrowed by category and
// skin type
func (h *Handler) ListProducts(c *gin.Context) {
	if !h.serviceReady(c) {
		return
	}

	products := h.service.Browse(c.Query("category"), c.Query("skinType"))
	c.JSON(http.StatusOK, gin.H{
		"count":    len(products),
		"products": products,
	})
}

// GetProduct returns a single catalog product
func (h *Handler) GetProduct(c *gin.Context) {
	if !h.catalogReady(c) {
		return
	}

	product, err := h.catalog.ProductByID(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListCategories returns the catalog's category labels with product counts
func (h *Handler) ListCategories(c *gin.Context) {
	if !h.catalogReady(c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": h.catalog.Categories(),
		"canonical":  domain.CanonicalCategories,
	})
}

// bindRecommendationRequest decodes and normalizes a recommendation body.
// It writes the error response itself and reports whether to continue.
func (h *Handler) bindRecommendationRequest(c *gin.Context) (domain.RecommendationRequest, bool) {
	h.limitBody(c)
	var body RecommendationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err))
		return domain.RecommendationRequest{}, false
	}

	if strings.TrimSpace(body.ProductType) == "" {
		h.respondError(c, fmt.Errorf("%w: productType is required", domain.ErrInvalidRequest))
		return domain.RecommendationRequest{}, false
	}

	locale := body.Locale
	if locale == "" {
		locale = c.GetHeader("Accept-Language")
	}

	return domain.RecommendationRequest{
		ProductTypeLabel: strings.TrimSpace(body.ProductType),
		Concerns:         body.Concerns,
		SkinType:         strings.TrimSpace(body.SkinType),
		Limit:            h.clampLimit(body.Limit),
		Locale:           locale,
	}, true
}

// queryLimit reads the optional ?limit= parameter. Zero means the service
// default.
func (h *Handler) queryLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("%w: limit must be a non-negative integer", domain.ErrInvalidRequest)
	}
	return h.clampLimit(limit), nil
}

func (h *Handler) clampLimit(limit int) int {
	if limit > h.opts.MaxLimit {
		return h.opts.MaxLimit
	}
	return limit
}

// reportCacheKey derives the cache key for an analysis report. It reports
// false when caching is disabled.
func (h *Handler) reportCacheKey(analysis *domain.AnalysisResult, locale string, limit int) (string, bool) {
	if h.opts.Cache == nil {
		return "", false
	}

	canonical, err := json.Marshal(analysis)
	if err != nil {
		return "", false
	}
	return cache.Key(reportCacheNamespace, locale, strconv.Itoa(limit), string(canonical)), true
}

func (h *Handler) cachedResponse(c *gin.Context, key string) ([]byte, bool) {
	if h.opts.Cache == nil {
		return nil, false
	}

	data, err := h.opts.Cache.Get(c.Request.Context(), key)
	if err != nil {
		metrics.CacheMisses.Inc()
		return nil, false
	}

	metrics.CacheHits.Inc()
	return data, true
}

func (h *Handler) storeResponse(c *gin.Context, key string, data []byte) {
	if h.opts.Cache == nil {
		return
	}

	if err := h.opts.Cache.Set(c.Request.Context(), key, data, h.opts.CacheTTL); err != nil {
		h.logger.Warn("failed to cache report response", zap.Error(err))
	}
}

func (h *Handler) serviceReady(c *gin.Context) bool {
	if h.service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "recommendation service not configured",
		})
		return false
	}
	return true
}

func (h *Handler) catalogReady(c *gin.Context) bool {
	if h.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "product catalog not configured",
		})
		return false
	}
	return true
}

// limitBody caps how much of the request body later reads may consume
func (h *Handler) limitBody(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opts.MaxBodyBytes)
}

// respondError writes the status and message errorResponse picks for err.
// Unmapped errors are logged.
func (h *Handler) respondError(c *gin.Context, err error) {
	status, message := errorResponse(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(status, gin.H{"error": message})
}

// errorResponse maps domain errors to an HTTP status and client message
func errorResponse(err error) (int, string) {
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &tooLarge):
		return http.StatusBadRequest, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrInvalidAnalysis):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, domain.ErrProductNotFound.Error()
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, domain.ErrRateLimited.Error()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "request cancelled"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
