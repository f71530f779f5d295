package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/mortgage-explorer/internal/calculation"
	"github.com/rpgo/mortgage-explorer/internal/config"
	"github.com/rpgo/mortgage-explorer/internal/domain"
	"github.com/rpgo/mortgage-explorer/internal/output"
	"go.uber.org/zap"
)

// maxSimulations caps the Monte Carlo runs a single request may ask for.
const maxSimulations = 20000

// Handler serves the amortization and projection engines over HTTP.
type Handler struct {
	engine   *calculation.CalculationEngine
	cache    ResultCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewHandler creates a handler. cache may be nil to disable caching.
func NewHandler(engine *calculation.CalculationEngine, cache ResultCache, cacheTTL time.Duration, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		engine:   engine,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// RegisterRoutes registers the calculator routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/amortization", h.amortization)
	router.POST("/projection", h.projection)
	router.POST("/report", h.report)
	router.POST("/simulate", h.simulate)
	router.GET("/defaults", h.defaults)
	router.GET("/formats", h.formats)
}

// amortization handles POST /api/v1/amortization
func (h *Handler) amortization(c *gin.Context) {
	var req domain.LoanInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Policy == "" {
		req.Policy = domain.ReduceInstallment
	}
	params := req.Parameters()
	if err := config.ValidateLoan(params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.cached(c, "loan", req, func() (any, error) {
		report := h.engine.RunLoan(params)
		report.StartDate = req.StartDate
		return report, nil
	})
}

// projection handles POST /api/v1/projection
func (h *Handler) projection(c *gin.Context) {
	var req domain.ProjectionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	params := req.Parameters()
	if err := config.ValidateProjection(params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.cached(c, "projection", req, func() (any, error) {
		return h.engine.RunProjection(params), nil
	})
}

// simulateRequest is a projection plus Monte Carlo settings. Unset settings take the defaults.
type simulateRequest struct {
	Projection             domain.ProjectionInput `json:"projection"`
	Simulations            int                    `json:"simulations"`
	Seed                   int64                  `json:"seed"`
	ReturnVolatility       *float64               `json:"return_volatility"`
	AppreciationVolatility *float64               `json:"appreciation_volatility"`
}

func (r simulateRequest) monteCarloConfig() calculation.MonteCarloConfig {
	mc := calculation.DefaultMonteCarloConfig()
	if r.Simulations != 0 {
		mc.NumSimulations = r.Simulations
	}
	if r.ReturnVolatility != nil {
		mc.ReturnVolatility = *r.ReturnVolatility
	}
	if r.AppreciationVolatility != nil {
		mc.AppreciationVolatility = *r.AppreciationVolatility
	}
	mc.Seed = r.Seed
	return mc
}

// simulate handles POST /api/v1/simulate. Only seeded runs are cached since unseeded
// runs draw a fresh seed each time.
func (h *Handler) simulate(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	params := req.Projection.Parameters()
	if err := config.ValidateProjection(params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mc := req.monteCarloConfig()
	if mc.NumSimulations > maxSimulations {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d simulations per request", maxSimulations)})
		return
	}
	if err := mc.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run := func() (any, error) {
		simulator := calculation.NewMonteCarloSimulator(mc)
		simulator.SetLogger(h.engine.Logger)
		return simulator.RunSimulation(params)
	}
	if mc.Seed == 0 {
		result, err := run()
		if err != nil {
			h.logger.Error("Failed to run simulation", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}
	h.cached(c, "simulation", req, run)
}

// report handles POST /api/v1/report?format=html and renders a full configuration.
func (h *Handler) report(c *gin.Context) {
	var cfg domain.Configuration
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := config.NewInputParser().ValidateConfiguration(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	format := c.DefaultQuery("format", "json")
	f := output.GetFormatterByName(format)
	if f == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%v: %q", output.ErrUnsupportedFormat, format), "formats": output.AvailableFormatterNames()})
		return
	}

	report, err := h.engine.Run(&cfg)
	if err != nil {
		h.logger.Error("Failed to run calculation", zap.Error(err), zap.String(requestIDKey, c.GetString(requestIDKey)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	data, err := f.Format(report)
	if err != nil {
		h.logger.Error("Failed to render report", zap.Error(err), zap.String("format", f.Name()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, contentType(f.Name()), data)
}

// defaults handles GET /api/v1/defaults
func (h *Handler) defaults(c *gin.Context) {
	c.JSON(http.StatusOK, config.NewInputParser().CreateExampleConfiguration())
}

// formats handles GET /api/v1/formats
func (h *Handler) formats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"formats": output.AvailableFormatterNames(), "aliases": output.AvailableFormatAliases()})
}

// cached serves a JSON result from the cache or computes, stores and serves it.
// Cache failures are logged and never fail the request.
func (h *Handler) cached(c *gin.Context, kind string, req any, compute func() (any, error)) {
	ctx := c.Request.Context()
	key, err := CacheKey(kind, req)
	if err != nil {
		h.logger.Warn("Failed to build cache key", zap.Error(err))
	}

	if h.cache != nil && key != "" {
		data, err := h.cache.Get(ctx, key)
		if err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", data)
			return
		}
		if !errors.Is(err, ErrCacheMiss) {
			h.logger.Warn("Failed to read cached result", zap.Error(err), zap.String("key", key))
		}
	}

	result, err := compute()
	if err != nil {
		h.logger.Error("Failed to compute result", zap.Error(err), zap.String("kind", kind))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		h.logger.Error("Failed to encode result", zap.Error(err), zap.String("kind", kind))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.cache != nil && key != "" {
		if err := h.cache.Set(ctx, key, data, h.cacheTTL); err != nil {
			h.logger.Warn("Failed to store cached result", zap.Error(err), zap.String("key", key))
		}
		c.Header("X-Cache", "MISS")
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func contentType(format string) string {
	switch format {
	case "json":
		return "application/json; charset=utf-8"
	case "csv", "detailed-csv":
		return "text/csv; charset=utf-8"
	case "html":
		return "text/html; charset=utf-8"
	case "pdf":
		return "application/pdf"
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/plain; charset=utf-8"
	}
}
