package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"banglprop/server/internal/models"
)

// Querier is the read contract both backends satisfy: the SQLite query
// layer and the in-memory snapshot store. Implementations never return
// errors; an unavailable store surfaces as an empty page.
type Querier interface {
	QueryProperties(models.PropertyFilter) models.PropertyPage
	QueryAuctions(models.AuctionFilter) models.AuctionPage
}

type Handler struct {
	store  Querier
	logger *logrus.Logger
}

func NewHandler(store Querier, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Handler{store: store, logger: logger}
}

// GetProperties handles GET /api/properties. Malformed parameters are
// never rejected: a value that fails to bind simply loses its predicate.
func (h *Handler) GetProperties(c *gin.Context) {
	var filter models.PropertyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.logger.WithError(err).Warn("Ignoring malformed property filters")
	}
	f := filter.Normalized()

	page := h.store.QueryProperties(f)
	c.JSON(http.StatusOK, gin.H{
		"data":  page.Data,
		"total": page.Total,
		"page":  f.Page,
		"limit": f.Limit,
	})
}

// GetAuctions handles GET /api/auctions.
func (h *Handler) GetAuctions(c *gin.Context) {
	var filter models.AuctionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.logger.WithError(err).Warn("Ignoring malformed auction filters")
	}
	f := filter.Normalized()

	page := h.store.QueryAuctions(f)
	c.JSON(http.StatusOK, gin.H{
		"data":  page.Data,
		"total": page.Total,
		"page":  f.Page,
		"limit": f.Limit,
	})
}

// Recovery catches any unexpected handler failure, logs it server-side
// and returns the fixed error envelope with no internal detail.
func (h *Handler) Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, err interface{}) {
		h.logger.WithField("panic", err).Error("Handler failure")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Server error",
			"data":  []interface{}{},
			"total": 0,
			"page":  1,
			"limit": models.DefaultLimit,
		})
	})
}
