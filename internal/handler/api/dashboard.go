package api

import (
	"context"
	"net/http"

	reqdto "market-admin/internal/handler/dto/request"
	resdto "market-admin/internal/handler/dto/response"
	"market-admin/internal/handler/httperr"
	"market-admin/internal/usecase/queries"
	"market-admin/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	q queries.DashboardQueries
}

func NewDashboardHandler(q queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{q: q}
}

// @Summary Order graph
// @Tags dashboard
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Success 200 {array} readmodel.GraphPoint
// @Router /orders/graph [get]
func (h *DashboardHandler) OrderGraph(c *gin.Context) {
	h.graph(c, h.q.OrderGraph)
}

// @Summary Sales graph
// @Tags dashboard
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Success 200 {array} readmodel.GraphPoint
// @Router /stats/graph [get]
func (h *DashboardHandler) SalesGraph(c *gin.Context) {
	h.graph(c, h.q.SalesGraph)
}

// @Summary Dashboard counters
// @Tags dashboard
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Success 200 {object} readmodel.StatsResult
// @Router /stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	var q reqdto.StartDateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	stats, err := h.q.Stats(c.Request.Context(), q.StartDate)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary List banner types
// @Tags banners
// @Produce json
// @Param page query int false "Zero-based page index"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} readmodel.BannerTypePage
// @Router /banner-types [get]
func (h *DashboardHandler) BannerTypes(c *gin.Context) {
	var q reqdto.TableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	page, err := h.q.BannerTypes(c.Request.Context(), q.ToQuery())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load banner types")
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Banner image for a type
// @Description Falls back to the default banner when the public endpoint is unavailable
// @Tags banners
// @Produce json
// @Param type path string true "Banner type"
// @Success 200 {object} resdto.BannerResponse
// @Router /banners/by-type/{type} [get]
func (h *DashboardHandler) BannerByType(c *gin.Context) {
	bannerType := c.Param("type")
	url, err := h.q.BannerByType(c.Request.Context(), bannerType)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load banner")
		return
	}
	c.JSON(http.StatusOK, resdto.BannerResponse{Type: bannerType, URL: url})
}

type seriesLoader func(ctx context.Context, startDate string) (readmodel.GraphSeries, error)

func (h *DashboardHandler) graph(c *gin.Context, load seriesLoader) {
	var q reqdto.StartDateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	series, err := load(c.Request.Context(), q.StartDate)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load graph")
		return
	}
	if series == nil {
		series = readmodel.GraphSeries{}
	}
	c.JSON(http.StatusOK, series)
}
