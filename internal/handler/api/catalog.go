package api

import (
	"net/http"

	reqdto "market-admin/internal/handler/dto/request"
	"market-admin/internal/handler/httperr"
	"market-admin/internal/usecase/commands"
	"market-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List subscription plans
// @Tags subscriptions
// @Produce json
// @Param page query int false "Zero-based page index"
// @Param page_size query int false "Rows per page"
// @Param sort query string false "Column key"
// @Param desc query bool false "Descending"
// @Success 200 {object} tableview.Table
// @Router /subscriptions [get]
func (h *CatalogHandler) ListSubscriptions(c *gin.Context) {
	h.table(c, h.q.SubscriptionTable, "Failed to load subscriptions")
}

// @Summary List subscribers
// @Description Vendors with their plan and an active badge derived from the end date
// @Tags subscriptions
// @Produce json
// @Success 200 {object} tableview.Table
// @Router /subscriptions/subscribers [get]
func (h *CatalogHandler) ListSubscribers(c *gin.Context) {
	h.table(c, h.q.SubscriberTable, "Failed to load subscribers")
}

// @Summary Create subscription plan
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body reqdto.SubscriptionRequest true "Plan"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /subscriptions [post]
func (h *CatalogHandler) CreateSubscription(c *gin.Context) {
	var req reqdto.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	respondMutation(c, http.StatusCreated, "Failed to create subscription")(h.cmds.CreateSubscription(c.Request.Context(), req.ToForm()))
}

// @Summary Update subscription plan
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param request body reqdto.SubscriptionRequest true "Plan"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /subscriptions/{id} [put]
func (h *CatalogHandler) UpdateSubscription(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	respondMutation(c, http.StatusOK, "Failed to update subscription")(h.cmds.UpdateSubscription(c.Request.Context(), id, req.ToForm()))
}

// @Summary Delete subscription plan
// @Tags subscriptions
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} resdto.MessageResponse
// @Router /subscriptions/{id} [delete]
func (h *CatalogHandler) DeleteSubscription(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respondMutation(c, http.StatusOK, "Failed to delete subscription")(h.cmds.DeleteSubscription(c.Request.Context(), id))
}

// @Summary List countries
// @Tags locations
// @Produce json
// @Success 200 {object} tableview.Table
// @Router /countries [get]
func (h *CatalogHandler) ListCountries(c *gin.Context) {
	h.table(c, h.q.CountryTable, "Failed to load countries")
}

// @Summary Create country
// @Tags locations
// @Accept json
// @Produce json
// @Param request body reqdto.CountryRequest true "Country"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /countries [post]
func (h *CatalogHandler) CreateCountry(c *gin.Context) {
	var req reqdto.CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	respondMutation(c, http.StatusCreated, "Failed to create country")(h.cmds.CreateCountry(c.Request.Context(), req.ToForm()))
}

// @Summary Update country
// @Tags locations
// @Accept json
// @Produce json
// @Param id path int true "Country ID"
// @Param request body reqdto.CountryRequest true "Country"
// @Success 200 {object} resdto.MessageResponse
// @Router /countries/{id} [put]
func (h *CatalogHandler) UpdateCountry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	respondMutation(c, http.StatusOK, "Failed to update country")(h.cmds.UpdateCountry(c.Request.Context(), id, req.ToForm()))
}

// @Summary Delete country
// @Tags locations
// @Produce json
// @Param id path int true "Country ID"
// @Success 200 {object} resdto.MessageResponse
// @Router /countries/{id} [delete]
func (h *CatalogHandler) DeleteCountry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respondMutation(c, http.StatusOK, "Failed to delete country")(h.cmds.DeleteCountry(c.Request.Context(), id))
}

// @Summary List locations, states or cities
// @Tags locations
// @Produce json
// @Param kind path string true "locations, states or cities"
// @Success 200 {object} readmodel.PlacePage
// @Router /places/{kind} [get]
func (h *CatalogHandler) ListPlaces(c *gin.Context) {
	kind := queries.PlaceKind(c.Param("kind"))
	switch kind {
	case queries.PlaceLocations, queries.PlaceStates, queries.PlaceCities:
	default:
		httperr.AbortWithError(c, http.StatusNotFound, nil, "Unknown place kind", nil)
		return
	}
	var q reqdto.TableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	page, err := h.q.Places(c.Request.Context(), kind, q.ToQuery())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load "+string(kind))
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CatalogHandler) table(c *gin.Context, load tableLoader, failure string) {
	var q reqdto.TableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	table, err := load(c.Request.Context(), q.ToQuery())
	if err != nil {
		abortWithUseCaseError(c, err, failure)
		return
	}
	c.JSON(http.StatusOK, table)
}
