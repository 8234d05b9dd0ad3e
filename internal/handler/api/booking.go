package api

import (
	"net/http"
	"time"

	"market-admin/internal/domain/booking"
	reqdto "market-admin/internal/handler/dto/request"
	resdto "market-admin/internal/handler/dto/response"
	"market-admin/internal/handler/httperr"
	"market-admin/internal/infra/export"
	"market-admin/internal/pkg/errs"
	"market-admin/internal/usecase/commands"
	"market-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	lifecycle commands.BookingLifecycle
	q         queries.BookingQueries
}

func NewBookingHandler(lifecycle commands.BookingLifecycle, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{lifecycle: lifecycle, q: q}
}

// @Summary List bookings
// @Description Paginated bookings table
// @Tags bookings
// @Produce json
// @Param page query int false "Zero-based page index"
// @Param page_size query int false "Rows per page"
// @Param sort query string false "Column key"
// @Param desc query bool false "Descending"
// @Param search query string false "Search text"
// @Param status query string false "Status filter"
// @Success 200 {object} tableview.Table
// @Failure 502 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var q reqdto.TableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	table, err := h.q.BookingTable(c.Request.Context(), q.ToQuery())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, table)
}

// @Summary Export bookings
// @Description Current bookings page as an XLSX workbook
// @Tags bookings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /bookings/export [get]
func (h *BookingHandler) Export(c *gin.Context) {
	var q reqdto.TableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	table, err := h.q.BookingTable(c.Request.Context(), q.ToQuery())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load bookings")
		return
	}
	data, err := export.XLSX("Bookings", *table)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Export failed", nil)
		return
	}
	filename := "bookings-" + time.Now().UTC().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, export.XLSXContentType, data)
}

// @Summary Booking detail
// @Description Loads the booking into the lifecycle controller and returns its view
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} commands.BookingView
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.lifecycle.Load(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Release a booking view
// @Description Drops the loaded booking; responses still in flight are discarded
// @Tags bookings
// @Param id path int true "Booking ID"
// @Success 204 "No Content"
// @Router /bookings/{id}/view [delete]
func (h *BookingHandler) Release(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.lifecycle.Forget(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

// @Summary Change delivery status
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body reqdto.DeliveryStatusRequest true "New delivery status"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/status [put]
func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	var req reqdto.DeliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.transition(c, booking.AxisDelivery, req.Status)
}

// @Summary Change payment status
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body reqdto.PaymentStatusRequest true "New payment status"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/payment-status [put]
func (h *BookingHandler) ChangePaymentStatus(c *gin.Context) {
	var req reqdto.PaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.transition(c, booking.AxisPayment, req.PaymentStatus)
}

// @Summary Cancel booking
// @Description Allowed only while delivery is processing and payment is pending
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	res, err := h.lifecycle.Cancel(ctx, id)
	if errs.Is(err, errs.ErrBookingNotLoaded) {
		if _, err = h.lifecycle.Load(ctx, id); err == nil {
			res, err = h.lifecycle.Cancel(ctx, id)
		}
	}
	if err != nil {
		abortWithUseCaseError(c, err, "Cancellation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransition(res))
}

// @Summary Booking stats
// @Tags bookings
// @Produce json
// @Success 200 {object} readmodel.OrderStats
// @Router /bookings/stats [get]
func (h *BookingHandler) Stats(c *gin.Context) {
	stats, err := h.q.BookingStats(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Booking graph
// @Tags bookings
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Success 200 {array} readmodel.GraphPoint
// @Router /bookings/graph [get]
func (h *BookingHandler) Graph(c *gin.Context) {
	var q reqdto.StartDateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	series, err := h.q.BookingGraph(c.Request.Context(), q.StartDate)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load graph")
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *BookingHandler) transition(c *gin.Context, axis booking.Axis, value string) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	res, err := h.lifecycle.Transition(ctx, id, axis, value)
	if errs.Is(err, errs.ErrBookingNotLoaded) {
		// callers that skipped the detail view
		if _, err = h.lifecycle.Load(ctx, id); err == nil {
			res, err = h.lifecycle.Transition(ctx, id, axis, value)
		}
	}
	if err != nil {
		abortWithUseCaseError(c, err, "Status update failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransition(res))
}
