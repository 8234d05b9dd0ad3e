package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"market-admin/internal/domain/catalog"
	resdto "market-admin/internal/handler/dto/response"
	"market-admin/internal/handler/httperr"
	"market-admin/internal/infra/apiclient"
	"market-admin/internal/pkg/errs"
	"market-admin/internal/usecase/commands"
	"market-admin/internal/usecase/queries"
	"market-admin/internal/usecase/readmodel"
	"market-admin/internal/usecase/tableview"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps use case and facade errors onto HTTP responses. Upstream
// status errors keep their status and structured body; the rest become 502.
func abortWithUseCaseError(c *gin.Context, err error, msg string) {
	var fieldErr *catalog.FieldError
	var apiErr *apiclient.Error

	switch {
	case errors.As(err, &fieldErr):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "All fields are required", gin.H{"fields": fieldErr.Fields})
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
	case errs.Is(err, commands.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errs.Is(err, errs.ErrBookingNotLoaded):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not loaded", nil)
	case errs.Is(err, errs.ErrInvalidTransition), errs.Is(err, errs.ErrCancelNotAllowed):
		httperr.AbortWithError(c, http.StatusConflict, err, msg, err.Error())
	case errs.Is(err, errs.ErrTransitionRejected), errs.Is(err, commands.ErrRejected):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msg, err.Error())
	case errors.As(err, &apiErr):
		abortWithUpstreamError(c, apiErr, msg)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortWithUpstreamError(c *gin.Context, apiErr *apiclient.Error, msg string) {
	detail := gin.H{"kind": apiErr.Kind}
	if apiErr.Message != "" {
		detail["message"] = apiErr.Message
	}
	if apiErr.Detail != "" {
		detail["error_detail"] = apiErr.Detail
	}

	status := http.StatusBadGateway
	if apiErr.Kind == apiclient.KindStatus && apiErr.Status >= 400 && apiErr.Status < 500 {
		status = apiErr.Status
	}
	httperr.AbortWithError(c, status, apiErr, msg, detail)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

type tableLoader func(ctx context.Context, q queries.TableQuery) (*tableview.Table, error)

// respondMutation writes the backend's confirmation envelope or the mapped error.
func respondMutation(c *gin.Context, status int, failure string) func(*readmodel.MutationResult, error) {
	return func(res *readmodel.MutationResult, err error) {
		if err != nil {
			abortWithUseCaseError(c, err, failure)
			return
		}
		c.JSON(status, resdto.FromEnvelope(res.Envelope))
	}
}
