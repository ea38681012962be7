package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/Shreevarshagopal/E-waste-price-estimator/internal/adapter/http/dto/request"
	response "github.com/Shreevarshagopal/E-waste-price-estimator/internal/adapter/http/dto/response"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/usecase"
	"github.com/Shreevarshagopal/E-waste-price-estimator/pkg"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler handles e-waste submissions: metadata plus an image
// reference in, a persisted item with its price estimate out.

type SubmissionHandler struct {
	usecase usecase.ISubmissionUseCase
}

func NewSubmissionHandler(uc usecase.ISubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{usecase: uc}
}

func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var payload request.SubmissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	item, estimate, err := h.usecase.Submit(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[submission][handler] submit failed user_id=%s err=%v", cmd.UserID, err)
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSubmission(item, estimate))
}

// GetSubmission reads a persisted submission back by id.
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	item, err := h.usecase.GetSubmission(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubmissionDetail(item))
}

func mapSubmissionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingItemType),
		errors.Is(err, usecase.ErrMissingImage),
		errors.Is(err, usecase.ErrNegativeAge),
		errors.Is(err, usecase.ErrInvalidSubmissionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionNotFound):
		return pkg.NewDomainErrorSimple("SUBMISSION_NOT_FOUND", "Submission not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
