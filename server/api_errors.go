package kitchenposserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "kitchenpos/internal/shared/errors"
	"kitchenpos/internal/shared/invalid"
)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	apierrors.Respond(c, problem)
}

// respondError returns RFC 7807 responses for transport-level failures such
// as unparseable payloads.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var problem apierrors.ProblemDetail
	switch status {
	case http.StatusBadRequest:
		problem = apierrors.ErrBadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		problem = apierrors.ErrNotFound.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	respondProblem(c, problem)
}

// respondServiceError maps service rejections to HTTP. Every business rule
// violation is an invalid argument with a machine-readable reason code; any
// other error is a server fault.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if reason, ok := invalid.ReasonOf(err); ok {
		respondProblem(c, apierrors.NewInvalidArgumentProblem(string(reason), err.Error()))
		return
	}
	respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
}
