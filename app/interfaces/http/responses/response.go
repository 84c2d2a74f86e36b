package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"pokedex.dev/pokedex-api/app/domain/common"
)

type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

type GeneralResponse[T any] struct {
	Status string `json:"status"`
	Result T      `json:"result"`
}

const ResponseCodeOk = "000000"

const codeInternal = "internal_error"

// AbortWithError maps the domain error taxonomy onto HTTP statuses.
func AbortWithError(reqCtx *gin.Context, err error) {
	status, code := http.StatusInternalServerError, codeInternal
	switch {
	case errors.Is(err, common.ErrNotFound):
		status, code = http.StatusNotFound, common.CodeNotFound
	case errors.Is(err, common.ErrUpstreamUnavailable):
		status, code = http.StatusServiceUnavailable, common.CodeUpstreamUnavailable
	case errors.Is(err, common.ErrInvalidArgument):
		status, code = http.StatusBadRequest, common.CodeInvalidArgument
	}

	message := err.Error()
	var domainErr *common.Error
	if errors.As(err, &domainErr) {
		message = domainErr.Message
	}
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	reqCtx.AbortWithStatusJSON(status, ErrorResponse{
		Code:  code,
		Error: message,
	})
}
