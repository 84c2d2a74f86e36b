package responses

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"pokedex.dev/pokedex-api/app/domain/common"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{name: "not found", err: common.NewNotFoundError("pokemon 'missingno' not found"), status: http.StatusNotFound, code: common.CodeNotFound, message: "pokemon 'missingno' not found"},
		{name: "wrapped unavailable", err: fmt.Errorf("lookup: %w", common.NewUpstreamUnavailableError("pokeapi returned status 500")), status: http.StatusServiceUnavailable, code: common.CodeUpstreamUnavailable, message: "pokeapi returned status 500"},
		{name: "invalid", err: common.NewInvalidArgumentError("pokemon name must not be empty"), status: http.StatusBadRequest, code: common.CodeInvalidArgument, message: "pokemon name must not be empty"},
		{name: "unexpected", err: errors.New("dial tcp: secret internals"), status: http.StatusInternalServerError, code: codeInternal, message: "internal server error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			reqCtx, _ := gin.CreateTestContext(recorder)

			AbortWithError(reqCtx, tc.err)

			require.Equal(t, tc.status, recorder.Code)
			require.True(t, reqCtx.IsAborted())

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			require.Equal(t, ErrorResponse{Code: tc.code, Error: tc.message}, body)
		})
	}
}
