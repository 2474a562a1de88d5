package responses

import (
	"github.com/gin-gonic/gin"
	"pokedex.dev/pokedex-api-gateway/app/domain/common"
)

type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// AbortWithError writes the classified error body and stops the chain.
func AbortWithError(reqCtx *gin.Context, err *common.Error) {
	reqCtx.AbortWithStatusJSON(err.Status, ErrorResponse{
		Code:  err.Code,
		Error: err.Message,
	})
}
