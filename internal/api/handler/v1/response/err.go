package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the uniform error payload. Every failure is recoverable from the
// client's point of view: it shows the message and lets the user retry.
type Err struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"error"`
}

func (e *Err) Error() string {
	return e.Msg
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        err.Error(),
	}
}

func ErrUnauthenticated() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        "please log in first",
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        err.Error(),
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v not found by %v (%v)", resource, key, value),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		Msg:        err.Error(),
	}
}

// ErrBadGateway covers failed reads and writes against the collection API.
func ErrBadGateway(err error) *Err {
	zap.L().Warn("collection API failure", zap.Error(err))

	return &Err{
		StatusCode: http.StatusBadGateway,
		Msg:        err.Error(),
	}
}

// ErrInternalServerError logs the wrapped cause and hides it from the
// client.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Msg:        "something went wrong",
	}
}
