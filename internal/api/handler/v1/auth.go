package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Keerthid-10/taylor/internal/api/handler/v1/request"
	"github.com/Keerthid-10/taylor/internal/api/handler/v1/response"
	"github.com/Keerthid-10/taylor/internal/api/middleware"
	"github.com/Keerthid-10/taylor/internal/config"
	"github.com/Keerthid-10/taylor/internal/domain"
	"github.com/Keerthid-10/taylor/internal/pkg/jwthelper"
	"github.com/Keerthid-10/taylor/internal/service"
)

type AuthService interface {
	Register(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Logout(sess domain.Session)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleRegister godoc
// @Summary      Register a new user
// @Tags         auth
// @Produce      json
// @Param        request   body      request.RegisterRequest true "request body"
// @Success      201      {object}   domain.User
// @Failure      400      {object}   response.ValidationErrors
// @Failure      502      {object}   response.Err
// @Router       /auth/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	// Submission is gated on every field being valid at its current value.
	if fieldErrs := req.FieldErrors(); len(fieldErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, response.ValidationErrors{Errors: fieldErrs})
		return
	}

	user, err := h.svc.Register(ctx.Request.Context(), domain.User{
		UserName:    req.UserName,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Continent:   req.Continent,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrBadGateway(err))
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// HandleValidateRegistration godoc
// @Summary      Validate a registration form without submitting it
// @Description  Returns a message per invalid field, recomputed from the full form.
// @Tags         auth
// @Produce      json
// @Param        request   body      request.RegisterRequest true "request body"
// @Success      200      {object}   response.ValidationErrors
// @Failure      400      {object}   response.Err
// @Router       /auth/register/validate [post]
func (h *AuthHandler) HandleValidateRegistration(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ValidationErrors{Errors: req.FieldErrors()})
}

// HandleLogin godoc
// @Summary      Login a user
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      401      {object}   response.Err
// @Failure      502      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sess, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrInvalidCredentials) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrBadGateway(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), sess.Key, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  sess.User,
	})
}

// HandleLogout godoc
// @Summary      Logout the current user
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
// @Security BearerAuth
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	h.svc.Logout(middleware.SessionFromContext(ctx))

	ctx.Status(http.StatusNoContent)
}
