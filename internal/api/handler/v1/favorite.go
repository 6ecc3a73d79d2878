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
	"github.com/Keerthid-10/taylor/internal/domain"
	"github.com/Keerthid-10/taylor/internal/service"
)

type FavoritesService interface {
	List(ctx context.Context, sess domain.Session) ([]domain.Favorite, error)
	Add(ctx context.Context, sess domain.Session, artistID string) (domain.Favorite, error)
	Remove(ctx context.Context, sess domain.Session, favoriteID string) error
}

type FavoriteHandler struct {
	svc FavoritesService
}

func NewFavoriteHandler(svc FavoritesService) *FavoriteHandler {
	return &FavoriteHandler{
		svc: svc,
	}
}

// HandleListFavorites godoc
// @Summary      List the logged-in user's favorite artists
// @Tags         favorites
// @Produce      json
// @Success      200  {array}   domain.Favorite
// @Failure      401  {object}  response.Err
// @Failure      502  {object}  response.Err
// @Router       /favorites [get]
// @Security BearerAuth
func (h *FavoriteHandler) HandleListFavorites(ctx *gin.Context) {
	sess := middleware.SessionFromContext(ctx)

	favorites, err := h.svc.List(ctx.Request.Context(), sess)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			response.RenderErr(ctx, response.ErrUnauthenticated())
			return
		}

		err = fmt.Errorf("v1.HandleListFavorites -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrBadGateway(err))
		return
	}

	ctx.JSON(http.StatusOK, favorites)
}

// HandleAddFavorite godoc
// @Summary      Favorite an artist
// @Tags         favorites
// @Produce      json
// @Param        request   body      request.AddFavoriteRequest true "request body"
// @Success      201  {object}  domain.Favorite
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      502  {object}  response.Err
// @Router       /favorites [post]
// @Security BearerAuth
func (h *FavoriteHandler) HandleAddFavorite(ctx *gin.Context) {
	var req request.AddFavoriteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sess := middleware.SessionFromContext(ctx)

	favorite, err := h.svc.Add(ctx.Request.Context(), sess, req.ArtistID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			response.RenderErr(ctx, response.ErrUnauthenticated())
		case errors.Is(err, service.ErrArtistNotFound):
			response.RenderErr(ctx, response.ErrNotFound("artist", "id", req.ArtistID))
		case errors.Is(err, service.ErrAlreadyFavorited):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleAddFavorite -> h.svc.Add -> %w", err)
			response.RenderErr(ctx, response.ErrBadGateway(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, favorite)
}

// HandleRemoveFavorite godoc
// @Summary      Unfavorite an artist
// @Description  Removing an already-removed favorite still succeeds.
// @Tags         favorites
// @Param        favoriteID  path  string true "favorite id"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      502  {object}  response.Err
// @Router       /favorites/{favoriteID} [delete]
// @Security BearerAuth
func (h *FavoriteHandler) HandleRemoveFavorite(ctx *gin.Context) {
	sess := middleware.SessionFromContext(ctx)

	if err := h.svc.Remove(ctx.Request.Context(), sess, ctx.Param("favoriteID")); err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			response.RenderErr(ctx, response.ErrUnauthenticated())
			return
		}

		err = fmt.Errorf("v1.HandleRemoveFavorite -> h.svc.Remove -> %w", err)
		response.RenderErr(ctx, response.ErrBadGateway(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
