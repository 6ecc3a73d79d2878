package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Keerthid-10/taylor/internal/api/handler/v1/response"
	"github.com/Keerthid-10/taylor/internal/api/middleware"
	"github.com/Keerthid-10/taylor/internal/domain"
	"github.com/Keerthid-10/taylor/internal/service"
)

type CatalogService interface {
	ListArtists(ctx context.Context) ([]domain.Artist, error)
	ListConcerts(ctx context.Context) ([]domain.Concert, error)
	GetConcert(ctx context.Context, id string) (domain.Concert, error)
	Dashboard(ctx context.Context, sess domain.Session) (domain.Dashboard, error)
}

type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
	}
}

// HandleListArtists godoc
// @Summary      List all artists
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Artist
// @Failure      502  {object}  response.Err
// @Router       /artists [get]
func (h *CatalogHandler) HandleListArtists(ctx *gin.Context) {
	artists, err := h.svc.ListArtists(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListArtists -> h.svc.ListArtists -> %w", err)
		response.RenderErr(ctx, response.ErrBadGateway(err))
		return
	}

	ctx.JSON(http.StatusOK, artists)
}

// HandleListConcerts godoc
// @Summary      List concerts, optionally filtered by continent
// @Tags         catalog
// @Produce      json
// @Param        continent  query     string false "continent name or All"
// @Success      200  {array}   domain.Concert
// @Failure      502  {object}  response.Err
// @Router       /concerts [get]
func (h *CatalogHandler) HandleListConcerts(ctx *gin.Context) {
	concerts, err := h.svc.ListConcerts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListConcerts -> h.svc.ListConcerts -> %w", err)
		response.RenderErr(ctx, response.ErrBadGateway(err))
		return
	}

	if continent := ctx.Query("continent"); continent != "" {
		concerts = service.FilterByContinent(concerts, continent)
	}

	ctx.JSON(http.StatusOK, concerts)
}

// HandleConcertSummary godoc
// @Summary      Count concerts per continent
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string]int
// @Failure      502  {object}  response.Err
// @Router       /concerts/summary [get]
func (h *CatalogHandler) HandleConcertSummary(ctx *gin.Context) {
	concerts, err := h.svc.ListConcerts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleConcertSummary -> h.svc.ListConcerts -> %w", err)
		response.RenderErr(ctx, response.ErrBadGateway(err))
		return
	}

	ctx.JSON(http.StatusOK, service.SummarizeByContinent(concerts))
}

// HandleGetConcert godoc
// @Summary      Get one concert
// @Tags         catalog
// @Produce      json
// @Param        concertID  path      string true "concert id"
// @Success      200  {object}  domain.Concert
// @Failure      404  {object}  response.Err
// @Failure      502  {object}  response.Err
// @Router       /concerts/{concertID} [get]
func (h *CatalogHandler) HandleGetConcert(ctx *gin.Context) {
	id := ctx.Param("concertID")

	concert, err := h.svc.GetConcert(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrConcertNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("concert", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetConcert -> h.svc.GetConcert -> %w", err)
		response.RenderErr(ctx, response.ErrBadGateway(err))
		return
	}

	ctx.JSON(http.StatusOK, concert)
}

// HandleDashboard godoc
// @Summary      Aggregate home view for the logged-in user
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  domain.Dashboard
// @Failure      401  {object}  response.Err
// @Failure      502  {object}  response.Err
// @Router       /dashboard [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleDashboard(ctx *gin.Context) {
	sess := middleware.SessionFromContext(ctx)

	dashboard, err := h.svc.Dashboard(ctx.Request.Context(), sess)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			response.RenderErr(ctx, response.ErrUnauthenticated())
			return
		}

		err = fmt.Errorf("v1.HandleDashboard -> h.svc.Dashboard -> %w", err)
		response.RenderErr(ctx, response.ErrBadGateway(err))
		return
	}

	ctx.JSON(http.StatusOK, dashboard)
}
