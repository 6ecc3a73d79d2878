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

type BookingService interface {
	Purchase(ctx context.Context, sess domain.Session, concertID string, tickets int) (domain.PurchaseRecord, error)
	History(ctx context.Context, sess domain.Session) ([]domain.PurchaseRecord, error)
}

type PurchaseHandler struct {
	svc BookingService
}

func NewPurchaseHandler(svc BookingService) *PurchaseHandler {
	return &PurchaseHandler{
		svc: svc,
	}
}

// HandlePurchase godoc
// @Summary      Buy tickets for a concert
// @Tags         purchases
// @Produce      json
// @Param        concertID  path      string                  true "concert id"
// @Param        request    body      request.PurchaseRequest true "request body"
// @Success      201  {object}  domain.PurchaseRecord
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      502  {object}  response.Err
// @Router       /concerts/{concertID}/purchase [post]
// @Security BearerAuth
func (h *PurchaseHandler) HandlePurchase(ctx *gin.Context) {
	var req request.PurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sess := middleware.SessionFromContext(ctx)
	concertID := ctx.Param("concertID")

	record, err := h.svc.Purchase(ctx.Request.Context(), sess, concertID, req.Tickets)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			response.RenderErr(ctx, response.ErrUnauthenticated())
		case errors.Is(err, service.ErrConcertNotFound):
			response.RenderErr(ctx, response.ErrNotFound("concert", "id", concertID))
		case errors.Is(err, service.ErrInsufficientInventory):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandlePurchase -> h.svc.Purchase -> %w", err)
			response.RenderErr(ctx, response.ErrBadGateway(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// HandleListPurchases godoc
// @Summary      List the logged-in user's purchases, newest first
// @Tags         purchases
// @Produce      json
// @Success      200  {array}   domain.PurchaseRecord
// @Failure      401  {object}  response.Err
// @Failure      502  {object}  response.Err
// @Router       /purchases [get]
// @Security BearerAuth
func (h *PurchaseHandler) HandleListPurchases(ctx *gin.Context) {
	sess := middleware.SessionFromContext(ctx)

	records, err := h.svc.History(ctx.Request.Context(), sess)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			response.RenderErr(ctx, response.ErrUnauthenticated())
			return
		}

		err = fmt.Errorf("v1.HandleListPurchases -> h.svc.History -> %w", err)
		response.RenderErr(ctx, response.ErrBadGateway(err))
		return
	}

	ctx.JSON(http.StatusOK, records)
}
