package collection

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server exposes a Store over HTTP:
//
//	GET    /:collection            all records, or ?field=value filtered
//	POST   /:collection            create, id generated when absent
//	GET    /:collection/:id        single record
//	PATCH  /:collection/:id        partial update of top-level fields
//	DELETE /:collection/:id        remove
type Server struct {
	Router *gin.Engine

	store Store
}

func NewServer(mode string, store Store) *Server {
	gin.SetMode(mode)
	engine := gin.New()

	s := &Server{
		Router: engine,
		store:  store,
	}

	engine.Use(gin.Logger())
	engine.Use(gin.Recovery())
	engine.Use(requestid.New())

	engine.GET("/:collection", s.handleList)
	engine.POST("/:collection", s.handleCreate)
	engine.GET("/:collection/:id", s.handleGet)
	engine.PATCH("/:collection/:id", s.handlePatch)
	engine.DELETE("/:collection/:id", s.handleDelete)

	return s
}

func (s *Server) handleList(ctx *gin.Context) {
	name := ctx.Param("collection")

	var (
		docs []Document
		err  error
	)

	// One field=value pair selects the filtered read; anything beyond the
	// first pair is ignored, matching the simple contract callers rely on.
	query := ctx.Request.URL.Query()
	if len(query) > 0 {
		for field, values := range query {
			docs, err = s.store.Query(ctx.Request.Context(), name, field, values[0])
			break
		}
	} else {
		docs, err = s.store.List(ctx.Request.Context(), name)
	}

	if err != nil {
		s.renderErr(ctx, fmt.Errorf("handleList -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, docs)
}

func (s *Server) handleGet(ctx *gin.Context) {
	doc, err := s.store.Get(ctx.Request.Context(), ctx.Param("collection"), ctx.Param("id"))
	if err != nil {
		s.renderErr(ctx, fmt.Errorf("handleGet -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, doc)
}

func (s *Server) handleCreate(ctx *gin.Context) {
	var doc Document
	if err := ctx.ShouldBindJSON(&doc); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	created, err := s.store.Insert(ctx.Request.Context(), ctx.Param("collection"), doc)
	if err != nil {
		s.renderErr(ctx, fmt.Errorf("handleCreate -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func (s *Server) handlePatch(ctx *gin.Context) {
	var partial Document
	if err := ctx.ShouldBindJSON(&partial); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	updated, err := s.store.Patch(ctx.Request.Context(), ctx.Param("collection"), ctx.Param("id"), partial)
	if err != nil {
		s.renderErr(ctx, fmt.Errorf("handlePatch -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func (s *Server) handleDelete(ctx *gin.Context) {
	err := s.store.Delete(ctx.Request.Context(), ctx.Param("collection"), ctx.Param("id"))
	if err != nil {
		s.renderErr(ctx, fmt.Errorf("handleDelete -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{})
}

func (s *Server) renderErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, ErrDuplicateID):
		ctx.JSON(http.StatusConflict, gin.H{"error": "duplicate id"})
	default:
		zap.L().Error("collection store failure", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
