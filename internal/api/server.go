package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Keerthid-10/taylor/docs"
	v1 "github.com/Keerthid-10/taylor/internal/api/handler/v1"
	"github.com/Keerthid-10/taylor/internal/api/middleware"
	"github.com/Keerthid-10/taylor/internal/config"
	"github.com/Keerthid-10/taylor/internal/gateway"
	"github.com/Keerthid-10/taylor/internal/repository"
	"github.com/Keerthid-10/taylor/internal/service"
	"github.com/Keerthid-10/taylor/internal/session"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, gw *gateway.Client) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	sessions := session.NewStore()

	s.MountMiddlewares(sessions)

	authHandler := s.initAuthHandler(gw, sessions)
	catalogHandler := s.initCatalogHandler(gw)
	purchaseHandler := s.initPurchaseHandler(gw)
	favoriteHandler := s.initFavoriteHandler(gw)
	s.MountHandlers(authHandler, catalogHandler, purchaseHandler, favoriteHandler)

	return s
}

func (s *Server) initAuthHandler(gw *gateway.Client, sessions *session.Store) *v1.AuthHandler {
	repo := repository.NewUserRepository(gw)
	svc := service.NewAuthService(repo, sessions)

	return v1.NewAuthHandler(s.Config.API, svc)
}

func (s *Server) initCatalogHandler(gw *gateway.Client) *v1.CatalogHandler {
	svc := service.NewCatalogService(
		repository.NewArtistRepository(gw),
		repository.NewConcertRepository(gw),
		repository.NewFavoriteRepository(gw),
		repository.NewPurchaseRepository(gw),
	)

	return v1.NewCatalogHandler(svc)
}

func (s *Server) initPurchaseHandler(gw *gateway.Client) *v1.PurchaseHandler {
	svc := service.NewBookingService(
		repository.NewConcertRepository(gw),
		repository.NewPurchaseRepository(gw),
	)

	return v1.NewPurchaseHandler(svc)
}

func (s *Server) initFavoriteHandler(gw *gateway.Client) *v1.FavoriteHandler {
	svc := service.NewFavoritesService(
		repository.NewFavoriteRepository(gw),
		repository.NewArtistRepository(gw),
	)

	return v1.NewFavoriteHandler(svc)
}

func (s *Server) MountMiddlewares(sessions *session.Store) {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.NewAuthenticator(s.Config.API.JWTSigningKey, sessions).ResolveSession())
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	catalogHandler *v1.CatalogHandler,
	purchaseHandler *v1.PurchaseHandler,
	favoriteHandler *v1.FavoriteHandler,
) {
	const basePath = "/api/v1"

	// One canonical route per feature. The session middleware resolves a
	// possibly-anonymous session for everything; the services decide what
	// needs a login.
	root := s.Router.Group(basePath)
	{
		root.POST("/auth/register", authHandler.HandleRegister)
		root.POST("/auth/register/validate", authHandler.HandleValidateRegistration)
		root.POST("/auth/login", authHandler.HandleLogin)
		root.POST("/auth/logout", authHandler.HandleLogout)

		root.GET("/artists", catalogHandler.HandleListArtists)
		root.GET("/concerts", catalogHandler.HandleListConcerts)
		root.GET("/concerts/summary", catalogHandler.HandleConcertSummary)
		root.GET("/concerts/:concertID", catalogHandler.HandleGetConcert)
		root.GET("/dashboard", catalogHandler.HandleDashboard)

		root.POST("/concerts/:concertID/purchase", purchaseHandler.HandlePurchase)
		root.GET("/purchases", purchaseHandler.HandleListPurchases)

		root.GET("/favorites", favoriteHandler.HandleListFavorites)
		root.POST("/favorites", favoriteHandler.HandleAddFavorite)
		root.DELETE("/favorites/:favoriteID", favoriteHandler.HandleRemoveFavorite)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Concert ticketing storefront API"
	docs.SwaggerInfo.Description = "Registration, catalog browsing, favorites and ticket purchases over a generic collection backend."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
