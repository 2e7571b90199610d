package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/reactsync/internal/domain/contract"
	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
	"github.com/mikiasgoitom/reactsync/internal/handler/http/middleware"
	"github.com/mikiasgoitom/reactsync/internal/infrastructure/validator"
	usecasecontract "github.com/mikiasgoitom/reactsync/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CSRFFieldName is the form field reaction clients echo the token in.
const CSRFFieldName = "csrf_token"

type Router struct {
	interactionHandler *InteractionHandler
	authHandler        *AuthHandler
	csrfHandler        *CSRFHandler
	authUsecase        usecasecontract.IAuthUseCase
	config             usecasecontract.IConfigProvider
	logger             usecasecontract.IAppLogger
}

func NewRouter(likeUsecase usecasecontract.ILikeUseCase, authUsecase usecasecontract.IAuthUseCase, logger usecasecontract.IAppLogger, config usecasecontract.IConfigProvider, randomGen contract.IRandomGenerator) *Router {
	return &Router{
		interactionHandler: NewInteractionHandler(likeUsecase, logger),
		authHandler:        NewAuthHandler(authUsecase, config, logger),
		csrfHandler:        NewCSRFHandler(randomGen, config, logger),
		authUsecase:        authUsecase,
		config:             config,
		logger:             logger,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	validator.RegisterCustomValidators()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{r.config.GetAppBaseURL()},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With", middleware.CSRFHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RateLimiter(middleware.NewLimiter(r.config.GetRateLimitPerSecond())))
	router.Use(middleware.RequestMetrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// API v1 routes
	v1 := router.Group("/api/v1")

	v1.GET("/csrf", r.csrfHandler.IssueToken)

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/logout", r.authHandler.Logout)
	}

	// Public reaction counts
	v1.GET("/posts/:targetID/reactions", r.interactionHandler.GetReactionCountsHandler(entity.TargetKindPost))
	v1.GET("/comments/:targetID/reactions", r.interactionHandler.GetReactionCountsHandler(entity.TargetKindComment))

	// Protected routes (CSRF and authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.CSRFMiddleware(CSRFFieldName), middleware.AuthMiddleWare(r.authUsecase, r.logger))
	{
		protected.POST("/posts/:targetID/reactions", r.interactionHandler.ToggleReactionHandler(entity.TargetKindPost))
		protected.POST("/comments/:targetID/reactions", r.interactionHandler.ToggleReactionHandler(entity.TargetKindComment))
	}
}
