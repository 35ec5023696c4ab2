package v1

import (
	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	ProfileUC   domain.ProfileUsecase
	JobUC       domain.JobUsecase
	AppUC       domain.ApplicationUsecase
	SavedUC     domain.SavedJobUsecase
	ContactUC   domain.ContactUsecase
	HealthUC    usecase.HealthUsecase
	ProfileRepo domain.ProfileRepository
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// CORS must run before anything that can abort the request
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config)))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public pages personalize when a session is present but never require one
	optional := v1.Group("")
	optional.Use(middleware.OptionalAuthMiddleware(deps.Config))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC, deps.ProfileRepo))

	NewAuthHandler(v1, protected, deps.AuthUC, deps.Config)
	NewProfileHandler(protected, deps.ProfileUC)
	NewJobHandler(v1, optional, protected, deps.JobUC)
	NewApplicationHandler(protected, deps.AppUC)
	NewSavedJobHandler(protected, deps.SavedUC)
	NewContactHandler(v1, deps.ContactUC)
	NewMainHandler(v1, deps.JobUC, deps.HealthUC)

	return r
}
