package handlers

import (
	"github.com/assogestion/assogestion/cmd/docs"
	portssvc "github.com/assogestion/assogestion/internal/core/ports/services"
	"github.com/assogestion/assogestion/internal/middleware"
	"github.com/assogestion/assogestion/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// ErrorResponse is the generic error payload returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes. Public routes back the
// association website (published events, volunteer sign-up, donation form,
// bureau directory, authentication); everything under /api/v1 requires a
// bearer token and is further gated per-operation in the services.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerPublicRoutes(r, cfg, services)
	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// registerPublicRoutes configures the unauthenticated website-facing routes.
func registerPublicRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	ipLimiter := limiter.New(limitermemory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	registerAuthRoutes(r, cfg, services, limitMiddleware)

	eventHandler := newEventHandler(services.Event)
	volunteerHandler := newVolunteerHandler(services.Volunteer)
	donationHandler := newDonationHandler(services.Donation)
	bureauHandler := newBureauHandler(services.Bureau)

	public := r.Group("/api/public")
	{
		public.GET("/events", eventHandler.listPublishedEvents)
		public.GET("/events/:id", eventHandler.getPublishedEvent)
		public.POST("/events/:id/volunteers", limitMiddleware, volunteerHandler.signUp)
		public.POST("/donations", limitMiddleware, donationHandler.recordDonation)
		public.GET("/bureau", bureauHandler.listBureauMembers)
	}
}

// setupAPIV1Routes configures the authenticated back-office routes.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerTreasuryRoutes(v1, services.Treasury)
	registerEventAdminRoutes(v1, services.Event, services.Volunteer)
	registerDonationAdminRoutes(v1, services.Donation)
	registerBureauAdminRoutes(v1, services.Bureau)
	registerCampaignRoutes(v1, services.Campaign)
	registerUserRoutes(v1, services.User)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
