package handler

import (
	"net/http"

	"moviehub/internal/middleware"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

// ThrottleRates carries the parsed quota for every throttle scope the API
// uses. User and Anon are the defaults; the rest override them on their
// endpoints.
type ThrottleRates struct {
	User           middleware.Rate
	Anon           middleware.Rate
	ReviewCreate   middleware.Rate
	ReviewList     middleware.Rate
	PlatformDetail middleware.Rate
}

// RegisterRoutes wires every endpoint onto the engine. All API routes sit
// under /api and resolve the principal up front so throttle counters can key
// on the user id when one is known.
func RegisterRoutes(
	r *gin.Engine,
	authService service.AuthService,
	throttler *middleware.Throttler,
	rates ThrottleRates,
	authHandler *AuthHandler,
	movieHandler *MovieHandler,
	platformHandler *PlatformHandler,
	reviewHandler *ReviewHandler,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.AuthMiddleware(authService)
	adminOnly := middleware.RequireAdmin()
	throttled := throttler.Global(rates.User, rates.Anon)

	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(authService))

	api.POST("/register", throttled, authHandler.Register)
	api.POST("/login", throttled, authHandler.Login)
	api.POST("/token/refresh", throttled, authHandler.RefreshToken)
	api.POST("/logout", authRequired, throttled, authHandler.Logout)

	watchlist := api.Group("/watchlist")
	{
		watchlist.GET("", throttled, movieHandler.List)
		watchlist.GET("/search", throttled, movieHandler.Search)
		watchlist.POST("", authRequired, adminOnly, throttled, movieHandler.Create)

		watchlist.GET("/:movie_id", throttled, movieHandler.Get)
		watchlist.PUT("/:movie_id", authRequired, adminOnly, throttled, movieHandler.Update)
		watchlist.DELETE("/:movie_id", authRequired, adminOnly, throttled, movieHandler.Delete)

		watchlist.POST("/:movie_id/reviews-create", authRequired,
			throttler.Scope("review_create", rates.ReviewCreate), reviewHandler.Create)
		watchlist.GET("/:movie_id/reviews",
			throttler.Scope("review_list", rates.ReviewList), reviewHandler.ListByMovie)
	}

	platforms := api.Group("/streaming-platforms")
	{
		platforms.GET("", throttled, platformHandler.List)
		platforms.POST("", authRequired, adminOnly, throttled, platformHandler.Create)

		platforms.GET("/:platform_id",
			throttler.Scope("streaming_platforms", rates.PlatformDetail), platformHandler.Get)
		platforms.PUT("/:platform_id", authRequired, adminOnly, throttled, platformHandler.Update)
		platforms.DELETE("/:platform_id", authRequired, adminOnly, throttled, platformHandler.Delete)
	}

	reviews := api.Group("/reviews")
	{
		// static /user must come before the :review_id param route
		reviews.GET("/user", throttled, reviewHandler.ListByUser)

		reviews.GET("/:review_id", throttled, reviewHandler.Get)
		reviews.PUT("/:review_id", authRequired, throttled, reviewHandler.Update)
		reviews.DELETE("/:review_id", authRequired, throttled, reviewHandler.Delete)
	}
}
