package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "devsnap_backend/internal/feature/auth/transport/handler"
	dashboardhandler "devsnap_backend/internal/feature/dashboard/transport/handler"
	sharelinkhandler "devsnap_backend/internal/feature/sharelinks/transport/handler"
	snapshothandler "devsnap_backend/internal/feature/snapshots/transport/handler"
	"devsnap_backend/internal/platform/config"
	"devsnap_backend/internal/platform/http/handler"
	jwtmw "devsnap_backend/internal/platform/jwt"
)

// NewRouter wires all feature handlers into a gin engine.
func NewRouter(
	cfg *config.Config,
	auth *authhandler.AuthHandler,
	users *authhandler.UserHandler,
	snapshots *snapshothandler.SnapshotHandler,
	links *sharelinkhandler.ShareLinkHandler,
	stats *dashboardhandler.StatsHandler,
) *gin.Engine {
	r := gin.Default()

	if len(cfg.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Share-Password")
		r.Use(cors.New(corsCfg))
	}

	// Public routes
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	// Passwordless sign-in: request a code, then exchange it for a JWT
	r.POST("/auth/signin", auth.SignIn)
	r.POST("/auth/verify", auth.Verify)
	// Public share page; policy checks happen in the resolver
	r.GET("/s/:slug", links.Resolve)

	// Routes requiring a valid bearer token
	authd := r.Group("/")
	authd.Use(jwtmw.AuthRequired(cfg.JWTSecret))
	{
		authd.GET("/me", users.Me)
		authd.PATCH("/me", users.UpdateMe)
		authd.DELETE("/me", users.DeleteMe)

		authd.POST("/snapshots", snapshots.Create)
		authd.GET("/snapshots", snapshots.List)
		authd.GET("/snapshots/:id", snapshots.Get)
		authd.PATCH("/snapshots/:id", snapshots.Update)
		authd.DELETE("/snapshots/:id", snapshots.Delete)

		authd.POST("/snapshots/:id/share", links.Create)
		authd.GET("/snapshots/:id/share", links.List)
		authd.DELETE("/share-links/:id", links.Delete)

		authd.GET("/dashboard/stats", stats.Overview)
	}

	return r
}
