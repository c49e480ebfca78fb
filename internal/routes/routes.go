package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/cliptube/cliptube-backend/internal/config"
	"github.com/cliptube/cliptube-backend/internal/handlers"
	"github.com/cliptube/cliptube-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	videoHandler *handlers.VideoHandler,
	commentHandler *handlers.CommentHandler,
	tweetHandler *handlers.TweetHandler,
	playlistHandler *handlers.PlaylistHandler,
	engagementHandler *handlers.EngagementHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api/v1")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	guard := middleware.JWTProtected(cfg)
	identify := middleware.OptionalAuth(cfg)

	// Auth — guarded
	api.Post("/auth/logout", guard, authHandler.Logout)
	api.Post("/auth/change-password", guard, authHandler.ChangePassword)
	api.Get("/auth/me", guard, authHandler.Me)

	// Videos — reads public but identity-aware (owners see their own
	// unpublished videos), mutations guarded (ownership enforced in the
	// service after the load)
	api.Get("/videos", identify, videoHandler.List)
	api.Get("/videos/:id", identify, videoHandler.Get)
	api.Post("/videos", guard, videoHandler.Publish)
	api.Patch("/videos/:id", guard, videoHandler.Update)
	api.Delete("/videos/:id", guard, videoHandler.Delete)
	api.Patch("/videos/:id/publish", guard, videoHandler.TogglePublish)

	// Comments
	api.Get("/videos/:id/comments", commentHandler.ListByVideo)
	api.Post("/videos/:id/comments", guard, commentHandler.Add)
	api.Patch("/comments/:id", guard, commentHandler.Update)
	api.Delete("/comments/:id", guard, commentHandler.Delete)

	// Tweets
	api.Get("/users/:id/tweets", tweetHandler.ListByUser)
	api.Post("/tweets", guard, tweetHandler.Create)
	api.Patch("/tweets/:id", guard, tweetHandler.Update)
	api.Delete("/tweets/:id", guard, tweetHandler.Delete)

	// Likes
	api.Post("/likes/video/:id", guard, engagementHandler.ToggleVideoLike)
	api.Post("/likes/comment/:id", guard, engagementHandler.ToggleCommentLike)
	api.Post("/likes/tweet/:id", guard, engagementHandler.ToggleTweetLike)
	api.Get("/likes/videos", guard, engagementHandler.GetLikedVideos)

	// Subscriptions
	api.Post("/subscriptions/:id", guard, engagementHandler.ToggleSubscription)
	api.Get("/subscriptions", guard, engagementHandler.GetSubscribedChannels)
	api.Get("/channels/:id/subscribers", guard, engagementHandler.GetChannelSubscribers)

	// Playlists
	api.Get("/users/:id/playlists", playlistHandler.ListByUser)
	api.Get("/playlists/:id", playlistHandler.Get)
	api.Post("/playlists", guard, playlistHandler.Create)
	api.Patch("/playlists/:id", guard, playlistHandler.Update)
	api.Delete("/playlists/:id", guard, playlistHandler.Delete)
	api.Post("/playlists/:id/videos/:videoId", guard, playlistHandler.AddVideo)
	api.Delete("/playlists/:id/videos/:videoId", guard, playlistHandler.RemoveVideo)

	// Dashboard — always the actor's own channel
	api.Get("/dashboard/stats", guard, dashboardHandler.Stats)
	api.Get("/dashboard/videos", guard, dashboardHandler.Videos)
}
