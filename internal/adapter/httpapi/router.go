// Package httpapi is the HTTP adapter over the learning engine. The client is
// identified by the X-User-ID header; every scheduling decision behind these
// routes runs on the engine's logical clock.
package httpapi

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig carries the wired handlers.
type RouterConfig struct {
	Plan   *PlanHandler
	Study  *StudyHandler
	System *SystemHandler
}

// NewRouter assembles the gin engine with all routes mounted.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-User-ID"},
		AllowCredentials: true,
	}))
	router.Use(userMiddleware())

	router.GET("/healthcheck", cfg.System.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/books", cfg.System.GetBooks)

		api.GET("/plan", cfg.Plan.GetPlan)
		api.PUT("/plan", cfg.Plan.PutPlan)
		api.GET("/plan/stats", cfg.Plan.GetStats)
		api.GET("/plan/preview", cfg.Plan.PreviewPlan)

		api.GET("/words/new", cfg.Study.GetNewWords)
		api.POST("/words/bonus", cfg.Plan.PostBonus)
		api.GET("/review", cfg.Study.GetReviewQueue)
		api.GET("/mistakes", cfg.Study.GetMistakes)
		api.GET("/quiz/pool", cfg.Study.GetQuizPool)

		api.POST("/outcomes/learn", cfg.Study.PostLearnOutcome)
		api.POST("/outcomes/review", cfg.Study.PostReviewOutcome)
		api.POST("/outcomes/test", cfg.Study.PostTestOutcome)

		api.POST("/tests", cfg.Study.PostTestRecord)
		api.GET("/tests", cfg.Study.GetTestHistory)

		api.GET("/leaderboard", cfg.System.GetLeaderboard)

		api.GET("/time", cfg.System.GetTime)
		api.PUT("/time", cfg.System.PutTime)
		api.DELETE("/time", cfg.System.DeleteTime)
	}

	return router
}
