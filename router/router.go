package router

import (
	"github.com/labstack/echo/v4"

	"lpc/pkg/middleware"
	sessionctrl "lpc/pkg/session/controller"
)

func New(
	e *echo.Echo,
	sessCtrl sessionctrl.SessionController,
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.POST("/sessions", sessCtrl.Create)
	api.GET("/sessions", sessCtrl.List)

	g := e.Group("/sessions")
	g.GET("/:id", sessCtrl.Get)
	g.PATCH("/:id/form", sessCtrl.PatchForm)
	g.POST("/:id/generate", sessCtrl.Generate)
	g.POST("/:id/questions", sessCtrl.AddQuestion)
	g.PUT("/:id/questions/:qid", sessCtrl.UpdateQuestion)
	g.DELETE("/:id/questions/:qid", sessCtrl.RemoveQuestion)
	g.POST("/:id/draft", sessCtrl.SaveDraft)
	g.POST("/:id/publish", sessCtrl.Publish)
	g.GET("/:id/export", sessCtrl.Export)

	return e
}
