package controller

import "github.com/labstack/echo/v4"

type SessionController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	PatchForm(c echo.Context) error
	Generate(c echo.Context) error
	AddQuestion(c echo.Context) error
	UpdateQuestion(c echo.Context) error
	RemoveQuestion(c echo.Context) error
	SaveDraft(c echo.Context) error
	Publish(c echo.Context) error
	Export(c echo.Context) error
}
