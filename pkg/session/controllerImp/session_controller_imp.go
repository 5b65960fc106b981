package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"lpc/entities"
	"lpc/pkg/composer"
	"lpc/pkg/export"
	"lpc/pkg/session/controller"
	"lpc/pkg/session/serviceImp"
)

type SessionCtrl struct{ reg *serviceImp.Registry }

func New(reg *serviceImp.Registry) controller.SessionController { return &SessionCtrl{reg: reg} }

type createReq struct {
	Cards []entities.Card    `json:"cards"`
	Form  composer.DraftForm `json:"form"`
}

func (h *SessionCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	s, err := h.reg.Create(uid, req.Cards, req.Form)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, sessionView(s))
}

func (h *SessionCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	recs, err := h.reg.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *SessionCtrl) Get(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	return c.JSON(http.StatusOK, sessionView(s))
}

func (h *SessionCtrl) PatchForm(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	var patch composer.FormPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	err = s.UpdateForm(c.Request().Context(), patch)
	h.snapshot(c, s)
	if err != nil {
		return writeComposerError(c, err)
	}
	return c.JSON(http.StatusOK, sessionView(s))
}

func (h *SessionCtrl) Generate(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	err = s.Generate(c.Request().Context())
	h.snapshot(c, s)
	if err != nil {
		return writeComposerError(c, err)
	}
	return c.JSON(http.StatusOK, sessionView(s))
}

func (h *SessionCtrl) AddQuestion(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	var q entities.Question
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := s.AddQuestion(q); err != nil {
		return writeComposerError(c, err)
	}
	h.snapshot(c, s)
	return c.JSON(http.StatusCreated, sessionView(s))
}

func (h *SessionCtrl) UpdateQuestion(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	var q entities.Question
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	q.ID = c.Param("qid")
	if err := s.UpdateQuestion(q); err != nil {
		return writeComposerError(c, err)
	}
	h.snapshot(c, s)
	return c.JSON(http.StatusOK, sessionView(s))
}

func (h *SessionCtrl) RemoveQuestion(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	if err := s.RemoveQuestion(c.Param("qid")); err != nil {
		return writeComposerError(c, err)
	}
	h.snapshot(c, s)
	return c.JSON(http.StatusOK, sessionView(s))
}

func (h *SessionCtrl) SaveDraft(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	if err := s.SaveDraft(c.Request().Context()); err != nil {
		return writeComposerError(c, err)
	}
	h.snapshot(c, s)
	return c.JSON(http.StatusOK, sessionView(s))
}

func (h *SessionCtrl) Publish(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	if err := s.Publish(c.Request().Context()); err != nil {
		return writeComposerError(c, err)
	}
	h.snapshot(c, s)
	return c.JSON(http.StatusOK, sessionView(s))
}

func (h *SessionCtrl) Export(c echo.Context) error {
	s, err := h.session(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	buf, err := export.QuestionSheet(s.Form().Title, s.Questions())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="learning-path.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *SessionCtrl) session(c echo.Context) (*composer.Session, error) {
	uid := c.Get("uid").(string)
	return h.reg.Get(c.Param("id"), uid)
}

func (h *SessionCtrl) snapshot(c echo.Context, s *composer.Session) {
	if err := h.reg.Persist(s); err != nil {
		c.Logger().Errorf("snapshot: %v", err)
	}
}

func sessionView(s *composer.Session) map[string]any {
	return map[string]any{
		"session_id":             s.ID,
		"state":                  s.State(),
		"form":                   s.Form(),
		"cards":                  s.Cards(),
		"questions":              s.Questions(),
		"total_questions_needed": s.TotalQuestionsNeeded(),
		"remote_id":              s.RemoteID(),
		"validation":             s.LastValidation(),
	}
}

func writeComposerError(c echo.Context, err error) error {
	var vErr *composer.ValidationError
	if errors.As(err, &vErr) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"error": "validation failed", "fields": vErr.Fields})
	}
	var qErr *composer.InvalidQuestionError
	if errors.As(err, &qErr) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"error": "invalid question", "fields": qErr.Fields})
	}
	switch {
	case errors.Is(err, composer.ErrCapacityExceeded),
		errors.Is(err, composer.ErrBusy),
		errors.Is(err, composer.ErrPublished):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, composer.ErrFailed):
		return c.JSON(http.StatusGone, map[string]string{"error": err.Error()})
	}
	var gErr *composer.GenerationError
	if errors.As(err, &gErr) {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": gErr.Error()})
	}
	var pErr *composer.PersistenceError
	if errors.As(err, &pErr) {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": pErr.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
