package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/codeleap/learning-platform/internal/api/metrics"
	"github.com/codeleap/learning-platform/internal/core/ports"
)

// Enqueuer hands completion events to the progress dispatcher.
type Enqueuer interface {
	Enqueue(event ports.CompletionEvent)
}

type LessonHandler struct {
	lessonService ports.LessonService
	progress      Enqueuer
}

func NewLessonHandler(lessonService ports.LessonService, progress Enqueuer) *LessonHandler {
	return &LessonHandler{lessonService: lessonService, progress: progress}
}

type createLessonRequest struct {
	Title            string `json:"title" validate:"required"`
	Track            string `json:"track" validate:"required"`
	Difficulty       string `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Order            int    `json:"order"`
	Content          string `json:"content" validate:"required"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	IsPublished      bool   `json:"is_published"`
}

// List returns published lesson summaries, optionally filtered by track and
// difficulty. Works for anonymous callers too; the optional user is unused
// here but keeps the route shape uniform with the rest of the surface.
//
// @Summary      List lessons
// @Tags         lessons
// @Produce      json
// @Param        track       query  string  false  "Track filter"
// @Param        difficulty  query  string  false  "Difficulty filter"
// @Param        skip        query  int     false  "Pagination offset"
// @Param        limit       query  int     false  "Page size"
// @Success      200  {array}  domain.LessonSummary
// @Router       /lessons [get]
func (h *LessonHandler) List(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	summaries, err := h.lessonService.List(c.Request().Context(), ports.LessonFilter{
		Track:      c.QueryParam("track"),
		Difficulty: c.QueryParam("difficulty"),
		Skip:       skip,
		Limit:      limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summaries)
}

// Get returns a single lesson with content.
//
// @Summary      Get lesson
// @Tags         lessons
// @Produce      json
// @Param        id   path      string  true  "Lesson ID"
// @Success      200  {object}  domain.Lesson
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /lessons/{id} [get]
func (h *LessonHandler) Get(c echo.Context) error {
	lesson, err := h.lessonService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lesson)
}

// Create publishes new lesson content. Admin only.
//
// @Summary      Create lesson
// @Tags         lessons
// @Accept       json
// @Produce      json
// @Param        body  body      createLessonRequest  true  "Lesson content"
// @Success      201   {object}  domain.Lesson
// @Failure      403   {object}  map[string]string
// @Security     BearerAuth
// @Router       /lessons [post]
func (h *LessonHandler) Create(c echo.Context) error {
	var req createLessonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lesson, err := h.lessonService.Create(c.Request().Context(), ports.CreateLessonInput{
		Title:            req.Title,
		Track:            req.Track,
		Difficulty:       req.Difficulty,
		Order:            req.Order,
		Content:          req.Content,
		EstimatedMinutes: req.EstimatedMinutes,
		IsPublished:      req.IsPublished,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, lesson)
}

// Complete enqueues a lesson-completion event for asynchronous processing.
// The 202 response reflects that the counter update happens off-request.
//
// @Summary      Mark lesson complete
// @Tags         lessons
// @Produce      json
// @Param        id   path      string  true  "Lesson ID"
// @Success      202  {object}  map[string]string
// @Security     BearerAuth
// @Router       /lessons/{id}/complete [post]
func (h *LessonHandler) Complete(c echo.Context) error {
	user, err := CurrentUser(c)
	if err != nil {
		return err
	}

	h.progress.Enqueue(ports.CompletionEvent{
		UserID:   user.ID,
		LessonID: c.Param("id"),
	})

	metrics.LessonCompletionsTotal.Inc()
	return c.JSON(http.StatusAccepted, map[string]string{"message": "completion recorded"})
}
