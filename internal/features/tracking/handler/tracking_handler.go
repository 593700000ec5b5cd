package handler

import (
	"context"
	"embed"
	"html/template"
	"strconv"
	"time"

	"tracking-viewer/internal/core/logger"
	"tracking-viewer/internal/features/tracking/domain"
	"tracking-viewer/internal/features/tracking/ports"
	"tracking-viewer/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ViewCookie carries the id of the browser session's mounted view.
const ViewCookie = "view_id"

// reuseView is the "view" query value that keeps the session's view instead of
// remounting it. The loading page's refresh carries it.
const reuseView = "reuse"

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// noticeTimeout bounds the notice lookup made while rendering a page.
const noticeTimeout = 500 * time.Millisecond

// TrackingHandler serves the tracking viewer.
type TrackingHandler struct {
	views   *service.ViewRegistry
	notices ports.NoticeReader
	loc     *time.Location
}

// NewTrackingHandler creates a TrackingHandler. notices may be nil, in which case
// pages never show a notice.
func NewTrackingHandler(views *service.ViewRegistry, notices ports.NoticeReader, loc *time.Location) *TrackingHandler {
	if loc == nil {
		loc = time.Local
	}
	return &TrackingHandler{
		views:   views,
		notices: notices,
		loc:     loc,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// ViewResponse is the JSON form of a view.
type ViewResponse struct {
	// ViewID identifies the mounted view; it is also set as a cookie.
	ViewID string `json:"view_id"`
	// Loading is true until the worker fetch settles.
	Loading bool `json:"loading"`
	// Error is the fetch failure message, if any.
	Error string `json:"error,omitempty"`
	// HideDelivered is the current filter flag.
	HideDelivered bool `json:"hide_delivered"`
	// Total is the number of records fetched.
	Total int `json:"total"`
	// Visible is the number of records passing the filter.
	Visible int `json:"visible"`
	// CountLine is the "Showing X of Y packages" text.
	CountLine string `json:"count_line"`
	// Records holds the visible rows; empty while loading or on error.
	Records []domain.Row `json:"records"`
}

type pageNotice struct {
	Message string
	Class   string
}

type pageData struct {
	Loading       bool
	Error         string
	HideDelivered bool
	CountLine     string
	Rows          []domain.Row
	Notice        *pageNotice
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}

// acquireView returns the session's view, mounting one and setting the cookie when needed.
func (h *TrackingHandler) acquireView(c *fiber.Ctx) *service.View {
	view, created := h.views.Acquire(c.Cookies(ViewCookie))
	if created {
		setViewCookie(c, view)
	}
	return view
}

// remountView replaces the session's view with a freshly mounted one.
func (h *TrackingHandler) remountView(c *fiber.Ctx) *service.View {
	view := h.views.Remount(c.Cookies(ViewCookie))
	setViewCookie(c, view)
	return view
}

func setViewCookie(c *fiber.Ctx, view *service.View) {
	c.Cookie(&fiber.Cookie{
		Name:     ViewCookie,
		Value:    view.ID(),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Page godoc
// @Summary Tracking viewer page
// @Description Renders the tracking table. A plain request mounts a new view, which fetches from the worker once. Filter submissions and view=reuse keep the current view and its records.
// @Tags tracking
// @Produce html
// @Param filter query string false "Set to 1 when the filter form is submitted"
// @Param hide_delivered query string false "\"on\" hides delivered packages (only read with filter=1)"
// @Param view query string false "\"reuse\" keeps the current view without re-fetching"
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *TrackingHandler) Page(c *fiber.Ctx) error {
	filtering := c.Query("filter") != ""

	var view *service.View
	if filtering || c.Query("view") == reuseView {
		view = h.acquireView(c)
	} else {
		view = h.remountView(c)
	}

	if filtering {
		view.SetHideDelivered(c.Query("hide_delivered") == "on")
	}

	state := view.Snapshot()
	data := pageData{
		Loading:       state.Mode() == domain.ModeLoading,
		Error:         state.Err,
		HideDelivered: state.HideDelivered,
	}
	if state.Mode() == domain.ModeTable {
		data.CountLine = state.CountLine()
		data.Rows = state.Rows(h.loc)
		data.Notice = h.currentNotice(c.UserContext())
	}

	c.Type("html", "utf-8")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return pageTemplate.ExecuteTemplate(c, "page", data)
}

func (h *TrackingHandler) currentNotice(ctx context.Context) *pageNotice {
	if h.notices == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, noticeTimeout)
	defer cancel()

	n, err := h.notices.Current(ctx)
	if err != nil {
		logger.Get().Warn("Failed to load notice for page", zap.Error(err))
		return nil
	}
	if n == nil {
		return nil
	}
	return &pageNotice{Message: n.Message, Class: n.Level.Class()}
}

// Snapshot godoc
// @Summary Get the caller's view
// @Description Returns the caller's view as JSON, mounting it on first use. hide_delivered updates the filter without re-fetching.
// @Tags tracking
// @Produce json
// @Param hide_delivered query bool false "Hide delivered packages"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/view [get]
func (h *TrackingHandler) Snapshot(c *fiber.Ctx) error {
	var hide *bool
	if raw := c.Query("hide_delivered"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: "hide_delivered must be a boolean",
				RayID:   rayID(c),
			})
		}
		hide = &v
	}

	view := h.acquireView(c)
	if hide != nil {
		view.SetHideDelivered(*hide)
	}

	state := view.Snapshot()
	resp := ViewResponse{
		ViewID:        view.ID(),
		Loading:       state.Loading,
		Error:         state.Err,
		HideDelivered: state.HideDelivered,
		Records:       []domain.Row{},
	}
	if state.Mode() == domain.ModeTable {
		resp.Total = state.Total()
		resp.Visible = len(state.Visible())
		resp.CountLine = state.CountLine()
		resp.Records = state.Rows(h.loc)
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.JSON(resp)
}
