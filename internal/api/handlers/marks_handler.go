package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/facultyportal/internal/services"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
	defaultRankingLimit = 50
	maxRankingLimit     = 500
)

type MarksHandler struct {
	svc services.MarksService
	app services.ApplicationService
}

func NewMarksHandler(svc services.MarksService, app services.ApplicationService) *MarksHandler {
	return &MarksHandler{svc: svc, app: app}
}

func (h *MarksHandler) Calculate(c *gin.Context) {
	userID, ok := pathUser(c)
	if !ok {
		return
	}

	res, err := h.svc.Calculate(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *MarksHandler) Get(c *gin.Context) {
	userID, ok := pathUser(c)
	if !ok {
		return
	}

	m, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

func (h *MarksHandler) History(c *gin.Context) {
	userID, ok := pathUser(c)
	if !ok {
		return
	}

	limit := queryInt(c, "limit", defaultHistoryLimit, maxHistoryLimit)
	rows, err := h.svc.History(c.Request.Context(), userID, int64(limit))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Ranking is mounted behind the admin role check.
func (h *MarksHandler) Ranking(c *gin.Context) {
	limit := queryInt(c, "limit", defaultRankingLimit, maxRankingLimit)
	rows, err := h.svc.Ranking(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *MarksHandler) Submit(c *gin.Context) {
	userID, ok := pathUser(c)
	if !ok {
		return
	}

	res, err := h.app.Submit(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
