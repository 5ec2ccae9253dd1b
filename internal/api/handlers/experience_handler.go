package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/facultyportal/internal/models"
	"github.com/yoockh/facultyportal/internal/services"
	"github.com/yoockh/facultyportal/internal/validation"
)

type ExperienceHandler struct {
	svc services.ExperienceService
}

func NewExperienceHandler(svc services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{svc: svc}
}

type ExperienceRequest struct {
	ExperienceType string `json:"experienceType" validate:"required,oneof=Teaching Industry"`
	Organization   string `json:"organization" validate:"required,max=255"`
	PostHeld       string `json:"postHeld" validate:"required,max=255"`
	SalaryDrawn    string `json:"salaryDrawn" validate:"omitempty,numeric,max=32"`
	FromDate       string `json:"fromDate" validate:"required,datetime=2006-01-02"`
	ToDate         string `json:"toDate" validate:"omitempty,datetime=2006-01-02"`
}

func (r ExperienceRequest) ToModel(userID string) models.Experience {
	return models.Experience{
		UserID:         userID,
		ExperienceType: models.ExperienceType(r.ExperienceType),
		Organization:   r.Organization,
		PostHeld:       r.PostHeld,
		SalaryDrawn:    r.SalaryDrawn,
		FromDate:       r.FromDate,
		ToDate:         r.ToDate,
	}
}

func (h *ExperienceHandler) List(c *gin.Context) {
	userID, ok := pathUser(c)
	if !ok {
		return
	}

	rows, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Replace takes the whole list as a bare JSON array.
func (h *ExperienceHandler) Replace(c *gin.Context) {
	const op = "ExperienceHandler.Replace"

	userID, ok := pathUser(c)
	if !ok {
		return
	}
	var req []ExperienceRequest
	if !bindJSON(c, op, &req) {
		return
	}
	if err := checkEach(op, req); err != nil {
		writeError(c, err)
		return
	}

	rows := make([]models.Experience, 0, len(req))
	for _, r := range req {
		rows = append(rows, r.ToModel(userID))
	}
	saved, err := h.svc.ReplaceAll(c.Request.Context(), userID, rows)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Experience saved successfully", "experience": saved})
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	const op = "ExperienceHandler.Update"

	userID, ok := pathUser(c)
	if !ok {
		return
	}
	var req ExperienceRequest
	if !bindJSON(c, op, &req) {
		return
	}
	if err := validation.Check(op, &req); err != nil {
		writeError(c, err)
		return
	}

	row := req.ToModel(userID)
	row.ID = c.Param("id")
	if err := h.svc.Update(c.Request.Context(), &row); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Experience updated successfully"})
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	userID, ok := pathUser(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Experience deleted successfully"})
}
