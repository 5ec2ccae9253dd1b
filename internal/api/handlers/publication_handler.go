package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/facultyportal/internal/models"
	"github.com/yoockh/facultyportal/internal/services"
	"github.com/yoockh/facultyportal/internal/validation"
)

type PublicationHandler struct {
	svc services.PublicationService
}

func NewPublicationHandler(svc services.PublicationService) *PublicationHandler {
	return &PublicationHandler{svc: svc}
}

type PublicationRequest struct {
	JournalType     string `json:"journalType" validate:"required,oneof=SCI Scopus"`
	JournalName     string `json:"journalName" validate:"required,max=255"`
	Publisher       string `json:"publisher" validate:"max=255"`
	PaperTitle      string `json:"paperTitle" validate:"required,max=512"`
	VolNo           string `json:"volNo" validate:"max=32"`
	DOI             string `json:"doi" validate:"max=255"`
	PublicationDate string `json:"publicationDate" validate:"omitempty,datetime=2006-01-02"`
	ImpactFactor    string `json:"impactFactor" validate:"omitempty,number"`
}

type publicationsBody struct {
	Publications []PublicationRequest `json:"publications"`
}

func (r PublicationRequest) ToModel(userID string) models.Publication {
	return models.Publication{
		UserID:          userID,
		JournalType:     r.JournalType,
		JournalName:     r.JournalName,
		Publisher:       r.Publisher,
		PaperTitle:      r.PaperTitle,
		VolNo:           r.VolNo,
		DOI:             r.DOI,
		PublicationDate: r.PublicationDate,
		ImpactFactor:    r.ImpactFactor,
	}
}

func (h *PublicationHandler) List(c *gin.Context) {
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

func (h *PublicationHandler) Replace(c *gin.Context) {
	const op = "PublicationHandler.Replace"

	userID, ok := pathUser(c)
	if !ok {
		return
	}
	var body publicationsBody
	if !bindJSON(c, op, &body) {
		return
	}
	if err := checkEach(op, body.Publications); err != nil {
		writeError(c, err)
		return
	}

	rows := make([]models.Publication, 0, len(body.Publications))
	for _, r := range body.Publications {
		rows = append(rows, r.ToModel(userID))
	}
	saved, err := h.svc.ReplaceAll(c.Request.Context(), userID, rows)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Publications saved successfully", "publications": saved})
}

func (h *PublicationHandler) Update(c *gin.Context) {
	const op = "PublicationHandler.Update"

	userID, ok := pathUser(c)
	if !ok {
		return
	}
	var req PublicationRequest
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

	c.JSON(http.StatusOK, messageResponse{Message: "Publication updated successfully"})
}

func (h *PublicationHandler) Delete(c *gin.Context) {
	userID, ok := pathUser(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Publication deleted successfully"})
}
