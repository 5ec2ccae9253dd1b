package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/facultyportal/internal/models"
	"github.com/yoockh/facultyportal/internal/services"
	"github.com/yoockh/facultyportal/internal/utils"
	"github.com/yoockh/facultyportal/internal/validation"
)

type PhDHandler struct {
	svc services.PhDService
}

func NewPhDHandler(svc services.PhDService) *PhDHandler {
	return &PhDHandler{svc: svc}
}

type PhDRequest struct {
	UserID                    string `json:"user_id"`
	University                string `json:"university" validate:"required,max=255"`
	Title                     string `json:"title" validate:"required,max=512"`
	GuideName                 string `json:"guide_name" validate:"required,max=255"`
	GuideCollege              string `json:"guide_college" validate:"required,max=255"`
	Status                    string `json:"status" validate:"required,oneof='Pursuing' 'Thesis submitted' 'Viva voce completed' 'Degree Awarded'"`
	YearOfRegistration        int    `json:"year_of_registration" validate:"required,year"`
	YearOfCompletion          *int   `json:"year_of_completion" validate:"omitempty,year"`
	NoOfPublicationsDuringPhD int    `json:"no_of_publications_during_phd" validate:"min=0"`
	NoOfPublicationsPostPhD   int    `json:"no_of_publications_post_phd" validate:"min=0"`
	PostPhDExperience         string `json:"post_phd_experience"`
}

func (r PhDRequest) ToModel(userID string) *models.PhD {
	return &models.PhD{
		UserID:                    userID,
		University:                r.University,
		Title:                     r.Title,
		GuideName:                 r.GuideName,
		GuideCollege:              r.GuideCollege,
		Status:                    models.PhDStatus(r.Status),
		YearOfRegistration:        r.YearOfRegistration,
		YearOfCompletion:          r.YearOfCompletion,
		NoOfPublicationsDuringPhD: r.NoOfPublicationsDuringPhD,
		NoOfPublicationsPostPhD:   r.NoOfPublicationsPostPhD,
		PostPhDExperience:         r.PostPhDExperience,
	}
}

// Get answers with a list of zero or one records, which is the shape the
// form reads.
func (h *PhDHandler) Get(c *gin.Context) {
	userID, ok := pathUser(c)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), userID)
	if utils.IsCode(err, utils.CodeNotFound) {
		c.JSON(http.StatusOK, []models.PhD{})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, []models.PhD{*p})
}

func (h *PhDHandler) Create(c *gin.Context) {
	const op = "PhDHandler.Create"

	var req PhDRequest
	if !bindJSON(c, op, &req) {
		return
	}
	if !authorizeUser(c, req.UserID) {
		return
	}
	h.save(c, op, req.UserID, &req, http.StatusCreated)
}

func (h *PhDHandler) Update(c *gin.Context) {
	const op = "PhDHandler.Update"

	userID, ok := pathUser(c)
	if !ok {
		return
	}
	var req PhDRequest
	if !bindJSON(c, op, &req) {
		return
	}
	h.save(c, op, userID, &req, http.StatusOK)
}

func (h *PhDHandler) save(c *gin.Context, op, userID string, req *PhDRequest, status int) {
	if err := validation.Check(op, req); err != nil {
		writeError(c, err)
		return
	}
	if err := h.svc.Upsert(c.Request.Context(), req.ToModel(userID)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(status, messageResponse{Message: "PhD information saved successfully"})
}

func (h *PhDHandler) Delete(c *gin.Context) {
	userID, ok := pathUser(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "PhD information deleted successfully"})
}
