package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yoockh/facultyportal/internal/models"
	"github.com/yoockh/facultyportal/internal/services"
	"github.com/yoockh/facultyportal/internal/validation"
)

type EducationHandler struct {
	svc services.EducationService
}

func NewEducationHandler(svc services.EducationService) *EducationHandler {
	return &EducationHandler{svc: svc}
}

// EducationRequest is the pivoted education form. M.Phil is optional as a
// group: either every mphil_* field is sent or none is.
type EducationRequest struct {
	UserID string `json:"user_id"`

	TenthInstitution    string `json:"tenth_institution" validate:"required,max=255"`
	TenthUniversity     string `json:"tenth_university" validate:"required,max=255"`
	TenthMedium         string `json:"tenth_medium" validate:"required,max=32"`
	TenthSpecialization string `json:"tenth_specialization" validate:"max=255"`
	TenthCGPAPercentage string `json:"tenth_cgpa_percentage" validate:"required,grade"`
	TenthFirstAttempt   bool   `json:"tenth_first_attempt"`
	TenthYear           int    `json:"tenth_year" validate:"required,year"`

	TwelfthInstitution    string `json:"twelfth_institution" validate:"required,max=255"`
	TwelfthUniversity     string `json:"twelfth_university" validate:"required,max=255"`
	TwelfthMedium         string `json:"twelfth_medium" validate:"required,max=32"`
	TwelfthSpecialization string `json:"twelfth_specialization" validate:"max=255"`
	TwelfthCGPAPercentage string `json:"twelfth_cgpa_percentage" validate:"required,grade"`
	TwelfthFirstAttempt   bool   `json:"twelfth_first_attempt"`
	TwelfthYear           int    `json:"twelfth_year" validate:"required,year"`

	UGInstitution    string `json:"ug_institution" validate:"required,max=255"`
	UGUniversity     string `json:"ug_university" validate:"required,max=255"`
	UGMedium         string `json:"ug_medium" validate:"required,max=32"`
	UGSpecialization string `json:"ug_specialization" validate:"required,max=255"`
	UGCGPAPercentage string `json:"ug_cgpa_percentage" validate:"required,grade"`
	UGFirstAttempt   bool   `json:"ug_first_attempt"`
	UGYear           int    `json:"ug_year" validate:"required,year"`

	PGDegree         string `json:"pg_degree" validate:"max=32"`
	PGInstitution    string `json:"pg_institution" validate:"required,max=255"`
	PGUniversity     string `json:"pg_university" validate:"required,max=255"`
	PGMedium         string `json:"pg_medium" validate:"required,max=32"`
	PGSpecialization string `json:"pg_specialization" validate:"required,max=255"`
	PGCGPAPercentage string `json:"pg_cgpa_percentage" validate:"required,grade"`
	PGFirstAttempt   bool   `json:"pg_first_attempt"`
	PGYear           int    `json:"pg_year" validate:"required,year"`

	MPhilInstitution    string `json:"mphil_institution" validate:"max=255"`
	MPhilUniversity     string `json:"mphil_university" validate:"max=255"`
	MPhilMedium         string `json:"mphil_medium" validate:"max=32"`
	MPhilSpecialization string `json:"mphil_specialization" validate:"max=255"`
	MPhilCGPAPercentage string `json:"mphil_cgpa_percentage" validate:"omitempty,grade"`
	MPhilFirstAttempt   *bool  `json:"mphil_first_attempt"`
	MPhilYear           *int   `json:"mphil_year" validate:"omitempty,year"`
}

func init() {
	validation.RegisterStructRule(mphilGroup, EducationRequest{})
}

// mphilGroup reports every missing M.Phil field once any of them is set.
func mphilGroup(sl validator.StructLevel) {
	r := sl.Current().Interface().(EducationRequest)
	group := []struct {
		set   bool
		value any
		json  string
		name  string
	}{
		{strings.TrimSpace(r.MPhilInstitution) != "", r.MPhilInstitution, "mphil_institution", "MPhilInstitution"},
		{strings.TrimSpace(r.MPhilUniversity) != "", r.MPhilUniversity, "mphil_university", "MPhilUniversity"},
		{strings.TrimSpace(r.MPhilMedium) != "", r.MPhilMedium, "mphil_medium", "MPhilMedium"},
		{strings.TrimSpace(r.MPhilSpecialization) != "", r.MPhilSpecialization, "mphil_specialization", "MPhilSpecialization"},
		{strings.TrimSpace(r.MPhilCGPAPercentage) != "", r.MPhilCGPAPercentage, "mphil_cgpa_percentage", "MPhilCGPAPercentage"},
		{r.MPhilFirstAttempt != nil, r.MPhilFirstAttempt, "mphil_first_attempt", "MPhilFirstAttempt"},
		{r.MPhilYear != nil, r.MPhilYear, "mphil_year", "MPhilYear"},
	}

	started := false
	for _, f := range group {
		started = started || f.set
	}
	if !started {
		return
	}
	for _, f := range group {
		if !f.set {
			sl.ReportError(f.value, f.json, f.name, "group", "M.Phil")
		}
	}
}

func (r EducationRequest) ToModel(userID string) *models.Education {
	return &models.Education{
		UserID: userID,

		TenthInstitution:    r.TenthInstitution,
		TenthUniversity:     r.TenthUniversity,
		TenthMedium:         r.TenthMedium,
		TenthSpecialization: r.TenthSpecialization,
		TenthCGPAPercentage: r.TenthCGPAPercentage,
		TenthFirstAttempt:   r.TenthFirstAttempt,
		TenthYear:           r.TenthYear,

		TwelfthInstitution:    r.TwelfthInstitution,
		TwelfthUniversity:     r.TwelfthUniversity,
		TwelfthMedium:         r.TwelfthMedium,
		TwelfthSpecialization: r.TwelfthSpecialization,
		TwelfthCGPAPercentage: r.TwelfthCGPAPercentage,
		TwelfthFirstAttempt:   r.TwelfthFirstAttempt,
		TwelfthYear:           r.TwelfthYear,

		UGInstitution:    r.UGInstitution,
		UGUniversity:     r.UGUniversity,
		UGMedium:         r.UGMedium,
		UGSpecialization: r.UGSpecialization,
		UGCGPAPercentage: r.UGCGPAPercentage,
		UGFirstAttempt:   r.UGFirstAttempt,
		UGYear:           r.UGYear,

		PGDegree:         r.PGDegree,
		PGInstitution:    r.PGInstitution,
		PGUniversity:     r.PGUniversity,
		PGMedium:         r.PGMedium,
		PGSpecialization: r.PGSpecialization,
		PGCGPAPercentage: r.PGCGPAPercentage,
		PGFirstAttempt:   r.PGFirstAttempt,
		PGYear:           r.PGYear,

		MPhilInstitution:    r.MPhilInstitution,
		MPhilUniversity:     r.MPhilUniversity,
		MPhilMedium:         r.MPhilMedium,
		MPhilSpecialization: r.MPhilSpecialization,
		MPhilCGPAPercentage: r.MPhilCGPAPercentage,
		MPhilFirstAttempt:   r.MPhilFirstAttempt,
		MPhilYear:           r.MPhilYear,
	}
}

func (h *EducationHandler) Get(c *gin.Context) {
	userID, ok := pathUser(c)
	if !ok {
		return
	}

	e, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, e)
}

// Create takes the owner from the body.
func (h *EducationHandler) Create(c *gin.Context) {
	const op = "EducationHandler.Create"

	var req EducationRequest
	if !bindJSON(c, op, &req) {
		return
	}
	if !authorizeUser(c, req.UserID) {
		return
	}
	h.save(c, op, req.UserID, &req)
}

func (h *EducationHandler) Update(c *gin.Context) {
	const op = "EducationHandler.Update"

	userID, ok := pathUser(c)
	if !ok {
		return
	}
	var req EducationRequest
	if !bindJSON(c, op, &req) {
		return
	}
	h.save(c, op, userID, &req)
}

func (h *EducationHandler) save(c *gin.Context, op, userID string, req *EducationRequest) {
	if err := validation.Check(op, req); err != nil {
		writeError(c, err)
		return
	}
	if err := h.svc.Upsert(c.Request.Context(), req.ToModel(userID)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Education record inserted/updated successfully"})
}

func (h *EducationHandler) Delete(c *gin.Context) {
	userID, ok := pathUser(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Education record deleted successfully"})
}
