package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/facultyportal/internal/models"
	"github.com/yoockh/facultyportal/internal/services"
	"github.com/yoockh/facultyportal/internal/validation"
)

type CourseHandler struct {
	svc services.CourseService
}

func NewCourseHandler(svc services.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

type CourseRequest struct {
	CourseName  string `json:"courseName" validate:"required,max=255"`
	Platform    string `json:"platform" validate:"max=64"`
	Duration    string `json:"duration" validate:"required,max=16"`
	ScoreEarned string `json:"scoreEarned" validate:"omitempty,grade"`
}

type coursesBody struct {
	Courses []CourseRequest `json:"courses"`
}

func (r CourseRequest) ToModel(userID string) models.Course {
	return models.Course{
		UserID:      userID,
		CourseName:  r.CourseName,
		Platform:    r.Platform,
		Duration:    r.Duration,
		ScoreEarned: r.ScoreEarned,
	}
}

// UserInfoRequest follows the camelCase the form posts; reads come back in
// the stored snake_case.
type UserInfoRequest struct {
	Family        string `json:"family"`
	Reference     string `json:"reference"`
	AnyOtherInfo  string `json:"anyOtherInfo"`
	AwardsDetails string `json:"awardsDetails"`
	NoOfAwards    int    `json:"noOfAwards" validate:"min=0"`
}

func (h *CourseHandler) List(c *gin.Context) {
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

func (h *CourseHandler) Replace(c *gin.Context) {
	const op = "CourseHandler.Replace"

	userID, ok := pathUser(c)
	if !ok {
		return
	}
	var body coursesBody
	if !bindJSON(c, op, &body) {
		return
	}
	if err := checkEach(op, body.Courses); err != nil {
		writeError(c, err)
		return
	}

	rows := make([]models.Course, 0, len(body.Courses))
	for _, r := range body.Courses {
		rows = append(rows, r.ToModel(userID))
	}
	saved, err := h.svc.ReplaceAll(c.Request.Context(), userID, rows)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Courses saved successfully", "courses": saved})
}

func (h *CourseHandler) Delete(c *gin.Context) {
	userID, ok := pathUser(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Course deleted successfully"})
}

func (h *CourseHandler) GetInfo(c *gin.Context) {
	userID, ok := pathUser(c)
	if !ok {
		return
	}

	info, err := h.svc.GetInfo(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

func (h *CourseHandler) SaveInfo(c *gin.Context) {
	const op = "CourseHandler.SaveInfo"

	userID, ok := pathUser(c)
	if !ok {
		return
	}
	var req UserInfoRequest
	if !bindJSON(c, op, &req) {
		return
	}
	if err := validation.Check(op, &req); err != nil {
		writeError(c, err)
		return
	}

	info := &models.UserInfo{
		UserID:        userID,
		Family:        req.Family,
		Reference:     req.Reference,
		AnyOtherInfo:  req.AnyOtherInfo,
		AwardsDetails: req.AwardsDetails,
		NoOfAwards:    req.NoOfAwards,
	}
	if err := h.svc.SaveInfo(c.Request.Context(), info); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Additional information saved successfully"})
}
