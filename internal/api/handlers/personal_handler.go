package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/facultyportal/internal/models"
	"github.com/yoockh/facultyportal/internal/services"
	"github.com/yoockh/facultyportal/internal/utils"
	"github.com/yoockh/facultyportal/internal/validation"
)

const maxPhotoBytes = 2 << 20

var photoTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

type PersonalHandler struct {
	svc services.PersonalService
}

func NewPersonalHandler(svc services.PersonalService) *PersonalHandler {
	return &PersonalHandler{svc: svc}
}

// PersonalForm is the multipart body of the personal section.
type PersonalForm struct {
	FullName             string `form:"fullName" json:"fullName" validate:"required,max=255"`
	ReferenceNumber      string `form:"referenceNumber" json:"referenceNumber" validate:"max=64"`
	DateOfBirth          string `form:"dateOfBirth" json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Age                  int    `form:"age" json:"age" validate:"omitempty,min=18,max=100"`
	Gender               string `form:"gender" json:"gender" validate:"required,max=16"`
	CommunicationAddress string `form:"communicationAddress" json:"communicationAddress" validate:"required"`
	PermanentAddress     string `form:"permanentAddress" json:"permanentAddress"`
	Religion             string `form:"religion" json:"religion" validate:"max=64"`
	Community            string `form:"community" json:"community" validate:"max=64"`
	Caste                string `form:"caste" json:"caste" validate:"max=64"`
	Email                string `form:"email" json:"email" validate:"required,email"`
	MobileNumber         string `form:"mobileNumber" json:"mobileNumber" validate:"required,numeric,len=10"`
	Post                 string `form:"post" json:"post" validate:"required,max=128"`
	Department           string `form:"department" json:"department" validate:"required,max=128"`
	AppliedDate          string `form:"appliedDate" json:"appliedDate" validate:"omitempty,datetime=2006-01-02"`
}

func (f PersonalForm) ToModel(userID string) *models.Personal {
	return &models.Personal{
		UserID:               userID,
		FullName:             f.FullName,
		ReferenceNumber:      f.ReferenceNumber,
		DateOfBirth:          f.DateOfBirth,
		Age:                  f.Age,
		Gender:               f.Gender,
		CommunicationAddress: f.CommunicationAddress,
		PermanentAddress:     f.PermanentAddress,
		Religion:             f.Religion,
		Community:            f.Community,
		Caste:                f.Caste,
		Email:                f.Email,
		MobileNumber:         f.MobileNumber,
		Post:                 f.Post,
		Department:           f.Department,
		AppliedDate:          f.AppliedDate,
	}
}

func (h *PersonalHandler) Get(c *gin.Context) {
	userID, ok := pathUser(c)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *PersonalHandler) Save(c *gin.Context) {
	const op = "PersonalHandler.Save"

	userID, ok := pathUser(c)
	if !ok {
		return
	}

	var form PersonalForm
	if err := c.ShouldBind(&form); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid form data", err))
		return
	}
	if err := validation.Check(op, &form); err != nil {
		writeError(c, err)
		return
	}

	photo, err := readPhoto(c, op)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.svc.Save(c.Request.Context(), form.ToModel(userID), photo); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Personal Data Saved/Updated"})
}

// readPhoto returns nil when no photo part was sent.
func readPhoto(c *gin.Context, op string) (*services.Photo, error) {
	fh, err := c.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid photo upload", err)
	}
	if fh.Size <= 0 || fh.Size > maxPhotoBytes {
		return nil, utils.E(utils.CodeInvalidArgument, op, "photo too large (max 2MB)", nil)
	}

	file, err := fh.Open()
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to open upload", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to read upload", err)
	}
	if len(data) > maxPhotoBytes {
		return nil, utils.E(utils.CodeInvalidArgument, op, "photo too large (max 2MB)", nil)
	}

	// sniff, never trust the client header
	ct := http.DetectContentType(data)
	ext, ok := photoTypes[ct]
	if !ok {
		return nil, utils.E(utils.CodeInvalidArgument, op, "photo must be a JPEG or PNG image", nil)
	}

	return &services.Photo{Data: data, ContentType: ct, Ext: ext}, nil
}
