package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/facultyportal/internal/models"
	"github.com/yoockh/facultyportal/internal/utils"
	"github.com/yoockh/facultyportal/internal/validation"
)

type APIError struct {
	Code    utils.Code        `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
			Fields:  ae.Fields,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

func requireUserID(c *gin.Context) (string, bool) {
	if v, ok := c.Get("user_id"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}

	writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "unauthorized", nil))
	return "", false
}

// authorizeUser lets callers act on their own records; admins may act on
// anyone's.
func authorizeUser(c *gin.Context, userID string) bool {
	caller, ok := requireUserID(c)
	if !ok {
		return false
	}
	if userID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "Auth", "userId is required", nil))
		return false
	}
	if caller == userID {
		return true
	}
	if role, _ := c.Get("role"); role == string(models.RoleAdmin) {
		return true
	}
	writeError(c, utils.E(utils.CodeForbidden, "Auth", "forbidden", nil))
	return false
}

// pathUser reads :userId and checks the caller may act on it.
func pathUser(c *gin.Context) (string, bool) {
	userID := c.Param("userId")
	return userID, authorizeUser(c, userID)
}

func bindJSON(c *gin.Context, op string, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return false
	}
	return true
}

// checkEach validates every element of a submitted list and reports the
// failures under "[i].field" keys.
func checkEach[T any](op string, rows []T) error {
	fields := map[string]string{}
	var first error
	for i := range rows {
		err := validation.Check(op, &rows[i])
		if err == nil {
			continue
		}
		var ae *utils.AppError
		if !errors.As(err, &ae) || len(ae.Fields) == 0 {
			return err
		}
		if first == nil {
			first = ae.Err
		}
		for k, v := range ae.Fields {
			fields[fmt.Sprintf("[%d].%s", i, k)] = v
		}
	}
	if len(fields) > 0 {
		return utils.Invalid(op, fields, first)
	}
	return nil
}

func queryInt(c *gin.Context, key string, def, max int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}
