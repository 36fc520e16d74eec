package handler

import (
	"net/http"
	"strings"

	"hospital-booking-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps a service-layer error onto an HTTP status:
// "... not found" errors become 404, "access denied ..." errors become
// 403, everything else is a 400 with the error message.
func respondServiceError(c *gin.Context, err error) {
	msg := err.Error()
	switch {
	case strings.HasSuffix(msg, "not found"):
		utils.ErrorResponse(c, http.StatusNotFound, msg)
	case strings.HasPrefix(msg, "access denied"):
		utils.ErrorResponse(c, http.StatusForbidden, msg)
	default:
		utils.ErrorResponse(c, http.StatusBadRequest, msg)
	}
}
