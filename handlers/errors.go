// File: handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kanishkk18/events/utils"
)

// respondError translates a service error into an HTTP response. Expected,
// tagged failures keep their message; provider failures surface as the
// generic fallback while the precise cause goes to the operator log.
func respondError(c *gin.Context, err error, fallback string) {
	logger := utils.GetLogger()

	var se *utils.ServiceError
	if errors.As(err, &se) {
		status := utils.HTTPStatusForError(err)
		message := se.Message
		if se.Code == utils.CodeProviderAuth || se.Code == utils.CodeProviderSync {
			logger.Error("provider operation failed", zap.String("code", se.Code), zap.Error(err))
			message = fallback
		}
		c.JSON(status, gin.H{"message": message})
		return
	}

	logger.Error("internal error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
}
