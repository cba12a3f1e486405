package handler

import (
	"errors"

	"main/model"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps domain error types onto the response envelope. Anything
// unrecognized is a data-store or internal failure and surfaces as 5xx.
func respondError(c *gin.Context, err error) {
	var validationErr *model.ValidationError
	var notFoundErr *model.NotFoundError
	var dependencyErr *model.DependencyError

	switch {
	case errors.As(err, &validationErr):
		utils.BadRequest(c, validationErr.Message)
	case errors.As(err, &notFoundErr):
		utils.NotFound(c, notFoundErr.Error())
	case errors.As(err, &dependencyErr):
		utils.Conflict(c, dependencyErr.Error())
	default:
		utils.InternalError(c, err.Error())
	}
}

// userID pulls the authenticated user id set by the auth middleware.
func userID(c *gin.Context) (string, bool) {
	id, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return "", false
	}
	return id.(string), true
}
