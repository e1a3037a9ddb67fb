package handlers

import (
	"net/http"

	"github.com/AbdelrahmanAbudif/DevConnector/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ValidateBody runs declarative field checks against the JSON body before the
// handler. Failures short-circuit with 400 and the structured error list, so
// handlers and the store never see an invalid payload. The body is bound with
// ShouldBindBodyWith so the handler can re-bind it into a typed struct.
func ValidateBody(checks ...models.Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]interface{}
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.Msg("Invalid request payload"))
			return
		}

		if errs := models.RunChecks(body, checks...); len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.Errors(errs...))
			return
		}

		c.Next()
	}
}
