package handlers

import (
	"errors"
	"net/http"

	"github.com/AbdelrahmanAbudif/DevConnector/internal/models"
	"github.com/AbdelrahmanAbudif/DevConnector/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileChecks are the declarative rules for POST /api/profile.
func ProfileChecks() []models.Check {
	return []models.Check{
		models.RequiredField("status", "Status is required"),
		models.RequiredField("skills", "Skills is required"),
	}
}

func GetMyProfile(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.Msg("Invalid token, authorization denied"))
			return
		}

		profile, err := p.GetProfileByUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrNoProfile) {
				c.JSON(http.StatusBadRequest, models.Msg("No profile for this user"))
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, models.Msg(models.ServerErrorMsg))
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

func UpsertProfile(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.Msg("Invalid token, authorization denied"))
			return
		}

		var payload models.ProfilePayload
		if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
			c.JSON(http.StatusBadRequest, models.Msg("Invalid request payload"))
			return
		}

		profile, err := p.UpsertProfile(c.Request.Context(), userID, payload)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, models.Msg(models.ServerErrorMsg))
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

func ListProfiles(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profiles, err := p.ListProfiles(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, models.Msg(models.ServerErrorMsg))
			return
		}

		c.JSON(http.StatusOK, profiles)
	}
}

func GetProfileByUserID(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := primitive.ObjectIDFromHex(c.Param("user_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Msg("No profile created for this user"))
			return
		}

		profile, err := p.GetProfileByUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrNoProfile) {
				c.JSON(http.StatusBadRequest, models.Msg("No profile created for this user"))
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, models.Msg(models.ServerErrorMsg))
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

func DeleteAccount(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.Msg("Invalid token, authorization denied"))
			return
		}

		user, err := p.DeleteAccount(c.Request.Context(), userID)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, models.Msg(models.ServerErrorMsg))
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
