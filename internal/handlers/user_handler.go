package handlers

import (
	"errors"
	"net/http"

	"github.com/AbdelrahmanAbudif/DevConnector/internal/helpers"
	"github.com/AbdelrahmanAbudif/DevConnector/internal/models"
	"github.com/AbdelrahmanAbudif/DevConnector/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterChecks are the declarative rules for POST /api/users.
func RegisterChecks() []models.Check {
	return []models.Check{
		models.RequiredField("name", "Name is required"),
		models.EmailField("email", "Please include a valid email"),
		models.MinLengthField("password", 6, "Please enter a password with 6 or more characters"),
	}
}

// LoginChecks are the declarative rules for POST /api/users/login.
func LoginChecks() []models.Check {
	return []models.Check{
		models.EmailField("email", "Please include a valid email"),
		models.RequiredField("password", "Password is required"),
	}
}

func RegisterUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.RegisterPayload
		if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
			c.JSON(http.StatusBadRequest, models.Msg("Invalid request payload"))
			return
		}

		if _, err := u.Register(c.Request.Context(), payload); err != nil {
			if errors.Is(err, services.ErrUserExists) {
				c.JSON(http.StatusBadRequest, models.Errors(models.CheckError{Msg: "User already exists"}))
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, models.Msg(models.ServerErrorMsg))
			return
		}

		c.String(http.StatusOK, "User registered")
	}
}

func LoginUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.LoginPayload
		if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
			c.JSON(http.StatusBadRequest, models.Msg("Invalid request payload"))
			return
		}

		token, err := u.Login(c.Request.Context(), payload)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.JSON(http.StatusBadRequest, models.Errors(models.CheckError{Msg: "Invalid credentials"}))
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, models.Msg(models.ServerErrorMsg))
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

func UploadAvatar(u *services.UserService) gin.HandlerFunc {
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

		var reqBody struct {
			Image string `json:"image" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.Msg("Image is required"))
			return
		}

		avatarURL, err := u.UploadAvatar(c.Request.Context(), userID, reqBody.Image)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, models.Msg(models.ServerErrorMsg))
			return
		}

		c.JSON(http.StatusOK, gin.H{"avatar": avatarURL})
	}
}

// currentUser pulls the verified claims set by the auth middleware. When they
// are missing the request was never admitted; reply 401 and tell the caller
// the handler already wrote a response.
func currentUser(c *gin.Context) (*helpers.AuthClaims, bool) {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.Msg("No token, authorization denied"))
		return nil, false
	}
	claims, ok := user.(*helpers.AuthClaims)
	if !ok {
		_ = c.Error(errors.New("invalid user claims in context"))
		c.JSON(http.StatusInternalServerError, models.Msg(models.ServerErrorMsg))
		return nil, false
	}
	return claims, true
}
