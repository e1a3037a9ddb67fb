package container

import (
	"log/slog"

	"github.com/AbdelrahmanAbudif/DevConnector/internal/helpers"
	"github.com/AbdelrahmanAbudif/DevConnector/internal/models"
	"github.com/AbdelrahmanAbudif/DevConnector/internal/services"
	"github.com/cloudinary/cloudinary-go/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	Cloudinary     *cloudinary.Cloudinary
	MongoDBClient  *mongo.Client
	TokenService   *helpers.TokenService
	UserService    *services.UserService
	ProfileService *services.ProfileService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cloudinary *cloudinary.Cloudinary,
	mongoDBClient *mongo.Client,
	tokenService *helpers.TokenService,
) *Container {
	// Initialize repositories
	repo := models.MongodbNewRepo(mongoDBClient)
	userService := services.NewUserService(repo, tokenService, cloudinary)
	profileService := services.NewProfileService(repo, repo)

	return &Container{
		Logger:         logger,
		Cloudinary:     cloudinary,
		MongoDBClient:  mongoDBClient,
		TokenService:   tokenService,
		UserService:    userService,
		ProfileService: profileService,
	}
}
