package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/AbdelrahmanAbudif/DevConnector/internal/helpers"
	"github.com/AbdelrahmanAbudif/DevConnector/internal/models"
	"github.com/cloudinary/cloudinary-go/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserService struct {
	userRepo models.UserRepo
	tokens   *helpers.TokenService
	cld      *cloudinary.Cloudinary
}

func NewUserService(userRepo models.UserRepo, tokens *helpers.TokenService, cld *cloudinary.Cloudinary) *UserService {
	return &UserService{
		userRepo: userRepo,
		tokens:   tokens,
		cld:      cld,
	}
}

// Register creates a user with a gravatar-derived avatar and a bcrypt
// password hash. The plaintext password is never stored.
func (us *UserService) Register(ctx context.Context, payload models.RegisterPayload) (*models.User, error) {
	if err := models.Validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("invalid register payload: %v", err)
	}

	_, err := us.userRepo.GetUserByEmail(ctx, payload.Email)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, models.ErrNoRecord) {
		return nil, fmt.Errorf("failed to check existing user: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: string(hashed),
		Avatar:   helpers.GravatarURL(payload.Email),
	}

	created, err := us.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %v", err)
	}

	return created, nil
}

// Login verifies the credentials and issues a signed token for the user.
func (us *UserService) Login(ctx context.Context, payload models.LoginPayload) (string, error) {
	if err := models.Validate.Struct(payload); err != nil {
		return "", fmt.Errorf("invalid login payload: %v", err)
	}

	user, err := us.userRepo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := us.tokens.Issue(user.ID.Hex())
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %v", err)
	}

	return token, nil
}

// UploadAvatar replaces the user's avatar with an uploaded image.
func (us *UserService) UploadAvatar(ctx context.Context, userID primitive.ObjectID, imageData string) (string, error) {
	avatarURL, err := helpers.UploadAvatar(ctx, us.cld, imageData)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %v", err)
	}

	if _, err := us.userRepo.UpdateAvatar(ctx, userID, avatarURL); err != nil {
		return "", fmt.Errorf("failed to update avatar: %v", err)
	}

	return avatarURL, nil
}
