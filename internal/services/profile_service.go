package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/AbdelrahmanAbudif/DevConnector/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNoProfile = errors.New("no profile for this user")

type ProfileService struct {
	profileRepo models.ProfileRepo
	userRepo    models.UserRepo
}

func NewProfileService(profileRepo models.ProfileRepo, userRepo models.UserRepo) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// GetProfileByUser fetches the profile owned by userID joined with the
// owner's name and avatar.
func (ps *ProfileService) GetProfileByUser(ctx context.Context, userID primitive.ObjectID) (*models.ProfileView, error) {
	profile, err := ps.profileRepo.GetProfileByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			return nil, ErrNoProfile
		}
		return nil, fmt.Errorf("failed to get profile: %v", err)
	}

	view := &models.ProfileView{Profile: *profile}
	owner, err := ps.userRepo.GetUserByID(ctx, profile.User)
	if err != nil {
		if !errors.Is(err, models.ErrNoRecord) {
			return nil, fmt.Errorf("failed to get profile owner: %v", err)
		}
		// Owner record gone; return the profile with an empty summary.
		view.User = models.UserSummary{ID: profile.User}
		return view, nil
	}

	view.User = models.UserSummary{ID: owner.ID, Name: owner.Name, Avatar: owner.Avatar}
	return view, nil
}

// UpsertProfile normalizes the payload and writes it over the caller's
// profile, creating one when absent.
func (ps *ProfileService) UpsertProfile(ctx context.Context, userID primitive.ObjectID, payload models.ProfilePayload) (*models.Profile, error) {
	if err := models.Validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("invalid profile payload: %v", err)
	}

	fields := models.BuildProfileFields(payload)
	profile, err := ps.profileRepo.UpsertProfile(ctx, userID, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %v", err)
	}

	return profile, nil
}

// ListProfiles returns every profile joined with its owner's name and avatar.
func (ps *ProfileService) ListProfiles(ctx context.Context) ([]*models.ProfileView, error) {
	profiles, err := ps.profileRepo.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %v", err)
	}

	ids := make([]primitive.ObjectID, 0, len(profiles))
	for _, profile := range profiles {
		ids = append(ids, profile.User)
	}

	owners := map[primitive.ObjectID]*models.User{}
	if len(ids) > 0 {
		users, err := ps.userRepo.GetUsersByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile owners: %v", err)
		}
		for _, user := range users {
			owners[user.ID] = user
		}
	}

	views := make([]*models.ProfileView, 0, len(profiles))
	for _, profile := range profiles {
		view := &models.ProfileView{Profile: *profile}
		if owner, ok := owners[profile.User]; ok {
			view.User = models.UserSummary{ID: owner.ID, Name: owner.Name, Avatar: owner.Avatar}
		} else {
			view.User = models.UserSummary{ID: profile.User}
		}
		views = append(views, view)
	}

	return views, nil
}

// DeleteAccount removes the caller's profile and user record in one request
// and returns the deleted user.
func (ps *ProfileService) DeleteAccount(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	if _, err := ps.profileRepo.DeleteProfileByUser(ctx, userID); err != nil {
		// A user without a profile can still delete the account.
		if !errors.Is(err, models.ErrNoRecord) {
			return nil, fmt.Errorf("failed to delete profile: %v", err)
		}
	}

	user, err := ps.userRepo.DeleteUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			return nil, models.ErrNoRecord
		}
		return nil, fmt.Errorf("failed to delete user: %v", err)
	}

	return user, nil
}
