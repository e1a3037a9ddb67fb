package services

import (
	"context"
	"time"

	"github.com/AbdelrahmanAbudif/DevConnector/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repos backing the service tests.

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*models.User{}}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, models.ErrNoRecord
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, models.ErrNoRecord
	}
	return user, nil
}

func (f *fakeUserRepo) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.User, error) {
	var users []*models.User
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (f *fakeUserRepo) UpdateAvatar(ctx context.Context, id primitive.ObjectID, avatarURL string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, models.ErrNoRecord
	}
	user.Avatar = avatarURL
	return user, nil
}

func (f *fakeUserRepo) DeleteUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, models.ErrNoRecord
	}
	delete(f.users, id)
	return user, nil
}

type fakeProfileRepo struct {
	profiles map[primitive.ObjectID]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[primitive.ObjectID]*models.Profile{}}
}

func (f *fakeProfileRepo) UpsertProfile(ctx context.Context, userID primitive.ObjectID, fields models.ProfileFields) (*models.Profile, error) {
	now := time.Now()
	profile, ok := f.profiles[userID]
	if !ok {
		profile = &models.Profile{
			ID:        primitive.NewObjectID(),
			User:      userID,
			CreatedAt: now,
		}
		f.profiles[userID] = profile
	}
	profile.Status = fields.Status
	profile.Skills = fields.Skills
	profile.Website = fields.Website
	profile.Company = fields.Company
	profile.Location = fields.Location
	profile.Bio = fields.Bio
	profile.GithubUsername = fields.GithubUsername
	profile.Social = fields.Social
	profile.UpdatedAt = now
	return profile, nil
}

func (f *fakeProfileRepo) GetProfileByUser(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, models.ErrNoRecord
	}
	return profile, nil
}

func (f *fakeProfileRepo) ListProfiles(ctx context.Context) ([]*models.Profile, error) {
	var profiles []*models.Profile
	for _, profile := range f.profiles {
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (f *fakeProfileRepo) DeleteProfileByUser(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, models.ErrNoRecord
	}
	delete(f.profiles, userID)
	return profile, nil
}
