package models

import (
	"encoding/json"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Social struct {
	Youtube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Linkedin  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
}

type Profile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User           primitive.ObjectID `bson:"user" json:"user"`
	Status         string             `bson:"status" json:"status"`
	Skills         []string           `bson:"skills" json:"skills"`
	Website        bool               `bson:"website" json:"website"`
	Company        string             `bson:"company,omitempty" json:"company,omitempty"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	Bio            string             `bson:"bio,omitempty" json:"bio,omitempty"`
	GithubUsername string             `bson:"githubusername,omitempty" json:"githubusername,omitempty"`
	Social         Social             `bson:"social" json:"social"`
	CreatedAt      time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt      time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// ProfileView is a profile joined with the owning user's name and avatar.
type ProfileView struct {
	Profile
	User UserSummary `json:"user"`
}

// SkillList accepts either a JSON array of strings, taken as-is, or a single
// comma separated string. The string form is split on commas and every element
// is trimmed and prefixed with one leading space (" go", " node").
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		skills = append(skills, " "+strings.TrimSpace(part))
	}
	*s = skills
	return nil
}

// ProfilePayload is the typed partial update accepted by the profile upsert.
// Only these fields are ever written to storage.
type ProfilePayload struct {
	Status         string    `json:"status" validate:"required"`
	Skills         SkillList `json:"skills" validate:"required,min=1"`
	Website        string    `json:"website"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Bio            string    `json:"bio"`
	GithubUsername string    `json:"githubusername"`
	Youtube        string    `json:"youtube"`
	Twitter        string    `json:"twitter"`
	Instagram      string    `json:"instagram"`
	Linkedin       string    `json:"linkedin"`
	Facebook       string    `json:"facebook"`
}

// ProfileFields is the merge target of an upsert: the subset of a stored
// profile a single update is allowed to overwrite.
type ProfileFields struct {
	Status         string   `bson:"status"`
	Skills         []string `bson:"skills"`
	Website        bool     `bson:"website"`
	Company        string   `bson:"company"`
	Location       string   `bson:"location"`
	Bio            string   `bson:"bio"`
	GithubUsername string   `bson:"githubusername"`
	Social         Social   `bson:"social"`
}

// BuildProfileFields normalizes an update payload into the fields an upsert
// writes. The website string collapses to a presence flag and the social
// links are collected into a sub-document whether or not they were set.
func BuildProfileFields(payload ProfilePayload) ProfileFields {
	return ProfileFields{
		Status:         payload.Status,
		Skills:         payload.Skills,
		Website:        strings.TrimSpace(payload.Website) != "",
		Company:        payload.Company,
		Location:       payload.Location,
		Bio:            payload.Bio,
		GithubUsername: payload.GithubUsername,
		Social: Social{
			Youtube:   payload.Youtube,
			Twitter:   payload.Twitter,
			Instagram: payload.Instagram,
			Linkedin:  payload.Linkedin,
			Facebook:  payload.Facebook,
		},
	}
}
