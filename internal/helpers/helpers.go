package helpers

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	AvatarFolder = "avatars"
)

// GravatarURL derives the deterministic avatar for an email address
// (200px, pg rated, mystery-man fallback).
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=200&r=pg&d=mm", hex.EncodeToString(hash[:]))
}

// UploadAvatar pushes an image (file path, URL or base64 data URI) to
// Cloudinary and returns its secure URL.
func UploadAvatar(ctx context.Context, cld *cloudinary.Cloudinary, imageData string) (string, error) {
	if strings.TrimSpace(imageData) == "" {
		return "", fmt.Errorf("no image data provided")
	}

	uploadResult, err := cld.Upload.Upload(ctx, imageData, uploader.UploadParams{
		Folder: AvatarFolder,
		Tags:   []string{"devconnector"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %v", err)
	}

	return uploadResult.SecureURL, nil
}
