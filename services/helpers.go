package services

import (
	"fmt"
	"strings"

	"github.com/playsphere/playsphere/models"
	"github.com/playsphere/playsphere/storage"
)

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func populatePlayerPhotoURL(p *models.Player, uploader storage.FileUploader) {
	if p != nil && p.PhotoKey != nil && *p.PhotoKey != "" && uploader != nil {
		if url := uploader.GetPublicURL(*p.PhotoKey); url != "" {
			p.PhotoURL = &url
		}
	}
}

func populateTeamPhotoURL(t *models.Team, uploader storage.FileUploader) {
	if t != nil && t.PhotoKey != nil && *t.PhotoKey != "" && uploader != nil {
		if url := uploader.GetPublicURL(*t.PhotoKey); url != "" {
			t.PhotoURL = &url
		}
	}
}

func populateCoachPhotoURL(c *models.Coach, uploader storage.FileUploader) {
	if c != nil && c.PhotoKey != nil && *c.PhotoKey != "" && uploader != nil {
		if url := uploader.GetPublicURL(*c.PhotoKey); url != "" {
			c.PhotoURL = &url
		}
	}
}

func populateRegistrationPhotoURL(reg *models.PlayerRegistration, uploader storage.FileUploader) {
	if reg != nil && reg.PhotoKey != nil && *reg.PhotoKey != "" && uploader != nil {
		if url := uploader.GetPublicURL(*reg.PhotoKey); url != "" {
			reg.PhotoURL = &url
		}
	}
}

// GetExtensionFromContentType maps an image content type to a file
// extension for upload keys.
func GetExtensionFromContentType(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	default:
		parts := strings.Split(contentType, "/")
		if len(parts) == 2 && strings.HasPrefix(parts[0], "image") && parts[1] != "" {
			return "." + strings.Split(parts[1], "+")[0], nil
		}
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImageType, contentType)
	}
}
