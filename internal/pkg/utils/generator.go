package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"family-health-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateID() string {
	return uuid.New().String()
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

// GeneratePhotoPlaceholderURL returns a random avatar for members saved without a photo.
func GeneratePhotoPlaceholderURL() string {
	seed := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return fmt.Sprintf(constvars.PhotoPlaceholderFormat, seed)
}

func GenerateFileName(prefix, originalName string, now time.Time) string {
	extension := strings.ToLower(filepath.Ext(originalName))
	timestamp := now.Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, timestamp, uuid.New().String()[:8], extension)
}
