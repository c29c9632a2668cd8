// evidencelog/log.go
package evidencelog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cmlsolutions-1/sgi-sub000/models"
)

// Upload is one file handed in by the form, fully read into memory. Partial
// reads must never reach Append: the caller finishes the file read first.
type Upload struct {
	FileName string
	MimeType string
	Data     []byte
}

// Allowed reports whether a mime type may be attached as evidence. Only
// images and PDFs qualify.
func Allowed(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/") || mimeType == "application/pdf"
}

// Append validates and appends a batch of uploads to the evidence list.
// Unsupported mime types are skipped silently; a zero performedOn date blocks
// the whole append. Each accepted item gets a fresh id and an UploadedAt
// stamp of now. Returns the new list and how many uploads were accepted.
func Append(list []models.Evidence, uploads []Upload, performedOn time.Time, now time.Time) ([]models.Evidence, int, error) {
	if performedOn.IsZero() {
		return list, 0, fmt.Errorf("activity date is required")
	}

	accepted := 0
	for _, u := range uploads {
		if !Allowed(u.MimeType) {
			continue
		}
		list = append(list, models.Evidence{
			ID:          uuid.NewString(),
			FileName:    u.FileName,
			MimeType:    u.MimeType,
			Size:        int64(len(u.Data)),
			Data:        u.Data,
			PerformedOn: performedOn,
			UploadedAt:  now,
		})
		accepted++
	}
	return list, accepted, nil
}

// Remove deletes one evidence item by id. Unknown ids leave the list as is.
func Remove(list []models.Evidence, id string) []models.Evidence {
	out := make([]models.Evidence, 0, len(list))
	for _, e := range list {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// Timeline returns the evidence sorted for display: most recently performed
// activity first, and among items performed the same day the most recently
// uploaded first.
func Timeline(list []models.Evidence) []models.Evidence {
	out := make([]models.Evidence, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].PerformedOn.Equal(out[j].PerformedOn) {
			return out[i].PerformedOn.After(out[j].PerformedOn)
		}
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out
}
