package evidencelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlsolutions-1/sgi-sub000/models"
)

var (
	performed = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	uploaded  = time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
)

func TestAppendFiltersUnsupportedTypes(t *testing.T) {
	uploads := []Upload{
		{FileName: "photo.jpg", MimeType: "image/jpeg", Data: []byte("jpg")},
		{FileName: "report.pdf", MimeType: "application/pdf", Data: []byte("pdf")},
		{FileName: "macro.xlsm", MimeType: "application/vnd.ms-excel", Data: []byte("xls")},
		{FileName: "notes.txt", MimeType: "text/plain", Data: []byte("txt")},
	}

	list, accepted, err := Append(nil, uploads, performed, uploaded)
	require.NoError(t, err)

	assert.Equal(t, 2, accepted)
	require.Len(t, list, 2)
	assert.Equal(t, "photo.jpg", list[0].FileName)
	assert.Equal(t, "report.pdf", list[1].FileName)
}

func TestAppendStampsItems(t *testing.T) {
	list, _, err := Append(nil, []Upload{{FileName: "a.png", MimeType: "image/png", Data: []byte("12345")}}, performed, uploaded)
	require.NoError(t, err)
	require.Len(t, list, 1)

	e := list[0]
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, int64(5), e.Size)
	assert.Equal(t, performed, e.PerformedOn)
	assert.Equal(t, uploaded, e.UploadedAt)
}

func TestAppendRequiresActivityDate(t *testing.T) {
	existing := []models.Evidence{{ID: "keep"}}

	list, accepted, err := Append(existing, []Upload{{FileName: "a.png", MimeType: "image/png"}}, time.Time{}, uploaded)

	assert.Error(t, err)
	assert.Equal(t, 0, accepted)
	assert.Equal(t, existing, list)
}

func TestRemoveByID(t *testing.T) {
	list := []models.Evidence{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	list = Remove(list, "b")
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "c", list[1].ID)

	// unknown id is a no-op
	assert.Len(t, Remove(list, "zzz"), 2)
}

func TestTimelineOrdersByActivityThenUpload(t *testing.T) {
	older := performed.AddDate(0, 0, -5)
	list := []models.Evidence{
		{ID: "old", PerformedOn: older, UploadedAt: uploaded},
		{ID: "early-upload", PerformedOn: performed, UploadedAt: uploaded},
		{ID: "late-upload", PerformedOn: performed, UploadedAt: uploaded.Add(time.Hour)},
	}

	timeline := Timeline(list)
	require.Len(t, timeline, 3)

	// same activity date: later upload first
	assert.Equal(t, "late-upload", timeline[0].ID)
	assert.Equal(t, "early-upload", timeline[1].ID)
	assert.Equal(t, "old", timeline[2].ID)

	// input order untouched
	assert.Equal(t, "old", list[0].ID)
}

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed("image/png"))
	assert.True(t, Allowed("image/webp"))
	assert.True(t, Allowed("application/pdf"))
	assert.False(t, Allowed("application/zip"))
	assert.False(t, Allowed("video/mp4"))
	assert.False(t, Allowed(""))
}
