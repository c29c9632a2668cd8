// store/migrate.go
package store

import (
	"time"

	"github.com/cmlsolutions-1/sgi-sub000/models"
)

// Normalize backfills records written by older schema versions so the
// classification and progress code can rely on the current shape. Runs once
// per load, before the record is handed to any caller.
//
// Legacy gaps handled:
//   - records saved before measures existed get the five default measures
//   - evidence saved before the activity-date field gets both dates
//     backfilled with now
//   - derived scores are recomputed from the level keys, repairing any
//     record that predates a table change
func Normalize(r *models.RiskRecord, now time.Time) {
	if len(r.Measures) == 0 {
		r.Measures = models.DefaultMeasures()
	}

	if r.Evidence == nil {
		r.Evidence = []models.Evidence{}
	}
	for i := range r.Evidence {
		if r.Evidence[i].PerformedOn.IsZero() {
			r.Evidence[i].PerformedOn = now
		}
		if r.Evidence[i].UploadedAt.IsZero() {
			r.Evidence[i].UploadedAt = now
		}
	}

	r.Reclassify()
}
