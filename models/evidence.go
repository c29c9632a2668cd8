package models

import "time"

// Evidence is an uploaded artifact proving an activity occurred. PerformedOn
// is the user-supplied date of the real-world activity; UploadedAt is stamped
// by the system when the item is appended and never changes afterwards.
type Evidence struct {
	ID          string    `bson:"id" json:"id"`
	FileName    string    `bson:"fileName" json:"fileName"`
	MimeType    string    `bson:"mimeType" json:"mimeType"`
	Size        int64     `bson:"size" json:"size"`
	Data        []byte    `bson:"data" json:"data"` // embedded payload, base64 in JSON
	PerformedOn time.Time `bson:"performedOn" json:"performedOn"`
	UploadedAt  time.Time `bson:"uploadedAt" json:"uploadedAt"`
}
