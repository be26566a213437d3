package schema

import (
	"encoding/json"
	"time"
)

const (
	KindVerification  = "verification"
	KindPasswordReset = "password-reset"
)

// EmailJob is a mail delivery request handed off to the mailer worker.
type EmailJob struct {
	Kind           string
	RecipientName  string
	RecipientEmail string
	Token          string
	ExpiresAt      time.Time
}

func (j *EmailJob) Marshal() ([]byte, error) {
	return json.Marshal(j)
}

func (j *EmailJob) Unmarshal(data []byte) error {
	return json.Unmarshal(data, j)
}
