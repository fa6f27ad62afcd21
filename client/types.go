package client

import (
	"time"

	"github.com/google/uuid"
)

type RegistrationMessageType string

const (
	RegistrationSubmitted     RegistrationMessageType = "registration_submitted"
	RegistrationStatusChanged RegistrationMessageType = "registration_status_changed"
)

// RegistrationMessage is what listeners receive after a registration write commits.
type RegistrationMessage struct {
	Type            RegistrationMessageType   `json:"type"`
	EventId         uuid.UUID                 `json:"event_id"`
	ParticipantId   uuid.UUID                 `json:"participant_id"`
	ParticipantName string                    `json:"participant_name,omitempty"`
	Institution     string                    `json:"institution,omitempty"`
	TotalFee        *float64                  `json:"total_fee,omitempty"`
	TransactionId   *string                   `json:"transaction_id,omitempty"`
	Registrations   []RegistrationMessageItem `json:"registrations"`
	Timestamp       time.Time                 `json:"timestamp"`
}

type RegistrationMessageItem struct {
	Id               uuid.UUID `json:"id"`
	CompetitionId    uuid.UUID `json:"competition_id"`
	CompetitionTitle string    `json:"competition_title,omitempty"`
	Status           string    `json:"status"`
}
