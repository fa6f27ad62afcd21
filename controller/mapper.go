package controller

import (
	"clubhub/fee"
	"clubhub/repository"
	"clubhub/service"
	"clubhub/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EventCreate struct {
	Title       string         `json:"title" binding:"required,max=200"`
	Description datatypes.JSON `json:"description" swaggertype:"object"`
	Venue       string         `json:"venue" binding:"max=200"`
	StartsAt    *time.Time     `json:"starts_at"`
	EndsAt      *time.Time     `json:"ends_at"`
	IsPublished bool           `json:"is_published"`
}

func (e *EventCreate) toModel() *repository.Event {
	return &repository.Event{
		Title:       e.Title,
		Description: e.Description,
		Venue:       e.Venue,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		IsPublished: e.IsPublished,
	}
}

type EventUpdate struct {
	Title       *string         `json:"title" binding:"omitempty,min=1,max=200"`
	Description *datatypes.JSON `json:"description" swaggertype:"object"`
	Venue       *string         `json:"venue" binding:"omitempty,max=200"`
	StartsAt    *time.Time      `json:"starts_at"`
	EndsAt      *time.Time      `json:"ends_at"`
	IsPublished *bool           `json:"is_published"`
}

func (e *EventUpdate) toUpdate() *service.EventUpdate {
	return &service.EventUpdate{
		Title:       e.Title,
		Description: e.Description,
		Venue:       e.Venue,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		IsPublished: e.IsPublished,
	}
}

type EventResponse struct {
	Id          uuid.UUID      `json:"id" binding:"required"`
	Title       string         `json:"title" binding:"required"`
	Description datatypes.JSON `json:"description,omitempty" swaggertype:"object"`
	Venue       string         `json:"venue"`
	StartsAt    *time.Time     `json:"starts_at,omitempty"`
	EndsAt      *time.Time     `json:"ends_at,omitempty"`
	IsPublished bool           `json:"is_published"`
	CreatedAt   time.Time      `json:"created_at"`
}

func toEventResponse(event *repository.Event) *EventResponse {
	return &EventResponse{
		Id:          event.Id,
		Title:       event.Title,
		Description: event.Description,
		Venue:       event.Venue,
		StartsAt:    event.StartsAt,
		EndsAt:      event.EndsAt,
		IsPublished: event.IsPublished,
		CreatedAt:   event.CreatedAt,
	}
}

type CompetitionCreate struct {
	Title       string         `json:"title" binding:"required,max=200"`
	Description datatypes.JSON `json:"description" swaggertype:"object"`
	Fee         float64        `json:"fee" binding:"gte=0"`
	IsPublished bool           `json:"is_published"`
}

func (c *CompetitionCreate) toModel() *repository.Competition {
	return &repository.Competition{
		Title:       c.Title,
		Description: c.Description,
		Fee:         c.Fee,
		IsPublished: c.IsPublished,
	}
}

type CompetitionUpdate struct {
	Title       *string         `json:"title" binding:"omitempty,min=1,max=200"`
	Description *datatypes.JSON `json:"description" swaggertype:"object"`
	Fee         *float64        `json:"fee" binding:"omitempty,gte=0"`
	IsPublished *bool           `json:"is_published"`
}

func (c *CompetitionUpdate) toUpdate() *service.CompetitionUpdate {
	return &service.CompetitionUpdate{
		Title:       c.Title,
		Description: c.Description,
		Fee:         c.Fee,
		IsPublished: c.IsPublished,
	}
}

type CompetitionOrder struct {
	CompetitionIds []uuid.UUID `json:"competition_ids" binding:"required"`
}

type CompetitionResponse struct {
	Id           uuid.UUID      `json:"id" binding:"required"`
	EventId      uuid.UUID      `json:"event_id" binding:"required"`
	Title        string         `json:"title" binding:"required"`
	Description  datatypes.JSON `json:"description,omitempty" swaggertype:"object"`
	Fee          float64        `json:"fee"`
	IsPublished  bool           `json:"is_published"`
	DisplayOrder int            `json:"display_order"`
}

func toCompetitionResponse(competition *repository.Competition) *CompetitionResponse {
	if competition == nil {
		return nil
	}
	return &CompetitionResponse{
		Id:           competition.Id,
		EventId:      competition.EventId,
		Title:        competition.Title,
		Description:  competition.Description,
		Fee:          competition.Fee,
		IsPublished:  competition.IsPublished,
		DisplayOrder: competition.DisplayOrder,
	}
}

type ParticipantResponse struct {
	Id              uuid.UUID                   `json:"id"`
	Name            string                      `json:"name"`
	Institution     string                      `json:"institution"`
	Class           int                         `json:"class"`
	IdAtInstitution string                      `json:"id_at_institution"`
	Email           *string                     `json:"email,omitempty"`
	Phone           *string                     `json:"phone,omitempty"`
	Note            *string                     `json:"note,omitempty"`
	TransactionId   *string                     `json:"transaction_id,omitempty"`
	PaymentProvider *repository.PaymentProvider `json:"payment_provider,omitempty"`
	CreatedAt       time.Time                   `json:"created_at"`
}

func toParticipantResponse(participant *repository.Participant) *ParticipantResponse {
	if participant == nil {
		return nil
	}
	return &ParticipantResponse{
		Id:              participant.Id,
		Name:            participant.Name,
		Institution:     participant.Institution,
		Class:           participant.Class,
		IdAtInstitution: participant.IdAtInstitution,
		Email:           participant.Email,
		Phone:           participant.Phone,
		Note:            participant.Note,
		TransactionId:   participant.TransactionId,
		PaymentProvider: participant.PaymentProvider,
		CreatedAt:       participant.CreatedAt,
	}
}

type RegistrationResponse struct {
	Id            uuid.UUID                     `json:"id"`
	ParticipantId uuid.UUID                     `json:"participant_id"`
	CompetitionId uuid.UUID                     `json:"competition_id"`
	Status        repository.RegistrationStatus `json:"status"`
	CreatedAt     time.Time                     `json:"created_at"`
	UpdatedAt     time.Time                     `json:"updated_at"`
	Competition   *CompetitionResponse          `json:"competition,omitempty"`
}

func toRegistrationResponse(registration *repository.CompetitionRegistration) *RegistrationResponse {
	return &RegistrationResponse{
		Id:            registration.Id,
		ParticipantId: registration.ParticipantId,
		CompetitionId: registration.CompetitionId,
		Status:        registration.Status,
		CreatedAt:     registration.CreatedAt,
		UpdatedAt:     registration.UpdatedAt,
		Competition:   toCompetitionResponse(registration.Competition),
	}
}

type SubmittedRegistrationResponse struct {
	Participant     *ParticipantResponse    `json:"participant"`
	Registrations   []*RegistrationResponse `json:"registrations"`
	TotalFee        float64                 `json:"total_fee"`
	PaymentRequired bool                    `json:"payment_required"`
}

func toSubmittedRegistrationResponse(submitted *service.SubmittedRegistration) *SubmittedRegistrationResponse {
	return &SubmittedRegistrationResponse{
		Participant:     toParticipantResponse(submitted.Participant),
		Registrations:   utils.Map(submitted.Registrations, toRegistrationResponse),
		TotalFee:        submitted.TotalFee,
		PaymentRequired: submitted.PaymentRequired,
	}
}

type EventParticipantResponse struct {
	Participant   *ParticipantResponse    `json:"participant"`
	Registrations []*RegistrationResponse `json:"registrations"`
	TotalFee      float64                 `json:"total_fee"`
}

// toEventParticipantResponse derives the participant's total from the competitions they registered for.
func toEventParticipantResponse(entry *service.EventParticipant) *EventParticipantResponse {
	competitions := utils.Filter(
		utils.Map(entry.Registrations, func(r *repository.CompetitionRegistration) *repository.Competition { return r.Competition }),
		func(c *repository.Competition) bool { return c != nil },
	)
	catalog := utils.Map(competitions, func(c *repository.Competition) fee.CatalogEntry {
		return fee.CatalogEntry{Id: c.Id, Fee: c.Fee}
	})
	selected := utils.Map(entry.Registrations, func(r *repository.CompetitionRegistration) uuid.UUID { return r.CompetitionId })
	return &EventParticipantResponse{
		Participant:   toParticipantResponse(entry.Participant),
		Registrations: utils.Map(entry.Registrations, toRegistrationResponse),
		TotalFee:      fee.ComputeTotalFee(selected, catalog),
	}
}

type FeeQuoteResponse struct {
	Competitions    []*CompetitionResponse `json:"competitions"`
	TotalFee        float64                `json:"total_fee"`
	PaymentRequired bool                   `json:"payment_required"`
}

func toFeeQuoteResponse(quote *service.FeeQuote) *FeeQuoteResponse {
	return &FeeQuoteResponse{
		Competitions:    utils.Map(quote.Competitions, toCompetitionResponse),
		TotalFee:        quote.TotalFee,
		PaymentRequired: quote.PaymentRequired,
	}
}

type ParticipantLookupResponse struct {
	Exists bool `json:"exists"`
}

type StatusUpdate struct {
	Status string `json:"status" binding:"required"`
}

type UserResponse struct {
	Id          int      `json:"id"`
	DisplayName string   `json:"display_name"`
	Email       string   `json:"email,omitempty"`
	Permissions []string `json:"permissions"`
}

func toUserResponse(user *repository.User) *UserResponse {
	permissions := []string(user.Permissions)
	if permissions == nil {
		permissions = []string{}
	}
	return &UserResponse{
		Id:          user.Id,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Permissions: permissions,
	}
}
