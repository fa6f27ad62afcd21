package controller

import (
	"clubhub/app_error"
	"clubhub/repository"
	"clubhub/service"
	"clubhub/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ParticipantController struct {
	registrationService *service.RegistrationService
	participantService  *service.ParticipantService
	statusService       *service.StatusService
}

func NewParticipantController(deps *Dependencies) *ParticipantController {
	return &ParticipantController{
		registrationService: service.NewRegistrationService(deps.DB, deps.Dispatcher),
		participantService:  service.NewParticipantService(deps.DB),
		statusService:       service.NewStatusService(deps.DB, deps.Dispatcher),
	}
}

func setupParticipantController(deps *Dependencies) []RouteInfo {
	e := NewParticipantController(deps)
	return []RouteInfo{
		{Method: "GET", Path: "/events/:event_id/participants", HandlerFunc: e.getEventParticipantsHandler(), Authenticated: true, RequiredRoles: organizers},
		{Method: "PUT", Path: "/events/:event_id/participants/:participant_id/status", HandlerFunc: e.setParticipantStatusHandler(), Authenticated: true, RequiredRoles: organizers},
		{Method: "GET", Path: "/participants/:participant_id", HandlerFunc: e.getParticipantHandler(), Authenticated: true, RequiredRoles: organizers},
		{Method: "PUT", Path: "/registrations/:registration_id/status", HandlerFunc: e.setRegistrationStatusHandler(), Authenticated: true, RequiredRoles: organizers},
	}
}

func parseStatus(c *gin.Context) (repository.RegistrationStatus, bool) {
	var update StatusUpdate
	if !bindJSON(c, &update) {
		return "", false
	}
	status, err := repository.ParseRegistrationStatus(update.Status)
	if err != nil {
		app_error.Abort(c, app_error.NewValidationError(app_error.FieldError{
			Field:   "status",
			Message: "must be one of: pending, confirmed, rejected",
		}))
		return "", false
	}
	return status, true
}

// @id GetEventParticipants
// @Description Lists every participant registered for at least one competition of the event, with their registrations and total fee
// @Tags participant
// @Produce json
// @Param event_id path string true "Event Id"
// @Success 200 {array} EventParticipantResponse
// @Security BearerAuth
// @Router /events/{event_id}/participants [get]
func (e *ParticipantController) getEventParticipantsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := uuidParam(c, "event_id")
		if !ok {
			return
		}
		participants, err := e.registrationService.GetEventParticipants(c.Request.Context(), eventId)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		app_error.Respond(c, http.StatusOK, utils.Map(participants, toEventParticipantResponse), "")
	}
}

// @id GetParticipant
// @Description Gets a participant with all of their registrations
// @Tags participant
// @Produce json
// @Param participant_id path string true "Participant Id"
// @Success 200 {object} EventParticipantResponse
// @Security BearerAuth
// @Router /participants/{participant_id} [get]
func (e *ParticipantController) getParticipantHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		participantId, ok := uuidParam(c, "participant_id")
		if !ok {
			return
		}
		participant, err := e.participantService.GetParticipantWithRegistrations(c.Request.Context(), participantId)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		app_error.Respond(c, http.StatusOK, toEventParticipantResponse(participant), "")
	}
}

// @id SetRegistrationStatus
// @Description Sets the status of one registration. "approved" is accepted for confirmed.
// @Tags participant
// @Accept json
// @Produce json
// @Param registration_id path string true "Registration Id"
// @Param status body StatusUpdate true "New status"
// @Success 200 {object} RegistrationResponse
// @Security BearerAuth
// @Router /registrations/{registration_id}/status [put]
func (e *ParticipantController) setRegistrationStatusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		registrationId, ok := uuidParam(c, "registration_id")
		if !ok {
			return
		}
		status, ok := parseStatus(c)
		if !ok {
			return
		}
		registration, err := e.statusService.SetStatus(c.Request.Context(), registrationId, status)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		app_error.Respond(c, http.StatusOK, toRegistrationResponse(registration), "Status updated")
	}
}

// @id SetParticipantStatus
// @Description Sets the status of all of a participant's registrations for this event's competitions
// @Tags participant
// @Accept json
// @Produce json
// @Param event_id path string true "Event Id"
// @Param participant_id path string true "Participant Id"
// @Param status body StatusUpdate true "New status"
// @Success 200 {array} RegistrationResponse
// @Security BearerAuth
// @Router /events/{event_id}/participants/{participant_id}/status [put]
func (e *ParticipantController) setParticipantStatusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := uuidParam(c, "event_id")
		if !ok {
			return
		}
		participantId, ok := uuidParam(c, "participant_id")
		if !ok {
			return
		}
		status, ok := parseStatus(c)
		if !ok {
			return
		}
		registrations, err := e.statusService.SetAllStatusesForParticipant(c.Request.Context(), participantId, eventId, status)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		app_error.Respond(c, http.StatusOK, utils.Map(registrations, toRegistrationResponse), "Statuses updated")
	}
}
