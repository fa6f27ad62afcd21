package controller

import (
	"clubhub/app_error"
	"clubhub/service"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RegistrationController struct {
	registrationService *service.RegistrationService
	participantService  *service.ParticipantService
}

func NewRegistrationController(deps *Dependencies) *RegistrationController {
	return &RegistrationController{
		registrationService: service.NewRegistrationService(deps.DB, deps.Dispatcher),
		participantService:  service.NewParticipantService(deps.DB),
	}
}

func setupRegistrationController(deps *Dependencies) []RouteInfo {
	e := NewRegistrationController(deps)
	return []RouteInfo{
		{Method: "POST", Path: "/events/:event_id/registrations", HandlerFunc: e.submitRegistrationHandler()},
		{Method: "GET", Path: "/events/:event_id/registrations/fee", HandlerFunc: e.quoteFeeHandler()},
		{Method: "GET", Path: "/participants/lookup", HandlerFunc: e.lookupParticipantHandler()},
	}
}

// @id SubmitRegistration
// @Description Registers a participant for one or more competitions of an event. Every registration starts as pending.
// @Description transaction_id and payment_provider are required when the selected competitions carry a fee.
// @Tags registration
// @Accept json
// @Produce json
// @Param event_id path string true "Event Id"
// @Param registration body service.RegistrationForm true "Registration form"
// @Success 201 {object} SubmittedRegistrationResponse
// @Failure 400 {object} app_error.Response
// @Router /events/{event_id}/registrations [post]
func (e *RegistrationController) submitRegistrationHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := uuidParam(c, "event_id")
		if !ok {
			return
		}
		var form service.RegistrationForm
		if !bindJSON(c, &form) {
			return
		}
		submitted, err := e.registrationService.SubmitRegistration(c.Request.Context(), eventId, &form)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		app_error.Respond(c, http.StatusCreated, toSubmittedRegistrationResponse(submitted), "Registration submitted")
	}
}

// @id QuoteRegistrationFee
// @Description Prices a selection of competitions and tells whether payment details are needed
// @Tags registration
// @Produce json
// @Param event_id path string true "Event Id"
// @Param competitions query []string true "Competition ids, repeated or comma separated" collectionFormat(csv)
// @Success 200 {object} FeeQuoteResponse
// @Router /events/{event_id}/registrations/fee [get]
func (e *RegistrationController) quoteFeeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := uuidParam(c, "event_id")
		if !ok {
			return
		}
		competitionIds, err := parseIdList(c.QueryArray("competitions"))
		if err != nil {
			app_error.Abort(c, app_error.NewValidationError(app_error.FieldError{Field: "competitions", Message: err.Error()}))
			return
		}
		quote, err := e.registrationService.QuoteFee(c.Request.Context(), eventId, competitionIds)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		app_error.Respond(c, http.StatusOK, toFeeQuoteResponse(quote), "")
	}
}

// @id LookupParticipant
// @Description Tells whether someone already registered with this email or this id at the institution.
// @Description The answer is informational and never blocks a registration.
// @Tags registration
// @Produce json
// @Param email query string false "Email"
// @Param id_at_institution query string false "Id at the institution"
// @Param institution query string false "Institution"
// @Success 200 {object} ParticipantLookupResponse
// @Router /participants/lookup [get]
func (e *RegistrationController) lookupParticipantHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.Query("email"))
		idAtInstitution := strings.TrimSpace(c.Query("id_at_institution"))
		institution := strings.TrimSpace(c.Query("institution"))
		if email == "" && (idAtInstitution == "" || institution == "") {
			app_error.Abort(c, app_error.NewValidationError(app_error.FieldError{
				Field:   "email",
				Message: "email or both id_at_institution and institution are required",
			}))
			return
		}
		participant, err := e.participantService.FindExistingParticipant(c.Request.Context(), email, idAtInstitution, institution)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		app_error.Respond(c, http.StatusOK, ParticipantLookupResponse{Exists: participant != nil}, "")
	}
}

func parseIdList(values []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := uuid.Parse(part)
			if err != nil {
				return nil, fmt.Errorf("%q is not a uuid", part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
