package controller

import (
	"clubhub/app_error"
	"clubhub/service"
	"clubhub/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	eventService *service.EventService
}

func NewEventController(deps *Dependencies) *EventController {
	return &EventController{
		eventService: service.NewEventService(deps.DB),
	}
}

func setupEventController(deps *Dependencies) []RouteInfo {
	e := NewEventController(deps)
	return withBasePath("/events", []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getEventsHandler(true)},
		{Method: "GET", Path: "/all", HandlerFunc: e.getEventsHandler(false), Authenticated: true, RequiredRoles: organizers},
		{Method: "POST", Path: "", HandlerFunc: e.createEventHandler(), Authenticated: true, RequiredRoles: organizers},
		{Method: "GET", Path: "/:event_id", HandlerFunc: e.getEventHandler()},
		{Method: "PATCH", Path: "/:event_id", HandlerFunc: e.updateEventHandler(), Authenticated: true, RequiredRoles: organizers},
		{Method: "DELETE", Path: "/:event_id", HandlerFunc: e.deleteEventHandler(), Authenticated: true, RequiredRoles: organizers},
	})
}

// @id GetEvents
// @Description Fetches published events, or every event on /events/all
// @Tags event
// @Produce json
// @Success 200 {array} EventResponse
// @Router /events [get]
func (e *EventController) getEventsHandler(publishedOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := e.eventService.GetAllEvents(c.Request.Context(), publishedOnly)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		app_error.Respond(c, http.StatusOK, utils.Map(events, toEventResponse), "")
	}
}

// @id CreateEvent
// @Description Creates an event
// @Tags event
// @Accept json
// @Produce json
// @Param event body EventCreate true "Event to create"
// @Success 201 {object} EventResponse
// @Security BearerAuth
// @Router /events [post]
func (e *EventController) createEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var eventCreate EventCreate
		if !bindJSON(c, &eventCreate) {
			return
		}
		event, err := e.eventService.CreateEvent(c.Request.Context(), eventCreate.toModel())
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		app_error.Respond(c, http.StatusCreated, toEventResponse(event), "Event created")
	}
}

// @id GetEvent
// @Description Gets an event by id
// @Tags event
// @Produce json
// @Param event_id path string true "Event Id"
// @Success 200 {object} EventResponse
// @Router /events/{event_id} [get]
func (e *EventController) getEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := uuidParam(c, "event_id")
		if !ok {
			return
		}
		event, err := e.eventService.GetEventById(c.Request.Context(), eventId)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		app_error.Respond(c, http.StatusOK, toEventResponse(event), "")
	}
}

// @id UpdateEvent
// @Description Updates the supplied fields of an event
// @Tags event
// @Accept json
// @Produce json
// @Param event_id path string true "Event Id"
// @Param event body EventUpdate true "Fields to update"
// @Success 200 {object} EventResponse
// @Security BearerAuth
// @Router /events/{event_id} [patch]
func (e *EventController) updateEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := uuidParam(c, "event_id")
		if !ok {
			return
		}
		var eventUpdate EventUpdate
		if !bindJSON(c, &eventUpdate) {
			return
		}
		event, err := e.eventService.UpdateEvent(c.Request.Context(), eventId, eventUpdate.toUpdate())
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		app_error.Respond(c, http.StatusOK, toEventResponse(event), "Event updated")
	}
}

// @id DeleteEvent
// @Description Deletes an event with its competitions and their registrations
// @Tags event
// @Param event_id path string true "Event Id"
// @Success 200
// @Security BearerAuth
// @Router /events/{event_id} [delete]
func (e *EventController) deleteEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := uuidParam(c, "event_id")
		if !ok {
			return
		}
		if err := e.eventService.DeleteEvent(c.Request.Context(), eventId); err != nil {
			app_error.Abort(c, err)
			return
		}
		app_error.Respond(c, http.StatusOK, nil, "Event deleted")
	}
}
