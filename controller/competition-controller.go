package controller

import (
	"clubhub/app_error"
	"clubhub/service"
	"clubhub/utils"
	"net/http"
	"time"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const competitionCacheDuration = 60 * time.Second

type CompetitionController struct {
	competitionService *service.CompetitionService
	cacheStore         persistence.CacheStore
}

func NewCompetitionController(deps *Dependencies) *CompetitionController {
	return &CompetitionController{
		competitionService: service.NewCompetitionService(deps.DB),
		cacheStore:         deps.CacheStore,
	}
}

func setupCompetitionController(deps *Dependencies) []RouteInfo {
	e := NewCompetitionController(deps)
	publicList := e.getCompetitionsHandler(true)
	if e.cacheStore != nil {
		publicList = cache.CachePage(e.cacheStore, competitionCacheDuration, publicList)
	}
	return withBasePath("/events/:event_id/competitions", []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: publicList},
		{Method: "GET", Path: "/all", HandlerFunc: e.getCompetitionsHandler(false), Authenticated: true, RequiredRoles: organizers},
		{Method: "POST", Path: "", HandlerFunc: e.createCompetitionHandler(), Authenticated: true, RequiredRoles: organizers},
		{Method: "PUT", Path: "/order", HandlerFunc: e.reorderCompetitionsHandler(), Authenticated: true, RequiredRoles: organizers},
		{Method: "PATCH", Path: "/:competition_id", HandlerFunc: e.updateCompetitionHandler(), Authenticated: true, RequiredRoles: organizers},
		{Method: "DELETE", Path: "/:competition_id", HandlerFunc: e.deleteCompetitionHandler(), Authenticated: true, RequiredRoles: organizers},
	})
}

// invalidate drops the cached public list so registrants see catalog changes right away.
func (e *CompetitionController) invalidate(eventId uuid.UUID) {
	if e.cacheStore == nil {
		return
	}
	_ = e.cacheStore.Delete(cache.CreateKey("/api/events/" + eventId.String() + "/competitions"))
}

// @id GetCompetitions
// @Description Lists the published competitions of an event in display order
// @Tags competition
// @Produce json
// @Param event_id path string true "Event Id"
// @Success 200 {array} CompetitionResponse
// @Router /events/{event_id}/competitions [get]
func (e *CompetitionController) getCompetitionsHandler(publishedOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := uuidParam(c, "event_id")
		if !ok {
			return
		}
		competitions, err := e.competitionService.GetCompetitionsForEvent(c.Request.Context(), eventId, publishedOnly)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		app_error.Respond(c, http.StatusOK, utils.Map(competitions, toCompetitionResponse), "")
	}
}

// @id CreateCompetition
// @Description Adds a competition at the end of the event's list
// @Tags competition
// @Accept json
// @Produce json
// @Param event_id path string true "Event Id"
// @Param competition body CompetitionCreate true "Competition to create"
// @Success 201 {object} CompetitionResponse
// @Security BearerAuth
// @Router /events/{event_id}/competitions [post]
func (e *CompetitionController) createCompetitionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := uuidParam(c, "event_id")
		if !ok {
			return
		}
		var competitionCreate CompetitionCreate
		if !bindJSON(c, &competitionCreate) {
			return
		}
		competition, err := e.competitionService.CreateCompetition(c.Request.Context(), eventId, competitionCreate.toModel())
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		e.invalidate(eventId)
		app_error.Respond(c, http.StatusCreated, toCompetitionResponse(competition), "Competition created")
	}
}

// @id UpdateCompetition
// @Description Updates the supplied fields of a competition
// @Tags competition
// @Accept json
// @Produce json
// @Param event_id path string true "Event Id"
// @Param competition_id path string true "Competition Id"
// @Param competition body CompetitionUpdate true "Fields to update"
// @Success 200 {object} CompetitionResponse
// @Security BearerAuth
// @Router /events/{event_id}/competitions/{competition_id} [patch]
func (e *CompetitionController) updateCompetitionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := uuidParam(c, "event_id")
		if !ok {
			return
		}
		competitionId, ok := uuidParam(c, "competition_id")
		if !ok {
			return
		}
		var competitionUpdate CompetitionUpdate
		if !bindJSON(c, &competitionUpdate) {
			return
		}
		competition, err := e.competitionService.UpdateCompetition(c.Request.Context(), eventId, competitionId, competitionUpdate.toUpdate())
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		e.invalidate(eventId)
		app_error.Respond(c, http.StatusOK, toCompetitionResponse(competition), "Competition updated")
	}
}

// @id DeleteCompetition
// @Description Deletes a competition and every registration for it
// @Tags competition
// @Param event_id path string true "Event Id"
// @Param competition_id path string true "Competition Id"
// @Success 200
// @Security BearerAuth
// @Router /events/{event_id}/competitions/{competition_id} [delete]
func (e *CompetitionController) deleteCompetitionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := uuidParam(c, "event_id")
		if !ok {
			return
		}
		competitionId, ok := uuidParam(c, "competition_id")
		if !ok {
			return
		}
		if err := e.competitionService.DeleteCompetition(c.Request.Context(), eventId, competitionId); err != nil {
			app_error.Abort(c, err)
			return
		}
		e.invalidate(eventId)
		app_error.Respond(c, http.StatusOK, nil, "Competition deleted")
	}
}

// @id ReorderCompetitions
// @Description Stores a new display order. The body must list every competition of the event once.
// @Tags competition
// @Accept json
// @Produce json
// @Param event_id path string true "Event Id"
// @Param order body CompetitionOrder true "Competition ids in their new order"
// @Success 200 {array} CompetitionResponse
// @Security BearerAuth
// @Router /events/{event_id}/competitions/order [put]
func (e *CompetitionController) reorderCompetitionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, ok := uuidParam(c, "event_id")
		if !ok {
			return
		}
		var order CompetitionOrder
		if !bindJSON(c, &order) {
			return
		}
		competitions, err := e.competitionService.ReorderCompetitions(c.Request.Context(), eventId, order.CompetitionIds)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		e.invalidate(eventId)
		app_error.Respond(c, http.StatusOK, utils.Map(competitions, toCompetitionResponse), "Competitions reordered")
	}
}
