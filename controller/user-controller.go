package controller

import (
	"clubhub/app_error"
	"clubhub/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(deps *Dependencies) *UserController {
	return &UserController{
		userService: service.NewUserService(deps.DB),
	}
}

func setupUserController(deps *Dependencies) []RouteInfo {
	e := NewUserController(deps)
	return []RouteInfo{
		{Method: "GET", Path: "/users/self", HandlerFunc: e.getUserHandler(), Authenticated: true},
	}
}

// @id GetUser
// @Description Fetches the authenticated user with their permissions
// @Tags user
// @Produce json
// @Success 200 {object} UserResponse
// @Security BearerAuth
// @Router /users/self [get]
func (e *UserController) getUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		if claims == nil {
			app_error.Abort(c, app_error.Unauthenticated())
			return
		}
		user, err := e.userService.GetUserById(c.Request.Context(), claims.UserId)
		if err != nil {
			app_error.Abort(c, err)
			return
		}
		app_error.Respond(c, http.StatusOK, toUserResponse(user), "")
	}
}
