package controller

import (
	"clubhub/app_error"
	"clubhub/auth"
	"clubhub/repository"
	"clubhub/service"
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const claimsKey = "claims"

var organizers = []repository.Permission{repository.PermissionAdmin, repository.PermissionExecutive}

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
	RequiredRoles []repository.Permission
}

// Dependencies are built once in main and shared by every controller.
type Dependencies struct {
	DB            *gorm.DB
	CacheStore    persistence.CacheStore
	Authenticator *auth.Authenticator
	Dispatcher    *service.RegistrationDispatcher
	Feed          *RegistrationFeed
}

var bindingNames sync.Once

func SetRoutes(r *gin.Engine, deps *Dependencies) {
	bindingNames.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(app_error.JSONFieldName)
		}
	})
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupEventController(deps)...)
	routes = append(routes, setupCompetitionController(deps)...)
	routes = append(routes, setupRegistrationController(deps)...)
	routes = append(routes, setupParticipantController(deps)...)
	routes = append(routes, setupUserController(deps)...)
	if deps.Feed != nil {
		routes = append(routes, deps.Feed.routes()...)
	}

	group := r.Group("/api")
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(deps.Authenticator, route.RequiredRoles))
		}
		handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		group.Handle(route.Method, route.Path, handlerfuncs...)
	}
}

// tokenFrom looks at the Authorization header, then the auth cookie, then the token query parameter
// browsers use for websockets.
func tokenFrom(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("auth"); err == nil && cookie != "" {
		return cookie
	}
	return c.Query("token")
}

func AuthMiddleware(authenticator *auth.Authenticator, roles []repository.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFrom(c)
		if tokenString == "" || authenticator == nil {
			app_error.Abort(c, app_error.Unauthenticated())
			return
		}
		claims, err := authenticator.ParseToken(tokenString)
		if err != nil {
			app_error.Abort(c, app_error.Unauthenticated())
			return
		}
		if len(roles) > 0 && !claims.HasAnyPermission(roles...) {
			app_error.Abort(c, app_error.Forbidden())
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func claimsFrom(c *gin.Context) *auth.Claims {
	value, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*auth.Claims)
	return claims
}

// RequestTimeout bounds how long a handler may wait on storage.
func RequestTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		app_error.Abort(c, app_error.NewValidationError(app_error.FieldError{Field: name, Message: "must be a uuid"}))
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		app_error.Abort(c, app_error.FromBindingError(err))
		return false
	}
	return true
}

func withBasePath(basePath string, routes []RouteInfo) []RouteInfo {
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}
