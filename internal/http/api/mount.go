package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Tech-LLC/lumen/internal/db"
	"github.com/Lumen-Tech-LLC/lumen/internal/http/middleware"
)

// Module is a pluggable feature that attaches its endpoints to a Controller
// (a gin group).
type Module interface {
	Mount(c *Controller)
}

// ModuleFunc lets you define a Module with a simple function.
type ModuleFunc func(c *Controller)

func (f ModuleFunc) Mount(c *Controller) { f(c) }

// Controller wraps a gin group; endpoint packages register handlers on it
// without caring whether auth middleware sits in front.
type Controller struct {
	Group *gin.RouterGroup
}

func (c *Controller) GET(path string, h HandlerFuncWithAuth) {
	c.Group.GET(path, ResolveEndpointWithAuth(h))
}

func (c *Controller) POST(path string, h HandlerFuncWithAuth) {
	c.Group.POST(path, ResolveEndpointWithAuth(h))
}

func (c *Controller) PUT(path string, h HandlerFuncWithAuth) {
	c.Group.PUT(path, ResolveEndpointWithAuth(h))
}

func (c *Controller) PATCH(path string, h HandlerFuncWithAuth) {
	c.Group.PATCH(path, ResolveEndpointWithAuth(h))
}

func (c *Controller) DELETE(path string, h HandlerFuncWithAuth) {
	c.Group.DELETE(path, ResolveEndpointWithAuth(h))
}

// Open variants skip the current-user requirement (public endpoints).
func (c *Controller) OpenGET(path string, h HandlerFunc) {
	c.Group.GET(path, ResolveEndpoint(h))
}

func (c *Controller) OpenPOST(path string, h HandlerFunc) {
	c.Group.POST(path, ResolveEndpoint(h))
}

// GroupConfig tells the api package how to mount a group.
type GroupConfig struct {
	Prefix     string
	Auth       bool
	SecretKey  string            // required if Auth == true
	Store      db.Store          // user lookup for auth
	Middleware []gin.HandlerFunc // optional additional middleware
}

// MountGroup mounts one or more Modules under a prefix with optional auth.
func MountGroup(parent gin.IRoutes, cfg GroupConfig, modules ...Module) {
	var grp *gin.RouterGroup

	switch v := parent.(type) {
	case *gin.Engine:
		grp = v.Group(cfg.Prefix)
	case *gin.RouterGroup:
		if cfg.Prefix != "" {
			grp = v.Group(cfg.Prefix)
		} else {
			grp = v
		}
	default:
		log.Fatal().Str("type", fmt.Sprintf("%T", parent)).Msg("api.MountGroup: unsupported router type")
	}

	// Apply middleware in a deterministic order.
	for _, mw := range cfg.Middleware {
		grp.Use(mw)
	}
	if cfg.Auth {
		if cfg.SecretKey == "" {
			log.Fatal().Msg("api.MountGroup: Auth enabled but SecretKey is empty")
		}
		grp.Use(middleware.JWTMiddleware(cfg.SecretKey, cfg.Store))
	}

	controller := &Controller{Group: grp}

	for _, m := range modules {
		m.Mount(controller)
	}
}
