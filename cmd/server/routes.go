package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Lumen-Tech-LLC/lumen/internal/db"
	"github.com/Lumen-Tech-LLC/lumen/internal/http/api"
	adminapi "github.com/Lumen-Tech-LLC/lumen/internal/http/api/admin/endpoints"
	tvapi "github.com/Lumen-Tech-LLC/lumen/internal/http/api/tv/endpoints"
	"github.com/Lumen-Tech-LLC/lumen/internal/notify"
	"github.com/Lumen-Tech-LLC/lumen/internal/schedule"
	"github.com/Lumen-Tech-LLC/lumen/internal/storage"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	env Environment,
	store db.Store,
	index *schedule.Store,
	storageSystem storage.Storage,
	publisher *notify.Publisher,
) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		adminapi.AuthModule(store, env.SecretKey),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		adminapi.ProfileModule(store),
		adminapi.ChannelModule(store),
		adminapi.CreativeModule(store, storageSystem),
		adminapi.PlacementModule(store, index, publisher),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/tv",
	},
		tvapi.ChannelModule(store, index),
	)

	// locally stored creatives are served straight from disk
	if !env.UseSpaces {
		r.Static("/creatives", "./creatives")
	}
}
