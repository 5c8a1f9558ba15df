package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Tech-LLC/lumen/internal/db"
	"github.com/Lumen-Tech-LLC/lumen/internal/http/api"
	"github.com/Lumen-Tech-LLC/lumen/internal/http/api/admin/packets"
	"github.com/Lumen-Tech-LLC/lumen/internal/model"
	"github.com/Lumen-Tech-LLC/lumen/internal/storage"
)

type CreativeController struct {
	store   db.Store
	backend storage.Storage
}

func NewCreativeController(store db.Store, backend storage.Storage) *CreativeController {
	return &CreativeController{store: store, backend: backend}
}

func CreativeModule(store db.Store, backend storage.Storage) api.Module {
	ctl := NewCreativeController(store, backend)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/creatives", ctl.listCreatives)
		c.POST("/creatives", ctl.createCreative)
		c.POST("/creatives/upload", ctl.uploadCreative)
		c.GET("/creatives/:id", ctl.getCreative)
		c.PUT("/creatives/:id", ctl.updateCreative)
		c.DELETE("/creatives/:id", ctl.deleteCreative)
	})
}

func (cc *CreativeController) listCreatives(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := cc.store.ListCreatives()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list creatives"}
	}

	response := make([]packets.CreativeResponse, 0, len(list))
	for _, c := range list {
		response = append(response, packets.CreativeResponseFrom(c))
	}
	return response, nil
}

func (cc *CreativeController) createCreative(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateCreativeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	c, err := cc.store.CreateCreative(request.Name, request.Type, request.URL, request.DefaultDuration, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create creative"}
	}
	return packets.CreativeResponseFrom(c), nil
}

// uploadCreative takes a multipart file, stores it through the configured
// backend, and registers the creative pointing at the stored URL.
func (cc *CreativeController) uploadCreative(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	name := ctx.PostForm("name")
	ctype := ctx.PostForm("type")
	if name == "" || ctype == "" {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "name and type are required"}
	}

	duration := 0
	if d := ctx.PostForm("default_duration"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid default_duration"}
		}
		duration = parsed
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "file is required"}
	}

	url, err := cc.backend.SaveCreative(fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("creative upload failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store file"}
	}

	c, err := cc.store.CreateCreative(name, ctype, url, duration, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create creative"}
	}
	return packets.CreativeResponseFrom(c), nil
}

func (cc *CreativeController) getCreative(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	c, err := cc.store.GetCreativeByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "creative not found"}
	}
	return packets.CreativeResponseFrom(c), nil
}

func (cc *CreativeController) updateCreative(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateCreativeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := cc.store.UpdateCreative(id, request.Name, request.URL, request.DefaultDuration); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update creative"}
	}
	return gin.H{"message": "updated"}, nil
}

func (cc *CreativeController) deleteCreative(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if err := cc.store.DeleteCreative(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete creative"}
	}
	return gin.H{"message": "deleted"}, nil
}
