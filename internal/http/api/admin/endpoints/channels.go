package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Lumen-Tech-LLC/lumen/internal/db"
	"github.com/Lumen-Tech-LLC/lumen/internal/http/api"
	"github.com/Lumen-Tech-LLC/lumen/internal/http/api/admin/packets"
	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

type ChannelController struct {
	store db.Store
}

func NewChannelController(store db.Store) *ChannelController {
	return &ChannelController{store: store}
}

func ChannelModule(store db.Store) api.Module {
	ctl := NewChannelController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/channels", ctl.listChannels)
		c.POST("/channels", ctl.createChannel)
		c.GET("/channels/:id", ctl.getChannel)
		c.PUT("/channels/:id", ctl.updateChannel)
		c.DELETE("/channels/:id", ctl.deleteChannel)
	})
}

func (cc *ChannelController) listChannels(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := cc.store.ListChannels()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list channels"}
	}

	response := make([]packets.ChannelResponse, 0, len(list))
	for _, ch := range list {
		response = append(response, packets.ChannelResponseFrom(ch))
	}
	return response, nil
}

func (cc *ChannelController) createChannel(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateChannelRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	ch, err := cc.store.CreateChannel(request.Name, request.Location, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create channel"}
	}
	return packets.ChannelResponseFrom(ch), nil
}

func (cc *ChannelController) getChannel(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	ch, err := cc.store.GetChannelByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "channel not found"}
	}
	return packets.ChannelResponseFrom(ch), nil
}

func (cc *ChannelController) updateChannel(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateChannelRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := cc.store.UpdateChannel(id, request.Name, request.Location); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update channel"}
	}
	return gin.H{"message": "updated"}, nil
}

func (cc *ChannelController) deleteChannel(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if err := cc.store.DeleteChannel(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete channel"}
	}
	return gin.H{"message": "deleted"}, nil
}
