package endpoints

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Tech-LLC/lumen/internal/db"
	"github.com/Lumen-Tech-LLC/lumen/internal/http/api"
	"github.com/Lumen-Tech-LLC/lumen/internal/http/api/admin/packets"
	"github.com/Lumen-Tech-LLC/lumen/internal/model"
	"github.com/Lumen-Tech-LLC/lumen/internal/notify"
	redisclient "github.com/Lumen-Tech-LLC/lumen/internal/redis"
	"github.com/Lumen-Tech-LLC/lumen/internal/schedule"
)

// PlacementController carries the write path end to end: structural
// validation and conflict detection against the in-memory index, then
// persistence, index sync, cache invalidation and player notification.
type PlacementController struct {
	store     db.Store
	index     *schedule.Store
	validator *schedule.Validator
	publisher *notify.Publisher
}

func NewPlacementController(store db.Store, index *schedule.Store, publisher *notify.Publisher) *PlacementController {
	return &PlacementController{
		store:     store,
		index:     index,
		validator: schedule.NewValidator(index),
		publisher: publisher,
	}
}

func PlacementModule(store db.Store, index *schedule.Store, publisher *notify.Publisher) api.Module {
	ctl := NewPlacementController(store, index, publisher)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/placements", ctl.listPlacements)
		c.GET("/placements/:id", ctl.getPlacement)
		c.POST("/placements", ctl.createPlacement)
		c.POST("/placements/validate", ctl.validatePlacement)
		c.PUT("/placements/:id", ctl.updatePlacement)
		c.DELETE("/placements/:id", ctl.deletePlacement)
		c.PATCH("/placements/:id/active", ctl.setPlacementActive)
	})
}

func (p *PlacementController) listPlacements(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := p.store.ListPlacements()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list placements"}
	}

	response := make([]packets.PlacementResponse, 0, len(list))
	for _, it := range list {
		response = append(response, packets.PlacementResponseFrom(it))
	}
	return response, nil
}

func (p *PlacementController) getPlacement(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	record, err := p.store.GetPlacementByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "placement not found"}
	}
	return packets.PlacementResponseFrom(record), nil
}

// validatePlacement is the dry run: the full result, nothing persisted.
func (p *PlacementController) validatePlacement(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.PlacementPayload
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	candidate, err := request.ToModel()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date format, want YYYY-MM-DD"}
	}

	return p.validator.Validate(candidate), nil
}

func (p *PlacementController) createPlacement(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.PlacementPayload
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	candidate, err := request.ToModel()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date format, want YYYY-MM-DD"}
	}
	candidate.CreatedBy = user.ID

	result := p.validator.Validate(candidate)
	if !result.IsValid {
		ctx.JSON(http.StatusUnprocessableEntity, result)
		return nil, nil
	}

	// conflicts are advisory: the placement is stored and the result is
	// returned alongside so the client can warn
	record, err := p.store.CreatePlacement(candidate)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create placement"}
	}

	p.index.Upsert(record)
	p.afterChange("upserted", record.ID, record.ChannelIDs)

	ctx.JSON(http.StatusCreated, packets.CreatePlacementResponse{
		Placement:  packets.PlacementResponseFrom(record),
		Validation: result,
	})
	return nil, nil
}

func (p *PlacementController) updatePlacement(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	previous, err := p.store.GetPlacementByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "placement not found"}
	}

	var request packets.PlacementPayload
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	candidate, err := request.ToModel()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date format, want YYYY-MM-DD"}
	}
	candidate.ID = id
	candidate.CreatedBy = previous.CreatedBy

	// the candidate carries the edited record's id, so its stored copy is
	// excluded from the conflict scan
	result := p.validator.Validate(candidate)
	if !result.IsValid {
		ctx.JSON(http.StatusUnprocessableEntity, result)
		return nil, nil
	}

	if err := p.store.UpdatePlacement(candidate); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update placement"}
	}

	record, err := p.store.GetPlacementByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not reload placement"}
	}

	p.index.Upsert(record)
	// both the old and new channel sets go stale
	p.afterChange("upserted", record.ID, append(previous.ChannelIDs, record.ChannelIDs...))

	return packets.CreatePlacementResponse{
		Placement:  packets.PlacementResponseFrom(record),
		Validation: result,
	}, nil
}

func (p *PlacementController) deletePlacement(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	record, err := p.store.GetPlacementByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "placement not found"}
	}

	if err := p.store.DeletePlacement(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete placement"}
	}

	p.index.Remove(id)
	p.afterChange("removed", id, record.ChannelIDs)

	return gin.H{"message": "deleted"}, nil
}

func (p *PlacementController) setPlacementActive(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request struct {
		Active bool `json:"active"`
	}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := p.store.SetPlacementActive(id, request.Active); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update placement"}
	}

	record, err := p.store.GetPlacementByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "placement not found"}
	}

	// deactivated records leave the index entirely
	if record.Active {
		p.index.Upsert(record)
		p.afterChange("upserted", id, record.ChannelIDs)
	} else {
		p.index.Remove(id)
		p.afterChange("removed", id, record.ChannelIDs)
	}

	return packets.PlacementResponseFrom(record), nil
}

// afterChange drops the stale per-channel resolution cache and pushes the
// change event to the affected channel players.
func (p *PlacementController) afterChange(event string, placementID int, channelIDs []int) {
	keys := make([]string, 0, len(channelIDs))
	seen := make(map[int]struct{}, len(channelIDs))
	for _, channelID := range channelIDs {
		if _, ok := seen[channelID]; ok {
			continue
		}
		seen[channelID] = struct{}{}
		keys = append(keys, fmt.Sprintf("lumen:channel:%d:current", channelID))
	}
	redisclient.Del(context.Background(), keys...)

	p.publisher.PlacementChanged(event, placementID, channelIDs)

	log.Info().
		Str("event", event).
		Int("placement_id", placementID).
		Ints("channel_ids", channelIDs).
		Msg("placement change applied")
}
