package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Tech-LLC/lumen/internal/db"
	"github.com/Lumen-Tech-LLC/lumen/internal/http/api"
	"github.com/Lumen-Tech-LLC/lumen/internal/http/api/tv/packets"
	redisclient "github.com/Lumen-Tech-LLC/lumen/internal/redis"
	"github.com/Lumen-Tech-LLC/lumen/internal/schedule"
)

// resolution results are cached briefly; writes invalidate per channel
const currentPlacementTTL = 30 * time.Second

type TvController struct {
	store db.Store
	index *schedule.Store
}

func NewTvController(store db.Store, index *schedule.Store) *TvController {
	return &TvController{store: store, index: index}
}

func ChannelModule(store db.Store, index *schedule.Store) api.Module {
	ctl := NewTvController(store, index)
	return api.ModuleFunc(func(c *api.Controller) {
		c.OpenGET("/channels/:id/current", ctl.currentPlacement)
	})
}

// currentPlacement resolves which placement is on air for a channel at this
// moment: date window covers today, weekday selected, a time range covers
// the current minute (overnight ranges wrap), highest priority wins.
func (t *TvController) currentPlacement(ctx *gin.Context) (any, *api.APIError) {
	channelID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid channel id"}
	}

	cacheKey := fmt.Sprintf("lumen:channel:%d:current", channelID)
	if cached, ok := redisclient.Get(ctx, cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return nil, nil
	}

	placement, found := schedule.ActiveAt(t.index.All(), channelID, time.Now())
	if !found {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "nothing scheduled on this channel right now"}
	}

	response := packets.CurrentPlacementResponse{
		ChannelID:   channelID,
		PlacementID: placement.ID,
		Name:        placement.Name,
		Category:    schedule.NormalizeCategory(placement.Category),
		Priority:    placement.Priority,
		CreativeID:  placement.CreativeID,
	}
	if placement.CreativeID != nil {
		creative, err := t.store.GetCreativeByID(*placement.CreativeID)
		if err == nil {
			response.CreativeURL = creative.URL
			response.Type = creative.Type
			response.Duration = creative.DefaultDuration
		} else {
			log.Error().Err(err).Int("creative_id", *placement.CreativeID).Msg("creative lookup failed")
		}
	}

	if body, err := json.Marshal(response); err == nil {
		redisclient.Set(ctx, cacheKey, string(body), currentPlacementTTL)
	}

	return response, nil
}
