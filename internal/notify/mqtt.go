// Package notify pushes placement-change events to channel players over
// MQTT so a channel refreshes its lineup without polling.
package notify

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

// Publisher wraps the broker connection. A nil Publisher is valid and drops
// every event, so a deployment without a broker still runs.
type Publisher struct {
	client mqtt.Client
}

type placementEvent struct {
	Event       string `json:"event"` // "upserted" or "removed"
	PlacementID int    `json:"placement_id"`
	ChannelID   int    `json:"channel_id"`
}

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Error().Err(err).Msg("MQTT connection lost")
}

func NewPublisher(brokerURL, clientID string) (*Publisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return &Publisher{client: client}, nil
}

// PlacementChanged publishes one event per affected channel on
// channels/<id>/placements.
func (p *Publisher) PlacementChanged(event string, placementID int, channelIDs []int) {
	if p == nil || p.client == nil {
		return
	}
	for _, channelID := range channelIDs {
		payload, err := json.Marshal(placementEvent{
			Event:       event,
			PlacementID: placementID,
			ChannelID:   channelID,
		})
		if err != nil {
			continue
		}
		topic := fmt.Sprintf("channels/%d/placements", channelID)
		token := p.client.Publish(topic, 1, false, payload)
		go func(topic string) {
			token.Wait()
			if token.Error() != nil {
				log.Error().Err(token.Error()).Str("topic", topic).Msg("failed to publish placement event")
			}
		}(topic)
	}
}
