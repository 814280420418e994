// Package mqtt publishes adjustment-saved events so connected displays can
// refetch the day's schedule.
package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

const (
	TopicPrefix = "namaz/adjustments/"

	publishQoS       = 1
	disconnectQuiesc = 250 // ms
)

// Event is the payload published for every saved adjustment.
type Event struct {
	Date    string    `json:"date"`
	Kind    string    `json:"kind"`
	SavedAt time.Time `json:"saved_at"`
}

// Notifier publishes Events on TopicPrefix+date.
type Notifier struct {
	client  pahomqtt.Client
	timeout time.Duration
}

var connectHandler pahomqtt.OnConnectHandler = func(client pahomqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler pahomqtt.ConnectionLostHandler = func(client pahomqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

// Connect dials brokerURL ("tcp://host:1883") and returns a ready Notifier.
func Connect(brokerURL, clientID string, timeout time.Duration) (*Notifier, error) {
	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(timeout)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := pahomqtt.NewClient(opts)
	if token := client.Connect(); token.WaitTimeout(timeout) && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	if !client.IsConnected() {
		return nil, fmt.Errorf("failed to connect to MQTT broker %s within %s", brokerURL, timeout)
	}

	return NewNotifier(client, timeout), nil
}

// NewNotifier wraps an already connected client.
func NewNotifier(client pahomqtt.Client, timeout time.Duration) *Notifier {
	return &Notifier{client: client, timeout: timeout}
}

func (n *Notifier) AdjustmentSaved(ctx context.Context, date, kind string) error {
	payload, err := json.Marshal(Event{Date: date, Kind: kind, SavedAt: time.Now().UTC()})
	if err != nil {
		return err
	}

	topic := TopicPrefix + date
	token := n.client.Publish(topic, publishQoS, false, payload)

	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(n.timeout):
		return fmt.Errorf("publish to %s timed out after %s", topic, n.timeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	log.Debug().Str("topic", topic).Msg("adjustment event published")
	return nil
}

func (n *Notifier) Close() {
	n.client.Disconnect(disconnectQuiesc)
	log.Info().Msg("MQTT client disconnected")
}
