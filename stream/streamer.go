package stream

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/maxb-odessa/slog"
	"github.com/matt-g-everett/rainbow/rainbow"
)

// Streamer turns numeric readings received over MQTT into colours and
// gauge frames for an ledrx device.
type Streamer struct {
	config  Config
	client  mqtt.Client
	rainbow *rainbow.Locked
	gauge   *Gauge
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, r *rainbow.Locked) (*Streamer, error) {
	back, err := rainbow.ParseColor(config.Gauge.Background)
	if err != nil {
		return nil, err
	}

	s := new(Streamer)
	s.config = config
	s.client = client
	s.rainbow = r
	s.gauge = NewGauge(r, config.Gauge.Pixels, back.Colorful())
	return s, nil
}

// Subscribe listens for readings on the values topic. Call it from the
// client's OnConnect handler so the subscription survives reconnects.
func (s *Streamer) Subscribe() error {
	topic := s.config.Mqtt.Topics.Values
	token := s.client.Subscribe(topic, 0, s.handleValue)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s: %w", topic, token.Error())
	}
	slog.Info("Subscribed to '%s'", topic)
	return nil
}

func (s *Streamer) handleValue(client mqtt.Client, msg mqtt.Message) {
	slog.Debug(5, "Received msg %d on %s: %s", msg.MessageID(), msg.Topic(), msg.Payload())

	value, err := strconv.ParseFloat(strings.TrimSpace(string(msg.Payload())), 64)
	if err != nil {
		slog.Warn("Ignoring non-numeric reading on '%s': %q", msg.Topic(), msg.Payload())
		return
	}

	if err := s.Publish(value); err != nil {
		slog.Err("Failed to publish colour for %v: %s", value, err)
	}
}

// Publish sends the colour for value to the colour topic and, if a stream
// topic is configured, the gauge frame to the stream topic.
func (s *Streamer) Publish(value float64) error {
	topics := s.config.Mqtt.Topics

	colour := s.rainbow.ColorAt(value)
	token := s.client.Publish(topics.Colour, 0, false, colour)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("publish %s: %w", topics.Colour, token.Error())
	}
	slog.Debug(9, "Published %s for %v", colour, value)

	if topics.Stream == "" {
		return nil
	}

	b, _ := s.gauge.CalculateFrame(value).MarshalBinary()
	token = s.client.Publish(topics.Stream, 2, false, b)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("publish %s: %w", topics.Stream, token.Error())
	}

	return nil
}
