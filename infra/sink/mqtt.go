package sink

import (
	"encoding/json"
	"fmt"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/kilianp07/plugkit/core/model"
)

// MQTTConfig defines the connection parameters for the MQTT sink.
type MQTTConfig struct {
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Topic    string `json:"topic"`
	QoS      byte   `json:"qos"`
}

// MQTTSink publishes events as JSON payloads to an MQTT topic.
type MQTTSink struct {
	cli   paho.Client
	topic string
	qos   byte
}

// NewMQTTSink connects to the broker and returns the sink. Connection
// failures propagate to the caller.
func NewMQTTSink(cfg MQTTConfig) (*MQTTSink, error) {
	if cfg.Broker == "" {
		return nil, fmt.Errorf("mqtt sink: broker is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("mqtt sink: topic is required")
	}
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "plugkit-" + uuid.NewString()
	}
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(clientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	cli := paho.NewClient(opts)
	if token := cli.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &MQTTSink{cli: cli, topic: cfg.Topic, qos: cfg.QoS}, nil
}

// Record publishes the event and waits for the broker to accept it.
func (s *MQTTSink) Record(ev model.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	token := s.cli.Publish(s.topic, s.qos, false, payload)
	token.Wait()
	return token.Error()
}

// Close disconnects from the broker.
func (s *MQTTSink) Close() error {
	s.cli.Disconnect(250)
	return nil
}
