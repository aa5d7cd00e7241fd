package bulb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/oshokin/light-alarm/internal/logger"
)

const (
	// DefaultTopicPrefix is the milight hub command topic prefix.
	DefaultTopicPrefix = "milight/commands"

	// defaultPublishTimeout bounds how long a single command may wait for the broker.
	defaultPublishTimeout = 2 * time.Second

	// disconnectQuiesce is the time in milliseconds paho waits for in-flight work on Close.
	disconnectQuiesce = 250
)

// MQTTOptions configures the broker connection of an MQTTController.
type MQTTOptions struct {
	// Broker is the broker URL, for example "tcp://127.0.0.1:1883".
	Broker string
	// ClientID identifies the gateway on the broker.
	ClientID string
	// Username is optional.
	Username string
	// Password is optional.
	Password string
	// TopicPrefix precedes "/<device>/<remote>/<group>" in command topics.
	TopicPrefix string
	// QoS is the MQTT quality of service used for commands.
	QoS byte
	// Timeout bounds connect and publish waits.
	Timeout time.Duration
}

// publisher is the part of mqtt.Client the controller needs.
type publisher interface {
	Publish(topic string, qos byte, retained bool, payload any) mqtt.Token
}

// MQTTController sends milight hub JSON commands over MQTT.
type MQTTController struct {
	// client publishes commands to the broker.
	client publisher
	// disconnect closes the broker connection, nil for injected publishers.
	disconnect func()
	// engine runs the transitions started through this controller.
	engine Engine
	// prefix is the command topic prefix without trailing slash.
	prefix string
	// qos is the quality of service used for commands.
	qos byte
	// timeout bounds a single publish.
	timeout time.Duration
	// target is the bulb selected by the last Prepare call.
	target *ID
}

// DialMQTT connects to the broker and returns a controller publishing to it.
func DialMQTT(ctx context.Context, opts MQTTOptions, engine Engine) (*MQTTController, error) {
	if opts.Broker == "" {
		return nil, fmt.Errorf("%w: broker address is empty", ErrNotConnected)
	}

	if opts.Timeout <= 0 {
		opts.Timeout = defaultPublishTimeout
	}

	clientOptions := mqtt.NewClientOptions()
	clientOptions.AddBroker(opts.Broker)
	clientOptions.SetClientID(opts.ClientID)
	clientOptions.SetAutoReconnect(true)
	clientOptions.SetCleanSession(true)
	clientOptions.SetConnectTimeout(opts.Timeout)

	if opts.Username != "" {
		clientOptions.SetUsername(opts.Username)
	}

	if opts.Password != "" {
		clientOptions.SetPassword(opts.Password)
	}

	client := mqtt.NewClient(clientOptions)

	token := client.Connect()
	if !token.WaitTimeout(opts.Timeout) {
		return nil, fmt.Errorf("connect to MQTT broker %s: %w", opts.Broker, ErrNotConnected)
	}

	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to MQTT broker %s: %w", opts.Broker, err)
	}

	logger.InfoKV(ctx, "Connected to MQTT broker", "broker", opts.Broker)

	c := newMQTTController(client, opts, engine)
	c.disconnect = func() { client.Disconnect(disconnectQuiesce) }

	return c, nil
}

// newMQTTController builds a controller over an existing publisher.
func newMQTTController(client publisher, opts MQTTOptions, engine Engine) *MQTTController {
	prefix := strings.TrimRight(opts.TopicPrefix, "/")
	if prefix == "" {
		prefix = DefaultTopicPrefix
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	return &MQTTController{
		client:  client,
		engine:  engine,
		prefix:  prefix,
		qos:     opts.QoS,
		timeout: timeout,
	}
}

// Close disconnects from the broker.
func (c *MQTTController) Close() {
	if c.disconnect != nil {
		c.disconnect()
	}
}

// Prepare selects the bulb addressed by the next commands.
func (c *MQTTController) Prepare(_ context.Context, remote *Remote, deviceID uint16, groupID uint8) {
	c.target = &ID{
		DeviceID:   deviceID,
		GroupID:    groupID,
		RemoteType: remote.Name,
	}
}

// SetPower publishes a status command.
func (c *MQTTController) SetPower(ctx context.Context, on bool) error {
	status := StatusOff
	if on {
		status = StatusOn
	}

	return c.publishState(ctx, map[string]any{"status": status})
}

// ApplyState publishes a partial state document.
func (c *MQTTController) ApplyState(ctx context.Context, state map[string]any) error {
	return c.publishState(ctx, state)
}

// StartTransition runs the transition on the engine; every step publishes the
// interpolated field value to the bulb prepared at start time.
func (c *MQTTController) StartTransition(ctx context.Context, t Transition) error {
	if c.target == nil {
		return ErrNotPrepared
	}

	topic := c.topic(*c.target)

	return c.engine.Start(ctx, t, func(_ context.Context, value uint16) error {
		return c.publish(topic, map[string]any{t.Field: value})
	})
}

// publishState sends a document to the currently prepared bulb.
func (c *MQTTController) publishState(ctx context.Context, state map[string]any) error {
	if c.target == nil {
		return ErrNotPrepared
	}

	topic := c.topic(*c.target)

	logger.DebugKV(ctx, "Publishing bulb command", "topic", topic, "state", state)

	return c.publish(topic, state)
}

// publish encodes the payload and waits for the broker within the timeout.
func (c *MQTTController) publish(topic string, payload map[string]any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode command: %w", err)
	}

	token := c.client.Publish(topic, c.qos, false, data)
	if !token.WaitTimeout(c.timeout) {
		return fmt.Errorf("publish to %s: %w", topic, ErrNotConnected)
	}

	if err = token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}

	return nil
}

// topic builds the command topic of a bulb.
func (c *MQTTController) topic(id ID) string {
	return fmt.Sprintf("%s/0x%04X/%s/%d", c.prefix, id.DeviceID, id.RemoteType, id.GroupID)
}
