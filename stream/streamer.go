package stream

import (
	"encoding/json"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// ControlMessage switches the active animation via the control topic.
type ControlMessage struct {
	Animation string `json:"animation"`
}

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	config     Config
	client     mqtt.Client
	controller *Controller
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, controller *Controller) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.controller = controller
	return s
}

// Subscribe attaches the control topic handler.
func (s *Streamer) Subscribe() {
	topic := s.config.Mqtt.Topics.Control
	if topic == "" {
		return
	}
	if token := s.client.Subscribe(topic, 0, s.handleControlMessage); token.Wait() && token.Error() != nil {
		log.Println(token.Error())
	}
}

func (s *Streamer) handleControlMessage(client mqtt.Client, msg mqtt.Message) {
	var message ControlMessage
	if err := json.Unmarshal(msg.Payload(), &message); err != nil {
		log.Printf("Bad control message on %s: %v", msg.Topic(), err)
		return
	}
	if err := s.controller.Switch(message.Animation); err != nil {
		log.Printf("Control: %v", err)
	}
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(now time.Time) {
	f := s.controller.Frame(now)
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()
}

// Run causes the Streamer to send Frames continuously at the configured
// frame rate.
func (s *Streamer) Run() {
	interval := time.Duration(float64(time.Second) / s.config.Stream.FrameRate)
	publishTimer := time.NewTicker(interval)
	for now := range publishTimer.C {
		s.SendFrame(now)
	}
}
