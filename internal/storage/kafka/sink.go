package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/segmentio/kafka-go"

	"github.com/julianstephens/calmher/internal/models"
)

// Record kinds, carried in the "kind" header and the envelope.
const (
	KindSchedule   = "schedule"
	KindAssessment = "assessment"
)

type Config struct {
	Brokers []string
	Topic   string
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type writeCloser interface {
	Close() error
}

// Envelope is the JSON payload of every published message.
type Envelope struct {
	Kind       string                   `json:"kind"`
	Schedule   *models.ScheduleRecord   `json:"schedule,omitempty"`
	Assessment *models.AssessmentRecord `json:"assessment,omitempty"`
}

// Sink publishes records to a Kafka topic. Each save is one synchronous write.
type Sink struct {
	cfg    Config
	writer messageWriter
	closer writeCloser
}

var errNilWriter = errors.New("kafka sink requires a writer")

func NewSink(cfg Config) (*Sink, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		Balancer:               &kafka.Hash{},
	}
	return newSinkWithWriter(cfg, w, w)
}

// newSinkWithWriter wires the provided writer into the sink. It is used in tests.
func newSinkWithWriter(cfg Config, writer messageWriter, closer writeCloser) (*Sink, error) {
	if writer == nil {
		return nil, errNilWriter
	}
	return &Sink{cfg: cfg, writer: writer, closer: closer}, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Topic) == "" {
		return fmt.Errorf("kafka topic must not be empty")
	}
	if len(c.Brokers) == 0 {
		return fmt.Errorf("at least one kafka broker is required")
	}
	return nil
}

func (s *Sink) Init(context.Context) error { return s.cfg.validate() }
func (s *Sink) Load(context.Context) error { return s.cfg.validate() }

func (s *Sink) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

func (s *Sink) SaveSchedule(ctx context.Context, rec models.ScheduleRecord) error {
	return s.publish(ctx, keyFor(rec.UserID, rec.ID), Envelope{Kind: KindSchedule, Schedule: &rec})
}

func (s *Sink) SaveAssessment(ctx context.Context, rec models.AssessmentRecord) error {
	return s.publish(ctx, keyFor(rec.Assessment.UserID, rec.ID), Envelope{Kind: KindAssessment, Assessment: &rec})
}

func (s *Sink) publish(ctx context.Context, key string, env Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", env.Kind, err)
	}
	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(env.Kind)},
		},
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s record to %s: %w", env.Kind, s.cfg.Topic, err)
	}
	return nil
}

// keyFor keeps one user's records on one partition; anonymous records spread by id.
func keyFor(userID, id string) string {
	if userID != "" {
		return userID
	}
	return id
}

func (s *Sink) GetConfigPath() string {
	return "kafka://" + strings.Join(s.cfg.Brokers, ",") + "/" + s.cfg.Topic
}
