package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/blogem/adminjournal/models"
)

// MessageWriter is the part of *kafka.Writer the kafka backend needs
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewKafkaWriter creates a synchronous writer that waits for all in-sync
// replicas, so a nil error means the broker has the entry
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchSize:              1,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           10 * time.Second,
		AllowAutoTopicCreation: false,
		Compression:            kafka.Snappy,
	}
}

// KafkaBackend publishes entries as JSON messages
type KafkaBackend struct {
	writer MessageWriter
	now    func() time.Time
}

// kafkaMessage is the published document
type kafkaMessage struct {
	EventID         string         `json:"event_id"`
	Timestamp       time.Time      `json:"timestamp"`
	Action          models.Action  `json:"action"`
	ActorID         string         `json:"actor_id"`
	ActorRepr       string         `json:"actor_repr"`
	SubjectTypeRepr string         `json:"subject_type_repr"`
	SubjectID       *string        `json:"subject_id,omitempty"`
	Description     string         `json:"description"`
	Payload         map[string]any `json:"payload"`
	Summary         string         `json:"summary"`
}

// NewKafkaBackend creates a kafka backend publishing through writer
func NewKafkaBackend(writer MessageWriter) *KafkaBackend {
	return &KafkaBackend{writer: writer, now: time.Now}
}

// NewKafkaBackendFactory is the registry factory of the kafka backend
func NewKafkaBackendFactory(deps Deps) (Backend, error) {
	if deps.Kafka == nil {
		return nil, errors.New("no kafka writer configured (KAFKA_BROKERS is empty)")
	}
	return NewKafkaBackend(deps.Kafka), nil
}

// Name implements Backend
func (b *KafkaBackend) Name() string { return BackendKafka }

// Persist publishes one message keyed by a fresh event ID
func (b *KafkaBackend) Persist(ctx context.Context, entry *models.Entry) error {
	if entry == nil {
		return persistErr(BackendKafka, ErrNilEntry)
	}

	eventID := uuid.New().String()
	doc := kafkaMessage{
		EventID:         eventID,
		Timestamp:       entry.Timestamp().UTC(),
		Action:          entry.Action(),
		ActorID:         entry.Actor().IdentityID(),
		ActorRepr:       entry.ActorRepr(),
		SubjectTypeRepr: entry.SubjectTypeRepr(),
		Description:     entry.Description(),
		Payload:         entry.Payload(),
		Summary:         entry.String(),
	}
	if entry.HasSubjectID() {
		id := entry.SubjectID()
		doc.SubjectID = &id
	}

	value, err := json.Marshal(doc)
	if err != nil {
		return persistErr(BackendKafka, err)
	}

	msg := kafka.Message{
		Key:   []byte(eventID),
		Value: value,
		Time:  b.now(),
		Headers: []kafka.Header{
			{Key: "action", Value: []byte(entry.Action())},
			{Key: "subject_type", Value: []byte(entry.SubjectTypeRepr())},
		},
	}

	if err := b.writer.WriteMessages(ctx, msg); err != nil {
		return persistErr(BackendKafka, err)
	}
	return nil
}
