package persistence

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/blogem/adminjournal/config"
	"github.com/blogem/adminjournal/logger"
	"github.com/blogem/adminjournal/models"
)

// LogBackend "persists" entries by writing their summary to a named logger.
// Stream and level are fixed when the backend is built.
type LogBackend struct {
	logger *zap.Logger
	level  zapcore.Level
}

// NewLogBackend creates a log backend writing to base.Named(stream) at level
func NewLogBackend(base *zap.Logger, stream, level string) (*LogBackend, error) {
	if stream == "" {
		stream = config.DefaultLogStream
	}
	if level == "" {
		level = config.DefaultLogLevel
	}

	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return &LogBackend{logger: base.Named(stream), level: lvl}, nil
}

// NewLogBackendFactory is the registry factory of the log backend
func NewLogBackendFactory(deps Deps) (Backend, error) {
	base := deps.Logger
	if base == nil {
		base = zap.L()
	}
	return NewLogBackend(base, deps.Settings.LogStream, deps.Settings.LogLevel)
}

// Name implements Backend
func (b *LogBackend) Name() string { return BackendLog }

// Level returns the level entries are written at
func (b *LogBackend) Level() zapcore.Level { return b.level }

// Persist writes the entry summary. Delivery is up to the logging core.
func (b *LogBackend) Persist(_ context.Context, entry *models.Entry) error {
	if entry == nil {
		return persistErr(BackendLog, ErrNilEntry)
	}

	fields := []zap.Field{
		zap.String("action", string(entry.Action())),
		zap.String("actor", entry.ActorRepr()),
		zap.String("subject_type", entry.SubjectTypeRepr()),
		zap.Time("timestamp", entry.Timestamp()),
	}
	if entry.HasSubjectID() {
		fields = append(fields, zap.String("subject_id", entry.SubjectID()))
	}
	if payload := entry.Payload(); len(payload) > 0 {
		fields = append(fields, zap.Any("payload", payload))
	}

	if ce := b.logger.Check(b.level, entry.String()); ce != nil {
		ce.Write(fields...)
	}
	return nil
}
