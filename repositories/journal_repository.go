package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blogem/adminjournal/database"
	"github.com/blogem/adminjournal/models"
)

// ErrJournalEntryNotFound is returned when no entry matches an ID
var ErrJournalEntryNotFound = errors.New("journal entry not found")

// JournalRepository interface defines journal entry database operations.
// Entries are append-only; the only deletion path is retention cleanup.
type JournalRepository interface {
	Create(ctx context.Context, entry *models.JournalEntry) error
	GetByID(ctx context.Context, id int64) (*models.JournalEntry, error)
	List(ctx context.Context, filter models.JournalFilter) (*models.JournalPage, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// journalRepository implements JournalRepository over database/sql
type journalRepository struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db *sql.DB, dialect database.Dialect) JournalRepository {
	return &journalRepository{db: db, dialect: dialect}
}

const journalColumns = `id, timestamp, action, actor_id, actor_repr, subject_type,
		       subject_type_repr, subject_id, description, payload`

// Create inserts a new journal entry and sets its ID
func (r *journalRepository) Create(ctx context.Context, entry *models.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (timestamp, action, actor_id, actor_repr, subject_type,
		                             subject_type_repr, subject_id, description, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	payload := entry.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode journal payload: %w", err)
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	var id int64
	err = r.db.QueryRowContext(ctx, r.dialect.Rebind(query),
		entry.Timestamp.UTC(),
		string(entry.Action),
		nullString(entry.ActorID),
		entry.ActorRepr,
		nullString(entry.SubjectType),
		entry.SubjectTypeRepr,
		nullString(entry.SubjectID),
		entry.Description,
		string(payloadJSON),
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to create journal entry: %w", err)
	}

	entry.ID = id
	return nil
}

// GetByID retrieves a journal entry by ID
func (r *journalRepository) GetByID(ctx context.Context, id int64) (*models.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE id = ?`

	entry, err := scanJournalEntry(r.db.QueryRowContext(ctx, r.dialect.Rebind(query), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("journal entry with ID %d: %w", id, ErrJournalEntryNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}

	return entry, nil
}

// List returns one page of entries, newest first
func (r *journalRepository) List(ctx context.Context, filter models.JournalFilter) (*models.JournalPage, error) {
	filter = filter.Normalize()

	var conditions []string
	var args []any
	if filter.Action != "" {
		conditions = append(conditions, "action = ?")
		args = append(args, string(filter.Action))
	}
	if filter.SubjectType != "" {
		conditions = append(conditions, "subject_type_repr = ?")
		args = append(args, filter.SubjectType)
	}
	if filter.ActorSearch != "" {
		conditions = append(conditions, `LOWER(actor_repr) LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(strings.ToLower(filter.ActorSearch))+"%")
	}
	if !filter.Before.IsZero() {
		conditions = append(conditions, "timestamp < ?")
		args = append(args, filter.Before.UTC())
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM journal_entries` + where
	if err := r.db.QueryRowContext(ctx, r.dialect.Rebind(countQuery), args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count journal entries: %w", err)
	}

	query := `SELECT ` + journalColumns + ` FROM journal_entries` + where +
		` ORDER BY timestamp DESC, id DESC LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		entry, err := scanJournalEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entries: %w", err)
	}

	return &models.JournalPage{
		Entries: entries,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}, nil
}

// DeleteBefore removes every entry older than cutoff and returns the count
func (r *journalRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM journal_entries WHERE timestamp < ?`

	result, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete journal entries: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJournalEntry(row rowScanner) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	var action string
	var actorID, subjectType, subjectID, payload sql.NullString

	err := row.Scan(
		&entry.ID,
		&entry.Timestamp,
		&action,
		&actorID,
		&entry.ActorRepr,
		&subjectType,
		&entry.SubjectTypeRepr,
		&subjectID,
		&entry.Description,
		&payload,
	)
	if err != nil {
		return nil, err
	}

	entry.Action = models.Action(action)
	entry.ActorID = stringPtr(actorID)
	entry.SubjectType = stringPtr(subjectType)
	entry.SubjectID = stringPtr(subjectID)

	// NULL or empty payloads read back as an empty mapping
	entry.Payload = map[string]any{}
	if payload.Valid && payload.String != "" {
		// UseNumber keeps integers above 2^53 exact
		dec := json.NewDecoder(strings.NewReader(payload.String))
		dec.UseNumber()
		if err := dec.Decode(&entry.Payload); err != nil {
			return nil, fmt.Errorf("failed to decode payload: %w", err)
		}
		if entry.Payload == nil {
			entry.Payload = map[string]any{}
		}
	}

	return &entry, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user text match literally inside a LIKE pattern
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
