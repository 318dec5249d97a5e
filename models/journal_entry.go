package models

import "time"

// JournalEntry is the persisted shape of an Entry. Reference columns are
// nullable so history survives deletion of the actor or subject type.
type JournalEntry struct {
	ID              int64          `json:"id"`
	Timestamp       time.Time      `json:"timestamp"`
	Action          Action         `json:"action"`
	ActorID         *string        `json:"actor_id,omitempty"`
	ActorRepr       string         `json:"actor_repr"`
	SubjectType     *string        `json:"subject_type,omitempty"`
	SubjectTypeRepr string         `json:"subject_type_repr"`
	SubjectID       *string        `json:"subject_id,omitempty"`
	Description     string         `json:"description"`
	Payload         map[string]any `json:"payload"`
}

// NewJournalEntry copies every attribute of e into its persisted form
func NewJournalEntry(e *Entry) *JournalEntry {
	actorID := e.Actor().IdentityID()
	subjectType := e.SubjectType().String()

	row := &JournalEntry{
		Timestamp:       e.Timestamp(),
		Action:          e.Action(),
		ActorID:         &actorID,
		ActorRepr:       e.ActorRepr(),
		SubjectType:     &subjectType,
		SubjectTypeRepr: e.SubjectTypeRepr(),
		Description:     e.Description(),
		Payload:         e.Payload(),
	}
	if e.HasSubjectID() {
		id := e.SubjectID()
		row.SubjectID = &id
	}
	return row
}

// DisplayDescription returns the description, or the payload when there is
// none, or "n/a"
func (j *JournalEntry) DisplayDescription() string {
	return SummaryDetail(j.Description, j.Payload)
}

// JournalFilter narrows a journal listing. Zero values mean "no filter".
type JournalFilter struct {
	Action      Action
	SubjectType string
	ActorSearch string // substring match on the actor snapshot
	Before      time.Time
	Limit       int
	Offset      int
}
