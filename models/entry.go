package models

import (
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Action is the kind of access recorded by a journal entry
type Action string

const (
	ActionView   Action = "view"
	ActionAdd    Action = "add"
	ActionChange Action = "change"
	ActionDelete Action = "delete"
)

// Actions lists every valid action in display order
var Actions = []Action{ActionView, ActionAdd, ActionChange, ActionDelete}

// Valid reports whether a is one of the known actions
func (a Action) Valid() bool {
	switch a {
	case ActionView, ActionAdd, ActionChange, ActionDelete:
		return true
	}
	return false
}

// ParseAction parses an action name case-insensitively
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", errors.Wrapf(ErrInvalidAction, "%q", s)
	}
	return a, nil
}

// EntryInput carries the values a caller knows about an audited event
type EntryInput struct {
	Action      Action
	Actor       Actor
	SubjectType *SubjectType // optional when Subject is set
	Subject     Subject      // optional when SubjectType is set
	Description string
	Timestamp   time.Time // zero means now
	Payload     map[string]any
}

// Entry is a single immutable journal event
type Entry struct {
	timestamp       time.Time
	action          Action
	actor           Actor
	actorRepr       string
	subjectType     SubjectType
	subjectTypeRepr string
	subject         Subject
	subjectID       string
	hasSubjectID    bool
	description     string
	payload         map[string]any
}

// NewEntry validates the input and builds an Entry. The actor and subject
// type representations are captured here and never recomputed.
func NewEntry(in EntryInput) (*Entry, error) {
	if !in.Action.Valid() {
		return nil, errors.Wrapf(ErrInvalidAction, "%q", string(in.Action))
	}

	if isNil(in.Actor) || in.Actor.IdentityID() == "" {
		return nil, errors.Wrapf(ErrInvalidActor, "%v (%T)", in.Actor, in.Actor)
	}

	subject := in.Subject
	if isNil(subject) {
		subject = nil
	}

	var subjectType SubjectType
	switch {
	case in.SubjectType != nil && !in.SubjectType.IsZero():
		subjectType = *in.SubjectType
		if subject != nil && subject.SubjectType() != subjectType {
			return nil, errors.Wrapf(ErrSubjectTypeMismatch, "%s vs %s", subject.SubjectType(), subjectType)
		}
	case subject != nil:
		subjectType = subject.SubjectType()
	}
	if subjectType.IsZero() {
		return nil, ErrMissingSubject
	}

	timestamp := in.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	e := &Entry{
		timestamp:       timestamp,
		action:          in.Action,
		actor:           in.Actor,
		actorRepr:       in.Actor.String(),
		subjectType:     subjectType,
		subjectTypeRepr: subjectType.String(),
		subject:         subject,
		description:     in.Description,
		payload:         clonePayload(in.Payload),
	}
	if e.payload == nil {
		e.payload = map[string]any{}
	}
	if subject != nil {
		e.subjectID = subject.PrimaryKey()
		e.hasSubjectID = true
	}

	return e, nil
}

// Timestamp returns when the event happened
func (e *Entry) Timestamp() time.Time { return e.timestamp }

// Action returns the recorded action
func (e *Entry) Action() Action { return e.action }

// Actor returns the live identity reference
func (e *Entry) Actor() Actor { return e.actor }

// ActorRepr returns the actor snapshot taken at construction
func (e *Entry) ActorRepr() string { return e.actorRepr }

// SubjectType returns the type of the targeted object
func (e *Entry) SubjectType() SubjectType { return e.subjectType }

// SubjectTypeRepr returns the subject type snapshot taken at construction
func (e *Entry) SubjectTypeRepr() string { return e.subjectTypeRepr }

// Subject returns the concrete subject, or nil for type-level events
func (e *Entry) Subject() Subject { return e.subject }

// SubjectID returns the subject's primary key, empty if no subject was given
func (e *Entry) SubjectID() string { return e.subjectID }

// HasSubjectID reports whether the entry refers to a single instance
func (e *Entry) HasSubjectID() bool { return e.hasSubjectID }

// Description returns the human readable description
func (e *Entry) Description() string { return e.description }

// Payload returns a deep copy of the structured event details
func (e *Entry) Payload() map[string]any { return clonePayload(e.payload) }

// String returns the single-line summary used in logs and listings
func (e *Entry) String() string {
	target := e.subjectTypeRepr
	if e.hasSubjectID && e.subjectID != "" {
		target += "." + e.subjectID
	}
	return fmt.Sprintf("%s by %s on %s: %s",
		strings.ToUpper(string(e.action)),
		e.actorRepr,
		target,
		SummaryDetail(e.description, e.payload),
	)
}

// GoString includes the timestamp in front of the summary
func (e *Entry) GoString() string {
	return fmt.Sprintf("<Entry %s: %s>", e.timestamp.Format(time.RFC3339), e.String())
}

// SummaryDetail picks the description, falling back to the payload and then "n/a"
func SummaryDetail(description string, payload map[string]any) string {
	if description != "" {
		return description
	}
	if len(payload) > 0 {
		if data, err := json.Marshal(payload); err == nil {
			return string(data)
		}
		return fmt.Sprint(payload)
	}
	return "n/a"
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// clonePayload copies nested maps and slices so neither the caller nor a
// reader of Payload can change an entry after construction
func clonePayload(p map[string]any) map[string]any {
	if p == nil {
		return nil
	}
	out := make(map[string]any, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return clonePayload(t)
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case map[string]string:
		return maps.Clone(t)
	case []string:
		return slices.Clone(t)
	case []int:
		return slices.Clone(t)
	case []int64:
		return slices.Clone(t)
	default:
		return v
	}
}
