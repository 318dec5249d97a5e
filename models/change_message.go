package models

import (
	"fmt"
	"strings"
)

// ChangeMessage is a structured description of what an admin form changed.
// It is stored verbatim in the payload under "message".
type ChangeMessage []ChangeItem

// ChangeItem describes one added, changed or deleted object. Exactly one of
// the pointers is set.
type ChangeItem struct {
	Added   *ChangeDetail `json:"added,omitempty"`
	Changed *ChangeDetail `json:"changed,omitempty"`
	Deleted *ChangeDetail `json:"deleted,omitempty"`
}

// ChangeDetail names the related object and the changed fields
type ChangeDetail struct {
	Name   string   `json:"name,omitempty"`
	Object string   `json:"object,omitempty"`
	Fields []string `json:"fields,omitempty"`
}

// Added returns a message recording a plain addition
func Added() ChangeMessage {
	return ChangeMessage{{Added: &ChangeDetail{}}}
}

// ChangedFields returns a message recording changed fields, or an empty
// message when fields is empty
func ChangedFields(fields ...string) ChangeMessage {
	if len(fields) == 0 {
		return ChangeMessage{}
	}
	return ChangeMessage{{Changed: &ChangeDetail{Fields: fields}}}
}

// String renders the message the way the admin history shows it
func (m ChangeMessage) String() string {
	var parts []string
	for _, item := range m {
		switch {
		case item.Added != nil:
			if item.Added.Name != "" || item.Added.Object != "" {
				parts = append(parts, fmt.Sprintf("Added %s \"%s\".", item.Added.Name, item.Added.Object))
			} else {
				parts = append(parts, "Added.")
			}
		case item.Changed != nil:
			fields := textList(item.Changed.Fields, "and")
			if item.Changed.Name != "" || item.Changed.Object != "" {
				parts = append(parts, fmt.Sprintf("Changed %s for %s \"%s\".", fields, item.Changed.Name, item.Changed.Object))
			} else {
				parts = append(parts, fmt.Sprintf("Changed %s.", fields))
			}
		case item.Deleted != nil:
			parts = append(parts, fmt.Sprintf("Deleted %s \"%s\".", item.Deleted.Name, item.Deleted.Object))
		}
	}

	if len(parts) == 0 {
		return "No fields changed."
	}
	return strings.Join(parts, " ")
}

// Payload converts the message into its generic JSON form
func (m ChangeMessage) Payload() []any {
	out := make([]any, 0, len(m))
	for _, item := range m {
		switch {
		case item.Added != nil:
			out = append(out, map[string]any{"added": item.Added.toMap()})
		case item.Changed != nil:
			out = append(out, map[string]any{"changed": item.Changed.toMap()})
		case item.Deleted != nil:
			out = append(out, map[string]any{"deleted": item.Deleted.toMap()})
		}
	}
	return out
}

func (d *ChangeDetail) toMap() map[string]any {
	m := map[string]any{}
	if d.Name != "" {
		m["name"] = d.Name
	}
	if d.Object != "" {
		m["object"] = d.Object
	}
	if len(d.Fields) > 0 {
		m["fields"] = append([]string(nil), d.Fields...)
	}
	return m
}

// textList joins items as "a, b and c"
func textList(items []string, last string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " " + last + " " + items[len(items)-1]
}
