package admin

import (
	"context"
	"net/url"

	"github.com/blogem/adminjournal/models"
)

// Request is what an admin handler learns about the incoming request
type Request struct {
	Method string
	Actor  models.Actor
	// Form holds the posted values of bulk actions
	Form url.Values
}

// ChangeList is the result of a successful list view
type ChangeList struct {
	// Filters are the lookup parameters the list was narrowed by
	Filters map[string]string
	Total   int
}

// ActionChoice is a bulk action offered on the change list
type ActionChoice struct {
	Name  string
	Label string
}

// Handler is the capability set an entity registration provides to the
// admin site
type Handler interface {
	// Add creates obj. obj may be nil when the object has no identity yet.
	Add(ctx context.Context, req *Request, obj models.Subject, message models.ChangeMessage) error
	Change(ctx context.Context, req *Request, obj models.Subject, message models.ChangeMessage) error
	// Delete removes obj. repr is the object's display string, taken
	// before deletion.
	Delete(ctx context.Context, req *Request, obj models.Subject, repr string) error
	View(ctx context.Context, req *Request, obj models.Subject) error
	List(ctx context.Context, req *Request) (*ChangeList, error)
	RunAction(ctx context.Context, req *Request) error
	Actions() []ActionChoice
}

// ActionLabel returns the label of the named action, falling back to the
// name itself
func ActionLabel(h Handler, name string) string {
	for _, choice := range h.Actions() {
		if choice.Name == name {
			return choice.Label
		}
	}
	return name
}
