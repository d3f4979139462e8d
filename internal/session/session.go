// Package session keeps per-visitor state on the server. The browser holds
// only a signed token naming its session.
package session

import (
	"context"

	"github.com/google/uuid"

	"todos/internal/domains/todolist/model"
	"todos/shared/constant"
)

type Session struct {
	ID         string            `json:"id"`
	Username   string            `json:"username,omitempty"`
	SignedIn   bool              `json:"signed_in"`
	Collection *model.Collection `json:"collection,omitempty"`
}

func New() *Session {
	return &Session{ID: uuid.NewString()}
}

// TodoLists is nil until a session store seeds it.
func (s *Session) TodoLists() *model.Collection {
	return s.Collection
}

func (s *Session) SetTodoLists(collection *model.Collection) {
	s.Collection = collection
}

func (s *Session) SignIn(username string) {
	s.Username = username
	s.SignedIn = true
}

// SignOut forgets the user but keeps any lists held in the session.
func (s *Session) SignOut() {
	s.Username = constant.Empty
	s.SignedIn = false
}

func WithContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, constant.ContextKeySession, sess)
}

// FromContext returns nil when the request went through no session middleware.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(constant.ContextKeySession).(*Session)

	return sess
}
