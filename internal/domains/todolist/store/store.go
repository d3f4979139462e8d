// Package store keeps todo lists for one user. Two implementations satisfy
// Store: a PostgreSQL one for durable storage and one that lives inside the
// visitor's session. Callers pick one per request and never branch on which.
package store

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"

	"todos/internal/domains/todolist/model"
	"todos/shared/constant"
)

// Store is scoped to a single user. Lists and todos belonging to anyone else
// behave exactly as if they did not exist.
//
// Lookups report "not found" as a nil result and mutations report it as
// false. A non-nil error always means the backing storage failed.
type Store interface {
	// SortedTodoLists returns every list of the user with its todos attached,
	// active lists first. Todos inside a list are not sorted.
	SortedTodoLists(ctx context.Context) ([]model.TodoList, error)
	LoadTodoList(ctx context.Context, listID int) (*model.TodoList, error)
	LoadTodo(ctx context.Context, listID, todoID int) (*model.Todo, error)

	SortedTodos(list model.TodoList) []model.Todo
	IsDoneTodoList(list model.TodoList) bool
	HasUndoneTodos(list model.TodoList) bool

	ToggleDoneTodo(ctx context.Context, listID, todoID int) (bool, error)
	DeleteTodo(ctx context.Context, listID, todoID int) (bool, error)
	// CompleteAllTodos is true for any owned list, including an empty one.
	CompleteAllTodos(ctx context.Context, listID int) (bool, error)
	CreateTodo(ctx context.Context, listID int, title string) (bool, error)
	// CreateTodoList and SetTodoListTitle do not check uniqueness; use
	// TodoListTitleExists first.
	CreateTodoList(ctx context.Context, title string) (bool, error)
	DeleteTodoList(ctx context.Context, listID int) (bool, error)
	SetTodoListTitle(ctx context.Context, listID int, title string) (bool, error)
	TodoListTitleExists(ctx context.Context, title string) (bool, error)

	Authenticate(ctx context.Context, username, password string) (bool, error)
}

// SessionContext is where the session store keeps its collection between
// requests.
type SessionContext interface {
	TodoLists() *model.Collection
	SetTodoLists(collection *model.Collection)
}

func WithContext(ctx context.Context, store Store) context.Context {
	return context.WithValue(ctx, constant.ContextKeyStore, store)
}

// FromContext returns the store selected for the current request, or nil.
func FromContext(ctx context.Context) Store {
	store, _ := ctx.Value(constant.ContextKeyStore).(Store)

	return store
}
