package store

import (
	"context"
	"fmt"
	"slices"

	"todos/internal/domains/auth/service"
	"todos/internal/domains/todolist/model"
	"todos/internal/domains/todolist/ordering"
)

// sessionStore keeps the visitor's lists inside their session. Nothing it
// returns aliases the collection; changes go through its methods only.
type sessionStore struct {
	collection *model.Collection
	verifier   service.Verifier
}

// NewSession attaches to the collection already in the session, or seeds the
// session with a fresh copy of the sample lists.
func NewSession(sessionCtx SessionContext, verifier service.Verifier) Store {
	collection := sessionCtx.TodoLists()
	if collection == nil {
		collection = model.Seed()
		sessionCtx.SetTodoLists(collection)
	}

	return &sessionStore{
		collection: collection,
		verifier:   verifier,
	}
}

func (s *sessionStore) SortedTodoLists(_ context.Context) ([]model.TodoList, error) {
	lists := make([]model.TodoList, len(s.collection.TodoLists))
	for i, list := range s.collection.TodoLists {
		lists[i] = list.Clone()
	}

	return ordering.SortTodoLists(lists), nil
}

func (s *sessionStore) LoadTodoList(_ context.Context, listID int) (*model.TodoList, error) {
	list := s.find(listID)
	if list == nil {
		return nil, nil
	}

	clone := list.Clone()

	return &clone, nil
}

func (s *sessionStore) LoadTodo(_ context.Context, listID, todoID int) (*model.Todo, error) {
	todo := s.findTodo(listID, todoID)
	if todo == nil {
		return nil, nil
	}

	clone := *todo

	return &clone, nil
}

func (s *sessionStore) SortedTodos(list model.TodoList) []model.Todo {
	return ordering.SortTodos(list.Todos)
}

func (s *sessionStore) IsDoneTodoList(list model.TodoList) bool {
	return ordering.IsDone(list)
}

func (s *sessionStore) HasUndoneTodos(list model.TodoList) bool {
	return ordering.HasUndone(list)
}

func (s *sessionStore) ToggleDoneTodo(_ context.Context, listID, todoID int) (bool, error) {
	todo := s.findTodo(listID, todoID)
	if todo == nil {
		return false, nil
	}

	todo.Done = !todo.Done

	return true, nil
}

func (s *sessionStore) DeleteTodo(_ context.Context, listID, todoID int) (bool, error) {
	list := s.find(listID)
	if list == nil {
		return false, nil
	}

	index := list.TodoIndex(todoID)
	if index < 0 {
		return false, nil
	}

	list.Todos = slices.Delete(list.Todos, index, index+1)

	return true, nil
}

func (s *sessionStore) CompleteAllTodos(_ context.Context, listID int) (bool, error) {
	list := s.find(listID)
	if list == nil {
		return false, nil
	}

	for i := range list.Todos {
		list.Todos[i].Done = true
	}

	return true, nil
}

func (s *sessionStore) CreateTodo(_ context.Context, listID int, title string) (bool, error) {
	list := s.find(listID)
	if list == nil {
		return false, nil
	}

	list.Todos = append(list.Todos, model.Todo{
		ID:         s.collection.NextID(),
		Title:      title,
		TodoListID: listID,
	})

	return true, nil
}

func (s *sessionStore) CreateTodoList(_ context.Context, title string) (bool, error) {
	s.collection.TodoLists = append(s.collection.TodoLists, model.TodoList{
		ID:    s.collection.NextID(),
		Title: title,
		Todos: []model.Todo{},
	})

	return true, nil
}

func (s *sessionStore) DeleteTodoList(_ context.Context, listID int) (bool, error) {
	index := s.collection.ListIndex(listID)
	if index < 0 {
		return false, nil
	}

	s.collection.TodoLists = slices.Delete(s.collection.TodoLists, index, index+1)

	return true, nil
}

func (s *sessionStore) SetTodoListTitle(_ context.Context, listID int, title string) (bool, error) {
	list := s.find(listID)
	if list == nil {
		return false, nil
	}

	list.Title = title

	return true, nil
}

func (s *sessionStore) TodoListTitleExists(_ context.Context, title string) (bool, error) {
	return slices.ContainsFunc(s.collection.TodoLists, func(list model.TodoList) bool {
		return list.Title == title
	}), nil
}

func (s *sessionStore) Authenticate(ctx context.Context, username, password string) (bool, error) {
	ok, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		return false, fmt.Errorf("failed to authenticate: %w", err)
	}

	return ok, nil
}

func (s *sessionStore) find(listID int) *model.TodoList {
	index := s.collection.ListIndex(listID)
	if index < 0 {
		return nil
	}

	return &s.collection.TodoLists[index]
}

func (s *sessionStore) findTodo(listID, todoID int) *model.Todo {
	list := s.find(listID)
	if list == nil {
		return nil
	}

	index := list.TodoIndex(todoID)
	if index < 0 {
		return nil
	}

	return &list.Todos[index]
}
