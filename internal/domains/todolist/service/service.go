package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"todos/infras/otel"
	"todos/internal/domains/todolist/model"
	"todos/internal/domains/todolist/model/dto"
	"todos/internal/domains/todolist/store"
	"todos/shared/constant"
	"todos/shared/failure"
)

var (
	ErrNoStore = errors.New("no todo store for this request")

	errTodoListNotFound = failure.NotFound("The specified " + model.ListEntityName + " was not found.")
	errTodoNotFound     = failure.NotFound("The specified " + model.TodoEntityName + " was not found.")
	errDuplicateTitle   = failure.Conflict("The list title must be unique.")
)

// TodoList applies the rules around todo lists on top of whichever store the
// request was given.
type TodoList interface {
	GetAll(ctx context.Context) (dto.GetTodoListsResponse, error)
	Get(ctx context.Context, listID int) (dto.TodoListResponse, error)
	Create(ctx context.Context, req dto.CreateTodoListRequest) error
	UpdateTitle(ctx context.Context, listID int, req dto.UpdateTodoListRequest) error
	Delete(ctx context.Context, listID int) error
	CompleteAll(ctx context.Context, listID int) error
	CreateTodo(ctx context.Context, listID int, req dto.CreateTodoRequest) error
	ToggleTodo(ctx context.Context, listID, todoID int) (dto.TodoResponse, error)
	DeleteTodo(ctx context.Context, listID, todoID int) error
}

type serviceImpl struct {
	otel otel.Otel
}

func New(otel otel.Otel) TodoList {
	return &serviceImpl{
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetTodoListsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todoStore, err := storeFrom(ctx)
	if err != nil {
		return res, err
	}

	lists, err := todoStore.SortedTodoLists(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo lists")

		return res, fmt.Errorf("failed to get todo lists: %w", err)
	}

	res.FromModels(lists, todoStore.IsDoneTodoList)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, listID int) (res dto.TodoListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todoStore, err := storeFrom(ctx)
	if err != nil {
		return res, err
	}

	list, err := s.load(ctx, todoStore, listID)
	if err != nil {
		return res, err
	}

	res.FromModel(*list, todoStore.SortedTodos(*list), todoStore.IsDoneTodoList(*list), todoStore.HasUndoneTodos(*list))

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoListRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todoStore, err := storeFrom(ctx)
	if err != nil {
		return err
	}

	if err = s.ensureUniqueTitle(ctx, todoStore, req.Title); err != nil {
		return err
	}

	if _, err = todoStore.CreateTodoList(ctx, req.Title); err != nil {
		log.Error().Err(err).Msg("failed to create todo list")

		return fmt.Errorf("failed to create todo list: %w", err)
	}

	return nil
}

// UpdateTitle treats keeping the current title as a successful rename.
func (s *serviceImpl) UpdateTitle(ctx context.Context, listID int, req dto.UpdateTodoListRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateTitle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todoStore, err := storeFrom(ctx)
	if err != nil {
		return err
	}

	list, err := s.load(ctx, todoStore, listID)
	if err != nil {
		return err
	}

	if list.Title == req.Title {
		return nil
	}

	if err = s.ensureUniqueTitle(ctx, todoStore, req.Title); err != nil {
		return err
	}

	updated, err := todoStore.SetTodoListTitle(ctx, listID, req.Title)
	if err != nil {
		log.Error().Err(err).Msg("failed to update todo list title")

		return fmt.Errorf("failed to update todo list title: %w", err)
	}

	if !updated {
		return errTodoListNotFound
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, listID int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.mutate(ctx, errTodoListNotFound, func(todoStore store.Store) (bool, error) {
		return todoStore.DeleteTodoList(ctx, listID)
	})
}

func (s *serviceImpl) CompleteAll(ctx context.Context, listID int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CompleteAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.mutate(ctx, errTodoListNotFound, func(todoStore store.Store) (bool, error) {
		return todoStore.CompleteAllTodos(ctx, listID)
	})
}

func (s *serviceImpl) CreateTodo(ctx context.Context, listID int, req dto.CreateTodoRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateTodo")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.mutate(ctx, errTodoListNotFound, func(todoStore store.Store) (bool, error) {
		return todoStore.CreateTodo(ctx, listID, req.Title)
	})
}

func (s *serviceImpl) ToggleTodo(ctx context.Context, listID, todoID int) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleTodo")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todoStore, err := storeFrom(ctx)
	if err != nil {
		return res, err
	}

	toggled, err := todoStore.ToggleDoneTodo(ctx, listID, todoID)
	if err != nil {
		log.Error().Err(err).Msg("failed to toggle todo")

		return res, fmt.Errorf("failed to toggle todo: %w", err)
	}

	if !toggled {
		return res, errTodoNotFound
	}

	todo, err := todoStore.LoadTodo(ctx, listID, todoID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load todo")

		return res, fmt.Errorf("failed to load todo: %w", err)
	}

	if todo == nil {
		return res, errTodoNotFound
	}

	res.FromModel(*todo)

	return res, nil
}

func (s *serviceImpl) DeleteTodo(ctx context.Context, listID, todoID int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteTodo")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.mutate(ctx, errTodoNotFound, func(todoStore store.Store) (bool, error) {
		return todoStore.DeleteTodo(ctx, listID, todoID)
	})
}

func (s *serviceImpl) load(ctx context.Context, todoStore store.Store, listID int) (*model.TodoList, error) {
	list, err := todoStore.LoadTodoList(ctx, listID)
	if err != nil {
		log.Error().Err(err).Int("listID", listID).Msg("failed to load todo list")

		return nil, fmt.Errorf("failed to load todo list: %w", err)
	}

	if list == nil {
		return nil, errTodoListNotFound
	}

	return list, nil
}

func (s *serviceImpl) ensureUniqueTitle(ctx context.Context, todoStore store.Store, title string) error {
	exists, err := todoStore.TodoListTitleExists(ctx, title)
	if err != nil {
		log.Error().Err(err).Msg("failed to check todo list title")

		return fmt.Errorf("failed to check todo list title: %w", err)
	}

	if exists {
		return errDuplicateTitle
	}

	return nil
}

// mutate runs op against the request's store and turns "nothing changed"
// into notFound.
func (s *serviceImpl) mutate(ctx context.Context, notFound error, op func(store.Store) (bool, error)) error {
	todoStore, err := storeFrom(ctx)
	if err != nil {
		return err
	}

	ok, err := op(todoStore)
	if err != nil {
		log.Error().Err(err).Msg("failed to update todo store")

		return fmt.Errorf("failed to update todo store: %w", err)
	}

	if !ok {
		return notFound
	}

	return nil
}

func storeFrom(ctx context.Context) (store.Store, error) {
	todoStore := store.FromContext(ctx)
	if todoStore == nil {
		return nil, ErrNoStore
	}

	return todoStore, nil
}
