package store

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"todos/infras/otel"
	"todos/infras/postgres"
	"todos/internal/domains/auth/service"
	"todos/internal/domains/todolist/model"
	"todos/internal/domains/todolist/ordering"
	"todos/shared/constant"
)

// Every statement filters on todolists.username itself, so a list or todo
// owned by someone else can never be read or changed.
const (
	selectTodoListsQuery = `SELECT id, title, username FROM todolists
		WHERE username = $1 ORDER BY id`
	selectUserTodosQuery = `SELECT todos.id, todos.title, todos.done, todos.todolist_id FROM todos
		JOIN todolists ON todolists.id = todos.todolist_id
		WHERE todolists.username = $1 ORDER BY todos.id`
	selectTodoListQuery = `SELECT id, title, username FROM todolists
		WHERE id = $1 AND username = $2`
	selectListTodosQuery = `SELECT todos.id, todos.title, todos.done, todos.todolist_id FROM todos
		JOIN todolists ON todolists.id = todos.todolist_id
		WHERE todos.todolist_id = $1 AND todolists.username = $2 ORDER BY todos.id`
	selectTodoQuery = `SELECT todos.id, todos.title, todos.done, todos.todolist_id FROM todos
		JOIN todolists ON todolists.id = todos.todolist_id
		WHERE todos.id = $1 AND todos.todolist_id = $2 AND todolists.username = $3`
	toggleTodoQuery = `UPDATE todos SET done = NOT todos.done FROM todolists
		WHERE todos.id = $1 AND todos.todolist_id = $2
		AND todolists.id = todos.todolist_id AND todolists.username = $3`
	deleteTodoQuery = `DELETE FROM todos USING todolists
		WHERE todos.id = $1 AND todos.todolist_id = $2
		AND todolists.id = todos.todolist_id AND todolists.username = $3`
	completeAllTodosQuery = `WITH list AS (
			SELECT id FROM todolists WHERE id = $1 AND username = $2
		), completed AS (
			UPDATE todos SET done = true WHERE todolist_id IN (SELECT id FROM list) RETURNING id
		)
		SELECT EXISTS (SELECT 1 FROM list)`
	insertTodoQuery = `INSERT INTO todos (todolist_id, title)
		SELECT id, $2 FROM todolists WHERE id = $1 AND username = $3`
	insertTodoListQuery = `INSERT INTO todolists (title, username) VALUES ($1, $2)`
	deleteTodoListQuery = `DELETE FROM todolists WHERE id = $1 AND username = $2`
	updateTodoListQuery = `UPDATE todolists SET title = $1 WHERE id = $2 AND username = $3`
	todoListExistsQuery = `SELECT EXISTS (SELECT 1 FROM todolists WHERE title = $1 AND username = $2)`
)

type postgresStore struct {
	executor postgres.Executor
	verifier service.Verifier
	otel     otel.Otel
	username string
}

// NewPostgres returns a store bound to username for the lifetime of one
// request. The executor is owned by the caller, who closes it.
func NewPostgres(executor postgres.Executor, verifier service.Verifier, otel otel.Otel, username string) Store {
	return &postgresStore{
		executor: executor,
		verifier: verifier,
		otel:     otel,
		username: username,
	}
}

func (s *postgresStore) SortedTodoLists(ctx context.Context) (lists []model.TodoList, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".SortedTodoLists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.executor.Select(ctx, &lists, selectTodoListsQuery, s.username); err != nil {
		return nil, fmt.Errorf("failed to select todo lists: %w", err)
	}

	var todos []model.Todo
	if err = s.executor.Select(ctx, &todos, selectUserTodosQuery, s.username); err != nil {
		return nil, fmt.Errorf("failed to select todos: %w", err)
	}

	byList := make(map[int][]model.Todo, len(lists))
	for _, todo := range todos {
		byList[todo.TodoListID] = append(byList[todo.TodoListID], todo)
	}

	for i := range lists {
		lists[i].Todos = byList[lists[i].ID]
		if lists[i].Todos == nil {
			lists[i].Todos = []model.Todo{}
		}
	}

	return ordering.SortTodoLists(lists), nil
}

func (s *postgresStore) LoadTodoList(ctx context.Context, listID int) (list *model.TodoList, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".LoadTodoList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var (
		lists []model.TodoList
		todos []model.Todo
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := s.executor.Select(groupCtx, &lists, selectTodoListQuery, listID, s.username); err != nil {
			return fmt.Errorf("failed to select todo list: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		if err := s.executor.Select(groupCtx, &todos, selectListTodosQuery, listID, s.username); err != nil {
			return fmt.Errorf("failed to select todos: %w", err)
		}

		return nil
	})

	if err = group.Wait(); err != nil {
		return nil, err
	}

	if len(lists) == 0 {
		return nil, nil
	}

	list = &lists[0]
	list.Todos = todos
	if list.Todos == nil {
		list.Todos = []model.Todo{}
	}

	return list, nil
}

func (s *postgresStore) LoadTodo(ctx context.Context, listID, todoID int) (todo *model.Todo, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".LoadTodo")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var todos []model.Todo
	if err = s.executor.Select(ctx, &todos, selectTodoQuery, todoID, listID, s.username); err != nil {
		return nil, fmt.Errorf("failed to select todo: %w", err)
	}

	if len(todos) == 0 {
		return nil, nil
	}

	return &todos[0], nil
}

func (s *postgresStore) SortedTodos(list model.TodoList) []model.Todo {
	return ordering.SortTodos(list.Todos)
}

func (s *postgresStore) IsDoneTodoList(list model.TodoList) bool {
	return ordering.IsDone(list)
}

func (s *postgresStore) HasUndoneTodos(list model.TodoList) bool {
	return ordering.HasUndone(list)
}

func (s *postgresStore) ToggleDoneTodo(ctx context.Context, listID, todoID int) (bool, error) {
	return s.exec(ctx, "ToggleDoneTodo", toggleTodoQuery, todoID, listID, s.username)
}

func (s *postgresStore) DeleteTodo(ctx context.Context, listID, todoID int) (bool, error) {
	return s.exec(ctx, "DeleteTodo", deleteTodoQuery, todoID, listID, s.username)
}

func (s *postgresStore) CompleteAllTodos(ctx context.Context, listID int) (found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".CompleteAllTodos")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.executor.Get(ctx, &found, completeAllTodosQuery, listID, s.username); err != nil {
		return false, fmt.Errorf("failed to complete todos: %w", err)
	}

	return found, nil
}

func (s *postgresStore) CreateTodo(ctx context.Context, listID int, title string) (bool, error) {
	return s.exec(ctx, "CreateTodo", insertTodoQuery, listID, title, s.username)
}

func (s *postgresStore) CreateTodoList(ctx context.Context, title string) (bool, error) {
	return s.exec(ctx, "CreateTodoList", insertTodoListQuery, title, s.username)
}

func (s *postgresStore) DeleteTodoList(ctx context.Context, listID int) (bool, error) {
	return s.exec(ctx, "DeleteTodoList", deleteTodoListQuery, listID, s.username)
}

func (s *postgresStore) SetTodoListTitle(ctx context.Context, listID int, title string) (bool, error) {
	return s.exec(ctx, "SetTodoListTitle", updateTodoListQuery, title, listID, s.username)
}

func (s *postgresStore) TodoListTitleExists(ctx context.Context, title string) (exists bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".TodoListTitleExists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.executor.Get(ctx, &exists, todoListExistsQuery, title, s.username); err != nil {
		return false, fmt.Errorf("failed to check todo list title: %w", err)
	}

	return exists, nil
}

func (s *postgresStore) Authenticate(ctx context.Context, username, password string) (bool, error) {
	ok, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		return false, fmt.Errorf("failed to authenticate: %w", err)
	}

	return ok, nil
}

// exec runs a mutation; touching no row means the target was not found.
func (s *postgresStore) exec(ctx context.Context, operation, statement string, params ...any) (ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+"."+operation)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.executor.Exec(ctx, statement, params...)
	if err != nil {
		return false, fmt.Errorf("failed to execute %s: %w", operation, err)
	}

	return affected > 0, nil
}
