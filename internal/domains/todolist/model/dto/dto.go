package dto

import (
	"strings"

	"todos/internal/domains/todolist/model"
)

// TitleRequest carries a list or todo title; surrounding whitespace is
// dropped before the length rules apply.
type TitleRequest struct {
	Title string `json:"title" validate:"required,max=100"`
}

func (r *TitleRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

type (
	CreateTodoListRequest struct{ TitleRequest }
	UpdateTodoListRequest struct{ TitleRequest }
	CreateTodoRequest     struct{ TitleRequest }
)

type TodoResponse struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

func (r *TodoResponse) FromModel(todo model.Todo) {
	r.ID = todo.ID
	r.Title = todo.Title
	r.Done = todo.Done
}

// TodoListSummary is one row of the lists overview.
type TodoListSummary struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	CountAll  int    `json:"count_all"`
	CountDone int    `json:"count_done"`
	IsDone    bool   `json:"is_done"`
}

func (r *TodoListSummary) FromModel(list model.TodoList, isDone bool) {
	r.ID = list.ID
	r.Title = list.Title
	r.CountAll = len(list.Todos)
	r.IsDone = isDone

	r.CountDone = 0
	for _, todo := range list.Todos {
		if todo.Done {
			r.CountDone++
		}
	}
}

type GetTodoListsResponse struct {
	TodoLists []TodoListSummary `json:"todo_lists"`
}

func (r *GetTodoListsResponse) FromModels(lists []model.TodoList, isDone func(model.TodoList) bool) {
	r.TodoLists = make([]TodoListSummary, len(lists))
	for i, list := range lists {
		r.TodoLists[i].FromModel(list, isDone(list))
	}
}

// TodoListResponse expects todos already in display order.
type TodoListResponse struct {
	ID             int            `json:"id"`
	Title          string         `json:"title"`
	IsDone         bool           `json:"is_done"`
	HasUndoneTodos bool           `json:"has_undone_todos"`
	Todos          []TodoResponse `json:"todos"`
}

func (r *TodoListResponse) FromModel(list model.TodoList, sortedTodos []model.Todo, isDone, hasUndone bool) {
	r.ID = list.ID
	r.Title = list.Title
	r.IsDone = isDone
	r.HasUndoneTodos = hasUndone

	r.Todos = make([]TodoResponse, len(sortedTodos))
	for i, todo := range sortedTodos {
		r.Todos[i].FromModel(todo)
	}
}
