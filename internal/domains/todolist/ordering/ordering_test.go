package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/cases"

	"todos/internal/domains/todolist/model"
	"todos/internal/domains/todolist/ordering"
)

func todo(id int, title string, done bool) model.Todo {
	return model.Todo{ID: id, Title: title, Done: done}
}

func titles(lists []model.TodoList) []string {
	out := make([]string, len(lists))
	for i, list := range lists {
		out[i] = list.Title
	}

	return out
}

func TestIsDone(t *testing.T) {
	tests := []struct {
		name      string
		todos     []model.Todo
		done      bool
		hasUndone bool
	}{
		{name: "empty list is never done", todos: nil, done: false, hasUndone: false},
		{name: "single undone todo", todos: []model.Todo{todo(1, "Milk", false)}, done: false, hasUndone: true},
		{name: "all todos done", todos: []model.Todo{todo(1, "Milk", true), todo(2, "Eggs", true)}, done: true, hasUndone: false},
		{name: "mixed", todos: []model.Todo{todo(1, "Milk", true), todo(2, "Eggs", false)}, done: false, hasUndone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := model.TodoList{ID: 1, Title: "Groceries", Todos: tt.todos}

			assert.Equal(t, tt.done, ordering.IsDone(list))
			assert.Equal(t, tt.hasUndone, ordering.HasUndone(list))
		})
	}
}

func TestSortTodoLists_CaseInsensitive(t *testing.T) {
	lists := []model.TodoList{
		{ID: 1, Title: "banana"},
		{ID: 2, Title: "Apple"},
	}

	assert.Equal(t, []string{"Apple", "banana"}, titles(ordering.SortTodoLists(lists)))
}

func TestSortTodoLists_DonePartitionLast(t *testing.T) {
	lists := []model.TodoList{
		{ID: 1, Title: "Groceries", Todos: []model.Todo{todo(1, "Milk", true)}},
		{ID: 2, Title: "zoo trip", Todos: []model.Todo{todo(2, "Tickets", false)}},
		{ID: 3, Title: "Errands"},
		{ID: 4, Title: "apartment", Todos: []model.Todo{todo(3, "Keys", true), todo(4, "Lease", true)}},
	}

	sorted := ordering.SortTodoLists(lists)

	assert.Equal(t, []string{"Errands", "zoo trip", "apartment", "Groceries"}, titles(sorted))

	folder := cases.Fold()
	seenDone := false

	for i, list := range sorted {
		if ordering.IsDone(list) {
			seenDone = true
		} else {
			assert.False(t, seenDone, "active list %q after a done list", list.Title)
		}

		if i > 0 && ordering.IsDone(sorted[i-1]) == ordering.IsDone(list) {
			assert.LessOrEqual(t, folder.String(sorted[i-1].Title), folder.String(list.Title))
		}
	}
}

func TestSortTodoLists_StableTies(t *testing.T) {
	lists := []model.TodoList{
		{ID: 1, Title: "Work"},
		{ID: 2, Title: "work"},
		{ID: 3, Title: "WORK"},
	}

	sorted := ordering.SortTodoLists(lists)

	assert.Equal(t, []int{1, 2, 3}, []int{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestSortTodos(t *testing.T) {
	todos := []model.Todo{
		todo(1, "walk dog", true),
		todo(2, "Buy milk", false),
		todo(3, "apply for job", true),
		todo(4, "call mom", false),
	}

	sorted := ordering.SortTodos(todos)

	assert.Equal(t, []int{2, 4, 3, 1}, []int{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID})
	assert.Equal(t, 1, todos[0].ID, "input must not be reordered")
}

func TestSortEmpty(t *testing.T) {
	assert.Empty(t, ordering.SortTodoLists(nil))
	assert.Empty(t, ordering.SortTodos([]model.Todo{}))
}
