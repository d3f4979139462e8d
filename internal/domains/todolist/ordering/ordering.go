// Package ordering decides how todo lists and todos are presented: unfinished
// work first, then finished work, each part alphabetical ignoring case.
package ordering

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"todos/internal/domains/todolist/model"
)

// IsDone reports whether every todo of a non-empty list is done.
func IsDone(list model.TodoList) bool {
	return len(list.Todos) > 0 && !HasUndone(list)
}

// HasUndone reports whether at least one todo is not done.
func HasUndone(list model.TodoList) bool {
	return slices.ContainsFunc(list.Todos, func(todo model.Todo) bool { return !todo.Done })
}

// SortTodoLists orders lists active first, then done. The input is untouched.
func SortTodoLists(lists []model.TodoList) []model.TodoList {
	return partition(lists, IsDone, func(list model.TodoList) string { return list.Title })
}

// SortTodos orders todos undone first, then done. The input is untouched.
func SortTodos(todos []model.Todo) []model.Todo {
	return partition(todos, func(todo model.Todo) bool { return todo.Done }, func(todo model.Todo) string { return todo.Title })
}

func partition[T any](items []T, done func(T) bool, title func(T) string) []T {
	active := make([]T, 0, len(items))
	finished := make([]T, 0, len(items))

	for _, item := range items {
		if done(item) {
			finished = append(finished, item)
		} else {
			active = append(active, item)
		}
	}

	// Folder is not safe for concurrent use, so each call gets its own.
	folder := cases.Fold()
	byTitle := func(a, b T) int {
		return strings.Compare(folder.String(title(a)), folder.String(title(b)))
	}

	slices.SortStableFunc(active, byTitle)
	slices.SortStableFunc(finished, byTitle)

	return append(active, finished...)
}
