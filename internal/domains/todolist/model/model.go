package model

import "slices"

const (
	ListTableName = "todolists"
	TodoTableName = "todos"

	ListEntityName = "todo list"
	TodoEntityName = "todo"
)

type Todo struct {
	ID         int    `db:"id"          json:"id"`
	Title      string `db:"title"       json:"title"`
	Done       bool   `db:"done"        json:"done"`
	TodoListID int    `db:"todolist_id" json:"todolist_id"`
}

type TodoList struct {
	ID       int    `db:"id"       json:"id"`
	Title    string `db:"title"    json:"title"`
	Username string `db:"username" json:"username,omitempty"`
	Todos    []Todo `db:"-"        json:"todos"`
}

// Clone returns a copy that shares no memory with l.
func (l TodoList) Clone() TodoList {
	l.Todos = slices.Clone(l.Todos)
	if l.Todos == nil {
		l.Todos = []Todo{}
	}

	return l
}

// TodoIndex returns the position of the todo with the given id, or -1.
func (l TodoList) TodoIndex(todoID int) int {
	return slices.IndexFunc(l.Todos, func(todo Todo) bool { return todo.ID == todoID })
}

// Collection is everything one session knows about: its lists and the last
// id handed out. Ids are shared between lists and todos and never reused.
type Collection struct {
	TodoLists []TodoList `json:"todo_lists"`
	LastID    int        `json:"last_id"`
}

func (c *Collection) NextID() int {
	c.LastID++

	return c.LastID
}

// ListIndex returns the position of the list with the given id, or -1.
func (c *Collection) ListIndex(listID int) int {
	return slices.IndexFunc(c.TodoLists, func(list TodoList) bool { return list.ID == listID })
}

func (c *Collection) Clone() *Collection {
	clone := &Collection{
		TodoLists: make([]TodoList, len(c.TodoLists)),
		LastID:    c.LastID,
	}

	for i, list := range c.TodoLists {
		clone.TodoLists[i] = list.Clone()
	}

	return clone
}
