package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	verifierMocks "todos/internal/domains/auth/service/mocks"
	"todos/internal/domains/todolist/model"
	"todos/internal/domains/todolist/store"
)

type fakeSession struct {
	collection *model.Collection
}

func (f *fakeSession) TodoLists() *model.Collection { return f.collection }

func (f *fakeSession) SetTodoLists(collection *model.Collection) { f.collection = collection }

func emptySessionStore(t *testing.T) (store.Store, *fakeSession) {
	t.Helper()

	sess := &fakeSession{collection: &model.Collection{}}

	return store.NewSession(sess, verifierMocks.NewMockVerifier(gomock.NewController(t))), sess
}

func titles(lists []model.TodoList) []string {
	result := make([]string, len(lists))
	for i, list := range lists {
		result[i] = list.Title
	}

	return result
}

func TestSessionStore_SeedsNewSession(t *testing.T) {
	sess := &fakeSession{}
	s := store.NewSession(sess, verifierMocks.NewMockVerifier(gomock.NewController(t)))

	require.NotNil(t, sess.collection)

	lists, err := s.SortedTodoLists(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Additional Todos", "social todos", "Work Todos", "Home Todos"}, titles(lists))

	// a second session gets its own copy of the seed
	other := &fakeSession{}
	store.NewSession(other, verifierMocks.NewMockVerifier(gomock.NewController(t)))

	ok, err := s.DeleteTodoList(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, other.collection.TodoLists, 4)
}

func TestSessionStore_ReusesExistingCollection(t *testing.T) {
	s, sess := emptySessionStore(t)
	ctx := context.Background()

	_, err := s.CreateTodoList(ctx, "Groceries")
	require.NoError(t, err)

	again := store.NewSession(sess, verifierMocks.NewMockVerifier(gomock.NewController(t)))
	exists, err := again.TodoListTitleExists(ctx, "Groceries")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSessionStore_Scenarios(t *testing.T) {
	s, sess := emptySessionStore(t)
	ctx := context.Background()

	ok, err := s.CreateTodoList(ctx, "Groceries")
	require.NoError(t, err)
	require.True(t, ok)

	listID := sess.collection.TodoLists[0].ID

	list, err := s.LoadTodoList(ctx, listID)
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.False(t, s.IsDoneTodoList(*list), "an empty list is never done")

	ok, err = s.CreateTodo(ctx, listID, "Milk")
	require.NoError(t, err)
	require.True(t, ok)

	list, err = s.LoadTodoList(ctx, listID)
	require.NoError(t, err)
	require.Len(t, list.Todos, 1)
	assert.False(t, list.Todos[0].Done)
	assert.True(t, s.HasUndoneTodos(*list))
	assert.False(t, s.IsDoneTodoList(*list))

	_, err = s.CreateTodoList(ctx, "Errands")
	require.NoError(t, err)

	ok, err = s.ToggleDoneTodo(ctx, listID, list.Todos[0].ID)
	require.NoError(t, err)
	require.True(t, ok)

	list, err = s.LoadTodoList(ctx, listID)
	require.NoError(t, err)
	assert.True(t, s.IsDoneTodoList(*list))

	lists, err := s.SortedTodoLists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Errands", "Groceries"}, titles(lists))
}

func TestSessionStore_CaseInsensitiveOrder(t *testing.T) {
	s, _ := emptySessionStore(t)
	ctx := context.Background()

	_, _ = s.CreateTodoList(ctx, "banana")
	_, _ = s.CreateTodoList(ctx, "Apple")

	lists, err := s.SortedTodoLists(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "banana"}, titles(lists))
}

func TestSessionStore_DeleteTodoFromWrongList(t *testing.T) {
	s, sess := emptySessionStore(t)
	ctx := context.Background()

	_, _ = s.CreateTodoList(ctx, "First")
	_, _ = s.CreateTodoList(ctx, "Second")
	first, second := sess.collection.TodoLists[0].ID, sess.collection.TodoLists[1].ID

	_, _ = s.CreateTodo(ctx, first, "Stay put")
	todoID := sess.collection.TodoLists[0].Todos[0].ID

	ok, err := s.DeleteTodo(ctx, second, todoID)
	require.NoError(t, err)
	assert.False(t, ok)

	todo, err := s.LoadTodo(ctx, first, todoID)
	require.NoError(t, err)
	require.NotNil(t, todo)
	assert.Equal(t, "Stay put", todo.Title)
	assert.False(t, todo.Done)

	ok, err = s.ToggleDoneTodo(ctx, second, todoID)
	require.NoError(t, err)
	assert.False(t, ok)

	missing, err := s.LoadTodo(ctx, second, todoID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSessionStore_ReadsAreCopies(t *testing.T) {
	s, _ := emptySessionStore(t)
	ctx := context.Background()

	_, _ = s.CreateTodoList(ctx, "Groceries")
	lists, _ := s.SortedTodoLists(ctx)
	listID := lists[0].ID
	_, _ = s.CreateTodo(ctx, listID, "Milk")

	list, err := s.LoadTodoList(ctx, listID)
	require.NoError(t, err)

	list.Title = "Changed"
	list.Todos[0].Done = true
	list.Todos = append(list.Todos, model.Todo{ID: 99, Title: "Sneaky"})

	todo, err := s.LoadTodo(ctx, listID, list.Todos[0].ID)
	require.NoError(t, err)
	todo.Title = "Changed"

	reloaded, err := s.LoadTodoList(ctx, listID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", reloaded.Title)
	require.Len(t, reloaded.Todos, 1)
	assert.Equal(t, "Milk", reloaded.Todos[0].Title)
	assert.False(t, reloaded.Todos[0].Done)

	sorted, _ := s.SortedTodoLists(ctx)
	sorted[0].Todos[0].Title = "Changed"

	reloaded, _ = s.LoadTodoList(ctx, listID)
	assert.Equal(t, "Milk", reloaded.Todos[0].Title)
}

func TestSessionStore_MissingTargetsAreNoOps(t *testing.T) {
	s, sess := emptySessionStore(t)
	ctx := context.Background()

	_, _ = s.CreateTodoList(ctx, "Groceries")
	before := sess.collection.Clone()

	for name, op := range map[string]func() (bool, error){
		"toggle":       func() (bool, error) { return s.ToggleDoneTodo(ctx, 404, 1) },
		"delete todo":  func() (bool, error) { return s.DeleteTodo(ctx, 404, 1) },
		"complete all": func() (bool, error) { return s.CompleteAllTodos(ctx, 404) },
		"create todo":  func() (bool, error) { return s.CreateTodo(ctx, 404, "Milk") },
		"delete list":  func() (bool, error) { return s.DeleteTodoList(ctx, 404) },
		"rename list":  func() (bool, error) { return s.SetTodoListTitle(ctx, 404, "Other") },
	} {
		ok, err := op()
		require.NoError(t, err, name)
		assert.False(t, ok, name)
	}

	assert.Equal(t, before, sess.collection)

	list, err := s.LoadTodoList(ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestSessionStore_CompleteAllTodos(t *testing.T) {
	s, sess := emptySessionStore(t)
	ctx := context.Background()

	_, _ = s.CreateTodoList(ctx, "Empty")
	emptyID := sess.collection.TodoLists[0].ID

	ok, err := s.CompleteAllTodos(ctx, emptyID)
	require.NoError(t, err)
	assert.True(t, ok, "an owned empty list still counts as found")

	_, _ = s.CreateTodo(ctx, emptyID, "One")
	_, _ = s.CreateTodo(ctx, emptyID, "Two")

	ok, err = s.CompleteAllTodos(ctx, emptyID)
	require.NoError(t, err)
	assert.True(t, ok)

	list, _ := s.LoadTodoList(ctx, emptyID)
	assert.True(t, s.IsDoneTodoList(*list))
	assert.False(t, s.HasUndoneTodos(*list))
}

func TestSessionStore_TitlesAndIDs(t *testing.T) {
	s, sess := emptySessionStore(t)
	ctx := context.Background()

	_, _ = s.CreateTodoList(ctx, "Groceries")
	listID := sess.collection.TodoLists[0].ID

	exists, _ := s.TodoListTitleExists(ctx, "groceries")
	assert.False(t, exists, "title match is exact")

	ok, err := s.SetTodoListTitle(ctx, listID, "Shopping")
	require.NoError(t, err)
	assert.True(t, ok)

	exists, _ = s.TodoListTitleExists(ctx, "Shopping")
	assert.True(t, exists)

	_, _ = s.CreateTodo(ctx, listID, "Milk")
	firstTodo := sess.collection.TodoLists[0].Todos[0].ID
	_, _ = s.DeleteTodo(ctx, listID, firstTodo)
	_, _ = s.CreateTodo(ctx, listID, "Bread")

	assert.NotEqual(t, firstTodo, sess.collection.TodoLists[0].Todos[0].ID, "ids are never reused")

	ok, err = s.DeleteTodoList(ctx, listID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, sess.collection.TodoLists)
}

func TestSessionStore_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := verifierMocks.NewMockVerifier(ctrl)
	s := store.NewSession(&fakeSession{}, verifier)
	ctx := context.Background()

	verifier.EXPECT().Verify(gomock.Any(), "nobody", "secret").Return(false, nil)
	ok, err := s.Authenticate(ctx, "nobody", "secret")
	require.NoError(t, err)
	assert.False(t, ok)

	verifier.EXPECT().Verify(gomock.Any(), "demo", "secret").Return(false, errors.New("bad hash"))
	_, err = s.Authenticate(ctx, "demo", "secret")
	assert.Error(t, err)
}
