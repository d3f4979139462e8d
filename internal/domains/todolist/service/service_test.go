package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "todos/infras/otel/mocks"
	verifierMocks "todos/internal/domains/auth/service/mocks"
	"todos/internal/domains/todolist/model"
	"todos/internal/domains/todolist/model/dto"
	"todos/internal/domains/todolist/ordering"
	"todos/internal/domains/todolist/service"
	"todos/internal/domains/todolist/store"
	storeMocks "todos/internal/domains/todolist/store/mocks"
	"todos/internal/session"
	"todos/shared/failure"
)

func sessionContext(t *testing.T) (context.Context, *session.Session) {
	t.Helper()

	sess := session.New()
	sess.SetTodoLists(&model.Collection{})

	todoStore := store.NewSession(sess, verifierMocks.NewMockVerifier(gomock.NewController(t)))

	return store.WithContext(context.Background(), todoStore), sess
}

func title(value string) dto.TitleRequest {
	return dto.TitleRequest{Title: value}
}

func TestTodoListService_Lifecycle(t *testing.T) {
	svc := service.New(otelMocks.NewOtel())
	ctx, sess := sessionContext(t)

	require.NoError(t, svc.Create(ctx, dto.CreateTodoListRequest{TitleRequest: title("Groceries")}))

	err := svc.Create(ctx, dto.CreateTodoListRequest{TitleRequest: title("Groceries")})
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	listID := sess.TodoLists().TodoLists[0].ID

	list, err := svc.Get(ctx, listID)
	require.NoError(t, err)
	assert.False(t, list.IsDone)
	assert.False(t, list.HasUndoneTodos)
	assert.Empty(t, list.Todos)

	require.NoError(t, svc.CreateTodo(ctx, listID, dto.CreateTodoRequest{TitleRequest: title("Milk")}))
	require.NoError(t, svc.CreateTodo(ctx, listID, dto.CreateTodoRequest{TitleRequest: title("bread")}))

	list, err = svc.Get(ctx, listID)
	require.NoError(t, err)
	assert.True(t, list.HasUndoneTodos)
	require.Len(t, list.Todos, 2)
	assert.Equal(t, "bread", list.Todos[0].Title)

	toggled, err := svc.ToggleTodo(ctx, listID, list.Todos[0].ID)
	require.NoError(t, err)
	assert.True(t, toggled.Done)

	list, err = svc.Get(ctx, listID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Milk", "bread"}, []string{list.Todos[0].Title, list.Todos[1].Title})

	require.NoError(t, svc.CompleteAll(ctx, listID))

	lists, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, lists.TodoLists, 1)
	assert.Equal(t, dto.TodoListSummary{ID: listID, Title: "Groceries", CountAll: 2, CountDone: 2, IsDone: true}, lists.TodoLists[0])

	require.NoError(t, svc.DeleteTodo(ctx, listID, list.Todos[0].ID))
	require.NoError(t, svc.UpdateTitle(ctx, listID, dto.UpdateTodoListRequest{TitleRequest: title("Shopping")}))
	require.NoError(t, svc.UpdateTitle(ctx, listID, dto.UpdateTodoListRequest{TitleRequest: title("Shopping")}))
	require.NoError(t, svc.Delete(ctx, listID))

	lists, err = svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, lists.TodoLists)
}

func TestTodoListService_NotFound(t *testing.T) {
	svc := service.New(otelMocks.NewOtel())
	ctx, _ := sessionContext(t)

	_, err := svc.Get(ctx, 404)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	for name, err := range map[string]error{
		"rename":       svc.UpdateTitle(ctx, 404, dto.UpdateTodoListRequest{TitleRequest: title("x")}),
		"delete":       svc.Delete(ctx, 404),
		"complete all": svc.CompleteAll(ctx, 404),
		"add todo":     svc.CreateTodo(ctx, 404, dto.CreateTodoRequest{TitleRequest: title("x")}),
		"delete todo":  svc.DeleteTodo(ctx, 404, 1),
	} {
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err), name)
	}

	_, err = svc.ToggleTodo(ctx, 404, 1)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestTodoListService_RenameToTakenTitle(t *testing.T) {
	svc := service.New(otelMocks.NewOtel())
	ctx, sess := sessionContext(t)

	require.NoError(t, svc.Create(ctx, dto.CreateTodoListRequest{TitleRequest: title("Work")}))
	require.NoError(t, svc.Create(ctx, dto.CreateTodoListRequest{TitleRequest: title("Home")}))

	err := svc.UpdateTitle(ctx, sess.TodoLists().TodoLists[1].ID, dto.UpdateTodoListRequest{TitleRequest: title("Work")})

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Equal(t, "Home", sess.TodoLists().TodoLists[1].Title)
}

func TestTodoListService_StoreFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := storeMocks.NewMockStore(ctrl)
	svc := service.New(otelMocks.NewOtel())
	ctx := store.WithContext(context.Background(), mockStore)
	dbErr := errors.New("connection reset")

	mockStore.EXPECT().SortedTodoLists(gomock.Any()).Return(nil, dbErr)
	_, err := svc.GetAll(ctx)
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))

	mockStore.EXPECT().TodoListTitleExists(gomock.Any(), "Groceries").Return(false, dbErr)
	err = svc.Create(ctx, dto.CreateTodoListRequest{TitleRequest: title("Groceries")})
	assert.ErrorIs(t, err, dbErr)

	mockStore.EXPECT().DeleteTodo(gomock.Any(), 1, 2).Return(false, dbErr)
	err = svc.DeleteTodo(ctx, 1, 2)
	assert.ErrorIs(t, err, dbErr)
}

func TestTodoListService_UsesStorePolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := storeMocks.NewMockStore(ctrl)
	svc := service.New(otelMocks.NewOtel())
	ctx := store.WithContext(context.Background(), mockStore)

	list := model.TodoList{ID: 1, Title: "Groceries", Todos: []model.Todo{{ID: 2, Title: "Milk", Done: true}}}

	mockStore.EXPECT().LoadTodoList(gomock.Any(), 1).Return(&list, nil)
	mockStore.EXPECT().SortedTodos(list).Return(ordering.SortTodos(list.Todos))
	mockStore.EXPECT().IsDoneTodoList(list).Return(true)
	mockStore.EXPECT().HasUndoneTodos(list).Return(false)

	res, err := svc.Get(ctx, 1)

	require.NoError(t, err)
	assert.True(t, res.IsDone)
	assert.False(t, res.HasUndoneTodos)
}

func TestTodoListService_WithoutStore(t *testing.T) {
	svc := service.New(otelMocks.NewOtel())

	_, err := svc.GetAll(context.Background())

	assert.ErrorIs(t, err, service.ErrNoStore)
}
