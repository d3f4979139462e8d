package todolist

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"todos/infras/otel"
	"todos/internal/domains/todolist/model"
	"todos/internal/domains/todolist/model/dto"
	"todos/internal/domains/todolist/service"
	"todos/shared/constant"
	"todos/shared/failure"
	"todos/shared/validator"
	"todos/transport/http/middleware"
	"todos/transport/http/response"
)

type Handler struct {
	service    service.TodoList
	middleware middleware.Session
	otel       otel.Otel
}

func New(service service.TodoList, middleware middleware.Session, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/lists", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.RequireSignIn)

		routerGroup.Get("/", handler.GetTodoLists)
		routerGroup.Post("/", handler.CreateTodoList)

		routerGroup.Route("/{"+constant.RequestParamListID+"}", func(listGroup chi.Router) {
			listGroup.Get("/", handler.GetTodoList)
			listGroup.Patch("/", handler.UpdateTodoList)
			listGroup.Delete("/", handler.DeleteTodoList)
			listGroup.Post("/complete-all", handler.CompleteAllTodos)
			listGroup.Post("/todos", handler.CreateTodo)
			listGroup.Post("/todos/{"+constant.RequestParamTodoID+"}/toggle", handler.ToggleTodo)
			listGroup.Delete("/todos/{"+constant.RequestParamTodoID+"}", handler.DeleteTodo)
		})
	})
}

// GetTodoLists returns every list of the signed in user, unfinished first.
// @Summary Get todo lists
// @Tags TodoList
// @Produce json
// @Success 200 {object} response.Data[dto.GetTodoListsResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/lists [get]
func (handler *Handler) GetTodoLists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodoLists")
	defer scope.End()

	lists, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todo lists")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, lists)
}

// CreateTodoList creates an empty list with a title unique to the user.
// @Summary Create a todo list
// @Tags TodoList
// @Accept json
// @Produce json
// @Param request body dto.CreateTodoListRequest true "Title"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/lists [post]
func (handler *Handler) CreateTodoList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodoList")
	defer scope.End()

	req := dto.CreateTodoListRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo list")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "The todo list has been created.")
}

// GetTodoList returns one list with its todos, unfinished first.
// @Summary Get a todo list
// @Tags TodoList
// @Produce json
// @Param listID path int true "List ID"
// @Success 200 {object} response.Data[dto.TodoListResponse]
// @Failure 404 {object} response.Error
// @Router /v1/lists/{listID} [get]
func (handler *Handler) GetTodoList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodoList")
	defer scope.End()

	listID, err := pathID(r, constant.RequestParamListID, model.ListEntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	list, err := handler.service.Get(ctx, listID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("listID", listID).Msg("failed to get todo list")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, list)
}

// UpdateTodoList renames a list.
// @Summary Rename a todo list
// @Tags TodoList
// @Accept json
// @Produce json
// @Param listID path int true "List ID"
// @Param request body dto.UpdateTodoListRequest true "Title"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/lists/{listID} [patch]
func (handler *Handler) UpdateTodoList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodoList")
	defer scope.End()

	listID, err := pathID(r, constant.RequestParamListID, model.ListEntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateTodoListRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err = handler.service.UpdateTitle(ctx, listID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("listID", listID).Msg("failed to update todo list")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Todo list updated.")
}

// DeleteTodoList removes a list together with its todos.
// @Summary Delete a todo list
// @Tags TodoList
// @Param listID path int true "List ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/lists/{listID} [delete]
func (handler *Handler) DeleteTodoList(w http.ResponseWriter, r *http.Request) {
	handler.listAction(w, r, "DeleteTodoList", "Todo list deleted.", handler.service.Delete)
}

// CompleteAllTodos marks every todo of the list done.
// @Summary Complete all todos
// @Tags TodoList
// @Param listID path int true "List ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/lists/{listID}/complete-all [post]
func (handler *Handler) CompleteAllTodos(w http.ResponseWriter, r *http.Request) {
	handler.listAction(w, r, "CompleteAllTodos", "All todos have been marked as done.", handler.service.CompleteAll)
}

// CreateTodo adds an undone todo to the list.
// @Summary Add a todo
// @Tags Todo
// @Accept json
// @Produce json
// @Param listID path int true "List ID"
// @Param request body dto.CreateTodoRequest true "Title"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/lists/{listID}/todos [post]
func (handler *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	listID, err := pathID(r, constant.RequestParamListID, model.ListEntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.CreateTodoRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err = handler.service.CreateTodo(ctx, listID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("listID", listID).Msg("failed to create todo")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "The todo was added.")
}

// ToggleTodo flips a todo between done and undone and returns its new state.
// @Summary Toggle a todo
// @Tags Todo
// @Produce json
// @Param listID path int true "List ID"
// @Param todoID path int true "Todo ID"
// @Success 200 {object} response.Data[dto.TodoResponse]
// @Failure 404 {object} response.Error
// @Router /v1/lists/{listID}/todos/{todoID}/toggle [post]
func (handler *Handler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleTodo")
	defer scope.End()

	listID, todoID, err := todoPath(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	todo, err := handler.service.ToggleTodo(ctx, listID, todoID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("listID", listID).Int("todoID", todoID).Msg("failed to toggle todo")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, todo)
}

// DeleteTodo removes one todo from the list.
// @Summary Delete a todo
// @Tags Todo
// @Param listID path int true "List ID"
// @Param todoID path int true "Todo ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/lists/{listID}/todos/{todoID} [delete]
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	listID, todoID, err := todoPath(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.DeleteTodo(ctx, listID, todoID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("listID", listID).Int("todoID", todoID).Msg("failed to delete todo")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "The todo has been deleted.")
}

func (handler *Handler) listAction(w http.ResponseWriter, r *http.Request, name, message string, action func(ctx context.Context, listID int) error) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	listID, err := pathID(r, constant.RequestParamListID, model.ListEntityName)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = action(ctx, listID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("listID", listID).Str("action", name).Msg("failed to update todo list")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, message)
}

// pathID reads a numeric path parameter. Anything else cannot name an
// existing list or todo, so it is a 404.
func pathID(r *http.Request, param, entity string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil || id < 1 {
		return 0, failure.NotFound("The specified " + entity + " was not found.")
	}

	return id, nil
}

func todoPath(r *http.Request) (int, int, error) {
	listID, err := pathID(r, constant.RequestParamListID, model.ListEntityName)
	if err != nil {
		return 0, 0, err
	}

	todoID, err := pathID(r, constant.RequestParamTodoID, model.TodoEntityName)
	if err != nil {
		return 0, 0, err
	}

	return listID, todoID, nil
}
