package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"todos/infras/otel"
	"todos/internal/domains/auth/model/dto"
	"todos/internal/domains/todolist/store"
	"todos/internal/session"
	"todos/shared/constant"
	"todos/shared/failure"
	"todos/shared/validator"
	"todos/transport/http/response"
)

type Handler struct {
	otel otel.Otel
}

func New(otel otel.Otel) Handler {
	return Handler{
		otel: otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/signin", handler.SignIn)
		r.Post("/signout", handler.SignOut)
	})
}

// SignIn checks the credentials against the request's store and marks the
// session as signed in.
// @Summary Sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Credentials"
// @Success 200 {object} response.Data[dto.SignInResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/signin [post]
func (handler *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignIn")
	defer scope.End()

	req := dto.SignInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	ok, err := store.FromContext(ctx).Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to authenticate")

		response.WithError(w, err)

		return
	}

	if !ok {
		scope.TraceError(failure.InvalidCredentials)

		response.WithError(w, failure.InvalidCredentials)

		return
	}

	session.FromContext(ctx).SignIn(req.Username)

	scope.AddEvent("User signed in")

	response.WithJSON(w, http.StatusOK, dto.SignInResponse{Username: req.Username})
}

// SignOut forgets the signed in user. Lists kept in the session survive.
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message
// @Router /v1/users/signout [post]
func (handler *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignOut")
	defer scope.End()

	session.FromContext(r.Context()).SignOut()

	response.WithMessage(w, http.StatusOK, "You have been signed out.")
}
