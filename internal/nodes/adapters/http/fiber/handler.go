package fiber

import (
	"context"
	"errors"
	"net/http"

	"node-metrics-dashboard/internal/nodes/core/domain"
	"node-metrics-dashboard/internal/nodes/core/usecase"
	"node-metrics-dashboard/internal/upstream"

	"github.com/gofiber/fiber/v2"
)

type ListNodesUseCase interface {
	Execute(ctx context.Context, in usecase.ListNodesInput) (*domain.Grid, error)
}

type LoginUseCase interface {
	Execute(ctx context.Context, in usecase.LoginInput) (string, error)
}

type NodesHandler struct {
	list  ListNodesUseCase
	login LoginUseCase
}

func NewNodesHandler(list ListNodesUseCase, login LoginUseCase) *NodesHandler {
	return &NodesHandler{list: list, login: login}
}

// ListNodes godoc
// @Summary Node stats grid
// @Description Returns enriched node stats as grid columns and rows. Admin columns need an accepted Authorization header.
// @Tags Nodes
// @Produce json
// @Param Authorization header string false "Token returned by POST /login"
// @Param sort query string false "Column key to sort by (default id)"
// @Param desc query bool false "Sort descending"
// @Param q query string false "Case-insensitive substring filter"
// @Success 200 {object} GridResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /nodes [get]
func (h *NodesHandler) ListNodes(c *fiber.Ctx) error {
	in := usecase.ListNodesInput{
		Token:      c.Get(fiber.HeaderAuthorization),
		SortColumn: c.Query("sort", ""),
		Desc:       c.QueryBool("desc", false),
		Filter:     c.Query("q", ""),
	}

	g, err := h.list.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toGridResponse(g))
}

// Login godoc
// @Summary Obtain a stats authorization token
// @Description Builds a Basic token and checks it against the stats service. The token is not stored server-side.
// @Tags Nodes
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /login [post]
func (h *NodesHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_json",
			Message: "Request body must be valid JSON",
		})
	}

	token, err := h.login.Execute(c.UserContext(), usecase.LoginInput{Username: req.Username, Password: req.Password})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(LoginResponse{Token: token})
}

func writeError(c *fiber.Ctx, err error) error {
	var fetchErr *upstream.FetchError

	switch {
	case errors.Is(err, domain.ErrUnknownColumn), errors.Is(err, domain.ErrColumnNotSortable):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_sort",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrMissingCredentials):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_credentials",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "invalid_credentials",
			Message: err.Error(),
		})
	case errors.As(err, &fetchErr):
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Error:   "upstream_error",
			Message: fetchErr.Message,
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
