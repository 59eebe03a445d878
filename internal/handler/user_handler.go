// Package handler exposes the REST surface. Every outcome, success or
// failure, is wrapped in the uniform response envelope.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopnet/user-service/internal/model"
	"github.com/shopnet/user-service/internal/response"
)

// UserServicer defines the operations UserHandler needs from the service
// layer.
type UserServicer interface {
	Save(ctx context.Context, req *model.UserEditRequest) (*model.UserEditRequest, error)
	GetByID(ctx context.Context, id int64) (*model.UserView, bool, error)
	GetAll(ctx context.Context) ([]model.UserView, error)
	Update(ctx context.Context, req *model.UserEditRequest) (*model.UserEditRequest, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	OrdersForUser(ctx context.Context, userID int64) ([]model.Order, error)
}

// UserHandler translates service outcomes into envelopes and status codes.
//
// updateMissingAsError controls the inherited quirk on PUT: by default an
// update on a missing id answers 200 with an empty placeholder object, the
// behavior this API has always had. Setting the flag turns it into a 404
// error envelope instead.
type UserHandler struct {
	service              UserServicer
	updateMissingAsError bool
}

func NewUserHandler(service UserServicer, updateMissingAsError bool) *UserHandler {
	return &UserHandler{service: service, updateMissingAsError: updateMissingAsError}
}

// RegisterRoutes mounts the user endpoints on router.
func (h *UserHandler) RegisterRoutes(router gin.IRouter) {
	users := router.Group("/users")
	{
		users.POST("", h.SaveUser)
		users.GET("/all", h.GetAllUsers)
		users.GET("/:id", h.GetUser)
		users.PUT("", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
		users.GET("/orders/:userId", h.GetUserOrders)
	}
}

func (h *UserHandler) SaveUser(c *gin.Context) {
	var req model.UserEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid request body", nil))
		return
	}

	saved, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "save user", err)
		return
	}
	c.JSON(http.StatusCreated, response.OK("User saved successfully", saved))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "get user", err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, response.OK("User not found", nil))
		return
	}
	c.JSON(http.StatusOK, response.OK("Query successful", view))
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	views, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeError(c, "list users", err)
		return
	}
	if len(views) == 0 {
		c.JSON(http.StatusOK, response.OK("No records found", nil))
		return
	}
	c.JSON(http.StatusOK, response.OK("Query successful", views))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req model.UserEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid request body", nil))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), &req)
	if errors.Is(err, model.ErrUserNotFound) {
		if h.updateMissingAsError {
			c.JSON(http.StatusNotFound, response.Fail("User not found", nil))
			return
		}
		// Inherited contract: a miss on update is a 200 success envelope
		// carrying an empty placeholder, unlike the structured 0 on delete.
		c.JSON(http.StatusOK, response.OK("User not found", model.UserEditRequest{}))
		return
	}
	if err != nil {
		h.writeError(c, "update user", err)
		return
	}
	c.JSON(http.StatusOK, response.OK("User updated successfully", updated))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	found, err := h.service.DeleteByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "delete user", err)
		return
	}
	// The wire contract reports 1 for found-and-removed, 0 for not-found.
	if !found {
		c.JSON(http.StatusOK, response.OK("User not found", 0))
		return
	}
	c.JSON(http.StatusOK, response.OK("User deleted successfully", 1))
}

func (h *UserHandler) GetUserOrders(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	ordersList, err := h.service.OrdersForUser(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, "list user orders", err)
		return
	}
	if len(ordersList) == 0 {
		c.JSON(http.StatusOK, response.OK("No records found", nil))
		return
	}
	c.JSON(http.StatusOK, response.OK("Query successful", ordersList))
}

// writeError maps service failures onto the error taxonomy. Validation and
// constraint violations answer 400 with structured detail; everything else
// is logged server-side and answered with a generic 500.
func (h *UserHandler) writeError(c *gin.Context, op string, err error) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, response.Fail("Please review the submitted data",
			gin.H{"fields": validationErr.Violations}))
	case errors.Is(err, model.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, response.Fail("Error: duplicate email", nil))
	default:
		slog.Error("request failed", slog.String("op", op), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, response.Fail("Internal Server Error", nil))
	}
}

func pathID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid "+param+" parameter", nil))
		return 0, false
	}
	return id, true
}
