package controller

import (
	"fmt"

	"github.com/237films-bot/subtrack/internal/dto"
	"github.com/237films-bot/subtrack/internal/pkg/apperror"
	"github.com/237films-bot/subtrack/internal/pkg/serverutils"
	"github.com/237films-bot/subtrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Renew(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	service service.ISubscriptionService
	jwt     fiber.Handler
}

func NewSubscriptionController(service service.ISubscriptionService, jwt fiber.Handler) ISubscriptionController {
	return &subscriptionController{service: service, jwt: jwt}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subscriptions")
	h.Use(c.jwt)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/renew", c.Renew)
	h.Get(":id/history", c.History)
}

func parseIDParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id", apperror.ErrValidation)
	}
	return id, nil
}

func (c *subscriptionController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get subscriptions", res))
}

func (c *subscriptionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create subscription", res))
}

func (c *subscriptionController) Update(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update subscription", res))
}

func (c *subscriptionController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete subscription", res))
}

func (c *subscriptionController) Renew(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	// Body is optional; a bare POST renews without a note.
	var req dto.RenewRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}

	res, err := c.service.Renew(ctx.Context(), id, req.Note, false)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success renew subscription", res))
}

func (c *subscriptionController) History(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.History(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get renewal history", res))
}
