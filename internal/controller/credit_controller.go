package controller

import (
	"github.com/237films-bot/subtrack/internal/dto"
	"github.com/237films-bot/subtrack/internal/pkg/serverutils"
	"github.com/237films-bot/subtrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICreditController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ApplyUsage(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type creditController struct {
	service service.ICreditService
	jwt     fiber.Handler
}

func NewCreditController(service service.ICreditService, jwt fiber.Handler) ICreditController {
	return &creditController{service: service, jwt: jwt}
}

func (c *creditController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/credits")
	h.Use(c.jwt)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/usage", c.ApplyUsage)
	h.Get(":id/history", c.History)
}

func (c *creditController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get credit pools", res))
}

func (c *creditController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCreditPoolRequest
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
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create credit pool", res))
}

func (c *creditController) Update(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateCreditPoolRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Success update credit pool", res))
}

func (c *creditController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete credit pool", res))
}

func (c *creditController) ApplyUsage(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateUsageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return err
	}

	res, err := c.service.ApplyUsage(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update credit usage", res))
}

func (c *creditController) History(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.History(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get credit history", res))
}
