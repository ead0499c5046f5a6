package controller

import (
	"github.com/237films-bot/subtrack/internal/pkg/serverutils"
	"github.com/237films-bot/subtrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStatsController interface {
	RegisterRoutes(r fiber.Router)
	Costs(ctx *fiber.Ctx) error
	Timeline(ctx *fiber.Ctx) error
	Credits(ctx *fiber.Ctx) error
	Presets(ctx *fiber.Ctx) error
}

type statsController struct {
	service service.IStatsService
	jwt     fiber.Handler
}

func NewStatsController(service service.IStatsService, jwt fiber.Handler) IStatsController {
	return &statsController{service: service, jwt: jwt}
}

func (c *statsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/stats")
	h.Use(c.jwt)
	h.Get("/costs", c.Costs)
	h.Get("/timeline", c.Timeline)
	h.Get("/credits", c.Credits)

	p := r.Group("/presets")
	p.Use(c.jwt)
	p.Get("", c.Presets)
}

func (c *statsController) Costs(ctx *fiber.Ctx) error {
	res, err := c.service.CostOverview(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get cost overview", res))
}

func (c *statsController) Timeline(ctx *fiber.Ctx) error {
	res, err := c.service.Timeline(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get renewal timeline", res))
}

func (c *statsController) Credits(ctx *fiber.Ctx) error {
	res, err := c.service.CreditStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get credit stats", res))
}

func (c *statsController) Presets(ctx *fiber.Ctx) error {
	res, err := c.service.Presets(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get service presets", res))
}
