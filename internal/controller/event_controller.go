package controller

import (
	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/pkg/serverutils"
	"ai-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEventController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type eventController struct {
	eventService service.IEventService
}

func NewEventController(eventService service.IEventService) IEventController {
	return &eventController{
		eventService: eventService,
	}
}

func (c *eventController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/event/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Delete(":id", c.Delete)
}

func (c *eventController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.eventService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create event", res))
}

func (c *eventController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	limit := ctx.QueryInt("limit", 0)

	res, err := c.eventService.ListUpcoming(ctx.Context(), userId, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch events", res))
}

func (c *eventController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid event id")
	}

	if err := c.eventService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete event", struct{}{}))
}
