package controller

import (
	"ai-assistant-be/internal/pkg/serverutils"
	"ai-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISuggestionController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	MarkRead(ctx *fiber.Ctx) error
	ClearAll(ctx *fiber.Ctx) error
}

type suggestionController struct {
	suggestionService service.ISuggestionService
}

func NewSuggestionController(suggestionService service.ISuggestionService) ISuggestionController {
	return &suggestionController{
		suggestionService: suggestionService,
	}
}

func (c *suggestionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/suggestion/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Patch(":id/read", c.MarkRead)
	h.Delete("", c.ClearAll)
}

func (c *suggestionController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	unreadOnly := ctx.QueryBool("unread", false)

	res, err := c.suggestionService.List(ctx.Context(), userId, unreadOnly)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch suggestions", res))
}

func (c *suggestionController) MarkRead(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid suggestion id")
	}

	res, err := c.suggestionService.MarkRead(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "suggestion not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success mark suggestion read", res))
}

func (c *suggestionController) ClearAll(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	if err := c.suggestionService.ClearAll(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success clear suggestions", struct{}{}))
}
