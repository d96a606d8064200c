package controller

import (
	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/pkg/serverutils"
	"ai-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	assistantService service.IAssistantService
}

func NewChatController(assistantService service.IAssistantService) IChatController {
	return &chatController{
		assistantService: assistantService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Send)
	h.Get("history", c.History)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.Chat(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process message", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	limit := ctx.QueryInt("limit", 50)

	res, err := c.assistantService.History(ctx.Context(), userId, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch chat history", res))
}
