package controller

import (
	"ai-assistant-be/internal/pkg/serverutils"
	"ai-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEmailController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	MarkRead(ctx *fiber.Ctx) error
}

type emailController struct {
	emailService service.IEmailService
}

func NewEmailController(emailService service.IEmailService) IEmailController {
	return &emailController{
		emailService: emailService,
	}
}

func (c *emailController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/email/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Patch(":id/read", c.MarkRead)
}

func (c *emailController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	limit := ctx.QueryInt("limit", 20)

	res, err := c.emailService.List(ctx.Context(), userId, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch emails", res))
}

func (c *emailController) MarkRead(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email id")
	}

	res, err := c.emailService.MarkRead(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "email not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success mark email read", res))
}
