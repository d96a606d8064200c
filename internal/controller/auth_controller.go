package controller

import (
	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/pkg/serverutils"
	"ai-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	GoogleLogin(ctx *fiber.Ctx) error
	GoogleCallback(ctx *fiber.Ctx) error
	IntegrationStatus(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	UpdateSettings(ctx *fiber.Ctx) error
}

type authController struct {
	oauthService service.IOAuthService
	userService  service.IUserService
}

func NewAuthController(oauthService service.IOAuthService, userService service.IUserService) IAuthController {
	return &authController{
		oauthService: oauthService,
		userService:  userService,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	auth := r.Group("/auth")
	auth.Get("google/login", c.GoogleLogin)
	auth.Get("google/callback", c.GoogleCallback)

	user := r.Group("/user/v1")
	user.Use(serverutils.JwtMiddleware)
	user.Get("me", c.Me)
	user.Put("settings", c.UpdateSettings)
	user.Get("integrations", c.IntegrationStatus)
}

func (c *authController) GoogleLogin(ctx *fiber.Ctx) error {
	url, err := c.oauthService.GetLoginURL()
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate login URL", dto.GoogleAuthURLResponse{Url: url}))
}

func (c *authController) GoogleCallback(ctx *fiber.Ctx) error {
	code := ctx.Query("code")
	if code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing authorization code")
	}

	res, err := c.oauthService.HandleCallback(ctx.Context(), code)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success authenticate", res))
}

func (c *authController) IntegrationStatus(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.oauthService.Status(ctx.Context(), userId)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch integration status", res))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.userService.Me(ctx.Context(), userId)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch profile", res))
}

func (c *authController) UpdateSettings(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpdateSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.UpdateSettings(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update settings", res))
}
