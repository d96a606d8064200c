package controller

import (
	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/pkg/serverutils"
	"ai-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITaskController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type taskController struct {
	taskService service.ITaskService
}

func NewTaskController(taskService service.ITaskService) ITaskController {
	return &taskController{
		taskService: taskService,
	}
}

func (c *taskController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/task/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *taskController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.taskService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create task", res))
}

func (c *taskController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.taskService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch tasks", res))
}

func (c *taskController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid task id")
	}

	var req dto.UpdateTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.taskService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "task not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update task", res))
}

func (c *taskController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid task id")
	}

	if err := c.taskService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete task", struct{}{}))
}
