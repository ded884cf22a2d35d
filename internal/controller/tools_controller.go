package controller

import (
	"devzen-be/internal/dto"
	"devzen-be/internal/pkg/serverutils"
	"devzen-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IToolsController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Import(ctx *fiber.Ctx) error
}

type toolsController struct {
	toolsService service.IToolsService
}

func NewToolsController(toolsService service.IToolsService) IToolsController {
	return &toolsController{
		toolsService: toolsService,
	}
}

func (c *toolsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tools/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("import", c.Import)
}

func (c *toolsController) List(ctx *fiber.Ctx) error {
	var req dto.ListToolsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.toolsService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list tools", res))
}

func (c *toolsController) Import(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ImportToolRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.toolsService.Import(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success import tool", res))
}
