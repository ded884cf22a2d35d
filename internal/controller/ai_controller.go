package controller

import (
	"devzen-be/internal/dto"
	"devzen-be/internal/pkg/serverutils"
	"devzen-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAiController interface {
	RegisterRoutes(r fiber.Router)
	CreateBookmark(ctx *fiber.Ctx) error
	Summarize(ctx *fiber.Ctx) error
	Categorize(ctx *fiber.Ctx) error
	DiscernInput(ctx *fiber.Ctx) error
	SmartSearch(ctx *fiber.Ctx) error
	AnalyzeSpace(ctx *fiber.Ctx) error
	ChatInSpace(ctx *fiber.Ctx) error
	GenerateWorkspace(ctx *fiber.Ctx) error
	DevelopIdea(ctx *fiber.Ctx) error
	TextTool(ctx *fiber.Ctx) error
}

type aiController struct {
	aiService service.IAiService
}

func NewAiController(aiService service.IAiService) IAiController {
	return &aiController{
		aiService: aiService,
	}
}

func (c *aiController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("bookmark", c.CreateBookmark)
	h.Post("summarize", c.Summarize)
	h.Post("categorize", c.Categorize)
	h.Post("discern", c.DiscernInput)
	h.Post("smart-search", c.SmartSearch)
	h.Post("analyze-space", c.AnalyzeSpace)
	h.Post("chat", c.ChatInSpace)
	h.Post("generate-workspace", c.GenerateWorkspace)
	h.Post("develop-idea", c.DevelopIdea)
	h.Post("text-tool", c.TextTool)
}

func (c *aiController) CreateBookmark(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateBookmarkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.CreateBookmark(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create bookmark", res))
}

func (c *aiController) Summarize(ctx *fiber.Ctx) error {
	var req dto.SummarizeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.Summarize(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success summarize url", res))
}

func (c *aiController) Categorize(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CategorizeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.Categorize(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success categorize url", res))
}

func (c *aiController) DiscernInput(ctx *fiber.Ctx) error {
	var req dto.DiscernInputRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.DiscernInput(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success discern input", res))
}

func (c *aiController) SmartSearch(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SmartSearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.SmartSearch(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success smart search", res))
}

func (c *aiController) AnalyzeSpace(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.AnalyzeSpaceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.AnalyzeSpace(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyze space", res))
}

func (c *aiController) ChatInSpace(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ChatInSpaceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.ChatInSpace(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success chat in space", res))
}

func (c *aiController) GenerateWorkspace(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateWorkspaceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.GenerateWorkspace(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate workspace", res))
}

func (c *aiController) DevelopIdea(ctx *fiber.Ctx) error {
	var req dto.DevelopIdeaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.DevelopIdea(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success develop idea", res))
}

func (c *aiController) TextTool(ctx *fiber.Ctx) error {
	var req dto.TextToolRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.TextTool(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success apply text tool", res))
}
