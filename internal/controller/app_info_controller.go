package controller

import (
	"devzen-be/internal/dto"
	"devzen-be/internal/pkg/serverutils"
	"devzen-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAppInfoController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type appInfoController struct {
	appInfoService service.IAppInfoService
}

func NewAppInfoController(appInfoService service.IAppInfoService) IAppInfoController {
	return &appInfoController{
		appInfoService: appInfoService,
	}
}

func (c *appInfoController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/app-info/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Get)
	h.Put("", c.Update)
}

func (c *appInfoController) Get(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.appInfoService.Get(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get app info", res))
}

func (c *appInfoController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpdateAppInfoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.appInfoService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update app info", res))
}
