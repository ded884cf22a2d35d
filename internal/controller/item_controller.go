package controller

import (
	"devzen-be/internal/dto"
	"devzen-be/internal/pkg/serverutils"
	"devzen-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IItemController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	UpdateBookmark(ctx *fiber.Ctx) error
	CreateFolder(ctx *fiber.Ctx) error
	UpdateFolder(ctx *fiber.Ctx) error
	CreateFolderFromItems(ctx *fiber.Ctx) error
	Move(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Duplicate(ctx *fiber.Ctx) error
}

type itemController struct {
	itemService service.IItemService
}

func NewItemController(itemService service.IItemService) IItemController {
	return &itemController{
		itemService: itemService,
	}
}

func (c *itemController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/item/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("folder", c.CreateFolder)
	h.Post("folder/from-items", c.CreateFolderFromItems)
	h.Put("folder/:id", c.UpdateFolder)
	h.Put("bookmark/:id", c.UpdateBookmark)
	h.Put(":id/move", c.Move)
	h.Post(":id/duplicate", c.Duplicate)
	h.Delete(":id", c.Delete)
}

func (c *itemController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	spaceIdParam := ctx.Query("space_id")
	spaceId, err := uuid.Parse(spaceIdParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "space_id is required")
	}

	res, err := c.itemService.List(ctx.Context(), userId, spaceId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list items", res))
}

func (c *itemController) UpdateBookmark(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.UpdateBookmarkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.itemService.UpdateBookmark(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update bookmark", res))
}

func (c *itemController) CreateFolder(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateFolderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.itemService.CreateFolder(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create folder", res))
}

func (c *itemController) UpdateFolder(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.UpdateFolderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.itemService.UpdateFolder(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update folder", res))
}

func (c *itemController) CreateFolderFromItems(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateFolderFromItemsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.itemService.CreateFolderFromItems(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create folder from items", res))
}

func (c *itemController) Move(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.MoveItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.itemService.Move(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success move item", res))
}

func (c *itemController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.itemService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete item", nil))
}

func (c *itemController) Duplicate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.itemService.Duplicate(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success duplicate item", res))
}
