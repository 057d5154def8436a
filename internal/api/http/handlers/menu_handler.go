package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/yumyum-spot/menu-service/internal/api/dto"
	"github.com/yumyum-spot/menu-service/internal/domain"
	"github.com/yumyum-spot/menu-service/internal/service"
	apperrors "github.com/yumyum-spot/menu-service/pkg/util"
)

// MenuHandler exposes menu item endpoints.
type MenuHandler struct {
	menu *service.MenuService
}

// NewMenuHandler constructs handler.
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menu: menuService}
}

// List handles GET /api/menuitems.
func (h *MenuHandler) List(c *fiber.Ctx) error {
	items, err := h.menu.List(c.UserContext())
	if err != nil {
		return err
	}

	resp := make([]dto.MenuItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, menuItemResponse(&items[i]))
	}
	return c.JSON(dto.Success(resp))
}

// Get handles GET /api/menuitems/:id.
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	item, err := h.menu.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.Success(menuItemResponse(item)))
}

// Create handles POST /api/menuitems (multipart form, admin only).
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var req dto.MenuItemCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid payload"})
	}
	if msgs := dto.Validate(req); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError([]string{"Image file is required."})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.MapError(err)
	}
	defer file.Close()

	item, err := h.menu.Create(c.UserContext(), menuItemInput(req.Name, req.Description, req.Category, req.SpecialTag, req.Price), fileHeader.Filename, file)
	if err != nil {
		return err
	}

	c.Location("/api/menuitems/" + strconv.FormatInt(item.ID, 10))
	return c.Status(http.StatusCreated).JSON(dto.Success(menuItemResponse(item)))
}

// Update handles PUT /api/menuitems/:id (multipart form, admin only).
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.MenuItemUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid payload"})
	}
	if msgs := dto.Validate(req); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	var (
		reader   io.Reader
		filename string
		file     multipart.File
	)
	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err = fileHeader.Open()
		if err != nil {
			return apperrors.MapError(err)
		}
		defer file.Close()
		reader = file
		filename = fileHeader.Filename
	}

	item, err := h.menu.Update(c.UserContext(), id, menuItemInput(req.Name, req.Description, req.Category, req.SpecialTag, req.Price), filename, reader)
	if err != nil {
		return err
	}
	return c.JSON(dto.Success(menuItemResponse(item)))
}

// Delete handles DELETE /api/menuitems/:id (admin only).
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.menu.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.Success(nil))
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError([]string{"id must be a positive integer"})
	}
	return id, nil
}

func menuItemInput(name, description, category, specialTag string, price float64) service.MenuItemInput {
	return service.MenuItemInput{
		Name:        name,
		Description: description,
		Category:    category,
		SpecialTag:  specialTag,
		Price:       price,
	}
}

func menuItemResponse(item *domain.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		SpecialTag:  item.SpecialTag,
		Price:       item.Price,
		Image:       item.Image,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
