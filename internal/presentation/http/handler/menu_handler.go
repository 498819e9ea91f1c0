package handler

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/snacksbunk-pos/internal/application/service"
	"github.com/sangkips/snacksbunk-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/snacksbunk-pos/internal/presentation/http/dto/response"
)

// MenuHandler handles menu catalog HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List handles listing menu items, optionally filtered by ?search=
func (h *MenuHandler) List(c *gin.Context) {
	var filter request.MenuFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	items, err := h.menuService.ListItems(c.Request.Context(), filter.Search)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu items retrieved successfully", items)
}

// Get handles fetching one menu item
func (h *MenuHandler) Get(c *gin.Context) {
	item, err := h.menuService.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu item retrieved successfully", item)
}

// Create handles adding a menu item
func (h *MenuHandler) Create(c *gin.Context) {
	var req request.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.CreateItem(c.Request.Context(), req.ToDraft())
	if err != nil {
		response.Error(c, err)
		return
	}
	log.Printf("[menu] %s added item %s", actor(c), item.ID)
	response.Created(c, "Menu item created successfully", item)
}

// Update handles editing a menu item
func (h *MenuHandler) Update(c *gin.Context) {
	var req request.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.UpdateItem(c.Request.Context(), c.Param("id"), req.ToDraft())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu item updated successfully", item)
}
