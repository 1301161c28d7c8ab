package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"quickbites/app/services"
	"quickbites/pkg/response"
)

type MenuController struct {
	menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{menu: menu}
}

// List returns all available menu items.
func (c *MenuController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.menu.ListAvailable()
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]interface{}{"items": items})
}

// Show returns one menu item by id, available or not.
func (c *MenuController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid menu item id")
		return
	}

	item, err := c.menu.GetByID(uint(id))
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]interface{}{"item": item})
}
