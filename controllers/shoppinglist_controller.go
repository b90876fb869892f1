package controllers

import (
	"net/http"

	"github.com/MohammadCZeidan/Server-Homelife/config"
	"github.com/MohammadCZeidan/Server-Homelife/services"

	"github.com/gin-gonic/gin"
)

func GetShoppingLists(c *gin.Context) {
	svc := services.NewShoppingListService(config.DB)
	lists, err := svc.GetAll(c.GetUint("householdID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, lists)
}

func GetShoppingList(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	svc := services.NewShoppingListService(config.DB)
	list, err := svc.Get(id, c.GetUint("householdID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, list)
}

func CreateShoppingList(c *gin.Context) {
	var body struct {
		Title  string `json:"title" binding:"required"`
		WeekID *uint  `json:"week_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	svc := services.NewShoppingListService(config.DB)
	list, err := svc.Create(c.GetUint("householdID"), body.Title, body.WeekID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, list)
}

func UpdateShoppingList(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	var body services.ShoppingListUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	svc := services.NewShoppingListService(config.DB)
	list, err := svc.Update(id, c.GetUint("householdID"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, list)
}

func DeleteShoppingList(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	svc := services.NewShoppingListService(config.DB)
	if err := svc.Delete(id, c.GetUint("householdID")); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, nil)
}

func AddShoppingListItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	var body struct {
		IngredientID uint     `json:"ingredient_id" binding:"required"`
		Quantity     *float64 `json:"quantity" binding:"required"`
		UnitID       uint     `json:"unit_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	svc := services.NewShoppingListService(config.DB)
	item, err := svc.AddItem(id, c.GetUint("householdID"), body.IngredientID, *body.Quantity, body.UnitID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, item)
}

func UpdateShoppingListItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	var body services.ShoppingListItemUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	svc := services.NewShoppingListService(config.DB)
	item, err := svc.UpdateItem(id, c.GetUint("householdID"), itemID, body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, item)
}

func DeleteShoppingListItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	svc := services.NewShoppingListService(config.DB)
	if err := svc.DeleteItem(id, c.GetUint("householdID"), itemID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, nil)
}

func GenerateShoppingList(c *gin.Context) {
	var body struct {
		WeekID uint   `json:"week_id" binding:"required"`
		Title  string `json:"title"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	svc := services.NewShoppingListService(config.DB)
	list, err := svc.GenerateFromMealPlan(c.GetUint("householdID"), body.WeekID, body.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, list)
}
