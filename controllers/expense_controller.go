package controllers

import (
	"net/http"
	"time"

	"github.com/MohammadCZeidan/Server-Homelife/config"
	"github.com/MohammadCZeidan/Server-Homelife/services"

	"github.com/gin-gonic/gin"
)

type expenseRequest struct {
	Store       string   `json:"store"`
	Amount      *float64 `json:"amount"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Category    string   `json:"category"`
	Note        string   `json:"note"`
	ReceiptLink string   `json:"receipt_link"`
}

func GetExpenses(c *gin.Context) {
	svc := services.NewExpenseService(config.DB)
	expenses, err := svc.GetAll(c.GetUint("householdID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, expenses)
}

func GetExpense(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	svc := services.NewExpenseService(config.DB)
	expense, err := svc.Get(id, c.GetUint("householdID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, expense)
}

func CreateExpense(c *gin.Context) {
	var body expenseRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if body.Amount == nil || body.Date == "" {
		respondFailure(c, http.StatusUnprocessableEntity, "amount and date are required")
		return
	}
	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, "invalid date")
		return
	}

	svc := services.NewExpenseService(config.DB)
	expense, err := svc.Create(c.GetUint("householdID"), services.ExpenseInput{
		Store:       body.Store,
		Amount:      *body.Amount,
		Date:        date,
		Category:    body.Category,
		Note:        body.Note,
		ReceiptLink: body.ReceiptLink,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, expense)
}

func UpdateExpense(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	var body struct {
		Store       *string  `json:"store"`
		Amount      *float64 `json:"amount"`
		Date        *string  `json:"date"`
		Category    *string  `json:"category"`
		Note        *string  `json:"note"`
		ReceiptLink *string  `json:"receipt_link"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	update := services.ExpenseUpdate{
		Store:       body.Store,
		Amount:      body.Amount,
		Category:    body.Category,
		Note:        body.Note,
		ReceiptLink: body.ReceiptLink,
	}
	if body.Date != nil {
		date, err := time.Parse("2006-01-02", *body.Date)
		if err != nil {
			respondFailure(c, http.StatusUnprocessableEntity, "invalid date")
			return
		}
		update.Date = &date
	}

	svc := services.NewExpenseService(config.DB)
	expense, err := svc.Update(id, c.GetUint("householdID"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, expense)
}

func DeleteExpense(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	svc := services.NewExpenseService(config.DB)
	if err := svc.Delete(id, c.GetUint("householdID")); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, nil)
}

func GetExpenseSummary(c *gin.Context) {
	svc := services.NewExpenseService(config.DB)
	summary, err := svc.GetSummary(c.GetUint("householdID"), c.DefaultQuery("period", "week"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, summary)
}
