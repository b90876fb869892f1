package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MohammadCZeidan/Server-Homelife/config"
	"github.com/MohammadCZeidan/Server-Homelife/logger"
	"github.com/MohammadCZeidan/Server-Homelife/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AIService talks to an OpenAI-compatible chat completion endpoint.
// Every caller degrades gracefully: a missing key or failed call yields
// empty results, never an error surfaced to the HTTP client.
type AIService struct {
	db      *gorm.DB
	client  *http.Client
	apiKey  string
	baseURL string
	model   string
}

func NewAIService(db *gorm.DB) *AIService {
	return &AIService{
		db:      db,
		client:  &http.Client{Timeout: 30 * time.Second},
		apiKey:  config.GetEnv("OPENAI_API_KEY", ""),
		baseURL: config.GetEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		model:   config.GetEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (s *AIService) chat(system, user string, maxTokens int) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not configured")
	}

	body, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion returned %d: %s", resp.StatusCode, raw)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// WeeklySummary produces the 2-3 sentence insights blurb.
func (s *AIService) WeeklySummary(totalSpend float64, wasteCount, mealsPlanned, expiringCount int, expiringNames []string) (string, error) {
	prompt := fmt.Sprintf(
		"Generate a brief weekly summary (2-3 sentences) for a household that:\n"+
			"- Spent $%.2f on groceries\n"+
			"- Wasted %d expired items\n"+
			"- Planned %d meals\n"+
			"- Has %d items expiring soon: %s\n\n"+
			"Make it friendly, encouraging, and include one actionable tip.",
		totalSpend, wasteCount, mealsPlanned, expiringCount, strings.Join(expiringNames, ", "))

	return s.chat(
		"You are a helpful household food management assistant. Provide friendly, actionable weekly insights.",
		prompt, 150)
}

// GetRecipeSuggestionsFromPantry asks the model for recipe ideas based
// on what the household has in stock. An empty slice on failure.
func (s *AIService) GetRecipeSuggestionsFromPantry(householdID uint, limit int) []string {
	if limit <= 0 {
		limit = 5
	}

	var items []models.Inventory
	if err := s.db.
		Preload("Ingredient").
		Where("household_id = ? AND quantity > 0", householdID).
		Limit(30).
		Find(&items).Error; err != nil {
		logger.Error("AI suggestions pantry fetch failed",
			zap.Uint("household_id", householdID), zap.Error(err))
		return nil
	}

	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Ingredient.Name)
	}
	if len(names) == 0 {
		return nil
	}

	prompt := fmt.Sprintf(
		"Suggest %d recipe ideas using mostly these pantry ingredients: %s.\n"+
			"Reply with one recipe title per line, nothing else.",
		limit, strings.Join(names, ", "))

	reply, err := s.chat("You are a home cooking assistant.", prompt, 200)
	if err != nil {
		logger.Error("AI recipe suggestions failed",
			zap.Uint("household_id", householdID), zap.Error(err))
		return nil
	}

	return parseSuggestionLines(reply, limit)
}

// parseSuggestionLines strips list markers and blanks from a
// one-title-per-line reply, capped at limit.
func parseSuggestionLines(reply string, limit int) []string {
	var suggestions []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*0123456789. "))
		if line != "" {
			suggestions = append(suggestions, line)
		}
	}
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

type Substitution struct {
	MissingIngredient string `json:"missing_ingredient"`
	Substitution      string `json:"substitution"`
}

// GetSmartSubstitutions suggests a replacement for a missing
// ingredient. The fallback text mirrors the non-AI path.
func (s *AIService) GetSmartSubstitutions(ingredientID, householdID uint) Substitution {
	var ingredient models.Ingredient
	if err := s.db.
		Where("id = ? AND household_id = ?", ingredientID, householdID).
		First(&ingredient).Error; err != nil {
		return Substitution{}
	}

	sub := Substitution{MissingIngredient: ingredient.Name, Substitution: "No substitution found"}

	reply, err := s.chat(
		"You are a home cooking assistant.",
		fmt.Sprintf("Suggest one common kitchen substitution for %s. Reply with the substitution only.", ingredient.Name),
		60)
	if err != nil {
		logger.Warn("AI substitution failed",
			zap.Uint("ingredient_id", ingredientID), zap.Error(err))
		return sub
	}

	sub.Substitution = reply
	return sub
}

type SeedIngredient struct {
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type SeedRecipeLine struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type SeedRecipe struct {
	Title        string           `json:"title"`
	Instructions string           `json:"instructions"`
	Tags         []string         `json:"tags"`
	Servings     int              `json:"servings"`
	PrepTime     int              `json:"prep_time"`
	CookTime     int              `json:"cook_time"`
	Ingredients  []SeedRecipeLine `json:"ingredients"`
}

type SeedData struct {
	Ingredients []SeedIngredient `json:"ingredients"`
	Recipes     []SeedRecipe     `json:"recipes"`
}

// GenerateSeedData asks the model for starter ingredients and recipes
// for a fresh household. Empty on any failure.
func (s *AIService) GenerateSeedData(householdID uint) SeedData {
	reply, err := s.chat(
		"You generate seed data for a household food app. Reply with JSON only, no prose.",
		`Generate JSON with this shape:
{"ingredients":[{"name":"","unit":"g","calories":0,"protein":0,"carbs":0,"fat":0}],
"recipes":[{"title":"","instructions":"","tags":[],"servings":4,"prep_time":0,"cook_time":0,"ingredients":[{"name":"","amount":0,"unit":"g"}]}]}
Include 10 common ingredients and 5 simple recipes using only those ingredients.`,
		1500)
	if err != nil {
		logger.Error("AI seed data generation failed",
			zap.Uint("household_id", householdID), zap.Error(err))
		return SeedData{}
	}

	data, err := parseSeedReply(reply)
	if err != nil {
		logger.Error("AI seed data parse failed", zap.Error(err))
		return SeedData{}
	}
	return data
}

// parseSeedReply decodes the seed JSON, tolerating a fenced code block
// around it.
func parseSeedReply(reply string) (SeedData, error) {
	reply = strings.TrimSpace(reply)
	reply = strings.TrimPrefix(reply, "```json")
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")

	var data SeedData
	err := json.Unmarshal([]byte(strings.TrimSpace(reply)), &data)
	return data, err
}
