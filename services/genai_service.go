package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"backend/models"
	"backend/utils"
)

// GenAIService talks to the HuggingFace Inference API for the two free-text
// generation needs: per-food calorie estimates and daily meal plans.
type GenAIService struct {
	client  *http.Client
	token   string
	model   string
	baseURL string
}

func NewGenAIService() *GenAIService {
	base := os.Getenv("HUGGINGFACE_URL")
	if base == "" {
		base = "https://api-inference.huggingface.co"
	}
	return &GenAIService{
		client:  &http.Client{Timeout: 15 * time.Second}, // give a bit more time
		token:   os.Getenv("HUGGINGFACE_TOKEN"),
		model:   "google/flan-t5-small",
		baseURL: base,
	}
}

// generate runs one text2text call and returns the raw generated text.
func (g *GenAIService) generate(prompt string, maxNewTokens int) (string, error) {
	if g.token == "" {
		return "", fmt.Errorf("HUGGINGFACE_TOKEN not set")
	}

	body := map[string]any{
		"inputs": prompt,
		"parameters": map[string]any{
			"max_new_tokens": maxNewTokens,
			"temperature":    0.2,
		},
	}
	b, _ := json.Marshal(body)

	req, _ := http.NewRequest(
		"POST",
		fmt.Sprintf("%s/models/%s", g.baseURL, g.model),
		bytes.NewReader(b),
	)
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("Content-Type", "application/json")
	// Ensure HF loads cold models instead of returning a "loading" error
	req.Header.Set("x-wait-for-model", "true")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("hf request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read hf response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var hfErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &hfErr) == nil && hfErr.Error != "" {
			return "", fmt.Errorf("hf api error (%d): %s", resp.StatusCode, hfErr.Error)
		}
		return "", fmt.Errorf("hf api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var hfOut []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBytes, &hfOut); err != nil {
		bodyPreview := string(respBytes)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "..."
		}
		return "", fmt.Errorf("decode hf response error: %v | body: %s", err, bodyPreview)
	}
	if len(hfOut) == 0 || strings.TrimSpace(hfOut[0].GeneratedText) == "" {
		return "", fmt.Errorf("empty response from hf")
	}
	return hfOut[0].GeneratedText, nil
}

// EstimateCalories asks for a single kcal figure for one serving of the
// given food. The prompt pins the answer to a bare number so the digit
// filter in utils.ParseCalorieText stays reliable.
func (g *GenAIService) EstimateCalories(foodName string) (int, error) {
	prompt := fmt.Sprintf(
		"How many calories are in one serving of %s? Answer with a single number only, no units.",
		foodName,
	)
	text, err := g.generate(prompt, 16)
	if err != nil {
		return 0, err
	}
	return utils.ParseCalorieText(text), nil
}

// GenerateMealPlan returns the day's meal suggestions, one per line.
func (g *GenAIService) GenerateMealPlan(u *models.User) ([]string, error) {
	var sb bytes.Buffer
	sb.WriteString("Suggest a one-day meal plan (breakfast, lunch, dinner and one snack) for a person with:\n")
	sb.WriteString(fmt.Sprintf("- weight: %.0f kg\n", u.WeightKg))
	sb.WriteString(fmt.Sprintf("- height: %.0f cm\n", u.HeightCm))
	sb.WriteString(fmt.Sprintf("- activity level: %s\n", u.ActivityLevel))
	if u.DietaryPreference != "" {
		sb.WriteString(fmt.Sprintf("- dietary preference: %s\n", u.DietaryPreference))
	}
	if u.CalorieGoal > 0 {
		sb.WriteString(fmt.Sprintf("- daily calorie target: %d kcal\n", u.CalorieGoal))
	}
	sb.WriteString("\nReturn one meal per line, no numbering or extra commentary.")

	text, err := g.generate(sb.String(), 192)
	if err != nil {
		return nil, err
	}

	lines := SplitPlanLines(text)
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty meal plan from hf")
	}
	return lines, nil
}

// SplitPlanLines breaks generated plan text on line boundaries, dropping
// blanks and stripping common bullet prefixes.
func SplitPlanLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimLeft(line, "-•* \t")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
