package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Client minimal pour l'endpoint de complétion hébergé (API compatible OpenAI).
// Pas de retry ni de backoff : un échec remonte une fois à l'appelant.

const aiSystemPrompt = "Tu es le barista virtuel du café Arabica. " +
	"Tu réponds en français, brièvement et chaleureusement, aux questions sur " +
	"le café, le menu et les commandes. Si la question n'a aucun rapport avec " +
	"le café, redirige poliment vers le sujet."

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateAIReply appelle l'endpoint de complétion avec le message utilisateur
func GenerateAIReply(ctx context.Context, userMessage string) (string, error) {
	apiKey := os.Getenv("AI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("AI_API_KEY non configurée")
	}

	baseURL := os.Getenv("AI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	model := os.Getenv("AI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	reqBody := chatCompletionRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: aiSystemPrompt},
			{Role: "user", Content: userMessage},
		},
		MaxTokens:   300,
		Temperature: 0.7,
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("réponse IA illisible: %v", err)
	}

	if parsed.Error != nil {
		return "", fmt.Errorf("erreur API IA: %s", parsed.Error.Message)
	}

	if resp.StatusCode != http.StatusOK || len(parsed.Choices) == 0 {
		return "", fmt.Errorf("l'API IA a renvoyé le statut %d", resp.StatusCode)
	}

	return parsed.Choices[0].Message.Content, nil
}
