package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// chatFallbackReply é a resposta fixa quando o serviço de chat falha
const chatFallbackReply = "Sorry, AI connection failed. Check API Key."

const chatSystemPrompt = "You are a helpful Admin Assistant. Answer concisely."

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// OpenAIChatClient encaminha mensagens para um endpoint de chat completion
// compatível com a API da OpenAI
type OpenAIChatClient struct {
	client   *resty.Client
	endpoint string
	apiKey   string
}

// NewOpenAIChatClient cria uma nova instância de OpenAIChatClient
func NewOpenAIChatClient(endpoint, apiKey string) *OpenAIChatClient {
	client := resty.New().
		SetTimeout(30 * time.Second)

	return &OpenAIChatClient{
		client:   client,
		endpoint: endpoint,
		apiKey:   apiKey,
	}
}

// Reply envia a mensagem do usuário e retorna o conteúdo da primeira
// escolha. Qualquer falha é devolvida ao caller, que decide o fallback.
func (c *OpenAIChatClient) Reply(ctx context.Context, message string) (string, error) {
	var result chatCompletionResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetBody(chatCompletionRequest{
			Model: "gpt-3.5-turbo",
			Messages: []chatMessage{
				{Role: "system", Content: chatSystemPrompt},
				{Role: "user", Content: message},
			},
		}).
		SetResult(&result).
		Post(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("chat completion returned %s", resp.Status())
	}
	if len(result.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return result.Choices[0].Message.Content, nil
}
