package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"deskbot/internal/application/conversation/actions"
	sharedConfig "deskbot/internal/shared/config"
	"deskbot/internal/shared/logger"
)

// BotService provides Telegram Bot API operations. It is the single
// implementation behind the conversation responder, the notification
// sender and the profile source.
type BotService struct {
	config      sharedConfig.TelegramConfig
	httpClient  *http.Client
	baseURL     string
	botUsername string // cached from getMe
	logger      logger.Interface
}

// NewBotService creates a new Telegram bot service.
func NewBotService(config sharedConfig.TelegramConfig, log logger.Interface) *BotService {
	s := &BotService{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: fmt.Sprintf("https://api.telegram.org/bot%s", config.BotToken),
		logger:  log,
	}
	if config.BotToken != "" {
		if err := s.fetchBotUsername(); err != nil {
			log.Warnw("failed to fetch bot username", "error", err)
		}
	}
	return s
}

// SetWebhook registers the webhook URL for receiving updates.
func (s *BotService) SetWebhook(webhookURL string) error {
	body := map[string]any{
		"url": webhookURL,
	}
	if s.config.WebhookSecret != "" {
		body["secret_token"] = s.config.WebhookSecret
	}
	return s.makeRequest(context.Background(), fmt.Sprintf("%s/setWebhook", s.baseURL), body)
}

// DeleteWebhook removes the webhook so long polling can take over.
func (s *BotService) DeleteWebhook() error {
	return s.makeRequest(context.Background(), fmt.Sprintf("%s/deleteWebhook", s.baseURL), nil)
}

// GetUpdatesWithContext retrieves updates using long polling. The context
// cancels the in-flight request for graceful shutdown.
func (s *BotService) GetUpdatesWithContext(ctx context.Context, offset int64, timeout int) ([]Update, error) {
	apiURL := fmt.Sprintf("%s/getUpdates", s.baseURL)

	body := map[string]any{
		"timeout": timeout,
	}
	if offset > 0 {
		body["offset"] = offset
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	// The long poll must outlive the regular client timeout.
	client := &http.Client{
		Timeout: time.Duration(timeout+10) * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var result getUpdatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !result.OK {
		return nil, fmt.Errorf("telegram API error: %s", result.Description)
	}

	return result.Result, nil
}

// SendMessage sends an HTML-formatted message, splitting it when it exceeds
// the Telegram length limit.
func (s *BotService) SendMessage(ctx context.Context, chatID int64, text string) error {
	for _, chunk := range splitMessage(text, maxMessageLength) {
		if err := s.sendChunk(ctx, chatID, chunk, nil); err != nil {
			return err
		}
	}
	return nil
}

// SendMessageWithKeyboard sends an HTML-formatted message with an inline
// keyboard. On a split, the keyboard rides on the final chunk.
func (s *BotService) SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard actions.Keyboard) error {
	chunks := splitMessage(text, maxMessageLength)
	for i, chunk := range chunks {
		var markup *InlineKeyboardMarkup
		if i == len(chunks)-1 {
			markup = toInlineMarkup(keyboard)
		}
		if err := s.sendChunk(ctx, chatID, chunk, markup); err != nil {
			return err
		}
	}
	return nil
}

func (s *BotService) sendChunk(ctx context.Context, chatID int64, text string, markup *InlineKeyboardMarkup) error {
	body := map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	if markup != nil {
		body["reply_markup"] = markup
	}
	return s.makeRequest(ctx, fmt.Sprintf("%s/sendMessage", s.baseURL), body)
}

// EditMessage rewrites a previously sent message in place. When the edit
// fails, typically because the user deleted the message, it falls back to
// sending a fresh one.
func (s *BotService) EditMessage(ctx context.Context, chatID, messageID int64, text string, keyboard actions.Keyboard) error {
	body := map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
		"parse_mode": "HTML",
	}
	if markup := toInlineMarkup(keyboard); markup != nil {
		body["reply_markup"] = markup
	}

	err := s.makeRequest(ctx, fmt.Sprintf("%s/editMessageText", s.baseURL), body)
	if err == nil {
		return nil
	}
	s.logger.Debugw("edit failed, sending fresh message", "chat_id", chatID, "message_id", messageID, "error", err)
	return s.SendMessageWithKeyboard(ctx, chatID, text, keyboard)
}

// AnswerCallback answers a callback query so the client stops its spinner.
func (s *BotService) AnswerCallback(ctx context.Context, callbackID, text string, showAlert bool) error {
	body := map[string]any{
		"callback_query_id": callbackID,
	}
	if text != "" {
		body["text"] = text
	}
	if showAlert {
		body["show_alert"] = true
	}
	return s.makeRequest(ctx, fmt.Sprintf("%s/answerCallbackQuery", s.baseURL), body)
}

// GetChatProfile reads the current profile of a private chat. The profile
// sweep uses this to keep stored usernames in sync.
func (s *BotService) GetChatProfile(ctx context.Context, userID int64) (username, firstName, lastName string, err error) {
	body := map[string]any{"chat_id": userID}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/getChat", s.baseURL), bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", "", "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var result getChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", "", "", fmt.Errorf("failed to decode response: %w", err)
	}
	if !result.OK {
		return "", "", "", fmt.Errorf("telegram API error: %s", result.Description)
	}

	return result.Result.Username, result.Result.FirstName, result.Result.LastName, nil
}

// toInlineMarkup converts the transport-neutral keyboard into the wire form.
func toInlineMarkup(keyboard actions.Keyboard) *InlineKeyboardMarkup {
	if len(keyboard) == 0 {
		return nil
	}
	markup := &InlineKeyboardMarkup{InlineKeyboard: make([][]InlineKeyboardButton, 0, len(keyboard))}
	for _, row := range keyboard {
		if len(row) == 0 {
			continue
		}
		buttons := make([]InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, InlineKeyboardButton{Text: b.Label, CallbackData: b.Payload})
		}
		markup.InlineKeyboard = append(markup.InlineKeyboard, buttons)
	}
	if len(markup.InlineKeyboard) == 0 {
		return nil
	}
	return markup
}

func (s *BotService) fetchBotUsername() error {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/getMe", s.baseURL), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var result getMeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram API error: %s", result.Description)
	}

	s.botUsername = result.Result.Username
	return nil
}

// GetBotUsername returns the cached bot username.
func (s *BotService) GetBotUsername() string {
	return s.botUsername
}

func (s *BotService) makeRequest(ctx context.Context, url string, body map[string]any) error {
	var req *http.Request
	var err error

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !result.OK {
		return fmt.Errorf("telegram API error: %s", result.Description)
	}

	return nil
}
