package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/linkhub/internal/logger"
)

// DefaultTelegramAPI is the Bot API base URL.
const DefaultTelegramAPI = "https://api.telegram.org"

// TelegramService sends operator notifications to a Telegram chat.
type TelegramService struct {
	baseURL     string
	botToken    string
	adminChatID string
	client      *http.Client
}

// NewTelegramService creates a new TelegramService. Without a token or chat
// id every send is a no-op.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		baseURL:     DefaultTelegramAPI,
		botToken:    botToken,
		adminChatID: adminChatID,
		client:      &http.Client{Timeout: 5 * time.Second},
	}
}

// WithBaseURL points the service at another Bot API endpoint. An empty
// value keeps the current one.
func (s *TelegramService) WithBaseURL(baseURL string) *TelegramService {
	if trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/"); trimmed != "" {
		s.baseURL = trimmed
	}
	return s
}

// Enabled reports whether notifications will actually be delivered.
func (s *TelegramService) Enabled() bool {
	return s.botToken != "" && s.adminChatID != ""
}

type telegramMessage struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage sends a plain text message to chatID.
func (s *TelegramService) SendMessage(ctx context.Context, chatID, text string) error {
	if s.botToken == "" {
		logger.Debug("telegram bot token not configured")
		return nil
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.botToken)

	body, err := json.Marshal(telegramMessage{
		ChatID:                chatID,
		Text:                  text,
		DisableWebPagePreview: true,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	defer resp.Body.Close()

	var out telegramResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		logger.Warn("telegram response unreadable", zap.Int("status", resp.StatusCode), zap.Error(err))
		return fmt.Errorf("telegram: decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK || !out.OK {
		logger.Warn("telegram rejected message",
			zap.Int("status", resp.StatusCode),
			zap.String("description", out.Description),
		)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends text to the configured admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.SendMessage(ctx, s.adminChatID, text)
}
