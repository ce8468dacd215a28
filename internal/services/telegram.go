package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// TelegramService handles sending notifications to Telegram.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to the specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		log.Println("[Telegram] Admin chat ID not configured")
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// LeadNotification contains lead data for the new-lead message.
type LeadNotification struct {
	FormNumber  string
	Name        string
	Phone       string
	Vehicle     string
	Condition   string
	TitleStatus string
	Address     string
}

// NotifyNewLead tells the admin chat a quote request just arrived.
func (s *TelegramService) NotifyNewLead(lead LeadNotification) error {
	if s.adminChatID == "" {
		return nil
	}

	message := fmt.Sprintf(`<b>🚗 NEW QUOTE REQUEST!</b>
<b>📋 Form:</b> %s
<b>👤 Customer:</b> %s
<b>📞 Phone:</b> %s
<b>🔧 Vehicle:</b> %s
<b>📍 Condition:</b> %s
<b>📄 Title:</b> %s
<b>🏠 Pickup:</b> %s
━━━━━━━━━━━━━━━━━━`,
		lead.FormNumber,
		lead.Name,
		lead.Phone,
		lead.Vehicle,
		lead.Condition,
		lead.TitleStatus,
		lead.Address,
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}
