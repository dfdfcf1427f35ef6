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
)

// WhatsAppService talks to a self-hosted WAHA gateway to deliver reminder
// messages to clients.
type WhatsAppService struct {
	baseURL string
	apiKey  string
	session string
	client  *http.Client
}

func NewWhatsAppService() *WhatsAppService {
	url := os.Getenv("WAHA_BASE_URL")
	if url == "" {
		url = "http://waha:3000"
	}
	session := os.Getenv("WAHA_SESSION")
	if session == "" {
		session = "default"
	}
	return &WhatsAppService{
		baseURL: url,
		apiKey:  os.Getenv("WAHA_API_KEY"),
		session: session,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *WhatsAppService) makeRequest(method, endpoint string, payload interface{}) error {
	var bodyReader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		bodyReader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, fmt.Sprintf("%s%s", s.baseURL, endpoint), bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// NormalizeChatID converts a stored WhatsApp number into a WAHA chat id.
// Client records usually hold bare local numbers ("0300..."): the leading zero
// is replaced with the Pakistani country code. Group ids pass through as-is.
func NormalizeChatID(number string) string {
	chatID := strings.TrimSpace(number)

	if strings.HasSuffix(chatID, "@g.us") {
		return chatID
	}

	chatID = strings.TrimSuffix(chatID, "@c.us")

	if strings.HasPrefix(chatID, "+") {
		chatID = strings.TrimPrefix(chatID, "+")
	}
	if strings.HasPrefix(chatID, "0") {
		chatID = "92" + strings.TrimPrefix(chatID, "0")
	}

	return chatID + "@c.us"
}

func (s *WhatsAppService) sendSeen(chatID string) error {
	return s.makeRequest(http.MethodPost, "/api/sendSeen", map[string]string{
		"session": s.session,
		"chatId":  chatID,
	})
}

func (s *WhatsAppService) startTyping(chatID string) error {
	return s.makeRequest(http.MethodPost, "/api/startTyping", map[string]string{
		"session": s.session,
		"chatId":  chatID,
	})
}

func (s *WhatsAppService) stopTyping(chatID string) error {
	return s.makeRequest(http.MethodPost, "/api/stopTyping", map[string]string{
		"session": s.session,
		"chatId":  chatID,
	})
}

func (s *WhatsAppService) sendText(chatID, text string) error {
	return s.makeRequest(http.MethodPost, "/api/sendText", map[string]interface{}{
		"session": s.session,
		"chatId":  chatID,
		"text":    text,
	})
}

// SendMessage delivers a text message, mimicking a human sender
// (seen -> typing -> stop typing -> send) so the gateway session stays healthy.
func (s *WhatsAppService) SendMessage(number, text string) error {
	chatID := NormalizeChatID(number)

	if err := s.sendSeen(chatID); err != nil {
		return fmt.Errorf("failed to send seen: %w", err)
	}
	time.Sleep(100 * time.Millisecond)

	if err := s.startTyping(chatID); err != nil {
		return fmt.Errorf("failed to start typing: %w", err)
	}
	time.Sleep(150 * time.Millisecond)

	if err := s.stopTyping(chatID); err != nil {
		return fmt.Errorf("failed to stop typing: %w", err)
	}
	time.Sleep(50 * time.Millisecond)

	if err := s.sendText(chatID, text); err != nil {
		return fmt.Errorf("failed to send text: %w", err)
	}

	return nil
}
