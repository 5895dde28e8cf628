// Package delivery получает информацию об обновлениях игры через AuthLite:
// зашифрованный запрос instruction возвращает список INI-файлов с описанием
// пакетов обновления.
package delivery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/sdgb/internal/crypto"
)

const (
	// DefaultEndpoint - адрес instruction-сервера AuthLite
	DefaultEndpoint = "http://at.sys-allnet.cn/net/delivery/instruction"
	// DefaultClientID - keychip, от имени которого запрашиваются обновления
	DefaultClientID = "A63E01C2805"
	DefaultTitleID  = "SDGB"
	DefaultTimeout  = 30 * time.Second

	userAgent = "SDGB;Windows/Lite"
	pragma    = "DFI"
)

var (
	// ErrNoInstruction - в ответе instruction нет параметра uri
	ErrNoInstruction = errors.New("instruction response has no uri")

	// ErrUnexpectedStatus is returned for any non-200 reply.
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// Config параметры клиента delivery
type Config struct {
	Endpoint string
	TitleID  string
	ClientID string
	Timeout  time.Duration
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() Config {
	return Config{
		Endpoint: DefaultEndpoint,
		TitleID:  DefaultTitleID,
		ClientID: DefaultClientID,
		Timeout:  DefaultTimeout,
	}
}

// Client запрашивает у AuthLite список обновлений
type Client struct {
	httpClient *http.Client
	cfg        Config
}

// NewClient создает клиент. Если httpClient nil, используется клиент с cfg.Timeout.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		httpClient: httpClient,
		cfg:        cfg,
	}
}

// Instruction отправляет запрос instruction для версии titleVer и возвращает
// расшифрованный ответ без управляющих символов.
func (c *Client) Instruction(ctx context.Context, titleVer string) (string, error) {
	form := fmt.Sprintf("title_id=%s&title_ver=%s&client_id=%s", c.cfg.TitleID, titleVer, c.cfg.ClientID)
	body, err := crypto.AuthLiteEncrypt([]byte(form))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt instruction request: %w", err)
	}

	data, err := c.do(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("instruction: %w", err)
	}

	plain, err := crypto.AuthLiteDecrypt(data)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt instruction response: %w", err)
	}

	raw := printable(strings.TrimSpace(string(plain)))
	slog.Debug("delivery instruction received", "raw", raw)
	return raw, nil
}

// printable оставляет только печатные ASCII-символы
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 31 && r < 127 {
			return r
		}
		return -1
	}, s)
}

// ParseInstruction извлекает из ответа instruction адреса INI-файлов.
// Пустые значения и "null" пропускаются; остаются только https-ссылки на .txt.
func ParseInstruction(raw string) ([]string, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse instruction: %w", err)
	}
	if !values.Has("uri") {
		return nil, ErrNoInstruction
	}

	var urls []string
	for _, u := range strings.Split(values.Get("uri"), "|") {
		if u == "" || u == "null" {
			continue
		}
		if !strings.HasPrefix(u, "https://") || !strings.HasSuffix(u, ".txt") {
			slog.Warn("ignoring delivery url", "url", u)
			continue
		}
		urls = append(urls, u)
	}
	return urls, nil
}

// FetchUpdate загружает и разбирает INI-файл обновления
func (c *Client) FetchUpdate(ctx context.Context, rawURL string) (*UpdateInfo, error) {
	data, err := c.do(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch update %s: %w", rawURL, err)
	}
	slog.Info("update info fetched", "url", rawURL)

	return ParseUpdate(data)
}

// Updates выполняет instruction и загружает все найденные описания обновлений
func (c *Client) Updates(ctx context.Context, titleVer string) ([]*UpdateInfo, error) {
	raw, err := c.Instruction(ctx, titleVer)
	if err != nil {
		return nil, err
	}
	urls, err := ParseInstruction(raw)
	if err != nil {
		return nil, err
	}

	updates := make([]*UpdateInfo, 0, len(urls))
	for _, u := range urls {
		info, err := c.FetchUpdate(ctx, u)
		if err != nil {
			return nil, err
		}
		info.Source = u
		updates = append(updates, info)
	}
	return updates, nil
}

func (c *Client) do(ctx context.Context, method, rawURL string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Pragma", pragma)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return data, nil
}
