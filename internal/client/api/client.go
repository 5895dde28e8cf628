package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/ratelimit"

	"github.com/iudanet/sdgb/internal/client/retry"
	"github.com/iudanet/sdgb/internal/crypto"
)

// Значения по умолчанию для Config
const (
	DefaultBaseURL         = "https://maimai-gm.wahlap.com:42081/Maimai2Servlet/"
	DefaultEncodingVersion = "1.50"
	DefaultTimeout         = 30 * time.Second
)

// Config описывает транспорт до игрового сервера
type Config struct {
	BaseURL            string
	Salt               string
	ObfuscateParam     string
	AESKey             string
	AESIV              string
	EncodingVersion    string // значение заголовка Mai-Encoding
	ProxyURL           string
	Timeout            time.Duration
	RetryDelay         time.Duration
	MaxAttempts        int
	RateLimit          int // запросов в секунду, 0 - без ограничения
	InsecureSkipVerify bool
}

// DefaultConfig возвращает конфигурацию боевого сервера
func DefaultConfig() Config {
	return Config{
		BaseURL:            DefaultBaseURL,
		Salt:               crypto.DefaultAPISalt,
		ObfuscateParam:     crypto.DefaultObfuscateParam,
		AESKey:             crypto.DefaultTransportKey,
		AESIV:              crypto.DefaultTransportIV,
		EncodingVersion:    DefaultEncodingVersion,
		Timeout:            DefaultTimeout,
		RetryDelay:         retry.DefaultDelay,
		MaxAttempts:        retry.DefaultMaxAttempts,
		InsecureSkipVerify: true,
	}
}

// CallOptions переопределяет параметры одного вызова. Нулевые поля берутся из Config.
type CallOptions struct {
	Timeout     time.Duration
	MaxAttempts int
	Quiet       bool // не логировать тела запросов и ответов
}

// Client представляет HTTP клиент игрового сервера
type Client struct {
	httpClient      *http.Client
	resolver        *Resolver
	codec           *crypto.Codec
	limiter         ratelimit.Limiter
	encodingVersion string
	timeout         time.Duration
	policy          retry.Policy
}

// NewClient создает новый API клиент
func NewClient(cfg Config) (*Client, error) {
	codec, err := crypto.NewCodec([]byte(cfg.AESKey), []byte(cfg.AESIV))
	if err != nil {
		return nil, fmt.Errorf("failed to create codec: %w", err)
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DisableCompression:    true,
		ExpectContinueTimeout: time.Second,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.InsecureSkipVerify, // у игрового сервера самоподписанный сертификат
		},
	}
	if cfg.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RateLimit > 0 {
		limiter = ratelimit.New(cfg.RateLimit)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	encodingVersion := cfg.EncodingVersion
	if encodingVersion == "" {
		encodingVersion = DefaultEncodingVersion
	}

	return &Client{
		httpClient:      &http.Client{Transport: &loggingTransport{next: transport}},
		resolver:        NewResolver(cfg.BaseURL, cfg.Salt, cfg.ObfuscateParam),
		codec:           codec,
		limiter:         limiter,
		encodingVersion: encodingVersion,
		timeout:         timeout,
		policy: retry.Policy{
			MaxAttempts: cfg.MaxAttempts,
			Delay:       cfg.RetryDelay,
		},
	}, nil
}

// Resolver возвращает резолвер эндпоинтов клиента
func (c *Client) Resolver() *Resolver {
	return c.resolver
}

// Call выполняет вызов apiName с параметрами по умолчанию
func (c *Client) Call(ctx context.Context, apiName string, userID int64, body, result any) error {
	return c.CallWith(ctx, CallOptions{}, apiName, userID, body, result)
}

// CallWith шифрует body, отправляет его на эндпоинт apiName и декодирует ответ в result.
// Статус, отличный от 200, возвращается сразу; ошибки декодирования и сети повторяются.
func (c *Client) CallWith(ctx context.Context, opts CallOptions, apiName string, userID int64, body, result any) error {
	endpoint := c.resolver.Resolve(apiName, userID)

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: failed to marshal request body: %w: %w", apiName, ErrRequest, err)
	}
	if !opts.Quiet {
		slog.Debug("sdgb request", "api", apiName, "body", string(payload))
	}

	encoded, err := c.codec.Encode(payload)
	if err != nil {
		return fmt.Errorf("%s: failed to encode request body: %w: %w", apiName, ErrRequest, err)
	}

	policy := c.policy
	if opts.MaxAttempts > 0 {
		policy.MaxAttempts = opts.MaxAttempts
	}
	timeout := c.timeout
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	decoded, err := retry.Do(ctx, policy, func(ctx context.Context, _ int) retry.Result[[]byte] {
		return c.attempt(ctx, endpoint, encoded, timeout, opts.Quiet)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", apiName, err)
	}

	if !opts.Quiet {
		slog.Debug("sdgb response", "api", apiName, "body", string(decoded))
	}
	if result != nil {
		if err := json.Unmarshal(decoded, result); err != nil {
			return fmt.Errorf("%s: failed to decode response: %w: %w", apiName, ErrResponse, err)
		}
	}
	return nil
}

// attempt выполняет одну попытку; тело ответа закрывается при любом исходе
func (c *Client) attempt(ctx context.Context, endpoint Endpoint, encoded []byte, timeout time.Duration, quiet bool) retry.Result[[]byte] {
	c.limiter.Take()

	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reqCtx := withCallInfo(attemptCtx, callInfo{apiName: endpoint.APIName, quiet: quiet})
	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, endpoint.URL, bytes.NewReader(encoded))
	if err != nil {
		return retry.Permanent[[]byte](fmt.Errorf("failed to create request: %w: %w", ErrRequest, err))
	}
	c.setHeaders(req, endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return retry.Permanent[[]byte](ctx.Err())
		}
		return retry.Transient[[]byte](fmt.Errorf("request failed: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return retry.Permanent[[]byte](&StatusError{APIName: endpoint.APIName, StatusCode: resp.StatusCode})
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return retry.Transient[[]byte](fmt.Errorf("failed to read response body: %w", err))
	}

	decoded, err := c.codec.Decode(raw)
	if err != nil {
		slog.Warn("failed to decode response", "api", endpoint.APIName, "size", len(raw), "error", err)
		return retry.Transient[[]byte](fmt.Errorf("%w: %w", ErrResponse, err))
	}
	if !json.Valid(decoded) {
		return retry.Transient[[]byte](fmt.Errorf("%w: response is not valid json", ErrResponse))
	}

	return retry.Success(decoded)
}

func (c *Client) setHeaders(req *http.Request, endpoint Endpoint) {
	req.Header.Set("User-Agent", endpoint.UserAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Mai-Encoding", c.encodingVersion)
	req.Header.Set("Accept-Encoding", "")
	req.Header.Set("Charset", "UTF-8")
	req.Header.Set("Content-Encoding", "deflate")
	req.Header.Set("Expect", "100-continue")
}
