package medical

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/shenikar/emergency_dispatch_system/internal/config"
)

// Источники медицинской выписки
const (
	SourceQRCode = "qr_code"
	SourceToken  = "token"
)

// Snapshot - непрозрачная медицинская выписка, записывается в запрос
// один раз при создании и больше не меняется.
type Snapshot struct {
	Data   json.RawMessage `json:"data"`
	Source string          `json:"source"`
}

// HistoryClient - контракт внешнего сервиса медицинской истории.
// Для движка вызов best-effort: ошибка означает "без выписки", а не отказ запроса.
type HistoryClient interface {
	LookupByQRCode(ctx context.Context, qrCode string) (*Snapshot, error)
	LookupByToken(ctx context.Context, token string) (*Snapshot, error)
}

// HTTPHistoryClient - реализация HistoryClient поверх REST-эндпоинта
type HTTPHistoryClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPHistoryClient создает новый HTTPHistoryClient
func NewHTTPHistoryClient(cfg *config.Config) *HTTPHistoryClient {
	return &HTTPHistoryClient{
		baseURL: cfg.MedicalHistoryURL,
		httpClient: &http.Client{
			Timeout: cfg.MedicalHistoryTimeout,
		},
	}
}

// LookupByQRCode запрашивает выписку по QR-коду пациента
func (c *HTTPHistoryClient) LookupByQRCode(ctx context.Context, qrCode string) (*Snapshot, error) {
	return c.lookup(ctx, "qr/"+url.PathEscape(qrCode), SourceQRCode)
}

// LookupByToken запрашивает выписку по токену доступа
func (c *HTTPHistoryClient) LookupByToken(ctx context.Context, token string) (*Snapshot, error) {
	return c.lookup(ctx, "token/"+url.PathEscape(token), SourceToken)
}

func (c *HTTPHistoryClient) lookup(ctx context.Context, path, source string) (*Snapshot, error) {
	if c.baseURL == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/history/"+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create medical history request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call medical history service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("medical history service responded with status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read medical history response: %w", err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("medical history service returned invalid JSON")
	}

	return &Snapshot{Data: data, Source: source}, nil
}
