package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
)

// Фиксированные fallback-тексты. Любой сбой внешнего сервиса разрешается
// в эти строки - поток никогда не блокируется и не падает из-за того,
// что консультационный текст недоступен.
const (
	FallbackStylingAdvice = "Sua silhueta possui proporções que permitem um corte excepcional. " +
		"Para o clima de Salvador, sugerimos nossas tramas exclusivas de linho com seda. " +
		"Vamos conversar sobre os detalhes?"

	FallbackMeasurementAnalysis = "Medidas recebidas! Nossa equipe de alfaiataria fará a análise técnica final."

	// DefaultMeasurementAnalysis используется, когда сервис ответил успешно,
	// но без текста.
	DefaultMeasurementAnalysis = "Suas medidas foram capturadas com precisão. " +
		"Estamos prontos para iniciar sua obra de arte."
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс учета исходов обращений к сервису
type Metrics interface {
	AdvisoryCall(outcome string)
}

// Исходы обращений для Metrics.
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
)

// Client клиент генеративного текстового сервиса (стилистические
// рекомендации и комментарии к меркам). Вызовы одноразовые, без ретраев;
// отсутствие ключа сразу переводит клиента в режим fallback без попытки
// сетевого вызова.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        Logger
	metrics    Metrics
}

// NewClient создает новый экземпляр клиента консультационного сервиса.
func NewClient(baseURL, apiKey, model string, timeout time.Duration, log Logger, metrics Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// GetStylingAdvice возвращает стилистическую рекомендацию по меркам,
// поводу и предпочтению стиля. Никогда не возвращает ошибку: любой сбой
// логируется и разрешается в FallbackStylingAdvice.
func (c *Client) GetStylingAdvice(ctx context.Context, data domain.MeasurementData, occasion, preference string) string {
	prompt := stylingPrompt(data, occasion, preference)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.log.Warn("GetStylingAdvice: falling back to static advice: %v", err)
		c.record(OutcomeFallback)
		return FallbackStylingAdvice
	}

	c.record(OutcomeOK)
	return text
}

// AnalyzeMeasurements возвращает комментарий к снятым меркам.
// Никогда не возвращает ошибку: любой сбой логируется и разрешается
// в FallbackMeasurementAnalysis.
func (c *Client) AnalyzeMeasurements(ctx context.Context, data domain.MeasurementData) string {
	prompt := analysisPrompt(data)

	text, err := c.generate(ctx, prompt)
	switch {
	case err == nil:
		c.record(OutcomeOK)
		return text
	case errors.Is(err, ErrEmptyResponse):
		// Успешный вызов без текста - нейтральный дефолт, не fallback
		c.record(OutcomeOK)
		return DefaultMeasurementAnalysis
	default:
		c.log.Warn("AnalyzeMeasurements: falling back to static analysis: %v", err)
		c.record(OutcomeFallback)
		return FallbackMeasurementAnalysis
	}
}

// generate выполняет одноразовый вызов generateContent.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		// Без ключа сетевой вызов не выполняется вовсе
		return "", ErrNoCredential
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(payload))
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	text := parsed.text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (c *Client) record(outcome string) {
	if c.metrics != nil {
		c.metrics.AdvisoryCall(outcome)
	}
}

func stylingPrompt(data domain.MeasurementData, occasion, preference string) string {
	return fmt.Sprintf(`Você é o Mestre Alfaiate Chefe da Fio de Linho em Salvador.
Analise estas medidas (cm): Peito %s, Cintura %s, Quadril %s.
O cliente busca uma roupa para: %s e prefere um estilo %s.

Responda em 3 partes curtas e luxuosas:
1. Uma observação sobre a proporção do corpo.
2. Uma recomendação técnica de corte (ex: Slim fit, Americano, Italiano).
3. Uma sugestão de tecido ideal para o clima de Salvador (linho, lã fria, etc).
Mantenha um tom extremamente refinado, digno de uma Maison de luxo.`,
		measurement(data.Chest), measurement(data.Waist), measurement(data.Hips), occasion, preference)
}

func analysisPrompt(data domain.MeasurementData) string {
	return fmt.Sprintf(`Você é um mestre alfaiate da Fio de Linho em Salvador.
Analise estas medidas (cm): Cintura: %s, Peito: %s, Quadril: %s,
Altura: %s, Peso: %s.
Dê um feedback elegante e encorajador em 2 frases sobre a silhueta e como a roupa ficará impecável.
Use um tom de luxo e acolhedor.`,
		measurement(data.Waist), measurement(data.Chest), measurement(data.Hips),
		measurement(data.Height), measurement(data.Weight))
}

func measurement(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}
