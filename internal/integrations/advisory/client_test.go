package advisory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FDL-AtelierService/internal/domain"
	"github.com/m04kA/FDL-AtelierService/pkg/ptr"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

type stubMetrics struct {
	outcomes []string
}

func (s *stubMetrics) AdvisoryCall(outcome string) {
	s.outcomes = append(s.outcomes, outcome)
}

func sampleData() domain.MeasurementData {
	return domain.MeasurementData{
		Chest: ptr.Ptr(96.0),
		Waist: ptr.Ptr(80.0),
	}
}

func TestGetStylingAdvice_NoCredentialFallsBackWithoutNetworkCall(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	metrics := &stubMetrics{}
	client := NewClient(server.URL, "", "gemini-2.5-flash", time.Second, testLogger{}, metrics)

	advice := client.GetStylingAdvice(context.Background(), sampleData(), "casamento", "clássico")

	assert.Equal(t, FallbackStylingAdvice, advice)
	assert.Zero(t, calls)
	assert.Equal(t, []string{OutcomeFallback}, metrics.outcomes)
}

func TestAnalyzeMeasurements_NoCredentialFallsBack(t *testing.T) {
	metrics := &stubMetrics{}
	client := NewClient("http://127.0.0.1:0", "", "gemini-2.5-flash", time.Second, testLogger{}, metrics)

	analysis := client.AnalyzeMeasurements(context.Background(), sampleData())

	assert.Equal(t, FallbackMeasurementAnalysis, analysis)
	assert.Equal(t, []string{OutcomeFallback}, metrics.outcomes)
}

func TestGetStylingAdvice_ReturnsServiceText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Silhueta elegante."}]}}]}`))
	}))
	defer server.Close()

	metrics := &stubMetrics{}
	client := NewClient(server.URL, "test-key", "gemini-2.5-flash", time.Second, testLogger{}, metrics)

	advice := client.GetStylingAdvice(context.Background(), sampleData(), "gala", "moderno")

	assert.Equal(t, "Silhueta elegante.", advice)
	assert.Equal(t, []string{OutcomeOK}, metrics.outcomes)
}

func TestGetStylingAdvice_ServerErrorFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	metrics := &stubMetrics{}
	client := NewClient(server.URL, "test-key", "gemini-2.5-flash", time.Second, testLogger{}, metrics)

	advice := client.GetStylingAdvice(context.Background(), sampleData(), "gala", "moderno")

	assert.Equal(t, FallbackStylingAdvice, advice)
	assert.Equal(t, []string{OutcomeFallback}, metrics.outcomes)
}

func TestGetStylingAdvice_MalformedBodyFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": [`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gemini-2.5-flash", time.Second, testLogger{}, &stubMetrics{})

	advice := client.GetStylingAdvice(context.Background(), sampleData(), "gala", "moderno")
	assert.Equal(t, FallbackStylingAdvice, advice)
}

func TestAnalyzeMeasurements_EmptyTextGetsNeutralDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	metrics := &stubMetrics{}
	client := NewClient(server.URL, "test-key", "gemini-2.5-flash", time.Second, testLogger{}, metrics)

	analysis := client.AnalyzeMeasurements(context.Background(), sampleData())

	// Успешный вызов без текста - нейтральный дефолт, не fallback
	assert.Equal(t, DefaultMeasurementAnalysis, analysis)
	assert.Equal(t, []string{OutcomeOK}, metrics.outcomes)
}

func TestAnalyzeMeasurements_ReturnsServiceText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Medidas impecáveis."}]}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gemini-2.5-flash", time.Second, testLogger{}, &stubMetrics{})

	analysis := client.AnalyzeMeasurements(context.Background(), sampleData())
	assert.Equal(t, "Medidas impecáveis.", analysis)
}

func TestPrompts_RenderMissingMeasurementsAsDash(t *testing.T) {
	prompt := analysisPrompt(domain.MeasurementData{Chest: ptr.Ptr(96.0)})

	require.Contains(t, prompt, "Peito: 96")
	assert.Contains(t, prompt, "Cintura: -")
	assert.Contains(t, prompt, "Altura: -")
}
