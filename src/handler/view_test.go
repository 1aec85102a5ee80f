package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barwatch/src/models"
	"barwatch/src/services"
)

func newViewHandler(t *testing.T, providerURL string) *ViewHandler {
	t.Helper()

	return &ViewHandler{
		APIKey:    "demo",
		BaseURL:   providerURL,
		ChartsDir: t.TempDir(),
		PageTitle: "barwatch",
		Parser:    services.AlphaVantageParser{},
	}
}

func submit(h *ViewHandler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/view", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	h.SubmitForm(rec, req)

	return rec
}

func TestShowForm(t *testing.T) {
	h := newViewHandler(t, "http://unused.invalid")

	rec := httptest.NewRecorder()
	h.ShowForm(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="symbol"`)
	assert.Contains(t, rec.Body.String(), `name="period"`)
}

func TestSubmitForm(t *testing.T) {
	t.Run("renders summary, table and chart link", func(t *testing.T) {
		now := models.NaiveNow()

		provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			layout := "2006-01-02 15:04:05"
			fmt.Fprintf(w, `{"Time Series (1min)": {
				%q: {"1. open": "10", "2. high": "11", "3. low": "9", "4. close": "10.5", "5. volume": "100"},
				%q: {"1. open": "10.5", "2. high": "12", "3. low": "10", "4. close": "11.5", "5. volume": "200"},
				%q: {"1. open": "11.5", "2. high": "13", "3. low": "11", "4. close": "12.5", "5. volume": "300"}
			}}`,
				now.Add(-30*time.Minute).Format(layout),
				now.Add(-20*time.Minute).Format(layout),
				now.Add(-10*time.Minute).Format(layout))
		}))
		defer provider.Close()

		h := newViewHandler(t, provider.URL)

		rec := submit(h, url.Values{"symbol": {"AAPL"}, "period": {"90m"}})

		body := rec.Body.String()
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, body, "rows=3")
		assert.Contains(t, body, "12.50")
		assert.Contains(t, body, "/charts/chart-")
		assert.NotContains(t, body, "class=\"error\"")
	})

	t.Run("bad period shows an inline error", func(t *testing.T) {
		h := newViewHandler(t, "http://unused.invalid")

		rec := submit(h, url.Values{"symbol": {"AAPL"}, "period": {"90x"}})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid lookback period")
	})

	t.Run("missing fields show an inline error", func(t *testing.T) {
		h := newViewHandler(t, "http://unused.invalid")

		rec := submit(h, url.Values{"symbol": {"AAPL"}})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid form submission")
	})

	t.Run("empty window shows the notice and the most recent bars", func(t *testing.T) {
		provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"Time Series (1min)": {"2020-01-02 09:30:00": {"1. open": "1", "2. high": "1", "3. low": "1", "4. close": "1", "5. volume": "1"}}}`)
		}))
		defer provider.Close()

		h := newViewHandler(t, provider.URL)

		rec := submit(h, url.Values{"symbol": {"AAPL"}, "period": {"30m"}})

		body := rec.Body.String()
		assert.Contains(t, body, "No data in the requested window")
		assert.Contains(t, body, "2020-01-02 09:30:00")
		assert.NotContains(t, body, "/charts/")
	})

	t.Run("provider rate limit renders inline", func(t *testing.T) {
		provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"Note": "rate limit"}`)
		}))
		defer provider.Close()

		h := newViewHandler(t, provider.URL)

		rec := submit(h, url.Values{"symbol": {"AAPL"}, "period": {"30m"}})

		assert.Contains(t, rec.Body.String(), "rate limit")
	})
}
