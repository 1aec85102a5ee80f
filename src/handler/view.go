package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/schema"
	log "github.com/sirupsen/logrus"

	"barwatch/src/models"
	"barwatch/src/plot"
	"barwatch/src/services"
)

// ViewFormRequest is the symbol+period form submission.
type ViewFormRequest struct {
	Symbol string `schema:"symbol,required"`
	Period string `schema:"period,required"`
	Full   bool   `schema:"full"`
}

// ViewHandler serves the form page and runs the fetch+filter pipeline on
// submit. It holds no request-scoped state: every submission works on its own
// ViewResult and writes its own uniquely named chart file.
type ViewHandler struct {
	APIKey    string
	BaseURL   string
	ChartsDir string
	PageTitle string
	Parser    services.SeriesParser
}

type barRow struct {
	Time   string
	Open   string
	High   string
	Low    string
	Close  string
	Volume int64
}

type summaryRow struct {
	Rows      int
	From      string
	To        string
	MeanClose string
	MinClose  string
	MaxClose  string
}

type viewPageData struct {
	PageTitle string
	Symbol    string
	Period    string
	Error     string
	Notice    string
	Summary   *summaryRow
	Bars      []barRow
	ChartURL  string
}

func (h *ViewHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, viewPageData{PageTitle: h.PageTitle})
}

// SubmitForm runs the same pipeline as the CLI. Errors are rendered inline on
// the page rather than as distinct status codes.
func (h *ViewHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	data := viewPageData{PageTitle: h.PageTitle}

	if err := r.ParseForm(); err != nil {
		data.Error = fmt.Sprintf("invalid form submission: %v", err)
		h.render(w, data)
		return
	}

	var form ViewFormRequest
	if err := schema.NewDecoder().Decode(&form, r.PostForm); err != nil {
		data.Error = fmt.Sprintf("invalid form submission: %v", err)
		h.render(w, data)
		return
	}

	data.Symbol = form.Symbol
	data.Period = form.Period

	result, err := services.BuildView(h.BaseURL, services.ViewRequest{
		Symbol:    form.Symbol,
		Period:    form.Period,
		APIKey:    h.APIKey,
		ForceFull: form.Full,
	}, h.Parser)
	if err != nil {
		data.Error = err.Error()
		h.render(w, data)
		return
	}

	if len(result.Window) == 0 {
		data.Notice = "No data in the requested window (market closed or period too short for chosen interval). Most recent available bars:"
		data.Bars = toRows(result.All.Tail(5), result.Interval)
		h.render(w, data)
		return
	}

	summary, err := result.Window.Summarize()
	if err != nil {
		data.Error = err.Error()
		h.render(w, data)
		return
	}

	title := fmt.Sprintf("%s close (%s)", strings.ToUpper(form.Symbol), result.Interval)

	chartName, err := plot.RenderClosePNG(result.Window, title, h.ChartsDir)
	if err != nil {
		log.Warnf("ViewHandler.SubmitForm: %v", err)
	} else {
		data.ChartURL = "/charts/" + chartName
	}

	data.Summary = &summaryRow{
		Rows:      summary.Rows,
		From:      result.Interval.FormatTime(summary.From),
		To:        result.Interval.FormatTime(summary.To),
		MeanClose: fmt.Sprintf("%.2f", summary.MeanClose),
		MinClose:  fmt.Sprintf("%.2f", summary.MinClose),
		MaxClose:  fmt.Sprintf("%.2f", summary.MaxClose),
	}
	data.Bars = toRows(result.Window.Tail(10), result.Interval)

	h.render(w, data)
}

func toRows(candles models.Candles, interval models.Interval) []barRow {
	rows := make([]barRow, 0, len(candles))
	for _, candle := range candles {
		rows = append(rows, barRow{
			Time:   interval.FormatTime(candle.Timestamp),
			Open:   fmt.Sprintf("%.2f", candle.Open),
			High:   fmt.Sprintf("%.2f", candle.High),
			Low:    fmt.Sprintf("%.2f", candle.Low),
			Close:  fmt.Sprintf("%.2f", candle.Close),
			Volume: candle.Volume,
		})
	}

	return rows
}

func (h *ViewHandler) render(w http.ResponseWriter, data viewPageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := pageTemplate.Execute(w, data); err != nil {
		log.Errorf("ViewHandler.render: failed to execute template: %v", err)
	}
}
