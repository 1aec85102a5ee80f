package handler

import "html/template"

var pageTemplate = template.Must(template.New("view").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<title>{{.PageTitle}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-top: 1em; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: right; }
th { background: #f0f0f0; }
.error { color: #b00; margin-top: 1em; }
.notice { color: #555; margin-top: 1em; }
</style>
</head>
<body>
<h1>{{.PageTitle}}</h1>
<form method="POST" action="/view">
<label>Symbol <input type="text" name="symbol" value="{{.Symbol}}" placeholder="AAPL"></label>
<label>Period <input type="text" name="period" value="{{.Period}}" placeholder="90m, 6h, 5d, 1w"></label>
<label><input type="checkbox" name="full" value="true"> Full history</label>
<button>Fetch</button>
</form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Notice}}<p class="notice">{{.Notice}}</p>{{end}}
{{with .Summary}}
<p>rows={{.Rows}}, from={{.From}}, to={{.To}}<br>
close: mean={{.MeanClose}} min={{.MinClose}} max={{.MaxClose}}</p>
{{end}}
{{if .Bars}}
<table>
<tr><th>Time</th><th>Open</th><th>High</th><th>Low</th><th>Close</th><th>Volume</th></tr>
{{range .Bars}}
<tr><td>{{.Time}}</td><td>{{.Open}}</td><td>{{.High}}</td><td>{{.Low}}</td><td>{{.Close}}</td><td>{{.Volume}}</td></tr>
{{end}}
</table>
{{end}}
{{if .ChartURL}}<p><img src="{{.ChartURL}}" alt="close-price chart"></p>{{end}}
</body>
</html>
`
