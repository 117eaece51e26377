package report

import "html/template"

var pageTemplates = template.Must(template.New("pages").Parse(pageTemplateText))

const pageTemplateText = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #f5f5f5; color: #333; line-height: 1.6; padding: 20px; }
.container { max-width: 1100px; margin: 0 auto; }
h1 { color: #2c3e50; margin-bottom: 4px; }
h2 { color: #2c3e50; margin: 24px 0 12px; }
.timestamp { color: #666; margin-bottom: 20px; }
.badge { display: inline-block; padding: 4px 14px; border-radius: 14px; color: #fff; font-weight: 600; margin-right: 8px; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 16px; margin: 20px 0; }
.card { background: #fff; padding: 18px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
.card h3 { color: #666; font-size: 0.85em; text-transform: uppercase; margin-bottom: 8px; }
.card .value { font-size: 1.8em; font-weight: bold; color: #2c3e50; }
.card .subtitle { color: #999; font-size: 0.9em; margin-top: 4px; }
table { width: 100%; border-collapse: collapse; background: #fff; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
th, td { padding: 10px 12px; text-align: left; border-bottom: 1px solid #eee; }
th { background: #2c3e50; color: #fff; font-weight: 600; }
.issue, .rec { background: #fff; border-left: 4px solid #c62828; padding: 12px 16px; margin-bottom: 8px; border-radius: 4px; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
.rec { border-left-color: #1565c0; }
.issue .tag, .rec .tag { font-size: 0.8em; text-transform: uppercase; color: #777; }
.notes { background: #fff; padding: 16px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); margin-top: 16px; }
.meta { color: #777; font-size: 0.9em; margin-top: 24px; }
a { color: #1565c0; }
</style>
</head>
<body>
<div class="container">
<h1>{{.Title}}</h1>
<p class="timestamp">Generated {{.Generated}}</p>
<p>
<span class="badge" style="background: {{.StatusBadge.Color}}">{{.StatusBadge.Text}}</span>
<span class="badge" style="background: {{.GradeBadge.Color}}">{{.GradeBadge.Text}}</span>
</p>
<div class="cards">
{{range .Cards}}<div class="card"><h3>{{.Label}}</h3><div class="value">{{.Value}}</div>{{if .Subtitle}}<div class="subtitle">{{.Subtitle}}</div>{{end}}</div>
{{end}}</div>
{{end}}

{{define "foot"}}</div>
</body>
</html>
{{end}}

{{define "issues"}}{{if .}}<h2>Issues</h2>
{{range .}}<div class="issue"><strong>{{.Title}}</strong> <span class="tag">{{.Severity}} · {{.Category}}</span><br>{{.Description}}</div>
{{end}}{{end}}{{end}}

{{define "recommendations"}}{{if .}}<h2>Recommendations</h2>
{{range .}}<div class="rec"><strong>{{.Title}}</strong> <span class="tag">{{.Priority}} · {{.Category}}</span><br>{{.Description}}</div>
{{end}}{{end}}{{end}}

{{define "consolidated"}}{{template "head" .}}
<h2>Domains</h2>
<table>
<tr><th>Domain</th><th>Total</th><th>Passed</th><th>Failed</th><th>Score</th><th>Status</th></tr>
{{range .Domains}}<tr><td>{{.Name}}</td><td>{{.Total}}</td><td>{{.Passed}}</td><td>{{.Failed}}</td><td>{{.Score}}</td><td><span class="badge" style="background: {{.Color}}">{{.Status}}</span></td></tr>
{{end}}</table>
{{template "issues" .Issues}}
{{template "recommendations" .Recommendations}}
{{if .Artifacts.Reports}}<h2>Artifacts</h2>
<ul>
{{range .Artifacts.Reports}}<li><a href="{{.}}">{{.}}</a></li>{{end}}
{{range .Artifacts.Traces}}<li>{{.}}</li>{{end}}
{{range .Artifacts.Screenshots}}<li>{{.}}</li>{{end}}
{{range .Artifacts.Videos}}<li>{{.}}</li>{{end}}
</ul>{{end}}
{{if .Notes}}<div class="notes">{{.Notes}}</div>{{end}}
{{if .Metadata.Repository}}<p class="meta">{{.Metadata.Repository}}@{{.Metadata.Branch}} · {{.Metadata.Commit}} · run {{.Metadata.RunID}} by {{.Metadata.Actor}} ({{.Metadata.Event}})</p>{{end}}
{{template "foot" .}}{{end}}

{{define "performance"}}{{template "head" .}}
<h2>Core Web Vitals</h2>
<table>
<tr><th>Metric</th><th>Median</th><th>P95</th><th>Threshold</th><th>Passed</th><th>Score</th></tr>
{{range .Metrics}}<tr><td>{{.Name}}</td><td>{{printf "%.1f" .Median}}</td><td>{{printf "%.1f" .P95}}</td><td>{{printf "%.1f" .Threshold}}</td><td>{{.Passed}}/{{.Total}}</td><td>{{printf "%.2f" .Score}}</td></tr>
{{end}}</table>
{{template "issues" .Issues}}
{{template "foot" .}}{{end}}

{{define "accessibility"}}{{template "head" .}}
{{template "recommendations" .Recommendations}}
{{template "foot" .}}{{end}}
`
