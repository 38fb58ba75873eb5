// Package reporting renders an analysis report as a human-readable HTML
// document and prints it to PDF for download.
package reporting

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
)

// ReportData bundles a report with the request metadata shown on the page.
type ReportData struct {
	ResumeFilename string
	GeneratedAt    time.Time
	Report         *analyzer.Report
}

const reportHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Resume Analysis Report</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; margin: 40px; color: #222; }
  h1 { color: #667eea; }
  h2 { color: #667eea; border-bottom: 1px solid #ddd; padding-bottom: 4px; }
  table { border-collapse: collapse; margin: 12px 0; }
  th, td { border: 1px solid #999; padding: 8px 14px; text-align: left; }
  th { background: #667eea; color: #fff; }
  .keywords { line-height: 1.6; }
  .suggestion-critical { color: #b00020; }
  .suggestion-warning { color: #8a6d00; }
  .suggestion-success { color: #1a7f37; }
</style>
</head>
<body>
<h1>Resume Analysis Report</h1>
<table>
  <tr><th>Resume File</th><td>{{.ResumeFilename}}</td></tr>
  <tr><th>Analysis Date</th><td>{{.GeneratedAt.Format "2006-01-02 15:04:05"}}</td></tr>
  <tr><th>Overall ATS Score</th><td>{{.Report.OverallScore}}% ({{.Report.Rating}})</td></tr>
  <tr><th>Readiness</th><td>{{.Report.Readiness}}%</td></tr>
</table>

<h2>Section Scores</h2>
<table>
  <tr><th>Section</th><th>Score</th><th>Feedback</th></tr>
  <tr><td>Skills</td><td>{{.Report.Sections.Skills.Score}}%</td><td>{{.Report.Sections.Skills.Feedback}}</td></tr>
  <tr><td>Experience</td><td>{{.Report.Sections.Experience.Score}}%</td><td>{{.Report.Sections.Experience.Feedback}}</td></tr>
  <tr><td>Education</td><td>{{.Report.Sections.Education.Score}}%</td><td>{{.Report.Sections.Education.Feedback}}</td></tr>
  <tr><td>Formatting</td><td>{{.Report.Sections.Formatting.Score}}%</td><td>{{.Report.Sections.Formatting.Feedback}}</td></tr>
</table>

<h2>Matched Keywords</h2>
<p class="keywords">{{join .Report.MatchedKeywords}}</p>

<h2>Missing Keywords</h2>
<p class="keywords">{{join .Report.MissingKeywords}}</p>

<h2>Top Keywords in Resume</h2>
<table>
  <tr><th>Keyword</th><th>Frequency</th></tr>
  {{range .Report.KeywordDensity}}<tr><td>{{.Term}}</td><td>{{.Count}}</td></tr>
  {{end}}
</table>

<h2>Suggestions</h2>
{{range .Report.Suggestions}}<p class="suggestion-{{.Type}}"><b>{{.Title}}:</b> {{.Message}}</p>
{{end}}
</body>
</html>
`

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"join": func(items []string) string {
		if len(items) == 0 {
			return "None"
		}
		return strings.Join(items, ", ")
	},
}).Parse(reportHTML))

// RenderHTML renders the report page. Pure function of its input.
func RenderHTML(data ReportData) (string, error) {
	var sb strings.Builder
	if err := reportTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render report template: %w", err)
	}
	return sb.String(), nil
}
