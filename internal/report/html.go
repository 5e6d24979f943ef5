package report

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		emoji.Emoji,
	),
	goldmark.WithRendererOptions(
		// No html.WithUnsafe(): raw HTML in item names is dropped.
		html.WithHardWraps(),
	),
)

var pageTemplate = template.Must(template.New("report").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: 'IBM Plex Sans', system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial; color: #111; background: #fff; padding: 24px; }
  h1 { margin: 0 0 12px; font-size: 20px; }
  h2 { margin: 16px 0 8px; font-size: 16px; }
  table { width: 100%; border-collapse: collapse; margin-top: 12px; }
  th, td { border: 1px solid #ddd; padding: 8px; font-size: 12px; }
  th { background: #f5f5f5; text-align: left; }
  @media print { body { padding: 0; } }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// RenderHTML renders r as a standalone printable HTML page.
func RenderHTML(r Report) ([]byte, error) {
	var body bytes.Buffer
	if err := markdownRenderer.Convert([]byte(RenderMarkdown(r)), &body); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	err := pageTemplate.Execute(&out, struct {
		Title string
		// goldmark output is trusted only because raw HTML is disabled above.
		Body template.HTML
	}{
		Title: r.Title,
		Body:  template.HTML(body.String()),
	})
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
