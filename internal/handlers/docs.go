package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/russross/blackfriday/v2"
)

//go:embed content/*.md
var docsFS embed.FS

// allowedDocs maps public document names to embedded Markdown files
var allowedDocs = map[string]string{
	"about": "content/about.md",
	"api":   "content/api.md",
}

var docTitles = map[string]string{
	"about": "About",
	"api":   "API Reference",
}

type DocsHandler struct{}

func NewDocsHandler() *DocsHandler {
	return &DocsHandler{}
}

// ServeAbout handles GET /about
func (h *DocsHandler) ServeAbout(c *gin.Context) {
	h.serveDoc(c, "about")
}

// ServeMarkdownAsHTML handles GET /doc/:doc
func (h *DocsHandler) ServeMarkdownAsHTML(c *gin.Context) {
	h.serveDoc(c, strings.ToLower(c.Param("doc")))
}

func (h *DocsHandler) serveDoc(c *gin.Context, docName string) {
	fileName, exists := allowedDocs[docName]
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	content, err := docsFS.ReadFile(fileName)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, h.wrapWithTheme(renderMarkdown(content), getDocumentTitle(docName)))
}

// renderMarkdown converts Markdown to HTML
func renderMarkdown(content []byte) string {
	extensions := blackfriday.CommonExtensions | blackfriday.AutoHeadingIDs
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.CommonHTMLFlags,
	})
	return string(blackfriday.Run(content, blackfriday.WithRenderer(renderer), blackfriday.WithExtensions(extensions)))
}

// getDocumentTitle returns a human-readable title for the document
func getDocumentTitle(docName string) string {
	if title, exists := docTitles[docName]; exists {
		return title
	}
	return strings.ReplaceAll(docName, "_", " ")
}

// wrapWithTheme wraps the HTML content with the dashboard styling
func (h *DocsHandler) wrapWithTheme(content, title string) string {
	title = template.HTMLEscapeString(title)

	return `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>` + title + ` - Future of Jobs Tracker</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.6;
            color: #1e293b;
            background: #f8fafc;
            margin: 0;
            padding: 20px;
        }

        .container {
            max-width: 900px;
            margin: 0 auto;
        }

        .header {
            background: linear-gradient(135deg, #0f172a 0%, #334155 100%);
            color: white;
            padding: 2rem;
            margin-bottom: 2rem;
            border-radius: 12px;
        }

        .content {
            background: white;
            padding: 2.5rem;
            border-radius: 12px;
            border: 1px solid #e2e8f0;
        }

        .content table {
            border-collapse: collapse;
            width: 100%;
        }

        .content th, .content td {
            border: 1px solid #e2e8f0;
            padding: 0.5rem 0.75rem;
            text-align: left;
        }

        .content code {
            background: #f1f5f9;
            padding: 0.1rem 0.3rem;
            border-radius: 4px;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>` + title + `</h1>
        </div>

        <div class="content">
            ` + content + `
        </div>
    </div>
</body>
</html>`
}
