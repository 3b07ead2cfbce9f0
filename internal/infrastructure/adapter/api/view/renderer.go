package view

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	"github.com/gin-gonic/gin/render"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Brand is shown in the page title and navigation
const Brand = "CryptoInvest"

// Page is the data every template receives
type Page struct {
	Title    string
	Path     string
	SignedIn bool
	User     *entity.User
	Flashes  []entity.Flash
	Data     any
}

// Renderer implements gin's HTMLRender with one template set per page,
// each parsed together with the shared layout
type Renderer struct {
	pages map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

// NewRenderer parses every embedded page
func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(file), ".html")
		tmpl, err := template.New(path.Base(layoutFile)).Funcs(Funcs()).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Has reports whether a page exists
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Instance implements render.HTMLRender
func (r *Renderer) Instance(name string, data any) render.Render {
	tmpl, ok := r.pages[name]
	if !ok {
		tmpl = r.pages["error"]
		data = Page{Title: "Error", Data: ErrorData{Message: "Page template missing: " + name}}
	}
	return render.HTML{Template: tmpl, Name: path.Base(layoutFile), Data: data}
}

// ErrorData is rendered by the error page
type ErrorData struct {
	Message string
	// RetryURL links back to the failed page, empty to hide the retry button
	RetryURL string
}

// Funcs returns the template helpers
func Funcs() template.FuncMap {
	return template.FuncMap{
		"currency": entity.FormatCurrency,
		"whole":    entity.FormatWhole,
		"money":    formatFloat,
		"date":     formatDate,
		"datetime": formatDateTime,
		"nulldec":  formatNullDecimal,
		"add":      func(a, b int) int { return a + b },
		"title":    func(s string) string { return Brand + " | " + s },
		"lower":    strings.ToLower,
		"active":   func(current, target string) bool { return current == target || strings.HasPrefix(current, target+"/") },
	}
}

func formatFloat(v float64) string {
	return entity.FormatCurrency(decimal.NewFromFloat(v))
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("Jan 2, 2006")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("Jan 2, 2006 15:04")
}

func formatNullDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return "N/A"
	}
	return entity.FormatCurrency(d.Decimal)
}
