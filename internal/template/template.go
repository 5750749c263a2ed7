package template

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
	"github.com/shopspring/decimal"

	"github.com/boutique-ecuestre/showroom/internal/catalog"
	"github.com/boutique-ecuestre/showroom/internal/leads"
)

//go:embed templates/*.html
var templateFS embed.FS

var thousand = decimal.NewFromInt(1000)

// groupThousands formats n with dots between thousands, as written in Spain.
func groupThousands(n decimal.Decimal) string {
	str := n.Round(0).Abs().String()
	var result strings.Builder
	if n.Round(0).IsNegative() {
		result.WriteByte('-')
	}
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result.WriteRune('.')
		}
		result.WriteRune(c)
	}
	return result.String()
}

// formatPrice renders a price for the detail page.
func formatPrice(p catalog.Price) string {
	if amount, ok := p.Amount(); ok {
		return groupThousands(amount) + " €"
	}
	switch p.Reason() {
	case catalog.ReasonPrivate:
		return "Privado"
	case catalog.ReasonAsk:
		return "Consultar"
	}
	return ""
}

// shortPrice renders a price for cards: "45k" or "P.O.A.".
func shortPrice(p catalog.Price) string {
	amount, ok := p.Amount()
	if !ok {
		return "P.O.A."
	}
	return amount.Div(thousand).Round(0).String() + "k"
}

// refCode is the catalogue reference shown on cards, e.g. "DX01".
func refCode(id string) string {
	prefix, _, _ := strings.Cut(id, "-")
	return strings.ToUpper(prefix)
}

func genderLabel(g catalog.Gender) string {
	switch g {
	case catalog.GenderStallion:
		return "Semental"
	case catalog.GenderMare:
		return "Yegua"
	case catalog.GenderGelding:
		return "Castrado"
	}
	return ""
}

func disciplineLabel(d leads.Discipline) string {
	switch d {
	case leads.DisciplineDressage:
		return catalog.CategoryLabel(catalog.CategoryDressage)
	case leads.DisciplineShowjumping:
		return catalog.CategoryLabel(catalog.CategoryShowjumping)
	}
	return "Otro"
}

// funcMap provides custom template functions.
var funcMap = template.FuncMap{
	"add": func(a, b int) int {
		return a + b
	},
	"truncate": func(s string, n int) string {
		runes := []rune(s)
		if len(runes) <= n {
			return s
		}
		return string(runes[:n])
	},
	"lower":           strings.ToLower,
	"formatPrice":     formatPrice,
	"shortPrice":      shortPrice,
	"refCode":         refCode,
	"categoryLabel":   catalog.CategoryLabel,
	"levelLabel":      catalog.LevelLabel,
	"genderLabel":     genderLabel,
	"disciplineLabel": disciplineLabel,
	"whatsappURL": func(number, message string) string {
		u := "https://wa.me/" + url.PathEscape(number)
		if message != "" {
			u += "?" + url.Values{"text": {message}}.Encode()
		}
		return u
	},
	"fieldError": func(errs map[string]string, field string) string {
		return errs[field]
	},
	"markdown": func(s string) template.HTML {
		// Use GitHub Flavored Markdown extensions
		extensions := blackfriday.CommonExtensions | blackfriday.AutoHeadingIDs | blackfriday.Autolink
		renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
			Flags: blackfriday.CommonHTMLFlags,
		})
		unsafe := blackfriday.Run([]byte(s), blackfriday.WithRenderer(renderer), blackfriday.WithExtensions(extensions))
		// Sanitize before marking the output as safe HTML
		p := bluemonday.UGCPolicy()
		safe := p.SanitizeBytes(unsafe)
		return template.HTML(safe)
	},
}

// Templates holds parsed HTML templates.
type Templates struct {
	pages map[string]*template.Template
}

// New parses and returns all templates.
func New() (*Templates, error) {
	pages := make(map[string]*template.Template)

	// Parse base template first with functions
	base, err := template.New("base.html").Funcs(funcMap).ParseFS(templateFS, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("parsing base template: %w", err)
	}

	pageNames := []string{"home.html", "category.html", "detail.html", "sell.html", "notfound.html"}

	for _, name := range pageNames {
		// Clone base template for each page
		pageTemplate, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning base for %s: %w", name, err)
		}

		_, err = pageTemplate.ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}

		pages[name] = pageTemplate
	}

	return &Templates{pages: pages}, nil
}

// Render executes the named template with the given data.
func (t *Templates) Render(w io.Writer, name string, data any) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}
