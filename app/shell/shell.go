// Package shell renders the two-tab inventory page. Each form posts to
// its own endpoint, which redirects back so the page is rebuilt from storage.
package shell

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/u4905139763-creator/aplikacja-magazynowa/app/categories"
	"github.com/u4905139763-creator/aplikacja-magazynowa/app/products"
	"github.com/u4905139763-creator/aplikacja-magazynowa/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Shell struct {
	categories *categories.Manager
	products   *products.Manager
	tmpl       *template.Template
}

type pageData struct {
	Tab          string
	Message      string
	Warning      string
	NoCategories string
	Categories   []models.Category
	Products     []models.ProductListing
}

func New(c *categories.Manager, p *products.Manager, locale string) (*Shell, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid display locale %q: %w", locale, err)
	}
	printer := message.NewPrinter(tag)

	tmpl, err := template.New("index.html").Funcs(template.FuncMap{
		"price": func(d decimal.Decimal) string {
			return printer.Sprintf("%.2f", d.InexactFloat64())
		},
		"quantity": func(q int) string {
			return printer.Sprintf("%d", q)
		},
	}).ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Shell{categories: c, products: p, tmpl: tmpl}, nil
}

func (s *Shell) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.HandleIndex)
	mux.HandleFunc("POST /categories", s.HandleCreateCategory)
	mux.HandleFunc("POST /categories/delete", s.HandleDeleteCategory)
	mux.HandleFunc("POST /products", s.HandleCreateProduct)
	mux.HandleFunc("POST /products/delete", s.HandleDeleteProduct)
}

// HandleIndex re-reads both tables on every request.
func (s *Shell) HandleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := pageData{
		Tab:          tabProducts,
		Message:      messages[q.Get("msg")],
		Warning:      warnings[q.Get("warn")],
		NoCategories: warnings["no-categories"],
	}
	if q.Get("tab") == tabCategories {
		data.Tab = tabCategories
	}

	var err error
	if data.Categories, err = s.categories.List(r.Context()); err != nil {
		s.storageFailure(w, err)
		return
	}
	if data.Products, err = s.products.List(r.Context()); err != nil {
		s.storageFailure(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("Error executing main template: %v", err)
	}
}

func (s *Shell) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirect(w, r, tabCategories, "warn", "invalid-input")
		return
	}

	_, err := s.categories.Create(r.Context(), r.PostForm.Get("nazwa"), r.PostForm.Get("opis"))
	s.finish(w, r, tabCategories, "category-created", err)
}

func (s *Shell) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r, "id")
	if !ok {
		redirect(w, r, tabCategories, "warn", "invalid-input")
		return
	}

	err := s.categories.Delete(r.Context(), id)
	s.finish(w, r, tabCategories, "category-deleted", err)
}

func (s *Shell) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirect(w, r, tabProducts, "warn", "invalid-input")
		return
	}

	quantity, qErr := strconv.Atoi(strings.TrimSpace(r.PostForm.Get("liczba")))
	price, pErr := parsePrice(r.PostForm.Get("cena"))
	categoryID, ok := formID(r, "kategoria_id")
	if qErr != nil || pErr != nil || !ok {
		redirect(w, r, tabProducts, "warn", "invalid-input")
		return
	}

	_, err := s.products.Create(r.Context(), r.PostForm.Get("nazwa"), quantity, price, categoryID)
	s.finish(w, r, tabProducts, "product-created", err)
}

func (s *Shell) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r, "id")
	if !ok {
		redirect(w, r, tabProducts, "warn", "invalid-input")
		return
	}

	err := s.products.Delete(r.Context(), id)
	s.finish(w, r, tabProducts, "product-deleted", err)
}

// finish sends the browser back to the page after a mutation. Errors the
// page can explain become a warning; storage failures stop here.
func (s *Shell) finish(w http.ResponseWriter, r *http.Request, tab, success string, err error) {
	if err == nil {
		redirect(w, r, tab, "msg", success)
		return
	}
	if code := warningCode(err); code != "" {
		redirect(w, r, tab, "warn", code)
		return
	}
	s.storageFailure(w, err)
}

func (s *Shell) storageFailure(w http.ResponseWriter, err error) {
	log.Printf("Storage failure: %v", err)
	http.Error(w, "Błąd bazy danych: "+err.Error(), http.StatusInternalServerError)
}

func redirect(w http.ResponseWriter, r *http.Request, tab, key, code string) {
	q := url.Values{}
	q.Set("tab", tab)
	q.Set(key, code)
	http.Redirect(w, r, "/?"+q.Encode(), http.StatusSeeOther)
}

func formID(r *http.Request, field string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(r.FormValue(field)), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parsePrice accepts both "4.99" and "4,99".
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return decimal.NewFromString(s)
}
