// Package render turns board views into display items and the HTML page
package render

import (
	"html/template"
	"io"
	"time"

	"eventboard/internal/core/board"
	"eventboard/internal/core/catalog"
	perr "eventboard/internal/platform/errors"
	ptime "eventboard/internal/platform/time"
	"eventboard/internal/services/events/domain"
)

// Options controls item derivation
type Options struct {
	// LinkBase prefixes every event link; empty gives site relative links
	LinkBase string
	// Location is the calendar the day is shown in; nil means time.Local
	Location *time.Location
	// Title is the page title
	Title string
}

// Renderer derives display items and writes pages. Safe for concurrent use
type Renderer struct {
	opts Options
	cat  *catalog.Catalog
}

// New builds a Renderer for cat
func New(cat *catalog.Catalog, opts Options) *Renderer {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Title == "" {
		opts.Title = "Events"
	}
	return &Renderer{opts: opts, cat: cat}
}

// Item derives the display form of one record
func (r *Renderer) Item(rec board.Record) domain.Event {
	return domain.Event{
		ID:           rec.ID,
		Name:         rec.Name,
		Category:     string(rec.Category),
		CategoryName: r.cat.DisplayNameOf(rec.Category),
		CreatedAt:    rec.CreatedAt,
		Day:          ptime.Day(rec.CreatedAt, r.opts.Location),
		Link:         board.Link(r.opts.LinkBase, rec),
	}
}

// Items derives display items in record order. Never nil
func (r *Renderer) Items(records []board.Record) []domain.Event {
	out := make([]domain.Event, 0, len(records))
	for _, rec := range records {
		out = append(out, r.Item(rec))
	}
	return out
}

// Categories lists the catalog in order with the view's counts
func (r *Renderer) Categories(c board.Counts) []domain.Category {
	entries := r.cat.Entries()
	out := make([]domain.Category, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.Category{
			ID:           string(e.ID),
			DisplayName:  e.DisplayName,
			ReferenceURL: e.ReferenceURL,
			Count:        c.ByCategory[e.ID],
		})
	}
	return out
}

// Resp builds the JSON form of a view
func (r *Renderer) Resp(v domain.View) domain.ViewResp {
	resp := domain.ViewResp{
		Category: string(v.Selector),
		Events:   r.Items(v.Records),
		Counts:   v.Counts,
		Meta:     v.Meta,
	}
	if v.Err != nil {
		resp.LoadError = perr.CodeOf(v.Err).String()
	}
	return resp
}

type pageData struct {
	Title      string
	Selected   string
	Total      int
	Categories []domain.Category
	Items      []domain.Event
	ErrorCode  string
	Meta       domain.LoadMeta
	LoadedAt   string
}

// Page writes the full HTML board for v. Every record derived string goes
// through html/template's contextual escaping
func (r *Renderer) Page(w io.Writer, v domain.View) error {
	d := pageData{
		Title:      r.opts.Title,
		Selected:   string(v.Selector),
		Total:      v.Counts.Total,
		Categories: r.Categories(v.Counts),
		Items:      r.Items(v.Records),
		Meta:       v.Meta,
	}
	if v.Err != nil {
		d.ErrorCode = perr.CodeOf(v.Err).String()
	}
	d.LoadedAt = r.Stamp(v.Meta.LoadedAt)
	return pageTmpl.Execute(w, d)
}

// Stamp formats a load time in the configured zone. Zero gives ""
func (r *Renderer) Stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(r.opts.Location).Format("2006/01/02 15:04")
}

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!doctype html>
<html lang="ja">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<header id="top">
<h1>{{.Title}}</h1>
<nav class="filters">
<a class="filter{{if eq .Selected "all"}} active{{end}}" data-category="all" href="?category=all">All <span class="count" id="count-all">{{.Total}}</span></a>
{{- range .Categories}}
<a class="filter{{if eq $.Selected .ID}} active{{end}}" data-category="{{.ID}}" href="?category={{.ID}}">{{.DisplayName}} <span class="count" id="count-{{.ID}}">{{.Count}}</span></a>
{{- end}}
</nav>
</header>
<main>
<section id="event-list" data-selected="{{.Selected}}">
{{- if .ErrorCode}}
<div class="error-state" role="alert">Events could not be loaded ({{.ErrorCode}}). Please try again later.</div>
{{- else if not .Items}}
<p class="empty-state">No events</p>
{{- else}}
<ul class="events">
{{- range .Items}}
<li class="event" data-id="{{.ID}}">
<a href="{{.Link}}"><span class="badge badge-{{.Category}}">{{.CategoryName}}</span> <time>{{.Day}}</time> <span class="name">{{.Name}}</span></a>
</li>
{{- end}}
</ul>
{{- end}}
</section>
</main>
<footer>
<a id="scroll-top" href="#top">Top</a>
{{- if .LoadedAt}}
<small class="load-meta" data-load-id="{{.Meta.LoadID}}">Loaded {{.LoadedAt}}</small>
{{- end}}
</footer>
</body>
</html>
`
