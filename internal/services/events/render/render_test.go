package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"eventboard/internal/core/board"
	"eventboard/internal/core/catalog"
	perr "eventboard/internal/platform/errors"
	kit "eventboard/internal/platform/testkit"
	"eventboard/internal/services/events/domain"

	"github.com/PuerkitoBio/goquery"
)

func newRenderer() *Renderer {
	return New(catalog.Default(), Options{LinkBase: "https://example.com", Location: time.UTC})
}

func page(t *testing.T, r *Renderer, v domain.View) (*goquery.Document, string) {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Page(&buf, v); err != nil {
		t.Fatalf("Page: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc, buf.String()
}

func view(sel board.Selector, recs ...board.Record) domain.View {
	return domain.View{Selector: sel, Records: recs, Counts: board.Count(recs, catalog.Default())}
}

func TestItem(t *testing.T) {
	it := newRenderer().Item(board.Record{ID: "abc", Name: "Live", Category: "equal-love", CreatedAt: 1704067200000})
	if it.Link != "https://example.com/equal-love/abc" {
		t.Fatalf("link = %q", it.Link)
	}
	if it.Day != "2024/01/01" || it.CategoryName != "=LOVE" || it.Name != "Live" {
		t.Fatalf("item = %+v", it)
	}
}

func TestItemsUsesConfiguredZone(t *testing.T) {
	r := New(catalog.Default(), Options{Location: time.FixedZone("JST", 9*3600)})
	it := r.Items([]board.Record{{ID: "x", Category: "other", CreatedAt: 1704034800000}}) // 2023-12-31T15:00Z
	if it[0].Day != "2024/01/01" || it[0].Link != "/other/x" {
		t.Fatalf("item = %+v", it[0])
	}
	if got := r.Items(nil); got == nil || len(got) != 0 {
		t.Fatal("Items(nil) should be an empty slice")
	}
}

func TestPageEmptyState(t *testing.T) {
	doc, _ := page(t, newRenderer(), view(board.All))
	list := doc.Find("#event-list")
	if list.Length() != 1 {
		t.Fatal("list container missing")
	}
	if list.Find(".empty-state").Length() != 1 || list.Find(".event").Length() != 0 {
		t.Fatal("empty view must render only the empty state")
	}
	if doc.Find("#count-all").Text() != "0" {
		t.Fatalf("count-all = %q", doc.Find("#count-all").Text())
	}
}

func TestPageItemsInOrderWithMountPoints(t *testing.T) {
	recs := []board.Record{
		{ID: "b", Name: "Second", Category: "not-equal-me", CreatedAt: 1704153600000},
		{ID: "a", Name: "First", Category: "equal-love", CreatedAt: 1704067200000},
	}
	doc, _ := page(t, newRenderer(), view(board.All, recs...))

	var ids []string
	doc.Find("#event-list .event").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("data-id")
		ids = append(ids, id)
	})
	kit.MustEqualSlice(t, ids, []string{"b", "a"})

	first := doc.Find(".event").First()
	if href, _ := first.Find("a").Attr("href"); href != "https://example.com/not-equal-me/b" {
		t.Fatalf("href = %q", href)
	}
	if first.Find(".badge").Text() != "≠ME" || first.Find("time").Text() != "2024/01/02" {
		t.Fatalf("item = %q", first.Text())
	}
	if doc.Find(".empty-state").Length() != 0 {
		t.Fatal("non empty view must not render the empty state")
	}

	for _, id := range catalog.Default().IDs() {
		if doc.Find("#count-"+string(id)).Length() != 1 {
			t.Fatalf("count slot for %s missing", id)
		}
		if doc.Find(`[data-category="`+string(id)+`"]`).Length() != 1 {
			t.Fatalf("filter control for %s missing", id)
		}
	}
	if doc.Find("#count-equal-love").Text() != "1" || doc.Find("#count-all").Text() != "2" {
		t.Fatal("counts not rendered")
	}
	if doc.Find("#scroll-top").Length() != 1 {
		t.Fatal("scroll-to-top missing")
	}
	if doc.Find(`[data-category="all"].active`).Length() != 1 {
		t.Fatal("all should be the active filter")
	}
}

func TestPageEscapesNames(t *testing.T) {
	recs := []board.Record{{ID: "x", Name: `<script>alert("x")</script>`, Category: "other", CreatedAt: 1}}
	doc, raw := page(t, newRenderer(), view(board.All, recs...))
	kit.MustNotContain(t, raw, "<script>")
	kit.MustContain(t, raw, "&lt;script&gt;")
	if doc.Find("script").Length() != 0 {
		t.Fatal("name became markup")
	}
	if doc.Find(".name").Text() != `<script>alert("x")</script>` {
		t.Fatalf("name text = %q", doc.Find(".name").Text())
	}
}

func TestPageEscapesHostileIDsInLinks(t *testing.T) {
	recs := []board.Record{{ID: `"><img src=x onerror=alert(1)>`, Category: "other", CreatedAt: 1}}
	doc, _ := page(t, newRenderer(), view(board.All, recs...))
	if doc.Find("img").Length() != 0 {
		t.Fatal("id broke out of the attribute")
	}
}

func TestPageSurfacedError(t *testing.T) {
	v := view(board.All)
	v.Err = perr.Unavailablef("dial tcp 10.0.0.1: refused")
	doc, raw := page(t, newRenderer(), v)
	if doc.Find("#event-list .error-state").Length() != 1 || doc.Find(".empty-state").Length() != 0 {
		t.Fatal("error banner should replace the list")
	}
	kit.MustContain(t, raw, "(unavailable)")
	kit.MustNotContain(t, raw, "10.0.0.1")
}

func TestPageFooterMeta(t *testing.T) {
	v := view("equal-love")
	v.Meta = domain.LoadMeta{LoadID: "L-1", LoadedAt: time.Date(2024, 1, 1, 9, 5, 0, 0, time.UTC)}
	doc, _ := page(t, newRenderer(), v)
	meta := doc.Find(".load-meta")
	if id, _ := meta.Attr("data-load-id"); id != "L-1" || meta.Text() != "Loaded 2024/01/01 09:05" {
		t.Fatalf("meta = %q", meta.Text())
	}
	if doc.Find(`[data-category="equal-love"].active`).Length() != 1 {
		t.Fatal("selected filter should be active")
	}
}

func TestResp(t *testing.T) {
	v := view("equal-love", board.Record{ID: "a", Category: "equal-love", CreatedAt: 0})
	v.Err = perr.Upstreamf("403")
	resp := newRenderer().Resp(v)
	if resp.Category != "equal-love" || len(resp.Events) != 1 || resp.LoadError != "upstream" || resp.Counts.Total != 1 {
		t.Fatalf("resp = %+v", resp)
	}
	cats := newRenderer().Categories(v.Counts)
	if len(cats) != 4 || cats[0].ID != "equal-love" || cats[0].Count != 1 || cats[3].ReferenceURL != "" {
		t.Fatalf("categories = %+v", cats)
	}
}
