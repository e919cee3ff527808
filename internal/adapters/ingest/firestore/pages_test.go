package firestore

import (
	"context"
	"errors"
	"testing"
)

type scripted struct {
	pages  map[string]ListResponse
	errAt  string
	tokens []string
}

func (s *scripted) ListDocuments(_ context.Context, token string) (ListResponse, error) {
	s.tokens = append(s.tokens, token)
	if token == s.errAt && s.errAt != "" {
		return ListResponse{}, errors.New("boom")
	}
	return s.pages[token], nil
}

func TestPagesFollowsTokensAndToleratesEmptyPages(t *testing.T) {
	l := &scripted{pages: map[string]ListResponse{
		"":   {Documents: []Document{{Name: "a/1"}}, NextPageToken: "t1"},
		"t1": {NextPageToken: "t2"},
		"t2": {Documents: []Document{{Name: "a/2"}, {Name: "a/3"}}},
	}}

	var docs int
	var pages int
	for page, err := range Pages(context.Background(), l) {
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		pages++
		docs += len(page.Documents)
	}
	if pages != 3 || docs != 3 {
		t.Fatalf("pages=%d docs=%d", pages, docs)
	}
	if len(l.tokens) != 3 || l.tokens[1] != "t1" || l.tokens[2] != "t2" {
		t.Fatalf("tokens = %q", l.tokens)
	}
}

func TestPagesStopsAtFirstError(t *testing.T) {
	l := &scripted{
		pages: map[string]ListResponse{"": {NextPageToken: "t1"}, "t1": {NextPageToken: "t2"}},
		errAt: "t1",
	}
	var errs int
	for _, err := range Pages(context.Background(), l) {
		if err != nil {
			errs++
		}
	}
	if errs != 1 || len(l.tokens) != 2 {
		t.Fatalf("errs=%d tokens=%q", errs, l.tokens)
	}
}

func TestPagesEarlyBreakAndCancel(t *testing.T) {
	l := &scripted{pages: map[string]ListResponse{"": {NextPageToken: "t1"}, "t1": {}}}
	for range Pages(context.Background(), l) {
		break
	}
	if len(l.tokens) != 1 {
		t.Fatalf("break should stop fetching, tokens=%q", l.tokens)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l2 := &scripted{}
	for _, err := range Pages(ctx, l2) {
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v", err)
		}
	}
	if len(l2.tokens) != 0 {
		t.Fatal("cancelled walk must not call the source")
	}
}
