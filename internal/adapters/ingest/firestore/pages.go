package firestore

import (
	"context"
	"iter"
)

// Lister fetches one page given a continuation token
type Lister interface {
	ListDocuments(ctx context.Context, token string) (ListResponse, error)
}

// Pages walks a collection as a lazy page sequence. It follows nextPageToken
// until a page comes back without one. A page with no documents does not end
// the walk. The first error is yielded once and ends it
func Pages(ctx context.Context, l Lister) iter.Seq2[ListResponse, error] {
	return func(yield func(ListResponse, error) bool) {
		token := ""
		for {
			if err := ctx.Err(); err != nil {
				yield(ListResponse{}, err)
				return
			}
			page, err := l.ListDocuments(ctx, token)
			if err != nil {
				yield(ListResponse{}, err)
				return
			}
			if !yield(page, nil) {
				return
			}
			if page.NextPageToken == "" {
				return
			}
			token = page.NextPageToken
		}
	}
}
