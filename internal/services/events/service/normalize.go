package service

import (
	"eventboard/internal/adapters/ingest/firestore"
	"eventboard/internal/core/board"
	"eventboard/internal/core/catalog"
	"eventboard/internal/core/normalize"
	perr "eventboard/internal/platform/errors"
)

// Fields names the document fields a record is read from
type Fields struct {
	Name string
	URL  string
}

// DefaultFields are the field names the source collection uses
var DefaultFields = Fields{Name: "name", URL: "url"}

// Normalize maps one source document to a record. The id is the last segment
// of the document name, the category comes from classifying the url field and
// CreatedAt is the document create time in epoch millis. A missing name or url
// field reads as empty. A document without an id or a parseable create time is
// an InvalidArgument error
func Normalize(doc firestore.Document, cat *catalog.Catalog, f Fields) (board.Record, error) {
	id := doc.ID()
	if id == "" {
		return board.Record{}, perr.InvalidArgf("document %q has no id", doc.Name)
	}
	if doc.CreateTime == "" {
		return board.Record{}, perr.WithField(perr.InvalidArgf("document %s has no createTime", id), "createTime")
	}
	created, err := doc.Created()
	if err != nil {
		return board.Record{}, perr.WithField(
			perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "document %s createTime", id), "createTime")
	}
	return board.Record{
		ID:        id,
		Name:      normalize.Name(doc.String(f.Name)),
		Category:  cat.Classify(doc.String(f.URL)),
		CreatedAt: created.UnixMilli(),
	}, nil
}
