package module

import (
	"context"

	"eventboard/internal/adapters/ingest/firestore"
	"eventboard/internal/core/catalog"
	"eventboard/internal/modkit"
	"eventboard/internal/services/events/service"
)

// Catalog returns the configured catalog, the embedded one when no file is set
func Catalog(o Options) (*catalog.Catalog, error) {
	if o.CatalogFile == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(o.CatalogFile)
}

// LoadBoard performs the one fetch of a session. The error covers setup only
// (catalog, client); fetch failures live on the board per the failure policy
func LoadBoard(ctx context.Context, deps modkit.Deps, o Options) (*service.Board, error) {
	cat, err := Catalog(o)
	if err != nil {
		return nil, err
	}
	client, err := firestore.NewClient(o.Source)
	if err != nil {
		return nil, err
	}
	svc := service.New(client, cat, deps.Metrics, service.Config{
		Policy: o.Policy,
		Fields: o.Fields,
	})
	deps.Logger("events").Debug().
		Str("collection", client.Collection()).
		Int("categories", cat.Len()).
		Msg("loading board")
	return svc.Load(ctx), nil
}
