package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"

	"eventboard/internal/core/board"
	"eventboard/internal/core/catalog"
	"eventboard/internal/modkit"
	"eventboard/internal/platform/config"
	"eventboard/internal/platform/logger"
	"eventboard/internal/services/events/module"
	"eventboard/internal/services/events/render"
)

func main() { os.Exit(run()) }

func run() int {
	var (
		fOut      = flag.String("out", "-", "output file, - for stdout")
		fCategory = flag.String("category", "all", "category id or all")
		fStrict   = flag.Bool("strict", false, "exit 2 when the fetch failed")
	)
	flag.Parse()

	root := config.New()
	logger.Init(logger.FromEnv())
	l := logger.Named("render")

	o := module.FromConfig(root)
	b, err := module.LoadBoard(context.Background(), modkit.Deps{Cfg: root, Log: l}, o)
	if err != nil {
		l.Error().Err(err).Msg("board setup failed")
		return 1
	}

	sel, ok := board.ParseSelector(*fCategory, b.Catalog())
	if !ok {
		l.Error().Str("category", *fCategory).Strs("known", ids(b.Catalog())).Msg("unknown category")
		return 1
	}

	var buf bytes.Buffer
	if err := render.New(b.Catalog(), o.Render).Page(&buf, b.View(sel)); err != nil {
		l.Error().Err(err).Msg("render page")
		return 1
	}
	if err := write(*fOut, buf.Bytes()); err != nil {
		l.Error().Err(err).Str("out", *fOut).Msg("write page")
		return 1
	}
	l.Info().Str("out", *fOut).Str("category", string(sel)).Int("records", b.Counts().Of(sel)).Msg("page written")

	if *fStrict && b.Meta().Failed {
		l.Error().Msg("fetch failed; page shows an empty board")
		return 2
	}
	return 0
}

// write replaces path atomically; "-" is stdout
func write(path string, page []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(page)
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".eventboard-*.html")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(page); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func ids(c *catalog.Catalog) []string {
	out := make([]string, 0, c.Len())
	for _, id := range c.IDs() {
		out = append(out, string(id))
	}
	return out
}
