package main

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/maxbolgarin/contem"
	"github.com/maxbolgarin/diffbot"
	"github.com/maxbolgarin/diffbot/internal/app"
	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/logze/v2"
)

var (
	configPath = kingpin.Flag("config", "path to config file").Short('c').String()

	extractCmd    = kingpin.Command("extract", "extract structured data from one or more URLs")
	extractAPI    = extractCmd.Flag("api", "extraction API: analyze, article, frontpage, image, product, discussion, video").Default("analyze").String()
	extractFields = extractCmd.Flag("fields", "fields to return, e.g. title,images(url)").Strings()
	extractURLs   = extractCmd.Arg("url", "target URLs").Required().Strings()

	searchCmd   = kingpin.Command("search", "search a Diffbot collection")
	searchCol   = searchCmd.Flag("col", "collection to search").Default("GLOBAL-INDEX").String()
	searchQuery = searchCmd.Arg("query", "search query").Required().String()
)

func main() {
	command := kingpin.Parse()

	var err error
	ctx := contem.New(contem.WithLogger(logze.DefaultPtr()), contem.Exit(&err))
	defer ctx.Shutdown()

	err = run(ctx, command)
	if err != nil {
		logze.DefaultPtr().Error("cannot run", "error", err)
	}
}

func run(ctx contem.Context, command string) error {
	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		return erro.Wrap(err, "load config")
	}
	logze.Init(logze.C().WithConsole().WithLevel(logze.LevelInfo))

	cli, err := app.New(cfg)
	if err != nil {
		return erro.Wrap(err, "new app")
	}
	defer cli.Close()

	switch command {
	case extractCmd.FullCommand():
		return cli.Extract(ctx, diffbot.Operation(*extractAPI), *extractURLs, *extractFields)
	case searchCmd.FullCommand():
		return cli.Search(ctx, *searchCol, *searchQuery)
	}
	return nil
}
