package app

import (
	"context"
	"fmt"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/maxbolgarin/abstract"
	"github.com/maxbolgarin/diffbot"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
	"github.com/panjf2000/ants/v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// App runs extraction and search commands against the Diffbot API.
type App struct {
	client *diffbot.Client
	pool   *ants.Pool

	cfg Config
	log logze.Logger

	printMu sync.Mutex
}

// New creates the application from a validated config.
func New(cfg Config) (*App, error) {
	client, err := diffbot.NewWithConfig(diffbot.Config{
		Token:     cfg.Token,
		Version:   cfg.Version,
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		ProxyURL:  cfg.ProxyURL,
		Timeout:   cfg.Timeout,
	})
	if err != nil {
		return nil, errm.Wrap(err, "failed to create Diffbot client")
	}

	pool, err := ants.NewPool(cfg.Concurrency)
	if err != nil {
		return nil, errm.Wrap(err, "failed to create worker pool")
	}

	return &App{
		client: client,
		pool:   pool,
		cfg:    cfg,
		log:    logze.With("component", "app"),
	}, nil
}

// Close releases the worker pool.
func (a *App) Close() {
	a.pool.Release()
}

// Extract runs one extraction per URL through the worker pool and prints
// each result as indented JSON. The client itself stays one round trip
// per call; the fan-out lives here.
func (a *App) Extract(ctx context.Context, op diffbot.Operation, urls []string, fields []string) error {
	timer := abstract.StartTimer()

	var params diffbot.Params
	if len(fields) > 0 {
		params = diffbot.Params{"fields": diffbot.FieldsParam(fields...)}
	}

	var (
		wg     sync.WaitGroup
		failMu sync.Mutex
		failed int
	)
	for _, target := range urls {
		wg.Add(1)
		err := a.pool.Submit(func() {
			defer wg.Done()
			doc, err := a.client.Call(ctx, op, target, params)
			if err != nil {
				a.log.Error("extraction failed", "api", op, "url", target, "error", err)
				failMu.Lock()
				failed++
				failMu.Unlock()
				return
			}
			a.print(doc)
		})
		if err != nil {
			wg.Done()
			return errm.Wrap(err, "failed to submit extraction task")
		}
	}
	wg.Wait()

	a.log.Info("extraction finished",
		"api", op,
		"urls", len(urls),
		"failed", failed,
		"elapsed_time", timer.ElapsedTime().String(),
	)
	if failed > 0 {
		return errm.Errorf("%d of %d extractions failed", failed, len(urls))
	}
	return nil
}

// Search runs one collection query and prints the result.
func (a *App) Search(ctx context.Context, col, query string) error {
	doc, err := a.client.Search(ctx, col, query)
	if err != nil {
		return errm.Wrap(err, "search failed")
	}
	a.print(doc)
	return nil
}

func (a *App) print(doc diffbot.Document) {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		a.log.Error("failed to marshal document", "error", err)
		return
	}
	a.printMu.Lock()
	fmt.Println(string(out))
	a.printMu.Unlock()
}
