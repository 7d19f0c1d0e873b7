package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UTD-JLA/dictionary/internal/loader"
	"github.com/UTD-JLA/dictionary/pkg/pairs"
	"github.com/dustin/go-humanize"
)

var configPath = flag.String("config", "dictload.toml", "Path to config file")
var debug = flag.Bool("debug", false, "Enable debug logging")

func main() {
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	config := NewConfig()

	err := config.Load(*configPath)

	// a missing config is fine when sources are given as arguments
	if err != nil && !(errors.Is(err, os.ErrNotExist) && flag.NArg() > 0) {
		log.Fatal(err)
	}

	for _, path := range flag.Args() {
		config.Sources = append(config.Sources, pairs.NewSource(path))
	}

	if len(config.Sources) == 0 {
		log.Fatal("no sources configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Loading pairs", slog.Int("sources", len(config.Sources)))

	d, err := loader.Load[string, any](ctx, config.LoaderConfig())

	if err != nil {
		log.Fatal(err)
	}

	slog.Info("Loaded dictionary", slog.String("keys", humanize.Comma(int64(d.Len()))))

	for _, key := range config.Lookup {
		if v, ok := d.Get(key); ok {
			fmt.Printf("%s: %v\n", key, v)
		} else {
			fmt.Printf("%s: not found\n", key)
		}
	}

	if config.Print {
		fmt.Println(d)
	}
}
