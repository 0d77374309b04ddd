package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/wardrobe"
	"github.com/gogpu/wardrobe/internal/config"
	"github.com/gogpu/wardrobe/view"
)

// app holds state shared by all subcommands of one invocation.
type app struct {
	configPath string
	resRoot    string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
	lib    *wardrobe.Library
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "wardrobe",
		Short:        "Compose layered 2D character sprites",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to config file (default $WARDROBE_CONFIG or ./wardrobe.yaml)")
	root.PersistentFlags().StringVarP(&a.resRoot, "res", "r", "", "Resource root directory (overrides config)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	root.AddCommand(
		newInspectCmd(a),
		newRenderCmd(a),
		newRandomCmd(a),
		newSheetCmd(a),
		newProjectCmd(a),
	)
	return root
}

// setup loads configuration, installs the logger and opens the library.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.resRoot != "" {
		cfg.Resources.Root = a.resRoot
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	a.cfg = cfg

	a.logger = config.NewLogger(cfg.Log, cmd.ErrOrStderr())
	wardrobe.SetLogger(a.logger)

	zoom, err := view.NewZoomWith(cfg.View.Zoom, cfg.View.ZoomStep)
	if err != nil {
		return err
	}

	opts := []wardrobe.Option{
		wardrobe.WithLogger(a.logger),
		wardrobe.WithInventory(cfg.Resources.ArticlesFile),
		wardrobe.WithPadding(cfg.Render.Padding),
		wardrobe.WithZoom(zoom),
		wardrobe.WithCacheSize(cfg.Cache.Size),
	}
	if cfg.Resources.DefaultBody {
		opts = append(opts, wardrobe.WithDefaultBody())
	}
	a.lib, err = wardrobe.NewLibrary(cfg.Resources.Root, opts...)
	if err != nil {
		return fmt.Errorf("open resources: %w", err)
	}
	return nil
}

// open loads a character and reports a catalog without articles as an error,
// since every command that opens a character needs something to draw.
func (a *app) open(character, inventory string) (*wardrobe.Document, error) {
	doc, err := a.lib.Open(character, inventory)
	if err != nil {
		return nil, err
	}
	if doc.Catalog().Empty() {
		return nil, fmt.Errorf("character %q has no articles in %s", character, doc.Catalog().InventoryFile)
	}
	return doc, nil
}
