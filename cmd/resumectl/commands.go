package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"resume-renderer/internal/app"
	"resume-renderer/internal/config"
	"resume-renderer/internal/model"
	"resume-renderer/internal/style"
	"resume-renderer/internal/usecase"
	infra "resume-renderer/pkg/infrastructure"
)

var errInvalid = errors.New("document is invalid")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "resumectl",
		Short:         "Render résumé documents to paginated PDF",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd(), newValidateCmd(), newServeCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <document.json>",
		Short: "Render a document file to PDF",
		Long: `Render a document file to PDF.

Examples:
  resumectl render sara.json
  resumectl render sara.json --page-size letter --out cv.pdf
  resumectl render sara.json --html --out preview.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			htmlOnly, _ := cmd.Flags().GetBool("html")
			pageSize, _ := cmd.Flags().GetString("page-size")

			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			if pageSize != "" {
				doc.Presentation.PageSize = pageSize
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			p, err := newProcessor(cfg)
			if err != nil {
				return err
			}

			var a *usecase.Artifact
			if htmlOnly {
				a, err = p.Layout(doc)
			} else {
				a, err = p.Render(cmd.Context(), doc)
			}
			var pe *usecase.PreconditionError
			if errors.As(err, &pe) {
				printReasons(cmd, pe.Reasons)
				return errInvalid
			}
			if err != nil {
				return err
			}

			data, ext := a.PDF, ".pdf"
			if htmlOnly {
				data, ext = a.HTML, ".html"
			}
			if out == "" {
				out = a.Filename + ext
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d pages, %s)\n", out, a.Pages, a.PageSize)
			return nil
		},
	}
	cmd.Flags().String("out", "", "output file (default: derived from the identity)")
	cmd.Flags().Bool("html", false, "write the paginated HTML instead of printing a PDF")
	cmd.Flags().String("page-size", "", "page size preset: A4 or Letter")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <document.json>",
		Short: "Check a document against the schema and export preconditions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading document: %w", err)
			}
			reasons, err := model.ValidateJSON(raw)
			if err != nil {
				return err
			}
			if len(reasons) == 0 {
				var doc model.Document
				if err := json.Unmarshal(raw, &doc); err != nil {
					return fmt.Errorf("decoding document: %w", err)
				}
				reasons = model.Precheck(&doc)
			}
			if len(reasons) > 0 {
				printReasons(cmd, reasons)
				return errInvalid
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", filepath.Base(args[0]))
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := app.New(ctx, cfg, app.NewLogger(cfg.LogLevel))
			if err != nil {
				return err
			}
			defer a.Close()
			return a.Serve(ctx)
		},
	}
}

func readDocument(path string) (*model.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	reasons, err := model.ValidateJSON(raw)
	if err != nil {
		return nil, err
	}
	if len(reasons) > 0 {
		return nil, fmt.Errorf("%w: %v", errInvalid, reasons)
	}
	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return &doc, nil
}

func newProcessor(cfg config.Config) (*usecase.Processor, error) {
	styles, err := style.NewCache(cfg.Render.StyleCacheSize)
	if err != nil {
		return nil, err
	}
	return usecase.NewProcessor(
		infra.NewChromedpRenderer(cfg.Render.ChromePath, cfg.Render.Timeout),
		usecase.Options{
			Attempts:   cfg.Render.Attempts,
			PageSize:   cfg.Render.PageSize,
			Styles:     styles,
			CountPages: infra.CountPages,
			Logger:     app.NewLogger(cfg.LogLevel),
		},
	), nil
}

func printReasons(cmd *cobra.Command, reasons []string) {
	for _, r := range reasons {
		fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", r)
	}
}
