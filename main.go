package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"deckgen/config"
	"deckgen/deck"
	"deckgen/export"
	"deckgen/logger"
)

// errSaveFailed is returned under --strict after the save failure has already
// been reported on stdout.
var errSaveFailed = errors.New("save failed")

type options struct {
	configPath string
	scriptPath string
	output     string
	handout    string
	logDir     string
	strict     bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "deckgen",
		Short: "Generate the Farmiga project slide deck",
		Long: `deckgen writes the Farmiga project presentation as a PPTX file.

Run without arguments to write Farmiga_Project_Presentation.pptx in the current
directory. A different deck can be supplied as a YAML script with --script.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(opts, cmd.Flags())
			if err != nil {
				return err
			}

			log := logger.NewLogger(opts.verbose, zap.String("run_id", uuid.NewString()))
			if cfg.LogDir != "" {
				if err := log.Init(cfg.LogDir); err != nil {
					return err
				}
			}
			defer log.Close()
			log.Logf("generating %s (handout %q, strict %t)", cfg.OutputFile, cfg.Handout, cfg.Strict)

			return generate(cfg, opts.scriptPath, log, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML config file (style, paths)")
	f.StringVar(&opts.scriptPath, "script", "", "YAML deck script (default: built-in Farmiga deck)")
	f.StringVarP(&opts.output, "output", "o", config.DefaultOutputFile, "output PPTX path")
	f.StringVar(&opts.handout, "handout", "", "also write a handout: pdf or docx")
	f.StringVar(&opts.logDir, "log-dir", "", "write a run log file into this directory")
	f.BoolVar(&opts.strict, "strict", false, "exit non-zero when saving fails")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")

	return cmd
}

// resolveConfig layers explicitly set flags over the loaded configuration.
func resolveConfig(opts *options, flags *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if flags.Changed("output") {
		cfg.OutputFile = opts.output
	}
	if flags.Changed("handout") {
		cfg.Handout = strings.ToLower(opts.handout)
	}
	if flags.Changed("log-dir") {
		cfg.LogDir = opts.logDir
	}
	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

// generate builds the deck and saves it. Build errors are returned as-is. Save
// errors are reported once on out and only returned under Strict; a failed
// handout does not retract the presentation that was already written.
func generate(cfg config.Config, scriptPath string, log *logger.Logger, out io.Writer) error {
	script, err := loadScript(scriptPath)
	if err != nil {
		if scriptPath != "" {
			return WrapOperationError("load script "+scriptPath, err)
		}
		return WrapOperationError("load built-in script", err)
	}

	b := deck.NewBuilder(cfg.Style, log.Zap())
	if err := script.Build(b); err != nil {
		return WrapOperationError("build deck", err)
	}
	log.Log("deck built",
		zap.Int("slides", b.Len()),
		zap.String("title", script.Title),
		zap.String("logo", script.LogoPath))

	if err := savePresentation(cfg.OutputFile, b, log); err != nil {
		log.Error("save failed", err, zap.String("output", cfg.OutputFile))
		fmt.Fprintf(out, "Error creating presentation: %v\n", err)
		return saveFailure(cfg)
	}
	fmt.Fprintf(out, "Successfully created presentation: %s\n", cfg.OutputFile)

	if cfg.Handout == config.HandoutNone {
		return nil
	}
	path := handoutPath(cfg.OutputFile, cfg.Handout)
	if err := saveHandout(cfg, path, script, b); err != nil {
		log.Error("handout failed", err, zap.String("handout", path))
		fmt.Fprintf(out, "Error creating handout: %v\n", err)
		return saveFailure(cfg)
	}
	log.Log("handout saved", zap.String("path", path), zap.String("format", cfg.Handout))
	fmt.Fprintf(out, "Successfully created handout: %s\n", path)
	return nil
}

func saveFailure(cfg config.Config) error {
	if cfg.Strict {
		return errSaveFailed
	}
	return nil
}

func loadScript(path string) (deck.Script, error) {
	if path == "" {
		return deck.DefaultScript()
	}
	return deck.LoadScript(path)
}

func savePresentation(path string, b *deck.Builder, log *logger.Logger) error {
	data, err := export.NewPPTExportService().Export(b.Presentation())
	if err != nil {
		return artifactError("presentation", "export", "", err)
	}
	if err := export.SaveFile(path, data); err != nil {
		return artifactError("presentation", "save", path, err)
	}
	log.Log("presentation saved", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

func saveHandout(cfg config.Config, path string, script deck.Script, b *deck.Builder) error {
	var (
		data []byte
		err  error
	)
	switch cfg.Handout {
	case config.HandoutPDF:
		data, err = export.NewPDFExportService(cfg.Style).Export(script.Title, b.Slides())
	case config.HandoutDocx:
		data, err = export.NewWordExportService(cfg.Style).Export(script.Title, script.Author, b.Slides())
	default:
		err = fmt.Errorf("unknown handout format %q", cfg.Handout)
	}
	if err != nil {
		return artifactError("handout", "export", "", err)
	}
	return artifactError("handout", "save", path, export.SaveFile(path, data))
}

// handoutPath derives the handout file name from the PPTX path:
// deck.pptx -> deck.handout.pdf or deck.outline.docx
func handoutPath(output, format string) string {
	base := strings.TrimSuffix(output, filepath.Ext(output))
	if format == config.HandoutDocx {
		return base + ".outline.docx"
	}
	return base + ".handout." + format
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errSaveFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
