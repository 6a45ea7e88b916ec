// Command namecorpus decodes annotated named-entity corpora into name samples.
// It prints, summarizes and exports samples, packs corpus directories into
// archives, and inspects trained model resources.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/namecorpus/core/formats"
	"github.com/FocuswithJustin/namecorpus/internal/logging"

	// Register corpus formats.
	_ "github.com/FocuswithJustin/namecorpus/internal/formats/ontonotes"
)

const version = "0.1.0"

// defaultConfig is read when present. Flags and environment override it.
const defaultConfig = "~/.namecorpus.json"

// Globals are flags shared by every command.
type Globals struct {
	LogLevel  string          `name:"log-level" default:"info" enum:"debug,info,warn,error" env:"NAMECORPUS_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
	LogFormat string          `name:"log-format" default:"text" enum:"text,json" env:"NAMECORPUS_LOG_FORMAT" help:"Log format (text, json)"`
	Config    kong.ConfigFlag `name:"config" help:"Load flag defaults from a JSON file" type:"path"`
}

// CLI defines the command-line interface for namecorpus.
type CLI struct {
	Globals

	Samples SamplesCmd `cmd:"" help:"Print decoded name samples"`
	Stats   StatsCmd   `cmd:"" help:"Summarize a corpus"`
	Docs    DocsCmd    `cmd:"" help:"List the documents of a corpus"`
	Export  ExportCmd  `cmd:"" help:"Export name samples to a SQLite database"`
	Runs    RunsCmd    `cmd:"" help:"List export runs or print the samples of one"`
	Pack    PackCmd    `cmd:"" help:"Pack a corpus directory into a tar archive"`
	Formats FormatsCmd `cmd:"" help:"List supported corpus formats"`
	Model   ModelCmd   `cmd:"" help:"Show a trained model resource"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// newParser builds the kong parser. Commands receive out as their io.Writer.
func newParser(cli *CLI, out io.Writer, configPaths ...string) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("namecorpus"),
		kong.Description("Decode OntoNotes-style named-entity corpora into name samples"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Configuration(kong.JSON, configPaths...),
		kong.Bind(&cli.Globals),
		kong.BindTo(out, (*io.Writer)(nil)),
	)
}

// setupLogging configures the global logger from the parsed flags.
func (g *Globals) setupLogging(w io.Writer) error {
	level, err := logging.ParseLevel(g.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(g.LogFormat)
	if err != nil {
		return err
	}
	logging.InitLoggerTo(w, level, format)
	return nil
}

func main() {
	var cli CLI
	parser, err := newParser(&cli, os.Stdout, defaultConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	ctx.FatalIfErrorf(cli.setupLogging(os.Stderr))

	if err := ctx.Run(ctx); err != nil {
		logging.Error("command failed", "command", ctx.Command(), "error", err)
		ctx.FatalIfErrorf(err)
	}
}

// FormatsCmd lists the registered corpus formats.
type FormatsCmd struct{}

func (c *FormatsCmd) Run(out io.Writer) error {
	for _, f := range formats.List() {
		fmt.Fprintf(out, "%-12s %s\n", f.Name, f.Description)
		if len(f.Extensions) > 0 {
			fmt.Fprintf(out, "%-12s extensions: %v\n", "", f.Extensions)
		}
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(out io.Writer) error {
	fmt.Fprintf(out, "namecorpus version %s\n", version)
	fmt.Fprintf(out, "sqlite driver: %s\n", sqliteDriver())
	return nil
}
