package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"time"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/namecorpus/core/errors"
	"github.com/FocuswithJustin/namecorpus/core/formats"
	"github.com/FocuswithJustin/namecorpus/core/models"
	"github.com/FocuswithJustin/namecorpus/core/sample"
	"github.com/FocuswithJustin/namecorpus/core/sqlite"
	"github.com/FocuswithJustin/namecorpus/core/stream"
	"github.com/FocuswithJustin/namecorpus/core/tokenize"
	"github.com/FocuswithJustin/namecorpus/internal/archive"
	"github.com/FocuswithJustin/namecorpus/internal/export"
	"github.com/FocuswithJustin/namecorpus/internal/formats/ontonotes"
	"github.com/FocuswithJustin/namecorpus/internal/logging"
	"github.com/FocuswithJustin/namecorpus/internal/source"
	"github.com/FocuswithJustin/namecorpus/internal/validation"
)

// CorpusFlags select a corpus and how to read it.
type CorpusFlags struct {
	Path   string `arg:"" help:"Corpus directory, tar archive or concatenated file" type:"existingpath"`
	Format string `default:"ontonotes" help:"Corpus format"`
	Ext    string `name:"ext" default:".name" help:"Extension of corpus files inside directories and archives"`
}

// SelectFlags choose which samples of a corpus are used.
type SelectFlags struct {
	Shuffle bool     `help:"Shuffle samples with the fixed default seed"`
	Skip    int      `help:"Skip this many samples (after shuffling)"`
	Limit   int      `help:"Stop after this many samples (0 means all)"`
	Label   []string `help:"Keep only samples with an entity of one of these types" sep:","`
}

func (c *CorpusFlags) open(sel SelectFlags) (stream.Stream[sample.NameSample], error) {
	logging.Debug("opening corpus", "path", c.Path, "format", c.Format, "ext", c.Ext)
	return formats.Open(c.Format, formats.Params{
		Path:      c.Path,
		Extension: c.Ext,
		Shuffle:   sel.Shuffle,
		Skip:      sel.Skip,
		Limit:     sel.Limit,
		Labels:    sel.Label,
		Logger:    logging.GetLogger(),
	})
}

// SamplesCmd prints decoded samples.
type SamplesCmd struct {
	CorpusFlags
	SelectFlags
	Output string `name:"output" short:"o" default:"text" enum:"text,json" help:"Output format (text, json)"`
}

func (c *SamplesCmd) Run(out io.Writer) error {
	s, err := c.open(c.SelectFlags)
	if err != nil {
		return err
	}
	defer s.Close()
	return printSamples(out, s, c.Output)
}

// printSamples writes s as training-format text or JSON Lines.
func printSamples(out io.Writer, s stream.Stream[sample.NameSample], output string) error {
	if output == "json" {
		_, err := export.NewJSONWriter(out).WriteAll(s)
		return err
	}
	return stream.ForEach(s, func(ns sample.NameSample) error {
		_, err := fmt.Fprintln(out, ns.String())
		return err
	})
}

// CorpusStats summarizes a corpus.
type CorpusStats struct {
	Documents   int            `json:"documents"`
	Samples     int            `json:"samples"`
	Tokens      int            `json:"tokens"`
	Spans       int            `json:"spans"`
	Labels      map[string]int `json:"labels"`
	Fingerprint string         `json:"blake3"`
}

// collectStats reads every sample of s. The fingerprint is the BLAKE3 digest
// of the samples in training format, one per line.
func collectStats(s stream.Stream[sample.NameSample]) (*CorpusStats, error) {
	st := &CorpusStats{Labels: make(map[string]int)}
	h := blake3.New()
	err := stream.ForEach(s, func(ns sample.NameSample) error {
		if ns.ClearAdaptiveData {
			st.Documents++
		}
		st.Samples++
		st.Tokens += len(ns.Tokens)
		st.Spans += len(ns.Names)
		for _, n := range ns.Names {
			st.Labels[n.Type]++
		}
		_, err := io.WriteString(h, ns.String()+"\n")
		return err
	})
	if err != nil {
		return nil, err
	}
	st.Fingerprint = hex.EncodeToString(h.Sum(nil))
	return st, nil
}

// StatsCmd prints corpus statistics.
type StatsCmd struct {
	CorpusFlags
	JSON bool `name:"json" help:"Print statistics as JSON"`
}

func (c *StatsCmd) Run(out io.Writer) error {
	s, err := c.open(SelectFlags{})
	if err != nil {
		return err
	}
	defer s.Close()

	st, err := collectStats(s)
	if err != nil {
		return err
	}
	if c.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}

	fmt.Fprintf(out, "Documents: %d\n", st.Documents)
	fmt.Fprintf(out, "Samples:   %d\n", st.Samples)
	fmt.Fprintf(out, "Tokens:    %d\n", st.Tokens)
	fmt.Fprintf(out, "Spans:     %d\n", st.Spans)
	labels := make([]string, 0, len(st.Labels))
	for l := range st.Labels {
		labels = append(labels, l)
	}
	slices.Sort(labels)
	for _, l := range labels {
		fmt.Fprintf(out, "  %-14s %d\n", l, st.Labels[l])
	}
	fmt.Fprintf(out, "BLAKE3:    %s\n", st.Fingerprint)
	return nil
}

// DocsCmd lists the documents of an OntoNotes corpus.
type DocsCmd struct {
	Path string `arg:"" help:"Corpus directory, tar archive or concatenated file" type:"existingpath"`
	Ext  string `name:"ext" default:".name" help:"Extension of corpus files inside directories and archives"`
}

func (c *DocsCmd) Run(out io.Writer) error {
	docs, err := source.Open(c.Path, c.Ext)
	if err != nil {
		return err
	}
	defer docs.Close()

	infos, err := ontonotes.ScanDocuments(docs, tokenize.Whitespace)
	if err != nil {
		return err
	}
	for _, d := range infos {
		docNo := d.Header.DocNo
		if docNo == "" {
			docNo = "-"
		}
		fmt.Fprintf(out, "%4d  %-48s samples=%d names=%d\n", d.Index, docNo, d.Samples, d.Names)
	}
	fmt.Fprintf(out, "%d documents\n", len(infos))
	return nil
}

// ExportCmd writes samples into a SQLite database.
type ExportCmd struct {
	CorpusFlags
	SelectFlags
	DB string `name:"db" required:"" help:"SQLite database path" type:"path"`
}

func (c *ExportCmd) Run(out io.Writer) error {
	if err := validation.ValidatePath(c.DB); err != nil {
		return fmt.Errorf("invalid database path: %w", err)
	}

	s, err := c.open(c.SelectFlags)
	if err != nil {
		return err
	}
	defer s.Close()

	sink, err := export.OpenSQLite(c.DB, logging.GetLogger())
	if err != nil {
		return err
	}
	defer sink.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run, err := sink.Write(ctx, c.Path, c.Format, s)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if run.Samples == 0 {
		logging.Warn("export wrote no samples", "path", c.Path, "db", c.DB)
	}
	fmt.Fprintf(out, "Run:     %s\n", run.ID)
	fmt.Fprintf(out, "Samples: %d\n", run.Samples)
	fmt.Fprintf(out, "Spans:   %d\n", run.Spans)
	fmt.Fprintf(out, "Output:  %s\n", c.DB)
	return nil
}

// RunsCmd inspects a database written by export.
type RunsCmd struct {
	DB     string `arg:"" help:"SQLite database written by export" type:"existingfile"`
	ID     string `name:"run" help:"Print the samples of this run instead of listing runs"`
	Output string `name:"output" short:"o" default:"text" enum:"text,json" help:"Sample output format (text, json)"`
}

func (c *RunsCmd) Run(out io.Writer) error {
	sink, err := export.OpenSQLiteReadOnly(c.DB, logging.GetLogger())
	if err != nil {
		return err
	}
	defer sink.Close()

	ctx := context.Background()
	runs, err := sink.Runs(ctx)
	if err != nil {
		return err
	}
	if c.ID == "" {
		for _, r := range runs {
			fmt.Fprintf(out, "%s  %s  %-10s %6d samples %6d spans  %s\n",
				r.ID, r.CreatedAt.Format(time.RFC3339), r.Format, r.Samples, r.Spans, r.Source)
		}
		return nil
	}

	if !slices.ContainsFunc(runs, func(r export.Run) bool { return r.ID == c.ID }) {
		return errors.NewNotFound("run", c.ID)
	}
	s, err := sink.Samples(ctx, c.ID)
	if err != nil {
		return err
	}
	defer s.Close()
	return printSamples(out, s, c.Output)
}

// PackCmd packs corpus files into an archive.
type PackCmd struct {
	Dir string `arg:"" help:"Corpus directory" type:"existingdir"`
	Out string `required:"" help:"Output archive (.tar, .tar.gz, .tgz, .tar.xz, .txz)" type:"path"`
	Ext string `name:"ext" default:".name" help:"Extension of files to include (empty for all)"`
}

func (c *PackCmd) Run(out io.Writer) error {
	if err := validation.ValidatePath(c.Out); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	if !archive.IsArchive(c.Out) {
		return errors.NewValidation("out", "unsupported archive extension: "+c.Out)
	}
	n, err := archive.Create(c.Dir, c.Out, c.Ext)
	if err != nil {
		return err
	}
	if n == 0 {
		logging.Warn("no corpus files matched", "dir", c.Dir, "ext", c.Ext)
	}
	logging.Info("corpus_packed", "files", n, "out", c.Out)
	fmt.Fprintf(out, "Packed %d files into %s\n", n, c.Out)
	return nil
}

// ModelCmd shows a model resource.
type ModelCmd struct {
	Model      string `arg:"" help:"Model file" type:"path"`
	Properties string `help:"Properties file describing the model" type:"path"`
}

func (c *ModelCmd) Run(out io.Writer) error {
	m, err := models.NewLoader("", logging.GetLogger()).Load(models.Entry{
		Model:      c.Model,
		Properties: c.Properties,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Model:  %s\n", m.Path)
	fmt.Fprintf(out, "Size:   %d bytes\n", m.Size)
	fmt.Fprintf(out, "BLAKE3: %s\n", m.Digest)
	if len(m.Properties) > 0 {
		fmt.Fprintln(out, "Properties:")
		keys := make([]string, 0, len(m.Properties))
		for k := range m.Properties {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "  %s = %s\n", k, m.Properties[k])
		}
	}
	return nil
}

func sqliteDriver() string {
	info := sqlite.GetInfo()
	return strings.Join([]string{info.DriverName, info.DriverType, info.Package}, " / ")
}
