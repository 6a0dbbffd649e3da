// Package main is the vartani CLI entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/telugutools/vartani/internal/checker"
	"github.com/telugutools/vartani/internal/cli"
	"github.com/telugutools/vartani/internal/config"
	"github.com/telugutools/vartani/internal/corpus"
	"github.com/telugutools/vartani/internal/extract"
	"github.com/telugutools/vartani/internal/report"
	"github.com/telugutools/vartani/internal/watcher"
	"github.com/telugutools/vartani/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/vartani/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); when neither
// exists the built-in defaults are used so the tool works out of the box.
func loadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if cwd, err := os.Getwd(); err == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, err := os.Stat(fallback); err == nil {
				return config.Load(fallback)
			}
		}
		if _, err := os.Stat(path); err != nil {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

func newLogger(cfg *config.Config, debug bool) *zap.Logger {
	logger, err := utils.NewLogger(cfg.Debug || debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func initEngine(cfg *config.Config, logger *zap.Logger) *checker.Engine {
	engine, err := checker.BuildOrLoad(cfg, checker.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize engine: %v\n", err)
		os.Exit(1)
	}
	return engine
}

// readInput resolves document text: -text wins, then a file argument, with
// "-" meaning stdin.
func readInput(text string, args []string) (string, error) {
	if text != "" {
		return text, nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("no input: pass a file path, \"-\" for stdin, or -text")
	}
	if args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input file: %w", err)
	}
	return string(data), nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "check":
		runCheck()
	case "correct":
		runCorrect()
	case "candidates":
		runCandidates()
	case "build-index":
		runBuildIndex()
	case "status":
		runStatus()
	case "corpus":
		runCorpus()
	case "version", "--version", "-v":
		fmt.Printf("vartani version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`vartani - Telugu spell checker

Usage:
  vartani check [flags] <file|->      check a document and print the report
  vartani correct [flags] <file|->    print the corrected text only
  vartani candidates [flags] <word>   print ranked suggestions for one word
  vartani build-index [flags]         rebuild the vocabulary index snapshot
  vartani status [flags]              print index and report store status
  vartani corpus <subcommand>         offline corpus pipeline (see below)
  vartani version                     print version

Corpus subcommands:
  vartani corpus clean <in> <out>       clean one raw text file
  vartani corpus merge -out <f> <in...> merge and deduplicate line files
  vartani corpus tokenize [flags] <in>  derive sentence/token/vocabulary files
  vartani corpus ingest [flags]         clean every file in the raw directory
  vartani corpus watch [flags]          watch the raw directory and ingest

Run any subcommand with -h for its flags.
`)
}

func runCheck() {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	docID := fs.String("id", "", "document id (random when empty)")
	text := fs.String("text", "", "check this text instead of a file")
	output := fs.String("output", "text", "output format: text or json")
	save := fs.Bool("save", false, "save the report to the report database")
	metrics := fs.Bool("metrics", false, "print engine metrics after the report")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	format, err := cli.ParseFormat(*output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	input, err := readInput(*text, fs.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg, *debug)
	defer logger.Sync()

	engine := initEngine(cfg, logger)
	id := *docID
	if id == "" {
		id = uuid.New().String()
	}
	engine.Check(id, input)

	rep, err := engine.Export(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteCheckReport(os.Stdout, rep, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}

	if *metrics {
		if err := cli.WriteMetrics(os.Stdout, engine.Metrics(), format); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
	}

	if *save {
		if cfg.Report.DatabasePath == "" {
			fmt.Fprintln(os.Stderr, "report.database_path is not configured; report not saved")
			os.Exit(1)
		}
		store, err := report.NewStore(cfg.Report.DatabasePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open report store: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		rowID, err := store.Save(context.Background(), rep)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Report saved: %s\n", rowID)
	}
}

func runCorrect() {
	fs := flag.NewFlagSet("correct", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	text := fs.String("text", "", "correct this text instead of a file")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	input, err := readInput(*text, fs.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg, *debug)
	defer logger.Sync()

	engine := initEngine(cfg, logger)
	id := uuid.New().String()
	engine.Check(id, input)
	corrected, err := engine.Correct(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Correct failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(corrected)
}

func runCandidates() {
	fs := flag.NewFlagSet("candidates", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	topK := fs.Int("k", 0, "number of candidates (0 = configured maximum)")
	output := fs.String("output", "text", "output format: text or json")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vartani candidates [flags] <word>")
		os.Exit(1)
	}
	word := fs.Arg(0)

	format, err := cli.ParseFormat(*output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg, *debug)
	defer logger.Sync()

	engine := initEngine(cfg, logger)
	if engine.Index().Contains(word) {
		fmt.Printf("%s is spelled correctly\n", word)
		return
	}
	cands := engine.Candidates(word, *topK)
	if err := cli.WriteCandidates(os.Stdout, word, cands, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runBuildIndex() {
	fs := flag.NewFlagSet("build-index", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg, *debug)
	defer logger.Sync()

	index, err := checker.RebuildIndex(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Build failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Index built: %d words, %d occurrences -> %s\n",
		index.Len(), index.TotalOccurrences(), cfg.Vocabulary.IndexPath)
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg, *debug)
	defer logger.Sync()

	engine := initEngine(cfg, logger)
	idx := engine.Index()
	fmt.Printf("Vocabulary:  %d words, %d occurrences\n", idx.Len(), idx.TotalOccurrences())
	fmt.Printf("Source:      %s\n", idx.Source())
	fmt.Printf("Index path:  %s\n", cfg.Vocabulary.IndexPath)

	if cfg.Report.DatabasePath != "" {
		store, err := report.NewStore(cfg.Report.DatabasePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open report store: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		n, err := store.Count(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to count reports: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Reports:     %d saved in %s\n", n, cfg.Report.DatabasePath)
	}
}

func runCorpus() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: vartani corpus <clean|merge|tokenize|ingest|watch>")
		os.Exit(1)
	}
	switch os.Args[2] {
	case "clean":
		runCorpusClean()
	case "merge":
		runCorpusMerge()
	case "tokenize":
		runCorpusTokenize()
	case "ingest":
		runCorpusIngest()
	case "watch":
		runCorpusWatch()
	default:
		fmt.Fprintf(os.Stderr, "Unknown corpus subcommand: %s\n", os.Args[2])
		os.Exit(1)
	}
}

func runCorpusClean() {
	fs := flag.NewFlagSet("corpus clean", flag.ExitOnError)
	_ = fs.Parse(os.Args[3:])
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: vartani corpus clean <input> <output>")
		os.Exit(1)
	}
	if err := corpus.CleanFile(fs.Arg(0), fs.Arg(1), nil); err != nil {
		fmt.Fprintf(os.Stderr, "Clean failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Cleaned %s -> %s\n", fs.Arg(0), fs.Arg(1))
}

func runCorpusMerge() {
	fs := flag.NewFlagSet("corpus merge", flag.ExitOnError)
	out := fs.String("out", "", "output file (required)")
	_ = fs.Parse(os.Args[3:])
	if *out == "" || fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: vartani corpus merge -out <file> <inputs...>")
		os.Exit(1)
	}
	merged, err := corpus.MergeLines(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Merge failed: %v\n", err)
		os.Exit(1)
	}
	if err := corpus.WriteLines(*out, merged); err != nil {
		fmt.Fprintf(os.Stderr, "Merge failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Merged %d unique lines -> %s\n", len(merged), *out)
}

func runCorpusTokenize() {
	fs := flag.NewFlagSet("corpus tokenize", flag.ExitOnError)
	sentencesOut := fs.String("sentences", "", "write sentences, one per line")
	tokensOut := fs.String("tokens", "", "write tokenized sentences as JSON")
	vocabOut := fs.String("vocab", "", "write sorted unique vocabulary")
	wordsOut := fs.String("words", "", "write flat word list with repeats (index source)")
	_ = fs.Parse(os.Args[3:])
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: vartani corpus tokenize [flags] <cleaned-file>")
		os.Exit(1)
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Tokenize failed: %v\n", err)
		os.Exit(1)
	}
	sentences := corpus.SplitSentences(string(data))
	tokenized := corpus.TokenizeSentences(sentences)

	if *sentencesOut != "" {
		if err := corpus.WriteLines(*sentencesOut, sentences); err != nil {
			fmt.Fprintf(os.Stderr, "Tokenize failed: %v\n", err)
			os.Exit(1)
		}
	}
	if *tokensOut != "" {
		if err := corpus.WriteTokenizedJSON(*tokensOut, tokenized); err != nil {
			fmt.Fprintf(os.Stderr, "Tokenize failed: %v\n", err)
			os.Exit(1)
		}
	}
	if *vocabOut != "" {
		if err := corpus.WriteLines(*vocabOut, corpus.Vocabulary(tokenized)); err != nil {
			fmt.Fprintf(os.Stderr, "Tokenize failed: %v\n", err)
			os.Exit(1)
		}
	}
	if *wordsOut != "" {
		if err := corpus.WriteLines(*wordsOut, corpus.WordList(tokenized)); err != nil {
			fmt.Fprintf(os.Stderr, "Tokenize failed: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("Tokenized %d sentences, %d distinct words\n",
		len(sentences), len(corpus.Vocabulary(tokenized)))
}

// ingestFile extracts text from a raw corpus file, cleans it, and writes the
// result into the cleaned directory under the same base name.
func ingestFile(cfg *config.Config, ex *extract.Extractor, logger *zap.Logger, path string) error {
	text, err := ex.Extract(path)
	if err != nil {
		return fmt.Errorf("extract %s: %w", path, err)
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := filepath.Join(cfg.Corpus.CleanedDir, base+".txt")
	if err := os.MkdirAll(cfg.Corpus.CleanedDir, 0o755); err != nil {
		return err
	}
	cleaned := corpus.Clean(text)
	if err := os.WriteFile(out, []byte(cleaned), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	logger.Info("corpus file ingested",
		zap.String("input", path),
		zap.String("output", out),
		zap.Int("cleaned_bytes", len(cleaned)))
	return nil
}

func runCorpusIngest() {
	fs := flag.NewFlagSet("corpus ingest", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[3:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg, *debug)
	defer logger.Sync()

	ex := extract.NewExtractor()
	w := watcher.New(cfg.Corpus.RawDir, cfg.Corpus.Extensions, func(path string) {
		if err := ingestFile(cfg, ex, logger, path); err != nil {
			logger.Warn("ingest failed", zap.String("path", path), zap.Error(err))
		}
	}, watcher.WithLogger(logger))
	if err := w.SyncExisting(); err != nil {
		fmt.Fprintf(os.Stderr, "Ingest failed: %v\n", err)
		os.Exit(1)
	}
}

func runCorpusWatch() {
	fs := flag.NewFlagSet("corpus watch", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[3:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg, *debug)
	defer logger.Sync()

	ex := extract.NewExtractor()
	w := watcher.New(cfg.Corpus.RawDir, cfg.Corpus.Extensions, func(path string) {
		if err := ingestFile(cfg, ex, logger, path); err != nil {
			logger.Warn("ingest failed", zap.String("path", path), zap.Error(err))
		}
	}, watcher.WithLogger(logger))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}
	if err := w.SyncExisting(); err != nil {
		logger.Warn("sync of existing files failed", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logger.Info("Shutting down...")
	w.Stop()
}
