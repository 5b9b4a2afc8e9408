package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/EZ-Api/readability"
	"github.com/EZ-Api/readability/internal/store"
)

var (
	scoreFormat string
	scoreDict   string
	scoreNoSave bool
)

var scoreCmd = &cobra.Command{
	Use:   "score [file|-]",
	Short: "Compute readability metrics for a document",
	Long: `Compute FRES, ARI, GFI, and SMOG scores, supporting counts, and
estimated reading ages for a document. Pass "-" to read from stdin.

Examples:
  readability score report.txt
  readability score report.txt --format json
  readability score report.txt --dict cmudict.dict
  cat report.txt | readability score -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		source, text, err := readInput(args[0])
		if err != nil {
			return err
		}

		opts := readability.Options{ExtraAbbreviations: cfg.Abbreviations}
		dictPath := scoreDict
		if dictPath == "" {
			dictPath = cfg.Dictionary
		}
		if dictPath != "" {
			dict, err := readability.LoadDict(dictPath)
			if err != nil {
				return err
			}
			log.Debug().Str("path", dictPath).Int("words", dict.Len()).Msg("dictionary loaded")
			opts.Dict = dict
		}

		var analyzer readability.TextAnalyzer = readability.New(opts)
		if cfg.CacheSize > 0 {
			analyzer = readability.WithCache(analyzer, cfg.CacheSize)
		}

		report := analyzer.Analyze(text)
		if report.Words == 0 || report.Sentences == 0 {
			return fmt.Errorf("%s: no analyzable text", source)
		}

		if !scoreNoSave {
			if err := saveScore(cfg.Database, source, report); err != nil {
				log.Warn().Err(err).Msg("score not recorded")
			}
		}

		switch scoreFormat {
		case "json":
			return writeJSON(report)
		default:
			writeTable(report)
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVarP(&scoreFormat, "format", "f", "table", "output format: table, json")
	scoreCmd.Flags().StringVarP(&scoreDict, "dict", "d", "", "CMUdict-format pronunciation dictionary")
	scoreCmd.Flags().BoolVar(&scoreNoSave, "no-save", false, "do not record the score in the history database")
}

func readInput(arg string) (source, text string, err error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return "stdin", string(data), nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", "", fmt.Errorf("read input: %w", err)
	}
	return arg, string(data), nil
}

func saveScore(dbPath, source string, r readability.Report) error {
	st, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	return st.Insert(store.Score{
		Source:       source,
		Words:        r.Words,
		Sentences:    r.Sentences,
		ComplexWords: r.ComplexWords,
		FRES:         r.FRES,
		ARI:          r.ARI,
		GFI:          r.GFI,
		SMOG:         r.SMOG,
	})
}

func writeTable(r readability.Report) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Score", "Reading Age"})
	table.SetBorder(false)
	table.SetColumnSeparator("  ")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"Flesch Reading Ease", fmt.Sprintf("%.2f", r.FRES),
		fmt.Sprintf("%.1f", readability.ConvertFRES(r.FRES))})
	table.Append([]string{"Automated Readability Index", fmt.Sprintf("%.2f", r.ARI),
		fmt.Sprintf("%.1f", readability.ConvertARI(r.ARI))})
	table.Append([]string{"Gunning Fog Index", fmt.Sprintf("%.2f", r.GFI),
		fmt.Sprintf("%.1f", readability.ConvertGFI(r.GFI))})
	table.Append([]string{"SMOG", fmt.Sprintf("%d", r.SMOG), ""})
	table.Append([]string{"Words", fmt.Sprintf("%d", r.Words), ""})
	table.Append([]string{"Sentences", fmt.Sprintf("%d", r.Sentences), ""})
	table.Append([]string{"Complex Words", fmt.Sprintf("%d", r.ComplexWords), ""})

	table.Render()
}

func writeJSON(r readability.Report) error {
	out := struct {
		readability.Report
		AgeFRES float64 `json:"age_fres"`
		AgeARI  float64 `json:"age_ari"`
		AgeGFI  float64 `json:"age_gfi"`
	}{
		Report:  r,
		AgeFRES: readability.ConvertFRES(r.FRES),
		AgeARI:  readability.ConvertARI(r.ARI),
		AgeGFI:  readability.ConvertGFI(r.GFI),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
