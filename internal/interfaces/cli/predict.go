package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/turtacn/gpcr-studio/internal/application/prediction"
	"github.com/turtacn/gpcr-studio/internal/export"
	"github.com/turtacn/gpcr-studio/internal/intelligence/activitynet"
	predtypes "github.com/turtacn/gpcr-studio/pkg/types/prediction"
)

// predictOptions holds the flags of the predict command.
type predictOptions struct {
	SMILES       []string
	InputPath    string
	CSVPath      string
	Threshold    float64
	Output       string
	CSVOut       string
	ArchiveOut   string
	hasThreshold bool
}

// newPredictCmd creates the predict command: run the submission pipeline
// locally, render the result table, and optionally write the export artifacts.
func newPredictCmd(rootOpts *RootOptions) *cobra.Command {
	opts := &predictOptions{}

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Score SMILES ligands with the activity classifier",
		Long: "Runs the full submission pipeline in-process: ligands come from --smiles\n" +
			"flags, a text file (one SMILES per line), or a CSV with a \"smiles\" column.\n" +
			"A CSV that yields ligands takes precedence over the other inputs.",
		Example: `  gpcrctl predict --smiles CCO --smiles CCN
  gpcrctl predict --input ligands.txt --threshold 0.6
  gpcrctl predict --csv ligands.csv --csv-out results.csv --archive-out ligands.zip`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.hasThreshold = cmd.Flags().Changed("threshold")
			return runPredict(cmd, rootOpts, opts)
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&opts.SMILES, "smiles", nil, "SMILES string (repeatable)")
	f.StringVar(&opts.InputPath, "input", "", "text file with one SMILES per line")
	f.StringVar(&opts.CSVPath, "csv", "", `CSV file with a "smiles" column`)
	f.Float64Var(&opts.Threshold, "threshold", 0, "agonist decision threshold in [0, 1] (default: from config)")
	f.StringVarP(&opts.Output, "output", "o", "table", "output format (table, json, csv)")
	f.StringVar(&opts.CSVOut, "csv-out", "", "also write the flat CSV artifact to this path")
	f.StringVar(&opts.ArchiveOut, "archive-out", "", "also write the per-ligand ZIP artifact to this path")

	return cmd
}

func runPredict(cmd *cobra.Command, rootOpts *RootOptions, opts *predictOptions) error {
	cfg, err := loadConfig(rootOpts)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}
	logger, err := newCLILogger(rootOpts)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}

	input, err := buildSubmitInput(cfg.Scoring.DefaultThreshold, opts)
	if err != nil {
		return err
	}

	scorer, err := activitynet.NewScorer(cfg.Scoring, logger)
	if err != nil {
		return err
	}
	svc := prediction.NewService(scorer, cfg.Scoring, logger, nil)

	tab, err := svc.Submit(cmd.Context(), input)
	if err != nil {
		return err
	}

	if err := renderResult(cmd, tab, opts.Output); err != nil {
		return err
	}

	if opts.CSVOut != "" {
		blob, err := svc.ExportCSV(tab)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.CSVOut, blob, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.CSVOut, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", opts.CSVOut)
	}
	if opts.ArchiveOut != "" {
		blob, err := svc.ExportArchive(tab)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.ArchiveOut, blob, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.ArchiveOut, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", opts.ArchiveOut)
	}

	return nil
}

// buildSubmitInput assembles the pipeline input from the predict flags.
// Inline --smiles flags and --input lines share the free-text channel; a
// --csv file rides the upload channel with its usual precedence.
func buildSubmitInput(defaultThreshold float64, opts *predictOptions) (*prediction.SubmitInput, error) {
	var lines []string
	lines = append(lines, opts.SMILES...)

	if opts.InputPath != "" {
		blob, err := os.ReadFile(opts.InputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", opts.InputPath, err)
		}
		lines = append(lines, string(blob))
	}

	input := &prediction.SubmitInput{
		Text:      strings.Join(lines, "\n"),
		Threshold: defaultThreshold,
	}
	if opts.hasThreshold {
		input.Threshold = opts.Threshold
	}

	if opts.CSVPath != "" {
		blob, err := os.ReadFile(opts.CSVPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", opts.CSVPath, err)
		}
		input.CSV = blob
	}

	return input, nil
}

// renderResult writes the result table to stdout in the selected format.
func renderResult(cmd *cobra.Command, tab *predtypes.ResultTable, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(tab)

	case "csv":
		blob, err := export.WriteCSV(tab)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(blob)
		return err

	case "table":
		fmt.Fprintln(cmd.OutOrStdout(), formatResultTable(tab))
		fmt.Fprintf(cmd.OutOrStdout(), "submission: %s  model: %s  threshold: %s\n",
			tab.SubmissionID, tab.ModelVersion, strconv.FormatFloat(tab.Threshold, 'g', -1, 64))
		return nil

	default:
		return fmt.Errorf("unknown output format: %s (must be table, json, or csv)", format)
	}
}

// formatResultTable renders the result records as an aligned terminal table.
func formatResultTable(tab *predtypes.ResultTable) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "SMILES", "p_agonist", "p_antagonist", "p_inactive", "label", "decision"})

	for i, rec := range tab.Records {
		tw.AppendRow(table.Row{
			i + 1,
			rec.SMILES,
			strconv.FormatFloat(rec.Scores.Agonist, 'g', -1, 64),
			strconv.FormatFloat(rec.Scores.Antagonist, 'g', -1, 64),
			strconv.FormatFloat(rec.Scores.Inactive, 'g', -1, 64),
			string(rec.PredictedLabel),
			rec.BinaryDecision,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})

	return tw.Render()
}
