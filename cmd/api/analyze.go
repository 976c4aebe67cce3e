package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"resume-ats/internal/analyses"
	"resume-ats/internal/documents"
	"resume-ats/internal/extract"
	"resume-ats/internal/scoring"
	"resume-ats/internal/shared/telemetry"
)

var (
	analyzeSeed    uint64
	analyzeJobPath string
	analyzeExtract bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Score a resume file and print the result as JSON",
	Long: `Score a resume and print the analysis as JSON. Reads stdin when no file is given.
PDF and DOCX files are parsed with --extract, otherwise placeholder text is scored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Uint64Var(&analyzeSeed, "seed", 0, "Seed for missing-keyword sampling (random when unset)")
	analyzeCmd.Flags().StringVar(&analyzeJobPath, "job", "", "Path to a job description to compute relevance against")
	analyzeCmd.Flags().BoolVar(&analyzeExtract, "extract", false, "Parse PDF and DOCX content instead of using placeholder text")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	restore := telemetry.SetOutput(cmd.ErrOrStderr())
	defer restore()

	var engineOpts []scoring.Option
	if cmd.Flags().Changed("seed") {
		engineOpts = append(engineOpts, scoring.WithSeed(analyzeSeed))
	}
	mode := documents.ModePlaceholder
	if analyzeExtract {
		mode = documents.ModeExtract
	}
	svc := analyses.NewService(scoring.NewEngine(engineOpts...), documents.NewService(mode, 0))

	in := analyses.UploadInput{FileName: "stdin.txt", MimeType: extract.MimePlain, Mode: analyses.ModeATS}
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open resume: %w", err)
		}
		defer f.Close()
		r = f
		in.FileName = filepath.Base(args[0])
		in.MimeType = ""
	}
	if analyzeJobPath != "" {
		jd, err := os.ReadFile(analyzeJobPath)
		if err != nil {
			return fmt.Errorf("read job description: %w", err)
		}
		in.Mode = analyses.ModeJobMatch
		in.JobDescription = strings.TrimSpace(string(jd))
	}

	out, err := svc.AnalyzeUpload(cmd.Context(), in, r)
	if err != nil {
		return err
	}

	payload := map[string]any{
		"document": documents.ToResponse(out.Document),
		"analysis": out.Analysis,
	}
	if out.Relevance != nil {
		payload["relevance"] = out.Relevance
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
