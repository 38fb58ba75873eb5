package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
)

// maxConcurrentAnalyses bounds how many resumes are scored at once when
// several files are passed on the command line.
const maxConcurrentAnalyses = 4

var (
	jobFile           string
	jobURL            string
	jsonOutput        bool
	analyzeUseBrowser bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume files...]",
	Short: "Score one or more resumes against a job description",
	Long:  "Score resume files (.txt, .pdf, .docx) against a job description taken from a text file or fetched from a URL. Multiple resumes are analyzed concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&jobFile, "job", "j", "", "Path to text file containing the job description")
	analyzeCmd.Flags().StringVarP(&jobURL, "job-url", "u", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the full reports as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Render JavaScript-heavy job postings with a headless browser")

	rootCmd.AddCommand(analyzeCmd)
}

// analysisResult pairs a resume file with its report, in the order the
// files were given on the command line.
type analysisResult struct {
	Filename string           `json:"filename"`
	Report   *analyzer.Report `json:"report"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	// Validate mutually exclusive flags
	if jobFile == "" && jobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if jobFile != "" && jobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	ctx := cmd.Context()

	jobText, err := loadJobText(ctx, jobFile, jobURL)
	if err != nil {
		return err
	}

	results, err := analyzeFiles(ctx, args, jobText)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for i, res := range results {
		if i > 0 {
			fmt.Println()
		}
		printReport(os.Stdout, res)
	}
	return nil
}

func loadJobText(ctx context.Context, file, url string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	}

	text, err := ingestion.FetchJobPosting(ctx, url, analyzeUseBrowser)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return text, nil
}

// analyzeFiles scores every resume against the job text, a few at a time.
// Results keep the input order regardless of completion order.
func analyzeFiles(ctx context.Context, paths []string, jobText string) ([]analysisResult, error) {
	a := analyzer.New()
	results := make([]analysisResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAnalyses)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read resume %s: %w", path, err)
			}

			text, err := ingestion.ExtractText(path, data)
			if err != nil {
				return fmt.Errorf("failed to extract text from %s: %w", path, err)
			}

			results[i] = analysisResult{
				Filename: filepath.Base(path),
				Report:   a.Analyze(text, jobText),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printReport(w io.Writer, res analysisResult) {
	r := res.Report

	fmt.Fprintf(w, "=== %s ===\n", res.Filename)
	fmt.Fprintf(w, "Overall score:  %d/100 (%s)\n", r.OverallScore, r.Rating)
	fmt.Fprintf(w, "Readiness:      %d/100\n", r.Readiness)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Section scores:")
	fmt.Fprintf(w, "  Skills:       %3d  %s\n", r.Sections.Skills.Score, r.Sections.Skills.Feedback)
	fmt.Fprintf(w, "  Experience:   %3d  %s\n", r.Sections.Experience.Score, r.Sections.Experience.Feedback)
	fmt.Fprintf(w, "  Education:    %3d  %s\n", r.Sections.Education.Score, r.Sections.Education.Feedback)
	fmt.Fprintf(w, "  Formatting:   %3d  %s\n", r.Sections.Formatting.Score, r.Sections.Formatting.Feedback)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Matched keywords (%d): %s\n", len(r.MatchedKeywords), joinOrNone(r.MatchedKeywords))
	fmt.Fprintf(w, "Missing keywords (%d): %s\n", len(r.MissingKeywords), joinOrNone(r.MissingKeywords))

	if len(r.Suggestions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Suggestions:")
		for _, s := range r.Suggestions {
			fmt.Fprintf(w, "  [%s] %s: %s\n", s.Type, s.Title, s.Message)
		}
	}
}

func joinOrNone(words []string) string {
	if len(words) == 0 {
		return "none"
	}
	return strings.Join(words, ", ")
}
