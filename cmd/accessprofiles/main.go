// Package main provides the CLI entry point for accessprofiles.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"accessprofiles/pkg/accessprofiles"
	"accessprofiles/pkg/accessprofiles/output"
	"accessprofiles/pkg/accessprofiles/parser"
)

var (
	outputPath       string
	csvPath          string
	outDir           string
	pretty           bool
	sheet            string
	sheetMarker      string
	dataMarker       string
	categoryStrategy string
	lenient          bool
	verbose          bool
	noProgress       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "accessprofiles [input.xlsx]",
		Short: "Extract access profile permissions from Excel files",
		Long: `accessprofiles decodes the storm/Conductor access-profile spreadsheet
layout (merged product header row, permission heading row, operator/value
column pairs) and emits the profiles as nested JSON and flat CSV.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "JSON output file path (default: stdout)")
	rootCmd.Flags().StringVar(&csvPath, "csv", "", "CSV output file path")
	rootCmd.Flags().StringVar(&outDir, "out-dir", "", "Directory for JSON and CSV files named after the input")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "Sheet name to parse (default: auto-detect)")
	rootCmd.Flags().StringVar(&sheetMarker, "sheet-marker", "", "Sheet name substring for auto-detection")
	rootCmd.Flags().StringVar(&dataMarker, "data-marker", "", "Profile-name prefix locating the first data row")
	rootCmd.Flags().StringVar(&categoryStrategy, "category-strategy", "column-range", "Category assignment: column-range, boundary")
	rootCmd.Flags().BoolVar(&lenient, "lenient", false, "Also drop entries with n/a or blank operators")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print discovered structure and a sample record")
	rootCmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	res, err := accessprofiles.Extract(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	for _, w := range res.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	if verbose {
		printStructure(res)
	}

	jsonData, err := output.ToJSON(res.Profiles, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	jsonPath, csvFile := resolvePaths(base)

	if jsonPath != "" {
		if err := writeFile(jsonPath, jsonData); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", jsonPath)
	} else {
		fmt.Println(string(jsonData))
	}

	if csvFile != "" {
		if err := writeCSVFile(csvFile, res); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", csvFile)
	} else if !noProgress {
		renderProgress(os.Stderr, res.Profiles.Profiles())
	}

	fmt.Fprintf(os.Stderr, "parsed %d profiles (%d filters) from sheet %q\n",
		res.Profiles.NumProfiles(), res.Profiles.NumFilters(), res.Sheet)
	return nil
}

func buildOptions() (accessprofiles.Options, error) {
	opts := accessprofiles.DefaultOptions()
	opts.Sheet = sheet
	if sheetMarker != "" {
		opts.SheetMarker = sheetMarker
	}
	if dataMarker != "" {
		opts.Layout.Strategy = parser.DataStartMarkerPrefix
		opts.Layout.MarkerPrefix = dataMarker
	}
	switch categoryStrategy {
	case "column-range":
		opts.Decode.Strategy = parser.CategoryByColumnRange
	case "boundary":
		opts.Decode.Strategy = parser.CategoryByBoundaryHeadings
	default:
		return opts, fmt.Errorf("invalid category strategy: %s (must be column-range or boundary)", categoryStrategy)
	}
	if lenient {
		opts.Decode.InactiveOperators = parser.LenientInactiveOperators()
	}
	return opts, nil
}

// resolvePaths derives the JSON and CSV file paths from the flags. An empty
// JSON path means stdout; an empty CSV path means no CSV output.
func resolvePaths(base string) (jsonPath, csvFile string) {
	jsonPath = outputPath
	csvFile = csvPath
	if outDir != "" {
		if jsonPath == "" {
			jsonPath = filepath.Join(outDir, base+".json")
		}
		if csvFile == "" {
			csvFile = filepath.Join(outDir, base+".csv")
		}
	}
	return jsonPath, csvFile
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

func writeCSVFile(path string, res *accessprofiles.Result) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var onProfile func(done, total int, name string)
	if !noProgress {
		bar := newProgressBar(os.Stderr, 40)
		onProfile = bar.update
	}
	if err := output.WriteCSV(f, res.Profiles, onProfile); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printStructure(res *accessprofiles.Result) {
	cats := make([]string, len(res.Categories))
	for i, c := range res.Categories {
		cats[i] = c.Label
	}
	heads := make([]string, len(res.Headings))
	for i, h := range res.Headings {
		heads[i] = h.Label
	}
	fmt.Fprintf(os.Stderr, "categories (row %d): %s\n", res.Layout.CategoryRow+1, strings.Join(cats, ", "))
	fmt.Fprintf(os.Stderr, "headings (row %d): %s\n", res.Layout.HeadingRow+1, strings.Join(heads, ", "))
	fmt.Fprintf(os.Stderr, "data starts at row %d, name column %d\n", res.Layout.DataStart+1, res.Layout.NameCol+1)

	if recs := res.Profiles.Records(); len(recs) > 0 {
		r := recs[0]
		fmt.Fprintf(os.Stderr, "sample: %q / %q / %q / %q = [%q, %q]\n",
			r.Profile, r.Filter, r.Category, r.Heading, r.Operator, r.Value)
	}
}
