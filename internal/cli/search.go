package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"subgrep/internal/config"
	"subgrep/internal/report"
	"subgrep/internal/search"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search subtitle files for a term",
	Long: `Search for a term in SRT and WebVTT subtitle files and list the
matching entries with their time ranges.

By default near-duplicate matches are suppressed, which is useful for
auto-generated VTT captions that roll overlapping text across cues.

Examples:
  subgrep search "hello world" -d ./subtitles
  subgrep search tutorial -f video1.srt video2.vtt
  subgrep search python --similarity-threshold 0.9 --time-window 15
  subgrep search error --aggressive
  subgrep search error -q -o ./output`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().
		StringP("directory", "d", "", "Directory to search for subtitle files")
	searchCmd.Flags().
		StringSliceP("files", "f", nil, "Specific subtitle files to search")
	searchCmd.Flags().
		BoolP("case-sensitive", "c", false, "Case sensitive search")
	searchCmd.Flags().
		Bool("no-dedupe", false, "Disable deduplication (keep all matches)")
	searchCmd.Flags().
		Float64("similarity-threshold", 0.8, "Text similarity threshold for deduplication (0.0-1.0)")
	searchCmd.Flags().
		Float64("time-window", 5.0, "Time window in seconds for deduplication")
	searchCmd.Flags().
		Bool("aggressive", false, "Aggressive deduplication (removes more matches, may remove valid ones)")
	searchCmd.Flags().
		StringP("output-dir", "o", ".", "Directory to save the results file")
	searchCmd.Flags().
		Bool("no-save", false, "Don't save results to a file")
	searchCmd.Flags().
		BoolP("quiet", "q", false, "Quiet mode - minimal output")
	searchCmd.Flags().
		Int("concurrency", 0, "Number of files processed in parallel (0 = default)")

	searchCmd.MarkFlagsMutuallyExclusive("directory", "files")
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := args[0]
	if strings.TrimSpace(term) == "" {
		return fmt.Errorf("search term cannot be empty")
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	directory, _ := cmd.Flags().GetString("directory")
	filesFlag, _ := cmd.Flags().GetStringSlice("files")
	caseSensitive, _ := cmd.Flags().GetBool("case-sensitive")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	dedup := dedupConfig(cmd, cfg)

	quiet := cfg.Output.Quiet
	if cmd.Flags().Changed("quiet") {
		quiet, _ = cmd.Flags().GetBool("quiet")
	}
	save := cfg.Output.Save
	if cmd.Flags().Changed("no-save") {
		noSave, _ := cmd.Flags().GetBool("no-save")
		save = !noSave
	}
	outputDir := cfg.Output.Dir
	if cmd.Flags().Changed("output-dir") {
		outputDir, _ = cmd.Flags().GetString("output-dir")
	}

	paths, err := collectPaths(directory, filesFlag)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no subtitle files found")
	}

	if !quiet {
		printFileSummary(paths, term)
	}

	files := make([]search.File, 0, len(paths))
	for _, path := range paths {
		content, err := readSubtitleFile(path)
		if err != nil {
			logger.Warnw("Skipping unreadable file",
				"file", path,
				"error", err,
			)
			continue
		}
		files = append(files, search.File{Path: path, Content: content})
	}

	opts := search.Options{
		CaseSensitive: caseSensitive,
		Dedup:         dedup,
		Concurrency:   concurrency,
	}

	logger.Debugw("Starting search",
		"term", term,
		"files", len(files),
		"case_sensitive", caseSensitive,
		"dedup_enabled", dedup.Enabled,
		"aggressive", dedup.Aggressive,
	)

	rep, err := search.Search(files, term, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if !quiet {
		report.Print(
			os.Stdout, rep, term, report.IsTerminal(os.Stdout),
		)
	}

	if save {
		outputFile, err := report.Save(rep, term, outputDir)
		if err != nil {
			return err
		}
		if quiet {
			fmt.Println(outputFile)
		} else {
			fmt.Printf("\nResults saved to: %s\n", outputFile)
		}
	}

	return nil
}

// flags override file config when set explicitly
func dedupConfig(cmd *cobra.Command, cfg config.Config) search.DedupConfig {
	dedup := search.DedupConfig{
		Enabled:             cfg.Dedup.Enabled,
		SimilarityThreshold: cfg.Dedup.SimilarityThreshold,
		TimeWindow:          cfg.Dedup.TimeWindowSeconds,
		Aggressive:          cfg.Dedup.Aggressive,
	}

	if cmd.Flags().Changed("no-dedupe") {
		noDedupe, _ := cmd.Flags().GetBool("no-dedupe")
		dedup.Enabled = !noDedupe
	}
	if cmd.Flags().Changed("similarity-threshold") {
		dedup.SimilarityThreshold, _ = cmd.Flags().
			GetFloat64("similarity-threshold")
	}
	if cmd.Flags().Changed("time-window") {
		dedup.TimeWindow, _ = cmd.Flags().GetFloat64("time-window")
	}
	if cmd.Flags().Changed("aggressive") {
		dedup.Aggressive, _ = cmd.Flags().GetBool("aggressive")
	}

	return dedup
}

func collectPaths(directory string, filesFlag []string) ([]string, error) {
	if directory != "" {
		info, err := os.Stat(directory)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("directory %q does not exist", directory)
		}
		return findSubtitleFiles(directory)
	}

	if len(filesFlag) > 0 {
		var paths []string
		for _, path := range filesFlag {
			if _, err := os.Stat(path); err != nil {
				logger.Warnw("File does not exist", "file", path)
				continue
			}
			if !isSubtitlePath(path) {
				logger.Warnw("Not a subtitle file", "file", path)
				continue
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	return findSubtitleFiles(".")
}

func printFileSummary(paths []string, term string) {
	srtCount := 0
	vttCount := 0
	for _, path := range paths {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".srt":
			srtCount++
		case ".vtt":
			vttCount++
		}
	}

	fmt.Printf("Searching %d subtitle file(s) for %q\n", len(paths), term)
	if srtCount > 0 {
		fmt.Printf("  - %d SRT file(s)\n", srtCount)
	}
	if vttCount > 0 {
		fmt.Printf("  - %d VTT file(s)\n", vttCount)
	}
}
