package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spigell/resume-matcher/internal/embedding"
	"github.com/spigell/resume-matcher/internal/explain"
	"github.com/spigell/resume-matcher/internal/extract"
	"github.com/spigell/resume-matcher/internal/logger"
	"github.com/spigell/resume-matcher/internal/report"
	"github.com/spigell/resume-matcher/internal/scoring"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptRankedReport = "Show ranked report"
	PromptBandReport   = "Report by band"
	PromptDumpToFile   = "Dump results to file"
	PromptExit         = "Exit"
)

var errExit = errors.New("exit requested")

var batchPrompt = promptui.Select{
	Label: "Results ready",
	Items: []string{PromptRankedReport, PromptBandReport, PromptDumpToFile, PromptExit},
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a directory of resumes against one job description",
	Run: func(cmd *cobra.Command, _ []string) {
		runBatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringP("resumes", "r", "", "directory with resume text files")
	batchCmd.Flags().StringP("job", "J", "", "path to the job description text file")
	batchCmd.Flags().BoolP("auto-approve", "y", false, "print the ranked report without an interactive prompt")
	batchCmd.MarkFlagRequired("resumes")
	batchCmd.MarkFlagRequired("job")
}

func runBatch(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	dir, _ := cmd.Flags().GetString("resumes")
	jobPath, _ := cmd.Flags().GetString("job")

	jobText, err := readText(jobPath)
	if err != nil {
		logger.Fatal("reading job description", zap.Error(err))
	}

	weights, err := config.weightConfig()
	if err != nil {
		logger.Fatal("loading weights", zap.Error(err))
	}

	engine, err := scoring.NewEngine(weights, logger)
	if err != nil {
		logger.Fatal("building scoring engine", zap.Error(err))
	}

	extractor := extract.New(config.buildTaxonomy())
	generator := explain.NewGenerator()

	// Job attributes and the job embedding are scorer-invariant across
	// the whole batch, so they are computed exactly once.
	job := extractor.JobRequirement(jobText)

	provider, err := newEmbeddingProvider(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("embedding provider unavailable, using neutral semantic signal", zap.Error(err))
		provider = nil
	}

	var jobVec []float64
	if provider != nil {
		jobVec, err = provider.Embed(ctx, jobText)
		if err != nil {
			logger.Warn("embedding job description failed, using neutral semantic signal", zap.Error(err))
			provider = nil
		}
	}

	paths, err := resumeFiles(dir)
	if err != nil {
		logger.Fatal("listing resumes", zap.Error(err))
	}
	if len(paths) == 0 {
		logger.Info("exiting", zap.String("reason", "no resume text files found"), zap.String("dir", dir))
		return
	}

	logger.Info("starting batch matching",
		zap.Int("resumes", len(paths)),
		zap.String("job", jobPath),
	)

	results := report.NewResults()
	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

		resumeText, err := readText(path)
		if err != nil {
			logger.Warn("skipping unreadable resume", zap.String("path", path), zap.Error(err))
			continue
		}

		candidate := extractor.CandidateProfile(resumeText)

		similarity := 0.0
		if provider != nil {
			resumeVec, err := provider.Embed(ctx, resumeText)
			if err != nil {
				logger.Warn("embedding resume failed, using neutral semantic signal",
					zap.String("name", name),
					zap.Error(err),
				)
			} else {
				similarity = embedding.Cosine(resumeVec, jobVec)
			}
		}

		scores, detail, err := engine.Score(candidate, job, similarity)
		if err != nil {
			logger.Warn("scoring failed", zap.String("name", name), zap.Error(err))
			continue
		}

		narrative, recommendation, err := generator.Explain(scores.Overall, detail)
		if err != nil {
			logger.Warn("explanation failed", zap.String("name", name), zap.Error(err))
			continue
		}

		results.Add(name, report.Build(candidate, job, scores, weights, detail, narrative, recommendation))

		logger.Debug("resume scored",
			zap.String("name", name),
			zap.Float64("overall_score", scores.Overall),
		)
	}

	if results.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no resumes could be scored"))
		return
	}

	results.SortByScore()
	logger.Info("batch matching completed", zap.Int("scored", results.Len()))

	if cmd.Flag("auto-approve").Value.String() == "true" {
		printRankedReport(results)
		return
	}

	for {
		_, action, err := batchPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		if err := handleBatchAction(action, results, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleBatchAction(action string, results *report.Results, logger *zap.Logger) error {
	switch action {
	case PromptRankedReport:
		printRankedReport(results)
		return nil
	case PromptBandReport:
		pretty, _ := json.MarshalIndent(results.ReportByBand(), "", "  ")
		fmt.Println(string(pretty))
		return nil
	case PromptDumpToFile:
		filename, err := results.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping results to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func printRankedReport(results *report.Results) {
	for i, entry := range results.Entries {
		rounded := entry.Result.Rounded()
		fmt.Printf("%d. %s: %.1f (%s) - %s\n",
			i+1, entry.Name, rounded.OverallScore, rounded.Band, rounded.Summary.Skills,
		)
	}
}

func resumeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}
