package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spigell/resume-matcher/internal/embedding"
	"github.com/spigell/resume-matcher/internal/explain"
	"github.com/spigell/resume-matcher/internal/extract"
	"github.com/spigell/resume-matcher/internal/logger"
	"github.com/spigell/resume-matcher/internal/report"
	"github.com/spigell/resume-matcher/internal/scoring"
	"github.com/spigell/resume-matcher/internal/secrets"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a single resume against a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		runMatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("resume", "r", "", "path to the resume text file")
	matchCmd.Flags().StringP("job", "J", "", "path to the job description text file")
	matchCmd.Flags().Float64P("similarity", "s", 0, "precomputed semantic similarity in [-1,1]; overrides the embedding provider")
	matchCmd.MarkFlagRequired("resume")
	matchCmd.MarkFlagRequired("job")
}

func runMatch(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	resumePath, _ := cmd.Flags().GetString("resume")
	jobPath, _ := cmd.Flags().GetString("job")

	resumeText, err := readText(resumePath)
	if err != nil {
		logger.Fatal("reading resume", zap.Error(err))
	}
	jobText, err := readText(jobPath)
	if err != nil {
		logger.Fatal("reading job description", zap.Error(err))
	}

	extractor := extract.New(config.buildTaxonomy())
	candidate := extractor.CandidateProfile(resumeText)
	job := extractor.JobRequirement(jobText)

	logger.Info("extracted attributes",
		zap.Int("candidate_skills", len(candidate.Skills)),
		zap.Float64("candidate_experience_years", candidate.ExperienceYears),
		zap.Int("job_required_skills", len(job.RequiredSkills)),
		zap.Int("job_preferred_skills", len(job.PreferredSkills)),
	)

	similarity, err := resolveSimilarity(ctx, cmd, config, logger, resumeText, jobText)
	if err != nil {
		logger.Fatal("resolving semantic similarity", zap.Error(err))
	}

	weights, err := config.weightConfig()
	if err != nil {
		logger.Fatal("loading weights", zap.Error(err))
	}

	engine, err := scoring.NewEngine(weights, logger)
	if err != nil {
		logger.Fatal("building scoring engine", zap.Error(err))
	}

	scores, detail, err := engine.Score(candidate, job, similarity)
	if err != nil {
		logger.Fatal("scoring", zap.Error(err))
	}

	narrative, recommendation, err := explain.NewGenerator().Explain(scores.Overall, detail)
	if err != nil {
		logger.Fatal("generating explanation", zap.Error(err))
	}

	result := report.Build(candidate, job, scores, weights, detail, narrative, recommendation)

	if viper.GetBool("json") {
		pretty, err := json.MarshalIndent(result.Rounded(), "", "  ")
		if err != nil {
			logger.Fatal("encoding result", zap.Error(err))
		}
		fmt.Println(string(pretty))
		return
	}

	rounded := result.Rounded()
	logger.Info("match scored",
		zap.Float64("overall_score", rounded.OverallScore),
		zap.String("band", rounded.Band),
		zap.Float64("skill_score", rounded.SkillScore),
		zap.Float64("experience_score", rounded.ExperienceScore),
		zap.Float64("education_score", rounded.EducationScore),
		zap.Float64("semantic_score", rounded.SemanticScore),
	)
	fmt.Println(rounded.AIExplanation)
	fmt.Println(rounded.Recommendation)
}

// resolveSimilarity prefers an explicitly provided scalar, falls back to
// the configured embedding provider, and defaults to 0 (a neutral
// semantic signal) when neither is available.
func resolveSimilarity(ctx context.Context, cmd *cobra.Command, config *Config, logger *zap.Logger, resumeText, jobText string) (float64, error) {
	if cmd.Flags().Changed("similarity") {
		return cmd.Flags().GetFloat64("similarity")
	}

	provider, err := newEmbeddingProvider(ctx, config.AI, logger)
	if err != nil {
		return 0, err
	}
	if provider == nil {
		logger.Info("no similarity source configured, using neutral semantic signal")
		return 0, nil
	}

	resumeVec, err := provider.Embed(ctx, resumeText)
	if err != nil {
		return 0, fmt.Errorf("embedding resume: %w", err)
	}
	jobVec, err := provider.Embed(ctx, jobText)
	if err != nil {
		return 0, fmt.Errorf("embedding job description: %w", err)
	}

	similarity := embedding.Cosine(resumeVec, jobVec)
	logger.Debug("computed semantic similarity",
		zap.Float64("similarity", similarity),
		zap.Int("vector_length", len(resumeVec)),
	)
	return similarity, nil
}

// newEmbeddingProvider returns nil when the AI section is absent or
// disabled; callers treat that as "no similarity source".
func newEmbeddingProvider(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (embedding.Provider, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	client, err := embedding.NewGeminiClient(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
	))
	if err != nil {
		return nil, err
	}

	return client, nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
