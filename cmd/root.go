package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/spigell/resume-matcher/internal/scoring"
	"github.com/spigell/resume-matcher/internal/taxonomy"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "resume-matcher"
)

type Config struct {
	Weights  map[string]float64 `mapstructure:"weights"`
	Taxonomy *TaxonomyConfig    `mapstructure:"taxonomy"`
	AI       *AIConfig          `mapstructure:"ai"`
}

type TaxonomyConfig struct {
	Categories map[string][]string `mapstructure:"categories"`
	Aliases    map[string]string   `mapstructure:"aliases"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	MaxRetries int    `mapstructure:"max-retries"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-matcher scores how well candidate resumes align with a job description",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging and results")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional; defaults cover everything. An
	// explicitly requested file that fails to parse is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}
	return config, nil
}

// weightConfig overlays configured weights on the built-in defaults.
// Validation happens when the engine is constructed.
func (c *Config) weightConfig() (scoring.WeightConfig, error) {
	weights := scoring.DefaultWeights()
	if len(c.Weights) == 0 {
		return weights, nil
	}
	if err := mapstructure.Decode(c.Weights, &weights); err != nil {
		return scoring.WeightConfig{}, fmt.Errorf("decoding weights: %w", err)
	}
	return weights, nil
}

// buildTaxonomy extends the built-in vocabulary with configured
// categories and aliases.
func (c *Config) buildTaxonomy() *taxonomy.Taxonomy {
	tax := taxonomy.Default()
	if c.Taxonomy == nil {
		return tax
	}
	for category, terms := range c.Taxonomy.Categories {
		tax = tax.Extend(category, terms...)
	}
	if len(c.Taxonomy.Aliases) > 0 {
		tax = tax.WithAliases(c.Taxonomy.Aliases)
	}
	return tax
}
