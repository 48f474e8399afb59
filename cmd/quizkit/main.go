package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pavelanni/quizkit/internal/checker"
	"github.com/pavelanni/quizkit/internal/convert"
	appI18n "github.com/pavelanni/quizkit/internal/i18n"
	"github.com/pavelanni/quizkit/internal/runner"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "quizkit",
		Short:        "Convert, check and run multiple-choice quizzes",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringP("lang", "l", "ru", "Language of explanations and prompts (en, ru)")
	pf.String("log-level", "info", "Log level (debug, info, warn, error)")
	pf.String("log-format", "text", "Log format (text, json)")

	root.AddCommand(convertCmd(), checkCmd(), runCmd(), sampleCmd())
	return root
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert",
		Short: "Convert question text from stdin into a JSON array",
		Args:  cobra.NoArgs,
		RunE:  runConvert,
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check one answer read as JSON from stdin",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every question of a bank and write a JSON summary",
		Args:  cobra.NoArgs,
		RunE:  runBatch,
	}
	f := cmd.Flags()
	f.StringP("questions", "q", "questions.json", "Path to the questions file (JSON or YAML)")
	f.StringP("answers", "a", "", "Predefined 1-based answers, comma separated (e.g. 2,1,4)")
	f.StringP("output", "o", "", "Path to write the JSON summary to")
	return cmd
}

func sampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Ask a random selection of questions interactively",
		Args:  cobra.NoArgs,
		RunE:  runSample,
	}
	f := cmd.Flags()
	f.StringP("questions", "q", "questions.json", "Path to the questions file (JSON or YAML)")
	f.IntP("count", "n", runner.DefaultSampleSize, "Number of questions to draw")
	f.Uint64("seed", 0, "Random seed (0 = random)")
	return cmd
}

func setupLogging(v *viper.Viper) {
	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}

// viperForCmd binds a command's flags and environment to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("QUIZKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("quizkit")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/quizkit")
	v.AddConfigPath("/etc/quizkit")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

// setup prepares logging, config and the localized context for a command.
func setup(cmd *cobra.Command) (context.Context, *viper.Viper, error) {
	v := viperForCmd(cmd)
	setupLogging(v)

	ctx, err := appI18n.WithLang(cmd.Context(), v.GetString("lang"))
	if err != nil {
		return nil, nil, fmt.Errorf("init i18n: %w", err)
	}
	return ctx, v, nil
}

func runConvert(cmd *cobra.Command, _ []string) error {
	if _, _, err := setup(cmd); err != nil {
		return err
	}

	questions, err := convert.Parse(cmd.InOrStdin())
	if err != nil {
		return err
	}
	slog.Debug("converted questions", "count", len(questions))
	return runner.WriteJSON(cmd.OutOrStdout(), questions)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	ctx, _, err := setup(cmd)
	if err != nil {
		return err
	}

	res, err := check(ctx, cmd)
	if err != nil {
		if !errors.Is(err, checker.ErrInvalidInput) {
			slog.Error("check failed", "error", err)
		}
		if werr := runner.WriteJSON(cmd.OutOrStdout(), map[string]string{"error": err.Error()}); werr != nil {
			return werr
		}
		return err
	}
	return runner.WriteJSON(cmd.OutOrStdout(), res)
}

func check(ctx context.Context, cmd *cobra.Command) (checker.Result, error) {
	req, err := checker.Decode(ctx, cmd.InOrStdin())
	if err != nil {
		return checker.Result{}, err
	}
	return checker.Evaluate(ctx, req)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx, v, err := setup(cmd)
	if err != nil {
		return err
	}

	items, err := runner.LoadQuestions(v.GetString("questions"))
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}
	answers, err := runner.ParseAnswers(v.GetString("answers"), len(items))
	if err != nil {
		return fmt.Errorf("parse --answers: %w", err)
	}

	out := cmd.OutOrStdout()
	b := &runner.Batch{
		Console:  runner.NewConsole(out),
		Prompter: runner.NewPrompter(cmd.InOrStdin(), out),
		Answers:  answers,
	}
	summary, err := b.Run(ctx, items)
	if err != nil {
		return err
	}

	if path := v.GetString("output"); path != "" {
		if err := runner.WriteJSONFile(path, summary); err != nil {
			return err
		}
		slog.Info("wrote summary", "path", path)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, appI18n.T(ctx, "ResultHeader"))
	return runner.WriteJSON(out, summary)
}

func runSample(cmd *cobra.Command, _ []string) error {
	ctx, v, err := setup(cmd)
	if err != nil {
		return err
	}

	path := v.GetString("questions")
	items, err := runner.LoadQuestions(path)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}
	slog.Debug("loaded question bank", "path", path, "count", len(items))

	out := cmd.OutOrStdout()
	s := &runner.Sampler{
		Console:  runner.NewConsole(out),
		Prompter: runner.NewPrompter(cmd.InOrStdin(), out),
		Size:     v.GetInt("count"),
		Rand:     runner.NewRand(v.GetUint64("seed")),
	}
	_, err = s.Run(ctx, items)
	return err
}
