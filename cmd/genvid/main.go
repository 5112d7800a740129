package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/promptmotion/genvid"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := genvid.LoadConfig(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	var (
		prompt     string
		duration   int
		resolution string
	)

	rootCmd := &cobra.Command{
		Use:   "genvid",
		Short: "Submit a prompt to a video generation endpoint and wait for the result",
		Long:  "genvid submits a text prompt to a generation API, polls the job status when needed, and prints the resulting video URL.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			req := &genvid.GenerationRequest{
				Prompt:     prompt,
				Duration:   duration,
				Resolution: genvid.Resolution(resolution),
			}
			return run(cmd.Context(), logger, cfg, req)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&cfg.Endpoint, "endpoint", "e", cfg.Endpoint, "Generation endpoint base URL")
	rootCmd.PersistentFlags().StringVarP(&cfg.APIToken, "token", "k", cfg.APIToken, "Bearer token for the Authorization header")
	rootCmd.PersistentFlags().StringVarP(&prompt, "prompt", "p", "", "Prompt describing the video to generate")
	rootCmd.PersistentFlags().IntVarP(&duration, "duration", "d", 5, "Clip length in seconds")
	rootCmd.PersistentFlags().StringVarP(&resolution, "resolution", "r", string(genvid.DefaultResolution), "Output resolution (480p, 720p, 1080p)")
	rootCmd.PersistentFlags().BoolVar(&cfg.DemoFallback, "demo-fallback", cfg.DemoFallback, "Substitute a placeholder video when the endpoint is unreachable")

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Fatal().Err(err).Msg("generation failed")
	}
}

func run(ctx context.Context, logger zerolog.Logger, cfg *genvid.Config, req *genvid.GenerationRequest) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	client, err := genvid.NewClient(cfg.Endpoint, cfg.Credential(), cfg.ClientConfig())
	if err != nil {
		return err
	}

	logger.Info().
		Int("duration", req.Duration).
		Str("resolution", string(req.Resolution)).
		Msg("submitting generation request")

	var result *genvid.GenerationResult
	if cfg.DemoFallback {
		runner := &genvid.FallbackRunner{Client: client, Logger: logger}
		result, err = runner.Submit(ctx, req)
	} else {
		result, err = client.Submit(ctx, req)
	}
	if err != nil {
		return err
	}

	if result.Demo {
		logger.Warn().Msg("result is a demonstration placeholder, not a real generation")
	}
	logger.Info().Str("video_url", result.VideoURL).Msg("generation succeeded")

	fmt.Println(result.VideoURL)
	return nil
}
