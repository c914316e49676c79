package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emenda-labs/swapcheck/core/cli"
	"github.com/emenda-labs/swapcheck/core/config"
	"github.com/emenda-labs/swapcheck/core/report"
	"github.com/emenda-labs/swapcheck/core/validate"
	golangdriver "github.com/emenda-labs/swapcheck/drivers/golang"
	"github.com/emenda-labs/swapcheck/pkg/logging"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exitCode := 0

	runValidate := func(ctx context.Context, opts cli.ValidateOptions) error {
		logger, err := logging.New(opts.Verbose)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		defer logger.Sync()

		cfg, err := config.Load(opts.ConfigPath)
		if err != nil {
			return err
		}
		if opts.TimeoutSeconds > 0 {
			cfg.TimeoutSeconds = opts.TimeoutSeconds
		}
		if opts.MaxFunctions > 0 {
			cfg.MaxFunctions = opts.MaxFunctions
		}

		analyzer, err := golangdriver.NewDriver(golangdriver.Options{
			CallTimeout:  time.Duration(cfg.TimeoutSeconds) * time.Second,
			MaxFunctions: cfg.MaxFunctions,
			Logger:       logger,
		})
		if err != nil {
			return err
		}

		validator := validate.New(analyzer, validate.Options{
			Differential: opts.Differential,
			Threshold:    cfg.Threshold,
		}, logger)

		result, err := validator.Validate(ctx, opts.Original, opts.Candidate)
		if err != nil {
			return err
		}

		if opts.ScoreOnly {
			fmt.Println(report.RenderScore(result.Verdict))
		} else {
			rendered := report.Render(result)
			fmt.Print(rendered)

			if opts.Output != "" {
				if err := os.WriteFile(opts.Output, []byte(rendered), 0o644); err != nil {
					return fmt.Errorf("saving report to %s: %w", opts.Output, err)
				}
				fmt.Fprintf(os.Stderr, "Report saved to %s\n", opts.Output)
			}
		}

		if !result.Verdict.Interchangeable {
			exitCode = 1
		}
		return nil
	}

	root := cli.NewRootCmd(version)
	root.AddCommand(cli.NewValidateCmd(runValidate))

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}
