// cmd/tldhunt/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tldhunt/internal/adapters/dnsx"
	"tldhunt/internal/adapters/fetch"
	"tldhunt/internal/adapters/output"
	"tldhunt/internal/adapters/sink"
	"tldhunt/internal/core/domain"
	"tldhunt/internal/core/ports"
	"tldhunt/internal/core/usecases"
	"tldhunt/internal/platform/config"
	"tldhunt/internal/platform/logx"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// 1. Load centralized config (handles help internally)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		os.Exit(2)
	}

	if cfg.PrintVersion {
		config.PrintVersion(version, commit, date)
		os.Exit(0)
	}

	// Validate target
	if cfg.Core.Target == "" {
		fmt.Fprintln(os.Stderr, "Error: target domain is required")
		fmt.Fprintln(os.Stderr, "Usage: tldhunt -t <domain>")
		fmt.Fprintln(os.Stderr, "Try: tldhunt -h for help")
		os.Exit(2)
	}

	// 2. Shared logger
	logger := logx.New()

	logger.Info("tldhunt starting",
		"version", version,
		"commit", commit,
		"date", date,
		"target", cfg.Core.Target,
		"active_only", cfg.Core.ActiveOnly,
		"concurrency", cfg.Core.MaxConcurrency,
	)

	// 3. Context and signals for clean shutdown
	ctx, cancel := rootContextWithSignals(cfg.Core.TimeoutS)
	defer cancel()

	// 4. Build target domain
	target := domain.NewTarget(cfg.Core.Target)
	if err := target.Validate(); err != nil {
		logger.Err(err, "phase", "validation")
		os.Exit(2)
	}

	logger.Info("target validated",
		"root", target.Root,
		"keyword", target.Keyword,
	)

	// 5. Build adapters
	resolver := dnsx.NewResolver(dnsx.Config{
		Servers: cfg.DNS.Servers,
		Timeout: cfg.DNSTimeout(),
		Retries: cfg.DNS.Retries,
		Logger:  logger,
	})

	var wildcards ports.WildcardChecker
	if cfg.Core.SkipWildcards {
		wildcards = dnsx.NewWildcardChecker(resolver, logger)
	}

	fetcher := fetch.NewHTTPFetcher(fetch.Config{
		Timeout:   cfg.HTTPTimeout(),
		Retries:   cfg.HTTP.Retries,
		RateLimit: float64(cfg.HTTP.RateLimit),
		Logger:    logger,
	})

	sinks := []ports.Sink{sink.NewLogSink(logger)}

	// 6. Create the hunt driver
	driver, err := usecases.NewDriver(usecases.DriverOptions{
		Target:         *target,
		TLDListURL:     cfg.Core.TLDListURL,
		CommonTLDs:     cfg.Core.CommonTLDs,
		CheckCommon:    cfg.Core.CheckCommon,
		SkipWildcards:  cfg.Core.SkipWildcards,
		ActiveOnly:     cfg.Core.ActiveOnly,
		MaxConcurrency: cfg.Core.MaxConcurrency,
		Version:        version,
		Fetcher:        fetcher,
		Resolver:       resolver,
		Wildcards:      wildcards,
		Sinks:          sinks,
		Logger:         logger,
	})
	if err != nil {
		logger.Err(err, "phase", "driver-build")
		os.Exit(2)
	}
	defer driver.Close()

	// 7. Execute hunt workflow
	start := time.Now()
	result, runErr := driver.Run(ctx)
	elapsed := time.Since(start)

	if result != nil {
		result.Metadata.Environment = map[string]string{
			"commit": commit,
			"date":   date,
		}
	}

	// 8. Handle execution errors
	if runErr != nil {
		logger.Err(runErr, "phase", "run", "elapsed_ms", elapsed.Milliseconds())
		// Continue to emit partial results (useful in pipelines)
	}

	// 9. Write outputs
	if result != nil {
		if outErr := writeOutputs(cfg, result); outErr != nil {
			logger.Err(outErr, "phase", "output")
			os.Exit(1)
		}
	}

	// 10. Summary
	if result != nil {
		logger.Info("tldhunt finished",
			"elapsed_ms", elapsed.Milliseconds(),
			"discoveries", result.TotalDiscoveries(),
			"warnings", len(result.Warnings),
			"errors", len(result.Errors),
		)
	}

	if runErr != nil || (result != nil && result.HasFatalErrors()) {
		os.Exit(1)
	}
}

// writeOutputs decides and executes outputs based on config.
// Keeping isolated from main makes it easier to add new formats.
func writeOutputs(cfg config.Config, result *domain.RunResult) error {
	// ALWAYS generate consolidated JSON
	if err := output.OutputJSON(cfg.Output.Dir, result); err != nil {
		return fmt.Errorf("json output: %w", err)
	}

	// Terminal-readable table if not disabled
	if !cfg.Output.TableDisabled {
		if err := output.OutputTable(result); err != nil {
			return fmt.Errorf("table output: %w", err)
		}
	}

	// JSON on stdout for pipelines (compact in quiet mode)
	if cfg.Output.JSONStdout {
		if err := output.OutputJSONStdout(result, !cfg.Output.TableDisabled); err != nil {
			return fmt.Errorf("stdout output: %w", err)
		}
	}

	return nil
}

// rootContextWithSignals creates a root context with optional timeout and signal cancellation.
// Returns a context and cancel function that cleans up all resources (signals, goroutines).
func rootContextWithSignals(timeoutSeconds int) (context.Context, context.CancelFunc) {
	var base context.Context
	var baseCancel context.CancelFunc

	if timeoutSeconds > 0 {
		base, baseCancel = context.WithTimeout(context.Background(), time.Duration(timeoutSeconds)*time.Second)
	} else {
		base, baseCancel = context.WithCancel(context.Background())
	}

	// System signal channel
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanupCancel := func() {
		signal.Stop(ch)
		close(ch)
		baseCancel()
	}

	return base, cleanupCancel
}
