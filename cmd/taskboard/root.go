package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dtroode/taskboard-server/internal/api/http/router"
	httpServer "github.com/dtroode/taskboard-server/internal/api/http/server"
	"github.com/dtroode/taskboard-server/internal/server"
	"github.com/dtroode/taskboard-server/internal/service"
	"github.com/dtroode/taskboard-server/internal/storage/postgres"
)

// logOutput is where command loggers write.
var logOutput io.Writer = os.Stdout

var errSnapshotDisabled = errors.New("snapshot export is disabled, set MINIO_ENABLED=true")

func newRootCommand() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:           "taskboard",
		Short:         "Users and tasks API over a document store",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), envFiles)
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load before the environment (default .env)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the HTTP API until interrupted",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runServe(cmd.Context(), envFiles)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply SQL migrations (postgres driver only)",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runMigrate(cmd.OutOrStdout(), envFiles)
			},
		},
		&cobra.Command{
			Use:   "snapshot",
			Short: "Export users and tasks to object storage and print the manifest",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runSnapshot(cmd.Context(), cmd.OutOrStdout(), envFiles)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Run: func(cmd *cobra.Command, _ []string) {
				printVersion(cmd.OutOrStdout())
			},
		},
	)

	return root
}

func runServe(ctx context.Context, envFiles []string) error {
	a, err := newApp(ctx, envFiles)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	snapshot, err := a.snapshotService(ctx)
	if err != nil {
		return err
	}

	rcfg := router.Config{
		Stores:         service.NewManager(a.users, a.tasks),
		Pinger:         a.backend,
		AllowedOrigins: a.cfg.HTTP.AllowedOrigins,
		Logger:         a.logger,
	}
	if snapshot != nil {
		rcfg.Snapshot = snapshot
	}
	h, err := router.New(rcfg).Register()
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	srv := httpServer.NewHTTPServer(h, a.cfg.ServerURL)
	sl := server.NewSecurityLayer(a.cfg.HTTP.EnableHTTPS, a.cfg.HTTP.CertFileName, a.cfg.HTTP.PrivateKeyFileName)

	a.logger.Info("build info", "version", buildVersion, "date", buildDate, "commit", buildCommit)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("Starting server on", "address", srv.Address(), "https", a.cfg.HTTP.EnableHTTPS)
		return srv.Start(sl)
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down server", "address", srv.Address())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("error during server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.logger.Info("shutdown complete")
	return nil
}

func runMigrate(out io.Writer, envFiles []string) error {
	cfg, lg, err := loadConfig(envFiles)
	if err != nil {
		return err
	}

	switch strings.ToLower(cfg.Database.Driver) {
	case "postgres", "pg", "postgresql":
		if err := postgres.MigrateDSN(cfg.Database.URL); err != nil {
			return err
		}
		lg.Info("migrations applied")
		fmt.Fprintln(out, "migrations applied")
	default:
		fmt.Fprintf(out, "driver %q needs no migrations\n", cfg.Database.Driver)
	}
	return nil
}

func runSnapshot(ctx context.Context, out io.Writer, envFiles []string) error {
	a, err := newApp(ctx, envFiles)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	snapshot, err := a.snapshotService(ctx)
	if err != nil {
		return err
	}
	if snapshot == nil {
		return errSnapshotDisabled
	}

	manifest, err := snapshot.Export(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(manifest)
}

func printVersion(out io.Writer) {
	tmpl := `Build version: %s
Build date: %s
Build commit: %s
`
	fmt.Fprintf(out, tmpl, buildVersion, buildDate, buildCommit)
}
