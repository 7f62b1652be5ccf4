// Package commands implements the endorse cobra commands.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/endorse/pkg/audit"
	"github.com/Sumatoshi-tech/endorse/pkg/chart"
	"github.com/Sumatoshi-tech/endorse/pkg/config"
	"github.com/Sumatoshi-tech/endorse/pkg/gitlib"
	"github.com/Sumatoshi-tech/endorse/pkg/observability"
	"github.com/Sumatoshi-tech/endorse/pkg/report"
	"github.com/Sumatoshi-tech/endorse/pkg/terminal"
	"github.com/Sumatoshi-tech/endorse/pkg/version"
)

type repositoryOpener func(path string) (*gitlib.Repository, error)

type telemetryInit func(ctx context.Context, cfg observability.Config) (observability.Providers, error)

// AuditCommand holds the dependencies of the root command.
type AuditCommand struct {
	openRepo      repositoryOpener
	initTelemetry telemetryInit
	// chartDir receives the chart files; empty means the working directory.
	chartDir string
}

// NewAuditCommand creates the root endorse command, which runs the audit.
func NewAuditCommand() *cobra.Command {
	return newAuditCommandWithDeps(gitlib.LoadRepository, observability.Init, "")
}

func newAuditCommandWithDeps(openRepo repositoryOpener, initTelemetry telemetryInit, chartDir string) *cobra.Command {
	ac := &AuditCommand{
		openRepo:      openRepo,
		initTelemetry: initTelemetry,
		chartDir:      chartDir,
	}

	cmd := &cobra.Command{
		Use:   "endorse --email ID [--email ID ...]",
		Short: "Audit commit authorship and acknowledgement trailers",
		Long: `endorse walks the history of a git repository and counts the commits
authored by the given identities and the commits that acknowledge them with
Signed-off-by, Reviewed-by, Acked-by, Tested-by or Reported-by trailers.

A summary is printed to standard output and a pie chart named after the
repository directory is written to the working directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          ac.run,
	}

	config.RegisterFlags(cmd.Flags())

	return cmd
}

func (ac *AuditCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	providers, err := ac.initTelemetry(ctx, telemetryConfig(cfg, cmd.ErrOrStderr()))
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}

	defer func() {
		shutdownErr := providers.Shutdown(context.WithoutCancel(ctx))
		if shutdownErr != nil {
			providers.Logger.Warn("telemetry shutdown failed", "error", shutdownErr)
		}
	}()

	logger := providers.Logger

	// Verbose lines share stdout only with the text report.
	verboseOut := out
	if cfg.Format != config.FormatText {
		verboseOut = cmd.ErrOrStderr()
	}

	summary, err := ac.audit(ctx, cfg, providers, verboseOut)
	if err != nil {
		return err
	}

	err = writeSummary(out, summary, cfg)
	if err != nil {
		return err
	}

	if !summary.Chartable() {
		logger.Info("no commits scanned, skipping chart")

		return nil
	}

	return ac.writeCharts(logger, summary, cfg.HTML)
}

func (ac *AuditCommand) audit(
	ctx context.Context, cfg *config.Config, providers observability.Providers, verboseOut io.Writer,
) (report.Summary, error) {
	targets, err := cfg.Targets()
	if err != nil {
		return report.Summary{}, err
	}

	repo, err := ac.openRepo(cfg.Path)
	if err != nil {
		return report.Summary{}, err
	}
	defer repo.Free()

	path, err := filepath.Abs(repo.Path())
	if err != nil {
		return report.Summary{}, fmt.Errorf("resolve path %q: %w", repo.Path(), err)
	}

	iter, err := repo.Log()
	if err != nil {
		return report.Summary{}, err
	}
	defer iter.Close()

	metrics, err := observability.NewAuditMetrics(providers.Meter)
	if err != nil {
		return report.Summary{}, fmt.Errorf("init metrics: %w", err)
	}

	mode := cfg.ReportMode(targets)

	opts := audit.Options{
		Targets:      targets,
		Match:        cfg.MatchMode(),
		Report:       mode,
		SelfTrailers: cfg.SelfTrailerPolicy(),
		Logger:       providers.Logger,
		Tracer:       providers.Tracer,
		Recorder:     metrics,
	}

	if cfg.Verbose {
		opts.OnAuthored = verbosePrinter(verboseOut)
	}

	auditor, err := audit.New(opts)
	if err != nil {
		return report.Summary{}, err
	}

	providers.Logger.DebugContext(ctx, "scanning repository",
		"path", path, "targets", targets.Len(), "match", opts.Match.String(), "report", mode.String())

	totals, err := auditor.Run(ctx, audit.NewStream(audit.NewRepoSource(iter), cfg.Cutoff))
	if err != nil {
		return report.Summary{}, fmt.Errorf("audit %s: %w", path, err)
	}

	header := report.Header{
		Repository: path,
		Targets:    targets.IDs(),
		Match:      opts.Match,
		Since:      cfg.Since,
	}

	return report.New(header, totals, mode), nil
}

func verbosePrinter(out io.Writer) func(audit.Commit) {
	return func(c audit.Commit) {
		fmt.Fprintln(out, report.VerboseLine(c))
	}
}

func writeSummary(out io.Writer, summary report.Summary, cfg *config.Config) error {
	switch cfg.Format {
	case config.FormatJSON:
		return summary.WriteJSON(out)
	case config.FormatYAML:
		return summary.WriteYAML(out)
	default:
		return summary.WriteText(out, terminal.NewConfig(out, cfg.NoColor))
	}
}

func (ac *AuditCommand) writeCharts(logger *slog.Logger, summary report.Summary, withHTML bool) error {
	renderers := []chart.Renderer{chart.PNGRenderer{}}
	if withHTML {
		renderers = append(renderers, chart.HTMLRenderer{})
	}

	data := chartFrom(summary)

	for _, r := range renderers {
		path := filepath.Join(ac.chartDir, summary.Title()+r.Ext())

		err := chart.WriteFile(r, path, data)
		if err != nil {
			return fmt.Errorf("write chart: %w", err)
		}

		logger.Info("chart written", "path", path)
	}

	return nil
}

func chartFrom(summary report.Summary) chart.Chart {
	entries := summary.Table()
	slices := make([]chart.Slice, len(entries))

	for i, e := range entries {
		slices[i] = chart.Slice{Label: e.Label, Value: e.Value}
	}

	return chart.Chart{Title: summary.Title(), Subtitle: summary.Subtitle(), Slices: slices}
}

func telemetryConfig(cfg *config.Config, logOut io.Writer) observability.Config {
	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceVersion = version.Version
	obsCfg.OTLPEndpoint = cfg.OTLPEndpoint
	obsCfg.LogOutput = logOut

	if cfg.Debug {
		obsCfg.LogLevel = slog.LevelDebug
	}

	return obsCfg
}
