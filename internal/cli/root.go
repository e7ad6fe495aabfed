package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/qasummary/internal/config"
	"github.com/Makepad-fr/qasummary/internal/logging"
	"github.com/Makepad-fr/qasummary/internal/model"
	"github.com/Makepad-fr/qasummary/internal/preview"
	"github.com/Makepad-fr/qasummary/internal/store/filestore"
	"github.com/Makepad-fr/qasummary/internal/summary"
	"github.com/Makepad-fr/qasummary/internal/ui"
)

// Options let callers swap the environment the command runs against.
type Options struct {
	Fs afero.Fs
	// Logger overrides the logger built from --verbose.
	Logger *zap.Logger
	// Preview runs the pager; defaults to preview.Run.
	Preview func(title, markdown string) error
}

// NewRootCmd builds the qasummary command.
func NewRootCmd(opt Options) *cobra.Command {
	if opt.Fs == nil {
		opt.Fs = afero.NewOsFs()
	}
	if opt.Preview == nil {
		opt.Preview = preview.Run
	}

	var configFile string
	loader := config.NewLoader(opt.Fs)

	cmd := &cobra.Command{
		Use:   "qasummary",
		Short: "Generate a markdown QA summary for compliance audits",
		Long: `qasummary collects a markdown task list, a test coverage report, a
bugs found/fixed report, the QA reviewers and a CI/CD log link into a
single qa-summary.md document.

Every input is optional. Paths that do not point to a file are skipped
and their section is left out of the summary.`,
		Example: `  qasummary --tasks-file tasks.md --qa-reviewers "Alice,Bob" \
    --test-coverage coverage.txt --bugs-fixed bugs.txt \
    --cicd-log-url https://ci.example/run/42`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loader.BindFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := loader.Load(configFile)
			if err != nil {
				return err
			}
			return run(cmd, cfg, opt)
		},
	}

	f := cmd.Flags()
	f.String(config.KeyTasksFile, "", "path to the markdown file with a \"## Tasks\" section")
	f.String(config.KeyQAReviewers, "", "comma-separated list of QA reviewer names")
	f.String(config.KeyTestCoverage, "", "path to the test coverage results file")
	f.String(config.KeyBugsFixed, "", "path to the bugs found/fixed file")
	f.String(config.KeyCICDLogURL, "", "link to the CI/CD logs")
	f.StringP(config.KeyOutput, "o", config.DefaultOutput, "output markdown file")
	f.StringVar(&configFile, "config", "", "optional YAML file providing any of the flags above")
	f.Bool(config.KeyPreview, false, "open the generated summary in a pager")
	f.String(config.KeyTheme, "classic", "console theme: classic, neon or mono")
	f.Bool(config.KeyColor, false, "force colored output even when not writing to a terminal")
	f.Bool(config.KeyNoColor, false, "disable colored output (wins over --color)")
	f.BoolP(config.KeyVerbose, "v", false, "enable debug logging")
	f.BoolP(config.KeyQuiet, "q", false, "do not print the result panel")

	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config, opt Options) error {
	logger := opt.Logger
	if logger == nil {
		l, err := logging.New(cfg.Verbose)
		if err != nil {
			return err
		}
		defer func() { _ = l.Sync() }()
		logger = l
	}
	ui.SetColorForcing(cfg.Color, cfg.NoColor)
	ui.SetTheme(cfg.Theme)

	gen := summary.NewGenerator(filestore.New(opt.Fs), logger)
	res, err := gen.Generate(summary.Options{
		TasksFile:    cfg.TasksFile,
		Reviewers:    cfg.QAReviewers,
		TestCoverage: cfg.TestCoverage,
		BugsFixed:    cfg.BugsFixed,
		CICDLogURL:   cfg.CICDLogURL,
		Output:       cfg.Output,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !cfg.Quiet {
		report(out, res)
	}

	if cfg.Preview {
		if !ui.IsTerminal(out) {
			fmt.Fprint(out, preview.Render(res.Document, 80))
			return nil
		}
		return opt.Preview(res.Output, res.Document)
	}
	return nil
}

// report prints the result panel: output path, task progress and sections.
func report(w io.Writer, res summary.Result) {
	t := ui.Current()
	done, todo := model.Stats(res.Tasks)

	lines := []string{
		t.Title.Render(summary.Title) + "  " + t.Muted.Render("→ "+res.Output),
		"",
	}
	if total := done + todo; total > 0 {
		lines = append(lines,
			fmt.Sprintf("%s %d  %s %d  %s %d",
				t.Success.Render(t.SymDone), done,
				t.Pending.Render(t.SymTodo), todo,
				t.Accent.Render("Total"), total),
			t.Muted.Render(ui.ProgressBar(done, total, 28)),
			"",
		)
	}
	if len(res.Sections) == 0 {
		lines = append(lines, t.Muted.Render("no sections (all inputs empty)"))
	} else {
		lines = append(lines, t.Accent.Render("Sections: ")+strings.Join(res.Sections, ", "))
	}

	ui.Panel(w, lines)
	ui.OK(w, "wrote "+res.Output)
}

// Execute runs the command against the real filesystem and returns an exit
// code (0 ok, 1 error).
func Execute() int {
	if err := NewRootCmd(Options{}).Execute(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		return 1
	}
	return 0
}
