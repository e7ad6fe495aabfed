// Package summary assembles the QA summary markdown document.
package summary

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Makepad-fr/qasummary/internal/model"
	"github.com/Makepad-fr/qasummary/internal/store/filestore"
	"github.com/Makepad-fr/qasummary/internal/tasklist"
)

const Title = "QA Summary"

// Section headings, in the order they appear in the document.
const (
	SectionTasks     = "Task Names"
	SectionReviewers = "QA Reviewer(s)"
	SectionCoverage  = "Test Coverage Results"
	SectionBugs      = "Bugs Found / Fixed"
	SectionCICD      = "CI/CD Logs"
)

// Input is the already-loaded content of every section.
type Input struct {
	Tasks      []string
	Reviewers  string // comma separated
	Coverage   string
	Bugs       string
	CICDLogURL string
}

type section struct {
	title string
	body  []string
}

func sections(in Input) []section {
	var out []section

	if len(in.Tasks) > 0 {
		body := make([]string, 0, len(in.Tasks))
		for _, t := range in.Tasks {
			body = append(body, "- "+t)
		}
		out = append(out, section{SectionTasks, body})
	}

	if in.Reviewers != "" {
		var body []string
		for _, name := range strings.Split(in.Reviewers, ",") {
			body = append(body, "- "+strings.TrimSpace(name))
		}
		out = append(out, section{SectionReviewers, body})
	}

	if c := strings.TrimSpace(in.Coverage); c != "" {
		out = append(out, section{SectionCoverage, []string{c}})
	}

	if b := strings.TrimSpace(in.Bugs); b != "" {
		out = append(out, section{SectionBugs, []string{b}})
	}

	if in.CICDLogURL != "" {
		out = append(out, section{SectionCICD, []string{in.CICDLogURL}})
	}

	return out
}

// Render builds the markdown document. Sections without content are left
// out together with their heading.
func Render(in Input) string {
	lines := []string{"# " + Title, ""}
	for _, s := range sections(in) {
		lines = append(lines, "## "+s.title)
		lines = append(lines, s.body...)
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// Sections lists the headings Render would emit for in.
func Sections(in Input) []string {
	var titles []string
	for _, s := range sections(in) {
		titles = append(titles, s.title)
	}
	return titles
}

// Options name the inputs of a summary run. Paths may be empty.
type Options struct {
	TasksFile    string
	Reviewers    string
	TestCoverage string
	BugsFixed    string
	CICDLogURL   string
	Output       string
}

// Result describes a written summary.
type Result struct {
	Output   string
	Document string
	Tasks    []model.Task
	Sections []string
}

// Generator reads the inputs, renders the summary and writes it out.
type Generator struct {
	store *filestore.Store
	log   *zap.Logger
}

func NewGenerator(store *filestore.Store, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{store: store, log: log}
}

// Generate writes the summary to opts.Output, replacing any existing file.
func (g *Generator) Generate(opts Options) (Result, error) {
	tasks := tasklist.ParseFile(g.store, opts.TasksFile)
	g.log.Debug("parsed task list",
		zap.String("path", opts.TasksFile),
		zap.Int("tasks", len(tasks)))

	in := Input{
		Tasks:      tasklist.Format(tasks),
		Reviewers:  opts.Reviewers,
		Coverage:   g.readOptional("test coverage", opts.TestCoverage),
		Bugs:       g.readOptional("bugs fixed", opts.BugsFixed),
		CICDLogURL: opts.CICDLogURL,
	}

	doc := Render(in)
	if err := g.store.Write(opts.Output, doc); err != nil {
		return Result{}, fmt.Errorf("write summary: %w", err)
	}
	g.log.Debug("wrote summary", zap.String("output", opts.Output), zap.Int("bytes", len(doc)))

	return Result{
		Output:   opts.Output,
		Document: doc,
		Tasks:    tasks,
		Sections: Sections(in),
	}, nil
}

func (g *Generator) readOptional(name, path string) string {
	if path == "" {
		return ""
	}
	if !g.store.IsFile(path) {
		g.log.Debug("skipping input, not a file", zap.String("input", name), zap.String("path", path))
		return ""
	}
	return g.store.ReadText(path)
}
