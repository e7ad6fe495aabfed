// Package tasklist extracts checklist items from the "## Tasks" section of a
// markdown file.
package tasklist

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/Makepad-fr/qasummary/internal/model"
)

const tasksHeading = "## tasks"

// itemPattern matches "- [ ] 1.2 text" and "- [x] 1.2 text".
var itemPattern = regexp.MustCompile(`^\s*- \[( |x)\] \d+\.\d+ (.+)`)

// Source opens task files. *filestore.Store satisfies it.
type Source interface {
	Open(path string) (io.ReadCloser, error)
}

// ParseFile parses the task list at path. A missing or unreadable path
// yields no tasks.
func ParseFile(src Source, path string) []model.Task {
	if path == "" {
		return nil
	}
	rc, err := src.Open(path)
	if err != nil {
		return nil
	}
	defer rc.Close()
	return Parse(rc)
}

// Parse scans r line by line. Capture starts after the tasks heading and
// ends at the next "##" heading.
func Parse(r io.Reader) []model.Task {
	var tasks []model.Task

	br := bufio.NewReader(r)
	inTasks := false
	for {
		line, err := br.ReadString('\n')
		if line == "" && err != nil {
			break
		}
		line = strings.TrimRight(line, "\r\n")
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		switch {
		case strings.HasPrefix(lower, tasksHeading):
			inTasks = true
		case !inTasks:
		case strings.HasPrefix(trimmed, "##"):
			return tasks
		default:
			if m := itemPattern.FindStringSubmatch(line); m != nil {
				tasks = append(tasks, model.Task{
					Status:      model.StatusFromMark(m[1]),
					Description: strings.TrimSpace(m[2]),
				})
			}
		}

		if err != nil {
			// io.EOF, or a read error that truncates the list.
			break
		}
	}
	return tasks
}

// Format renders tasks as "[Status] description" strings.
func Format(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.String())
	}
	return out
}
