// Package model holds the task types shared by the parser, the summary
// assembler and the console report.
package model

import "fmt"

// Status is the completion state of a checklist item.
type Status string

const (
	StatusDone Status = "Done"
	StatusTodo Status = "Todo"
)

// StatusFromMark maps the character inside a checkbox ("x" or " ") to a Status.
func StatusFromMark(mark string) Status {
	if mark == "x" {
		return StatusDone
	}
	return StatusTodo
}

// Task is one checklist item read from a task list.
type Task struct {
	Status      Status
	Description string
}

func (t Task) Done() bool { return t.Status == StatusDone }

// String renders the task the way it appears in the summary, e.g. "[Done] Write docs".
func (t Task) String() string {
	return fmt.Sprintf("[%s] %s", t.Status, t.Description)
}

// Stats counts done and pending tasks.
func Stats(tasks []Task) (done, todo int) {
	for _, t := range tasks {
		if t.Done() {
			done++
		} else {
			todo++
		}
	}
	return
}
