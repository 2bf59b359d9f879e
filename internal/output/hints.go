package output

import (
	"fmt"
	"strings"
)

// CommandHints maps command names to related commands users might want to run next
var CommandHints = map[string][]string{
	"login":           {"home", "whoami"},
	"logout":          {"login"},
	"register":        {"login"},
	"home":            {"workouts list", "challenges list", "feed list"},
	"whoami":          {"home", "logout"},
	"workouts list":   {"workouts show <id>", "workouts log <name>"},
	"workouts log":    {"progress", "diary list"},
	"diary add":       {"diary list", "progress"},
	"diary list":      {"diary add"},
	"progress":        {"diary list", "workouts list"},
	"challenges list": {"challenges join <id>", "challenges mine"},
	"challenges join": {"challenges mine", "challenges participants <id>"},
	"feed list":       {"feed post <text>", "feed comments <id>"},
	"trainees list":   {"trainees available", "trainees link <id>"},
}

// PrintHints prints "See also" hints for a command. No-op in quiet mode or if command has no hints.
func (p *Printer) PrintHints(command string) {
	if p.quiet {
		return
	}
	hints, ok := CommandHints[command]
	if !ok || len(hints) == 0 {
		return
	}

	cmds := make([]string, len(hints))
	for i, h := range hints {
		cmds[i] = "maxfit " + h
	}
	fmt.Fprintf(p.out, "\nSee also: %s\n", strings.Join(cmds, ", "))
}
