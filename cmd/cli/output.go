package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"github.com/sevigo/pr-warden/internal/core"
	"github.com/sevigo/pr-warden/internal/review"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgWhite)
	dimColor     = color.New(color.FgHiBlack)
	boldColor    = color.New(color.Bold)
)

// renderMarkdown renders md for the terminal, falling back to the raw text.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
		glamour.WithEmoji(),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func printRecorded(host *recordingHost) {
	comments, reviews := host.recorded()
	separator := strings.Repeat("═", 60)

	for _, c := range comments {
		titleColor.Println(separator)
		titleColor.Println("SUMMARY COMMENT")
		titleColor.Println(separator)
		fmt.Print(renderMarkdown(c))
	}

	for _, d := range reviews {
		fmt.Println()
		titleColor.Println(separator)
		titleColor.Printf("REVIEW (%s)\n", d.Kind)
		titleColor.Println(separator)
		if d.Body != "" {
			fmt.Print(renderMarkdown(d.Body))
		}
		printInlineComments(d.Comments)
	}
}

func printInlineComments(comments []core.InlineComment) {
	for i, c := range comments {
		fmt.Println()
		boldColor.Printf(" %s", c.Path)
		dimColor.Printf(":%d\n", c.Line)
		infoColor.Printf("   %s\n", c.Body)
		if i < len(comments)-1 {
			dimColor.Println(strings.Repeat("─", 40))
		}
	}
}

func printResult(res review.Result, verbose bool, elapsed time.Duration) {
	fmt.Println()
	switch {
	case res.State == review.StateAborted:
		errorColor.Printf("Review aborted: %v\n", res.Err)
	case res.Reached(review.StateApproved):
		successColor.Printf("Auto-approved: %d changed line(s) in %d file(s)\n", res.Changes, res.Files)
	case res.Decision == nil:
		successColor.Println("No findings, nothing submitted")
	default:
		warnColor.Printf("Review submitted: %s with %d inline comment(s)\n", res.Decision.Kind, len(res.Decision.Comments))
	}

	if res.Err != nil && res.State != review.StateAborted {
		warnColor.Printf("Completed with errors: %v\n", res.Err)
	}

	if verbose {
		states := make([]string, 0, len(res.Trace))
		for _, s := range res.Trace {
			states = append(states, s.String())
		}
		dimColor.Printf("   Trace: %s\n", strings.Join(states, " → "))
		if res.Reached(review.StateRiskAssessed) {
			dimColor.Printf("   Risk: %s (%d changes)\n", res.Tier, res.Changes)
		}
		dimColor.Printf("   Total time: %s\n", elapsed.Round(time.Millisecond))
	}
}
