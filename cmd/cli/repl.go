package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	bannerTitle   = "Travel Assistant - Your AI Travel Companion"
	goodbyeText   = "Goodbye! Safe travels!"
	clearedText   = "Conversation history cleared!"
	userPrompt    = "You: "
	assistantName = "Assistant:"
	rendererWidth = 100
)

var bannerLines = []string{
	"Type 'quit' or 'exit' to end the conversation",
	"Type 'clear' to clear conversation history",
	"Type 'help' for more commands",
}

var helpLines = [][2]string{
	{"quit/exit", "End the conversation"},
	{"clear", "Clear conversation history"},
	{"help", "Show this help message"},
	{"Any other text", "Ask a travel question"},
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CCCCCC"))
	speakerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8524a6"))
	commandStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
)

// assistantSession is the part of an assistant the REPL drives.
type assistantSession interface {
	Respond(ctx context.Context, message string) string
	ClearHistory()
}

type repl struct {
	in       *bufio.Scanner
	out      io.Writer
	a        assistantSession
	renderer *glamour.TermRenderer
}

func newREPL(in io.Reader, out io.Writer, a assistantSession, markdown bool) *repl {
	r := &repl{in: bufio.NewScanner(in), out: out, a: a}
	if markdown {
		// Plain text is used when the renderer cannot be built.
		if tr, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(rendererWidth)); err == nil {
			r.renderer = tr
		}
	}
	return r
}

func (r *repl) banner() {
	fmt.Fprintln(r.out, titleStyle.Render(bannerTitle))
	for _, line := range bannerLines {
		fmt.Fprintln(r.out, hintStyle.Render(line))
	}
	fmt.Fprintln(r.out, strings.Repeat("-", 50))
}

func (r *repl) help() {
	fmt.Fprintln(r.out, "\nAvailable commands:")
	for _, h := range helpLines {
		fmt.Fprintf(r.out, "  - %s: %s\n", commandStyle.Render(h[0]), h[1])
	}
}

// run reads lines until quit, EOF, or ctx is done.
func (r *repl) run(ctx context.Context) {
	for {
		fmt.Fprint(r.out, "\n"+promptStyle.Render(userPrompt))
		if !r.in.Scan() {
			fmt.Fprintln(r.out, "\n\n"+goodbyeText)
			return
		}
		if ctx.Err() != nil {
			fmt.Fprintln(r.out, "\n\n"+goodbyeText)
			return
		}

		input := strings.TrimSpace(r.in.Text())
		switch strings.ToLower(input) {
		case "":
			continue
		case "quit", "exit":
			fmt.Fprintln(r.out, goodbyeText)
			return
		case "clear":
			r.a.ClearHistory()
			fmt.Fprintln(r.out, noticeStyle.Render(clearedText))
			continue
		case "help":
			r.help()
			continue
		}

		reply := r.a.Respond(ctx, input)
		fmt.Fprintf(r.out, "\n%s\n%s\n", speakerStyle.Render(assistantName), r.render(reply))
	}
}

func (r *repl) render(text string) string {
	if r.renderer == nil {
		return text
	}
	out, err := r.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
