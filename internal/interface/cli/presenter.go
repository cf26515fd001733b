package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tabuddy/tabuddy/internal/application/command"
	"github.com/tabuddy/tabuddy/internal/domain/module"
	"github.com/tabuddy/tabuddy/internal/domain/shared"
	"github.com/tabuddy/tabuddy/pkg/timeutil"
)

const (
	MessageWelcome   = "Welcome to TA Buddy! Enter '" + command.WordHelp + "' to see the available commands."
	MessageNoModules = "No modules to show."
)

// ══════════════════════════════════════════════════════════════════════════════
// PRESENTER
// ══════════════════════════════════════════════════════════════════════════════

// Presenter renders results and modules to a writer.
type Presenter struct {
	out    io.Writer
	styles Styles
}

// NewPresenter creates a presenter writing to out.
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{
		out:    out,
		styles: NewStyles(lipgloss.NewRenderer(out)),
	}
}

// Welcome prints the start-up banner.
func (p *Presenter) Welcome() {
	p.println(p.styles.Title.Render(MessageWelcome))
}

// Prompt prints the input prompt without a newline.
func (p *Presenter) Prompt() {
	fmt.Fprint(p.out, p.styles.Prompt.Render("TAB>")+" ")
}

// Result prints command feedback, and the help text when asked for.
func (p *Presenter) Result(r command.Result) {
	p.println(p.styles.Success.Render(r.Feedback))
	if r.ShowHelp {
		p.Help()
	}
}

// Error prints the user-facing message of err.
func (p *Presenter) Error(err error) {
	p.println(p.styles.Error.Render(shared.MessageOf(err)))
}

// Help prints the usage of every command.
func (p *Presenter) Help() {
	p.println(HelpText())
}

// Modules prints the numbered module list.
func (p *Presenter) Modules(mods []*module.Module) {
	if len(mods) == 0 {
		p.println(p.styles.Muted.Render(MessageNoModules))
		return
	}

	var sb strings.Builder
	for i, m := range mods {
		if i > 0 {
			sb.WriteString("\n")
		}
		p.writeModule(&sb, i+1, m)
	}
	fmt.Fprint(p.out, sb.String())
}

// ─────────────────────────────────────────────────────────────────────────────
// MODULE CARD
// ─────────────────────────────────────────────────────────────────────────────

func (p *Presenter) writeModule(sb *strings.Builder, index int, m *module.Module) {
	fmt.Fprintf(sb, "%s %s %s\n",
		p.styles.Index.Render(fmt.Sprintf("%d.", index)),
		p.styles.Module.Render(m.Name.String()),
		p.styles.Muted.Render(fmt.Sprintf("(%s, %s)",
			plural(len(m.Students), "student"), plural(len(m.Tasks), "task"))),
	)

	if len(m.Tasks) > 0 {
		fmt.Fprintf(sb, "   %s\n", p.styles.Heading.Render("Tasks"))
		for _, t := range m.Tasks {
			due := timeutil.FormatDue(t.Deadline.Time())
			if timeutil.IsOverdue(t.Deadline.Time()) {
				due = p.styles.Overdue.Render(due)
			} else {
				due = p.styles.Muted.Render(due)
			}
			fmt.Fprintf(sb, "   - %s: %s, %s (%s)\n", t.ID, t.Name, t.Deadline, due)
		}
	}

	if len(m.Students) > 0 {
		fmt.Fprintf(sb, "   %s\n", p.styles.Heading.Render("Students"))
		for _, s := range m.Students {
			progress := fmt.Sprintf("%d/%d done", len(s.CompletedTasks), len(m.Tasks))
			if len(m.Tasks) > 0 && len(s.CompletedTasks) == len(m.Tasks) {
				progress = p.styles.Done.Render(progress)
			} else {
				progress = p.styles.Muted.Render(progress)
			}
			fmt.Fprintf(sb, "   - %s (%s) %s %s  %s\n", s.Name, s.ID, s.Email, s.TeleHandle, progress)
		}
	}
}

func (p *Presenter) println(s string) {
	fmt.Fprintln(p.out, s)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
