// Package interactive provides the interactive cooking timer console for
// the tastehub CLI.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"

	"github.com/tastehub/tastehub-go/pkg/cooktimer"
	"github.com/tastehub/tastehub-go/pkg/countdown"
	"github.com/tastehub/tastehub-go/pkg/log"
	"github.com/tastehub/tastehub-go/pkg/recipe"
)

// Options configures a Console.
type Options struct {
	// Bell rings the terminal bell when the timer completes.
	Bell bool

	// Notifier receives completion alerts in addition to the console.
	Notifier cooktimer.Notifier

	// Logger receives timer events.
	Logger log.Logger

	// Ticker and Period override the timer's tick source.
	Ticker countdown.TickerFunc
	Period time.Duration

	// Stdin replaces the terminal as the command source. Nil reads os.Stdin.
	Stdin io.ReadCloser
}

// Console handles interactive mode for one recipe's cooking timer.
type Console struct {
	recipe    recipe.Recipe
	timer     *cooktimer.Timer
	checklist *recipe.Checklist

	stdin io.ReadCloser

	mu  sync.Mutex
	out io.Writer
	rl  *readline.Instance
}

// New creates a console for r. Output goes to out until Run attaches a
// terminal.
func New(r recipe.Recipe, out io.Writer, opts Options) (*Console, error) {
	c := &Console{
		recipe:    r,
		checklist: recipe.NewChecklist(r),
		stdin:     opts.Stdin,
		out:       out,
	}

	notifiers := cooktimer.MultiNotifier{cooktimer.NewBellNotifier(c.writer(), opts.Bell)}
	if opts.Notifier != nil {
		notifiers = append(notifiers, opts.Notifier)
	}

	timer, err := cooktimer.New(cooktimer.Config{
		RecipeID:    r.ID,
		PrepMinutes: r.PrepMinutes,
		CookMinutes: r.CookMinutes,
		Notifier:    notifiers,
		Logger:      opts.Logger,
		Ticker:      opts.Ticker,
		Period:      opts.Period,
		OnTick:      c.onTick,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create timer: %w", err)
	}
	c.timer = timer

	return c, nil
}

// Timer returns the console's cooking timer.
func (c *Console) Timer() *cooktimer.Timer {
	return c.timer
}

// Close releases the timer.
func (c *Console) Close() error {
	return c.timer.Close()
}

// Run starts the interactive command loop on the terminal. It returns when
// the user quits, input ends, or ctx is cancelled. Cancelling ctx interrupts
// a pending read.
func (c *Console) Run(ctx context.Context) error {
	cfg := &readline.Config{
		Prompt:          c.prompt(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}
	if c.stdin != nil {
		c.mu.Lock()
		cfg.Stdin = readline.NewCancelableStdin(c.stdin)
		cfg.Stdout = c.out
		c.mu.Unlock()
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			rl.Close()
		case <-done:
		}
	}()

	c.mu.Lock()
	c.rl = rl
	c.out = rl.Stdout()
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.rl = nil
		c.mu.Unlock()
	}()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			c.printf("Exiting...\n")
			return nil
		}

		if quit := c.Exec(line); quit {
			return nil
		}
	}
}

// Exec runs one command line and reports whether the user asked to quit.
func (c *Console) Exec(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		c.printHelp()

	case "prep", "cook":
		c.cmdMode(cmd)

	case "custom":
		c.cmdCustom(args)

	case "start", "toggle", "t":
		c.cmdToggle()

	case "pause", "p":
		c.timer.Pause()
		c.cmdStatus()

	case "resume", "r":
		c.timer.Resume()
		c.cmdStatus()

	case "reset":
		c.timer.Reset()
		c.cmdStatus()

	case "status", "s":
		c.cmdStatus()

	case "ingredients", "ing":
		c.cmdIngredients()

	case "steps":
		c.cmdSteps()

	case "check", "c":
		c.cmdCheck(args)

	case "quit", "exit", "q":
		c.printf("Exiting...\n")
		return true

	default:
		c.printf("Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	c.refresh()
	return false
}

func (c *Console) printHelp() {
	c.printf(`
%s timer commands:
  Timer:
    prep               - Count down the prep time (%d min)
    cook               - Count down the cook time (%d min)
    custom <minutes>   - Count down a custom time
    start | toggle     - Start, pause or resume
    pause / resume     - Pause or resume the countdown
    reset              - Restore the selected time
    status             - Show the timer

  Recipe:
    ingredients        - Show the ingredient checklist
    check <n>          - Tick ingredient n off the list
    steps              - Show the instructions

  Other:
    help               - Show this help
    quit               - Exit
`, c.recipe.Name, c.recipe.PrepMinutes, c.recipe.CookMinutes)
}

func (c *Console) cmdMode(name string) {
	m, err := cooktimer.ParseMode(name)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	if err := c.timer.SelectMode(m); err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.cmdStatus()
}

func (c *Console) cmdCustom(args []string) {
	if len(args) != 1 {
		c.printf("Usage: custom <minutes>\n")
		return
	}
	minutes, err := strconv.Atoi(args[0])
	if err != nil {
		c.printf("Error: invalid minutes: %s\n", args[0])
		return
	}
	if err := c.timer.SetCustomMinutes(minutes); err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.cmdStatus()
}

func (c *Console) cmdToggle() {
	switch c.timer.Toggle() {
	case cooktimer.ActionStart:
		c.printf("Started.\n")
	case cooktimer.ActionPause:
		c.printf("Paused.\n")
	case cooktimer.ActionResume:
		c.printf("Resumed.\n")
	default:
		c.cmdStatus()
	}
}

func (c *Console) cmdStatus() {
	st := c.timer.State()
	c.printf("%s %s  %s  %.0f%%\n",
		c.timer.Mode(), countdown.FormatTime(st.RemainingSeconds), st.Phase(), c.timer.Progress())
}

func (c *Console) cmdIngredients() {
	for i := range c.checklist.Len() {
		item, _ := c.checklist.Item(i)
		mark := " "
		if c.checklist.Checked(i) {
			mark = "x"
		}
		c.printf("  %2d. [%s] %s\n", i+1, mark, item)
	}
	c.printf("%d of %d left\n", c.checklist.Remaining(), c.checklist.Len())
}

func (c *Console) cmdSteps() {
	for i, step := range c.recipe.Instructions {
		c.printf("  %d. %s\n", i+1, step)
	}
}

func (c *Console) cmdCheck(args []string) {
	if len(args) != 1 {
		c.printf("Usage: check <n>\n")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		c.printf("Error: invalid item: %s\n", args[0])
		return
	}
	checked, err := c.checklist.Toggle(n - 1)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	item, _ := c.checklist.Item(n - 1)
	if checked {
		c.printf("[x] %s\n", item)
	} else {
		c.printf("[ ] %s\n", item)
	}
}

// onTick redraws the prompt with the remaining time.
func (c *Console) onTick(countdown.State) {
	c.refresh()
}

// prompt shows the mode and clock, e.g. "[cook 44:59] timer> ".
func (c *Console) prompt() string {
	return fmt.Sprintf("[%s %s] timer> ", c.timer.Mode(), c.timer.Display())
}

func (c *Console) refresh() {
	c.mu.Lock()
	rl := c.rl
	c.mu.Unlock()
	if rl == nil {
		return
	}
	rl.SetPrompt(c.prompt())
	rl.Refresh()
}

func (c *Console) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format, args...)
}

// writer returns an io.Writer that follows the console output, so alerts
// land on the terminal once Run has attached it.
func (c *Console) writer() io.Writer {
	return consoleWriter{c}
}

type consoleWriter struct {
	c *Console
}

func (w consoleWriter) Write(p []byte) (int, error) {
	w.c.mu.Lock()
	defer w.c.mu.Unlock()
	return w.c.out.Write(p)
}
