package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/labdesk/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type invokeDoneMsg struct {
	result  application.Result
	elapsed time.Duration
}

// invokeSpinnerModel animates while one registry invocation is in flight.
type invokeSpinnerModel struct {
	spinner spinner.Model
	command string
	started time.Time
	invoke  tea.Cmd
	result  application.Result
	elapsed time.Duration
}

func newInvokeSpinnerModel(command string, invoke tea.Cmd) invokeSpinnerModel {
	return invokeSpinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		command: command,
		started: time.Now(),
		invoke:  invoke,
	}
}

func (m invokeSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.invoke)
}

func (m invokeSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case invokeDoneMsg:
		m.result = msg.result
		m.elapsed = msg.elapsed
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m invokeSpinnerModel) View() string {
	if m.result != nil {
		return fmt.Sprintf("%s finished in %s\n", m.command, m.elapsed.Round(time.Millisecond))
	}

	elapsed := time.Since(m.started).Truncate(100 * time.Millisecond)
	return fmt.Sprintf("%s Calling %s... %s", m.spinner.View(), m.command, elapsed)
}

// invokeWithSpinner runs the named command while a spinner animates on
// output.
func invokeWithSpinner(ctx context.Context, output io.Writer, registry *application.Registry, name string, args []byte) (application.Result, error) {
	invoke := func() tea.Msg {
		started := time.Now()
		result := registry.Invoke(ctx, name, args)
		return invokeDoneMsg{result: result, elapsed: time.Since(started)}
	}

	p := tea.NewProgram(
		newInvokeSpinnerModel(name, invoke),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	final, ok := finalModel.(invokeSpinnerModel)
	if !ok {
		return nil, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}
	if final.result == nil {
		return nil, fmt.Errorf("command %s did not finish", name)
	}

	return final.result, nil
}
