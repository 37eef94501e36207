package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/labdesk/internal/application"
	"github.com/spf13/cobra"
)

var errCommandFailed = errors.New("command failed")

func newCallCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "call <command> [args-json|-]",
		Short: "Invoke one command against the remote API",
		Long:  "Invoke one command by name. Arguments are a JSON object given inline or read from stdin with \"-\". The session lives only for the duration of the call.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if !app.registry.Has(name) {
				return fmt.Errorf("unknown command %q (see \"labdesk commands\")", name)
			}

			raw, err := readCallArgs(cmd.InOrStdin(), args[1:])
			if err != nil {
				return err
			}

			var result application.Result
			if asJSON {
				result = app.registry.Invoke(cmd.Context(), name, raw)
			} else {
				result, err = invokeWithSpinner(cmd.Context(), cmd.ErrOrStderr(), app.registry, name, raw)
				if err != nil {
					return err
				}
			}

			if err := writeResult(cmd, app, result, asJSON); err != nil {
				return err
			}
			if !result.IsSuccess() {
				return fmt.Errorf("%w: %s", errCommandFailed, name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw outcome envelope")
	return cmd
}

func readCallArgs(stdin io.Reader, args []string) (json.RawMessage, error) {
	if len(args) == 0 {
		return nil, nil
	}

	data := []byte(args[0])
	if args[0] == "-" {
		var err error
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read arguments from stdin: %w", err)
		}
	}

	data = bytes.TrimSpace(data)
	if len(data) > 0 && !json.Valid(data) {
		return nil, errors.New("arguments must be a JSON object")
	}
	return json.RawMessage(data), nil
}

func writeResult(cmd *cobra.Command, app *app, result application.Result, asJSON bool) error {
	if asJSON {
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("encode outcome: %w", err)
		}
		var indented bytes.Buffer
		if err := json.Indent(&indented, data, "", "  "); err != nil {
			return fmt.Errorf("indent outcome: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), indented.String())
		return err
	}

	rendered, err := app.renderOutcome(result)
	if err != nil {
		return fmt.Errorf("render outcome: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
