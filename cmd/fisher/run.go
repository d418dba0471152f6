package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/fisher-hooks/fisher/pkg/errs"
	"github.com/fisher-hooks/fisher/pkg/events"
	"github.com/fisher-hooks/fisher/pkg/jobs"
	"github.com/fisher-hooks/fisher/pkg/requests"
)

var (
	body    string
	params  []string
	headers []string
)

// buildRequest turns the run flags into a web request.
func buildRequest() (*requests.WebRequest, error) {
	req := requests.NewWebRequest()
	req.Source = "cli"
	req.RawBody = body

	for _, param := range params {
		key, value, ok := strings.Cut(param, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: parameter %q is not key=value", errs.ErrInvalidInput, param)
		}
		req.Params[key] = value
	}

	for _, header := range headers {
		key, value, ok := strings.Cut(header, ":")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: header %q is not Name: value", errs.ErrInvalidInput, header)
		}
		req.Headers.Add(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	return req, nil
}

func createRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run <hook> [--body <body>] [--param key=value]... [--header 'Name: value']...",
		Short: "Run a hook as if a request came in",
		Long: `Validate a request against a hook, run it when accepted, then run the
status hooks subscribed to its outcome.

Examples:
  fisher run deploy.sh --param secret=abc
  fisher run deploy.sh --body '{"ref": "main"}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, cfg, err := loadHooks(cmd)
			if err != nil {
				return err
			}

			req, err := buildRequest()
			if err != nil {
				return err
			}

			job, result, err := deps.Blueprint.Hooks().JobFor(args[0], req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch result {
			case requests.ExecuteHook:
			case requests.Ping:
				fmt.Fprintln(out, "Ping accepted.")
				return nil
			default:
				return errs.WithHook(fmt.Errorf("%w: request rejected by every provider", errs.ErrInvalidInput), args[0])
			}

			var mu sync.Mutex
			var jobErr error
			dispatcher := deps.NewDispatcher(cfg.Workers).
				WithResultHandler(func(done *jobs.Job, output events.JobOutput, err error) {
					mu.Lock()
					defer mu.Unlock()

					fmt.Fprintf(out, "==> %s\n", output.HookName)
					fmt.Fprint(out, output.Stdout)
					fmt.Fprint(cmd.ErrOrStderr(), output.Stderr)
					if done == job {
						jobErr = err
					}
				})

			if err := dispatcher.Queue(job); err != nil {
				return err
			}
			dispatcher.Close()

			if err := dispatcher.Run(cmd.Context()); err != nil {
				return err
			}
			return jobErr
		},
	}

	runCmd.Flags().StringVar(&body, "body", "", "Request body saved for the hook")
	runCmd.Flags().StringArrayVar(&params, "param", nil, "Request parameter as key=value")
	runCmd.Flags().StringArrayVar(&headers, "header", nil, "Request header as 'Name: value'")

	return runCmd
}
