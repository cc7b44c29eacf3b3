package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cockroachdb/errors"

	"hotel_manager/internal/domain"
)

// Exit codes.
const (
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error   { return &exitError{code: exitUserError, err: err} }
func systemError(err error) error { return &exitError{code: exitSysError, err: err} }

// fail picks the exit code from the error's domain kind.
func fail(err error) error {
	if err == nil {
		return nil
	}
	if domain.KindOf(err) == domain.KindStore {
		return systemError(err)
	}
	return userError(err)
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	// flag and argument errors from cobra
	return exitUserError
}

// message is what the operator sees: the leaf message for domain errors, the
// full chain for everything else.
func message(err error) string {
	var ee *exitError
	if errors.As(err, &ee) && ee.code == exitUserError && domain.KindOf(ee.err) != domain.KindStore {
		return domain.Message(ee.err)
	}
	return err.Error()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printTable writes tab-separated rows under header, aligned.
func printTable(w io.Writer, header string, rows []string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	for _, r := range rows {
		fmt.Fprintln(tw, r)
	}
	return tw.Flush()
}

// confirm prints msg, or {"message", "id"} with --json.
func (h *cli) confirm(w io.Writer, msg string, id int64) error {
	if h.asJSON {
		return printJSON(w, struct {
			Message string `json:"message"`
			ID      int64  `json:"id,omitempty"`
		}{msg, id})
	}
	_, err := fmt.Fprintln(w, msg)
	return err
}
