package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/spf13/cobra"

	"github.com/jfmyers9/lastfmclient/pkg/lastfm"
)

var (
	callPost    bool
	callAuth    bool
	callExpr    string
	callTimeout time.Duration
)

var callCmd = &cobra.Command{
	Use:   "call <package.method> [key=value ...]",
	Short: "Call any Last.fm API method",
	Long: `Call a Last.fm API method and print its normalized JSON payload.

Parameters are given as key=value pairs. Write methods need --post and
--auth; authenticated calls use the configured session key.

The --expr flag evaluates an expression against the payload instead of
printing it. The payload is available as "data", and the keys of an
object payload are also available directly:

  lastfm call user.getInfo user=rj --expr 'name + " has " + playcount + " plays"'
  lastfm call user.getRecentTracks user=rj limit=5 --expr 'map(data.track, .name)'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)

	callCmd.Flags().BoolVar(&callPost, "post", false, "send the request as HTTP POST")
	callCmd.Flags().BoolVar(&callAuth, "auth", false, "sign the request with the session key")
	callCmd.Flags().StringVarP(&callExpr, "expr", "e", "", "expression evaluated against the payload")
	callCmd.Flags().DurationVar(&callTimeout, "timeout", 30*time.Second, "request timeout")
}

func runCall(cmd *cobra.Command, args []string) error {
	if !strings.Contains(args[0], ".") {
		return fmt.Errorf("method must be package.method, got %q", args[0])
	}
	params, err := parseParams(args[1:])
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
	defer cancel()

	httpMethod := http.MethodGet
	if callPost {
		httpMethod = http.MethodPost
	}

	raw, err := client.Call(ctx, httpMethod, args[0], callAuth, params)
	if err != nil {
		return err
	}

	if callExpr != "" {
		out, err := evalExpr(callExpr, raw)
		if err != nil {
			return err
		}
		return writeResult(os.Stdout, out, isTerminal(os.Stdout))
	}
	return writePayload(os.Stdout, raw, isTerminal(os.Stdout))
}

// parseParams turns key=value arguments into request parameters. A key
// given more than once keeps its last value.
func parseParams(args []string) (lastfm.Params, error) {
	params := lastfm.Params{}
	for _, arg := range args {
		key, val, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", arg)
		}
		params[key] = val
	}
	return params, nil
}

// evalExpr runs expression against the decoded payload.
func evalExpr(expression string, raw json.RawMessage) (any, error) {
	var data any
	if err := lastfm.Decode(raw, &data); err != nil {
		return nil, err
	}

	env := map[string]any{}
	if obj, ok := data.(map[string]any); ok {
		for k, v := range obj {
			env[k] = v
		}
	}
	env["data"] = data

	program, err := expr.Compile(expression, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("invalid expression: %w", err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("expression failed: %w", err)
	}
	return out, nil
}

// writePayload prints raw JSON, indented when indent is set.
func writePayload(w io.Writer, raw json.RawMessage, indent bool) error {
	if indent {
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return fmt.Errorf("failed to format payload: %w", err)
		}
		raw = buf.Bytes()
	}
	_, err := fmt.Fprintf(w, "%s\n", raw)
	return err
}

// writeResult prints an expression result. Strings are printed bare,
// everything else as JSON.
func writeResult(w io.Writer, v any, indent bool) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return writePayload(w, raw, indent)
}
