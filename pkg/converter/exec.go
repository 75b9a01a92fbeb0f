package converter

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// RunTool executes an external program and returns its combined output.
// The command is killed once the configured timeout expires.
func (s *ShellConverter) RunTool(name string, args ...string) (string, error) {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	commandLine := name + " " + strings.Join(args, " ")
	s.logger.Debug("Executing tool", "command", commandLine)

	cmd := exec.CommandContext(ctx, name, args...)

	// Capture stdout and stderr separately for better debugging
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	stdoutStr := stdout.String()
	stderrStr := stderr.String()

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("timed out after %s: %w", s.timeout, err)
		}

		// Build detailed error message
		errMsg := fmt.Sprintf("%s failed: %v", name, err)
		if len(stdoutStr) > 0 {
			errMsg += fmt.Sprintf("\nstdout: %s", strings.TrimSpace(stdoutStr))
		}
		if len(stderrStr) > 0 {
			errMsg += fmt.Sprintf("\nstderr: %s", strings.TrimSpace(stderrStr))
		}
		errMsg += fmt.Sprintf("\ncommand: %s", commandLine)

		return stdoutStr + stderrStr, errors.New(errMsg)
	}

	output := stdoutStr + stderrStr

	s.logger.Debug("Tool executed successfully",
		"tool", name,
		"duration", time.Since(start),
		"output_length", len(output))

	return output, nil
}
