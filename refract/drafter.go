package refract

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/erraggy/schemaview/schemaerrors"
)

// DefaultDrafterPath is the drafter executable looked up on PATH.
const DefaultDrafterPath = "drafter"

// ParseBlueprint runs drafter over API Blueprint source and returns the
// refract parse result as JSON.
//
// drafter exits non-zero when the blueprint has errors but still prints a
// parseResult whose annotations describe them, so output is returned whenever
// there is any; the caller reports the annotations.
func ParseBlueprint(ctx context.Context, source []byte, drafterPath string) ([]byte, error) {
	if drafterPath == "" {
		drafterPath = DefaultDrafterPath
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, drafterPath, "--format", "json") //nolint:gosec // G204 - drafter path is operator configuration
	cmd.Stdin = bytes.NewReader(source)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && stdout.Len() > 0 {
		return stdout.Bytes(), nil
	}

	return nil, &schemaerrors.ParseError{
		Path:    drafterPath,
		Message: strings.TrimSpace(stderr.String()),
		Cause:   err,
	}
}
