//go:generate mockgen -destination=./mocks/executor.go . Executor

package sdkmanager

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/qt-creator/qt-creator-sub139/pkg/errors"
	"github.com/qt-creator/qt-creator-sub139/pkg/logger"
	"github.com/qt-creator/qt-creator-sub139/pkg/sdk"
)

// DefaultBinary is the sdkmanager executable looked up on PATH.
const DefaultBinary = "sdkmanager"

// Executor runs external commands and captures their output.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// DefaultExecutor uses exec.CommandContext. No shell is involved.
type DefaultExecutor struct{}

// Run executes name with args.
func (DefaultExecutor) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, nil, errors.Wrapf(errors.ErrSdkManagerNotFound, "%s", name)
	}
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err := cmd.Run()
	return outBuf.Bytes(), errBuf.Bytes(), err
}

// Runner invokes sdkmanager to obtain a package listing.
type Runner struct {
	Binary    string
	SdkRoot   string
	ExtraArgs []string
	Exec      Executor
}

// NewRunner creates a runner for the given binary and SDK root.
func NewRunner(binary, sdkRoot string, extraArgs ...string) *Runner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Runner{
		Binary:    binary,
		SdkRoot:   sdkRoot,
		ExtraArgs: extraArgs,
		Exec:      DefaultExecutor{},
	}
}

// ListArgs returns the arguments passed to sdkmanager for a verbose listing.
func (r *Runner) ListArgs() []string {
	args := []string{"--list", "--verbose"}
	args = append(args, r.ExtraArgs...)
	if r.SdkRoot != "" {
		args = append(args, "--sdk_root="+r.SdkRoot)
	}
	return args
}

// ListOutput runs "sdkmanager --list --verbose" and returns its standard output.
func (r *Runner) ListOutput(ctx context.Context) (string, error) {
	args := r.ListArgs()
	logger.Debug("running sdkmanager", logger.Fields{"binary": r.Binary, "args": strings.Join(args, " ")})

	stdout, stderr, err := r.Exec.Run(ctx, r.Binary, args...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			return "", errors.Wrapf(errors.ErrSdkManagerRun, "%s: %v", msg, err)
		}
		return "", errors.Wrapf(errors.ErrSdkManagerRun, "%v", err)
	}
	return string(stdout), nil
}

// ListPackages runs sdkmanager and parses its listing.
func (r *Runner) ListPackages(ctx context.Context, opts ...Option) ([]sdk.Package, error) {
	output, err := r.ListOutput(ctx)
	if err != nil {
		return nil, err
	}
	return ParsePackageListing(output, opts...), nil
}
