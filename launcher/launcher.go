package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
)

// Invocation is a fully resolved test run.
type Invocation struct {
	Path string
	Args []string
	Dir  string

	// Env is the complete environment of the child process.
	Env []string

	// Set lists the variables the launcher assigned on top of the inherited environment.
	Set []EnvVar
}

// CommandLine returns the invocation as a single printable line.
func (i Invocation) CommandLine() string {
	return strings.Join(append([]string{i.Path}, i.Args...), " ")
}

// Launcher prepares and runs test invocations rooted at a project directory.
type Launcher struct {
	// Root is the absolute project root.
	Root string

	// Environ is the inherited environment. Defaults to [os.Environ].
	Environ []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Logger *slog.Logger
}

func (l Launcher) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return l.Logger
}

// Prepare resolves the interpreter and builds the child environment for variant.
// It never starts a process.
func (l Launcher) Prepare(variant Variant) (Invocation, error) {
	if !filepath.IsAbs(l.Root) {
		return Invocation{}, fmt.Errorf("project root must be absolute: %q", l.Root)
	}

	environ := l.Environ
	if environ == nil {
		environ = os.Environ()
	}

	env := slices.Clone(environ)
	set := make([]EnvVar, 0, len(variant.Env)+1)

	for _, v := range variant.Env {
		env = setEnv(env, v.Name, v.Value)

		// Folded into the final search path below.
		if v.Name != PathListEnv {
			set = append(set, v)
		}
	}

	existing, _ := lookupEnv(env, PathListEnv)
	pathList := EnvVar{Name: PathListEnv, Value: BuildPathList(existing, l.Root, variant.sourceDir())}

	env = setEnv(env, pathList.Name, pathList.Value)
	set = append(set, pathList)

	searchPath, _ := lookupEnv(env, "PATH")

	interpreter, err := resolveInterpreter(l.Root, searchPath, variant.Interpreter)
	if err != nil {
		return Invocation{}, err
	}

	return Invocation{
		Path: interpreter,
		Args: []string{"-m", "unittest", "discover", "-v", "-s", variant.testDir()},
		Dir:  l.Root,
		Env:  env,
		Set:  set,
	}, nil
}

// Run spawns the invocation and blocks until it exits.
// A non-zero exit status is returned as an [ExitError] carrying the child's code.
func (l Launcher) Run(ctx context.Context, inv Invocation) error {
	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Env = inv.Env
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	logger := l.logger()
	logger.Debug("starting test run", slog.String("command", inv.CommandLine()), slog.String("dir", inv.Dir))

	err := cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Terminated by a signal.
			code = 1
		}

		logger.Debug("test run failed", slog.Int("code", code))

		return &ExitError{Code: code}
	}
	if errors.Is(err, fs.ErrPermission) {
		return &ExitError{Code: ExitNotExecutable, Err: fmt.Errorf("start interpreter: %w", err)}
	}
	if err != nil {
		return fmt.Errorf("start interpreter: %w", err)
	}

	logger.Debug("test run succeeded")

	return nil
}

// Launch prepares and runs variant.
func (l Launcher) Launch(ctx context.Context, variant Variant) error {
	inv, err := l.Prepare(variant)
	if err != nil {
		return err
	}

	return l.Run(ctx, inv)
}

// resolveInterpreter finds the interpreter the way the child would:
// paths are resolved against root, bare names against the child's PATH.
func resolveInterpreter(root string, searchPath string, interpreter string) (string, error) {
	if interpreter == "" {
		return "", &ExitError{
			Code: ExitCommandNotFound,
			Err:  fmt.Errorf("%w: no interpreter configured", ErrInterpreterNotFound),
		}
	}

	if strings.ContainsRune(interpreter, '/') || strings.ContainsRune(interpreter, filepath.Separator) {
		path := interpreter
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}

		resolved, err := exec.LookPath(path)
		if err != nil {
			return "", interpreterError(interpreter, err)
		}

		return resolved, nil
	}

	err := exec.ErrNotFound

	for _, dir := range filepath.SplitList(searchPath) {
		// Relative entries would depend on the working directory.
		if dir == "" || !filepath.IsAbs(dir) {
			continue
		}

		resolved, lookErr := exec.LookPath(filepath.Join(dir, interpreter))
		if lookErr == nil {
			return resolved, nil
		}

		if errors.Is(lookErr, fs.ErrPermission) {
			err = lookErr
		}
	}

	return "", interpreterError(interpreter, err)
}

func interpreterError(interpreter string, err error) *ExitError {
	code := ExitCommandNotFound
	if errors.Is(err, fs.ErrPermission) {
		code = ExitNotExecutable
	}

	return &ExitError{
		Code: code,
		Err:  fmt.Errorf("%w: %s: %w", ErrInterpreterNotFound, interpreter, err),
	}
}
