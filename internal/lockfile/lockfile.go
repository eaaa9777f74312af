// Package lockfile guards the live timer with a PID lockfile so only one
// process drives a session's tick loop at a time. Locks left behind by dead
// processes are reclaimed.
package lockfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/jwinters/stint/internal/constants"
	"github.com/jwinters/stint/internal/logger"
)

var findProcessFunc = ps.FindProcess

type Lock struct {
	path string
}

// Acquire takes the timer lock in configDir. It fails when another live stint
// process already holds it; a lockfile pointing at a dead or recycled PID is
// treated as stale and replaced.
func Acquire(configDir string) (*Lock, error) {
	path := filepath.Join(configDir, constants.TimerLockfileName)

	if pid, err := readLockfile(path); err == nil {
		if processAlive(pid) {
			return nil, fmt.Errorf("another stint timer is already running (pid %d)", pid)
		}
		logger.Debug("reclaiming stale timer lockfile", "pid", pid)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	content := strconv.Itoa(os.Getpid())
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}

	return &Lock{path: path}, nil
}

// Release removes the lockfile. Safe to call on an already-released lock.
func (l *Lock) Release() error {
	if l == nil || l.path == "" {
		return nil
	}
	err := os.Remove(l.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	l.path = ""
	return nil
}

func readLockfile(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		return 0, fmt.Errorf("lockfile is malformed")
	}
	if pid < 1 {
		return 0, fmt.Errorf("invalid process ID in lockfile")
	}

	return pid, nil
}

// processAlive reports whether the PID belongs to a running stint process.
// A recycled PID owned by some other executable does not count.
func processAlive(pid int) bool {
	proc, err := findProcessFunc(pid)
	if err != nil || proc == nil {
		return false
	}
	return strings.Contains(strings.ToLower(proc.Executable()), constants.AppName)
}
