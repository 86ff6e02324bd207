package exec

import (
	"os"
	osexec "os/exec"

	"github.com/AnyTimeTraveler/dotscripts/errors"
)

// process is a spawned child whose exit is observed by a reaper goroutine.
// Stdin is always the null device.
type process struct {
	name   string
	cmd    *osexec.Cmd
	exited chan error

	done   bool
	status ExitStatus
	err    error
}

// command builds an unstarted *osexec.Cmd for args using the settings s.
func command(s settings, args []string) *osexec.Cmd {
	cmd := osexec.Command(args[0], args[1:]...)
	cmd.Dir = s.dir
	cmd.Env = s.environ()
	cmd.Stdin = nil
	return cmd
}

// start spawns cmd and begins reaping it in the background.
func start(cmd *osexec.Cmd, name string) (*process, error) {
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "Failed to spawn command '%s'", name)
	}

	p := &process{
		name:   name,
		cmd:    cmd,
		exited: make(chan error, 1),
	}
	go func() {
		p.exited <- cmd.Wait()
	}()

	return p, nil
}

// observe records the outcome delivered by the reaper.
func (p *process) observe(waitErr error) {
	p.done = true
	p.status, p.err = exitStatus(p.cmd.ProcessState, waitErr, p.name)
}

// tryWait reports whether the process has exited without blocking.
func (p *process) tryWait() bool {
	if p.done {
		return true
	}
	select {
	case err := <-p.exited:
		p.observe(err)
		return true
	default:
		return false
	}
}

// wait blocks until the process has exited and returns its status.
func (p *process) wait() (ExitStatus, error) {
	if !p.done {
		p.observe(<-p.exited)
	}
	return p.status, p.err
}

// exitStatus converts the result of (*osexec.Cmd).Wait into an ExitStatus.
// A nonzero exit is not an error here; callers decide what it means.
func exitStatus(state *os.ProcessState, waitErr error, name string) (ExitStatus, error) {
	if waitErr != nil {
		var exitErr *osexec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return -1, errors.Wrapf(waitErr, "Failed to wait for process '%s' to exit", name)
		}
		state = exitErr.ProcessState
	}
	if state == nil {
		return -1, errors.Newf("Process '%s' exited without reporting a status", name)
	}
	return ExitStatus(state.ExitCode()), nil
}
