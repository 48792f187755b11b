package selector

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// Session is a running selector process connected through two pipes:
// the parent writes names to the child's stdin and reads the choice from
// its stdout. The child's stderr is passed through untouched.
type Session struct {
	cmd    *exec.Cmd
	stdin  *os.File
	stdout *os.File

	done    chan struct{}
	waitErr error

	closeOnce sync.Once
}

// Start runs path with argv as its argument vector (argv[0] included).
// A failure to create the pipes or start the process wraps ErrSpawn.
// Cancelling ctx kills the process.
func Start(ctx context.Context, path string, argv []string, stderr io.Writer) (*Session, error) {
	childIn, parentIn, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdin pipe: %w", ErrSpawn, err)
	}

	parentOut, childOut, err := os.Pipe()
	if err != nil {
		childIn.Close()
		parentIn.Close()
		return nil, fmt.Errorf("%w: stdout pipe: %w", ErrSpawn, err)
	}

	cmd := exec.CommandContext(ctx, path)
	if len(argv) > 0 {
		cmd.Args = argv
	}
	cmd.Stdin = childIn
	cmd.Stdout = childOut
	cmd.Stderr = stderr
	cmd.WaitDelay = time.Second

	err = cmd.Start()

	// the child holds its own copies now
	childIn.Close()
	childOut.Close()

	if err != nil {
		parentIn.Close()
		parentOut.Close()
		return nil, fmt.Errorf("%w %s: %w", ErrSpawn, path, err)
	}

	s := &Session{
		cmd:    cmd,
		stdin:  parentIn,
		stdout: parentOut,
		done:   make(chan struct{}),
	}

	go func() {
		s.waitErr = cmd.Wait()
		close(s.done)
	}()

	return s, nil
}

// Pid returns the process id of the selector
func (s *Session) Pid() int {
	return s.cmd.Process.Pid
}

// Stdin returns the write side connected to the selector's standard input
func (s *Session) Stdin() io.WriteCloser {
	return s.stdin
}

// Stdout returns the read side connected to the selector's standard output
func (s *Session) Stdout() io.ReadCloser {
	return s.stdout
}

// WriteNames writes every name of src followed by a newline, then closes
// the write side so the selector sees end of input. The write side is
// closed even when writing fails.
func (s *Session) WriteNames(src Source) error {
	w := bufio.NewWriter(s.stdin)

	var writeErr error
	src.Traverse(func(name, _ string) {
		if writeErr != nil {
			return
		}
		_, writeErr = w.WriteString(name + "\n")
	})

	if writeErr == nil {
		writeErr = w.Flush()
	}

	if err := s.stdin.Close(); err != nil && writeErr == nil {
		writeErr = err
	}

	if writeErr != nil {
		return fmt.Errorf("write names: %w", writeErr)
	}
	return nil
}

// ReadChoice blocks until the selector writes one line or closes its
// output. The line is returned with surrounding whitespace removed; end of
// file with no data yields "". Cancelling ctx unblocks the read.
func (s *Session) ReadChoice(ctx context.Context) (string, error) {
	stop := context.AfterFunc(ctx, func() {
		// closing is the fallback for files without deadline support
		if err := s.stdout.SetReadDeadline(time.Now()); err != nil {
			s.stdout.Close()
		}
	})
	defer stop()

	line, err := bufio.NewReader(s.stdout).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("read selection: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// Done is closed once the selector process has exited
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Err returns the process exit error. It is only meaningful after Done.
func (s *Session) Err() error {
	select {
	case <-s.done:
		return s.waitErr
	default:
		return nil
	}
}

// Close releases both pipe ends and waits for the selector to exit.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.stdin.Close()
		s.stdout.Close()
	})
	<-s.done
	return s.waitErr
}
