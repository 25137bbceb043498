package player

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/dom314/dom/pkg/model"
)

// Player hands episodes over to an external media player
type Player struct {
	// Command is the player executable followed by its fixed arguments
	Command []string
	// GUIArgs are appended when a graphical session is available
	GUIArgs []string

	lookupEnv func(string) (string, bool)
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
}

func New(command []string, guiArgs []string) *Player {
	if len(command) == 0 {
		command = []string{model.DefaultPlayerCommand}
	}

	return &Player{
		Command:   command,
		GUIArgs:   guiArgs,
		lookupEnv: os.LookupEnv,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// IsGUI reports whether a graphical session is available
func (p *Player) IsGUI() bool {
	lookup := p.lookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	_, ok := lookup("DISPLAY")
	return ok
}

// Start launches the player for audioURL.
// In a graphical session the player is detached from the terminal and Start
// returns as soon as the process is running. Otherwise the player takes over
// the terminal and Start waits for it to exit.
func (p *Player) Start(ctx context.Context, audioURL string) error {
	if len(p.Command) == 0 {
		return errors.New("player command is empty")
	}

	args := append([]string{}, p.Command[1:]...)
	args = append(args, audioURL)

	logger := log.WithFields(log.Fields{
		"player":    p.Command[0],
		"audio_url": audioURL,
	})

	if p.IsGUI() {
		args = append(args, p.GUIArgs...)

		// Not bound to ctx, the player outlives the command that started it
		cmd := exec.Command(p.Command[0], args...)
		if err := cmd.Start(); err != nil {
			return errors.Wrapf(err, "failed to start player %q", p.Command[0])
		}

		logger.Debug("player started in background")
		go func() {
			if err := cmd.Wait(); err != nil {
				logger.WithError(err).Debug("player exited")
			}
		}()

		return nil
	}

	cmd := exec.CommandContext(ctx, p.Command[0], args...)
	cmd.Stdin = p.stdin
	cmd.Stdout = p.stdout
	cmd.Stderr = p.stderr

	logger.Debug("running player")
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "player %q failed", p.Command[0])
	}

	return nil
}
