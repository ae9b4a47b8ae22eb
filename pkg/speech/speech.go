// Package speech provides Speaker sinks for reminder notifications.
package speech

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
)

// Exec speaks through a local text-to-speech binary. Failures are
// logged and dropped; the scheduler never consumes a failure channel.
type Exec struct {
	// Binary overrides autodetection (espeak-ng, espeak, say).
	Binary string
	Log    zerolog.Logger
}

// NewExec builds an Exec speaker that logs to stderr.
func NewExec() *Exec {
	return &Exec{Log: zerolog.New(os.Stderr).With().Timestamp().Logger()}
}

func (s *Exec) binary() (string, bool) {
	if s.Binary != "" {
		return s.Binary, true
	}
	for _, candidate := range []string{"espeak-ng", "espeak", "say"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, true
		}
	}
	return "", false
}

// Speak synthesizes the utterance, fire-and-forget.
func (s *Exec) Speak(utterance, locale string) {
	bin, ok := s.binary()
	if !ok {
		s.Log.Warn().Str("utterance", utterance).Msg("no speech binary found")
		return
	}

	var cmd *exec.Cmd
	switch {
	case isSay(bin):
		cmd = exec.Command(bin, utterance)
	default:
		// espeak family takes a voice/language flag.
		cmd = exec.Command(bin, "-v", locale, utterance)
	}

	if err := cmd.Start(); err != nil {
		s.Log.Warn().Err(err).Str("binary", bin).Msg("speech failed to start")
		return
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			s.Log.Debug().Err(err).Msg("speech exited with error")
		}
	}()
}

func isSay(bin string) bool {
	return len(bin) >= 3 && bin[len(bin)-3:] == "say"
}

// Print writes utterances to a writer instead of the audio device,
// for daemons running without audio and for tests.
type Print struct {
	Out io.Writer
}

// NewPrint returns a Print speaker targeting stderr.
func NewPrint() *Print {
	return &Print{Out: os.Stderr}
}

// Speak writes the utterance with its locale tag.
func (s *Print) Speak(utterance, locale string) {
	out := s.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "[%s] %s\n", locale, utterance)
}
