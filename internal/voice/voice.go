// Package voice speaks assistant replies through a local text-to-speech
// engine. Utterances go through a queue consumed by a background worker so
// speech never blocks turn processing.
package voice

import (
	"context"
	"os/exec"
	"regexp"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	// queueCapacity bounds the backlog; excess utterances are dropped.
	queueCapacity = 16

	// closeWait bounds how long Close waits for the worker before
	// abandoning it.
	closeWait = 3 * time.Second

	// utteranceTimeout caps one engine invocation.
	utteranceTimeout = 30 * time.Second
)

// Engine produces audio for one utterance.
type Engine interface {
	Speak(ctx context.Context, text string) error
}

// CommandEngine shells out to a local text-to-speech binary.
type CommandEngine struct {
	command string
	args    []string
}

// NewCommandEngine wraps a text-to-speech command. An empty command picks
// the platform default.
func NewCommandEngine(command string, args ...string) *CommandEngine {
	if command == "" {
		command = defaultCommand()
	}
	return &CommandEngine{command: command, args: args}
}

func defaultCommand() string {
	if runtime.GOOS == "darwin" {
		return "say"
	}
	return "espeak"
}

func (e *CommandEngine) Speak(ctx context.Context, text string) error {
	args := append(append([]string(nil), e.args...), text)
	return exec.CommandContext(ctx, e.command, args...).Run()
}

// Speaker owns the utterance queue and its worker goroutine.
type Speaker struct {
	engine  Engine
	logger  *zap.Logger
	queue   chan string
	done    chan struct{}
	stopped atomic.Bool
	closed  atomic.Bool
}

// NewSpeaker starts the background worker.
func NewSpeaker(engine Engine, logger *zap.Logger) *Speaker {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Speaker{
		engine: engine,
		logger: logger,
		queue:  make(chan string, queueCapacity),
		done:   make(chan struct{}),
	}
	go s.run()
	return s
}

// Say enqueues an utterance. A full queue or a stopped or closed speaker
// drops it.
func (s *Speaker) Say(text string) {
	if s.stopped.Load() || s.closed.Load() {
		return
	}

	text = CleanForSpeech(text)
	if text == "" {
		return
	}

	select {
	case s.queue <- text:
	default:
		s.logger.Debug("speech queue full, dropping utterance")
	}
}

// Stop flags the speaker so queued and future utterances are skipped. The
// worker keeps draining the queue without speaking.
func (s *Speaker) Stop() {
	s.stopped.Store(true)
}

// Close shuts the worker down, letting it speak what is already queued. It
// waits at most closeWait; a worker stuck in the engine is abandoned rather
// than blocking shutdown.
func (s *Speaker) Close() {
	if s.closed.Swap(true) {
		return
	}
	close(s.queue)

	select {
	case <-s.done:
	case <-time.After(closeWait):
		s.logger.Warn("speech worker did not stop in time, abandoning")
	}
}

func (s *Speaker) run() {
	defer close(s.done)

	for text := range s.queue {
		if s.stopped.Load() {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), utteranceTimeout)
		err := s.engine.Speak(ctx, text)
		cancel()
		if err != nil {
			s.logger.Warn("text-to-speech failed", zap.Error(err))
		}
	}
}

var (
	fencePattern    = regexp.MustCompile("(?s)```.*?```")
	inlineCode      = regexp.MustCompile("`([^`]*)`")
	markupPattern   = regexp.MustCompile(`[*_#>]+`)
	linkPattern     = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	urlPattern      = regexp.MustCompile(`https?://\S+`)
	spacesPattern   = regexp.MustCompile(`[ \t]+`)
	newlinesPattern = regexp.MustCompile(`\n{2,}`)
)

// CleanForSpeech strips markdown and other chat formatting that reads
// poorly out loud.
func CleanForSpeech(text string) string {
	text = fencePattern.ReplaceAllString(text, "")
	text = inlineCode.ReplaceAllString(text, "$1")
	text = linkPattern.ReplaceAllString(text, "$1")
	text = urlPattern.ReplaceAllString(text, "")
	text = markupPattern.ReplaceAllString(text, "")
	text = spacesPattern.ReplaceAllString(text, " ")
	text = newlinesPattern.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
