package voice

import (
	"context"
	"sync"
	"testing"
	"time"
)

type fakeEngine struct {
	mu     sync.Mutex
	spoken []string
}

func (f *fakeEngine) Speak(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, text)
	return nil
}

func (f *fakeEngine) all() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.spoken...)
}

func TestSpeakerSpeaksQueuedText(t *testing.T) {
	engine := &fakeEngine{}
	s := NewSpeaker(engine, nil)

	s.Say("hello there")
	s.Say("second line")
	s.Close()

	got := engine.all()
	if len(got) != 2 || got[0] != "hello there" || got[1] != "second line" {
		t.Errorf("spoken = %v", got)
	}
}

func TestSpeakerCloseDrainsQueue(t *testing.T) {
	engine := &slowEngine{fakeEngine: &fakeEngine{}, delay: 20 * time.Millisecond}
	s := NewSpeaker(engine, nil)

	s.Say("first")
	s.Say("second")
	s.Say("third")
	s.Close()

	if got := engine.all(); len(got) != 3 {
		t.Errorf("spoken = %v, Close must let queued utterances finish", got)
	}
}

type slowEngine struct {
	*fakeEngine
	delay time.Duration
}

func (s *slowEngine) Speak(ctx context.Context, text string) error {
	time.Sleep(s.delay)
	return s.fakeEngine.Speak(ctx, text)
}

func TestSpeakerSayAfterCloseDropped(t *testing.T) {
	engine := &fakeEngine{}
	s := NewSpeaker(engine, nil)
	s.Close()

	// Must neither panic on the closed queue nor speak.
	s.Say("too late")

	if got := engine.all(); len(got) != 0 {
		t.Errorf("spoken = %v, want none after close", got)
	}
}

func TestSpeakerStopSkipsPending(t *testing.T) {
	engine := &fakeEngine{}
	s := NewSpeaker(engine, nil)

	s.Stop()
	s.Say("never spoken")
	s.Close()

	if got := engine.all(); len(got) != 0 {
		t.Errorf("spoken = %v, want none after stop", got)
	}
}

func TestSpeakerCloseBoundedWait(t *testing.T) {
	engine := &fakeEngine{}
	s := NewSpeaker(engine, nil)

	start := time.Now()
	s.Close()
	if elapsed := time.Since(start); elapsed > closeWait {
		t.Errorf("Close took %v, must not exceed the bounded wait", elapsed)
	}
}

func TestCleanForSpeech(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bold and header", "**Question 1 of 3:** What is `defer`?", "Question 1 of 3: What is defer?"},
		{"code fence dropped", "Look:\n```go\nfmt.Println()\n```\ndone", "Look:\ndone"},
		{"link text kept", "See [the docs](https://example.com) please", "See the docs please"},
		{"bare url dropped", "Visit https://example.com now", "Visit now"},
		{"blank collapses", "a\n\n\nb", "a\nb"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanForSpeech(tc.in); got != tc.want {
				t.Errorf("CleanForSpeech(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
