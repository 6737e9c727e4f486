// Package voice accepts browser speech-recognition events and forwards one
// final transcript per listening session into the command path.
package voice

import (
	"context"
	"strings"
	"sync"

	"go-baki-pos/internal/model"
)

type EventKind string

const (
	EventStart       EventKind = "start"
	EventResult      EventKind = "result"
	EventError       EventKind = "error"
	EventEnd         EventKind = "end"
	EventStop        EventKind = "stop"
	EventUnsupported EventKind = "unsupported"
)

// Event is what the browser sends for each recognition callback.
type Event struct {
	Event      EventKind `json:"event"`
	Transcript string    `json:"transcript,omitempty"`
	Final      bool      `json:"final"`
}

type NoticeKind string

const (
	NoticeListening   NoticeKind = "listening"
	NoticeProcessed   NoticeKind = "processed"
	NoticeEmpty       NoticeKind = "empty"
	NoticeRecognition NoticeKind = "recognition_error"
	NoticeUnsupported NoticeKind = "unsupported"
	NoticeCancelled   NoticeKind = "cancelled"
	NoticeEnded       NoticeKind = "ended"
	NoticeIgnored     NoticeKind = "ignored"
	NoticeFailed      NoticeKind = "failed"
)

// Notice is sent back to the browser after every event.
type Notice struct {
	Kind        NoticeKind         `json:"kind"`
	Message     string             `json:"message"`
	MessageBn   string             `json:"message_bn,omitempty"`
	Transaction *model.Transaction `json:"transaction,omitempty"`
}

// Processor is the command entry point transcripts are submitted to.
type Processor interface {
	ProcessCommand(ctx context.Context, utterance string) (*model.Transaction, error)
}

// Session tracks one browser's recognition lifecycle. Handle calls are
// serialized.
type Session struct {
	proc Processor

	mu        sync.Mutex
	listening bool
}

func NewSession(proc Processor) *Session {
	return &Session{proc: proc}
}

// Listening reports whether a capture is in progress.
func (s *Session) Listening() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listening
}

func (s *Session) Handle(ctx context.Context, ev Event) Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Event {
	case EventStart:
		s.listening = true
		return Notice{Kind: NoticeListening, Message: "Listening... Speak now", MessageBn: "শুনছি... এখন বলুন"}

	case EventResult:
		if !s.listening {
			return Notice{Kind: NoticeIgnored, Message: "No capture in progress"}
		}
		if !ev.Final {
			// interim results never reach the command path
			return Notice{Kind: NoticeIgnored, Message: "Interim result dropped"}
		}
		s.listening = false
		return s.submit(ctx, ev.Transcript)

	case EventError:
		s.listening = false
		return Notice{Kind: NoticeRecognition, Message: "Error recognizing speech. Please try again or type your command."}

	case EventStop:
		if s.listening {
			s.listening = false
			return Notice{Kind: NoticeCancelled, Message: "Capture stopped, nothing recorded"}
		}
		return Notice{Kind: NoticeIgnored, Message: "No capture in progress"}

	case EventEnd:
		s.listening = false
		return Notice{Kind: NoticeEnded, Message: "Capture ended"}

	case EventUnsupported:
		s.listening = false
		return Notice{Kind: NoticeUnsupported, Message: "Speech recognition is not supported in this browser. Please type your command instead."}

	default:
		return Notice{Kind: NoticeIgnored, Message: "Unknown event " + string(ev.Event)}
	}
}

func (s *Session) submit(ctx context.Context, transcript string) Notice {
	if strings.TrimSpace(transcript) == "" {
		return Notice{Kind: NoticeEmpty, Message: "Please enter or speak a command"}
	}
	txn, err := s.proc.ProcessCommand(ctx, transcript)
	if err != nil {
		return Notice{Kind: NoticeFailed, Message: err.Error()}
	}
	return Notice{
		Kind:        NoticeProcessed,
		Message:     "Command processed successfully",
		MessageBn:   "কমান্ড সফলভাবে প্রসেস করা হয়েছে",
		Transaction: txn,
	}
}
