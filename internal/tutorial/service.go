package tutorial

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/inkinquiry/cmdmaster/internal/catalog"
	"github.com/inkinquiry/cmdmaster/internal/llm"
)

// Result is the outcome of one generation request.
type Result struct {
	Command  string
	Tutorial catalog.Tutorial
	Err      error
}

// Service generates tutorials for commands that ship no static content.
// Generation runs asynchronously; the UI polls Consume.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending Result
	ready   bool
}

// NewService creates a tutorial generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Request starts async tutorial generation for a command. Only one
// generation is in-flight at a time — new requests replace pending ones.
func (s *Service) Request(ctx context.Context, command string) {
	go func() {
		tut, err := s.generate(ctx, command)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = Result{Command: command, Err: err}
		if err == nil {
			s.pending.Tutorial = *tut
		}
		s.ready = true
	}()
}

// Consume returns the pending result if one is ready.
// Returns (Result{}, false) if generation is still running.
// After consumption, the pending slot is cleared.
func (s *Service) Consume() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return Result{}, false
	}
	res := s.pending
	s.pending = Result{}
	s.ready = false
	return res, true
}

type tutorialOutput struct {
	CommandName string          `json:"commandName"`
	Summary     string          `json:"summary"`
	Description string          `json:"description"`
	Examples    []exampleOutput `json:"examples"`
}

type exampleOutput struct {
	Command     string `json:"command"`
	Explanation string `json:"explanation"`
}

func (s *Service) generate(ctx context.Context, command string) (*catalog.Tutorial, error) {
	ctx = llm.WithPurpose(ctx, "tutorial")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(command)},
		},
		Schema:      TutorialSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("tutorial generation for %q: %w", command, err)
	}

	var out tutorialOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse tutorial response: %w", err)
	}

	tut := &catalog.Tutorial{
		CommandName: out.CommandName,
		Summary:     out.Summary,
		Description: out.Description,
	}
	for _, ex := range out.Examples {
		tut.Examples = append(tut.Examples, catalog.Example{
			Command:     ex.Command,
			Explanation: ex.Explanation,
		})
	}
	return tut, nil
}
