package slashfill

import (
	"context"
	"fmt"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// Handler
///////////////////////////////////////////////////////////////////////////////

// Handler answers autocomplete interactions for registered commands.
//
// Registration happens up front, while the command tree is being built;
// serving is read-only, so any number of Respond calls may run concurrently.
type Handler struct {
	mutex    sync.RWMutex
	commands map[string]map[string]*Param // command path -> param name -> param
	logger   *zap.Logger
}

type HandlerOption func(*Handler)

// WithLogger sets the logger used for dropped choices and truncation.
// The default is a no-op logger.
func WithLogger(logger *zap.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

func NewHandler(opts ...HandlerOption) *Handler {
	h := &Handler{
		commands: make(map[string]map[string]*Param),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register binds parameters to a command. command is the full command path,
// space separated for subcommands (e.g. "config set").
func (h *Handler) Register(command string, params ...*Param) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.commands[command] == nil {
		h.commands[command] = make(map[string]*Param)
	}
	for _, p := range params {
		if _, exists := h.commands[command][p.name]; exists {
			return fmt.Errorf("%w: %s.%s", ErrParamRegistered, command, p.name)
		}
		h.commands[command][p.name] = p
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// Response Pipeline
///////////////////////////////////////////////////////////////////////////////

type choicePayload struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`
}

type autocompleteData struct {
	Choices []choicePayload `json:"choices"`
}

type autocompleteResponse struct {
	Type int              `json:"type"`
	Data autocompleteData `json:"data"`
}

// Respond answers one autocomplete interaction: it locates the focused
// parameter, extracts the partial input with the parameter's strategy, runs
// the autocomplete callback, and serializes the resulting choices into a
// response body.
//
// An error invalidates this single interaction only; the handler carries no
// state between calls.
func (h *Handler) Respond(ctx context.Context, payload []byte) ([]byte, error) {
	it, err := ParseInteraction(payload)
	if err != nil {
		return nil, err
	}

	name, value, ok := it.Focused()
	if !ok {
		return nil, ErrNoFocusedOption
	}

	command := it.Command()
	h.mutex.RLock()
	params, exists := h.commands[command]
	param := params[name]
	h.mutex.RUnlock()
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
	if param == nil {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownParam, command, name)
	}

	partial, err := param.strat.ExtractPartial(value)
	if err != nil {
		return nil, fmt.Errorf("failed to extract partial for %s.%s: %w", command, name, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	choices, err := param.complete(ctx, partial)
	if err != nil {
		return nil, fmt.Errorf("autocomplete callback failed for %s.%s: %w", command, name, err)
	}

	if len(choices) > MaxChoices {
		h.logger.Warn("truncating autocomplete choices",
			zap.String("command", command),
			zap.String("param", name),
			zap.Int("count", len(choices)))
		choices = choices[:MaxChoices]
	}

	serialized := lo.FilterMap(choices, func(c Choice, _ int) (choicePayload, bool) {
		v, err := param.strat.IntoValue(c.Value)
		if err != nil {
			h.logger.Warn("dropping autocomplete choice",
				zap.String("command", command),
				zap.String("param", name),
				zap.String("choice", c.Name),
				zap.Error(err))
			return choicePayload{}, false
		}
		return choicePayload{Name: c.Name, Value: v}, true
	})
	if serialized == nil {
		serialized = []choicePayload{}
	}

	body, err := sonic.Marshal(autocompleteResponse{
		Type: autocompleteResultType,
		Data: autocompleteData{Choices: serialized},
	})
	if err != nil {
		return nil, fmt.Errorf("error marshaling autocomplete response: %w", err)
	}
	return body, nil
}
