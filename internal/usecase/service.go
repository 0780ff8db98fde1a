package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"svw.info/tower/internal/domain"
	"svw.info/tower/internal/hint"
	"svw.info/tower/internal/ports"
)

type Service struct {
	Counter   ports.Counter
	Generator ports.Generator
	Validator ports.Validator
	Logger    *slog.Logger
}

func NewService(c ports.Counter, g ports.Generator, v ports.Validator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{Counter: c, Generator: g, Validator: v, Logger: logger}
}

// NewLogger builds a text logger at the named level: debug|info|warn|error.
func NewLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Count(ctx context.Context, hints []hint.Hint) (int, ports.Stats, error) {
	if u.Counter == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	n, st, err := u.Counter.Count(ctx, hints)
	if err != nil {
		u.Logger.Error("count failed", "hints", len(hints), "nodes", st.Nodes, "err", err)
		return 0, st, err
	}
	u.Logger.Debug("count",
		"hints", len(hints),
		"count", n,
		"nodes", st.Nodes,
		"dur", st.Duration.Round(time.Microsecond),
	)
	return n, st, nil
}

func (u *Service) Unique(ctx context.Context, hints []hint.Hint) (bool, ports.Stats, error) {
	if u.Counter == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	ok, st, err := u.Counter.Unique(ctx, hints)
	if err != nil {
		u.Logger.Error("unique failed", "hints", len(hints), "err", err)
		return false, st, err
	}
	u.Logger.Debug("unique", "hints", len(hints), "unique", ok, "nodes", st.Nodes)
	return ok, st, nil
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*ports.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	p, st, err := u.Generator.Generate(ctx, seed, d)
	if err != nil {
		u.Logger.Error("generate failed", "seed", seed, "difficulty", d, "err", err)
		return nil, st, err
	}
	u.Logger.Info("generated",
		"seed", seed,
		"difficulty", d,
		"hints", len(p.Hints),
		"nodes", st.Nodes,
		"dur", st.Duration.Round(time.Millisecond),
	)
	return p, st, nil
}

func (u *Service) Validate(ctx context.Context, t domain.Tower, hints []hint.Hint) (bool, []hint.Hint, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	ok, violated, err := u.Validator.Validate(ctx, t, hints)
	if err != nil {
		return false, nil, err
	}
	if !ok {
		u.Logger.Debug("tower rejected", "violated", len(violated))
	}
	return ok, violated, nil
}
