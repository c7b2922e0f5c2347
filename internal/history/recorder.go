package history

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mtlprog/giftideas/internal/gift"
	"github.com/mtlprog/giftideas/internal/model"
)

const saveTimeout = 5 * time.Second

// Saver stores a generated suggestion.
type Saver interface {
	Save(ctx context.Context, in model.FormInput, result string) (int64, error)
}

// Recorder is a gift.Generator that stores every successful suggestion.
// Storage failures are logged and never reach the caller.
type Recorder struct {
	next  gift.Generator
	saver Saver
}

// NewRecorder wraps next so its results are saved.
func NewRecorder(next gift.Generator, saver Saver) (*Recorder, error) {
	if next == nil {
		return nil, errors.New("gift generator is required")
	}
	if saver == nil {
		return nil, errors.New("history saver is required")
	}
	return &Recorder{next: next, saver: saver}, nil
}

// Generate implements gift.Generator.
func (r *Recorder) Generate(ctx context.Context, in model.FormInput) (string, error) {
	result, err := r.next.Generate(ctx, in)
	if err != nil {
		return "", err
	}

	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
	defer cancel()

	if id, err := r.saver.Save(saveCtx, in, result); err != nil {
		slog.Error("failed to save suggestion", "error", err)
	} else {
		slog.Debug("suggestion saved", "id", id)
	}

	return result, nil
}
