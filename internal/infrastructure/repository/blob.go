package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	domainRepo "github.com/sangkips/snacksbunk-pos/internal/domain/repository"
	"github.com/sangkips/snacksbunk-pos/pkg/apperror"
	"github.com/sangkips/snacksbunk-pos/pkg/diagnostics"
)

// jsonBlob reads and writes JSON documents on a BlobStore. Driver failures
// become storage errors. Unparsable blobs are reported; reads treat them as
// absent and writes refuse to overwrite them.
type jsonBlob struct {
	store    domainRepo.BlobStore
	reporter diagnostics.Reporter
}

func newJSONBlob(store domainRepo.BlobStore, reporter diagnostics.Reporter) jsonBlob {
	if reporter == nil {
		reporter = diagnostics.NewLogReporter()
	}
	return jsonBlob{store: store, reporter: reporter}
}

// errCorruptBlob marks a stored blob that could not be decoded
var errCorruptBlob = errors.New("corrupt blob")

// readBlob decodes the blob under key on top of fallback(). An absent blob
// yields fallback(); a corrupt one is reported and returns errCorruptBlob.
func readBlob[T any](ctx context.Context, b jsonBlob, key string, fallback func() T) (T, error) {
	raw, ok, err := b.store.Get(ctx, key)
	if err != nil {
		var zero T
		return zero, apperror.NewStorageError(fmt.Errorf("read %s: %w", key, err))
	}
	if !ok || raw == "" {
		return fallback(), nil
	}

	v := fallback()
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		err = fmt.Errorf("%w %s: %v", errCorruptBlob, key, err)
		b.reporter.Report("storage", err)
		var zero T
		return zero, err
	}
	return v, nil
}

// loadBlob is readBlob for read paths: a corrupt blob yields fallback().
func loadBlob[T any](ctx context.Context, b jsonBlob, key string, fallback func() T) (T, error) {
	v, err := readBlob(ctx, b, key, fallback)
	if errors.Is(err, errCorruptBlob) {
		return fallback(), nil
	}
	return v, err
}

// loadForWrite is readBlob for write paths. A corrupt blob fails the
// operation so the stored value is never replaced.
func loadForWrite[T any](ctx context.Context, b jsonBlob, key, operation string, fallback func() T) (T, error) {
	v, err := readBlob(ctx, b, key, fallback)
	if errors.Is(err, errCorruptBlob) {
		return v, apperror.NewOperationError(operation, err)
	}
	return v, err
}

func (b jsonBlob) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return apperror.NewOperationError("encode "+key, err)
	}
	if err := b.store.Set(ctx, key, string(data)); err != nil {
		return apperror.NewStorageError(fmt.Errorf("write %s: %w", key, err))
	}
	return nil
}
