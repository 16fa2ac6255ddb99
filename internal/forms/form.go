package forms

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/f2fin/directory-dashboard/internal/repositories"
)

var (
	ErrInvalid    = errors.New("draft is invalid")
	ErrInProgress = errors.New("submission already in progress")
)

// Builder maps a draft onto the record posted to the backend
type Builder[T any] func(d *Draft) T

// Creator posts a new record; repositories.Repository satisfies it
type Creator[T any] interface {
	Create(ctx context.Context, record T) (T, error)
}

type Option[T any] func(*Form[T])

func WithNormalize[T any](normalize func(T) T) Option[T] {
	return func(f *Form[T]) { f.normalize = normalize }
}

func WithValidate[T any](validate func(T) error) Option[T] {
	return func(f *Form[T]) { f.validate = validate }
}

// OnSuccess registers the callback fired once per successful submission.
func OnSuccess[T any](fn func(created T)) Option[T] {
	return func(f *Form[T]) { f.onSuccess = fn }
}

// Form owns a draft and submits it.
type Form[T any] struct {
	draft     *Draft
	build     Builder[T]
	creator   Creator[T]
	normalize func(T) T
	validate  func(T) error
	onSuccess func(T)

	mu         sync.Mutex
	errMsg     string
	notice     string
	submitting bool
}

func New[T any](schema Schema, build Builder[T], creator Creator[T], opts ...Option[T]) *Form[T] {
	f := &Form[T]{
		draft:   NewDraft(schema),
		build:   build,
		creator: creator,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form[T]) Draft() *Draft {
	return f.draft
}

func (f *Form[T]) Schema() Schema {
	return f.draft.Schema()
}

// Error is the inline message of the last failed submission.
func (f *Form[T]) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Notice is the success message of the last submission, until dismissed.
func (f *Form[T]) Notice() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notice
}

func (f *Form[T]) DismissNotice() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notice = ""
}

// Reset discards the draft and both messages. It does nothing while a
// submission is in flight.
func (f *Form[T]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return
	}
	f.draft.Reset()
	f.errMsg = ""
	f.notice = ""
}

func (f *Form[T]) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Payload builds and normalizes the record the draft would submit.
func (f *Form[T]) Payload() T {
	payload := f.build(f.draft)
	if f.normalize != nil {
		payload = f.normalize(payload)
	}
	return payload
}

// Submit validates the draft locally and posts it. An invalid draft never
// reaches the backend. The draft is reset only when the backend accepts it.
func (f *Form[T]) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrInProgress
	}
	f.submitting = true
	f.errMsg = ""
	f.notice = ""
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	payload := f.Payload()
	if f.validate != nil {
		if err := f.validate(payload); err != nil {
			f.setError(err.Error())
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}

	created, err := f.creator.Create(ctx, payload)
	if err != nil {
		f.setError(repositories.ErrorMessage(err))
		return err
	}

	f.draft.Reset()
	f.mu.Lock()
	f.notice = f.draft.Schema().SuccessNotice
	f.mu.Unlock()

	if f.onSuccess != nil {
		f.onSuccess(created)
	}
	return nil
}

func (f *Form[T]) setError(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errMsg = msg
}
