package shell

import (
	"context"
	"errors"
	"os"

	"github.com/sandevgo/tuskshell/pkg/log"
	"github.com/sandevgo/tuskshell/pkg/statestore"
)

// Store persists the serialized session state between invocations.
// Load returns statestore.ErrNotFound when nothing has been saved.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}

type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// App runs a single command taken from process arguments and keeps the
// state in a Store between runs. A quit command clears the store.
type App[T any] struct {
	Commands    *Registry[T]
	State       T
	Handler     *Handler[T]
	Description string

	store Store
	codec Codec
}

type AppOption func(*appOptions)

type appOptions struct {
	store    Store
	storeSet bool
	codec    Codec
	async    bool
	dispatch []Option
}

// WithStore replaces the default cache file. A nil store disables persistence.
func WithStore(s Store) AppOption {
	return func(o *appOptions) {
		o.store = s
		o.storeSet = true
	}
}

// WithCodec sets the blob format. Defaults to JSON.
func WithCodec(c Codec) AppOption {
	return func(o *appOptions) { o.codec = c }
}

// WithAsync lets the app await async commands.
func WithAsync() AppOption {
	return func(o *appOptions) { o.async = true }
}

// WithDispatchOptions passes options through to the app's Handler.
func WithDispatchOptions(opts ...Option) AppOption {
	return func(o *appOptions) { o.dispatch = append(o.dispatch, opts...) }
}

// NewApp creates an app for projectName and loads any saved state over
// the given default. A saved blob that cannot be decoded is an error.
func NewApp[T any](ctx context.Context, state T, projectName string, opts ...AppOption) (*App[T], error) {
	return newApp(ctx, NewRegistry[T](), state, "", projectName, opts...)
}

// AppFromShell turns a configured shell into an app with the same
// commands, state and description. Async support follows the shell.
func AppFromShell[T any](ctx context.Context, s *Shell[T], projectName string, opts ...AppOption) (*App[T], error) {
	if s.Handler != nil && s.Handler.Personality().AllowAsync {
		opts = append([]AppOption{WithAsync()}, opts...)
	}
	return newApp(ctx, s.Commands, s.State, s.Description, projectName, opts...)
}

func newApp[T any](ctx context.Context, commands *Registry[T], state T, description, projectName string, opts ...AppOption) (*App[T], error) {
	o := appOptions{codec: statestore.JSONCodec{}}
	for _, opt := range opts {
		opt(&o)
	}

	if !o.storeSet {
		o.store = defaultStore(ctx, projectName)
	}

	personality := CommandLine()
	if o.async {
		personality = CommandLineAsync()
	}
	dispatch := append([]Option{WithProjectName(projectName)}, o.dispatch...)

	a := &App[T]{
		Commands:    commands,
		State:       state,
		Handler:     NewHandler[T](personality, dispatch...),
		Description: description,
		store:       o.store,
		codec:       o.codec,
	}
	if err := a.Load(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

func defaultStore(ctx context.Context, projectName string) Store {
	if projectName == "" && len(os.Args) > 0 {
		projectName = os.Args[0]
	}
	path, err := statestore.DefaultCachePath(projectName)
	if err != nil {
		log.FromCtx(ctx).Debug().Err(err).Msg("state persistence disabled")
		return nil
	}
	return statestore.NewFileStore(path)
}

func (a *App[T]) Register(name string, cmd Command[T]) *App[T] {
	a.Commands.Register(name, cmd)
	return a
}

// Load replaces State with the saved blob, if there is one.
func (a *App[T]) Load(ctx context.Context) error {
	if a.store == nil {
		return nil
	}

	data, err := a.store.Load(ctx)
	if errors.Is(err, statestore.ErrNotFound) {
		log.FromCtx(ctx).Debug().Msg("no saved state, using default")
		return nil
	}
	if err != nil {
		return &StateStoreError{Op: "load", Err: err}
	}

	var state T
	if err := a.codec.Unmarshal(data, &state); err != nil {
		return &StateStoreError{Op: "load", Err: err}
	}
	a.State = state

	log.FromCtx(ctx).Debug().Int("bytes", len(data)).Msg("loaded saved state")
	return nil
}

// Run dispatches argv, whose first element is the program name. It
// returns true when the command asked to quit, in which case the saved
// state is cleared instead of written.
func (a *App[T]) Run(ctx context.Context, argv []string) (bool, error) {
	quit := a.Handler.Handle(ctx, argv, a.Commands, &a.State, a.Description)
	if a.store == nil {
		return quit, nil
	}

	logger := log.FromCtx(ctx)
	if quit {
		if err := a.store.Clear(ctx); err != nil {
			return true, &StateStoreError{Op: "clear", Err: err}
		}
		logger.Debug().Msg("cleared saved state")
		return true, nil
	}

	data, err := a.codec.Marshal(a.State)
	if err != nil {
		return false, &StateStoreError{Op: "save", Err: err}
	}
	if err := a.store.Save(ctx, data); err != nil {
		return false, &StateStoreError{Op: "save", Err: err}
	}
	logger.Debug().Int("bytes", len(data)).Msg("saved state")
	return false, nil
}

// RunArgs runs the app with os.Args.
func (a *App[T]) RunArgs(ctx context.Context) (bool, error) {
	return a.Run(ctx, os.Args)
}
