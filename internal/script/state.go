package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/dshills/fixbuf/internal/fixedstr"
)

// Defaults for a State.
const (
	DefaultTimeout     = 5 * time.Second
	DefaultMaxCapacity = 1 << 20
)

// ErrStateClosed is returned when running code on a closed State.
var ErrStateClosed = errors.New("lua state is closed")

// State is a sandboxed Lua interpreter with the fixbuf module loaded.
type State struct {
	L *lua.LState

	logger      *zap.Logger
	out         io.Writer
	timeout     time.Duration
	maxCapacity int
	strOpts     []fixedstr.Option
	closed      bool
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the logger for script diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithOutput redirects print. The default is stdout.
func WithOutput(w io.Writer) Option {
	return func(s *State) {
		if w != nil {
			s.out = w
		}
	}
}

// WithTimeout bounds each DoString or DoFile call. Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(s *State) {
		s.timeout = d
	}
}

// WithMaxCapacity bounds the capacity a script may request from fixbuf.new.
func WithMaxCapacity(n int) Option {
	return func(s *State) {
		s.maxCapacity = n
	}
}

// WithStringOptions sets the options for every string a script creates.
func WithStringOptions(opts ...fixedstr.Option) Option {
	return func(s *State) {
		s.strOpts = append(s.strOpts, opts...)
	}
}

// NewState creates a sandboxed Lua state.
func NewState(opts ...Option) *State {
	s := &State{
		logger:      zap.NewNop(),
		out:         os.Stdout,
		timeout:     DefaultTimeout,
		maxCapacity: DefaultMaxCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("script")

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	s.L = L
	openSafeLibraries(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetGlobal("print", L.NewFunction(s.print))

	mod := newModule(s)
	L.PreloadModule(ModuleName, mod.loader)
	L.SetGlobal(ModuleName, mod.table(L))
	return s
}

func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenPackage(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// require only resolves preloaded modules.
	if pkg, ok := L.GetGlobal("package").(*lua.LTable); ok {
		L.SetField(pkg, "path", lua.LString(""))
		L.SetField(pkg, "cpath", lua.LString(""))
	}
}

// print writes its arguments separated by tabs, like Lua's own print.
func (s *State) print(L *lua.LState) int {
	top := L.GetTop()
	parts := make([]string, top)
	for i := 1; i <= top; i++ {
		parts[i-1] = L.ToStringMeta(L.Get(i)).String()
	}
	fmt.Fprintln(s.out, strings.Join(parts, "\t"))
	return 0
}

// DoString runs code.
func (s *State) DoString(ctx context.Context, code string) error {
	return s.run(ctx, "<string>", func() error { return s.L.DoString(code) })
}

// DoFile runs the script at path.
func (s *State) DoFile(ctx context.Context, path string) error {
	return s.run(ctx, path, func() error { return s.L.DoFile(path) })
}

func (s *State) run(ctx context.Context, source string, fn func() error) (err error) {
	if s.closed {
		return ErrStateClosed
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
		if err != nil {
			s.logger.Debug("script failed", zap.String("source", source), zap.Error(err))
		}
	}()
	return fn()
}

// Close releases the interpreter. Close is idempotent.
func (s *State) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}
