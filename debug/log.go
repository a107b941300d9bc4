package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

var (
	mu     sync.Mutex
	logger = NewLogger(os.Stderr, "dx")
)

// NewLogger returns a console logger tagged with app.
func NewLogger(w io.Writer, app string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", app).Logger()
}

// SetLogger replaces the logger used for diagnostics.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Logger returns the diagnostics logger.
func Logger() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	l := logger
	return &l
}

// Logf formats a debug message. Document values are rendered compactly.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Value:
			args[i] = x.GoString()
		case *ir.Document:
			if x != nil {
				args[i] = x.Root.GoString()
			}
		}
	}
	l := Logger()
	l.Debug().Msg(fmt.Sprintf(msg, args...))
}
