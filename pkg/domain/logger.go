package domain

import (
	"context"

	"github.com/asecurityteam/logevent"
	"github.com/rs/xstats"
)

// Logger is the project logger interface.
type Logger = logevent.Logger

// LogFn is the recommended way to extract a logger from the context.
type LogFn func(context.Context) Logger

// LoggerFromContext is a concrete implementation of the LogFn interface.
var LoggerFromContext LogFn = logevent.FromContext

// Stat is the project metrics client interface.
type Stat = xstats.XStater

// StatFn is the recommended way to extract a metrics client from the context.
type StatFn func(context.Context) Stat

// StatFromContext is a concrete implementation of the StatFn interface.
var StatFromContext StatFn = xstats.FromContext
