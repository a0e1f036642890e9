package motion

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Warning kinds attached to usage diagnostics.
const (
	WarnRelativeWithoutContext = "relative-without-context"
	WarnSpringDuration         = "spring-duration"
	WarnOutsideScope           = "outside-scope"
)

// newDefaultLogger writes human-readable diagnostics to stderr. Debug mode
// lowers the level so registrations are visible.
func newDefaultLogger(debug bool) (*zap.Logger, zap.AtomicLevel) {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	level := zap.NewAtomicLevelAt(levelFor(debug))
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level)
	return zap.New(core).Named("motion"), level
}

func levelFor(debug bool) zapcore.Level {
	if debug {
		return zapcore.DebugLevel
	}
	return zapcore.WarnLevel
}

func (a *Animator) warn(kind, msg string, fields ...zap.Field) {
	a.cfg.Metrics.incWarning(kind)
	a.log.Warn(msg, append(fields, zap.String("kind", kind))...)
}

func (a *Animator) warnRelativeWithoutContext() {
	a.warn(WarnRelativeWithoutContext,
		"relative time units used in an animation with no parent context; treating values as absolute")
}

func (a *Animator) warnSpringDuration() {
	a.warn(WarnSpringDuration,
		"explicit duration given for a spring animation; springs compute their own duration, so it is ignored")
}

func (a *Animator) warnOutsideScope(path string) {
	a.warn(WarnOutsideScope, "animation declared outside of any Animate scope; ignored",
		zap.String("path", path))
}

// debugRegistration logs a registered group when debug mode is on.
func (a *Animator) debugRegistration(ctx *Context, g *Group) {
	if !a.cfg.Debug {
		return
	}
	paths := make([]string, len(g.Animations))
	for i := range g.Animations {
		paths[i] = g.Animations[i].KeyPath
	}
	a.log.Debug("register animation",
		zap.String("key", g.Key),
		zap.Strings("paths", paths),
		zap.Bool("additive", g.IsAdditive()),
		zap.Float64("duration", g.Duration),
		zap.Float64("repeatCount", g.RepeatCount),
		zap.Bool("hasBeginTime", g.HasBeginTime),
		zap.Stringer("fill", g.FillMode),
		zap.Stringer("context", ctx.id),
		zap.Stringer("group", g.ID),
	)
}
