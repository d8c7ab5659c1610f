package handler

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/interalchemy/rewilding/pkg/logger"
)

// Recover turns a panic inside the handler into ErrPanic, which the error
// handler renders as a generic server error.
func Recover[C Context, R any](log *slog.Logger) Decorator[C, R] {
	return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
		return func(ctx C, req R) (resp Response) {
			defer func() {
				if v := recover(); v != nil {
					log.ErrorContext(ctx, "handler panic",
						logger.Component("handler"),
						slog.Any("panic", v),
						slog.String("stack", string(debug.Stack())),
					)
					resp = Fail(fmt.Errorf("%w: %v", ErrPanic, v))
				}
			}()
			return next(ctx, req)
		}
	}
}
