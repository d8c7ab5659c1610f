// Package handler turns typed functions into http.HandlerFuncs.
//
// A HandlerFunc receives a Context and a request value already decoded by
// the configured binders, and returns a Response:
//
//	h := handler.Wrap(func(ctx handler.Context, in Input) handler.Response {
//		if err := svc.Do(ctx, in); err != nil {
//			return handler.Fail(err)
//		}
//		return handler.OK()
//	},
//		handler.WithBinders[handler.Context, Input](binder.JSON(0), binder.Form(0)),
//		handler.WithErrorHandler[handler.Context, Input](handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})),
//	)
//
// JSON responses share one envelope: {"ok":true} on success, and
// {"ok":false,"error":"...","issues":[{"path":["email"],"message":"..."}]}
// on failure. Templ responses render full pages for ordinary requests and
// element patches over server-sent events for Datastar requests.
//
// Errors returned by binders, or handed over with Fail, go to the
// ErrorHandler. NewErrorHandler maps binder and validator errors to 400,
// HTTPError to its own code and anything else to a 500 that reveals nothing
// about the cause.
package handler
