// Command server runs the Interalchemy Rewilding site: the public pages,
// the registration endpoint and the operational endpoints.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/interalchemy/rewilding/modules/registration"
	"github.com/interalchemy/rewilding/modules/site"
	"github.com/interalchemy/rewilding/pkg/clientip"
	"github.com/interalchemy/rewilding/pkg/config"
	"github.com/interalchemy/rewilding/pkg/email"
	"github.com/interalchemy/rewilding/pkg/environment"
	"github.com/interalchemy/rewilding/pkg/httpserver"
	"github.com/interalchemy/rewilding/pkg/logger"
	"github.com/interalchemy/rewilding/pkg/metrics"
	"github.com/interalchemy/rewilding/pkg/requestid"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"rewilding"`
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var app appConfig
	if err := config.Load(&app); err != nil {
		return err
	}
	env := environment.Parse(app.Env)

	log := logger.New(
		logger.WithEnvironment(env, app.ServiceName),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
	slog.SetDefault(log)

	var (
		httpCfg httpserver.Config
		mailCfg email.Config
		regCfg  registration.Config
	)
	if err := errors.Join(config.Load(&httpCfg), config.Load(&mailCfg), config.Load(&regCfg)); err != nil {
		return err
	}
	regCfg.Credential = mailCfg.Credential()
	regCfg.CredentialVar = mailCfg.CredentialVar()

	reg := metrics.New()

	sender, err := newSender(mailCfg, reg)
	switch {
	case errors.Is(err, email.ErrUnknownProvider):
		return err
	case err != nil:
		log.Warn("email delivery disabled", logger.Component("email"), logger.Error(err))
	}
	if missing := regCfg.Missing(); len(missing) > 0 {
		log.Warn("registration emails will not be sent",
			logger.Component("registration"),
			logger.Missing(missing...),
		)
	}

	content, err := site.DefaultContent()
	if err != nil {
		return err
	}
	views, err := site.NewViews(content)
	if err != nil {
		return err
	}

	svc := registration.NewService(regCfg, sender,
		registration.WithLogger(log),
		registration.WithObserver(reg),
	)

	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(env),
		httpserver.AccessLog(log),
		reg.Middleware,
		middleware.Recoverer,
	)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, views.Check))
	r.Method(http.MethodGet, "/metrics", reg.Handler())

	r.Mount("/", site.Router(site.RouterOptions{
		Pages:        site.NewHandler(views, log),
		Registration: registration.NewHandler(svc, views.RegistrationViews(), nil),
	}))

	srv := httpserver.New(httpCfg, httpserver.WithLogger(log))
	log.Info("starting server",
		slog.String("addr", httpCfg.Addr),
		slog.String("email_provider", mailCfg.Provider),
	)
	return srv.Run(ctx, r)
}

func newSender(cfg email.Config, obs email.Observer) (email.Sender, error) {
	s, err := email.NewSender(cfg)
	if err != nil {
		return nil, err
	}
	return email.Instrumented(s, obs), nil
}
