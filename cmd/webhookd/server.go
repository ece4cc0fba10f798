package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/garrettladley/cryptopay/internal/config"
	"github.com/garrettladley/cryptopay/internal/version"
	"github.com/garrettladley/cryptopay/internal/xerrors"
	"github.com/garrettladley/cryptopay/internal/xhttp"
	"github.com/garrettladley/cryptopay/internal/xhttp/middleware"
	"github.com/garrettladley/cryptopay/internal/xslog"
	"github.com/garrettladley/cryptopay/pkg/webhook"
	"github.com/garrettladley/cryptopay/pkg/webhook/adapter"
	"github.com/gin-gonic/gin"
	go_json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/labstack/echo/v4"
	"github.com/valyala/fasthttp"
)

const healthPath = "/health"

type server interface {
	ListenAndServe(addr string) error
	Shutdown(ctx context.Context) error
}

type health struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Framework webhook.Framework `json:"framework"`
}

func newHealth(fw webhook.Framework) health {
	return health{Status: "ok", Version: version.Get(), Framework: fw}
}

func newServer(cfg config.Config, d *webhook.Dispatcher, logger *slog.Logger) (server, error) {
	fw := cfg.Server.Framework
	bound, err := webhook.Bind(d, adapter.Default(), fw)
	if err != nil {
		return nil, err
	}

	path := cfg.Server.WebhookPath
	switch fw {
	case webhook.FrameworkHTTP:
		mux := http.NewServeMux()
		mux.Handle("POST "+path, adapter.HTTPFunc(bound))
		mux.HandleFunc("GET "+healthPath, func(w http.ResponseWriter, _ *http.Request) {
			xhttp.WriteOK(w, newHealth(fw))
		})
		return newHTTPServer(mux, fw, logger), nil

	case webhook.FrameworkGin:
		if cfg.Env.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}
		engine := gin.New()
		engine.POST(path, adapter.Gin(d))
		engine.GET(healthPath, func(c *gin.Context) {
			c.JSON(http.StatusOK, newHealth(fw))
		})
		return newHTTPServer(engine, fw, logger), nil

	case webhook.FrameworkEcho:
		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		e.Debug = cfg.Env.IsDevelopment()
		e.POST(path, adapter.Echo(d))
		e.GET(healthPath, func(c echo.Context) error {
			return c.JSON(http.StatusOK, newHealth(fw))
		})
		return newHTTPServer(e, fw, logger), nil

	case webhook.FrameworkFiber:
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           30 * time.Second,
			IdleTimeout:           60 * time.Second,
		})
		app.Use(fiberrecover.New())
		app.Use(func(c *fiber.Ctx) error {
			c.SetUserContext(xslog.WithLogger(c.UserContext(), logger.With(xslog.Framework(fw.String()))))
			return c.Next()
		})
		app.Post(path, adapter.Fiber(d))
		app.Get(healthPath, func(c *fiber.Ctx) error {
			return c.JSON(newHealth(fw))
		})
		return &fiberServer{app: app}, nil

	case webhook.FrameworkFastHTTP:
		return &fastHTTPServer{srv: &fasthttp.Server{
			Handler:     fastHTTPRouter(path, adapter.FastHTTP(d), fw),
			Name:        version.UserAgent(),
			ReadTimeout: 30 * time.Second,
			IdleTimeout: 60 * time.Second,
			Logger:      slog.NewLogLogger(logger.Handler(), slog.LevelError),
		}}, nil

	default:
		return nil, fmt.Errorf("%w: %q", webhook.ErrUnknownFramework, fw)
	}
}

// httpServer serves any http.Handler framework behind the shared middleware.
type httpServer struct {
	srv *http.Server
}

func newHTTPServer(h http.Handler, fw webhook.Framework, logger *slog.Logger) *httpServer {
	wrapped := middleware.Chain(h,
		middleware.RequestID(),
		middleware.Logger(logger, xslog.Framework(fw.String())),
		middleware.Logging(healthPath),
		middleware.Recovery,
	)
	return &httpServer{srv: &http.Server{
		Handler:           wrapped,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}}
}

func (s *httpServer) ListenAndServe(addr string) error {
	s.srv.Addr = addr
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *httpServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

type fiberServer struct {
	app *fiber.App
}

func (s *fiberServer) ListenAndServe(addr string) error {
	return s.app.Listen(addr)
}

func (s *fiberServer) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

type fastHTTPServer struct {
	srv *fasthttp.Server
}

func (s *fastHTTPServer) ListenAndServe(addr string) error {
	return s.srv.ListenAndServe(addr)
}

func (s *fastHTTPServer) Shutdown(ctx context.Context) error {
	return s.srv.ShutdownWithContext(ctx)
}

func fastHTTPRouter(path string, hook fasthttp.RequestHandler, fw webhook.Framework) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		switch {
		case string(ctx.Path()) == path && ctx.IsPost():
			hook(ctx)
		case string(ctx.Path()) == healthPath && ctx.IsGet():
			b, err := go_json.Marshal(newHealth(fw))
			if err != nil {
				ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
				return
			}
			ctx.SetContentType(xhttp.ApplicationJSON)
			ctx.SetBody(b)
		default:
			notFound := xerrors.NotFound()
			ctx.SetStatusCode(notFound.StatusCode)
			ctx.SetContentType(xhttp.ApplicationJSON)
			ctx.SetBody(notFound.Body())
		}
	}
}
