package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"

	"github.com/amaumene/gomoviesearch/internal/constants"
	"github.com/amaumene/gomoviesearch/internal/handlers"
	"github.com/amaumene/gomoviesearch/internal/middleware"
	"github.com/amaumene/gomoviesearch/internal/models"
	"github.com/amaumene/gomoviesearch/internal/search"
)

// ServeCommand creates the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the web server with the search and details screens",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "port",
				Usage: "Port to listen on (defaults to PORT or " + constants.DefaultPort + ")",
			},
			&cli.BoolFlag{
				Name:  "ephemeral",
				Usage: "Keep the last search in memory only",
				Value: false,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			a, err := newApp(c, appOptions{ephemeral: c.Bool("ephemeral"), logOutput: os.Stdout})
			if err != nil {
				return err
			}
			defer a.Close()

			port := c.String("port")
			if port == "" {
				port = a.cfg.Port
			}
			return serve(ctx, a, port)
		},
	}
}

func newRouter(a *app) *gin.Engine {
	if a.cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(a.log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.Gzip())

	handlers.New(a.search, a.details, a.services.TMDB.ImageBaseURL(), a.log).RegisterRoutes(r)
	return r
}

func serve(ctx context.Context, a *app, port string) error {
	restored := a.search.Restore()
	if restored.Query != "" {
		a.log.Infof("[App] restored last search '%s'", restored.Query)
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           newRouter(a),
		ReadHeaderTimeout: constants.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Infof("[App] starting HTTP server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-sigCtx.Done():
	}

	a.log.Infof("[App] shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// SearchCommand creates the search command
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search movies by title and remember the result",
		ArgsUsage: "<query...>",
		Action: func(ctx context.Context, c *cli.Command) error {
			query := strings.Join(c.Args().Slice(), " ")
			return withTerminalApp(c, func(a *app) error {
				a.search.SetQuery(query)
				return printSearch(a, a.search.Search(ctx))
			})
		},
	}
}

// PageCommand creates the page command
func PageCommand() *cli.Command {
	return &cli.Command{
		Name:      "page",
		Usage:     "Show another page of the last search",
		ArgsUsage: "<n>",
		Action: func(ctx context.Context, c *cli.Command) error {
			n, err := strconv.Atoi(c.Args().First())
			if err != nil {
				return fmt.Errorf("page must be a number, got %q", c.Args().First())
			}
			return withTerminalApp(c, func(a *app) error {
				a.search.Restore()
				return printPageChange(a, n, func() (search.View, bool) {
					return a.search.GoToPage(ctx, n)
				})
			})
		},
	}
}

// NextCommand creates the next command
func NextCommand() *cli.Command {
	return &cli.Command{
		Name:  "next",
		Usage: "Show the next page of the last search",
		Action: func(ctx context.Context, c *cli.Command) error {
			return withTerminalApp(c, func(a *app) error {
				current := a.search.Restore()
				return printPageChange(a, current.CurrentPage+1, func() (search.View, bool) {
					return a.search.Next(ctx)
				})
			})
		},
	}
}

// PrevCommand creates the prev command
func PrevCommand() *cli.Command {
	return &cli.Command{
		Name:  "prev",
		Usage: "Show the previous page of the last search",
		Action: func(ctx context.Context, c *cli.Command) error {
			return withTerminalApp(c, func(a *app) error {
				current := a.search.Restore()
				return printPageChange(a, current.CurrentPage-1, func() (search.View, bool) {
					return a.search.Prev(ctx)
				})
			})
		},
	}
}

// ShowCommand creates the show command
func ShowCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Show the last search without contacting TMDB",
		Action: func(ctx context.Context, c *cli.Command) error {
			return withTerminalApp(c, func(a *app) error {
				return printSearch(a, a.search.Restore())
			})
		},
	}
}

// DetailsCommand creates the details command
func DetailsCommand() *cli.Command {
	return &cli.Command{
		Name:      "details",
		Usage:     "Show a movie's details and trailer",
		ArgsUsage: "<id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			id := c.Args().First()
			if id == "" {
				return fmt.Errorf("a movie id is required")
			}
			return withTerminalApp(c, func(a *app) error {
				view := a.details.Load(ctx, id)
				fmt.Print(renderDetails(view))
				return exitOnError(view.State)
			})
		},
	}
}

// withTerminalApp builds the app for a one-shot terminal command. Logs go
// to stderr so stdout carries only the rendered output.
func withTerminalApp(c *cli.Command, fn func(a *app) error) error {
	a, err := newApp(c, appOptions{quiet: true, logOutput: os.Stderr})
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func printSearch(a *app, view search.View) error {
	fmt.Print(renderSearch(view, a.services.TMDB.ImageBaseURL()))
	return exitOnError(view.State)
}

func printPageChange(a *app, target int, move func() (search.View, bool)) error {
	view, ok := move()
	if !ok {
		fmt.Print(renderSearch(view, a.services.TMDB.ImageBaseURL()))
		return cli.Exit(fmt.Sprintf("page %d is outside 1..%d", target, view.TotalPages), 1)
	}
	return printSearch(a, view)
}

func exitOnError(state models.UIState) error {
	if state.Status == models.StatusError {
		return cli.Exit("", 1)
	}
	return nil
}
