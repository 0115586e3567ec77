package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/gym-console/app/client"
	"github.com/vibast-solutions/gym-console/app/navigation"
	"github.com/vibast-solutions/gym-console/app/service"
	"github.com/vibast-solutions/gym-console/app/view"
	"github.com/vibast-solutions/gym-console/config"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type renderer interface {
	Render(w io.Writer) error
}

// console bundles the API clients and services shared by every command.
type console struct {
	cfg       *config.Config
	api       *client.API
	contracts *client.ContractClient
	plans     *client.PlanClient
	students  *client.StudentClient
	checkins  *client.CheckinClient
	dashboard *service.DashboardService
	overview  *service.StudentService
	router    *navigation.Router
	detach    func()

	mu    sync.Mutex
	route string
}

func mustCreateConsole() *console {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}
	return newConsole(cfg, os.Stderr)
}

// newConsole wires the clients against cfg. The loading spinner is drawn on
// spinnerOut only when it is a terminal.
func newConsole(cfg *config.Config, spinnerOut *os.File) *console {
	api := client.NewAPI(cfg.API.BaseURL, client.WithToken(cfg.API.Token), client.WithTimeout(cfg.API.Timeout))
	contracts := client.NewContractClient(api)
	plans := client.NewPlanClient(api)
	students := client.NewStudentClient(api)
	checkins := client.NewCheckinClient(api)

	c := &console{
		cfg:       cfg,
		api:       api,
		contracts: contracts,
		plans:     plans,
		students:  students,
		checkins:  checkins,
		dashboard: service.NewDashboardService(students, contracts, checkins),
		overview:  service.NewStudentService(students, contracts, checkins),
		router:    navigation.NewRouter(),
		detach:    func() {},
	}

	if spinnerOut != nil && isatty.IsTerminal(spinnerOut.Fd()) {
		loading := navigation.NewLoadingController(func(loading bool) {
			spinner := view.Spinner{Loading: loading, Message: c.currentRoute()}
			_ = spinner.Render(spinnerOut)
		})
		c.detach = loading.Attach(c.router)
	}
	return c
}

func (c *console) Close() {
	c.detach()
}

// load runs fn as a navigation to route so the spinner tracks it.
func (c *console) load(ctx context.Context, route string, fn func(ctx context.Context) error) error {
	c.mu.Lock()
	c.route = route
	c.mu.Unlock()
	return c.router.Navigate(ctx, route, fn)
}

func (c *console) currentRoute() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.route
}

// printResult writes data as indented JSON or, in text mode, through view.
func printResult(w io.Writer, data interface{}, text renderer) error {
	switch strings.ToLower(strings.TrimSpace(outputFormat)) {
	case outputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case outputText, "":
		if text == nil {
			return nil
		}
		return text.Render(w)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// renderFunc adapts a plain function to renderer.
type renderFunc func(w io.Writer) error

func (f renderFunc) Render(w io.Writer) error {
	return f(w)
}

func renderAll(items ...renderer) renderer {
	return renderFunc(func(w io.Writer) error {
		for i, item := range items {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := item.Render(w); err != nil {
				return err
			}
		}
		return nil
	})
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
