package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/antonio-alexander/go-bizadmin/internal"
	"github.com/antonio-alexander/go-bizadmin/internal/client"
	"github.com/antonio-alexander/go-bizadmin/internal/data"
	"github.com/antonio-alexander/go-bizadmin/internal/utilities"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	Version   string
	GitCommit string
	GitBranch string
)

func init() {
	if Version = data.Version; Version == "" {
		Version = "<no_version_provided>"
	}
	if GitCommit = data.GitCommit; GitCommit == "" {
		GitCommit = "<no_git_commit>"
	}
	if GitBranch = data.GitBranch; GitBranch == "" {
		GitBranch = "<no_git_branch>"
	}
}

func main() {
	osSignal := make(chan os.Signal, 1)
	signal.Notify(osSignal, syscall.SIGINT, syscall.SIGTERM)
	if err := Main(os.Args[1:], internal.EnvsFromOs(), osSignal); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func atoiDefault(s string, defaultValue int) int {
	if i, err := strconv.Atoi(s); err == nil && i > 0 {
		return i
	}
	return defaultValue
}

// scenarioConcurrentCreate has every client create employees concurrently,
// each client listing its own employees after every create, then verifies
// that every employee is visible and reports the request timings.
func scenarioConcurrentCreate(ctx context.Context, envs map[string]string, logger utilities.Logger,
	timers utilities.Timers, clients ...client.Client) error {
	const correlationId string = "scenario_concurrent_create"
	const minClients int = 1

	var mu sync.Mutex
	var created []string

	if len(clients) < minClients {
		return errors.New("not enough clients provided")
	}
	nEmployees := atoiDefault(envs["SCENARIO_EMPLOYEES"], 10)
	prefix := internal.GenerateId()[:8]
	ctx = internal.CtxWithCorrelationId(ctx, correlationId)
	defer func() {
		for _, id := range created {
			if err := clients[0].EmployeeDelete(ctx, id); err != nil {
				logger.Error(ctx, "error while deleting employee %s: %s", id, err)
			}
		}
		logger.Info(ctx, "deleted %d employees", len(created))
	}()

	group, groupCtx := errgroup.WithContext(ctx)
	for i, c := range clients {
		group.Go(func() error {
			ctx := internal.CtxWithCorrelationId(groupCtx, fmt.Sprintf("%s_%d", correlationId, i))
			for j := range nEmployees {
				firstName := fmt.Sprintf("%s-%d", prefix, i)
				lastName := fmt.Sprintf("employee-%d", j)
				email := fmt.Sprintf("%s.%d.%d@example.com", prefix, i, j)
				index := timers.Start("employee_create")
				employee, err := c.EmployeeCreate(ctx, data.EmployeePartial{
					FirstName: &firstName,
					LastName:  &lastName,
					Email:     &email,
				})
				timers.Stop("employee_create", index)
				if err != nil {
					return errors.Wrapf(err, "client %d", i)
				}
				mu.Lock()
				created = append(created, employee.ID)
				mu.Unlock()
				index = timers.Start("employees_search")
				_, err = c.EmployeesSearch(ctx, data.EmployeeSearch{Search: firstName})
				timers.Stop("employees_search", index)
				if err != nil {
					return errors.Wrapf(err, "client %d", i)
				}
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	employees, err := clients[0].EmployeesSearch(ctx, data.EmployeeSearch{Search: prefix})
	if err != nil {
		return err
	}
	if expected := len(clients) * nEmployees; len(employees) != expected {
		return errors.Errorf("expected %d employees, found %d", expected, len(employees))
	}
	result := timers.ReadAll()
	for name, average := range result.Averages {
		logger.Info(ctx, "%s: average %v, total %v", name,
			time.Duration(average), time.Duration(result.Totals[name]))
	}
	return nil
}

func Main(args []string, envs map[string]string, osSignal chan os.Signal) error {
	var clients []client.Client
	var wg sync.WaitGroup

	//create context
	ctx, cancel := internal.LaunchContext(&wg, osSignal)
	defer cancel()

	// create utilities
	logger := utilities.NewLogger()
	if err := logger.Configure(envs); err != nil {
		return err
	}
	timers := utilities.NewTimers()

	//print version info
	logger.Info(ctx, "scenarios: go-bizadmin v%s (%s) built from: %s",
		Version, GitCommit, GitBranch)

	//each client has its own session
	nClients := atoiDefault(envs["N_CLIENTS"], 4)
	for range nClients {
		client := client.NewClient(logger)
		if err := client.Configure(envs); err != nil {
			return err
		}
		if err := client.Open(ctx); err != nil {
			return err
		}
		defer func() {
			if err := client.Close(context.Background()); err != nil {
				logger.Error(ctx, "error while closing client: %s", err)
			}
		}()
		if _, err := client.Login(ctx, data.LoginRequest{
			Email:    envs["CLIENT_EMAIL"],
			Password: envs["CLIENT_PASSWORD"],
		}); err != nil {
			return errors.Wrap(err, "unable to login")
		}
		clients = append(clients, client)
	}

	// execute scenario
	switch scenario := envs["SCENARIO"]; scenario {
	default:
		return errors.Errorf("unsupported scenario: %s", scenario)
	case "concurrent_create":
		logger.Info(ctx, "executing %s scenario", scenario)
		if err := scenarioConcurrentCreate(ctx, envs, logger, timers, clients...); err != nil {
			logger.Error(ctx, "error while executing %s scenario: %s", scenario, err)
			return err
		}
	}
	cancel()
	wg.Wait()
	return nil
}
