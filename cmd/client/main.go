package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/antonio-alexander/go-bizadmin/internal"
	"github.com/antonio-alexander/go-bizadmin/internal/client"
	"github.com/antonio-alexander/go-bizadmin/internal/data"
	"github.com/antonio-alexander/go-bizadmin/internal/utilities"

	"github.com/cenkalti/backoff/v5"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
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

type cli struct {
	envs   map[string]string
	logger interface {
		internal.Configurer
		utilities.Logger
	}
	client interface {
		internal.Configurer
		internal.Opener
		client.Client
	}
	flags struct {
		baseURL  string
		email    string
		password string
		wait     time.Duration
	}
}

// waitForHealth polls the health endpoint until it answers or wait elapses.
func (c *cli) waitForHealth(ctx context.Context) error {
	version, err := backoff.Retry(ctx, func() (string, error) {
		version, err := c.client.Health(ctx)
		if err != nil {
			if errors.Is(err, client.ErrNetwork) {
				c.logger.Debug(ctx, "backend not ready: %s", err)
				return "", err
			}
			return "", backoff.Permanent(err)
		}
		return version, nil
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(c.flags.wait))
	if err != nil {
		return errors.Wrap(err, "backend not ready")
	}
	c.logger.Info(ctx, "backend ready: v%s", version)
	return nil
}

func (c *cli) open(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if c.flags.baseURL != "" {
		c.envs["CLIENT_BASE_URL"] = c.flags.baseURL
	}
	if err := c.client.Configure(c.envs); err != nil {
		return err
	}
	if err := c.client.Open(ctx); err != nil {
		return err
	}
	if c.flags.wait > 0 {
		if err := c.waitForHealth(ctx); err != nil {
			return err
		}
	}
	if c.flags.email == "" {
		return nil
	}
	if _, err := c.client.Login(ctx, data.LoginRequest{
		Email:    c.flags.email,
		Password: c.flags.password,
	}); err != nil {
		return errors.Wrap(err, "unable to login")
	}
	return nil
}

func (c *cli) close(cmd *cobra.Command, _ []string) error {
	return c.client.Close(cmd.Context())
}

func newRootCommand(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:                "bizadmin",
		Short:              "Command line client for the bizadmin REST api",
		SilenceUsage:       true,
		PersistentPreRunE:  c.open,
		PersistentPostRunE: c.close,
	}
	root.PersistentFlags().StringVar(&c.flags.baseURL, "base-url", "", "backend base url (overrides CLIENT_BASE_URL)")
	root.PersistentFlags().StringVar(&c.flags.email, "email", c.envs["CLIENT_EMAIL"], "login email")
	root.PersistentFlags().StringVar(&c.flags.password, "password", c.envs["CLIENT_PASSWORD"], "login password")
	root.PersistentFlags().DurationVar(&c.flags.wait, "wait", 0, "wait up to this long for the backend to be healthy")
	root.AddCommand(
		newVersionCommand(),
		newHealthCommand(c),
		newLoginCommand(c),
		newEmployeesCommand(c),
		newStatsCommand(c),
		newUploadCommand(c),
		newDebugCommand(c),
	)
	return root
}

func Main(args []string, envs map[string]string, osSignal chan os.Signal) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-ctx.Done():
		case <-osSignal:
			cancel()
		}
	}()

	logger := utilities.NewLogger(os.Stderr)
	if err := logger.Configure(envs); err != nil {
		return err
	}
	c := &cli{
		envs:   envs,
		logger: logger,
		client: client.NewClient(logger),
	}
	root := newRootCommand(c)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
