package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"

	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
	"github.com/mikiasgoitom/reactsync/internal/infrastructure/config"
	"github.com/mikiasgoitom/reactsync/internal/infrastructure/logger"
	"github.com/mikiasgoitom/reactsync/internal/infrastructure/validator"
	"github.com/mikiasgoitom/reactsync/internal/reactionsync"
	usecasecontract "github.com/mikiasgoitom/reactsync/internal/usecase/contract"
	"github.com/spf13/cobra"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/sync/errgroup"
)

type toggleOptions struct {
	targets   []string
	direction string
	repeat    int
	token     string
}

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the reaction targets found on the page",
		RunE: func(cmd *cobra.Command, args []string) error {
			pageURL, _ := cmd.Flags().GetString("page")
			cfg := config.NewClientConfig()
			hc, err := newHTTPClient()
			if err != nil {
				return err
			}
			page, err := reactionsync.LoadPage(cmd.Context(), hc, pageURL, cfg.TokenField, cliLogger(cmd))
			if err != nil {
				return err
			}
			printTargets(cmd.OutOrStdout(), page)
			return nil
		},
	}
}

func newToggleCmd() *cobra.Command {
	opts := &toggleOptions{}
	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Activate a reaction control on one or more targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			pageURL, _ := cmd.Flags().GetString("page")
			cfg := config.NewClientConfig()
			if opts.token != "" {
				cfg.AccessToken = opts.token
			}
			hc, err := newHTTPClient()
			if err != nil {
				return err
			}
			return runToggle(cmd.Context(), cmd.OutOrStdout(), hc, pageURL, cfg, *opts, cliLogger(cmd))
		},
	}
	cmd.Flags().StringSliceVarP(&opts.targets, "target", "t", nil, "target id (repeatable); defaults to every target on the page")
	cmd.Flags().StringVarP(&opts.direction, "direction", "d", "like", "like or dislike")
	cmd.Flags().IntVar(&opts.repeat, "repeat", 1, "activations fired at once per target")
	cmd.Flags().StringVar(&opts.token, "token", "", "access token sent as a bearer header")
	return cmd
}

func newHTTPClient() (*http.Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &http.Client{Jar: jar}, nil
}

func cliLogger(cmd *cobra.Command) usecasecontract.IAppLogger {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return logger.NewComponentLogger("reactclient")
	}
	return logger.Nop()
}

// runToggle loads the page once and fires opts.repeat activations per target
// concurrently. Activations that hit a pending target are reported as dropped.
func runToggle(ctx context.Context, out io.Writer, hc *http.Client, pageURL string, cfg config.ClientConfig, opts toggleOptions, log usecasecontract.IAppLogger) error {
	if err := validator.NewValidator().ValidateDirection(opts.direction); err != nil {
		return err
	}
	if opts.repeat < 1 {
		opts.repeat = 1
	}
	direction := entity.ReactionType(opts.direction)

	page, err := reactionsync.LoadPage(ctx, hc, pageURL, cfg.TokenField, log)
	if err != nil {
		return err
	}
	ids := opts.targets
	if len(ids) == 0 {
		for _, target := range page.Targets() {
			ids = append(ids, target.ID())
		}
	}

	location := reactionsync.NewLocation(page.URL())
	session := reactionsync.NewSession(page, reactionsync.NewMutationClient(hc, cfg, log), location, cfg, log)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		for i := 0; i < opts.repeat; i++ {
			g.Go(func() error {
				outcome, sent, err := session.Activate(gctx, id, direction)
				if err != nil {
					return err
				}
				mu.Lock()
				defer mu.Unlock()
				if !sent {
					fmt.Fprintf(out, "%s %s: dropped, request already pending\n", id, direction)
					return nil
				}
				fmt.Fprintf(out, "%s %s: %s\n", id, direction, outcome)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printTargets(out, page)
	if current := location.Current(); current != page.URL() {
		fmt.Fprintf(out, "navigated to %s\n", current)
	}
	return nil
}

func printTargets(out io.Writer, page *reactionsync.Page) {
	for _, target := range page.Targets() {
		fmt.Fprintf(out, "%-12s %-8s %s  %s  %s\n", target.ID(), target.Kind(), target.LikeLabel(), target.DislikeLabel(), target.Endpoint())
	}
	if login, ok := page.LoginURL(); ok {
		fmt.Fprintf(out, "login: %s\n", strings.TrimSpace(login))
	}
}
