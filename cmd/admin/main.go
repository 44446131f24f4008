package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/QuangTung97/reva-click/config"
	"github.com/QuangTung97/reva-click/model"
	"github.com/QuangTung97/reva-click/pkg/cacheclient"
	"github.com/QuangTung97/reva-click/pkg/memtable"
	"github.com/QuangTung97/reva-click/pkg/otellib"
	"github.com/QuangTung97/reva-click/repository"
	"github.com/QuangTung97/reva-click/service/earning"
	"github.com/QuangTung97/reva-click/service/tracking"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	_ "github.com/go-sql-driver/mysql"
)

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %s", s)
	}
	return id, nil
}

func newAdminContext(conf config.Config) context.Context {
	return otellib.ToContext(context.Background(), config.NewLogger(conf.Log))
}

func earningCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "earning",
		Short: "manage earning status",
	}

	newTransitionCommand := func(use string, short string,
		fn func(s *earning.Service, ctx context.Context, id int64) (model.Earning, error),
	) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <earning id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}

				conf := config.Load()
				db := conf.MySQL.MustConnect()
				defer func() { _ = db.Close() }()

				s := earning.NewService(repository.NewProvider(db), repository.NewEarning(), time.Now)
				e, err := fn(s, newAdminContext(conf), id)
				if err != nil {
					return err
				}
				fmt.Println("EARNING:", e.ID, "STATUS:", e.Status, "AMOUNT:", e.Amount)
				return nil
			},
		}
	}

	cmd.AddCommand(
		newTransitionCommand("approve", "move a pending earning to approved",
			func(s *earning.Service, ctx context.Context, id int64) (model.Earning, error) {
				return s.Approve(ctx, id)
			}),
		newTransitionCommand("pay", "mark an approved earning as paid",
			func(s *earning.Service, ctx context.Context, id int64) (model.Earning, error) {
				return s.MarkPaid(ctx, id)
			}),
	)
	return cmd
}

func linkCommand() *cobra.Command {
	var campaignID int64
	var promoterID int64

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "issue a tracking link for a promoter",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.Load()
			db := conf.MySQL.MustConnect()
			defer func() { _ = db.Close() }()

			service := tracking.NewTracedService(conf, repository.NewProvider(db),
				memtable.New(conf.Tracking.LocalCacheSize), nil, prometheus.NewRegistry())

			link, err := service.CreateLink(newAdminContext(conf), campaignID, promoterID)
			if err != nil {
				return err
			}
			fmt.Println("LINK:", link.ID, "CODE:", link.Code, "PATH:", tracking.RedirectPath(link.Code))
			return nil
		},
	}
	createCmd.Flags().Int64Var(&campaignID, "campaign", 0, "campaign id")
	createCmd.Flags().Int64Var(&promoterID, "promoter", 0, "promoter id")
	_ = createCmd.MarkFlagRequired("campaign")
	_ = createCmd.MarkFlagRequired("promoter")

	evictCmd := &cobra.Command{
		Use:   "evict <code>",
		Short: "remove a tracking link from memcached",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.Load()
			if !conf.Memcache.Enabled() {
				return errors.New("memcache is not configured")
			}

			client := cacheclient.New(conf.Memcache.Addr(), conf.Memcache.Conns())
			defer func() { _ = client.Close() }()

			if err := tracking.EvictLink(client, args[0]); err != nil {
				return err
			}
			fmt.Println("EVICTED:", args[0])
			return nil
		},
	}

	cmd := &cobra.Command{
		Use:   "link",
		Short: "manage tracking links",
	}
	cmd.AddCommand(createCmd, evictCmd)
	return cmd
}

func main() {
	rootCmd := cobra.Command{
		Use:          "admin",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(
		earningCommand(),
		linkCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println("[ERROR]", err)
		os.Exit(1)
	}
}
