package main

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/QuangTung97/reva-click/config"
	"github.com/QuangTung97/reva-click/model"
	"github.com/QuangTung97/reva-click/pkg/util"
	"github.com/QuangTung97/reva-click/repository"
	"github.com/QuangTung97/reva-click/service/tracking"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	_ "github.com/go-sql-driver/mysql"
)

const (
	benchCampaignID = 1
	benchLinkCode   = "BENCH001"
)

type benchOptions struct {
	numThreads  int
	numRequests int
}

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchVerifyCommand(),
		benchTrackCommand(),
		seedDataCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func dialClient(conf config.Config) (*tracking.Client, func()) {
	conn, err := grpc.Dial(conf.Server.GRPC.String(), grpc.WithInsecure())
	if err != nil {
		panic(err)
	}
	return tracking.NewClient(conn), func() { _ = conn.Close() }
}

// runBench calls fn numThreads * numRequests times and prints the latency distribution
func runBench(opts benchOptions, fn func(threadIndex int, i int) error) {
	durations := make([][]time.Duration, opts.numThreads)
	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(opts.numThreads)
	for th := 0; th < opts.numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()

			for i := 0; i < opts.numRequests; i++ {
				start := time.Now()
				if err := fn(threadIndex, i); err != nil {
					fmt.Println("[ERROR]", err)
				}
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))
			}
		}()
	}
	wg.Wait()
	fmt.Println("TOTAL TIME", time.Since(totalStart))

	numHistory := opts.numThreads * opts.numRequests
	if numHistory == 0 {
		return
	}

	history := make([]time.Duration, 0, numHistory)
	total := time.Duration(0)
	for _, bucket := range durations {
		for _, d := range bucket {
			total += d
			history = append(history, d)
		}
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	fmt.Println("P50:", history[numHistory*50/100])
	fmt.Println("P90:", history[numHistory*90/100])
	fmt.Println("P95:", history[numHistory*95/100])
	fmt.Println("P99:", history[numHistory*99/100])
	fmt.Println("P999:", history[numHistory*999/1000])
	fmt.Println("MAX:", history[numHistory-1])
	fmt.Println("AVG:", total/time.Duration(numHistory))
}

func addBenchFlags(cmd *cobra.Command, opts *benchOptions) {
	cmd.Flags().IntVar(&opts.numThreads, "threads", 50, "number of concurrent clients")
	cmd.Flags().IntVar(&opts.numRequests, "requests", 2000, "number of requests per client")
}

func benchVerifyCommand() *cobra.Command {
	var opts benchOptions
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "benchmark the Verify rpc",
		Run: func(cmd *cobra.Command, args []string) {
			conf := config.Load()
			client, closeFn := dialClient(conf)
			defer closeFn()

			runBench(opts, func(threadIndex int, i int) error {
				_, err := client.Verify(context.Background(), &tracking.VerifyRequest{
					SourceIP:       fmt.Sprintf("10.%d.%d.%d", threadIndex, i/256%256, i%256),
					UserAgent:      "Mozilla/5.0 (Windows NT 10.0)",
					TrackingLinkID: 1,
					CampaignID:     benchCampaignID,
					PayoutAmount:   decimal.RequireFromString("0.01"),
				})
				return err
			})
		},
	}
	addBenchFlags(cmd, &opts)
	return cmd
}

func benchTrackCommand() *cobra.Command {
	var opts benchOptions
	cmd := &cobra.Command{
		Use:   "track",
		Short: "benchmark the Track rpc, every request from a distinct ip",
		Run: func(cmd *cobra.Command, args []string) {
			conf := config.Load()
			client, closeFn := dialClient(conf)
			defer closeFn()

			runBench(opts, func(threadIndex int, i int) error {
				resp, err := client.Track(context.Background(), &tracking.TrackRequest{
					Code:      benchLinkCode,
					SourceIP:  fmt.Sprintf("10.%d.%d.%d", threadIndex, i/256%256, i%256),
					UserAgent: "Mozilla/5.0 (Windows NT 10.0)",
				})
				if err != nil {
					return err
				}
				if !resp.Recorded {
					return fmt.Errorf("click not recorded: %s", resp.Result.Reason)
				}
				return nil
			})
		},
	}
	addBenchFlags(cmd, &opts)
	return cmd
}

func seedDataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "insert the campaign and tracking link used by the benchmarks",
		Run: func(cmd *cobra.Command, args []string) {
			conf := config.Load()
			db := conf.MySQL.MustConnect()

			provider := repository.NewProvider(db)
			campaignRepo := repository.NewCampaign()
			linkRepo := repository.NewTrackingLink()

			err := provider.Transact(context.Background(), func(ctx context.Context) error {
				err := campaignRepo.UpsertCampaign(ctx, model.Campaign{
					ID:              benchCampaignID,
					MarketerID:      1,
					Name:            "bench campaign",
					DestinationURL:  "https://example.com",
					Status:          model.CampaignStatusActive,
					TotalBudget:     decimal.RequireFromString("100000000.00"),
					PayoutPerClick:  decimal.RequireFromString("0.01"),
					RemainingBudget: decimal.RequireFromString("100000000.00"),
				})
				if err != nil {
					return err
				}

				nullLink, err := linkRepo.FindTrackingLinkByCode(ctx, util.HashFunc(benchLinkCode), benchLinkCode)
				if err != nil {
					return err
				}
				if nullLink.Valid {
					return nil
				}

				_, err = linkRepo.InsertTrackingLink(ctx, model.TrackingLink{
					CampaignID: benchCampaignID,
					PromoterID: 1,
					CodeHash:   util.HashFunc(benchLinkCode),
					Code:       benchLinkCode,
					CreatedAt:  time.Now().UTC(),
				})
				return err
			})
			if err != nil {
				panic(err)
			}
			fmt.Println("SEEDED: campaign", benchCampaignID, "link", tracking.RedirectPath(benchLinkCode))
		},
	}
}
