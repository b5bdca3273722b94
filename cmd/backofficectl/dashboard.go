package main

import (
	"fmt"
	"strconv"

	"backoffice/internal/aggregate"
	"backoffice/internal/format"
	"backoffice/internal/service"

	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	var rng string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals, status distribution and daily series",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			overview, err := service.NewDashboardService(a.gw, a.gw, a.loc).Overview(a.context(cmd), aggregate.ParseRange(rng))
			if err != nil {
				return fmt.Errorf("could not load dashboard: %w", err)
			}
			out := cmd.OutOrStdout()

			title(out, "Dashboard ("+overview.Range+")")
			fmt.Fprintf(out, "amount    %s  %s\n", overview.TotalAmountLabel, trendText(overview.AmountTrend.Direction, overview.AmountTrend.Label))
			fmt.Fprintf(out, "payments  %d  %s\n", overview.TotalCount, trendText(overview.CountTrend.Direction, overview.CountTrend.Label))
			fmt.Fprintf(out, "merchants %d\n\n", overview.MerchantCount)

			dist, err := newTable(out, "Status", "Payments")
			if err != nil {
				return err
			}
			for _, s := range overview.StatusDistribution {
				if err := dist.row(s.Label, strconv.Itoa(s.Value)); err != nil {
					return err
				}
			}
			if err := dist.flush(); err != nil {
				return err
			}
			fmt.Fprintln(out)

			daily, err := newTable(out, "Day", "Amount", "Payments")
			if err != nil {
				return err
			}
			for _, b := range overview.DailyAmounts {
				if err := daily.row(format.ShortDateKey(b.DateKey), format.FormatAmount(b.TotalAmount, "KRW"), strconv.Itoa(b.Count)); err != nil {
					return err
				}
			}
			return daily.flush()
		},
	}

	cmd.Flags().StringVar(&rng, "range", string(aggregate.RangeAll), "reporting window (ALL, 7D)")
	return cmd
}
