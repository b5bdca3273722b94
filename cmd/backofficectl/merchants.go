package main

import (
	"fmt"
	"strconv"
	"strings"

	"backoffice/internal/format"
	"backoffice/internal/query"
	"backoffice/internal/service"

	"github.com/spf13/cobra"
)

func merchantsCmd() *cobra.Command {
	var (
		status, search string
		page, pageSize int
	)

	cmd := &cobra.Command{
		Use:   "merchants [mchtCode]",
		Short: "List merchants, or show one merchant with its statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			svc := service.NewMerchantService(a.gw, a.gw, a.loc)
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				detail, err := svc.Detail(a.context(cmd), args[0])
				if err != nil {
					return fmt.Errorf("could not load merchant detail: %w", err)
				}
				stats := detail.Statistics
				title(out, detail.Merchant.MchtName+" ("+detail.Merchant.MchtCode+")")
				fmt.Fprintf(out, "%s  %s, %d payments\n\n", detail.StatusLabel, stats.TotalAmountLabel, stats.TotalCount)

				t, err := newTable(out, "Day", "Success amount", "Payments")
				if err != nil {
					return err
				}
				for _, b := range stats.DailySuccessAmount {
					if err := t.row(b.DateKey, format.FormatAmount(b.TotalAmount, "KRW"), strconv.Itoa(b.Count)); err != nil {
						return err
					}
				}
				return t.flush()
			}

			res, err := svc.List(a.context(cmd), query.Query{
				Status:   strings.ToUpper(status),
				Search:   search,
				Page:     page,
				PageSize: pageSize,
			})
			if err != nil {
				return fmt.Errorf("could not load merchants: %w", err)
			}

			title(out, "Merchants")
			t, err := newTable(out, "Code", "Name", "Status")
			if err != nil {
				return err
			}
			for _, m := range res.Items {
				if err := t.row(m.MchtCode, m.MchtName, format.MerchantStatusLabel(m.Status)); err != nil {
					return fmt.Errorf("failed to write merchant row: %w", err)
				}
			}
			if err := t.flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nactive %d  inactive %d\n", res.StatusCounts["ACTIVE"], res.StatusCounts["INACTIVE"])
			pageFooter(out, res.CurrentPage, res.TotalPages, res.TotalItems)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", query.All, "status filter (ALL, ACTIVE, INACTIVE)")
	cmd.Flags().StringVar(&search, "search", "", "search merchant code or name")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", query.MerchantPageSize, "rows per page")
	return cmd
}
