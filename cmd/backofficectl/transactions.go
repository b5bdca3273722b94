package main

import (
	"fmt"
	"strings"

	"backoffice/internal/format"
	"backoffice/internal/query"
	"backoffice/internal/service"

	"github.com/spf13/cobra"
)

func transactionsCmd() *cobra.Command {
	var (
		status, payType, search, sortKey, order string
		page, pageSize                          int
	)

	cmd := &cobra.Command{
		Use:     "transactions [paymentCode]",
		Aliases: []string{"tx"},
		Short:   "List payments, or show one payment",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			svc := service.NewTransactionService(a.gw, a.gw, a.loc)
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				detail, err := svc.Detail(a.context(cmd), args[0])
				if err != nil {
					return fmt.Errorf("could not load transaction detail: %w", err)
				}
				title(out, "Payment "+detail.Transaction.PaymentCode)
				t, err := newTable(out, "Field", "Value")
				if err != nil {
					return err
				}
				merchant := mutedStyle.Render("(unavailable)")
				if detail.Merchant != nil {
					merchant = detail.Merchant.MchtName + " (" + detail.Merchant.MchtCode + ")"
				}
				rows := [][2]string{
					{"Merchant", merchant},
					{"Amount", detail.AmountLabel},
					{"Pay type", detail.PayTypeLabel},
					{"Status", detail.StatusLabel},
					{"Paid at", detail.Transaction.PaymentAt},
				}
				for _, r := range rows {
					if err := t.row(r[0], r[1]); err != nil {
						return err
					}
				}
				return t.flush()
			}

			res, err := svc.List(a.context(cmd), query.Query{
				Status:    strings.ToUpper(status),
				Secondary: strings.ToUpper(payType),
				Search:    search,
				SortKey:   query.ParseSortKey(sortKey),
				SortOrder: query.ParseSortOrder(order),
				Page:      page,
				PageSize:  pageSize,
			})
			if err != nil {
				return fmt.Errorf("could not load transactions: %w", err)
			}

			title(out, "Transactions")
			t, err := newTable(out, "Payment", "Merchant", "Amount", "Pay type", "Status", "Paid at")
			if err != nil {
				return err
			}
			for _, tx := range res.Items {
				if err := t.row(
					tx.PaymentCode,
					tx.MchtCode,
					format.FormatAmount(format.ParseAmount(string(tx.Amount)), tx.Currency),
					format.PayTypeLabel(tx.PayType),
					format.StatusLabel(tx.Status),
					tx.PaymentAt,
				); err != nil {
					return fmt.Errorf("failed to write transaction row: %w", err)
				}
			}
			if err := t.flush(); err != nil {
				return err
			}

			fmt.Fprintf(out, "\ntotal %s  success %d  failed %d  cancelled %d  pending %d\n",
				format.FormatAmount(res.TotalAmount, "KRW"),
				res.StatusCounts["SUCCESS"], res.StatusCounts["FAILED"],
				res.StatusCounts["CANCELLED"], res.StatusCounts["PENDING"])
			pageFooter(out, res.CurrentPage, res.TotalPages, res.TotalItems)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", query.All, "status filter (ALL, SUCCESS, FAILED, CANCELLED, PENDING)")
	cmd.Flags().StringVar(&payType, "pay-type", query.All, "pay type filter (ALL, ONLINE, OFFLINE, VACT, BILLING)")
	cmd.Flags().StringVar(&search, "search", "", "search payment or merchant code")
	cmd.Flags().StringVar(&sortKey, "sort", string(query.DefaultTransactionSort), "sort by amount, paymentAt or none for input order")
	cmd.Flags().StringVar(&order, "order", "desc", "sort order (asc, desc)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", query.TransactionPageSize, "rows per page")
	return cmd
}
