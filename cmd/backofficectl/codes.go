package main

import (
	"fmt"

	"backoffice/internal/model"
	"backoffice/internal/service"

	"github.com/spf13/cobra"
)

func codesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "Print the common code tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			tables, err := service.NewCodeService(a.gw).All(a.context(cmd))
			if err != nil {
				return fmt.Errorf("could not load common codes: %w", err)
			}
			out := cmd.OutOrStdout()

			for _, section := range []struct {
				name  string
				items []model.CodeItem
			}{
				{"Payment status", tables.PaymentStatus},
				{"Payment type", tables.PaymentType},
				{"Merchant status", tables.MerchantStatus},
			} {
				title(out, section.name)
				t, err := newTable(out, "Code", "Name", "Description")
				if err != nil {
					return err
				}
				for _, item := range section.items {
					if err := t.row(item.Code, item.Name, item.Description); err != nil {
						return err
					}
				}
				if err := t.flush(); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
