package main

import (
	"fmt"

	"backoffice/internal/model"
	"backoffice/internal/repository"
	"backoffice/internal/service"

	"github.com/spf13/cobra"
)

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the upstream health endpoint once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			svc := service.NewHealthService(a.gw, repository.NewMemoryHealthCheckRepository(1))
			check, err := svc.Check(a.context(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			status := upStyle.Render(check.Status)
			if check.Status != model.HealthUp {
				status = downStyle.Render(check.Status)
			}
			fmt.Fprintf(out, "%s  %s\n", a.gw.HealthURL(), status)
			if check.ResponseTimeMs != nil {
				fmt.Fprintf(out, "response time  %d ms\n", *check.ResponseTimeMs)
			}
			if check.ErrorMessage != "" {
				fmt.Fprintf(out, "error          %s\n", check.ErrorMessage)
			}
			fmt.Fprintf(out, "checked at     %s\n", check.CheckedAt.In(a.loc).Format("2006-01-02 15:04:05"))

			if check.Status != model.HealthUp {
				return fmt.Errorf("upstream is %s", check.Status)
			}
			return nil
		},
	}
}
