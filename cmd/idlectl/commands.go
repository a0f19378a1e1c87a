package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/osse101/IdleForge_Go/internal/bonus"
	"github.com/osse101/IdleForge_Go/internal/bootstrap"
	"github.com/osse101/IdleForge_Go/internal/config"
	"github.com/osse101/IdleForge_Go/internal/database"
	"github.com/osse101/IdleForge_Go/internal/domain"
)

const timeFormat = "2006-01-02 15:04:05"

// openStore loads configuration and opens the store; the caller closes it
func openStore(ctx context.Context, migrate bool) (*config.Config, *bootstrap.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	bootstrap.SetupLogger(os.Stderr, cfg)

	store, err := bootstrap.OpenStore(ctx, cfg, migrate)
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

// openServices is openStore plus the game services over it
func openServices(ctx context.Context) (*bootstrap.Store, *bootstrap.Services, error) {
	cfg, store, err := openStore(ctx, true)
	if err != nil {
		return nil, nil, err
	}
	econ, err := config.LoadEconomy(cfg.EconomyFile)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	bus, _ := bootstrap.InitializeEventSystem()
	return store, bootstrap.InitializeServices(store, econ, bus), nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending migrations and print the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			_, store, err := openStore(ctx, true)
			if err != nil {
				return err
			}
			defer store.Close()
			return printStatus(ctx, cmd.OutOrStdout(), store)
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which migrations are applied",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			_, store, err := openStore(ctx, false)
			if err != nil {
				return err
			}
			defer store.Close()
			return printStatus(ctx, cmd.OutOrStdout(), store)
		},
	}
}

func printStatus(ctx context.Context, w io.Writer, store *bootstrap.Store) error {
	statuses, err := database.Status(ctx, store.Driver, store.DB())
	if err != nil {
		return err
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Version", "Source", "Applied"}),
	)
	for _, s := range statuses {
		table.Append([]string{
			strconv.FormatInt(s.Version, 10),
			s.Source,
			strconv.FormatBool(s.Applied),
		})
	}
	return table.Render()
}

func newBonusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bonus",
		Short: "Inspect and top up the bonus pool",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "Create one bonus if the pool has room",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, svc, err := openServices(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			created, err := svc.Bonuses.GenerateNewBonus(ctx)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintln(cmd.OutOrStdout(), "Bonus created")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Bonus pool is full")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List bonuses that can still be purchased",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, svc, err := openServices(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			available, err := svc.Bonuses.ListAvailable(ctx)
			if err != nil {
				return err
			}
			return printBonuses(cmd.OutOrStdout(), bonus.Views(available))
		},
	})

	return cmd
}

func printBonuses(w io.Writer, views []domain.BonusView) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"ID", "Name", "Level", "Target", "Multiplier", "Cost", "Duration", "Available Until"}),
	)
	for _, v := range views {
		table.Append([]string{
			v.ID,
			v.Name,
			strconv.Itoa(v.Level),
			string(v.Target),
			strconv.FormatFloat(v.Multiplier, 'f', -1, 64),
			fmt.Sprintf("%.0f", v.Cost),
			(time.Duration(v.Duration) * time.Second).String(),
			v.AvailableUntil.Local().Format(timeFormat),
		})
	}
	return table.Render()
}

func newPlayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "Print the leaderboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, svc, err := openServices(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			players, err := svc.Players.List(ctx)
			if err != nil {
				return err
			}
			return printPlayers(cmd.OutOrStdout(), players)
		},
	}
}

func printPlayers(w io.Writer, players []domain.Player) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"#", "Username", "Balance", "Joined", "ID"}),
	)
	for i, p := range players {
		table.Append([]string{
			strconv.Itoa(i + 1),
			p.Username,
			fmt.Sprintf("%.2f", p.Balance),
			p.CreatedAt.Local().Format(timeFormat),
			p.ID,
		})
	}
	return table.Render()
}
