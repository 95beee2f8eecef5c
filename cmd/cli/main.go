package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	postgresStore "github.com/iho/fintrack/internal/adapter/repository/postgres"
	redisStore "github.com/iho/fintrack/internal/adapter/repository/redis"
	"github.com/iho/fintrack/internal/infrastructure/config"
	"github.com/iho/fintrack/internal/infrastructure/kvstore"
	"github.com/iho/fintrack/internal/infrastructure/postgres"
	"github.com/iho/fintrack/internal/infrastructure/redis"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fintrack-cli",
		Short: "FinTrack CLI tool",
		Long:  `A command line interface for interacting with the FinTrack API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the FinTrack API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(accountsCmd())
	rootCmd.AddCommand(adjustCmd())
	rootCmd.AddCommand(ledgerCmd())
	rootCmd.AddCommand(clearAllCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := apiGet("/api/v1/accounts")
			if err != nil {
				return err
			}

			var result struct {
				Accounts []struct {
					ID            string `json:"id"`
					BankName      string `json:"bank_name"`
					AccountNumber string `json:"account_number"`
					Balance       string `json:"balance"`
					BalanceStatus string `json:"balance_status"`
				} `json:"accounts"`
				Total int `json:"total"`
			}
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			fmt.Printf("%-28s %-20s %-10s %12s %s\n", "ID", "BANK", "NUMBER", "BALANCE", "STATUS")
			for _, acc := range result.Accounts {
				fmt.Printf("%-28s %-20s %-10s %12s %s\n",
					acc.ID, truncate(acc.BankName, 20), acc.AccountNumber, acc.Balance, acc.BalanceStatus)
			}
			fmt.Printf("Total: %d\n", result.Total)
			return nil
		},
	}

	var (
		bankName      string
		accountNumber string
		balance       string
		overdraft     string
	)
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := apiPost("/api/v1/accounts", map[string]any{
				"bank_name":       bankName,
				"account_number":  accountNumber,
				"balance":         balance,
				"overdraft_limit": overdraft,
			})
			if err != nil {
				return err
			}
			return printResponseJSON(body)
		},
	}
	createCmd.Flags().StringVar(&bankName, "bank", "", "Bank name")
	createCmd.Flags().StringVar(&accountNumber, "number", "", "Account number")
	createCmd.Flags().StringVar(&balance, "balance", "0", "Opening balance")
	createCmd.Flags().StringVar(&overdraft, "overdraft", "0", "Overdraft limit")
	_ = createCmd.MarkFlagRequired("bank")
	_ = createCmd.MarkFlagRequired("number")

	cmd.AddCommand(listCmd)
	cmd.AddCommand(createCmd)
	return cmd
}

func adjustCmd() *cobra.Command {
	var (
		newBalance string
		reason     string
		note       string
	)
	cmd := &cobra.Command{
		Use:   "adjust <account-id>",
		Short: "Manually set an account balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := apiPost("/api/v1/accounts/"+args[0]+"/adjust", map[string]any{
				"new_balance": newBalance,
				"reason":      reason,
				"note":        note,
			})
			if err != nil {
				return err
			}
			return printResponseJSON(body)
		},
	}
	cmd.Flags().StringVar(&newBalance, "balance", "", "New balance")
	cmd.Flags().StringVar(&reason, "reason", "", "Reason for the adjustment")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")
	_ = cmd.MarkFlagRequired("balance")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency [account-id]",
		Short: "Check ledger consistency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/ledger/consistency"
			if len(args) == 1 {
				path += "/" + args[0]
			}
			body, err := apiGet(path)
			if err != nil {
				return err
			}
			return printResponseJSON(body)
		},
	}

	repairCmd := &cobra.Command{
		Use:   "repair <account-id>",
		Short: "Rewrite an account balance from its transaction history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := apiPost("/api/v1/ledger/repair/"+args[0], nil)
			if err != nil {
				return err
			}
			return printResponseJSON(body)
		},
	}

	cmd.AddCommand(consistencyCmd)
	cmd.AddCommand(repairCmd)
	return cmd
}

func clearAllCmd() *cobra.Command {
	var confirmed bool
	cmd := &cobra.Command{
		Use:   "clear-all",
		Short: "Delete all stored data from the configured backend",
		Long:  `Deletes every collection from the storage backend configured through the environment. This talks to the store directly, not through the API.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return fmt.Errorf("refusing to delete all data without --yes")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			store, cleanup, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := store.ClearAll(ctx); err != nil {
				return err
			}
			fmt.Printf("All data cleared from %s backend\n", cfg.StorageBackend)
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm deletion of all data")
	return cmd
}

func openStore(ctx context.Context, cfg *config.Config) (kvstore.Store, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		store, err := kvstore.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	case config.BackendRedis:
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return redisStore.NewStore(client, cfg.RedisKeyPrefix), func() { _ = client.Close() }, nil
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
		if err != nil {
			return nil, nil, err
		}
		return postgresStore.NewStore(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func apiGet(path string) ([]byte, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	return readResponse(resp)
}

func apiPost(path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", body)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	return readResponse(resp)
}

func readResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func printResponseJSON(body []byte) error {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	printJSON(parsed)
	return nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render output: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
