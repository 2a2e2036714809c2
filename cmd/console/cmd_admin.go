package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cardstore/console/config"
	"github.com/cardstore/console/internal/audit"
	"github.com/cardstore/console/pkg/auth"
)

// console hash:password — generate the bcrypt hash for ADMIN_PASSWORD_HASH.
var hashPasswordCmd = &cobra.Command{
	Use:   "hash:password <password>",
	Short: "Hash a password for ADMIN_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Println(hash)
		return nil
	},
}

var auditLimit int

// console audit:recent — print the newest audit entries.
var auditRecentCmd = &cobra.Command{
	Use:   "audit:recent",
	Short: "Show the most recent audit entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		store, err := audit.Open()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Recent(auditLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No audit entries.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "AT\tACTOR\tACTION\tRESOURCE\tTARGET\tOUTCOME\tDETAIL")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				e.At.Format("2006-01-02 15:04:05"), e.Actor, e.Action, e.Resource, e.TargetID, e.Outcome, e.Detail)
		}
		return w.Flush()
	},
}

func init() {
	auditRecentCmd.Flags().IntVar(&auditLimit, "limit", 20, "number of entries to show")
}
