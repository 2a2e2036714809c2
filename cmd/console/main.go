package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "console",
	Short: "cardstore admin console",
	Long:  "Server-rendered admin console for the cardstore storefront backend.",
}

func init() {
	// Server
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Admin
	rootCmd.AddCommand(hashPasswordCmd)
	rootCmd.AddCommand(auditRecentCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the console version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("console", version)
	},
}
