package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/graphql-go/graphql"
	"github.com/spf13/cobra"

	"github.com/cardstore/console/app/controllers"
	"github.com/cardstore/console/app/routes"
	"github.com/cardstore/console/internal/server"
	"github.com/cardstore/console/pkg/router"
	"github.com/cardstore/console/pkg/ws"
)

// console serve — start the console server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the console server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// console route:list — print all registered named routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := router.New()
		// Wiring with empty deps is enough to register paths.
		routes.Register(r, routes.Deps{
			Auth:     controllers.NewAuthController(),
			Panel:    controllers.NewPanelController(controllers.PanelDeps{}),
			Settings: controllers.NewSettingsController(nil, nil, nil),
			Hub:      ws.NewHub(),
			Schema:   graphql.Schema{},
		})

		table := r.Routes()
		if len(table) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		names := make([]string, 0, len(table))
		for name := range table {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tPATH")
		fmt.Fprintln(w, "----\t----")
		for _, name := range names {
			fmt.Fprintf(w, "%s\t%s\n", name, table[name])
		}
		return w.Flush()
	},
}
