package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title Shop Analytics API
// @version 1.0
// @description Sales, growth, repeat-customer, distribution and cohort CLV analytics over store orders and customers.
// @BasePath /

var (
	rootCmd = &cobra.Command{
		Use:   "analytics-api",
		Short: "HTTP analytics over store orders and customers",
		RunE:  serve,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE:  serve,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the analytics-api version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	envFile string
	version = "dev"
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", "", "path to a .env file (optional)")
	rootCmd.AddCommand(serveCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
