package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pmla-casebook/internal/consolidate"
	"github.com/pmla-casebook/internal/db"
	"github.com/pmla-casebook/internal/explorer"
	"github.com/pmla-casebook/internal/export"
	"github.com/pmla-casebook/internal/sheet"
	"github.com/pmla-casebook/internal/store"
	"github.com/pmla-casebook/internal/web"
)

var debugFlag bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "casebook",
		Short: "PMLA Case Consolidation System",
		Long:  `Consolidates PMLA investigative case records scattered across heterogeneous workbook sheets into one record per ECIR`,
	}

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug output")

	rootCmd.AddCommand(createIngestCmd())
	rootCmd.AddCommand(createExploreCmd())
	rootCmd.AddCommand(createServeCmd())
	rootCmd.AddCommand(createStatsCmd())
	rootCmd.AddCommand(createPingCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// createIngestCmd creates the ingest subcommand
func createIngestCmd() *cobra.Command {
	var outPath string
	var toPostgres bool

	cmd := &cobra.Command{
		Use:   "ingest [workbook.xlsx]",
		Short: "Consolidate a workbook into the case snapshot",
		Long:  `Reads every sheet of the workbook, consolidates rows by ECIR number and writes the master case snapshot`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			source, err := sheet.OpenExcel(args[0])
			if err != nil {
				log.Fatalf("Failed to open workbook: %v", err)
			}
			defer source.Close()

			pipeline := consolidate.NewPipeline(source)
			reg, report, err := pipeline.Run(debugFlag)
			if err != nil {
				log.Fatalf("Consolidation failed: %v", err)
			}

			snap := reg.Snapshot()
			if err := store.Save(outPath, snap); err != nil {
				log.Fatalf("Failed to save snapshot: %v", err)
			}

			fmt.Printf("Total Master Cases Created: %d\n", reg.Len())
			fmt.Printf("Sheets processed: %d, skipped: %d, failed: %d\n",
				report.SheetsProcessed, len(report.SheetsSkipped), len(report.Failures))
			fmt.Printf("Saved master object to %s\n", outPath)

			if toPostgres {
				conn, err := db.NewConnection()
				if err != nil {
					log.Fatalf("Failed to connect to database: %v", err)
				}
				defer conn.Close()

				if err := export.NewExporter(conn.DB).Export(debugFlag, snap); err != nil {
					log.Fatalf("Failed to export to Postgres: %v", err)
				}
				fmt.Println("Exported snapshot to Postgres")
			}
		},
	}

	cmd.Flags().StringVar(&outPath, "out", store.DefaultPath, "Snapshot output path")
	cmd.Flags().BoolVar(&toPostgres, "postgres", false, "Also export the snapshot to Postgres")
	return cmd
}

// createExploreCmd creates the interactive explorer subcommand
func createExploreCmd() *cobra.Command {
	var dataPath string

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Interactively search and browse consolidated cases",
		Run: func(cmd *cobra.Command, args []string) {
			snap, err := store.Load(dataPath)
			if err != nil {
				log.Fatalf("Failed to load snapshot (run ingest first): %v", err)
			}

			if err := explorer.New(snap).Run(); err != nil {
				log.Fatalf("Explorer failed: %v", err)
			}
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", store.DefaultPath, "Snapshot path")
	return cmd
}

// createServeCmd creates the dashboard API subcommand
func createServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard API over the case snapshot",
		Run: func(cmd *cobra.Command, args []string) {
			config := web.DefaultConfig()
			if configPath != "" {
				var err error
				config, err = web.LoadConfig(configPath)
				if err != nil {
					log.Fatalf("Failed to load config: %v", err)
				}
			}

			server, err := web.NewServer(config)
			if err != nil {
				log.Fatalf("Failed to create server: %v", err)
			}
			if err := server.Start(); err != nil {
				log.Fatalf("Server failed: %v", err)
			}
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "JSON config file (defaults used when omitted)")
	return cmd
}

// createStatsCmd creates the snapshot stats subcommand
func createStatsCmd() *cobra.Command {
	var dataPath string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print totals for a saved snapshot",
		Run: func(cmd *cobra.Command, args []string) {
			snap, err := store.Load(dataPath)
			if err != nil {
				log.Fatalf("Failed to load snapshot: %v", err)
			}

			searches, arrests, paos, pcs := 0, 0, 0, 0
			keys := make([]string, 0, len(snap))
			for key, c := range snap {
				keys = append(keys, key)
				searches += len(c.Searches)
				arrests += len(c.Arrests)
				paos += len(c.PAOs)
				pcs += len(c.PCs)
			}
			sort.Strings(keys)

			fmt.Printf("Cases: %d\n", len(snap))
			fmt.Printf("Searches: %d  Arrests: %d  PAOs: %d  PCs: %d\n", searches, arrests, paos, pcs)

			sample := keys
			if len(sample) > 5 {
				sample = sample[:5]
			}
			fmt.Println("Sample Cases:")
			for _, key := range sample {
				c := snap[key]
				fmt.Printf("  <ECIR: %s | Status: %s | Persons: %d>\n", c.ECIRNo, c.Status, len(c.PersonsInvolved))
			}
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", store.DefaultPath, "Snapshot path")
	return cmd
}

// createPingCmd creates a command to test database connectivity
func createPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test database connectivity",
		Run: func(cmd *cobra.Command, args []string) {
			conn, err := db.NewConnection()
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			defer conn.Close()

			fmt.Println("Database connection successful!")

			var count int
			if err := conn.DB.QueryRow("SELECT COUNT(*) FROM case_master").Scan(&count); err != nil {
				log.Printf("Error counting case_master records: %v", err)
			} else {
				fmt.Printf("Cases exported: %d\n", count)
			}

			if err := conn.DB.QueryRow("SELECT COUNT(*) FROM case_fact").Scan(&count); err != nil {
				log.Printf("Error counting case_fact records: %v", err)
			} else {
				fmt.Printf("Facts exported: %d\n", count)
			}
		},
	}
}
