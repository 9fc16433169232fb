package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"scrapekit/internal/database"
	"scrapekit/internal/logger"
	"scrapekit/pkg/resource"
)

const maxLoaders = 4

func openService(cmd *cobra.Command) (*database.Service, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	dbPath := cfg.Database.Path
	if cmd.Flags().Changed("db") {
		if dbPath, err = cmd.Flags().GetString("db"); err != nil {
			return nil, nil, err
		}
	}

	db, err := database.NewDB(dbPath)
	if err != nil {
		return nil, nil, err
	}
	return database.NewService(db), func() { db.Close() }, nil
}

// NewImportCmd creates the command that copies bundled resources into SQLite.
func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <path>...",
		Short: "Import bundled CSV resources into the SQLite database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New("import")
			id := logger.GenerateID()

			svc, closeDB, err := openService(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			tables, err := loadTables(cmd.Context(), log, id, args)
			if err != nil {
				log.Error(id, "Loading resources failed: %v", err)
				return err
			}

			for i, p := range args {
				name := database.TableName(p)
				n, err := svc.ImportTable(cmd.Context(), name, p, tables[i])
				if err != nil {
					log.Error(id, "Import of %s failed: %v", p, err)
					return err
				}
				log.Info(id, "Imported %s into %s (%d rows)", p, name, n)
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%d rows)\n", p, name, n)
			}
			return nil
		},
	}

	cmd.Flags().String("db", "", "SQLite database file (overrides database.path)")

	return cmd
}

// loadTables reads every resource concurrently, keeping the order of paths.
func loadTables(ctx context.Context, log *logger.Logger, id string, paths []string) ([]*resource.Table, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	tables := make([]*resource.Table, len(paths))
	p := pool.New().WithMaxGoroutines(maxLoaders).WithContext(ctx).WithCancelOnError()
	for i, path := range paths {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			table, err := resource.Load(path)
			if err != nil {
				return err
			}
			log.Debug(id, "Loaded %s: %d rows in %v", path, table.Len(), time.Since(start))
			tables[i] = table
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// NewImportsCmd creates the command that lists imported resources.
func NewImportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imports",
		Short: "List resources imported into the SQLite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeDB, err := openService(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			imports, err := svc.ListImports(cmd.Context())
			if err != nil {
				return err
			}
			for _, imp := range imports {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-32s %6d  %s\n",
					imp.Name, imp.Path, imp.RowCount, imp.ImportedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}

	cmd.Flags().String("db", "", "SQLite database file (overrides database.path)")

	return cmd
}
