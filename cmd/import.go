package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zmz-dd/kids-vocab-learning/internal/adapter/repository"
	"github.com/zmz-dd/kids-vocab-learning/internal/app"
	"github.com/zmz-dd/kids-vocab-learning/internal/bookimport"
	"github.com/zmz-dd/kids-vocab-learning/internal/infrastructure/config"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a vocabulary book from an xlsx or JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		bookID, _ := cmd.Flags().GetString("book")
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		sheet, _ := cmd.Flags().GetString("sheet")

		if input == "" || bookID == "" {
			return fmt.Errorf("--input and --book are required")
		}

		importCfg := bookimport.DefaultConfig(input, bookID)
		if title != "" {
			importCfg.Title = title
		}
		importCfg.Description = description
		if sheet != "" {
			importCfg.SheetName = sheet
		}

		book, result, err := bookimport.Load(importCfg)
		if err != nil {
			return fmt.Errorf("load book: %w", err)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		store, cleanup, err := app.NewStore(cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer cleanup()

		catalog := repository.NewCatalogRepository(store)
		if err := catalog.SaveBook(cmd.Context(), book); err != nil {
			return fmt.Errorf("save book: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "imported %d words into book %q (%d rows skipped)\n",
			result.Imported, book.ID, result.Skipped)
		for _, msg := range result.Errors {
			fmt.Fprintln(cmd.ErrOrStderr(), msg)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().String("input", "", "path to the xlsx or JSON book file")
	importCmd.Flags().String("book", "", "catalog id for the book")
	importCmd.Flags().String("title", "", "display title (defaults to the book id)")
	importCmd.Flags().String("description", "", "book description")
	importCmd.Flags().String("sheet", "", "sheet name for xlsx input")
}
