package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobscout/internal/db"
	"github.com/jonathan/jobscout/internal/fetch"
	"github.com/jonathan/jobscout/internal/types"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch a job posting URL and optionally store it",
	RunE:  runIngest,
}

var (
	ingestURL      string
	ingestTitle    string
	ingestCompany  string
	ingestLocation string
	ingestSave     bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "Job posting URL")
	ingestCmd.Flags().StringVarP(&ingestTitle, "title", "t", "", "Job title")
	ingestCmd.Flags().StringVar(&ingestCompany, "company", "", "Company name")
	ingestCmd.Flags().StringVar(&ingestLocation, "location", "", "Job location")
	ingestCmd.Flags().BoolVar(&ingestSave, "save", false, "Save the posting to the job store")
	_ = ingestCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := fetch.DefaultOptions()
	opts.UseBrowser = cfg.UseBrowser
	opts.Verbose = verbose

	ctx := cmd.Context()
	result, err := fetch.Posting(ctx, ingestURL, opts)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Fetched %d bytes from %s (platform %s, browser=%v)\n",
			len(result.HTML), result.URL, result.Platform, result.UsedBrowser)
	}

	job := &types.Job{
		Title:       ingestTitle,
		Company:     ingestCompany,
		Location:    ingestLocation,
		Description: result.Text,
		URL:         ingestURL,
		Source:      result.Platform.Source(),
	}

	if ingestSave {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("--save requires database_url in the config file")
		}
		store, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer store.Close()

		saved, err := store.SaveJob(ctx, job)
		if err != nil {
			return err
		}
		return printJSON(saved)
	}

	return printJSON(job)
}
