package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobscout/internal/ats"
	"github.com/jonathan/jobscout/internal/bias"
	"github.com/jonathan/jobscout/internal/ingestion"
	"github.com/jonathan/jobscout/internal/quality"
	"github.com/jonathan/jobscout/internal/scam"
	"github.com/jonathan/jobscout/internal/taxonomy"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run detectors against a job posting or resume",
}

var (
	analyzeTitle       string
	analyzeDescFile    string
	analyzeCompany     string
	analyzeEmailDomain string
	analyzeSalaryRange string
	analyzeLocation    string
	analyzeResumeFile  string
	analyzeIndustry    string
	analyzeRole        string
	analyzeYears       float64
)

var analyzeBiasCmd = &cobra.Command{
	Use:   "bias",
	Short: "Detect biased language in a job posting",
	RunE:  runAnalyzeBias,
}

var analyzeScamCmd = &cobra.Command{
	Use:   "scam",
	Short: "Detect scam signals in a job posting",
	RunE:  runAnalyzeScam,
}

var analyzeJobCmd = &cobra.Command{
	Use:   "job",
	Short: "Score the overall quality of a job posting",
	RunE:  runAnalyzeJob,
}

var analyzeResumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Score the overall quality of a resume",
	RunE:  runAnalyzeResume,
}

var analyzeATSCmd = &cobra.Command{
	Use:   "ats",
	Short: "Estimate how a resume fares against applicant tracking systems",
	RunE:  runAnalyzeATS,
}

func init() {
	analyzeCmd.PersistentFlags().StringVarP(&analyzeTitle, "title", "t", "", "Job title")
	analyzeCmd.PersistentFlags().StringVarP(&analyzeDescFile, "description", "d", "", "Path to job description text file")
	analyzeCmd.PersistentFlags().StringVar(&analyzeCompany, "company", "", "Company name")

	analyzeScamCmd.Flags().StringVar(&analyzeEmailDomain, "email-domain", "", "Recruiter email domain")

	analyzeJobCmd.Flags().StringVar(&analyzeSalaryRange, "salary-range", "", "Advertised salary range")
	analyzeJobCmd.Flags().StringVar(&analyzeLocation, "location", "", "Job location")

	analyzeResumeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume file")
	analyzeResumeCmd.Flags().StringVar(&analyzeIndustry, "industry", "", "Target industry")
	analyzeResumeCmd.Flags().StringVar(&analyzeRole, "role", "", "Target role")
	_ = analyzeResumeCmd.MarkFlagRequired("resume")

	analyzeATSCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume file")
	analyzeATSCmd.Flags().StringVar(&analyzeIndustry, "industry", "", "Target industry")
	analyzeATSCmd.Flags().Float64Var(&analyzeYears, "years-experience", 0, "Candidate's total years of experience")
	_ = analyzeATSCmd.MarkFlagRequired("resume")

	analyzeCmd.AddCommand(analyzeBiasCmd, analyzeScamCmd, analyzeJobCmd, analyzeResumeCmd, analyzeATSCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func requireDescription() (string, error) {
	if analyzeDescFile == "" {
		return "", fmt.Errorf("--description is required")
	}
	return readText(analyzeDescFile)
}

func runAnalyzeBias(cmd *cobra.Command, args []string) error {
	description, err := requireDescription()
	if err != nil {
		return err
	}

	result, err := bias.NewDetector().DetectBias(analyzeTitle, description, analyzeCompany)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runAnalyzeScam(cmd *cobra.Command, args []string) error {
	description, err := requireDescription()
	if err != nil {
		return err
	}

	result, err := scam.NewDetector().DetectScam(analyzeTitle, description, analyzeCompany, analyzeEmailDomain)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runAnalyzeJob(cmd *cobra.Command, args []string) error {
	description, err := requireDescription()
	if err != nil {
		return err
	}

	result, err := quality.NewJobDetector().Analyze(quality.JobInput{
		Title:       analyzeTitle,
		Company:     analyzeCompany,
		Description: description,
		SalaryRange: analyzeSalaryRange,
		Location:    analyzeLocation,
	})
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runAnalyzeResume(cmd *cobra.Command, args []string) error {
	text, meta, err := ingestion.LoadResume(analyzeResumeFile, nil)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Printf("Loaded %s: %d words, %d lines\n", meta.Path, meta.Words, meta.Lines)
	}

	result, err := quality.NewResumeDetector().Analyze(text, analyzeIndustry, analyzeRole)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runAnalyzeATS(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := []ats.Option{
		ats.WithResumeLoader(func(path string) (string, error) {
			text, _, err := ingestion.LoadResume(path, nil)
			return text, err
		}),
	}
	if cfg.TaxonomyPath != "" {
		tax, err := taxonomy.Load(cfg.TaxonomyPath)
		if err != nil {
			return err
		}
		opts = append(opts, ats.WithTaxonomy(tax))
	}

	req := ats.Request{
		ResumePath: analyzeResumeFile,
		Industry:   analyzeIndustry,
	}
	if analyzeDescFile != "" {
		description, err := readText(analyzeDescFile)
		if err != nil {
			return err
		}
		req.JobDescription = description
	}
	if cmd.Flags().Changed("years-experience") {
		years := analyzeYears
		req.ExtractedYears = &years
	}

	result, err := ats.NewAnalyzer(opts...).Analyze(req)
	if err != nil {
		return err
	}
	return printJSON(result)
}
