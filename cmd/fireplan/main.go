package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fireplan/fire-calculator/internal/calculation"
	"github.com/fireplan/fire-calculator/internal/compare"
	"github.com/fireplan/fire-calculator/internal/config"
	"github.com/fireplan/fire-calculator/internal/domain"
	"github.com/fireplan/fire-calculator/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "fireplan %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// fileExists checks if a file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

// loadRegulatory resolves tax rules from a flag, an auto-detected
// regulatory.yaml, or the built-in defaults, in that order.
func loadRegulatory(cmd *cobra.Command) *domain.RegulatoryConfig {
	regulatoryFile, _ := cmd.Flags().GetString("regulatory-config")
	if regulatoryFile == "" && fileExists("regulatory.yaml") {
		regulatoryFile = "regulatory.yaml"
	}
	if regulatoryFile != "" {
		reg, err := config.LoadRegulatoryFromFile(regulatoryFile)
		if err != nil {
			fmt.Printf("Failed to load regulatory config from %s: %v\n", regulatoryFile, err)
			fmt.Printf("Falling back to built-in 2025 tax rules...\n")
			return config.DefaultRegulatory2025()
		}
		return reg
	}
	return config.DefaultRegulatory2025()
}

var rootCmd = &cobra.Command{
	Use:   "fireplan",
	Short: "FIRE Financial Planner CLI",
	Long:  "Tax-aware savings and financial independence planner with graduated FI milestone tracking",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Run the tax and FI projection for a plan",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewEngine(loadRegulatory(cmd))
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			engine.SetLogger(simpleCLILogger{})
		}
		engine.Debug = debugMode

		summary, err := engine.RunPlan(input)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		saveToFile, _ := cmd.Flags().GetBool("save")

		formatter := output.GetFormatterByName(outputFormat)
		if formatter == nil {
			log.Fatalf("Unknown output format: %s (valid: %s)",
				outputFormat, strings.Join(output.AvailableFormatterNames(), ", "))
		}

		if saveToFile {
			ext := formatter.Name()
			if ext == "console" {
				ext = "txt"
			}
			filename, err := output.WriteFormatted(formatter, summary, ext)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Report written to %s\n", filename)
			return
		}

		data, err := formatter.Format(summary)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a plan configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		_, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Configuration file %s is valid\n", inputFile)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare elected contributions against a no-contribution baseline",
	Long: `Compare the plan's tax and savings picture against the same income with
no contributions elected.

Examples:
  ./fireplan compare plan.yaml
  ./fireplan compare plan.yaml --format csv
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewEngine(loadRegulatory(cmd))
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			engine.SetLogger(simpleCLILogger{})
			engine.Debug = true
		}

		compareEngine := compare.NewEngine(engine)
		impactSet, err := compareEngine.Compare(input)
		if err != nil {
			log.Fatalf("Comparison failed: %v", err)
		}
		impactSet.ConfigPath = inputFile

		outputFormat, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(outputFormat) {
		case "csv":
			formatter := &compare.CSVFormatter{}
			out, err := formatter.Format(impactSet)
			if err != nil {
				log.Fatalf("Failed to format CSV: %v", err)
			}
			fmt.Print(out)

		case "json":
			formatter := &compare.JSONFormatter{Pretty: true}
			out, err := formatter.Format(impactSet)
			if err != nil {
				log.Fatalf("Failed to format JSON: %v", err)
			}
			fmt.Print(out)

		case "table", "console", "":
			formatter := &compare.TableFormatter{}
			fmt.Print(formatter.Format(impactSet))

		default:
			log.Fatalf("Unknown output format: %s (valid: table, csv, json)", outputFormat)
		}
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example [output-file]",
	Short: "Write a template plan configuration file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		outputFile := "plan.yaml"
		if len(args) > 0 {
			outputFile = args[0]
		}
		if fileExists(outputFile) {
			log.Fatalf("refusing to overwrite existing file %s", outputFile)
		}
		if err := config.SaveInput(config.ExampleInput(), outputFile); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Example configuration written to %s\n", outputFile)
	},
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, html, json, csv)")
	calculateCmd.Flags().BoolP("save", "s", false, "Write report to a timestamped file instead of stdout")
	calculateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	calculateCmd.Flags().String("regulatory-config", "", "Path to regulatory config file (default: regulatory.yaml if it exists)")

	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	compareCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	compareCmd.Flags().String("regulatory-config", "", "Path to regulatory config file (default: regulatory.yaml if it exists)")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
