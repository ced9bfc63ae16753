// Package cmd implements the achfile command line tool: inspection,
// normalization, and export of NACHA ACH files.
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paynearme/ach"
)

var (
	cfgFile string
	verbose bool
	version = "dev"
	commit  = "unknown"
	date    = "unknown"

	log = logrus.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "achfile",
	Short: "NACHA ACH file tool",
	Long: `Achfile is a command-line tool for working with NACHA ACH
electronic-payment files. It parses plain or compressed (.gz, .bz2, .xz,
.zst) files, rederives control totals, and exports entries for analysis.

Examples:
  achfile report payments.ach
  achfile normalize response.nacha.gz
  achfile export payments.ach --format xlsx --output payments.xlsx`,
	Version: getVersionString(),
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding flag: %s\n", err)
		os.Exit(1)
	}

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{})
}

// initConfig reads in config file and ENV variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
			os.Exit(1)
		}
	}

	viper.SetEnvPrefix("ACHFILE")
	viper.AutomaticEnv()

	if viper.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}
}

// loadFile opens path, detects its encoding from the suffix, and parses
// it as a NACHA file.
func loadFile(path string) (*ach.File, error) {
	fileType := ach.DetectFileType(path)
	if fileType == ach.Unsupported {
		return nil, fmt.Errorf("unsupported file type for %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	file, err := ach.Read(f, fileType)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	log.WithFields(logrus.Fields{
		"file":    path,
		"type":    fileType.String(),
		"batches": len(file.Batches),
		"entries": file.Control.EntryCount,
	}).Debug("parsed NACHA file")

	return file, nil
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = getVersionString()
}

func getVersionString() string {
	if version == "dev" {
		return fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	}
	return version
}
