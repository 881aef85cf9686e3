// Package main provides the amcli CLI tool for importing Adobe Creative
// Cloud packages into a munki repository.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/adobe-munki/pkg/adobe"
	"github.com/jaspreet-dot-casa/adobe-munki/pkg/config"
	"github.com/jaspreet-dot-casa/adobe-munki/pkg/munki"
)

// version is set via -ldflags during build
var version = "dev"

func main() {
	rootCmd := newRootCmd()

	// Cobra handles error printing
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for amcli
func newRootCmd() *cobra.Command {
	var (
		configFile string
		flags      config.Config
	)

	rootCmd := &cobra.Command{
		Use:   "amcli",
		Short: "Adobe Creative Cloud munki importer",
		Long: `amcli bulk-imports Adobe Creative Cloud installer packages into a munki
repository.

It scans a directory of unzipped Adobe Admin Console downloads, reads each
package's own descriptor files for product name, version and SAP code, and
runs munkiimport per package with configurable metadata overrides. A dry
run prints the munkiimport commands instead of executing them.`,
		Version: version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.ListSAPCodes {
				adobe.WriteSAPCodes(cmd.OutOrStdout())
				return nil
			}
			if flags.ListLocales {
				adobe.WriteLocales(cmd.OutOrStdout())
				return nil
			}

			cfg, err := resolveConfig(flags, configFile)
			if err != nil {
				return err
			}

			return runImport(cmd, cfg)
		},
	}

	rootCmd.Flags().StringVar(&flags.AdobeDir, "adobe-dir", "", "directory containing unzipped Adobe installers")
	rootCmd.Flags().StringVar(&flags.Locale, "locale", "", fmt.Sprintf("override the default locale %q for all packages processed", config.DefaultLocale))
	rootCmd.Flags().StringVar(&flags.Category, "category", "", fmt.Sprintf("override the default category %q for all packages processed", config.DefaultCategory))
	rootCmd.Flags().StringVar(&flags.Catalog, "catalog", "", fmt.Sprintf("override the default catalog %q for all packages processed", config.DefaultCatalog))
	rootCmd.Flags().StringVar(&flags.Developer, "developer", "", fmt.Sprintf("override the default developer %q for all packages processed", config.DefaultDeveloper))
	rootCmd.Flags().StringVar(&flags.MunkiRepo, "munki-repo", "", fmt.Sprintf("override or use a custom munki repo path, defaults to %q", config.DefaultMunkiRepo))
	rootCmd.Flags().StringVar(&flags.MunkiSubdir, "munki-subdir", "", fmt.Sprintf("override the default package directory %q for all packages processed", config.DefaultMunkiSubdir))
	rootCmd.Flags().StringVar(&flags.MinMunkiVersion, "min-munki-version", "", fmt.Sprintf("override the default minimum version of munki %q for all packages processed", config.DefaultMinMunkiVersion))
	rootCmd.Flags().StringVar(&flags.MinOSVersion, "min-os-ver", "", "override the minimum macOS version for all packages processed")
	rootCmd.Flags().StringVar(&flags.Suffix, "suffix", "", fmt.Sprintf("override the default display name suffix %q for all packages processed", config.DefaultSuffix))
	rootCmd.Flags().StringSliceVar(&flags.ImportSAPCodes, "import-sap-code", nil, "import specific Adobe products by SAP code, use --list-sap-codes to view codes")
	rootCmd.Flags().BoolVar(&flags.ListSAPCodes, "list-sap-codes", false, "list Adobe products SAP codes")
	rootCmd.Flags().BoolVar(&flags.ListLocales, "list-locales", false, "list supported locale codes")
	rootCmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "n", false, "performs a dry run (outputs import commands to stdout)")
	rootCmd.Flags().StringVar(&configFile, "config", "", "path to an amcli config file (defaults to ~/.config/amcli/config.yaml)")

	return rootCmd
}

// resolveConfig layers the run configuration: flags over the config file
// over the munkiimport preferences (repo only) over the built-in defaults.
func resolveConfig(flags config.Config, configFile string) (config.Config, error) {
	file, err := config.LoadFile(configFile)
	if err != nil {
		return config.Config{}, err
	}

	pick := func(flag, fileVal, def string) string {
		if flag != "" {
			return flag
		}
		if fileVal != "" {
			return fileVal
		}
		return def
	}

	cfg := config.Config{
		AdobeDir:        flags.AdobeDir,
		Locale:          pick(flags.Locale, file.Locale, config.DefaultLocale),
		Category:        pick(flags.Category, file.Category, config.DefaultCategory),
		Catalog:         pick(flags.Catalog, file.Catalog, config.DefaultCatalog),
		Developer:       pick(flags.Developer, file.Developer, config.DefaultDeveloper),
		MunkiSubdir:     pick(flags.MunkiSubdir, file.MunkiSubdir, config.DefaultMunkiSubdir),
		MinMunkiVersion: pick(flags.MinMunkiVersion, file.MinMunkiVersion, config.DefaultMinMunkiVersion),
		MinOSVersion:    pick(flags.MinOSVersion, file.MinOSVersion, ""),
		Suffix:          pick(flags.Suffix, file.Suffix, config.DefaultSuffix),
		ImportSAPCodes:  flags.ImportSAPCodes,
		DryRun:          flags.DryRun,
	}

	// The munki repo falls back to the workstation's own munkiimport
	// preferences before the built-in default.
	cfg.MunkiRepo = pick(flags.MunkiRepo, file.MunkiRepo, "")
	if cfg.MunkiRepo == "" {
		prefs, err := munki.LoadPreferences()
		if err != nil {
			return config.Config{}, err
		}
		cfg.MunkiRepo = prefs.RepoURL
	}

	if !adobe.IsSupportedLocale(cfg.Locale) {
		return config.Config{}, fmt.Errorf("unsupported locale %q, use --list-locales to view codes", cfg.Locale)
	}

	for _, code := range cfg.ImportSAPCodes {
		if !adobe.IsValidSAPCode(code) {
			return config.Config{}, fmt.Errorf("unknown SAP code %q, use --list-sap-codes to view codes", code)
		}
	}

	if err := cfg.ValidateAdobeDir(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
