package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/adobe-munki/pkg/adobe"
	"github.com/jaspreet-dot-casa/adobe-munki/pkg/command"
	"github.com/jaspreet-dot-casa/adobe-munki/pkg/config"
	"github.com/jaspreet-dot-casa/adobe-munki/pkg/munki"
	"github.com/jaspreet-dot-casa/adobe-munki/pkg/ui"
)

// runImport drives the scan/import loop: discover packages under the
// configured directory, build an import record per package and run
// munkiimport for each. Per-package failures are reported and the loop
// continues.
func runImport(cmd *cobra.Command, cfg config.Config) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	exec := &command.RealExecutor{}

	prefs, err := munki.LoadPreferences()
	if err != nil {
		return err
	}

	inventory, err := munki.ExistingPkginfos(cfg.MunkiRepo, prefs.PkginfoExtension)
	if err != nil {
		fmt.Fprintln(errOut, ui.WarningStyle.Render(fmt.Sprintf("Could not read existing pkginfo files: %v", err)))
	}

	scanner := &adobe.Scanner{
		Exec:     exec,
		SAPCodes: cfg.ImportSAPCodes,
		Warnf: func(format string, args ...any) {
			fmt.Fprintln(errOut, ui.WarningStyle.Render(fmt.Sprintf(format, args...)))
		},
	}

	importer := &munki.Importer{
		Exec:   exec,
		DryRun: cfg.DryRun,
		Out:    out,
	}

	// A dry run never touches the munki tools, so only a live run needs
	// them installed.
	if !cfg.DryRun {
		if err := importer.CheckTools(); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, ui.TitleStyle.Render(fmt.Sprintf("Gathering Adobe installer attributes from packages in %q ...", cfg.AdobeDir)))
	if cfg.DryRun {
		fmt.Fprintln(out, ui.SubtitleStyle.Render("  Note: basename values are used in the dry run output for brevity."))
	}

	imported := 0

	for pkg := range scanner.Discover(ctx, cfg.AdobeDir) {
		rec := munki.NewImportRecord(pkg, cfg)

		if munki.AlreadyImported(inventory, rec) {
			fmt.Fprintln(out, ui.InfoStyle.Render(fmt.Sprintf(
				"Skipping %q, it appears to have previously been imported (existing pkginfo: %q)",
				rec.Name, rec.PkginfoName())))
			continue
		}

		pkginfoPath, err := importer.Import(ctx, rec)
		if err != nil {
			fmt.Fprintln(errOut, ui.ErrorStyle.Render(err.Error()))
			continue
		}

		if pkginfoPath != "" && len(rec.Receipts) > 0 {
			if err := munki.UpdateReceipts(pkginfoPath, rec.Receipts); err != nil {
				fmt.Fprintln(errOut, ui.ErrorStyle.Render(err.Error()))
			} else {
				fmt.Fprintf(out, "Updated pkginfo %q\n", pkginfoPath)
			}
		}

		if err := munki.InstallIcon(ctx, exec, pkg, cfg.MunkiRepo, cfg.DryRun, out); err != nil {
			fmt.Fprintln(errOut, ui.WarningStyle.Render(fmt.Sprintf("Could not install icon for %q: %v", rec.Name, err)))
		}

		if !cfg.DryRun {
			imported++
		}
	}

	if imported > 0 && !cfg.DryRun {
		if err := importer.Makecatalogs(ctx, cfg.MunkiRepo); err != nil {
			fmt.Fprintln(errOut, ui.ErrorStyle.Render(err.Error()))
		}
		fmt.Fprintln(out, ui.SuccessStyle.Render(fmt.Sprintf("Imported %d package(s)", imported)))
	}

	return nil
}
