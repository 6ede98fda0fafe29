package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/amterp/ra"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/logger"
	"github.com/amterp/swatch/internal/service"
)

func registerDoctor(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("doctor")
	cmd.SetDescription("Check catalogs for consistency issues. Exit 0 if healthy, 1 if errors found.")

	ctx.DoctorFix, _ = ra.NewBool("fix").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Apply automatic fixes for issues with deterministic solutions").
		Register(cmd)

	ctx.DoctorDryRun, _ = ra.NewBool("dry-run").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Show what fixes would be applied without making changes").
		Register(cmd)

	ctx.DoctorCatalog, _ = ra.NewString("catalog").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Check only a specific catalog (default: all)").
		SetCompletionFunc(completeCatalogs).
		Register(cmd)

	ctx.DoctorUsed, _ = parent.RegisterCmd(cmd)
}

func runDoctor(catalogName string, fix bool, dryRun bool, g globalFlags) {
	if fix && dryRun {
		Fatal(fmt.Errorf("--fix and --dry-run cannot be used together"))
	}

	app := mustApp(g)
	if catalogName != "" && !app.CatalogStore.Exists(catalogName) {
		Fatal(swerr.CatalogNotFound(catalogName))
	}

	report, err := app.DoctorService.Diagnose(catalogName)
	if err != nil {
		Fatal(err)
	}
	if fix && len(report.Issues) > 0 {
		if report, err = app.DoctorService.Fix(report); err != nil {
			Fatal(err)
		}
	}
	logger.Debug("doctor", "catalog", catalogName, "errors", report.Summary.Errors,
		"warnings", report.Summary.Warnings, "fixed", report.Summary.Fixed)

	if g.json {
		if err := printJson(report); err != nil {
			Fatal(err)
		}
	} else {
		printDoctorReport(report, fix, dryRun)
	}

	if report.HasErrors() {
		os.Exit(1)
	}
}

// printDoctorReport prints one block per catalog (its health line followed
// by its issues), global config issues, then a one-line tally.
func printDoctorReport(report *service.DiagnosticReport, fixed, dryRun bool) {
	if len(report.Catalogs) == 0 {
		PrintInfo("No catalogs found (run 'swatch init')")
		return
	}

	for _, cat := range report.Catalogs {
		issues := report.IssuesFor(cat.Name)
		fmt.Printf("%s %s  %s\n", healthIcon(issues), RenderBold(cat.Name),
			RenderMuted(fmt.Sprintf("%d palettes, %d colors  %s", cat.Palettes, cat.Colors, cat.Path)))
		for _, issue := range issues {
			printIssue(issue)
		}
	}
	if global := report.IssuesFor(""); len(global) > 0 {
		fmt.Printf("%s %s\n", healthIcon(global), RenderBold("config.toml"))
		for _, issue := range global {
			printIssue(issue)
		}
	}

	fmt.Println()
	fmt.Println(doctorTally(report))

	switch fixable := report.Fixable(); {
	case fixed || fixable == 0:
	case dryRun:
		PrintInfo("%d issue(s) would be fixed by 'swatch doctor --fix'", fixable)
	default:
		PrintInfo("%d issue(s) can be fixed with 'swatch doctor --fix'", fixable)
	}
}

func healthIcon(issues []service.Issue) string {
	switch {
	case len(issues) == 0:
		return StyleSuccess.Render(IconSuccess)
	case issues[0].Severity == service.SeverityError:
		return StyleError.Render(IconError)
	default:
		return StyleWarning.Render(IconWarning)
	}
}

// doctorTally renders the summary counts, e.g. "2 errors · 1 warning · 3 fixed".
func doctorTally(report *service.DiagnosticReport) string {
	sum := report.Summary
	if sum.Errors == 0 && sum.Warnings == 0 && sum.Fixed == 0 {
		return StyleSuccess.Render("All catalogs healthy")
	}
	var parts []string
	if sum.Errors > 0 {
		parts = append(parts, StyleError.Render(plural(sum.Errors, "error")))
	}
	if sum.Warnings > 0 {
		parts = append(parts, StyleWarning.Render(plural(sum.Warnings, "warning")))
	}
	if sum.Fixed > 0 {
		parts = append(parts, StyleSuccess.Render(fmt.Sprintf("%d fixed", sum.Fixed)))
	}
	if sum.FixFailed > 0 {
		parts = append(parts, StyleError.Render(fmt.Sprintf("%d could not be fixed", sum.FixFailed)))
	}
	return strings.Join(parts, RenderMuted(" · "))
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// printIssue prints an indented issue line under its catalog, with the
// palette it concerns and any suggested fix.
func printIssue(issue service.Issue) {
	style := StyleWarning
	if issue.Severity == service.SeverityError {
		style = StyleError
	}

	subject := ""
	if issue.Palette != "" {
		subject = RenderID(issue.Palette) + ": "
	}
	fmt.Printf("    %s %s%s\n", style.Render(issue.Code), subject, issue.Message)

	switch {
	case issue.FixError != "":
		fmt.Printf("      %s\n", StyleError.Render("fix failed: "+issue.FixError))
	case issue.FixAction != "" && issue.Fixable:
		fmt.Printf("      %s\n", RenderMuted("fixable: "+issue.FixAction))
	case issue.FixAction != "":
		fmt.Printf("      %s\n", RenderMuted(issue.FixAction))
	}
}
