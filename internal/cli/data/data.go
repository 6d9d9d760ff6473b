package data

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/export"
	"github.com/julianstephens/wellhub/internal/notifier"
)

type ExportCmd struct {
	Path   string `arg:"" optional:"" help:"Output file. Omit or use '-' for stdout."`
	Format string `help:"Output format (yaml or json). Defaults to the file extension, then yaml." enum:",yaml,json" default:""`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	format := resolveFormat(c.Format, c.Path)

	var w io.Writer = ctx.Writer()
	if c.Path != "" && c.Path != "-" {
		f, err := os.OpenFile(c.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	n, err := export.Write(ctx.Store, w, format, ctx.Records().Now())
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if w != ctx.Writer() {
		ctx.Notify(notifier.Success(fmt.Sprintf("Exported %d document(s) to %s", n, c.Path)))
	}
	return nil
}

type ImportCmd struct {
	Path    string `arg:"" help:"Export file to import. Use '-' for stdin."`
	Format  string `help:"Input format (yaml or json). Defaults to the file extension, then yaml." enum:",yaml,json" default:""`
	Replace bool   `help:"Remove wellhub data missing from the import instead of keeping it."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	format := resolveFormat(c.Format, c.Path)

	var r io.Reader = ctx.Reader()
	if c.Path != "-" {
		f, err := os.Open(c.Path)
		if err != nil {
			return fmt.Errorf("failed to open import file: %w", err)
		}
		defer f.Close()
		r = f
	}

	ctx.PerformAutomaticBackup()

	keys, err := export.Read(ctx.Store, r, format, export.ImportOptions{Replace: c.Replace})
	if err != nil {
		return ctx.Reject("import failed", err)
	}
	ctx.Notify(notifier.Success(fmt.Sprintf("Imported %d document(s)", len(keys))))
	return nil
}

func resolveFormat(flag, path string) export.Format {
	if flag != "" {
		return export.Format(flag)
	}
	return export.FormatFromPath(path)
}
