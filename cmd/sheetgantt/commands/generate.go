package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/sheetgantt/internal/app/generate"
	"github.com/slok/sheetgantt/internal/chart"
	"github.com/slok/sheetgantt/internal/printer"
	"github.com/slok/sheetgantt/internal/sheet"
)

type GenerateCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	source    taskSource
	output    string
	title     string
	sheetName string
	fontPath  string
	dpi       int
	format    string
}

// NewGenerateCommand returns the generate command, the default one.
func NewGenerateCommand(rootCmd *RootCommand, app *kingpin.Application) *GenerateCommand {
	c := &GenerateCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("generate", "Generate the spreadsheet report with the task table and the Gantt chart.").Default()
	c.source.registerFlags(c.Cmd)
	c.Cmd.Flag("output", "Output spreadsheet file.").Short('o').Default(generate.DefaultOutputPath).StringVar(&c.output)
	c.Cmd.Flag("title", "Chart title.").Default(chart.DefaultTitle).StringVar(&c.title)
	c.Cmd.Flag("sheet-name", "Report sheet name.").Default(sheet.DefaultSheetName).StringVar(&c.sheetName)
	c.Cmd.Flag("font", "TrueType/OpenType font file for the chart texts (e.g. a CJK font for non latin task names).").StringVar(&c.fontPath)
	c.Cmd.Flag("dpi", "Chart image resolution.").Default(fmt.Sprint(chart.DefaultDPI)).IntVar(&c.dpi)
	c.Cmd.Flag("format", "Output format (table, json).").Default(formatTable).EnumVar(&c.format, formatTable, formatJSON)

	return c
}

func (c GenerateCommand) Name() string { return c.Cmd.FullCommand() }

func (c GenerateCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	repo, closeRepo, err := c.source.newRepository(ctx, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeRepo(); err != nil {
			logger.Warningf("Could not close task repository: %s", err)
		}
	}()

	var fontData []byte
	if c.fontPath != "" {
		fontData, err = os.ReadFile(c.fontPath)
		if err != nil {
			return fmt.Errorf("could not read font file: %w", err)
		}
	}

	renderer, err := chart.NewGanttRenderer(chart.GanttRendererConfig{
		DPI:      c.dpi,
		FontData: fontData,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("could not create chart renderer: %w", err)
	}

	svc, err := generate.NewService(generate.ServiceConfig{
		Repository: repo,
		Renderer:   renderer,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	result, err := svc.Run(ctx, generate.Request{
		OutputPath: c.output,
		Title:      c.title,
		SheetName:  c.sheetName,
	})
	if err != nil {
		return fmt.Errorf("could not generate report: %w", err)
	}

	var p printer.Printer
	switch c.format {
	case formatJSON:
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default:
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	err = p.PrintReport(printer.ReportInfo{
		Report:    result.Report,
		Path:      result.Path,
		Tasks:     len(result.Tasks),
		SizeBytes: result.SizeBytes,
	})
	if err != nil {
		return fmt.Errorf("could not print report: %w", err)
	}

	return nil
}
