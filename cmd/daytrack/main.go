package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"daytrack/internal/bootstrap"
	exchangedto "daytrack/internal/modules/exchange/dto"
	recorddomain "daytrack/internal/modules/record/domain"
	recorddto "daytrack/internal/modules/record/dto"
	"daytrack/internal/platform/config"
	"daytrack/internal/platform/logging"
	"daytrack/internal/platform/parse"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	dbPath     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "daytrack",
		Short:         "Personal daily metrics tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.daytrack/config.yaml)")
	root.PersistentFlags().StringVar(&flags.dbPath, "db", "", "database file (overrides config)")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "verbose logging")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newRecordCmd(flags))
	root.AddCommand(newImportCmd(flags))
	root.AddCommand(newExportCmd(flags))
	root.AddCommand(newTemplateCmd(flags))
	root.AddCommand(newChartCmd(flags))
	root.AddCommand(newConvertSleepCmd(flags))
	return root
}

func loadApp(flags *rootFlags) (*bootstrap.App, *zap.Logger, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, nil, err
	}
	if flags.dbPath != "" {
		cfg.DBPath = flags.dbPath
	}
	log, err := logging.New(flags.verbose)
	if err != nil {
		return nil, nil, err
	}
	app, err := bootstrap.New(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return app, log, nil
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the daytrack terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, log, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			return bootstrap.RunTUI(app)
		},
	}
}

func newRecordCmd(flags *rootFlags) *cobra.Command {
	record := &cobra.Command{Use: "record", Short: "Manage daily records"}

	var date, sleep, note string
	var weight float64
	var rating, steps, calories int

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add or replace the record for a date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, log, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			day, err := parse.Date(date)
			if err != nil {
				return fmt.Errorf("date must be YYYY-MM-DD: %q", date)
			}

			var fields recorddto.FieldsInput
			if cmd.Flags().Changed("sleep") {
				value, ok := parse.SleepTime(sleep)
				if !ok {
					return fmt.Errorf("sleep must be HH:MM or HH:MM:SS: %q", sleep)
				}
				fields.SleepTime = value
			}
			if cmd.Flags().Changed("weight") {
				fields.Weight = &weight
			}
			if cmd.Flags().Changed("rating") {
				fields.Rating = &rating
				if err := recorddomain.ValidateRating(fields.Rating); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("steps") {
				fields.Steps = &steps
			}
			if cmd.Flags().Changed("calories") {
				fields.CaloriesIntake = &calories
			}
			if cmd.Flags().Changed("note") {
				fields.Note = parse.OptionalText(note)
			}

			out, err := app.RecordCLI.Upsert(context.Background(), day, fields)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s (id=%d)\n", out.Date.Format(parse.DateLayout), out.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&date, "date", time.Now().Format(parse.DateLayout), "record date")
	addCmd.Flags().StringVar(&sleep, "sleep", "", "bedtime, HH:MM or HH:MM:SS")
	addCmd.Flags().Float64Var(&weight, "weight", 0, "weight in kg")
	addCmd.Flags().IntVar(&rating, "rating", 0, "day rating, 1-10")
	addCmd.Flags().IntVar(&steps, "steps", 0, "step count")
	addCmd.Flags().IntVar(&calories, "calories", 0, "calorie intake")
	addCmd.Flags().StringVar(&note, "note", "", "free-form note")

	showCmd := &cobra.Command{
		Use:   "show <date>",
		Short: "Show the record for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, log, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			day, err := parse.Date(args[0])
			if err != nil {
				return fmt.Errorf("date must be YYYY-MM-DD: %q", args[0])
			}
			out, err := app.RecordCLI.GetByDate(context.Background(), day)
			if err != nil {
				return err
			}
			printRecord(cmd, out)
			return nil
		},
	}

	var descending bool
	var year, month int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List records, optionally narrowed to a year or month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, log, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx := context.Background()
			var records []recorddto.RecordOutput
			if year > 0 {
				records, err = app.RecordCLI.ListYearMonth(ctx, year, month)
			} else {
				records, err = app.RecordCLI.List(ctx, descending)
			}
			if err != nil {
				return err
			}
			for _, r := range records {
				printRecordLine(cmd, r)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d record(s)\n", len(records))
			return nil
		},
	}
	listCmd.Flags().BoolVar(&descending, "desc", false, "newest first")
	listCmd.Flags().IntVar(&year, "year", 0, "narrow to a year")
	listCmd.Flags().IntVar(&month, "month", 0, "narrow to a month, requires --year")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, log, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			var id int64
			if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
				return fmt.Errorf("id must be an integer: %q", args[0])
			}
			if err := app.RecordCLI.Delete(context.Background(), id); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted record %d\n", id)
			return nil
		},
	}

	record.AddCommand(addCmd, showCmd, listCmd, deleteCmd)
	return record
}

func newImportCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import records from a template or full-export CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, log, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = file.Close() }()

			report, err := app.ExchangeCLI.ImportCSV(context.Background(), file)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d record(s), %d failed\n", report.Imported, report.Failed)
			return nil
		},
	}
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	export := &cobra.Command{Use: "export", Short: "Export records"}

	var out, mode, start, end string
	var year int

	buildSelection := func() (exchangedto.Selection, error) {
		selection := exchangedto.Selection{Mode: mode, Year: year}
		if mode == exchangedto.ModeRange {
			var err error
			if selection.Start, err = parse.Date(start); err != nil {
				return selection, fmt.Errorf("start must be YYYY-MM-DD: %q", start)
			}
			if selection.End, err = parse.Date(end); err != nil {
				return selection, fmt.Errorf("end must be YYYY-MM-DD: %q", end)
			}
		}
		return selection, nil
	}

	run := func(format string) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			app, log, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			selection, err := buildSelection()
			if err != nil {
				return err
			}
			file, err := os.Create(out)
			if err != nil {
				return err
			}
			defer func() { _ = file.Close() }()

			var count int
			if format == "csv" {
				count, err = app.ExchangeCLI.ExportCSV(context.Background(), file, selection)
			} else {
				count, err = app.ExchangeCLI.ExportJSON(context.Background(), file, selection)
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d record(s) to %s\n", count, out)
			return nil
		}
	}

	csvCmd := &cobra.Command{Use: "csv", Short: "Export as CSV", RunE: run("csv")}
	jsonCmd := &cobra.Command{Use: "json", Short: "Export as JSON", RunE: run("json")}
	for _, sub := range []*cobra.Command{csvCmd, jsonCmd} {
		sub.Flags().StringVarP(&out, "out", "o", "", "output file")
		sub.Flags().StringVar(&mode, "mode", exchangedto.ModeAll, "scope: all|year|range")
		sub.Flags().IntVar(&year, "year", 0, "year for --mode year")
		sub.Flags().StringVar(&start, "start", "", "start date for --mode range")
		sub.Flags().StringVar(&end, "end", "", "end date for --mode range")
		_ = sub.MarkFlagRequired("out")
	}

	export.AddCommand(csvCmd, jsonCmd)
	return export
}

func newTemplateCmd(flags *rootFlags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write the import-template CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, log, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			content := app.ExchangeCLI.TemplateCSV()
			if out == "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}
			if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "template written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newChartCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "chart [metric]",
		Short: "Print the series and axis plan for a metric",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, log, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			metric := app.DefaultMetric
			if len(args) == 1 {
				metric = args[0]
			}
			chart, err := app.ChartCLI.Render(context.Background(), metric)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if chart.NoData {
				_, _ = fmt.Fprintf(w, "%s: no data\n", chart.Title)
				return nil
			}
			_, _ = fmt.Fprintf(w, "%s (%d points)\n", chart.Title, len(chart.Points))
			for _, p := range chart.Points {
				_, _ = fmt.Fprintf(w, "  %s  %.2f\n", p.Date.Format(parse.DateLayout), p.Value)
			}
			_, _ = fmt.Fprintf(w, "axis: every %d %s(s), labels %q rotated %d°, %d major / %d minor ticks\n",
				chart.MajorInterval, chart.MajorUnit, chart.LabelFormat,
				chart.LabelRotation, len(chart.MajorTicks), len(chart.MinorTicks))
			return nil
		},
	}
}

func newConvertSleepCmd(flags *rootFlags) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "convert-sleep <in.csv> <out.csv>",
		Short: "Convert a legacy offset-based sleep export to the template layout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, log, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = in.Close() }()

			out, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer func() { _ = out.Close() }()

			converted, err := app.ExchangeCLI.ConvertLegacyCSV(in, out, year)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "converted %d row(s) to %s\n", converted, args[1])
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "year to anchor month-day dates to")
	return cmd
}

func printRecord(cmd *cobra.Command, r recorddto.RecordOutput) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "date:     %s (id=%d)\n", r.Date.Format(parse.DateLayout), r.ID)
	_, _ = fmt.Fprintf(w, "sleep:    %s\n", orDash(r.SleepTime))
	if r.Weight != nil {
		_, _ = fmt.Fprintf(w, "weight:   %.2f kg\n", *r.Weight)
	} else {
		_, _ = fmt.Fprintln(w, "weight:   -")
	}
	_, _ = fmt.Fprintf(w, "rating:   %s\n", orDashInt(r.Rating))
	_, _ = fmt.Fprintf(w, "steps:    %s\n", orDashInt(r.Steps))
	_, _ = fmt.Fprintf(w, "calories: %s\n", orDashInt(r.CaloriesIntake))
	_, _ = fmt.Fprintf(w, "note:     %s\n", orDash(r.Note))
	_, _ = fmt.Fprintf(w, "updated:  %s\n", r.UpdatedAt.Format(parse.TimestampLayout))
}

func printRecordLine(cmd *cobra.Command, r recorddto.RecordOutput) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-6d %s  sleep=%s weight=%s rating=%s steps=%s calories=%s %s\n",
		r.ID, r.Date.Format(parse.DateLayout),
		orDash(r.SleepTime), orDashFloat(r.Weight), orDashInt(r.Rating),
		orDashInt(r.Steps), orDashInt(r.CaloriesIntake), orDash(r.Note))
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func orDashInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func orDashFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}
