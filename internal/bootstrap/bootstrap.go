package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	chartinadapter "daytrack/internal/modules/chart/adapter/in"
	chartservice "daytrack/internal/modules/chart/service"
	chartusecase "daytrack/internal/modules/chart/usecase"
	exchangeinadapter "daytrack/internal/modules/exchange/adapter/in"
	exchangeservice "daytrack/internal/modules/exchange/service"
	exchangeusecase "daytrack/internal/modules/exchange/usecase"
	recordinadapter "daytrack/internal/modules/record/adapter/in"
	recordoutadapter "daytrack/internal/modules/record/adapter/out"
	recordservice "daytrack/internal/modules/record/service"
	recordusecase "daytrack/internal/modules/record/usecase"
	"daytrack/internal/platform/clock"
	"daytrack/internal/platform/config"
	uiapp "daytrack/internal/ui/app"
)

type App struct {
	RecordCLI   recordinadapter.CLIHandler
	RecordTUI   recordinadapter.TUIHandler
	ExchangeCLI exchangeinadapter.CLIHandler
	ChartCLI    chartinadapter.CLIHandler

	// DefaultMetric is the configured metric shown when none is named.
	DefaultMetric string
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	clk := clock.SystemClock{}

	store, err := recordoutadapter.NewSQLiteStore(cfg.DBPath, clk, log)
	if err != nil {
		return nil, fmt.Errorf("new record store: %w", err)
	}
	recordUC := recordusecase.NewInteractor(recordservice.NewRecordService(store))

	exchangeUC := exchangeusecase.NewInteractor(
		exchangeservice.NewImportService(recordUC, log),
		exchangeservice.NewExportService(recordUC),
	)

	chartUC := chartusecase.NewInteractor(chartservice.NewChartService(recordUC))

	return &App{
		RecordCLI:     recordinadapter.NewCLIHandler(recordUC),
		RecordTUI:     recordinadapter.NewTUIHandler(recordUC),
		ExchangeCLI:   exchangeinadapter.NewCLIHandler(exchangeUC),
		ChartCLI:      chartinadapter.NewCLIHandler(chartUC),
		DefaultMetric: cfg.Chart.DefaultMetric,
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.RecordTUI, app.ChartCLI, app.DefaultMetric)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
