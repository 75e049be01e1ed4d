package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"solar_kiosk/internal/models"
	"solar_kiosk/internal/repository/db"
	"solar_kiosk/internal/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	simDevice  = "smartphone"
	simPayment = "wave"
	simTick    = 50 * time.Millisecond
)

// NewSimulateCommand runs one charging session in the terminal against an in-memory journal.
func NewSimulateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one charging session to completion and print its progress",
		Long: `simulate starts a session for the given device and payment method, prints
progress and telemetry until it completes, then prints the journal.
Ctrl-C cancels the session.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			cfg.DB.Path = db.MemoryDSN
			cfg.Session.TickInterval = simTick

			a, err := newApp(cfg, log, false)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runSimulation(ctx, cmd.OutOrStdout(), a.services, simTick)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&simDevice, "device", "d", simDevice, "device id from the catalog")
	f.StringVarP(&simPayment, "payment", "p", simPayment, "payment method id from the catalog")
	f.DurationVar(&simTick, "tick", simTick, "progress tick; 100 ticks complete a session")

	return cmd
}

// runSimulation drives one session and reports on w until it completes or ctx is done.
func runSimulation(ctx context.Context, w io.Writer, s *service.Service, tick time.Duration) error {
	s.Telemetry.Start()
	defer s.Telemetry.Stop()

	sess, err := s.Sessions.Start(ctx, simDevice, simPayment)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Charging %s, paid with %s: %s FCFA, %d min\n",
		bold("%s", sess.Device.Name), sess.PaymentMethod.Name,
		bold("%d", sess.CostFcfa), sess.Device.ChargeTimeMinutes)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	last := -1
	for {
		select {
		case <-ctx.Done():
			s.Sessions.Cancel(context.Background())
			fmt.Fprintln(w, color.YellowString("\ncancelled"))
			return printJournal(context.Background(), w, s)
		case <-ticker.C:
		}

		cur := s.Sessions.Current()
		if cur.ProgressPercent != last {
			last = cur.ProgressPercent
			fmt.Fprintf(w, "\r%s %3d%%  %5.1f min left  %s", progressBar(cur.ProgressPercent),
				cur.ProgressPercent, cur.TimeRemainingMinutes, telemetryLine(s.Telemetry.CurrentSnapshot()))
		}
		if cur.Status == models.SessionCompleted {
			fmt.Fprintln(w, color.New(color.Bold, color.FgGreen).Sprint("\ncompleted ✔"))
			return printJournal(ctx, w, s)
		}
	}
}

const barWidth = 20

func progressBar(percent int) string {
	filled := percent * barWidth / 100
	return "[" + color.GreenString(strings.Repeat("#", filled)) + strings.Repeat(".", barWidth-filled) + "]"
}

func telemetryLine(t models.TelemetrySnapshot) string {
	battery := fmt.Sprintf("%.0f%%", t.BatteryPercent)
	if t.BatteryPercent < 20 {
		battery = color.RedString(battery)
	}
	temp := fmt.Sprintf("%.1f°C", t.TemperatureC)
	if t.TemperatureC >= service.AlertTemperatureC {
		temp = color.RedString(temp)
	}
	return fmt.Sprintf("battery %s  temp %s  air %s", battery, temp, t.AirQuality)
}

func printJournal(ctx context.Context, w io.Writer, s *service.Service) error {
	events, err := s.EventLog.List(ctx, service.LogFilter{})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, bold("Journal (%d events):", len(events)))
	for _, e := range events {
		fmt.Fprintf(w, "  %s  %-16s %s\n", e.OccurredAt.Format(time.TimeOnly), e.Type, e.Description)
	}
	return nil
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
