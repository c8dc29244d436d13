package attendance

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/nexus-ceredi/nexus-backend-go/internal/domain/attendance"
)

// csvHeader matches the files already produced for the coordination office.
var csvHeader = []string{
	"Nombre Pasante", "Servicio", "Fecha", "Hora Entrada", "Hora Salida", "Horas Totales", "Estatus",
}

// ExportMonthCSV implements attendance.Service. Open records export with
// "--" as the exit time and "0" total hours.
func (a *AttendanceServiceImpl) ExportMonthCSV(ctx context.Context, w io.Writer, filter attendance.MonthFilter) error {
	if err := filter.Validate(); err != nil {
		return err
	}

	records, err := a.attendanceRepo.ListMonth(ctx, filter)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range records {
		exit := "--"
		if r.ExitAt != nil {
			exit = r.ExitAt.Format("15:04")
		}
		hours := "0"
		if r.SessionHours != nil {
			hours = strconv.FormatFloat(*r.SessionHours, 'f', 2, 64)
		}

		row := []string{
			r.InternName,
			r.ServiceName,
			r.EntryAt.Format("2006-01-02"),
			r.EntryAt.Format("15:04"),
			exit,
			hours,
			r.Status,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
