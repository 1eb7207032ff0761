// Package timeline turns timeline records into display rows using the
// calendar engine.
package timeline

import (
	"cmp"
	"slices"

	"histcal/internal/calendar"
	appLog "histcal/internal/log"
	"histcal/internal/model"
)

// Render returns one row per entry, in order. A record whose duration
// cannot be computed still gets a row, with Error set and Duration empty.
func Render(entries []model.Entry) []model.Row {
	rows := make([]model.Row, 0, len(entries))
	failed := 0
	for _, e := range entries {
		row := model.Row{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Start:       calendar.FormatForDisplay(e.StartDate),
			End:         calendar.FormatForDisplay(e.EndDate),
		}
		d, err := calendar.CalculateDuration(e.StartDate, e.EndDate)
		if err != nil {
			failed++
			row.Error = err.Error()
			appLog.Debug("timeline: duration failed", "id", e.ID, "err", err)
		} else {
			row.Duration = d
		}
		rows = append(rows, row)
	}
	if failed > 0 {
		appLog.Warn("timeline: some entries have malformed dates", "failed", failed, "total", len(entries))
	}
	return rows
}

// Sort orders entries chronologically by start date, in place. Entries whose
// start date does not parse keep their relative order after all others.
func Sort(entries []model.Entry) {
	type key struct {
		ok               bool
		year, month, day int
	}
	keyOf := func(e model.Entry) key {
		d, err := calendar.Parse(e.StartDate)
		if err != nil {
			return key{}
		}
		return key{ok: true, year: d.Year, month: d.Month, day: d.Day}
	}
	slices.SortStableFunc(entries, func(a, b model.Entry) int {
		ka, kb := keyOf(a), keyOf(b)
		switch {
		case ka.ok != kb.ok:
			if ka.ok {
				return -1
			}
			return 1
		case !ka.ok:
			return 0
		}
		if c := cmp.Compare(ka.year, kb.year); c != 0 {
			return c
		}
		if c := cmp.Compare(ka.month, kb.month); c != 0 {
			return c
		}
		return cmp.Compare(ka.day, kb.day)
	})
}
