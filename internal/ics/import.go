package ics

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	ical "github.com/arran4/golang-ical"

	"histcal/internal/calendar"
	appLog "histcal/internal/log"
	"histcal/internal/model"
)

// ParseEntries reads an iCalendar document and returns one timeline entry
// per VEVENT.
//
//   - UID, SUMMARY and DESCRIPTION map to ID, Title and Description.
//   - DTSTART/DTEND keep only their date portion; no timezone conversion
//     is done.
//   - All-day events carry an exclusive DTEND in iCalendar, so it is moved
//     back one day to get the inclusive end date.
//
// Events that cannot be mapped (no UID, unreadable DTSTART) are logged and
// skipped; the rest are still returned.
func ParseEntries(body []byte) ([]model.Entry, error) {
	if len(body) == 0 {
		return nil, errors.New("ics: empty body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ics: parse calendar: %w", err)
	}

	entries := make([]model.Entry, 0)
	for _, ve := range cal.Events() {
		e, err := entryFromVEvent(ve)
		if err != nil {
			appLog.Error("ics vevent skipped", err)
			continue
		}
		entries = append(entries, e)
	}

	appLog.Info("ics import completed", "entry_count", len(entries))
	return entries, nil
}

func entryFromVEvent(ve *ical.VEvent) (model.Entry, error) {
	var out model.Entry

	uid := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uid == nil || uid.Value == "" {
		return out, errors.New("missing UID")
	}
	out.ID = uid.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Title = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		out.Description = p.Value
	}

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return out, fmt.Errorf("uid %s: missing DTSTART", out.ID)
	}
	start, err := datePortion(dtStart.Value)
	if err != nil {
		return out, fmt.Errorf("uid %s: DTSTART: %w", out.ID, err)
	}
	out.StartDate = start.String()

	dtEnd := ve.GetProperty(ical.ComponentPropertyDtEnd)
	if dtEnd == nil {
		return out, nil
	}
	end, err := datePortion(dtEnd.Value)
	if err != nil {
		appLog.Warn("ics: ignoring unreadable DTEND", "uid", out.ID, "value", dtEnd.Value)
		return out, nil
	}

	if isAllDay(dtStart) {
		if after(end, start) {
			end = end.PrevDay()
		} else {
			end = start
		}
	}
	out.EndDate = end.String()
	return out, nil
}

// isAllDay reports whether a DTSTART property carries a DATE value, either
// via VALUE=DATE or because it has no time part.
func isAllDay(p *ical.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

// datePortion converts the YYYYMMDD prefix of an iCalendar DATE or
// DATE-TIME value into a calendar date.
func datePortion(v string) (calendar.Date, error) {
	v = strings.TrimSpace(v)
	if len(v) < 8 {
		return calendar.Date{}, fmt.Errorf("short date value %q", v)
	}
	return calendar.Parse(v[0:4] + "-" + v[4:6] + "-" + v[6:8])
}

func after(a, b calendar.Date) bool {
	if a.Year != b.Year {
		return a.Year > b.Year
	}
	if a.Month != b.Month {
		return a.Month > b.Month
	}
	return a.Day > b.Day
}
