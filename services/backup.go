package services

import (
	"fmt"
	"strings"
	"time"
)

// ExportSQL renders the cached snapshot as a portable SQL script for manual
// backups. This is string formatting only; nothing is read from or written
// to the database.
func (s *ClinicService) ExportSQL() string {
	snap := s.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "-- Clinic Backup\n-- Date: %s\n\n", time.Now().Format(time.RFC3339))

	if len(snap.Customers) > 0 {
		b.WriteString("-- Customers\nINSERT INTO customers (id, name, phone, email, birth_date, notes, address) VALUES\n")
		rows := make([]string, 0, len(snap.Customers))
		for _, c := range snap.Customers {
			birth := "NULL"
			if c.BirthDate != nil {
				birth = fmt.Sprintf("'%s'", c.BirthDate.Format("2006-01-02"))
			}
			rows = append(rows, fmt.Sprintf("('%s', '%s', '%s', '%s', %s, '%s', '%s')",
				c.ID, sqlEscape(c.Name), sqlEscape(c.Phone), sqlEscape(c.Email), birth, sqlEscape(c.Notes), sqlEscape(c.Address)))
		}
		b.WriteString(strings.Join(rows, ",\n") + ";\n\n")
	}

	if len(snap.Inventory) > 0 {
		b.WriteString("-- Inventory\nINSERT INTO inventory (id, name, quantity, unit, min_level, price_per_unit) VALUES\n")
		rows := make([]string, 0, len(snap.Inventory))
		for _, i := range snap.Inventory {
			rows = append(rows, fmt.Sprintf("('%s', '%s', %d, '%s', %d, %g)",
				i.ID, sqlEscape(i.Name), i.Quantity, sqlEscape(i.Unit), i.MinLevel, i.PricePerUnit))
		}
		b.WriteString(strings.Join(rows, ",\n") + ";\n\n")
	}

	if len(snap.Services) > 0 {
		b.WriteString("-- Services\nINSERT INTO services (id, name, price, duration_minutes, category) VALUES\n")
		rows := make([]string, 0, len(snap.Services))
		for _, sv := range snap.Services {
			rows = append(rows, fmt.Sprintf("('%s', '%s', %g, %d, '%s')",
				sv.ID, sqlEscape(sv.Name), sv.Price, sv.DurationMinutes, sqlEscape(sv.Category)))
		}
		b.WriteString(strings.Join(rows, ",\n") + ";\n\n")
	}

	if len(snap.Courses) > 0 {
		b.WriteString("-- Courses\nINSERT INTO courses (id, name, price, total_units, description) VALUES\n")
		rows := make([]string, 0, len(snap.Courses))
		for _, c := range snap.Courses {
			rows = append(rows, fmt.Sprintf("('%s', '%s', %g, %d, '%s')",
				c.ID, sqlEscape(c.Name), c.Price, c.TotalUnits, sqlEscape(c.Description)))
		}
		b.WriteString(strings.Join(rows, ",\n") + ";\n\n")
	}

	return b.String()
}

func sqlEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
