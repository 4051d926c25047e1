// Package display renders bookings as display-ready Indonesian strings.
// The workflows hand these to the presentation layer; nothing here carries
// state or decision logic.
package display

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var days = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var months = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var printer = message.NewPrinter(language.Indonesian)

// FormatDate renders "Senin, 10 Maret 2025".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", days[t.Weekday()], t.Day(), months[t.Month()-1], t.Year())
}

// FormatTime renders the wall clock as "09:00".
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

func FormatTimeRange(start, end time.Time) string {
	return FormatTime(start) + " - " + FormatTime(end)
}

// FormatPrice renders an amount in rupiah with id-ID digit grouping:
// 1500000 becomes "Rp1.500.000".
func FormatPrice(amount int64) string {
	return printer.Sprintf("Rp%d", amount)
}

var statusLabels = map[string]string{
	"pending":          "Menunggu Konfirmasi",
	"awaiting_payment": "Menunggu Pembayaran",
	"confirmed":        "Terkonfirmasi",
	"completed":        "Selesai",
	"canceled":         "Dibatalkan",
	"expired":          "Kedaluwarsa",
}

// FormatStatus maps a lifecycle status to its display word, falling back to
// the raw status for codes this client does not know yet.
func FormatStatus(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}
