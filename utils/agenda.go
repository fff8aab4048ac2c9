package utils

import (
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// AgendaBook selects which correspondence register a number is drawn from.
type AgendaBook string

const (
	AgendaSuratMasuk  AgendaBook = "surat_masuk"
	AgendaSuratKeluar AgendaBook = "surat_keluar"
)

// GenerateNomorAgenda returns the next agenda number for the given register,
// resetting every calendar year. The rows holding the current numbers are
// locked (FOR UPDATE) so two letters recorded at the same moment cannot be
// assigned the same number. Must run inside a transaction.
func GenerateNomorAgenda(tx *gorm.DB, book AgendaBook) (string, error) {
	var table string
	switch book {
	case AgendaSuratMasuk:
		table = "surat_masuk"
	case AgendaSuratKeluar:
		table = "surat_keluar"
	default:
		return "", fmt.Errorf("unknown agenda book %q", book)
	}

	// Aggregate over a locked subselect: Postgres rejects FOR UPDATE combined
	// directly with MAX. nomor_agenda <> '' excludes drafts without a number.
	query := fmt.Sprintf(`
		SELECT COALESCE(MAX(CAST(nomor_agenda AS INTEGER)), 0)
		FROM (
			SELECT nomor_agenda FROM %s
			WHERE EXTRACT(YEAR FROM created_at) = ? AND nomor_agenda <> ''
			FOR UPDATE
		) locked
	`, table)

	var lastSeq int
	if err := tx.Raw(query, time.Now().Year()).Scan(&lastSeq).Error; err != nil {
		return "", err
	}

	return strconv.Itoa(lastSeq + 1), nil
}
