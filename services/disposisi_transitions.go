package services

import (
	"fmt"

	"github.com/farel129/bapelit-be-sub000/models"
)

// Track identifies which per-actor status column of a disposition a
// transition applies to. The kabid and sekretaris tracks run independently;
// the bawahan track belongs to the subordinate a disposition was forwarded to.
type Track string

const (
	TrackKabid      Track = "kabid"
	TrackSekretaris Track = "sekretaris"
	TrackBawahan    Track = "bawahan"
)

// Column returns the database column holding this track's status.
func (t Track) Column() string {
	switch t {
	case TrackKabid:
		return "status_dari_kabid"
	case TrackSekretaris:
		return "status_dari_sekretaris"
	case TrackBawahan:
		return "status_dari_bawahan"
	default:
		return ""
	}
}

// Status reads this track's current status off a disposition.
func (t Track) Status(d *models.Disposisi) models.StatusDisposisi {
	switch t {
	case TrackKabid:
		return d.StatusDariKabid
	case TrackSekretaris:
		return d.StatusDariSekretaris
	case TrackBawahan:
		return d.StatusDariBawahan
	default:
		return ""
	}
}

// TrackForRole maps a superior role onto its status track. Only kabid and
// sekretaris own a superior track.
func TrackForRole(role models.Role) (Track, bool) {
	switch role {
	case models.RoleKabid:
		return TrackKabid, true
	case models.RoleSekretaris:
		return TrackSekretaris, true
	default:
		return "", false
	}
}

// Aksi is a requested transition on one track.
type Aksi string

const (
	AksiBaca    Aksi = "baca"
	AksiTerima  Aksi = "terima"
	AksiProses  Aksi = "proses"
	AksiSelesai Aksi = "selesai"
)

// Advance computes the next status for a track, or reports that the requested
// action does not apply to the current status. Every legal edge of the status
// machine is listed here; handlers never compare status strings themselves.
func Advance(cur models.StatusDisposisi, aksi Aksi) (models.StatusDisposisi, bool) {
	switch aksi {
	case AksiBaca:
		if cur == models.StatusBelumDibaca {
			return models.StatusDibaca, true
		}
	case AksiTerima:
		if cur == models.StatusDibaca {
			return models.StatusDiterima, true
		}
	case AksiProses:
		if cur == models.StatusDiterima {
			return models.StatusDiproses, true
		}
	case AksiSelesai:
		if cur == models.StatusDiproses {
			return models.StatusSelesai, true
		}
	}
	return cur, false
}

// NoopMessage explains a refused transition in the wording the frontend shows.
func NoopMessage(cur models.StatusDisposisi, aksi Aksi) string {
	return fmt.Sprintf("status tidak berubah: aksi %q tidak berlaku untuk status %q", aksi, cur)
}

// TipePenerusan selects one of the two forwarding modes.
type TipePenerusan string

const (
	TeruskanKeJabatan TipePenerusan = "jabatan"
	TeruskanKeUser    TipePenerusan = "user"
)

func (t TipePenerusan) IsValid() bool {
	return t == TeruskanKeJabatan || t == TeruskanKeUser
}

// ForwardToJabatanUpdates builds the column updates for re-routing a
// disposition to another jabatan. Both the top-level status and the bawahan
// track reset to belum dibaca regardless of their prior values, and any
// earlier per-user forwarding is cleared.
func ForwardToJabatanUpdates(jabatan string) map[string]any {
	return map[string]any{
		"disposisi_kepada_jabatan":  jabatan,
		"status":                    models.StatusBelumDibaca,
		"status_dari_bawahan":       models.StatusBelumDibaca,
		"diteruskan_kepada_user_id": nil,
		"diteruskan_kepada_nama":    "",
		"diteruskan_kepada_jabatan": "",
	}
}

// ForwardToUserUpdates builds the column updates for handing a disposition to
// a named subordinate: the forwarder's own track becomes diteruskan, the
// subordinate starts at belum dibaca.
func ForwardToUserUpdates(track Track, target *models.User) map[string]any {
	return map[string]any{
		track.Column():              models.StatusDiteruskan,
		"status":                    models.StatusDiteruskan,
		"status_dari_bawahan":       models.StatusBelumDibaca,
		"diteruskan_kepada_user_id": target.ID,
		"diteruskan_kepada_nama":    target.Name,
		"diteruskan_kepada_jabatan": target.Jabatan,
	}
}

// NewLog builds the single audit row recorded with a successful transition.
func NewLog(d *models.Disposisi, status models.StatusDisposisi, actor *models.User, catatan string) models.LogDisposisi {
	return models.LogDisposisi{
		DisposisiID: d.ID,
		Status:      status,
		OlehUserID:  actor.ID,
		OlehNama:    actor.Name,
		OlehJabatan: actor.Jabatan,
		Catatan:     catatan,
	}
}

// NewForwardLog is NewLog plus the recipient identity a forward names.
func NewForwardLog(d *models.Disposisi, actor *models.User, kepadaUserID *uint, kepadaNama, catatan string) models.LogDisposisi {
	entry := NewLog(d, models.StatusDiteruskan, actor, catatan)
	entry.KepadaUserID = kepadaUserID
	entry.KepadaNama = kepadaNama
	return entry
}
