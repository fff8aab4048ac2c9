package services

import (
	"testing"

	"github.com/farel129/bapelit-be-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceLegalEdges(t *testing.T) {
	tests := []struct {
		name string
		cur  models.StatusDisposisi
		aksi Aksi
		want models.StatusDisposisi
	}{
		{"baca dari belum dibaca", models.StatusBelumDibaca, AksiBaca, models.StatusDibaca},
		{"terima dari dibaca", models.StatusDibaca, AksiTerima, models.StatusDiterima},
		{"proses dari diterima", models.StatusDiterima, AksiProses, models.StatusDiproses},
		{"selesai dari diproses", models.StatusDiproses, AksiSelesai, models.StatusSelesai},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Advance(tt.cur, tt.aksi)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdvanceRefusesEverythingElse(t *testing.T) {
	statuses := []models.StatusDisposisi{
		models.StatusDibuat,
		models.StatusBelumDibaca,
		models.StatusDibaca,
		models.StatusDiteruskan,
		models.StatusDiterima,
		models.StatusDiproses,
		models.StatusSelesai,
	}
	legal := map[Aksi]models.StatusDisposisi{
		AksiBaca:    models.StatusBelumDibaca,
		AksiTerima:  models.StatusDibaca,
		AksiProses:  models.StatusDiterima,
		AksiSelesai: models.StatusDiproses,
	}

	for aksi, from := range legal {
		for _, cur := range statuses {
			if cur == from {
				continue
			}
			got, ok := Advance(cur, aksi)
			assert.False(t, ok, "aksi %s harus ditolak dari status %s", aksi, cur)
			assert.Equal(t, cur, got, "status tidak boleh berubah saat aksi ditolak")
		}
	}
}

func TestAdvanceIsIdempotentPerAksi(t *testing.T) {
	// Mengulang aksi yang sama setelah berhasil selalu jadi no-op.
	next, ok := Advance(models.StatusBelumDibaca, AksiBaca)
	require.True(t, ok)

	again, ok := Advance(next, AksiBaca)
	assert.False(t, ok)
	assert.Equal(t, next, again)
}

func TestTrackColumns(t *testing.T) {
	assert.Equal(t, "status_dari_kabid", TrackKabid.Column())
	assert.Equal(t, "status_dari_sekretaris", TrackSekretaris.Column())
	assert.Equal(t, "status_dari_bawahan", TrackBawahan.Column())
	assert.Empty(t, Track("unknown").Column())
}

func TestTrackStatusReadsMatchingColumn(t *testing.T) {
	d := &models.Disposisi{
		StatusDariKabid:      models.StatusDibaca,
		StatusDariSekretaris: models.StatusDiterima,
		StatusDariBawahan:    models.StatusBelumDibaca,
	}

	assert.Equal(t, models.StatusDibaca, TrackKabid.Status(d))
	assert.Equal(t, models.StatusDiterima, TrackSekretaris.Status(d))
	assert.Equal(t, models.StatusBelumDibaca, TrackBawahan.Status(d))
}

func TestTrackForRole(t *testing.T) {
	track, ok := TrackForRole(models.RoleKabid)
	require.True(t, ok)
	assert.Equal(t, TrackKabid, track)

	track, ok = TrackForRole(models.RoleSekretaris)
	require.True(t, ok)
	assert.Equal(t, TrackSekretaris, track)

	for _, role := range []models.Role{models.RoleKepala, models.RoleStaf, models.RoleAdmin} {
		_, ok := TrackForRole(role)
		assert.False(t, ok, "role %s tidak punya track atasan", role)
	}
}

func TestTipePenerusanIsValid(t *testing.T) {
	assert.True(t, TeruskanKeJabatan.IsValid())
	assert.True(t, TeruskanKeUser.IsValid())
	assert.False(t, TipePenerusan("email").IsValid())
	assert.False(t, TipePenerusan("").IsValid())
}

func TestForwardToJabatanUpdatesResetsRouting(t *testing.T) {
	updates := ForwardToJabatanUpdates("Kepala Bidang Litbang")

	assert.Equal(t, "Kepala Bidang Litbang", updates["disposisi_kepada_jabatan"])
	assert.Equal(t, models.StatusBelumDibaca, updates["status"])
	assert.Equal(t, models.StatusBelumDibaca, updates["status_dari_bawahan"])
	assert.Nil(t, updates["diteruskan_kepada_user_id"])
	assert.Equal(t, "", updates["diteruskan_kepada_nama"])
	assert.Equal(t, "", updates["diteruskan_kepada_jabatan"])
}

func TestForwardToUserUpdatesMarksForwarderTrack(t *testing.T) {
	target := &models.User{
		Name:    "Budi Santoso",
		Jabatan: "Analis Perencanaan",
	}
	target.ID = 42

	updates := ForwardToUserUpdates(TrackKabid, target)

	assert.Equal(t, models.StatusDiteruskan, updates["status_dari_kabid"])
	assert.Equal(t, models.StatusDiteruskan, updates["status"])
	assert.Equal(t, models.StatusBelumDibaca, updates["status_dari_bawahan"])
	assert.Equal(t, uint(42), updates["diteruskan_kepada_user_id"])
	assert.Equal(t, "Budi Santoso", updates["diteruskan_kepada_nama"])
	assert.Equal(t, "Analis Perencanaan", updates["diteruskan_kepada_jabatan"])

	// Sekretaris yang meneruskan menandai kolomnya sendiri, bukan kolom kabid.
	updates = ForwardToUserUpdates(TrackSekretaris, target)
	assert.Equal(t, models.StatusDiteruskan, updates["status_dari_sekretaris"])
	_, touchedKabid := updates["status_dari_kabid"]
	assert.False(t, touchedKabid)
}

func TestNewLogCarriesActorIdentity(t *testing.T) {
	actor := &models.User{
		Name:    "Dewi Lestari",
		Jabatan: "Sekretaris",
	}
	actor.ID = 7
	d := &models.Disposisi{ID: "d0c4f5e0-0000-0000-0000-000000000000"}

	entry := NewLog(d, models.StatusDibaca, actor, "catatan singkat")

	assert.Equal(t, d.ID, entry.DisposisiID)
	assert.Equal(t, models.StatusDibaca, entry.Status)
	assert.Equal(t, uint(7), entry.OlehUserID)
	assert.Equal(t, "Dewi Lestari", entry.OlehNama)
	assert.Equal(t, "Sekretaris", entry.OlehJabatan)
	assert.Equal(t, "catatan singkat", entry.Catatan)
	assert.Nil(t, entry.KepadaUserID)
}

func TestNewForwardLogNamesRecipient(t *testing.T) {
	actor := &models.User{Name: "Dewi Lestari", Jabatan: "Sekretaris"}
	actor.ID = 7
	d := &models.Disposisi{ID: "d0c4f5e0-0000-0000-0000-000000000000"}
	targetID := uint(42)

	entry := NewForwardLog(d, actor, &targetID, "Budi Santoso", "mohon ditindaklanjuti")

	assert.Equal(t, models.StatusDiteruskan, entry.Status)
	require.NotNil(t, entry.KepadaUserID)
	assert.Equal(t, targetID, *entry.KepadaUserID)
	assert.Equal(t, "Budi Santoso", entry.KepadaNama)
	assert.Equal(t, "mohon ditindaklanjuti", entry.Catatan)
}
