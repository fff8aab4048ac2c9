package disposisi

import (
	"time"

	"github.com/farel129/bapelit-be-sub000/models"
)

type DisposisiResponse struct {
	ID           string     `json:"id"`
	SuratMasukID string     `json:"surat_masuk_id"`
	NomorSurat   string     `json:"nomor_surat"`
	AsalInstansi string     `json:"asal_instansi"`
	TanggalSurat *time.Time `json:"tanggal_surat"`

	Sifat             models.SifatSurat `json:"sifat"`
	Perihal           string            `json:"perihal"`
	DenganHormatHarap string            `json:"dengan_hormat_harap"`
	Catatan           string            `json:"catatan"`

	DariNama    string `json:"dari_nama"`
	DariJabatan string `json:"dari_jabatan"`

	DisposisiKepadaJabatan  string `json:"disposisi_kepada_jabatan"`
	DiteruskanKepadaUserID  *uint  `json:"diteruskan_kepada_user_id"`
	DiteruskanKepadaNama    string `json:"diteruskan_kepada_nama,omitempty"`
	DiteruskanKepadaJabatan string `json:"diteruskan_kepada_jabatan,omitempty"`

	Status               models.StatusDisposisi `json:"status"`
	StatusDariKabid      models.StatusDisposisi `json:"status_dari_kabid"`
	StatusDariSekretaris models.StatusDisposisi `json:"status_dari_sekretaris"`
	StatusDariBawahan    models.StatusDisposisi `json:"status_dari_bawahan"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewDisposisiResponse(d *models.Disposisi) DisposisiResponse {
	if d == nil {
		return DisposisiResponse{}
	}

	return DisposisiResponse{
		ID:                      d.ID,
		SuratMasukID:            d.SuratMasukID,
		NomorSurat:              d.NomorSurat,
		AsalInstansi:            d.AsalInstansi,
		TanggalSurat:            d.TanggalSurat,
		Sifat:                   d.Sifat,
		Perihal:                 d.Perihal,
		DenganHormatHarap:       d.DenganHormatHarap,
		Catatan:                 d.Catatan,
		DariNama:                d.DariNama,
		DariJabatan:             d.DariJabatan,
		DisposisiKepadaJabatan:  d.DisposisiKepadaJabatan,
		DiteruskanKepadaUserID:  d.DiteruskanKepadaUserID,
		DiteruskanKepadaNama:    d.DiteruskanKepadaNama,
		DiteruskanKepadaJabatan: d.DiteruskanKepadaJabatan,
		Status:                  d.Status,
		StatusDariKabid:         d.StatusDariKabid,
		StatusDariSekretaris:    d.StatusDariSekretaris,
		StatusDariBawahan:       d.StatusDariBawahan,
		CreatedAt:               d.CreatedAt,
		UpdatedAt:               d.UpdatedAt,
	}
}

type LogResponse struct {
	ID          string                 `json:"id"`
	DisposisiID string                 `json:"disposisi_id"`
	Status      models.StatusDisposisi `json:"status"`
	OlehNama    string                 `json:"oleh_nama"`
	OlehJabatan string                 `json:"oleh_jabatan"`
	KepadaNama  string                 `json:"kepada_nama,omitempty"`
	Catatan     string                 `json:"catatan,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

func NewLogResponses(logs []models.LogDisposisi) []LogResponse {
	out := make([]LogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, LogResponse{
			ID:          l.ID,
			DisposisiID: l.DisposisiID,
			Status:      l.Status,
			OlehNama:    l.OlehNama,
			OlehJabatan: l.OlehJabatan,
			KepadaNama:  l.KepadaNama,
			Catatan:     l.Catatan,
			CreatedAt:   l.CreatedAt,
		})
	}
	return out
}
