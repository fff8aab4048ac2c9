package disposisi

import (
	"testing"

	"github.com/farel129/bapelit-be-sub000/services"

	"github.com/stretchr/testify/assert"
)

func TestCreateDisposisiRequestValidate(t *testing.T) {
	valid := CreateDisposisiRequest{
		Sifat:                  "segera",
		Perihal:                "Undangan rapat koordinasi",
		DisposisiKepadaJabatan: "Sekretaris",
		DenganHormatHarap:      "Hadiri dan laporkan hasilnya",
	}
	assert.Empty(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(r *CreateDisposisiRequest)
		wantKey string
	}{
		{"perihal kosong", func(r *CreateDisposisiRequest) { r.Perihal = "  " }, "perihal"},
		{"dengan_hormat_harap kosong", func(r *CreateDisposisiRequest) { r.DenganHormatHarap = "" }, "dengan_hormat_harap"},
		{"jabatan tujuan kosong", func(r *CreateDisposisiRequest) { r.DisposisiKepadaJabatan = "" }, "disposisi_kepada_jabatan"},
		{"sifat di luar enum", func(r *CreateDisposisiRequest) { r.Sifat = "urgent" }, "sifat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			errs := req.Validate()
			assert.Contains(t, errs, tt.wantKey)
		})
	}
}

func TestCreateDisposisiRequestSifatOptional(t *testing.T) {
	req := CreateDisposisiRequest{
		Perihal:                "Permohonan data",
		DisposisiKepadaJabatan: "Kepala Bidang Litbang",
		DenganHormatHarap:      "Tindak lanjuti",
	}
	assert.Empty(t, req.Validate())
	assert.Equal(t, "biasa", string(req.ToModel().Sifat))
}

func TestTeruskanRequestValidate(t *testing.T) {
	bad := TeruskanRequest{TipePenerusan: "email"}
	assert.Contains(t, bad.Validate(), "tipe_penerusan")

	keJabatan := TeruskanRequest{TipePenerusan: "jabatan"}
	assert.Contains(t, keJabatan.Validate(), "kepada_jabatan")
	keJabatan.KepadaJabatan = "Sekretaris"
	assert.Empty(t, keJabatan.Validate())

	keUser := TeruskanRequest{TipePenerusan: "user"}
	assert.Contains(t, keUser.Validate(), "kepada_user_id")
	keUser.KepadaUserID = 42
	assert.Empty(t, keUser.Validate())
}

func TestTeruskanRequestToParams(t *testing.T) {
	req := TeruskanRequest{
		TipePenerusan: "user",
		KepadaUserID:  42,
		Catatan:       "  segera ya  ",
	}

	p := req.ToParams()
	assert.Equal(t, services.TeruskanKeUser, p.Tipe)
	assert.Equal(t, uint(42), p.KepadaUserID)
	assert.Equal(t, "segera ya", p.Catatan)
}
