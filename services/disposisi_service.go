package services

import (
	"errors"

	"github.com/farel129/bapelit-be-sub000/models"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("resource not found")
	ErrForbidden  = errors.New("forbidden: insufficient permissions")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict with current state")
)

// TransitionOutcome reports whether a requested status change applied. A
// refused transition is not an error: the handler answers 200 with
// success=false and the unchanged row.
type TransitionOutcome struct {
	Changed bool
	Message string
}

// DisposisiService owns every mutation of a disposition. Each state change
// and its audit-log row commit in one database transaction, so a logged
// transition always exists and an unlogged one never happened.
type DisposisiService struct {
	db *gorm.DB
}

func NewDisposisiService(db *gorm.DB) *DisposisiService {
	return &DisposisiService{db: db}
}

// Create issues a new disposition for an incoming letter. The letter is
// flagged sudah_disposisi and the "dibuat" audit row written atomically with
// the disposition itself. A letter carries at most one active disposition:
// the flag doubles as the guard, flipped with a conditional update so two
// concurrent creates cannot both pass.
func (s *DisposisiService) Create(actor *models.User, surat *models.SuratMasuk, d *models.Disposisi) error {
	if surat.SudahDisposisi {
		return ErrConflict
	}

	d.SuratMasukID = surat.ID
	d.NomorSurat = surat.NomorSurat
	d.AsalInstansi = surat.AsalInstansi
	d.TanggalSurat = surat.TanggalSurat

	d.DariUserID = actor.ID
	d.DariNama = actor.Name
	d.DariJabatan = actor.Jabatan

	d.Status = models.StatusBelumDibaca
	d.StatusDariKabid = models.StatusBelumDibaca
	d.StatusDariSekretaris = models.StatusBelumDibaca
	d.StatusDariBawahan = models.StatusBelumDibaca

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(d).Error; err != nil {
			return err
		}

		res := tx.Model(&models.SuratMasuk{}).
			Where("id = ? AND sudah_disposisi = ?", surat.ID, false).
			Update("sudah_disposisi", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrConflict
		}

		entry := NewLog(d, models.StatusDibuat, actor, "disposisi dibuat")
		return tx.Create(&entry).Error
	})
}

// Get loads one disposition by id.
func (s *DisposisiService) Get(id string) (*models.Disposisi, error) {
	var d models.Disposisi
	if err := s.db.First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// AdvanceTrack applies aksi to one track of a disposition the actor owns.
// For superior tracks ownership means the disposition is addressed to the
// actor's jabatan; for the bawahan track it means the actor is the forwarded
// target user.
func (s *DisposisiService) AdvanceTrack(actor *models.User, track Track, id string, aksi Aksi) (*models.Disposisi, *TransitionOutcome, error) {
	d, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}

	switch track {
	case TrackKabid, TrackSekretaris:
		if d.DisposisiKepadaJabatan != actor.Jabatan {
			return nil, nil, ErrForbidden
		}
	case TrackBawahan:
		if d.DiteruskanKepadaUserID == nil || *d.DiteruskanKepadaUserID != actor.ID {
			return nil, nil, ErrForbidden
		}
	default:
		return nil, nil, ErrValidation
	}

	cur := track.Status(d)
	next, ok := Advance(cur, aksi)
	if !ok {
		return d, &TransitionOutcome{Changed: false, Message: NoopMessage(cur, aksi)}, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Disposisi{}).
			Where("id = ?", d.ID).
			Update(track.Column(), next).Error; err != nil {
			return err
		}

		entry := NewLog(d, next, actor, "")
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, nil, err
	}

	switch track {
	case TrackKabid:
		d.StatusDariKabid = next
	case TrackSekretaris:
		d.StatusDariSekretaris = next
	case TrackBawahan:
		d.StatusDariBawahan = next
	}

	return d, &TransitionOutcome{Changed: true}, nil
}

// TeruskanParams carries a forward request after DTO validation.
type TeruskanParams struct {
	Tipe          TipePenerusan
	KepadaJabatan string
	KepadaUserID  uint
	Catatan       string
}

// Teruskan forwards a disposition the actor's jabatan currently holds,
// either to another jabatan (sekretaris only) or to a named staf. It returns
// the target user when one was named, so the caller can notify them.
func (s *DisposisiService) Teruskan(actor *models.User, id string, p TeruskanParams) (*models.Disposisi, *models.User, error) {
	d, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}

	if d.DisposisiKepadaJabatan != actor.Jabatan {
		return nil, nil, ErrForbidden
	}

	track, ok := TrackForRole(actor.Role)
	if !ok {
		return nil, nil, ErrForbidden
	}

	var (
		updates map[string]any
		entry   models.LogDisposisi
		target  *models.User
	)

	switch p.Tipe {
	case TeruskanKeJabatan:
		// Re-routing by jabatan alone is a sekretaris privilege.
		if actor.Role != models.RoleSekretaris {
			return nil, nil, ErrForbidden
		}
		if p.KepadaJabatan == "" {
			return nil, nil, ErrValidation
		}
		updates = ForwardToJabatanUpdates(p.KepadaJabatan)
		entry = NewForwardLog(d, actor, nil, p.KepadaJabatan, p.Catatan)

	case TeruskanKeUser:
		var u models.User
		if err := s.db.First(&u, p.KepadaUserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, ErrNotFound
			}
			return nil, nil, err
		}
		if u.Role != models.RoleStaf {
			return nil, nil, ErrValidation
		}
		if actor.Role != models.RoleSekretaris && u.Bidang != actor.Bidang {
			return nil, nil, ErrForbidden
		}
		updates = ForwardToUserUpdates(track, &u)
		entry = NewForwardLog(d, actor, &u.ID, u.Name, p.Catatan)
		target = &u

	default:
		return nil, nil, ErrValidation
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Disposisi{}).
			Where("id = ?", d.ID).
			Updates(updates).Error; err != nil {
			return err
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, nil, err
	}

	refreshed, err := s.Get(d.ID)
	if err != nil {
		return nil, nil, err
	}
	return refreshed, target, nil
}

// Logs returns the audit trail of one disposition, oldest first.
func (s *DisposisiService) Logs(id string) ([]models.LogDisposisi, error) {
	var logs []models.LogDisposisi
	err := s.db.
		Where("disposisi_id = ?", id).
		Order("created_at ASC").
		Find(&logs).Error
	return logs, err
}

// FeedbackFileKeys collects the storage keys of every feedback attachment
// hanging off a disposition, for the pre-delete storage cascade.
func (s *DisposisiService) FeedbackFileKeys(id string) ([]string, error) {
	var keys []string
	err := s.db.Model(&models.FeedbackFile{}).
		Joins("JOIN feedback_disposisi ON feedback_disposisi.id = feedback_files.feedback_id").
		Where("feedback_disposisi.disposisi_id = ?", id).
		Pluck("feedback_files.file_path", &keys).Error
	return keys, err
}

// Delete removes a disposition and everything hanging off it, then flips the
// letter's sudah_disposisi flag back. Storage objects must have been removed
// (best-effort) by the caller beforehand.
func (s *DisposisiService) Delete(d *models.Disposisi) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("feedback_id IN (?)", tx.Model(&models.FeedbackDisposisi{}).
				Select("id").Where("disposisi_id = ?", d.ID)).
			Delete(&models.FeedbackFile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("disposisi_id = ?", d.ID).Delete(&models.FeedbackDisposisi{}).Error; err != nil {
			return err
		}
		if err := tx.Where("disposisi_id = ?", d.ID).Delete(&models.LogDisposisi{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Disposisi{}, "id = ?", d.ID).Error; err != nil {
			return err
		}
		return tx.Model(&models.SuratMasuk{}).
			Where("id = ?", d.SuratMasukID).
			Update("sudah_disposisi", false).Error
	})
}
