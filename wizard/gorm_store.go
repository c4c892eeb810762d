package wizard

import (
	"encoding/json"
	stderrors "errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"nitrutsav-backend/models"
)

// GormStore persists one draft row per identity in the wizard_drafts
// table, the draft body as a JSON blob.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(firebaseUID string) (*Draft, error) {
	var row models.WizardDraft
	err := s.db.Where("firebase_uid = ?", firebaseUID).First(&row).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load wizard draft")
	}

	var draft Draft
	if err := json.Unmarshal(row.Data, &draft); err != nil {
		// Unreadable blob is treated like a stale version: drop it.
		if err := s.Clear(firebaseUID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	draft.Version = row.Version
	return &draft, nil
}

func (s *GormStore) Save(firebaseUID string, draft *Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return errors.Wrap(err, "marshal wizard draft")
	}

	var row models.WizardDraft
	err = s.db.Where("firebase_uid = ?", firebaseUID).First(&row).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		row = models.WizardDraft{
			FirebaseUID: firebaseUID,
			Version:     draft.Version,
			Step:        string(draft.Step),
			IsTeam:      draft.IsTeam,
			Data:        data,
		}
		if err := s.db.Create(&row).Error; err != nil {
			return errors.Wrap(err, "create wizard draft")
		}
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "look up wizard draft")
	}

	row.Version = draft.Version
	row.Step = string(draft.Step)
	row.IsTeam = draft.IsTeam
	row.Data = data
	if err := s.db.Save(&row).Error; err != nil {
		return errors.Wrap(err, "update wizard draft")
	}
	return nil
}

func (s *GormStore) Clear(firebaseUID string) error {
	err := s.db.Unscoped().Where("firebase_uid = ?", firebaseUID).Delete(&models.WizardDraft{}).Error
	if err != nil {
		return errors.Wrap(err, "clear wizard draft")
	}
	return nil
}
