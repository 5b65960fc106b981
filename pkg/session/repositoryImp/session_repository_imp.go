package repositoryImp

import (
	"gorm.io/gorm"

	"lpc/entities"
	"lpc/pkg/session/repository"
)

type sessionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SessionRepository { return &sessionRepo{db} }

func (r *sessionRepo) Save(rec *entities.SessionRecord) error {
	return r.db.Save(rec).Error
}

func (r *sessionRepo) FindByID(id, uid string) (*entities.SessionRecord, error) {
	var rec entities.SessionRecord
	if err := r.db.Where("session_id = ? AND user_id = ?", id, uid).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *sessionRepo) ListByUser(uid string) ([]entities.SessionRecord, error) {
	var recs []entities.SessionRecord
	if err := r.db.Where("user_id = ?", uid).Order("updated_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *sessionRepo) All() ([]entities.SessionRecord, error) {
	var recs []entities.SessionRecord
	if err := r.db.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
