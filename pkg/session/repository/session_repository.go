package repository

import "lpc/entities"

type SessionRepository interface {
	Save(rec *entities.SessionRecord) error
	FindByID(id, uid string) (*entities.SessionRecord, error)
	ListByUser(uid string) ([]entities.SessionRecord, error)
	All() ([]entities.SessionRecord, error)
}
