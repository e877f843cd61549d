package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"column:created;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated;autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// RoomModel é o model GORM para salas
type RoomModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      *string   `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"column:created;autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"column:updated;autoUpdateTime"`
}

func (RoomModel) TableName() string {
	return "rooms"
}

func (m *RoomModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// RoomUserModel é a tabela de associação; a chave composta impede duplicatas
type RoomUserModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoomID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Status    *string   `gorm:"type:varchar(50)"`
	CreatedAt time.Time `gorm:"column:created;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated;autoUpdateTime"`
}

func (RoomUserModel) TableName() string {
	return "rooms_users"
}

// MessageModel é o model GORM para mensagens
type MessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoomID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Author    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"column:created;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated;autoUpdateTime"`
}

func (MessageModel) TableName() string {
	return "messages"
}

func (m *MessageModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// AutoMigrate cria o schema a partir dos models (testes e desenvolvimento).
// Em produção o schema vem das migrations goose.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserModel{}, &RoomModel{}, &RoomUserModel{}, &MessageModel{})
}
