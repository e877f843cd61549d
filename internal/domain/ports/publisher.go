package ports

import "github.com/rafabene/thermit-backend/internal/domain/entities"

// MessagePublisher distribui mensagens recém-criadas aos assinantes da sala
type MessagePublisher interface {
	Publish(message *entities.Message)
}
