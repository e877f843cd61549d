package services_test

import (
	"sync"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
	"github.com/rafabene/thermit-backend/internal/domain/ports"
	"github.com/rafabene/thermit-backend/internal/domain/repositories"
	"github.com/rafabene/thermit-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/thermit-backend/internal/infrastructure/security"
	"github.com/rafabene/thermit-backend/internal/services"
	"github.com/rafabene/thermit-backend/internal/testutil"
)

func TestServices(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Services Suite")
}

// env agrupa as dependências reais usadas pelas specs
type env struct {
	db        *gorm.DB
	users     repositories.UserRepository
	rooms     repositories.RoomRepository
	messages  repositories.MessageRepository
	hasher    ports.PasswordHasher
	publisher *recordingPublisher

	userService    *services.UserService
	roomService    *services.RoomService
	messageService *services.MessageService
	authService    *services.AuthService
}

func newEnv() *env {
	db := testutil.NewSQLiteDB(GinkgoT())
	Expect(postgres.AutoMigrate(db)).To(Succeed())

	e := &env{
		db:        db,
		users:     postgres.NewUserRepository(db),
		rooms:     postgres.NewRoomRepository(db),
		messages:  postgres.NewMessageRepository(db),
		hasher:    security.NewBcryptHasher(bcrypt.MinCost),
		publisher: &recordingPublisher{},
	}
	uow := postgres.NewUnitOfWork(db)
	log := ports.NopLogger{}
	tokens := security.NewJWTIssuer("test-secret", "thermit-test", time.Hour)

	e.userService = services.NewUserService(e.users, e.rooms, e.messages, uow, e.hasher, log)
	e.roomService = services.NewRoomService(e.rooms, e.users, e.messages, uow, log)
	e.messageService = services.NewMessageService(e.messages, e.rooms, e.users, e.publisher, log)
	e.authService = services.NewAuthService(e.users, e.hasher, tokens, log)
	return e
}

// recordingPublisher guarda as mensagens publicadas
type recordingPublisher struct {
	mu        sync.Mutex
	published []*entities.Message
}

func (p *recordingPublisher) Publish(message *entities.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, message)
}

func (p *recordingPublisher) Published() []*entities.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*entities.Message(nil), p.published...)
}
