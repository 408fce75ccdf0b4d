package services_test

import (
	"context"
	"fmt"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/entities"
	domainerrors "github.com/fabriciolima31/webserviceSenapp/internal/domain/errors"
	"github.com/fabriciolima31/webserviceSenapp/internal/domain/ports"
)

// fakeUserRepo guarda usuários em memória para os testes de serviço
type fakeUserRepo struct {
	users  map[uint]*entities.User
	nextID uint
	// failWith simula indisponibilidade do banco quando não-nil
	failWith error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*entities.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	if r.failWith != nil {
		return r.failWith
	}
	for _, u := range r.users {
		if u.Email.String() == user.Email.String() {
			return domainerrors.ErrEmailAlreadyExists
		}
	}
	copied := *user
	copied.ID = r.nextID
	r.users[r.nextID] = &copied
	user.ID = r.nextID
	r.nextID++
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.users {
		if u.Email.String() == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByAPIKey(ctx context.Context, apiKey string) (*entities.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.users {
		if u.APIKey == apiKey {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

// fakeConsultaRepo guarda consultas em memória
type fakeConsultaRepo struct {
	consultas []*entities.Consulta
}

func (r *fakeConsultaRepo) ListActive(ctx context.Context) ([]*entities.Consulta, error) {
	var active []*entities.Consulta
	for _, c := range r.consultas {
		if c.IsActive() {
			active = append(active, c)
		}
	}
	return active, nil
}

func (r *fakeConsultaRepo) FindActiveByID(ctx context.Context, id uint) (*entities.Consulta, error) {
	for _, c := range r.consultas {
		if c.ID == id && c.IsActive() {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeConsultaRepo) FindActiveByNome(ctx context.Context, nome string) (*entities.Consulta, error) {
	for _, c := range r.consultas {
		if c.Nome == nome && c.IsActive() {
			return c, nil
		}
	}
	return nil, nil
}

// fakeParecerRepo guarda pareceres em memória, em ordem de inserção
type fakeParecerRepo struct {
	pareceres []*entities.Parecer
	nextID    uint
}

func newFakeParecerRepo() *fakeParecerRepo {
	return &fakeParecerRepo{nextID: 1}
}

func (r *fakeParecerRepo) Create(ctx context.Context, parecer *entities.Parecer) error {
	for _, p := range r.pareceres {
		if p.UsuarioID == parecer.UsuarioID && p.ConsultaID == parecer.ConsultaID {
			return domainerrors.ErrParecerJaExiste
		}
	}
	copied := *parecer
	copied.ID = r.nextID
	r.pareceres = append(r.pareceres, &copied)
	parecer.ID = r.nextID
	r.nextID++
	return nil
}

func (r *fakeParecerRepo) Exists(ctx context.Context, usuarioID, consultaID uint) (bool, error) {
	for _, p := range r.pareceres {
		if p.UsuarioID == usuarioID && p.ConsultaID == consultaID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeParecerRepo) FindByUsuarioAndConsulta(ctx context.Context, usuarioID, consultaID uint) (*entities.Parecer, error) {
	for _, p := range r.pareceres {
		if p.UsuarioID == usuarioID && p.ConsultaID == consultaID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeParecerRepo) ListByConsulta(ctx context.Context, consultaID uint) ([]*entities.Parecer, error) {
	var result []*entities.Parecer
	for _, p := range r.pareceres {
		if p.ConsultaID == consultaID {
			copied := *p
			result = append(result, &copied)
		}
	}
	return result, nil
}

// fakeUOW executa fn sem transação real
type fakeUOW struct{}

func (u *fakeUOW) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// fakeHasher usa um "hash" reversível para não pagar bcrypt nos testes
type fakeHasher struct{}

func (h *fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (h *fakeHasher) Verify(digest, password string) bool {
	return digest == "hashed:"+password
}

// noopLogger descarta tudo
type noopLogger struct{}

func (l *noopLogger) Info(msg string, args ...any)  {}
func (l *noopLogger) Error(msg string, args ...any) {}
func (l *noopLogger) Debug(msg string, args ...any) {}
func (l *noopLogger) Warn(msg string, args ...any)  {}
func (l *noopLogger) With(args ...any) ports.Logger { return l }

var errStoreDown = fmt.Errorf("store unavailable")
