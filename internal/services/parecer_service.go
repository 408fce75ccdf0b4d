package services

import (
	"context"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/entities"
	"github.com/fabriciolima31/webserviceSenapp/internal/domain/errors"
	"github.com/fabriciolima31/webserviceSenapp/internal/domain/ports"
	"github.com/fabriciolima31/webserviceSenapp/internal/domain/repositories"
)

// ParecerService contém a lógica de negócio para pareceres. Garante o
// invariante de no máximo um parecer por (usuário, consulta).
type ParecerService struct {
	parecerRepo  repositories.ParecerRepository
	consultaRepo repositories.ConsultaRepository
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewParecerService cria um novo ParecerService
func NewParecerService(
	parecerRepo repositories.ParecerRepository,
	consultaRepo repositories.ConsultaRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ParecerService {
	return &ParecerService{
		parecerRepo:  parecerRepo,
		consultaRepo: consultaRepo,
		uow:          uow,
		logger:       logger,
	}
}

// SubmitInput representa os dados para registrar um parecer
type SubmitInput struct {
	UsuarioID  uint
	ConsultaID uint
	Estrelas   int
	Voto       int
	Comentario string
}

// Submit registra o parecer do usuário para a consulta. Se o usuário já
// avaliou, retorna errors.ErrParecerJaExiste sem gravar nada. A
// verificação e o insert rodam na mesma transação; o índice único em
// (id_usuario, id_consulta) cobre escritores concorrentes, e a violação
// também retorna errors.ErrParecerJaExiste.
func (s *ParecerService) Submit(ctx context.Context, input SubmitInput) (*entities.Parecer, error) {
	consulta, err := s.consultaRepo.FindActiveByID(ctx, input.ConsultaID)
	if err != nil {
		return nil, err
	}
	if consulta == nil {
		return nil, errors.ErrConsultaNotFound
	}

	parecer := &entities.Parecer{
		UsuarioID:  input.UsuarioID,
		ConsultaID: input.ConsultaID,
		Estrelas:   input.Estrelas,
		Voto:       input.Voto,
		Comentario: input.Comentario,
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		exists, err := s.parecerRepo.Exists(txCtx, input.UsuarioID, input.ConsultaID)
		if err != nil {
			return err
		}
		if exists {
			return errors.ErrParecerJaExiste
		}

		return s.parecerRepo.Create(txCtx, parecer)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("parecer registrado",
		"usuario_id", input.UsuarioID,
		"consulta_id", input.ConsultaID,
	)
	return parecer, nil
}

// HasRated verifica se o usuário já registrou parecer para a consulta
func (s *ParecerService) HasRated(ctx context.Context, usuarioID, consultaID uint) (bool, error) {
	return s.parecerRepo.Exists(ctx, usuarioID, consultaID)
}
