package services

import (
	"context"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/entities"
	"github.com/fabriciolima31/webserviceSenapp/internal/domain/errors"
	"github.com/fabriciolima31/webserviceSenapp/internal/domain/ports"
	"github.com/fabriciolima31/webserviceSenapp/internal/domain/repositories"
)

// ConsultaService contém a lógica de consulta e agregação de estatísticas
type ConsultaService struct {
	consultaRepo repositories.ConsultaRepository
	parecerRepo  repositories.ParecerRepository
	logger       ports.Logger
}

// NewConsultaService cria um novo ConsultaService
func NewConsultaService(
	consultaRepo repositories.ConsultaRepository,
	parecerRepo repositories.ParecerRepository,
	logger ports.Logger,
) *ConsultaService {
	return &ConsultaService{
		consultaRepo: consultaRepo,
		parecerRepo:  parecerRepo,
		logger:       logger,
	}
}

// ConsultaEstatistica reúne a consulta e a agregação de todos os
// pareceres registrados para ela
type ConsultaEstatistica struct {
	Consulta    *entities.Consulta
	Estatistica entities.Estatistica
}

// ConsultaComParecer reúne a consulta e o parecer do próprio usuário,
// nil quando ele ainda não avaliou
type ConsultaComParecer struct {
	Consulta *entities.Consulta
	Parecer  *entities.Parecer
}

// ListarNomes retorna os nomes de todas as consultas ativas
func (s *ConsultaService) ListarNomes(ctx context.Context) ([]string, error) {
	consultas, err := s.consultaRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	nomes := make([]string, len(consultas))
	for i, c := range consultas {
		nomes[i] = c.Nome
	}
	return nomes, nil
}

// BuscarPorNome retorna a consulta ativa com o nome informado
func (s *ConsultaService) BuscarPorNome(ctx context.Context, nome string) (*entities.Consulta, error) {
	consulta, err := s.consultaRepo.FindActiveByNome(ctx, nome)
	if err != nil {
		return nil, err
	}
	if consulta == nil {
		return nil, errors.ErrConsultaNotFound
	}
	return consulta, nil
}

// Estatisticas computa a agregação de todos os pareceres da consulta:
// histograma de estrelas, totais de sim/não e a lista de comentários em
// ordem de inserção. Recomputada do zero a cada chamada, refletindo os
// pareceres já gravados. Consulta inexistente ou inativa retorna
// errors.ErrConsultaNotFound; consulta sem pareceres retorna contagens
// zeradas e lista de comentários vazia.
func (s *ConsultaService) Estatisticas(ctx context.Context, consultaID uint) (*ConsultaEstatistica, error) {
	consulta, err := s.consultaRepo.FindActiveByID(ctx, consultaID)
	if err != nil {
		return nil, err
	}
	if consulta == nil {
		return nil, errors.ErrConsultaNotFound
	}

	pareceres, err := s.parecerRepo.ListByConsulta(ctx, consultaID)
	if err != nil {
		return nil, err
	}

	resultado := &ConsultaEstatistica{
		Consulta:    consulta,
		Estatistica: entities.Estatistica{Comentarios: []string{}},
	}
	for _, p := range pareceres {
		resultado.Estatistica.Acumula(p)
	}

	return resultado, nil
}

// ParecerDoUsuario retorna a consulta ativa com o nome informado e o
// parecer que o próprio usuário registrou para ela, se houver
func (s *ConsultaService) ParecerDoUsuario(ctx context.Context, usuarioID uint, nome string) (*ConsultaComParecer, error) {
	consulta, err := s.consultaRepo.FindActiveByNome(ctx, nome)
	if err != nil {
		return nil, err
	}
	if consulta == nil {
		return nil, errors.ErrConsultaNotFound
	}

	parecer, err := s.parecerRepo.FindByUsuarioAndConsulta(ctx, usuarioID, consulta.ID)
	if err != nil {
		return nil, err
	}

	return &ConsultaComParecer{Consulta: consulta, Parecer: parecer}, nil
}
