package dto

import (
	"github.com/fabriciolima31/webserviceSenapp/internal/domain/entities"
	"github.com/fabriciolima31/webserviceSenapp/internal/services"
)

// BuscaConsultaRequest representa a busca de uma consulta pelo nome
type BuscaConsultaRequest struct {
	NomeConsulta string `json:"nome_consulta" binding:"required"`
}

// ConsultaListResponse representa a lista de nomes de consultas ativas
type ConsultaListResponse struct {
	Consultas []string `json:"consultas"`
}

// ConsultaResponse representa os metadados de uma consulta
type ConsultaResponse struct {
	ID               uint   `json:"id"`
	Nome             string `json:"nome"`
	Autor            string `json:"autor"`
	Ementa           string `json:"ementa"`
	ExplicacaoEmenta string `json:"explicacao_ementa"`
}

// EstatisticaResponse representa a consulta com a agregação de todos os
// pareceres registrados para ela
type EstatisticaResponse struct {
	ConsultaResponse
	QteEstrela1 int      `json:"qte_estrela1"`
	QteEstrela2 int      `json:"qte_estrela2"`
	QteEstrela3 int      `json:"qte_estrela3"`
	QteEstrela4 int      `json:"qte_estrela4"`
	QteEstrela5 int      `json:"qte_estrela5"`
	QteSim      int      `json:"qte_sim"`
	QteNao      int      `json:"qte_nao"`
	Comentarios []string `json:"comentarios"`
}

// ConsultaComParecerResponse representa a consulta e o parecer do próprio
// usuário; os campos do parecer ficam zerados quando ele não avaliou
type ConsultaComParecerResponse struct {
	ConsultaResponse
	Avaliada   bool   `json:"avaliada"`
	Estrelas   int    `json:"estrelas"`
	Voto       *int   `json:"voto"`
	Comentario string `json:"comentario"`
}

// ToConsultaResponse converte uma entidade Consulta para ConsultaResponse
func ToConsultaResponse(consulta *entities.Consulta) ConsultaResponse {
	return ConsultaResponse{
		ID:               consulta.ID,
		Nome:             consulta.Nome,
		Autor:            consulta.Autor,
		Ementa:           consulta.Ementa,
		ExplicacaoEmenta: consulta.ExplicacaoEmenta,
	}
}

// ToEstatisticaResponse converte o resultado da agregação para a resposta
func ToEstatisticaResponse(resultado *services.ConsultaEstatistica) EstatisticaResponse {
	est := resultado.Estatistica
	return EstatisticaResponse{
		ConsultaResponse: ToConsultaResponse(resultado.Consulta),
		QteEstrela1:      est.Estrelas[0],
		QteEstrela2:      est.Estrelas[1],
		QteEstrela3:      est.Estrelas[2],
		QteEstrela4:      est.Estrelas[3],
		QteEstrela5:      est.Estrelas[4],
		QteSim:           est.Sim,
		QteNao:           est.Nao,
		Comentarios:      est.Comentarios,
	}
}

// ToConsultaComParecerResponse converte a consulta e o parecer do usuário
func ToConsultaComParecerResponse(resultado *services.ConsultaComParecer) ConsultaComParecerResponse {
	response := ConsultaComParecerResponse{
		ConsultaResponse: ToConsultaResponse(resultado.Consulta),
	}

	if resultado.Parecer != nil {
		voto := resultado.Parecer.Voto
		response.Avaliada = true
		response.Estrelas = resultado.Parecer.Estrelas
		response.Voto = &voto
		response.Comentario = resultado.Parecer.Comentario
	}

	return response
}
