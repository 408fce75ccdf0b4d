package entities

// Valores possíveis do voto de um parecer
const (
	VotoSim = 0
	VotoNao = 1
)

// Limites do domínio de estrelas
const (
	EstrelasMin = 1
	EstrelasMax = 5
)

// Parecer representa a avaliação de um usuário para uma consulta:
// estrelas (1-5), voto (sim/não) e um comentário livre. Cada usuário
// pode registrar no máximo um parecer por consulta, e o parecer é
// imutável depois de criado.
type Parecer struct {
	ID         uint
	UsuarioID  uint
	ConsultaID uint
	Estrelas   int
	Voto       int
	Comentario string
}

// Estatistica agrega todos os pareceres de uma consulta. É derivada sob
// demanda, nunca persistida.
type Estatistica struct {
	// Estrelas[i] é a quantidade de pareceres com i+1 estrelas.
	Estrelas    [5]int
	Sim         int
	Nao         int
	Comentarios []string
}

// Acumula registra um parecer na estatística. Valores de estrelas fora
// de 1-5 e votos fora de {0,1} não entram em nenhum balde; o comentário
// entra sempre, mesmo vazio.
func (e *Estatistica) Acumula(p *Parecer) {
	if p.Estrelas >= EstrelasMin && p.Estrelas <= EstrelasMax {
		e.Estrelas[p.Estrelas-1]++
	}

	switch p.Voto {
	case VotoSim:
		e.Sim++
	case VotoNao:
		e.Nao++
	}

	e.Comentarios = append(e.Comentarios, p.Comentario)
}
