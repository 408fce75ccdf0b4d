package entities

// Status de uma consulta
const (
	ConsultaInactive = 0
	ConsultaActive   = 1
)

// Consulta representa um tema de consulta pública que pode receber pareceres.
// Consultas são criadas e desativadas por um processo administrativo externo;
// este serviço apenas lê consultas ativas.
type Consulta struct {
	ID               uint
	Nome             string
	Autor            string
	Ementa           string
	ExplicacaoEmenta string
	Status           int
}

// IsActive verifica se a consulta está visível para os usuários
func (c *Consulta) IsActive() bool {
	return c.Status == ConsultaActive
}
