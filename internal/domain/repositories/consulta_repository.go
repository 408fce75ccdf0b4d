package repositories

import (
	"context"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/entities"
)

// ConsultaRepository define a interface de leitura de consultas.
// Consultas são gerenciadas por um processo externo; este serviço só
// enxerga consultas ativas, e os métodos Find* retornam (nil, nil)
// quando a consulta não existe ou está inativa.
type ConsultaRepository interface {
	ListActive(ctx context.Context) ([]*entities.Consulta, error)
	FindActiveByID(ctx context.Context, id uint) (*entities.Consulta, error)
	FindActiveByNome(ctx context.Context, nome string) (*entities.Consulta, error)
}
