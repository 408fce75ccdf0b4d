package dto

// SubmitParecerRequest representa a requisição para registrar um parecer.
// Voto usa ponteiro porque 0 (sim) é um valor válido e "required" em int
// rejeitaria o zero.
type SubmitParecerRequest struct {
	ConsultaID uint   `json:"id_consulta" binding:"required"`
	Estrelas   int    `json:"estrelas" binding:"required,min=1,max=5"`
	Voto       *int   `json:"voto" binding:"required,oneof=0 1"`
	Comentario string `json:"comentario" binding:"required"`
}

// ParecerStatusResponse indica se o usuário já avaliou a consulta
type ParecerStatusResponse struct {
	Avaliada bool `json:"avaliada"`
}
