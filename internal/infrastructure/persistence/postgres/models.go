package postgres

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	APIKey       string `gorm:"column:api_key;type:varchar(64);uniqueIndex;not null"`
	Status       int    `gorm:"not null;default:1"`
	UF           string `gorm:"column:uf;type:varchar(2)"`
	CreatedAt    int64  `gorm:"autoCreateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// ConsultaModel é o model GORM para consultas. A tabela é populada por um
// processo administrativo externo; este serviço apenas lê.
type ConsultaModel struct {
	ID               uint   `gorm:"primaryKey"`
	Nome             string `gorm:"type:varchar(255);not null;index"`
	Autor            string `gorm:"type:varchar(255)"`
	Ementa           string `gorm:"type:text"`
	ExplicacaoEmenta string `gorm:"type:text"`
	Status           int    `gorm:"not null;index"`
}

func (ConsultaModel) TableName() string {
	return "consulta"
}

// ParecerModel é o model GORM para pareceres. O índice único composto
// (id_usuario, id_consulta) garante no máximo um parecer por usuário por
// consulta mesmo com requisições concorrentes.
type ParecerModel struct {
	ID         uint   `gorm:"primaryKey"`
	UsuarioID  uint   `gorm:"column:id_usuario;not null;uniqueIndex:idx_parecer_usuario_consulta"`
	ConsultaID uint   `gorm:"column:id_consulta;not null;uniqueIndex:idx_parecer_usuario_consulta"`
	Estrelas   int    `gorm:"not null"`
	Voto       int    `gorm:"not null"`
	Comentario string `gorm:"type:text"`
}

func (ParecerModel) TableName() string {
	return "parecer"
}
