package ports

// Logger define a interface de logging estruturado usada pelas camadas
// de serviço e handlers, desacoplada da implementação concreta
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}
