package models

import "errors"

// Erros de domínio mapeados pelos handlers para códigos HTTP
var (
	ErrTaskNotFound  = errors.New("tarefa não encontrada")
	ErrInvalidStatus = errors.New("status inválido: deve ser pending, in_progress ou completed")
	ErrTitleRequired = errors.New("título é obrigatório e deve ter entre 1 e 255 caracteres")
)
