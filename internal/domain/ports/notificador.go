package ports

import "github.com/voujunto/voujunto-backend/internal/domain/entities"

// Notificador recebe aventuras recém-publicadas para entrega a
// interessados (ex.: feed ao vivo via websocket). A entrega é melhor
// esforço: falhas não afetam a publicação.
type Notificador interface {
	AventuraPublicada(aventura *entities.Aventura)
}
