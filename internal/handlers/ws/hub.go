package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/voujunto/voujunto-backend/internal/domain/entities"
	"github.com/voujunto/voujunto-backend/internal/domain/ports"
	"github.com/voujunto/voujunto-backend/internal/handlers/dto"
)

const (
	// tamanhoFila é o número de publicações que um cliente pode acumular
	// antes de ser considerado lento e desconectado
	tamanhoFila = 16

	// prazoEscrita é o tempo máximo de uma escrita no socket
	prazoEscrita = 10 * time.Second
)

// cliente é uma conexão do feed com sua fila de envio. As escritas no
// socket acontecem apenas na goroutine de escrita do próprio cliente.
type cliente struct {
	conn *websocket.Conn
	fila chan dto.AventuraResponse
}

// Hub transmite publicações recém-criadas para os clientes conectados
// ao feed ao vivo. Implementa ports.Notificador; a entrega é melhor
// esforço: cliente que não drena a fila é desconectado, nunca bloqueia
// a publicação.
type Hub struct {
	upgrader websocket.Upgrader
	logger   ports.Logger

	mu       sync.Mutex
	clientes map[*cliente]struct{}
}

// NewHub cria um novo Hub. A verificação de origem fica com o CORS da
// camada HTTP.
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:   logger,
		clientes: make(map[*cliente]struct{}),
	}
}

// Handle faz o upgrade da conexão e registra o cliente no feed
func (h *Hub) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("falha no upgrade do websocket", "error", err)
		return
	}

	cl := &cliente{
		conn: conn,
		fila: make(chan dto.AventuraResponse, tamanhoFila),
	}

	h.mu.Lock()
	h.clientes[cl] = struct{}{}
	total := len(h.clientes)
	h.mu.Unlock()

	h.logger.Debug("cliente conectado ao feed", "clientes", total)

	go h.escrever(cl)

	// Drenar mensagens do cliente até a conexão cair; o feed é só de
	// saída
	go func() {
		defer h.remover(cl)
		for {
			if _, _, err := cl.conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// AventuraPublicada enfileira a nova aventura para todos os clientes.
// O envio nunca bloqueia: cliente com a fila cheia é desconectado.
func (h *Hub) AventuraPublicada(aventura *entities.Aventura) {
	payload := dto.FromAventura(aventura)

	var lentos []*cliente

	h.mu.Lock()
	for cl := range h.clientes {
		select {
		case cl.fila <- payload:
		default:
			lentos = append(lentos, cl)
		}
	}
	h.mu.Unlock()

	for _, cl := range lentos {
		h.logger.Warn("cliente lento desconectado do feed")
		h.remover(cl)
	}
}

// Fechar encerra todas as conexões do feed
func (h *Hub) Fechar() {
	h.mu.Lock()
	for cl := range h.clientes {
		delete(h.clientes, cl)
		close(cl.fila)
		cl.conn.Close()
	}
	h.mu.Unlock()
}

// escrever drena a fila do cliente para o socket, com prazo por escrita
func (h *Hub) escrever(cl *cliente) {
	for payload := range cl.fila {
		_ = cl.conn.SetWriteDeadline(time.Now().Add(prazoEscrita))
		if err := cl.conn.WriteJSON(payload); err != nil {
			break
		}
	}
	h.remover(cl)
}

// remover desregistra o cliente uma única vez; a fila só é fechada por
// quem o removeu do mapa, então nunca há envio em fila fechada
func (h *Hub) remover(cl *cliente) {
	h.mu.Lock()
	if _, ok := h.clientes[cl]; ok {
		delete(h.clientes, cl)
		close(cl.fila)
		cl.conn.Close()
	}
	h.mu.Unlock()
}
