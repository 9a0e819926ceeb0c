package services

import (
	"context"
	"errors"

	"github.com/voujunto/voujunto-backend/internal/domain/entities"
	"github.com/voujunto/voujunto-backend/internal/domain/ports"
	"github.com/voujunto/voujunto-backend/internal/domain/repositories"
)

// Dublês em memória dos repositórios, com falha injetável

var errArmazenamento = errors.New("armazenamento indisponível")

type logSilencioso struct{}

func (logSilencioso) Info(msg string, args ...any)    {}
func (logSilencioso) Error(msg string, args ...any)   {}
func (logSilencioso) Debug(msg string, args ...any)   {}
func (logSilencioso) Warn(msg string, args ...any)    {}
func (l logSilencioso) With(args ...any) ports.Logger { return l }

type eventosFake struct {
	registros []*entities.Evento
	falhar    bool
}

func (f *eventosFake) Create(ctx context.Context, e *entities.Evento) error {
	if f.falhar {
		return errArmazenamento
	}
	f.registros = append(f.registros, e)
	return nil
}

func (f *eventosFake) FindAll(ctx context.Context) ([]*entities.Evento, error) {
	if f.falhar {
		return nil, errArmazenamento
	}
	return f.registros, nil
}

func (f *eventosFake) FindByID(ctx context.Context, id string) (*entities.Evento, error) {
	if f.falhar {
		return nil, errArmazenamento
	}
	for _, e := range f.registros {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (f *eventosFake) FindByUser(ctx context.Context, userID string) ([]*entities.Evento, error) {
	if f.falhar {
		return nil, errArmazenamento
	}
	var out []*entities.Evento
	for _, e := range f.registros {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

type trilhasFake struct {
	registros []*entities.Trilha
	falhar    bool
}

func (f *trilhasFake) Create(ctx context.Context, t *entities.Trilha) error {
	if f.falhar {
		return errArmazenamento
	}
	f.registros = append(f.registros, t)
	return nil
}

func (f *trilhasFake) FindAll(ctx context.Context) ([]*entities.Trilha, error) {
	if f.falhar {
		return nil, errArmazenamento
	}
	return f.registros, nil
}

func (f *trilhasFake) FindByID(ctx context.Context, id string) (*entities.Trilha, error) {
	for _, t := range f.registros {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (f *trilhasFake) FindByUser(ctx context.Context, userID string) ([]*entities.Trilha, error) {
	var out []*entities.Trilha
	for _, t := range f.registros {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

type caronasFake struct {
	registros []*entities.Carona
	falhar    bool
}

func (f *caronasFake) Create(ctx context.Context, c *entities.Carona) error {
	if f.falhar {
		return errArmazenamento
	}
	f.registros = append(f.registros, c)
	return nil
}

func (f *caronasFake) FindAll(ctx context.Context) ([]*entities.Carona, error) {
	if f.falhar {
		return nil, errArmazenamento
	}
	return f.registros, nil
}

func (f *caronasFake) FindByID(ctx context.Context, id string) (*entities.Carona, error) {
	for _, c := range f.registros {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *caronasFake) FindByUser(ctx context.Context, userID string) ([]*entities.Carona, error) {
	var out []*entities.Carona
	for _, c := range f.registros {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

type viagensFake struct {
	registros []*entities.Viagem
	falhar    bool
}

func (f *viagensFake) Create(ctx context.Context, v *entities.Viagem) error {
	if f.falhar {
		return errArmazenamento
	}
	f.registros = append(f.registros, v)
	return nil
}

func (f *viagensFake) FindAll(ctx context.Context) ([]*entities.Viagem, error) {
	if f.falhar {
		return nil, errArmazenamento
	}
	return f.registros, nil
}

func (f *viagensFake) FindByID(ctx context.Context, id string) (*entities.Viagem, error) {
	for _, v := range f.registros {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (f *viagensFake) FindByUser(ctx context.Context, userID string) ([]*entities.Viagem, error) {
	var out []*entities.Viagem
	for _, v := range f.registros {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	return out, nil
}

type perfisFake struct {
	registros map[string]*entities.Perfil
	upserts   int
	falhar    bool
}

func novoPerfisFake() *perfisFake {
	return &perfisFake{registros: make(map[string]*entities.Perfil)}
}

func (f *perfisFake) FindByID(ctx context.Context, id string) (*entities.Perfil, error) {
	if f.falhar {
		return nil, errArmazenamento
	}
	return f.registros[id], nil
}

func (f *perfisFake) Upsert(ctx context.Context, p *entities.Perfil) error {
	if f.falhar {
		return errArmazenamento
	}
	f.upserts++
	copia := *p
	f.registros[p.ID] = &copia
	return nil
}

func (f *perfisFake) FindAll(ctx context.Context) ([]*entities.Perfil, error) {
	out := make([]*entities.Perfil, 0, len(f.registros))
	for _, p := range f.registros {
		out = append(out, p)
	}
	return out, nil
}

type aventurasFake struct {
	publicadas []*entities.Aventura
	falhar     bool
}

func (f *aventurasFake) Publish(ctx context.Context, a *entities.Aventura) error {
	if f.falhar {
		return errArmazenamento
	}
	f.publicadas = append(f.publicadas, a)
	return nil
}

func (f *aventurasFake) Page(ctx context.Context, filters repositories.AventuraFilters) ([]*entities.Aventura, error) {
	if f.falhar {
		return nil, errArmazenamento
	}
	return f.publicadas, nil
}

func (f *aventurasFake) Count(ctx context.Context, filters repositories.AventuraFilters) (int64, error) {
	if f.falhar {
		return 0, errArmazenamento
	}
	return int64(len(f.publicadas)), nil
}

type notificadorFake struct {
	recebidas []*entities.Aventura
}

func (f *notificadorFake) AventuraPublicada(a *entities.Aventura) {
	f.recebidas = append(f.recebidas, a)
}
