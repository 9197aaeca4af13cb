package request

import (
	"errors"
	"fmt"
	"ouvidoria/internal/domain/entities"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidPage  = errors.New("invalid page")
	ErrInvalidLimit = errors.New("invalid limit")
)

var (
	emailPattern    = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	telefonePattern = regexp.MustCompile(`^\(?[1-9]{2}\)? ?(?:[2-8]|9[1-9])[0-9]{3}-?[0-9]{4}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	must(v.RegisterValidation("email_ouvidoria", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("telefone_br", func(fl validator.FieldLevel) bool {
		return telefonePattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("tipo_manifestacao", func(fl validator.FieldLevel) bool {
		_, err := entities.ParseTipo(fl.Field().String())
		return err == nil
	}))
	must(v.RegisterValidation("status_manifestacao", func(fl validator.FieldLevel) bool {
		_, err := entities.ParseStatus(fl.Field().String())
		return err == nil
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// fieldMessages holds the user-facing text per field and failed rule.
var fieldMessages = map[string]map[string]string{
	"nome": {
		"required": "Nome é obrigatório",
		"min":      "Nome deve ter pelo menos 3 caracteres",
	},
	"email": {
		"required":        "E-mail é obrigatório",
		"email_ouvidoria": "E-mail inválido",
	},
	"telefone": {
		"required":    "Telefone é obrigatório",
		"telefone_br": "Telefone inválido",
	},
	"tipo": {
		"required":          "Tipo é obrigatório",
		"tipo_manifestacao": "Tipo inválido",
	},
	"assunto": {
		"max": "Assunto deve ter no máximo 200 caracteres",
	},
	"endereco": {
		"required": "Endereço é obrigatório",
		"min":      "Endereço deve ter pelo menos 10 caracteres",
	},
	"descricao": {
		"required": "Descrição é obrigatória",
		"min":      "Descrição deve ter pelo menos 20 caracteres",
		"max":      "Descrição deve ter no máximo 1000 caracteres",
	},
	"status": {
		"required":            "Status é obrigatório",
		"status_manifestacao": "Status inválido",
	},
	"observacoes": {
		"max": "Observações devem ter no máximo 1000 caracteres",
	},
}

// ManifestacaoRequest is the citizen submission payload.
type ManifestacaoRequest struct {
	Nome      string `json:"nome" validate:"required,min=3"`
	Email     string `json:"email" validate:"required,email_ouvidoria"`
	Telefone  string `json:"telefone" validate:"required,telefone_br"`
	Tipo      string `json:"tipo" validate:"required,tipo_manifestacao"`
	Assunto   string `json:"assunto" validate:"max=200"`
	Descricao string `json:"descricao" validate:"required,min=20,max=1000"`
	Endereco  string `json:"endereco" validate:"required,min=10"`
}

// Normalize trims every field in place.
func (r *ManifestacaoRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.Email = strings.TrimSpace(r.Email)
	r.Telefone = strings.TrimSpace(r.Telefone)
	r.Tipo = strings.TrimSpace(r.Tipo)
	r.Assunto = strings.TrimSpace(r.Assunto)
	r.Descricao = strings.TrimSpace(r.Descricao)
	r.Endereco = strings.TrimSpace(r.Endereco)
}

// Validate normalizes the payload and returns the failed fields with their messages,
// or nil when the payload is acceptable.
func (r *ManifestacaoRequest) Validate() map[string]string {
	r.Normalize()
	return fieldErrors(validate.Struct(r))
}

func (r ManifestacaoRequest) ToEntity() (entities.NovaManifestacao, error) {
	tipo, err := entities.ParseTipo(r.Tipo)
	if err != nil {
		return entities.NovaManifestacao{}, err
	}
	return entities.NovaManifestacao{
		Nome:      strings.TrimSpace(r.Nome),
		Email:     strings.TrimSpace(r.Email),
		Telefone:  strings.TrimSpace(r.Telefone),
		Tipo:      tipo,
		Assunto:   strings.TrimSpace(r.Assunto),
		Descricao: strings.TrimSpace(r.Descricao),
		Endereco:  strings.TrimSpace(r.Endereco),
	}, nil
}

// AtualizarStatusRequest is the staff status change payload.
type AtualizarStatusRequest struct {
	Status      string `json:"status" validate:"required,status_manifestacao"`
	Observacoes string `json:"observacoes" validate:"max=1000"`
}

func (r *AtualizarStatusRequest) Validate() map[string]string {
	r.Status = strings.TrimSpace(r.Status)
	r.Observacoes = strings.TrimSpace(r.Observacoes)
	return fieldErrors(validate.Struct(r))
}

func (r AtualizarStatusRequest) ToEntity() (entities.AtualizarStatus, error) {
	status, err := entities.ParseStatus(r.Status)
	if err != nil {
		return entities.AtualizarStatus{}, err
	}
	return entities.AtualizarStatus{Status: status, Observacoes: strings.TrimSpace(r.Observacoes)}, nil
}

// ListQuery carries the listing query string. Numbers are kept as text so that an absent
// limit (default page size) can be told apart from limit=0 (everything).
type ListQuery struct {
	Status     string `form:"status"`
	Tipo       string `form:"tipo"`
	Email      string `form:"email"`
	Protocolo  string `form:"protocolo"`
	DataInicio string `form:"dataInicio"`
	DataFim    string `form:"dataFim"`
	Page       string `form:"page"`
	Limit      string `form:"limit"`
}

// ToFiltros parses the query. Bare dates are interpreted in loc.
func (q ListQuery) ToFiltros(loc *time.Location) (entities.Filtros, error) {
	var (
		f   entities.Filtros
		err error
	)
	if v := strings.TrimSpace(q.Status); v != "" {
		if f.Status, err = entities.ParseStatus(v); err != nil {
			return entities.Filtros{}, err
		}
	}
	if v := strings.TrimSpace(q.Tipo); v != "" {
		if f.Tipo, err = entities.ParseTipo(v); err != nil {
			return entities.Filtros{}, err
		}
	}
	f.Email = strings.TrimSpace(q.Email)
	f.Protocolo = entities.NormalizeProtocolo(q.Protocolo)

	if f.DataInicio, err = entities.ParseDataFiltro(q.DataInicio, false, loc); err != nil {
		return entities.Filtros{}, fmt.Errorf("dataInicio: %w", err)
	}
	if f.DataFim, err = entities.ParseDataFiltro(q.DataFim, true, loc); err != nil {
		return entities.Filtros{}, fmt.Errorf("dataFim: %w", err)
	}

	f.Page = 1
	if v := strings.TrimSpace(q.Page); v != "" {
		if f.Page, err = strconv.Atoi(v); err != nil || f.Page < 1 {
			return entities.Filtros{}, ErrInvalidPage
		}
	}
	f.Limit = entities.DefaultPageLimit
	if v := strings.TrimSpace(q.Limit); v != "" {
		if f.Limit, err = strconv.Atoi(v); err != nil || f.Limit < 0 {
			return entities.Filtros{}, ErrInvalidLimit
		}
	}
	return f, nil
}

func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		if msg, ok := fieldMessages[field][fe.Tag()]; ok {
			out[field] = msg
			continue
		}
		out[field] = field + " inválido"
	}
	return out
}
