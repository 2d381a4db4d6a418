package client

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

// Validation messages, field-keyed, matching what the admin UI renders.
const (
	msgNomeRequired  = "Nome é obrigatório"
	msgEmailRequired = "Email é obrigatório"
	msgEmailInvalid  = "Email inválido"
	msgSenhaMin      = "Senha deve ter no mínimo 6 caracteres"
	msgSenhaMismatch = "As senhas não coincidem"
)

// Structural check only; the server remains the authority on addresses.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FormState tracks the edit modal's lifecycle.
type FormState int

const (
	FormClosed FormState = iota
	FormCreating
	FormEditing
	FormSubmitting
)

// FieldErrors maps field name to its validation message. All violations are
// reported at once on submit.
type FieldErrors map[string]string

// UserForm is the create/edit state machine for user accounts. Validation
// runs on submit only; while errors are present or a submit is in flight no
// request is issued.
type UserForm struct {
	api *API

	state  FormState
	userID string

	Nome           string
	Email          string
	Senha          string
	ConfirmarSenha string
	Ativo          bool
	IsAdmin        bool

	Errors      FieldErrors
	SubmitError string
}

func NewUserForm(api *API) *UserForm {
	return &UserForm{api: api, state: FormClosed, Ativo: true}
}

// State returns the form's current lifecycle state.
func (f *UserForm) State() FormState {
	return f.state
}

// OpenCreate resets the form for a new user.
func (f *UserForm) OpenCreate() {
	*f = UserForm{api: f.api, state: FormCreating, Ativo: true}
}

// OpenEdit loads an existing user into the form. Password fields start
// blank: blank means "leave unchanged".
func (f *UserForm) OpenEdit(user User) {
	*f = UserForm{
		api:     f.api,
		state:   FormEditing,
		userID:  user.ID,
		Nome:    user.Nome,
		Email:   user.Email,
		Ativo:   user.Ativo,
		IsAdmin: user.IsAdmin,
	}
}

// Close discards the form without submitting.
func (f *UserForm) Close() {
	*f = UserForm{api: f.api, state: FormClosed, Ativo: true}
}

// Validate checks all fields and returns every violation keyed by field.
func (f *UserForm) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(f.Nome) == "" {
		errs["nome"] = msgNomeRequired
	}

	email := strings.TrimSpace(f.Email)
	switch {
	case email == "":
		errs["email"] = msgEmailRequired
	case !emailPattern.MatchString(email):
		errs["email"] = msgEmailInvalid
	}

	creating := f.state == FormCreating
	if creating || f.Senha != "" {
		if len(f.Senha) < 6 {
			errs["senha"] = msgSenhaMin
		}
		if f.ConfirmarSenha != f.Senha {
			errs["confirmarSenha"] = msgSenhaMismatch
		}
	}

	return errs
}

type userPayload struct {
	Nome    string  `json:"nome"`
	Email   string  `json:"email"`
	Senha   *string `json:"senha,omitempty"`
	Ativo   *bool   `json:"ativo,omitempty"`
	IsAdmin bool    `json:"is_admin"`
}

// Submit validates and, when clean, issues the create or update request.
// On a backend failure the form keeps its data and surfaces the server's
// detail; on success it closes.
func (f *UserForm) Submit(ctx context.Context) error {
	if f.state == FormSubmitting || f.state == FormClosed {
		return nil
	}

	f.Errors = f.Validate()
	f.SubmitError = ""
	if len(f.Errors) > 0 {
		return nil
	}

	editing := f.state == FormEditing
	f.state = FormSubmitting

	payload := userPayload{
		Nome:    strings.TrimSpace(f.Nome),
		Email:   strings.TrimSpace(f.Email),
		IsAdmin: f.IsAdmin,
	}
	// A blank senha while editing is omitted from the payload entirely,
	// which the server reads as "password unchanged".
	if f.Senha != "" {
		senha := f.Senha
		payload.Senha = &senha
	}
	// The register contract has no ativo field (new users start active);
	// only edits carry it.
	if editing {
		ativo := f.Ativo
		payload.Ativo = &ativo
	}

	var err error
	if editing {
		_, err = f.api.Users.Update(ctx, f.userID, payload)
	} else {
		_, err = f.api.Register(ctx, payload)
	}
	if err != nil {
		if editing {
			f.state = FormEditing
		} else {
			f.state = FormCreating
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			f.SubmitError = apiErr.Detail
		} else {
			f.SubmitError = "Erro ao salvar usuário"
		}
		return err
	}

	f.Close()
	return nil
}
