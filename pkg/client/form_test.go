package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUserForm_Validate_AllViolationsAtOnce(t *testing.T) {
	form := NewUserForm(nil)
	form.OpenCreate()
	form.Nome = "   "
	form.Email = ""
	form.Senha = "123"
	form.ConfirmarSenha = "456"

	errs := form.Validate()

	if errs["nome"] != "Nome é obrigatório" {
		t.Fatalf("nome: %q", errs["nome"])
	}
	if errs["email"] != "Email é obrigatório" {
		t.Fatalf("email: %q", errs["email"])
	}
	if errs["senha"] != "Senha deve ter no mínimo 6 caracteres" {
		t.Fatalf("senha: %q", errs["senha"])
	}
	if errs["confirmarSenha"] != "As senhas não coincidem" {
		t.Fatalf("confirmarSenha: %q", errs["confirmarSenha"])
	}
	if len(errs) != 4 {
		t.Fatalf("expected every violation reported at once, got %d", len(errs))
	}
}

func TestUserForm_Validate_EmailPattern(t *testing.T) {
	form := NewUserForm(nil)
	form.OpenCreate()
	form.Nome = "Ana"
	form.Email = "sem-arroba"
	form.Senha = "segredo1"
	form.ConfirmarSenha = "segredo1"

	errs := form.Validate()
	if errs["email"] != "Email inválido" {
		t.Fatalf("expected structural email error, got %q", errs["email"])
	}
	if len(errs) != 1 {
		t.Fatalf("unexpected extra errors: %v", errs)
	}
}

func TestUserForm_Validate_EditBlankSenhaIsValid(t *testing.T) {
	form := NewUserForm(nil)
	form.OpenEdit(User{ID: "u1", Nome: "Ana", Email: "ana@b.com", Ativo: true})

	if errs := form.Validate(); len(errs) != 0 {
		t.Fatalf("blank senha on edit is valid, got %v", errs)
	}
}

func TestUserForm_Validate_EditProvidedSenhaChecked(t *testing.T) {
	form := NewUserForm(nil)
	form.OpenEdit(User{ID: "u1", Nome: "Ana", Email: "ana@b.com"})
	form.Senha = "12345"
	form.ConfirmarSenha = "12345"

	errs := form.Validate()
	if errs["senha"] != "Senha deve ter no mínimo 6 caracteres" {
		t.Fatalf("min length applies once senha is provided, got %v", errs)
	}
}

func TestUserForm_Submit_EditOmitsBlankSenha(t *testing.T) {
	var captured map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/users/u1", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &captured)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "u1", "nome": "Ana"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	api := NewAPI(New(server.URL), NewMemoryTokenStore())
	form := NewUserForm(api)
	form.OpenEdit(User{ID: "u1", Nome: "Ana", Email: "ana@b.com", Ativo: true})

	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, present := captured["senha"]; present {
		t.Fatal("blank senha must be omitted from the payload, not sent empty")
	}
	if captured["nome"] != "Ana" || captured["email"] != "ana@b.com" {
		t.Fatalf("unexpected payload: %v", captured)
	}
	if form.State() != FormClosed {
		t.Fatal("successful submit closes the form")
	}
}

func TestUserForm_Submit_EditSendsProvidedSenha(t *testing.T) {
	var captured map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/users/u1", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &captured)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "u1"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	api := NewAPI(New(server.URL), NewMemoryTokenStore())
	form := NewUserForm(api)
	form.OpenEdit(User{ID: "u1", Nome: "Ana", Email: "ana@b.com"})
	form.Senha = "novasenha"
	form.ConfirmarSenha = "novasenha"

	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if captured["senha"] != "novasenha" {
		t.Fatalf("provided senha must be sent, got %v", captured["senha"])
	}
}

func TestUserForm_Submit_CreateMatchesRegisterContract(t *testing.T) {
	var captured map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &captured)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "u9", "nome": "Bia"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	api := NewAPI(New(server.URL), NewMemoryTokenStore())
	form := NewUserForm(api)
	form.OpenCreate()
	form.Nome = "Bia"
	form.Email = "bia@b.com"
	form.Senha = "segredo"
	form.ConfirmarSenha = "segredo"
	form.Ativo = false

	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Register has no ativo field; sending one would be silently dropped
	// by the server, so the client must not pretend it took effect.
	if _, present := captured["ativo"]; present {
		t.Fatal("create payload must not carry ativo")
	}
	if captured["nome"] != "Bia" || captured["email"] != "bia@b.com" || captured["senha"] != "segredo" {
		t.Fatalf("unexpected payload: %v", captured)
	}
	if _, present := captured["is_admin"]; !present {
		t.Fatal("create payload must carry is_admin")
	}
}

func TestUserForm_Submit_EditSendsAtivo(t *testing.T) {
	var captured map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/users/u1", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &captured)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "u1"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	api := NewAPI(New(server.URL), NewMemoryTokenStore())
	form := NewUserForm(api)
	form.OpenEdit(User{ID: "u1", Nome: "Ana", Email: "ana@b.com", Ativo: true})
	form.Ativo = false

	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if captured["ativo"] != false {
		t.Fatalf("edit payload must carry ativo=false, got %v", captured["ativo"])
	}
}

func TestUserForm_Submit_ValidationBlocksRequest(t *testing.T) {
	requested := false
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		requested = true
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	api := NewAPI(New(server.URL), NewMemoryTokenStore())
	form := NewUserForm(api)
	form.OpenCreate()
	// Nome left blank.
	form.Email = "ana@b.com"
	form.Senha = "segredo1"
	form.ConfirmarSenha = "segredo1"

	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("validation failure is not a submit error: %v", err)
	}
	if requested {
		t.Fatal("no request may leave the client while the form has errors")
	}
	if form.Errors["nome"] != "Nome é obrigatório" {
		t.Fatalf("expected field error, got %v", form.Errors)
	}
	if form.State() != FormCreating {
		t.Fatal("the form stays open with its data")
	}
}

func TestUserForm_Submit_BackendDetailRetained(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Email já cadastrado no sistema"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	api := NewAPI(New(server.URL), NewMemoryTokenStore())
	form := NewUserForm(api)
	form.OpenCreate()
	form.Nome = "Ana"
	form.Email = "ana@b.com"
	form.Senha = "segredo1"
	form.ConfirmarSenha = "segredo1"

	if err := form.Submit(context.Background()); err == nil {
		t.Fatal("expected submit failure")
	}
	if form.SubmitError != "Email já cadastrado no sistema" {
		t.Fatalf("backend detail must surface verbatim, got %q", form.SubmitError)
	}
	if form.State() != FormCreating {
		t.Fatal("the form keeps its data after a backend failure")
	}
	if form.Nome != "Ana" || form.Email != "ana@b.com" {
		t.Fatal("field values must be retained")
	}
}
