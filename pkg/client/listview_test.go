package client

import "testing"

func sampleUsers() []User {
	return []User{
		{ID: "u1", Nome: "Ana Souza", Email: "ana@empresa.com", Ativo: true},
		{ID: "u2", Nome: "Bruno Lima", Email: "bruno@empresa.com", Ativo: true},
		{ID: "u3", Nome: "Carla Dias", Email: "carla@outro.com", Ativo: false},
	}
}

func TestFilterUsers_SearchIsCaseInsensitive(t *testing.T) {
	rows := FilterUsers(sampleUsers(), "ANA", StatusAll, "")
	if len(rows) != 1 || rows[0].User.ID != "u1" {
		t.Fatalf("expected only Ana, got %+v", rows)
	}

	// Substring match over email too.
	rows = FilterUsers(sampleUsers(), "outro.com", StatusAll, "")
	if len(rows) != 1 || rows[0].User.ID != "u3" {
		t.Fatalf("expected only Carla, got %+v", rows)
	}
}

func TestFilterUsers_StatusFilter(t *testing.T) {
	if rows := FilterUsers(sampleUsers(), "", StatusActive, ""); len(rows) != 2 {
		t.Fatalf("expected 2 active users, got %d", len(rows))
	}
	if rows := FilterUsers(sampleUsers(), "", StatusInactive, ""); len(rows) != 1 {
		t.Fatalf("expected 1 inactive user, got %d", len(rows))
	}
	if rows := FilterUsers(sampleUsers(), "", StatusAll, ""); len(rows) != 3 {
		t.Fatalf("expected all users, got %d", len(rows))
	}
}

func TestFilterUsers_SelfRowCannotDelete(t *testing.T) {
	rows := FilterUsers(sampleUsers(), "", StatusAll, "u2")

	for _, row := range rows {
		switch row.User.ID {
		case "u2":
			if !row.Self || row.CanDelete {
				t.Fatal("the session user's own row is flagged and not deletable")
			}
		default:
			if row.Self || !row.CanDelete {
				t.Fatalf("other rows stay deletable: %+v", row)
			}
		}
	}
}

func TestFilterUsers_FiltersCompose(t *testing.T) {
	rows := FilterUsers(sampleUsers(), "empresa.com", StatusActive, "u1")
	if len(rows) != 2 {
		t.Fatalf("expected Ana and Bruno, got %d rows", len(rows))
	}
	if !rows[0].Self {
		t.Fatal("Ana is the session user")
	}
}

func TestFilterClientes(t *testing.T) {
	clientes := []Cliente{
		{ID: "c1", Nome: "Fazenda Boa Vista", CPFCNPJ: "12.345.678/0001-00", Ativo: true},
		{ID: "c2", Nome: "João Pereira", CPFCNPJ: "123.456.789-00", Email: "joao@x.com", Ativo: false},
	}

	if out := FilterClientes(clientes, "fazenda", StatusAll); len(out) != 1 || out[0].ID != "c1" {
		t.Fatalf("search by nome failed: %+v", out)
	}
	if out := FilterClientes(clientes, "789-00", StatusAll); len(out) != 1 || out[0].ID != "c2" {
		t.Fatalf("search by cpf/cnpj failed: %+v", out)
	}
	if out := FilterClientes(clientes, "", StatusInactive); len(out) != 1 || out[0].ID != "c2" {
		t.Fatalf("status filter failed: %+v", out)
	}
}

func TestFilterMotoristas(t *testing.T) {
	motoristas := []Motorista{
		{ID: "m1", Nome: "Pedro Alves", CPF: "111.222.333-44", Ativo: true},
		{ID: "m2", Nome: "Lucas Prado", CPF: "555.666.777-88", Ativo: true},
	}

	if out := FilterMotoristas(motoristas, "pedro", StatusAll); len(out) != 1 || out[0].ID != "m1" {
		t.Fatalf("search by nome failed: %+v", out)
	}
	if out := FilterMotoristas(motoristas, "555.666", StatusActive); len(out) != 1 || out[0].ID != "m2" {
		t.Fatalf("search by cpf failed: %+v", out)
	}
}
