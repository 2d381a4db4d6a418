package client

import "strings"

// StatusFilter narrows a listing by the ativo flag.
type StatusFilter int

const (
	StatusAll StatusFilter = iota
	StatusActive
	StatusInactive
)

// UserRow is one rendered row of the user listing. Self marks the session
// user's own row; its delete action is disabled.
type UserRow struct {
	User      User
	Self      bool
	CanDelete bool
}

// FilterUsers derives the visible rows from the cached collection: a
// case-insensitive substring search over nome and email, a status filter,
// and per-row delete permissions. selfID is the session user's id.
func FilterUsers(users []User, search string, status StatusFilter, selfID string) []UserRow {
	needle := strings.ToLower(strings.TrimSpace(search))

	rows := make([]UserRow, 0, len(users))
	for _, u := range users {
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Nome), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) {
			continue
		}
		if status == StatusActive && !u.Ativo {
			continue
		}
		if status == StatusInactive && u.Ativo {
			continue
		}

		self := u.ID == selfID
		rows = append(rows, UserRow{
			User:      u,
			Self:      self,
			CanDelete: !self,
		})
	}
	return rows
}

// matchesSearch is the shared case-insensitive substring check used by the
// registry listings.
func matchesSearch(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	needle = strings.ToLower(needle)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// FilterClientes derives the visible cliente rows: search over nome, email
// and cpf/cnpj plus the status filter.
func FilterClientes(clientes []Cliente, search string, status StatusFilter) []Cliente {
	needle := strings.TrimSpace(search)

	out := make([]Cliente, 0, len(clientes))
	for _, c := range clientes {
		if !matchesSearch(needle, c.Nome, c.Email, c.CPFCNPJ) {
			continue
		}
		if status == StatusActive && !c.Ativo {
			continue
		}
		if status == StatusInactive && c.Ativo {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterMotoristas derives the visible motorista rows: search over nome and
// cpf plus the status filter.
func FilterMotoristas(motoristas []Motorista, search string, status StatusFilter) []Motorista {
	needle := strings.TrimSpace(search)

	out := make([]Motorista, 0, len(motoristas))
	for _, m := range motoristas {
		if !matchesSearch(needle, m.Nome, m.CPF) {
			continue
		}
		if status == StatusActive && !m.Ativo {
			continue
		}
		if status == StatusInactive && m.Ativo {
			continue
		}
		out = append(out, m)
	}
	return out
}
