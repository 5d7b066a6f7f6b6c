package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/figaro/internal/api"
	"github.com/javiermolinar/figaro/internal/tui/commands"
)

type formKind int

const (
	formNone formKind = iota
	formBarber
	formCustomer
	formService
	formServiceEdit
)

// entityForm is a small vertical form of text inputs for creating or
// editing an entity.
type entityForm struct {
	kind   formKind
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	editID int64
}

func newInput(styles *Styles, placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 32
	ti.PlaceholderStyle = styles.InputPlaceholderStyle
	ti.TextStyle = styles.InputTextStyle
	ti.PromptStyle = styles.InputTextStyle
	return ti
}

func newBarberForm(styles *Styles) entityForm {
	return entityForm{
		kind:   formBarber,
		title:  "New barber",
		labels: []string{"Name", "Specialty", "Phone"},
		inputs: []textinput.Model{
			newInput(styles, "Full name", 128),
			newInput(styles, "Fades, beard trims...", 128),
			newInput(styles, "555-0100", 32),
		},
	}
}

func newCustomerForm(styles *Styles) entityForm {
	return entityForm{
		kind:   formCustomer,
		title:  "New customer",
		labels: []string{"Name", "Document", "Phone"},
		inputs: []textinput.Model{
			newInput(styles, "Full name", 128),
			newInput(styles, "ID document", 32),
			newInput(styles, "555-0100", 32),
		},
	}
}

func newServiceForm(styles *Styles) entityForm {
	return entityForm{
		kind:   formService,
		title:  "New service",
		labels: []string{"Name", "Price"},
		inputs: []textinput.Model{
			newInput(styles, "Haircut", 128),
			newInput(styles, "25.00", 16),
		},
	}
}

func newServiceEditForm(styles *Styles, s api.Service) entityForm {
	f := entityForm{
		kind:   formServiceEdit,
		title:  "Edit service",
		labels: []string{"Name", "Price"},
		inputs: []textinput.Model{
			newInput(styles, "Haircut", 128),
			newInput(styles, "25.00", 16),
		},
		editID: s.ID,
	}
	f.inputs[0].SetValue(s.Name)
	f.inputs[1].SetValue(strconv.FormatFloat(s.Price, 'f', 2, 64))
	return f
}

// Focus focuses the first field.
func (f *entityForm) Focus() tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.focus = 0
	return f.inputs[0].Focus()
}

// NextField moves focus to the next field.
func (f *entityForm) NextField() {
	f.setFocus((f.focus + 1) % len(f.inputs))
}

// PrevField moves focus to the previous field.
func (f *entityForm) PrevField() {
	f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs))
}

func (f *entityForm) setFocus(idx int) {
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	f.focus = idx
}

// Update forwards a message to the focused input.
func (f entityForm) Update(msg tea.Msg) (entityForm, tea.Cmd) {
	if f.focus >= len(f.inputs) {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f entityForm) value(idx int) string {
	return strings.TrimSpace(f.inputs[idx].Value())
}

// Submit validates the form and returns the command that persists it.
func (f entityForm) Submit(client *api.Client) (tea.Cmd, error) {
	switch f.kind {
	case formBarber:
		name := f.value(0)
		if name == "" {
			return nil, errors.New("name is required")
		}
		return commands.CreateBarber(client, api.CreateBarberRequest{
			Name:      name,
			Specialty: f.value(1),
			Phone:     f.value(2),
		}), nil

	case formCustomer:
		name, document, phone := f.value(0), f.value(1), f.value(2)
		if name == "" || document == "" || phone == "" {
			return nil, errors.New("name, document, and phone are required")
		}
		return commands.CreateCustomer(client, api.CreateCustomerRequest{
			Name:     name,
			Document: document,
			Phone:    phone,
		}), nil

	case formService:
		name := f.value(0)
		if name == "" {
			return nil, errors.New("name is required")
		}
		price, err := parsePrice(f.value(1))
		if err != nil {
			return nil, err
		}
		return commands.CreateService(client, api.CreateServiceRequest{
			Name:  name,
			Price: price,
		}), nil

	case formServiceEdit:
		name := f.value(0)
		if name == "" {
			return nil, errors.New("name is required")
		}
		price, err := parsePrice(f.value(1))
		if err != nil {
			return nil, err
		}
		return commands.UpdateService(client, api.UpdateServiceRequest{
			ID:    f.editID,
			Name:  &name,
			Price: &price,
		}), nil
	}
	return nil, errors.New("nothing to submit")
}

func parsePrice(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("price is required")
	}
	price, err := strconv.ParseFloat(s, 64)
	if err != nil || price < 0 {
		return 0, errors.New("price must be a non-negative number")
	}
	return price, nil
}
