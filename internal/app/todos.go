package app

import "github.com/sadopc/aura/internal/store"

// Todos handles checklist commands. Deleting a todo needs no confirmation.
type Todos struct {
	todos *store.Todos
}

func NewTodos(todos *store.Todos) *Todos {
	return &Todos{todos: todos}
}

func (t *Todos) Add(text string) bool { return t.todos.Add(text) }
func (t *Todos) Toggle(i int) bool    { return t.todos.Toggle(i) }
func (t *Todos) Delete(i int) bool    { return t.todos.Delete(i) }

func (t *Todos) TodoList() TodoListView {
	v := TodoListView{Open: t.todos.Open()}
	for i, item := range t.todos.List() {
		v.Rows = append(v.Rows, TodoRow{Index: i, Text: item.Text, Done: item.Done})
	}
	if len(v.Rows) == 0 {
		v.Placeholder = NoTodos
	}
	return v
}
